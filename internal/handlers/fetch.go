package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"ytfetchbot/internal/lang"
)

// handleFormatPick resolves the picked token and drives the fetch pipeline.
// The callback is acknowledged before the download starts so Telegram does
// not time the button press out; the picker message doubles as the status
// message, edited as the fetch progresses.
func (c *Controller) handleFormatPick(ctx context.Context, query *tgbotapi.CallbackQuery) {
	c.bot.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, ""))

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if !c.gate.IsMember(query.From.ID) {
		c.sendJoinPrompt(chatID)
		return
	}

	token := strings.TrimPrefix(query.Data, formatCallbackPrefix)
	entry, ok := c.store.Get(token)
	if !ok {
		logrus.Warnf("Unknown selection token from chat %d", chatID)
		c.editMessage(chatID, messageID, lang.GetMessage(lang.InvalidSelectionMsgID), nil)
		return
	}

	c.editMessage(chatID, messageID, lang.GetMessage(lang.DownloadingMsgID), nil)

	if err := c.pipeline.Fetch(ctx, chatID, entry.SourceURL, entry.Variant); err != nil {
		logrus.WithError(err).Errorf("Fetch failed for chat %d", chatID)
		c.editMessage(chatID, messageID, lang.GetMessage(lang.DownloadFailedMsgID), nil)
		return
	}

	c.editMessage(chatID, messageID, lang.GetMessage(lang.DownloadDoneMsgID), nil)
}
