package handlers

import (
	"context"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"ytfetchbot/internal/lang"
)

var linkRe = regexp.MustCompile(`^https?://\S+$`)

// IsYouTubeLink reports whether the text looks like a YouTube link. The
// extractor decides whether the link actually resolves; this only filters
// out plain text and other sites.
func IsYouTubeLink(text string) bool {
	if !linkRe.MatchString(text) {
		return false
	}
	return strings.Contains(text, "youtube.com") || strings.Contains(text, "youtu.be")
}

// handleLink validates the link, lists the available variants and renders
// the format picker. Every button is bound to a freshly minted selection
// token; entries from earlier prompts age out of the store on their own.
func (c *Controller) handleLink(ctx context.Context, chatID int64, text string) {
	if !IsYouTubeLink(text) {
		c.sendMessage(chatID, lang.GetMessage(lang.InvalidLinkMsgID), nil)
		return
	}

	statusID, err := c.bot.SendMessage(chatID, lang.GetMessage(lang.ProcessingLinkMsgID), nil)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to send status message to chat %d", chatID)
		return
	}

	variants := c.catalog.ListVariants(ctx, text)
	if len(variants) == 0 {
		c.editMessage(chatID, statusID, lang.GetMessage(lang.NoFormatsMsgID), nil)
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(variants))
	for _, variant := range variants {
		token := c.store.Put(text, variant)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(variant.Label, formatCallbackPrefix+token),
		))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	c.editMessage(chatID, statusID, lang.GetMessage(lang.ChooseFormatMsgID), &keyboard)
}

func (c *Controller) editMessage(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if err := c.bot.EditMessage(chatID, messageID, text, keyboard); err != nil {
		logrus.WithError(err).Errorf("Failed to edit message %d in chat %d", messageID, chatID)
	}
}
