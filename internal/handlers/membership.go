package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ytfetchbot/internal/lang"
)

func (c *Controller) joinKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(lang.GetMessage(lang.JoinChannelBtnMsgID), c.joinLink),
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.CheckMembershipBtnID), checkMembershipCallback),
		),
	)
}

func (c *Controller) sendJoinPrompt(chatID int64) {
	c.sendMessage(chatID, lang.GetMessage(lang.JoinRequiredMsgID), c.joinKeyboard())
}

// handleMembershipCheck re-runs the gate for the "Check Membership" button
// and edits the prompt in place with the outcome.
func (c *Controller) handleMembershipCheck(query *tgbotapi.CallbackQuery) {
	c.bot.AnswerCallbackQuery(tgbotapi.NewCallback(query.ID, ""))

	text := lang.GetMessage(lang.StillNotMemberMsgID)
	if c.gate.IsMember(query.From.ID) {
		text = lang.GetMessage(lang.JoinThanksMsgID)
	}

	keyboard := c.joinKeyboard()
	if err := c.bot.EditMessage(query.Message.Chat.ID, query.Message.MessageID, text, &keyboard); err != nil {
		c.sendMessage(query.Message.Chat.ID, text, keyboard)
	}
}
