package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	tmsconfig "ytfetchbot/internal/config"
)

// Service is the narrow view of the Telegram transport the handlers and the
// fetch pipeline depend on. The real implementation is Bot; tests use a mock.
type Service interface {
	SendMessage(chatID int64, text string, keyboard any) (int, error)
	EditMessage(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error
	AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig)
	SendAudio(chatID int64, filePath, caption, title string) error
	SendVideo(chatID int64, filePath, caption string) error
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

type Bot struct {
	Api *tgbotapi.BotAPI
}

func InitBot(config *tmsconfig.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		logrus.WithError(err).Error("Error creating bot")
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{Api: api}, nil
}

func (b *Bot) SendMessage(chatID int64, text string, keyboard any) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sent, err := b.Api.Send(msg)
	if err != nil {
		logrus.WithError(err).Errorf("Message (%s) not sent", text)
		return 0, err
	}
	return sent.MessageID, nil
}

func (b *Bot) EditMessage(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	var edit tgbotapi.EditMessageTextConfig
	if keyboard != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *keyboard)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	if _, err := b.Api.Send(edit); err != nil {
		logrus.WithError(err).Errorf("Failed to edit message %d", messageID)
		return err
	}
	return nil
}

func (b *Bot) AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig) {
	if _, err := b.Api.Request(callbackConfig); err != nil {
		logrus.WithError(err).Error("Failed to answer callback query")
	}
}

func (b *Bot) SendAudio(chatID int64, filePath, caption, title string) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(filePath))
	audio.Caption = caption
	audio.Title = title
	if _, err := b.Api.Send(audio); err != nil {
		logrus.WithError(err).Errorf("Failed to send audio %s", filePath)
		return err
	}
	return nil
}

func (b *Bot) SendVideo(chatID int64, filePath, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(filePath))
	video.Caption = caption
	if _, err := b.Api.Send(video); err != nil {
		logrus.WithError(err).Errorf("Failed to send video %s", filePath)
		return err
	}
	return nil
}

func (b *Bot) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	return b.Api.GetChatMember(config)
}

func (b *Bot) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.Api.GetUpdatesChan(config)
}
