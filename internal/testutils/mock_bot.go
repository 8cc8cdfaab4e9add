package testutils

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockMessage captures a single message sent by MockBot.
type MockMessage struct {
	ChatID   int64
	Text     string
	Keyboard any
}

// MockEdit captures a single message edit performed by MockBot.
type MockEdit struct {
	ChatID    int64
	MessageID int
	Text      string
	Keyboard  *tgbotapi.InlineKeyboardMarkup
}

// MockAttachment captures an audio or video delivery performed by MockBot.
type MockAttachment struct {
	ChatID   int64
	FilePath string
	Caption  string
	Title    string
	IsAudio  bool
}

// MockBot implements bot.Service for testing.
// SentMessages, Edits and Attachments collect everything sent through it.
type MockBot struct {
	mu sync.Mutex

	SentMessages      []MockMessage
	Edits             []MockEdit
	Attachments       []MockAttachment
	AnsweredCallbacks []string

	// MemberStatus is returned by GetChatMember; MemberError, if set, wins.
	MemberStatus string
	MemberError  error

	// SendError, if set, is returned by SendAudio and SendVideo.
	SendError error

	nextMessageID int
}

func (m *MockBot) SendMessage(chatID int64, text string, keyboard any) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, MockMessage{
		ChatID:   chatID,
		Text:     text,
		Keyboard: keyboard,
	})
	m.nextMessageID++
	return m.nextMessageID, nil
}

func (m *MockBot) EditMessage(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Edits = append(m.Edits, MockEdit{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		Keyboard:  keyboard,
	})
	return nil
}

func (m *MockBot) AnswerCallbackQuery(callbackConfig tgbotapi.CallbackConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnsweredCallbacks = append(m.AnsweredCallbacks, callbackConfig.CallbackQueryID)
}

func (m *MockBot) SendAudio(chatID int64, filePath, caption, title string) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attachments = append(m.Attachments, MockAttachment{
		ChatID:   chatID,
		FilePath: filePath,
		Caption:  caption,
		Title:    title,
		IsAudio:  true,
	})
	return nil
}

func (m *MockBot) SendVideo(chatID int64, filePath, caption string) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attachments = append(m.Attachments, MockAttachment{
		ChatID:   chatID,
		FilePath: filePath,
		Caption:  caption,
	})
	return nil
}

func (m *MockBot) GetChatMember(_ tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	if m.MemberError != nil {
		return tgbotapi.ChatMember{}, m.MemberError
	}
	status := m.MemberStatus
	if status == "" {
		status = "member"
	}
	return tgbotapi.ChatMember{Status: status}, nil
}

// GetLastMessage returns the most recently sent message, or nil if none.
func (m *MockBot) GetLastMessage() *MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// GetLastEdit returns the most recent message edit, or nil if none.
func (m *MockBot) GetLastEdit() *MockEdit {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Edits) == 0 {
		return nil
	}
	return &m.Edits[len(m.Edits)-1]
}
