package membership

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

type fakeOracle struct {
	status string
	err    error

	lastChatID int64
	lastUserID int64
}

func (f *fakeOracle) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.lastChatID = config.ChatID
	f.lastUserID = config.UserID
	if f.err != nil {
		return tgbotapi.ChatMember{}, f.err
	}
	return tgbotapi.ChatMember{Status: f.status}, nil
}

func TestGateCheck(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		err      error
		expected Status
		isMember bool
	}{
		{
			name:     "Member is authorized",
			status:   "member",
			expected: StatusMember,
			isMember: true,
		},
		{
			name:     "Administrator is authorized",
			status:   "administrator",
			expected: StatusMember,
			isMember: true,
		},
		{
			name:     "Creator is authorized",
			status:   "creator",
			expected: StatusMember,
			isMember: true,
		},
		{
			name:     "Left user is not authorized",
			status:   "left",
			expected: StatusNotMember,
			isMember: false,
		},
		{
			name:     "Kicked user is not authorized",
			status:   "kicked",
			expected: StatusNotMember,
			isMember: false,
		},
		{
			name:     "Restricted user is not authorized",
			status:   "restricted",
			expected: StatusNotMember,
			isMember: false,
		},
		{
			name:     "Oracle error fails closed",
			err:      errors.New("Bad Request: user not found"),
			expected: StatusUnknown,
			isMember: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := &fakeOracle{status: tt.status, err: tt.err}
			gate := NewGate(oracle, -1001958514515)

			assert.Equal(t, tt.expected, gate.Check(42))
			assert.Equal(t, tt.isMember, gate.IsMember(42))
		})
	}
}

func TestGateQueriesConfiguredChannel(t *testing.T) {
	oracle := &fakeOracle{status: "member"}
	gate := NewGate(oracle, -100123)

	gate.Check(7)

	assert.Equal(t, int64(-100123), oracle.lastChatID)
	assert.Equal(t, int64(7), oracle.lastUserID)
}
