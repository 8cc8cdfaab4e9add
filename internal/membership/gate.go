package membership

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Status int

const (
	StatusMember Status = iota
	StatusNotMember
	// StatusUnknown means the membership oracle could not be reached.
	// Callers treat it as not-member (fail closed); it exists so the log can
	// tell a denied user apart from an unreachable oracle.
	StatusUnknown
)

// ChatMemberGetter is the slice of the Telegram API the gate needs.
type ChatMemberGetter interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Gate answers whether a user belongs to the required channel. The status is
// queried fresh on every check, never cached.
type Gate struct {
	api       ChatMemberGetter
	channelID int64
}

func NewGate(api ChatMemberGetter, channelID int64) *Gate {
	return &Gate{api: api, channelID: channelID}
}

func (g *Gate) Check(userID int64) Status {
	member, err := g.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: g.channelID,
			UserID: userID,
		},
	})
	if err != nil {
		logrus.WithError(err).Warnf("Error checking membership for user %d, treating as not a member", userID)
		return StatusUnknown
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return StatusMember
	default:
		return StatusNotMember
	}
}

// IsMember reports whether the user may use the bot. Oracle failures count
// as not a member.
func (g *Gate) IsMember(userID int64) bool {
	return g.Check(userID) == StatusMember
}
