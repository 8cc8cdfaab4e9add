package lang

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var lang = "en"

// SetLanguage selects the language used by GetMessage. Unknown languages
// fall back to English per message.
func SetLanguage(code string) {
	lang = code
}

func GetMessage(id MessageID, args ...interface{}) string {
	if m, ok := messages[id]; ok {
		if msg, ok := m[lang]; ok {
			return fmt.Sprintf(msg, args...)
		}
		if msg, ok := m["en"]; ok {
			return fmt.Sprintf(msg, args...)
		}
	}
	logrus.Warnf("Message not found for ID: %s", id)
	return "Message not found"
}
