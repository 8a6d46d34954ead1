package cli

import (
	"github.com/yildizm/osanpo/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// statusLine prefixes a message with a status icon
func statusLine(status, msg string) string {
	return GetEmoji(status) + " " + msg
}
