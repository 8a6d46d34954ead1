package emoji

// emojiMap holds the icon set: [emoji, fallback]
var emojiMap = map[string][2]string{
	// navigation
	"home":     {"🏠", "[H]"},
	"history":  {"🕘", "[L]"},
	"plus":     {"➕", "[+]"},
	"chart":    {"📊", "[S]"},
	"settings": {"⚙️", "[*]"},

	// dashboard
	"footprints": {"🐾", "[~]"},
	"bell":       {"🔔", "[!]"},
	"users":      {"👥", "[U]"},
	"heart":      {"💗", "<3"},
	"clock":      {"⏱️", "[T]"},
	"pin":        {"📍", "[D]"},
	"trophy":     {"🏆", "[G]"},
	"calendar":   {"📅", "[C]"},
	"dot":        {"🔴", "*"},

	// record
	"play":     {"▶️", "[>]"},
	"pause":    {"⏸️", "[||]"},
	"stop":     {"⏹️", "[#]"},
	"camera":   {"📷", "[P]"},
	"droplets": {"💧", "[W]"},
	"poop":     {"💩", "[O]"},

	// settings
	"zap":     {"⚡", "[Z]"},
	"chevron": {"›", ">"},
	"cursor":  {"▶", ">"},

	// status
	"success": {"✅", "[OK]"},
	"error":   {"❌", "[ERR]"},
	"warning": {"⚠️", "[WRN]"},
	"info":    {"ℹ️", "[INF]"},
	"wave":    {"👋", "bye"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}

// Keys returns every known icon key
func Keys() []string {
	keys := make([]string, 0, len(emojiMap))
	for k := range emojiMap {
		keys = append(keys, k)
	}
	return keys
}
