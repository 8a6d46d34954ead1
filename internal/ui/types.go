package ui

// Screen identifies one of the five top-level views
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenRecord
	ScreenHistory
	ScreenStats
	ScreenSettings
)

// navOrder is the order of entries in the navigation bar
var navOrder = []Screen{ScreenDashboard, ScreenHistory, ScreenRecord, ScreenStats, ScreenSettings}

var screenNames = map[Screen]string{
	ScreenDashboard: "dashboard",
	ScreenRecord:    "record",
	ScreenHistory:   "history",
	ScreenStats:     "stats",
	ScreenSettings:  "settings",
}

// String returns the screen identifier. Unknown values report as dashboard.
func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return screenNames[ScreenDashboard]
}

// Valid reports whether s is one of the five screens
func (s Screen) Valid() bool {
	_, ok := screenNames[s]
	return ok
}

// ParseScreen maps an identifier to a screen. Unknown identifiers return the
// dashboard and false.
func ParseScreen(name string) (Screen, bool) {
	for s, n := range screenNames {
		if n == name {
			return s, true
		}
	}
	return ScreenDashboard, false
}

// Screens returns every screen in navigation order
func Screens() []Screen {
	out := make([]Screen, len(navOrder))
	copy(out, navOrder)
	return out
}

// ScreenNames returns every screen identifier in navigation order
func ScreenNames() []string {
	names := make([]string, 0, len(navOrder))
	for _, s := range navOrder {
		names = append(names, s.String())
	}
	return names
}

// navIndex returns the position of s in the navigation bar
func navIndex(s Screen) int {
	for i, n := range navOrder {
		if n == s {
			return i
		}
	}
	return 0
}
