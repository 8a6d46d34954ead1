package components

import "github.com/charmbracelet/lipgloss"

// Palette carries the theme colors components draw with. The ui package fills
// it from the active theme so components stay free of theme globals.
type Palette struct {
	Primary    lipgloss.TerminalColor
	Secondary  lipgloss.TerminalColor
	Accent     lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Selected   lipgloss.TerminalColor
	Progress   lipgloss.TerminalColor
}

// DefaultPalette is used when a component is rendered without a theme
var DefaultPalette = Palette{
	Primary:    lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"},
	Secondary:  lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
	Accent:     lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
	Foreground: lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"},
	Muted:      lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
	Border:     lipgloss.AdaptiveColor{Light: "#FBCFE8", Dark: "#831843"},
	Selected:   lipgloss.AdaptiveColor{Light: "#FCE7F3", Dark: "#500724"},
	Progress:   lipgloss.AdaptiveColor{Light: "#EC4899", Dark: "#F472B6"},
}
