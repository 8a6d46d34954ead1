package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/yildizm/osanpo/internal/ui/components"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// UI colors
	Border     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Highlight  lipgloss.AdaptiveColor

	// Special colors
	Progress lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor

	// Pet color tokens
	Orange lipgloss.AdaptiveColor
	Pink   lipgloss.AdaptiveColor
}

func adaptive(c [2]string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: c[0], Dark: c[1]}
}

// buildTheme creates a theme with the given colors
func buildTheme(name string, primary, secondary, accent, success, warning, errorColor, info, border, foreground, muted, highlight, progress, selected, orange, pink [2]string) Theme {
	return Theme{
		Name:       name,
		Primary:    adaptive(primary),
		Secondary:  adaptive(secondary),
		Accent:     adaptive(accent),
		Success:    adaptive(success),
		Warning:    adaptive(warning),
		Error:      adaptive(errorColor),
		Info:       adaptive(info),
		Border:     adaptive(border),
		Foreground: adaptive(foreground),
		Muted:      adaptive(muted),
		Highlight:  adaptive(highlight),
		Progress:   adaptive(progress),
		Selected:   adaptive(selected),
		Orange:     adaptive(orange),
		Pink:       adaptive(pink),
	}
}

// Available themes
var (
	SakuraTheme = buildTheme("sakura",
		[2]string{"#DB2777", "#F472B6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#9333EA", "#C084FC"},
		[2]string{"#16A34A", "#4ADE80"}, [2]string{"#EA580C", "#FB923C"}, [2]string{"#DC2626", "#F87171"},
		[2]string{"#2563EB", "#60A5FA"}, [2]string{"#FBCFE8", "#831843"}, [2]string{"#1F2937", "#F9FAFB"},
		[2]string{"#9CA3AF", "#6B7280"}, [2]string{"#FDF2F8", "#3B0764"}, [2]string{"#EC4899", "#F472B6"},
		[2]string{"#FCE7F3", "#500724"}, [2]string{"#EA580C", "#FDBA74"}, [2]string{"#DB2777", "#F9A8D4"})

	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#7C3AED", "#A855F7"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#0891B2", "#06B6D4"}, [2]string{"#D1D5DB", "#374151"}, [2]string{"#111827", "#F9FAFB"},
		[2]string{"#6B7280", "#9CA3AF"}, [2]string{"#FEF3C7", "#1F2937"}, [2]string{"#059669", "#10B981"},
		[2]string{"#DBEAFE", "#1E3A8A"}, [2]string{"#C2410C", "#FB923C"}, [2]string{"#BE185D", "#F472B6"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#0066CC", "#4499FF"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#000000", "#FFFFFF"},
		[2]string{"#666666", "#BBBBBB"}, [2]string{"#FFFF00", "#444444"}, [2]string{"#006600", "#00FF00"},
		[2]string{"#CCCCCC", "#333333"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0066", "#FF66CC"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#2B6CB0", "#63B3ED"}, [2]string{"#E2E8F0", "#2D3748"}, [2]string{"#2D3748", "#F7FAFC"},
		[2]string{"#A0AEC0", "#718096"}, [2]string{"#F7FAFC", "#2D3748"}, [2]string{"#2F855A", "#68D391"},
		[2]string{"#EDF2F7", "#2D3748"}, [2]string{"#4A5568", "#CBD5E0"}, [2]string{"#4A5568", "#CBD5E0"})
)

var themes = map[string]*Theme{
	"sakura":        &SakuraTheme,
	"default":       &DefaultTheme,
	"high-contrast": &HighContrastTheme,
	"minimal":       &MinimalTheme,
}

// Current active theme
var currentTheme = SakuraTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme
func SetTheme(theme *Theme) {
	currentTheme = *theme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	theme, ok := themes[name]
	if !ok {
		return false
	}
	SetTheme(theme)
	return true
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal", "sakura"}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ApplyColorMode sets lipgloss' color profile for a config color mode:
// "never" strips colors, "always" forces true color, anything else detects.
func ApplyColorMode(mode string) {
	switch {
	case mode == "never" || IsColorDisabled():
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// PetColor resolves a pet's color token
func (t *Theme) PetColor(token string) lipgloss.TerminalColor {
	switch token {
	case "orange":
		return t.Orange
	case "pink":
		return t.Pink
	default:
		return t.Primary
	}
}

// Palette converts the theme into the colors components draw with
func (t *Theme) Palette() components.Palette {
	return components.Palette{
		Primary:    t.Primary,
		Secondary:  t.Secondary,
		Accent:     t.Accent,
		Foreground: t.Foreground,
		Muted:      t.Muted,
		Border:     t.Border,
		Selected:   t.Selected,
		Progress:   t.Progress,
	}
}

// GetStyles builds the common styles from the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme:   theme,
		Palette: theme.Palette(),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		Selected: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Bold(true),

		Row: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		RowSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		HeaderBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.Border),

		NavBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(theme.Border),

		NavItem: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		NavRecord: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(theme.Primary).
			Bold(true).
			Padding(0, 2),
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme   Theme
	Palette components.Palette

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Interactive styles
	Selected    lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style

	// Layout styles
	HeaderBar lipgloss.Style
	NavBar    lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavRecord lipgloss.Style
}
