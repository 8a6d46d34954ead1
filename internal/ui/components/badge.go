package components

import "github.com/charmbracelet/lipgloss"

// BadgeVariant selects a badge's look
type BadgeVariant int

const (
	BadgeSecondary BadgeVariant = iota
	BadgeOutline
)

// Badge is a short inline label
type Badge struct {
	Text    string
	Variant BadgeVariant
	Color   lipgloss.TerminalColor
	Palette Palette
}

// NewBadge creates a secondary badge
func NewBadge(text string) *Badge {
	return &Badge{Text: text, Palette: DefaultPalette}
}

// NewOutlineBadge creates an outline badge tinted with color
func NewOutlineBadge(text string, color lipgloss.TerminalColor) *Badge {
	return &Badge{Text: text, Variant: BadgeOutline, Color: color, Palette: DefaultPalette}
}

// SetPalette sets the colors
func (b *Badge) SetPalette(p Palette) *Badge {
	b.Palette = p
	return b
}

// Render renders the badge as [text]
func (b *Badge) Render() string {
	if b.Variant == BadgeOutline {
		color := b.Color
		if color == nil {
			color = b.Palette.Secondary
		}
		return lipgloss.NewStyle().Foreground(color).Render("[" + b.Text + "]")
	}
	return lipgloss.NewStyle().
		Foreground(b.Palette.Primary).
		Background(b.Palette.Selected).
		Bold(true).
		Render("[" + b.Text + "]")
}

// Badges joins rendered badges with single spaces
func Badges(badges ...*Badge) string {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		if b != nil {
			parts = append(parts, b.Render())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(parts, " ")...)
}

func interleave(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
