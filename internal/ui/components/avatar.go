package components

import "github.com/charmbracelet/lipgloss"

// Avatar shows a pet picture. Terminals cannot draw the image, so the
// fallback (the name's initial on the pet's color) is always what renders;
// Image is kept for plain-text output.
type Avatar struct {
	Image    string
	Fallback string
	Color    lipgloss.TerminalColor
	Ring     bool // highlighted border
	Palette  Palette
}

// NewAvatar creates an avatar
func NewAvatar(image, fallback string, color lipgloss.TerminalColor) *Avatar {
	if fallback == "" {
		fallback = "?"
	}
	return &Avatar{Image: image, Fallback: fallback, Color: color, Palette: DefaultPalette}
}

// SetRing toggles the highlighted border
func (a *Avatar) SetRing(ring bool) *Avatar {
	a.Ring = ring
	return a
}

// SetPalette sets the colors
func (a *Avatar) SetPalette(p Palette) *Avatar {
	a.Palette = p
	return a
}

// Render renders the avatar as a small rounded box
func (a *Avatar) Render() string {
	border := a.Palette.Border
	if a.Ring {
		border = a.Palette.Primary
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Bold(true)
	if a.Color != nil {
		style = style.Foreground(a.Color)
	}
	return style.Render(a.Fallback)
}
