package components

import "github.com/charmbracelet/lipgloss"

// ButtonVariant selects a button's look
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonOutline
	ButtonGhost
)

// Button is a pressable label. Key is the keyboard shortcut shown next to it.
type Button struct {
	Label   string
	Key     string
	Variant ButtonVariant
	Primary bool
	Palette Palette
}

// NewButton creates a default button
func NewButton(label, key string) *Button {
	return &Button{Label: label, Key: key, Palette: DefaultPalette}
}

// SetVariant sets the button variant
func (b *Button) SetVariant(v ButtonVariant) *Button {
	b.Variant = v
	return b
}

// SetPrimary gives the button the emphasized look
func (b *Button) SetPrimary(primary bool) *Button {
	b.Primary = primary
	return b
}

// SetPalette sets the colors
func (b *Button) SetPalette(p Palette) *Button {
	b.Palette = p
	return b
}

// Render renders the button
func (b *Button) Render() string {
	label := b.Label
	if b.Key != "" {
		label += " " + lipgloss.NewStyle().Foreground(b.Palette.Muted).Render("("+b.Key+")")
	}

	style := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case b.Primary:
		style = style.Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(b.Palette.Primary)
	case b.Variant == ButtonOutline:
		style = style.Border(lipgloss.RoundedBorder()).
			BorderForeground(b.Palette.Border).
			Foreground(b.Palette.Foreground)
	case b.Variant == ButtonGhost:
		style = style.Foreground(b.Palette.Accent)
	default:
		style = style.Foreground(b.Palette.Foreground).Background(b.Palette.Selected)
	}

	return style.Render(label)
}
