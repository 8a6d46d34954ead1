package components

import "github.com/charmbracelet/lipgloss"

// Card is a bordered container with an optional title and action
type Card struct {
	Title     string
	Icon      string
	Action    string // rendered right of the title
	Body      string
	Width     int
	Highlight bool
	Palette   Palette
}

// NewCard creates a card
func NewCard(title, body string, width int) *Card {
	return &Card{Title: title, Body: body, Width: width, Palette: DefaultPalette}
}

// SetIcon sets the title icon
func (c *Card) SetIcon(icon string) *Card {
	c.Icon = icon
	return c
}

// SetAction sets the header action
func (c *Card) SetAction(action string) *Card {
	c.Action = action
	return c
}

// SetHighlight draws the border in the primary color
func (c *Card) SetHighlight(highlight bool) *Card {
	c.Highlight = highlight
	return c
}

// SetPalette sets the colors
func (c *Card) SetPalette(p Palette) *Card {
	c.Palette = p
	return c
}

// Render renders the card
func (c *Card) Render() string {
	border := c.Palette.Border
	if c.Highlight {
		border = c.Palette.Primary
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	inner := c.Width - box.GetHorizontalFrameSize()
	if c.Width > 0 && inner > 0 {
		box = box.Width(c.Width - box.GetHorizontalBorderSize())
	}

	if c.Title == "" {
		return box.Render(c.Body)
	}

	title := lipgloss.NewStyle().Foreground(c.Palette.Foreground).Bold(true).Render(c.Title)
	if c.Icon != "" {
		title = c.Icon + " " + title
	}
	if c.Action != "" {
		gap := inner - lipgloss.Width(title) - lipgloss.Width(c.Action)
		if gap < 1 {
			gap = 1
		}
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), c.Action)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", c.Body))
}
