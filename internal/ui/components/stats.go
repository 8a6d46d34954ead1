package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatCard shows one headline number with an icon and caption
type StatCard struct {
	Icon    string
	Value   string
	Caption string
	Color   lipgloss.TerminalColor
	Width   int
	Palette Palette
}

// NewStatCard creates a stat card
func NewStatCard(icon, value, caption string) *StatCard {
	return &StatCard{
		Icon:    icon,
		Value:   value,
		Caption: caption,
		Width:   18,
		Palette: DefaultPalette,
	}
}

// SetColor sets the icon and border tint
func (s *StatCard) SetColor(color lipgloss.TerminalColor) *StatCard {
	s.Color = color
	return s
}

// SetWidth sets the outer width
func (s *StatCard) SetWidth(width int) *StatCard {
	s.Width = width
	return s
}

// SetPalette sets the colors
func (s *StatCard) SetPalette(p Palette) *StatCard {
	s.Palette = p
	return s
}

// Render renders the stat card
func (s *StatCard) Render() string {
	tint := s.Color
	if tint == nil {
		tint = s.Palette.Primary
	}

	icon := lipgloss.NewStyle().Foreground(tint).Render(s.Icon)
	value := lipgloss.NewStyle().Foreground(s.Palette.Foreground).Bold(true).Render(s.Value)
	caption := lipgloss.NewStyle().Foreground(s.Palette.Secondary).Render(s.Caption)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tint).
		Align(lipgloss.Center)
	if s.Width > 2 {
		box = box.Width(s.Width - 2)
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Center, icon, value, caption))
}

// StatRow lays stat cards out side by side, splitting width evenly
type StatRow struct {
	cards []*StatCard
	width int
}

// NewStatRow creates a row that fills width
func NewStatRow(width int) *StatRow {
	return &StatRow{width: width}
}

// AddCard adds a stat card to the row
func (r *StatRow) AddCard(card *StatCard) *StatRow {
	r.cards = append(r.cards, card)
	return r
}

// Render renders the row
func (r *StatRow) Render() string {
	if len(r.cards) == 0 {
		return ""
	}

	each := r.width / len(r.cards)
	rendered := make([]string, 0, len(r.cards))
	for _, card := range r.cards {
		rendered = append(rendered, card.SetWidth(each).Render())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
