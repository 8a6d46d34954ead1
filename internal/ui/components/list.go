package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ListItem represents an item in a list
type ListItem struct {
	ID    string
	Title string
	Icon  string
}

// List is a vertical menu with one selected row
type List struct {
	Items    []ListItem
	Selected int
	Focused  bool
	Width    int
	Suffix   string // drawn at the right edge of every row
	Cursor   string
	Palette  Palette
}

// NewList creates a new list component
func NewList(width int) *List {
	return &List{
		Width:   width,
		Palette: DefaultPalette,
	}
}

// SetItems sets all items in the list, keeping the selection in range
func (l *List) SetItems(items []ListItem) {
	l.Items = items
	l.Select(l.Selected)
}

// Select moves the selection to i, clamped to the item range
func (l *List) Select(i int) {
	l.Selected = max(0, min(i, len(l.Items)-1))
}

// GetSelectedItem returns the currently selected item
func (l *List) GetSelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render renders the list
func (l *List) Render() string {
	rows := make([]string, 0, len(l.Items))
	for i := range l.Items {
		rows = append(rows, l.renderItem(&l.Items[i], l.Focused && i == l.Selected))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderItem renders a single list item
func (l *List) renderItem(item *ListItem, selected bool) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(l.Palette.Foreground)
	if selected {
		prefix = l.Cursor + " "
		if l.Cursor == "" {
			prefix = "> "
		}
		style = style.Background(l.Palette.Selected).Foreground(l.Palette.Primary).Bold(true)
	}

	text := prefix
	if item.Icon != "" {
		text += item.Icon + "  "
	}
	text += item.Title

	suffix := lipgloss.NewStyle().Foreground(l.Palette.Muted).Render(l.Suffix)
	gap := l.Width - lipgloss.Width(text) - lipgloss.Width(suffix)
	if gap < 1 {
		gap = 1
	}

	return style.Render(text+lipgloss.NewStyle().Width(gap).Render("")) + suffix
}
