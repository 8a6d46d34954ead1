package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/osanpo/internal/emoji"
)

const navGap = 2

var navIcons = map[Screen]string{
	ScreenDashboard: "home",
	ScreenHistory:   "history",
	ScreenRecord:    "plus",
	ScreenStats:     "chart",
	ScreenSettings:  "settings",
}

// navZone is the column range [start, end) of one entry on the nav row
type navZone struct {
	screen     Screen
	start, end int
}

// renderNavEntry renders one entry. The record entry is always an emphasized
// pill with its glyph only.
func (m *Model) renderNavEntry(s Screen) string {
	icon := emoji.GetEmoji(navIcons[s])

	if s == ScreenRecord {
		style := m.styles.NavRecord
		if m.screen == s {
			style = style.Underline(true)
		}
		return style.Render(icon)
	}

	style := m.styles.NavItem
	if m.screen == s {
		style = m.styles.NavActive
	}
	return style.Render(icon + " " + m.labels.Nav[s])
}

// navRow renders the entries and reports where each one landed, relative to
// the start of the row
func (m *Model) navRow() (string, []navZone) {
	entries := make([]string, 0, len(navOrder))
	zones := make([]navZone, 0, len(navOrder))

	x := 0
	for i, s := range navOrder {
		if i > 0 {
			entries = append(entries, strings.Repeat(" ", navGap))
			x += navGap
		}
		entry := m.renderNavEntry(s)
		w := lipgloss.Width(entry)
		zones = append(zones, navZone{screen: s, start: x, end: x + w})
		entries = append(entries, entry)
		x += w
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, entries...), zones
}

// navOffset is the left padding that centers a row of rowWidth
func (m *Model) navOffset(rowWidth int) int {
	return max(0, (m.width-rowWidth)/2)
}

// renderNav renders the bottom navigation bar
func (m *Model) renderNav() string {
	row, _ := m.navRow()
	row = strings.Repeat(" ", m.navOffset(lipgloss.Width(row))) + row

	bar := m.styles.NavBar
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	return bar.Render(row)
}

// navHit maps a click to a navigation entry. The bar sits on the last two rows
// of the view.
func (m *Model) navHit(x, y int) (Screen, bool) {
	if m.height <= 0 || y < m.height-lipgloss.Height(m.renderNav()) {
		return ScreenDashboard, false
	}

	row, zones := m.navRow()
	x -= m.navOffset(lipgloss.Width(row))
	for _, z := range zones {
		if x >= z.start && x < z.end {
			return z.screen, true
		}
	}
	return ScreenDashboard, false
}
