package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/osanpo/internal/emoji"
	"github.com/yildizm/osanpo/internal/ui/components"
	"github.com/yildizm/osanpo/internal/walk"
)

// renderScreen renders the active screen. Anything unrecognized renders the
// dashboard.
func (m *Model) renderScreen() string {
	switch m.screen {
	case ScreenRecord:
		return m.renderRecord()
	case ScreenHistory:
		return m.renderHistory()
	case ScreenStats:
		return m.renderStats()
	case ScreenSettings:
		return m.renderSettings()
	default:
		return m.renderDashboard()
	}
}

// card wraps body in a themed card as wide as the content column
func (m *Model) card(icon, title, body string) *components.Card {
	c := components.NewCard(title, body, m.contentWidth()).SetPalette(m.styles.Palette)
	if icon != "" {
		c.SetIcon(emoji.GetEmoji(icon))
	}
	return c
}

// cardInner is the usable width inside a card
func (m *Model) cardInner() int {
	return m.contentWidth() - 4
}

// screenHeader renders a centered title with a rule below it
func (m *Model) screenHeader(title string) string {
	return m.styles.HeaderBar.
		Width(m.contentWidth()).
		Align(lipgloss.Center).
		Render(m.styles.Header.Render(title))
}

func (m *Model) stack(parts ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, interleaveBlank(parts)...)
}

func interleaveBlank(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, p)
	}
	return out
}

func (m *Model) avatar(p walk.Pet, ring bool) string {
	return components.NewAvatar(p.Avatar, p.Initial(), m.styles.Theme.PetColor(p.Color)).
		SetPalette(m.styles.Palette).
		SetRing(ring).
		Render()
}

func (m *Model) outline(icon string, value int, color lipgloss.TerminalColor) *components.Badge {
	return components.NewOutlineBadge(fmt.Sprintf("%s %d", emoji.GetEmoji(icon), value), color).
		SetPalette(m.styles.Palette)
}

// toiletBadges renders the pee, poop and photo badges of a walk, each only
// when its count is positive
func (m *Model) toiletBadges(w walk.WalkRecord) []*components.Badge {
	var badges []*components.Badge
	if w.Toilet.Pee > 0 {
		badges = append(badges, m.outline("droplets", w.Toilet.Pee, m.styles.Theme.Info))
	}
	if w.Toilet.Poop > 0 {
		badges = append(badges, m.outline("poop", w.Toilet.Poop, m.styles.Theme.Warning))
	}
	if w.Photos > 0 {
		badges = append(badges, m.outline("camera", w.Photos, m.styles.Theme.Pink))
	}
	return badges
}

func (m *Model) renderDashboard() string {
	return m.stack(
		m.renderDashboardHeader(),
		m.renderPetSelection(),
		m.renderQuickStats(),
		m.renderGoals(),
		m.renderRecentWalks(),
	)
}

func (m *Model) renderDashboardHeader() string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(emoji.GetEmoji("footprints")+" "+m.labels.AppTitle),
		m.styles.Subtitle.Render(m.labels.AppSubtitle),
	)
	actions := emoji.GetEmoji("bell") + m.styles.Error.Render(emoji.GetEmoji("dot")) + "  " + emoji.GetEmoji("users")

	w := m.contentWidth()
	gap := max(1, w-lipgloss.Width(title)-lipgloss.Width(actions))
	row := lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), actions)
	return m.styles.HeaderBar.Width(w).Render(row)
}

// renderPetSelection lists the pets; exactly one carries the selected badge
func (m *Model) renderPetSelection() string {
	rowWidth := m.cardInner() - 2
	rows := make([]string, 0, m.catalog.PetCount())

	for i, p := range m.catalog.Pets() {
		selected := i == m.selectedPet

		name := m.styles.Header.Render(p.Name)
		if selected {
			name += " " + components.NewBadge(m.labels.SelectedBadge).SetPalette(m.styles.Palette).Render()
		}
		info := lipgloss.JoinVertical(lipgloss.Left,
			name,
			m.styles.Subtitle.Render(p.Kind+" • "+p.Age),
			m.styles.Muted.Render(fmt.Sprintf(m.labels.PetToday, p.TodayWalks)+"  "+fmt.Sprintf(m.labels.MinutesUnit, p.TotalMinutes)),
		)
		body := lipgloss.JoinHorizontal(lipgloss.Top, m.avatar(p, selected), " ", info)

		style := m.styles.Row
		if selected {
			style = m.styles.RowSelected
		}
		rows = append(rows, style.Width(rowWidth).Render(body))
	}

	return m.card("heart", m.labels.Companions, lipgloss.JoinVertical(lipgloss.Left, rows...)).Render()
}

func (m *Model) renderQuickStats() string {
	today := m.catalog.Today()
	theme := m.styles.Theme
	return components.NewStatRow(m.contentWidth()).
		AddCard(components.NewStatCard(emoji.GetEmoji("clock"), today.TotalTime, m.labels.TodayTotal).SetColor(theme.Info).SetPalette(m.styles.Palette)).
		AddCard(components.NewStatCard(emoji.GetEmoji("pin"), today.Distance, m.labels.TodayDistance).SetColor(theme.Success).SetPalette(m.styles.Palette)).
		AddCard(components.NewStatCard(emoji.GetEmoji("footprints"), today.Walks, m.labels.TodayWalks).SetColor(theme.Orange).SetPalette(m.styles.Palette)).
		Render()
}

func (m *Model) renderGoals() string {
	goals := m.catalog.Today().Goals
	bars := make([]string, 0, len(goals))
	for _, g := range goals {
		bar := components.NewProgressBar(m.cardInner()-5).
			SetValue(g.Progress).
			SetLabel(g.Label, g.Current+" / "+g.Target).
			SetPalette(m.styles.Palette)
		bars = append(bars, bar.Render())
	}
	return m.card("trophy", m.labels.TodayGoal, m.stack(bars...)).Render()
}

func (m *Model) renderRecentWalks() string {
	inner := m.cardInner()
	rows := make([]string, 0, 3)
	for _, w := range m.catalog.Recent(3) {
		left := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Header.Render(fmt.Sprintf(m.labels.WalkWith, w.Pet)),
			m.styles.Subtitle.Render(w.Time),
			components.Badges(m.toiletBadges(w)...),
		)
		right := lipgloss.JoinVertical(lipgloss.Right,
			m.styles.Subtitle.Render(emoji.GetEmoji("clock")+" "+w.Duration),
			m.styles.Subtitle.Render(emoji.GetEmoji("pin")+" "+w.Distance),
		)
		left = lipgloss.JoinHorizontal(lipgloss.Top, w.Mood+" ", left)
		gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(right))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right))
	}

	action := components.NewButton(m.labels.ViewAll, "a").
		SetVariant(components.ButtonGhost).
		SetPalette(m.styles.Palette).
		Render()
	return m.card("calendar", m.labels.RecentWalks, m.stack(rows...)).SetAction(action).Render()
}

func (m *Model) renderRecord() string {
	return m.stack(
		m.screenHeader(m.labels.RecordTitle),
		m.renderTimerCard(),
		m.renderQuickActions(),
		m.renderToiletCard(),
	)
}

func (m *Model) renderTimerCard() string {
	inner := m.cardInner()
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	toggleLabel := m.labels.Start
	if m.timer.Running {
		toggleLabel = m.labels.Pause
	}
	toggle := components.NewButton(m.timer.Glyph()+" "+toggleLabel, "s").
		SetPrimary(true).
		SetPalette(m.styles.Palette).
		Render()
	reset := components.NewButton(emoji.GetEmoji("stop")+" "+m.labels.Stop, "r").
		SetVariant(components.ButtonOutline).
		SetPalette(m.styles.Palette).
		Render()
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, toggle, "   ", reset)

	mini := func(icon, value, caption string) string {
		return lipgloss.NewStyle().Width(inner/3).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				emoji.GetEmoji(icon),
				m.styles.Body.Render(value),
				m.styles.Muted.Render(caption),
			))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		mini("pin", "0.0km", m.labels.Distance),
		mini("camera", fmt.Sprintf(m.labels.PhotoCount, 0), m.labels.Photos),
		mini("droplets", fmt.Sprintf(m.labels.TimesCount, m.tally.Total()), m.labels.Toilet),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		center.Render(m.styles.Title.Render(m.timer.Display())),
		center.Render(m.styles.Subtitle.Render(m.labels.WalkTime)),
		"",
		center.Render(buttons),
		"",
		stats,
	)
	return m.card("", "", body).SetHighlight(m.timer.Running).Render()
}

func (m *Model) renderQuickActions() string {
	return components.NewStatRow(m.contentWidth()).
		AddCard(components.NewStatCard(emoji.GetEmoji("camera"), m.labels.TakePhoto, "").SetColor(m.styles.Theme.Pink).SetPalette(m.styles.Palette)).
		AddCard(components.NewStatCard(emoji.GetEmoji("droplets"), m.labels.ToiletRecord, "").SetColor(m.styles.Theme.Info).SetPalette(m.styles.Palette)).
		Render()
}

func (m *Model) renderToiletCard() string {
	half := m.cardInner() / 2

	counter := func(icon, label string, kind walk.ToiletKind, incKey, decKey string) string {
		dec := components.NewButton("-", decKey).SetVariant(components.ButtonOutline).SetPalette(m.styles.Palette).Render()
		inc := components.NewButton("+", incKey).SetVariant(components.ButtonOutline).SetPalette(m.styles.Palette).Render()
		count := m.styles.Title.Render(fmt.Sprintf(" %d ", m.tally.Count(kind)))
		controls := lipgloss.JoinHorizontal(lipgloss.Center, dec, count, inc)

		return lipgloss.NewStyle().Width(half).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				emoji.GetEmoji(icon),
				m.styles.Header.Render(label),
				controls,
			))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		counter("droplets", m.labels.Pee, walk.Pee, "p", "P"),
		counter("poop", m.labels.Poop, walk.Poop, "o", "O"),
	)
	return m.card("", m.labels.ToiletRecord, body).Render()
}

func (m *Model) renderHistory() string {
	inner := m.cardInner()
	cards := []string{m.screenHeader(m.labels.HistoryTitle)}

	for _, w := range m.catalog.RecentWalks() {
		badges := []*components.Badge{
			components.NewOutlineBadge(emoji.GetEmoji("clock")+" "+w.Duration, nil).SetPalette(m.styles.Palette),
			components.NewOutlineBadge(emoji.GetEmoji("pin")+" "+w.Distance, nil).SetPalette(m.styles.Palette),
		}
		badges = append(badges, m.toiletBadges(w)...)

		info := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Header.Render(fmt.Sprintf(m.labels.WalkWith, w.Pet)),
			m.styles.Subtitle.Render(w.Time),
			components.Badges(badges...),
		)
		left := lipgloss.JoinHorizontal(lipgloss.Top, w.Mood+" ", info)
		details := components.NewButton(m.labels.Details, "").
			SetVariant(components.ButtonGhost).
			SetPalette(m.styles.Palette).
			Render()

		gap := max(1, inner-lipgloss.Width(left)-lipgloss.Width(details))
		body := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), details)
		cards = append(cards, m.card("", "", body).Render())
	}

	return m.stack(cards...)
}

func (m *Model) renderStats() string {
	week := m.catalog.Week()
	theme := m.styles.Theme

	weekly := components.NewStatRow(m.cardInner()).
		AddCard(components.NewStatCard(emoji.GetEmoji("clock"), week.TotalTime, m.labels.TotalTime).SetColor(theme.Info).SetPalette(m.styles.Palette)).
		AddCard(components.NewStatCard(emoji.GetEmoji("pin"), week.TotalDistance, m.labels.TotalDistance).SetColor(theme.Success).SetPalette(m.styles.Palette)).
		AddCard(components.NewStatCard(emoji.GetEmoji("footprints"), week.Walks, m.labels.WalkCount).SetColor(theme.Orange).SetPalette(m.styles.Palette)).
		Render()

	third := (m.cardInner() - 2) / 3
	cell := func(value, caption string) string {
		return lipgloss.NewStyle().Width(third).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center, m.styles.Header.Render(value), m.styles.Muted.Render(caption)))
	}

	pets := make([]string, 0, m.catalog.PetCount())
	for _, p := range m.catalog.Pets() {
		head := lipgloss.JoinHorizontal(lipgloss.Top,
			m.avatar(p, false), " ",
			lipgloss.JoinVertical(lipgloss.Left, m.styles.Header.Render(p.Name), m.styles.Subtitle.Render(p.Kind)),
		)
		cells := lipgloss.JoinHorizontal(lipgloss.Top,
			cell(fmt.Sprintf(m.labels.TimesCount, p.TodayWalks), m.labels.Today),
			cell(fmt.Sprintf(m.labels.MinutesUnit, p.TotalMinutes), m.labels.TotalTime),
			cell(week.AverageDistance[p.Name], m.labels.AvgDistance),
		)
		pets = append(pets, m.styles.Row.Width(m.cardInner()-2).Render(lipgloss.JoinVertical(lipgloss.Left, head, cells)))
	}

	return m.stack(
		m.screenHeader(m.labels.StatsTitle),
		m.card("chart", m.labels.WeeklyStats, weekly).Render(),
		m.card("heart", m.labels.PerPet, lipgloss.JoinVertical(lipgloss.Left, pets...)).Render(),
	)
}

func (m *Model) renderSettings() string {
	m.settings.Width = m.cardInner()
	return m.stack(
		m.screenHeader(m.labels.SettingsTitle),
		m.card("", "", m.settings.Render()).Render(),
	)
}
