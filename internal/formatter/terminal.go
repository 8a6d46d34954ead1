package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yildizm/osanpo/internal/walk"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(snap *walk.Snapshot) ([]byte, error) {
	var b strings.Builder

	screen := screenOf(snap)
	f.writeHeader(&b, "osanpo • "+screenTitle(screen))

	switch screen {
	case "record":
		f.writeTimer(&b, snap)
	case "history":
		f.writeWalks(&b, "Walk History", snap.Walks, true)
	case "stats":
		f.writeWeekly(&b, snap.Week)
		f.writePetStats(&b, snap)
	case "settings":
		f.writeSettings(&b, snap.Settings)
	default:
		f.writePets(&b, snap)
		f.writeToday(&b, snap.Today)
		f.writeWalks(&b, "Recent Walks", recentWalks(snap), false)
	}

	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}

// writeHeader writes a box around the title, sized by display width
func (f *terminalFormatter) writeHeader(b *strings.Builder, header string) {
	width := runewidth.StringWidth(header)

	b.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", width+2) + "╝\n\n")
}

func (f *terminalFormatter) section(b *strings.Builder, symbol, title string, items []termfmt.TreeItem) {
	b.WriteString(termfmt.GetEmoji(symbol, f.opts) + " " + title + "\n")
	if len(items) > 0 {
		items[len(items)-1].Last = true
	}
	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n\n")
}

// writePets lists the pets, marking the selected one
func (f *terminalFormatter) writePets(b *strings.Builder, snap *walk.Snapshot) {
	items := make([]termfmt.TreeItem, 0, len(snap.Pets))
	for i, p := range snap.Pets {
		value := ""
		if i == snap.SelectedPet {
			value = "(selected)"
		}
		items = append(items, termfmt.TreeItem{
			Label: fmt.Sprintf("%s %s • %s", p.Name, p.Kind, p.Age),
			Value: value,
			Children: []termfmt.TreeItem{
				{Label: "Today", Value: fmt.Sprintf("%d walks, %d min", p.TodayWalks, p.TotalMinutes), Last: true},
			},
		})
	}
	f.section(b, "info", "Walking Buddies", items)
}

// writeToday writes today's quick stats and goal progress
func (f *terminalFormatter) writeToday(b *strings.Builder, today walk.DailySummary) {
	items := []termfmt.TreeItem{
		{Label: "Total Time", Value: today.TotalTime},
		{Label: "Distance", Value: today.Distance},
		{Label: "Walks", Value: today.Walks},
	}
	for _, g := range today.Goals {
		items = append(items, termfmt.TreeItem{
			Label: "Goal " + g.Label,
			Value: fmt.Sprintf("%s / %s (%d%%)", g.Current, g.Target, g.Progress),
			Children: []termfmt.TreeItem{
				{Label: createProgressBar(g.Progress, f.opts), Last: true},
			},
		})
	}
	f.section(b, "statistics", "Today", items)
}

// writeWalks writes walk records; detailed adds the mood and time lines
func (f *terminalFormatter) writeWalks(b *strings.Builder, title string, walks []walk.WalkRecord, detailed bool) {
	items := make([]termfmt.TreeItem, 0, len(walks))
	for _, w := range walks {
		children := []termfmt.TreeItem{
			{Label: "Duration", Value: w.Duration},
			{Label: "Distance", Value: w.Distance},
			{Label: "Toilet", Value: toiletSummary(w), Last: true},
		}
		label := w.Pet + "とお散歩"
		if detailed {
			label = w.Mood + " " + label
		}
		items = append(items, termfmt.TreeItem{Label: label, Value: w.Time, Children: children})
	}
	f.section(b, "insights", title, items)
}

// writeTimer writes the record screen's timer and toilet counters
func (f *terminalFormatter) writeTimer(b *strings.Builder, snap *walk.Snapshot) {
	f.section(b, "info", "Walk Timer", []termfmt.TreeItem{
		{Label: "Elapsed", Value: snap.Timer.Display()},
		{Label: "State", Value: timerState(snap.Timer)},
		{Label: "Distance", Value: "0.0km"},
		{Label: "Photos", Value: "0"},
	})
	f.section(b, "insight", "Toilet Record", []termfmt.TreeItem{
		{Label: "Pee", Value: fmt.Sprintf("%d", snap.Tally.Pee)},
		{Label: "Poop", Value: fmt.Sprintf("%d", snap.Tally.Poop)},
	})
}

// writeWeekly writes the weekly totals
func (f *terminalFormatter) writeWeekly(b *strings.Builder, week walk.WeeklySummary) {
	f.section(b, "statistics", "This Week", []termfmt.TreeItem{
		{Label: "Total Time", Value: week.TotalTime},
		{Label: "Total Distance", Value: week.TotalDistance},
		{Label: "Walks", Value: week.Walks},
	})
}

// writePetStats writes per-pet totals
func (f *terminalFormatter) writePetStats(b *strings.Builder, snap *walk.Snapshot) {
	items := make([]termfmt.TreeItem, 0, len(snap.Pets))
	for _, p := range snap.Pets {
		avg := snap.Week.AverageDistance[p.Name]
		if avg == "" {
			avg = "-"
		}
		items = append(items, termfmt.TreeItem{
			Label: p.Name,
			Value: p.Kind,
			Children: []termfmt.TreeItem{
				{Label: "Today", Value: fmt.Sprintf("%d walks", p.TodayWalks)},
				{Label: "Total Time", Value: fmt.Sprintf("%d min", p.TotalMinutes)},
				{Label: "Average Distance", Value: avg, Last: true},
			},
		})
	}
	f.section(b, "insights", "Per Pet", items)
}

// writeSettings lists the settings entries
func (f *terminalFormatter) writeSettings(b *strings.Builder, settings []string) {
	b.WriteString(termfmt.GetEmoji("help", f.opts) + " Settings\n")
	for _, s := range settings {
		b.WriteString("• " + s + "\n")
	}
}
