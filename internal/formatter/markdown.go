package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/osanpo/internal/walk"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(snap *walk.Snapshot) ([]byte, error) {
	var b strings.Builder

	screen := screenOf(snap)
	fmt.Fprintf(&b, "# osanpo: %s\n\n", screenTitle(screen))

	switch screen {
	case "record":
		f.writeTimer(&b, snap)
	case "history":
		f.writeWalks(&b, "Walk History", snap.Walks)
	case "stats":
		f.writeWeekly(&b, snap.Week)
		f.writePetStats(&b, snap)
	case "settings":
		f.writeSettings(&b, snap.Settings)
	default:
		f.writePets(&b, snap)
		f.writeToday(&b, snap.Today)
		f.writeWalks(&b, "Recent Walks", recentWalks(snap))
	}

	return []byte(strings.TrimRight(b.String(), "\n") + "\n"), nil
}

// escapeCell keeps table cells on one line and escapes column separators
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func writeTable(b *strings.Builder, headers []string, rows [][]string) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(headers)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escapeCell(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writePets(b *strings.Builder, snap *walk.Snapshot) {
	b.WriteString("## Walking Buddies\n\n")
	rows := make([][]string, 0, len(snap.Pets))
	for i, p := range snap.Pets {
		selected := ""
		if i == snap.SelectedPet {
			selected = "✓"
		}
		rows = append(rows, []string{p.Name, p.Kind, p.Age, fmt.Sprintf("%d", p.TodayWalks), fmt.Sprintf("%d", p.TotalMinutes), selected})
	}
	writeTable(b, []string{"Name", "Kind", "Age", "Walks Today", "Minutes", "Selected"}, rows)
}

func (f *markdownFormatter) writeToday(b *strings.Builder, today walk.DailySummary) {
	b.WriteString("## Today\n\n")
	writeTable(b, []string{"Metric", "Value"}, [][]string{
		{"Total Time", today.TotalTime},
		{"Distance", today.Distance},
		{"Walks", today.Walks},
	})

	b.WriteString("### Goals\n\n")
	for _, g := range today.Goals {
		fmt.Fprintf(b, "- **%s**: %s / %s (%d%%)\n", g.Label, g.Current, g.Target, g.Progress)
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeWalks(b *strings.Builder, title string, walks []walk.WalkRecord) {
	fmt.Fprintf(b, "## %s\n\n", title)
	rows := make([][]string, 0, len(walks))
	for _, w := range walks {
		rows = append(rows, []string{
			w.Mood, w.Pet, w.Time, w.Duration, w.Distance,
			fmt.Sprintf("%d", w.Toilet.Pee), fmt.Sprintf("%d", w.Toilet.Poop), fmt.Sprintf("%d", w.Photos),
		})
	}
	writeTable(b, []string{"Mood", "Pet", "Time", "Duration", "Distance", "Pee", "Poop", "Photos"}, rows)
}

func (f *markdownFormatter) writeTimer(b *strings.Builder, snap *walk.Snapshot) {
	b.WriteString("## Walk Timer\n\n")
	writeTable(b, []string{"Elapsed", "State", "Pee", "Poop"}, [][]string{{
		snap.Timer.Display(),
		timerState(snap.Timer),
		fmt.Sprintf("%d", snap.Tally.Pee),
		fmt.Sprintf("%d", snap.Tally.Poop),
	}})
}

func (f *markdownFormatter) writeWeekly(b *strings.Builder, week walk.WeeklySummary) {
	b.WriteString("## This Week\n\n")
	rows := [][]string{
		{"Total Time", week.TotalTime},
		{"Total Distance", week.TotalDistance},
		{"Walks", week.Walks},
	}
	for _, avg := range averageDistances(week) {
		rows = append(rows, []string{"Average Distance (" + avg[0] + ")", avg[1]})
	}
	writeTable(b, []string{"Metric", "Value"}, rows)
}

func (f *markdownFormatter) writePetStats(b *strings.Builder, snap *walk.Snapshot) {
	b.WriteString("## Per Pet\n\n")
	rows := make([][]string, 0, len(snap.Pets))
	for _, p := range snap.Pets {
		rows = append(rows, []string{
			p.Name, p.Kind,
			fmt.Sprintf("%d", p.TodayWalks),
			fmt.Sprintf("%d", p.TotalMinutes),
			snap.Week.AverageDistance[p.Name],
		})
	}
	writeTable(b, []string{"Name", "Kind", "Walks Today", "Minutes", "Average Distance"}, rows)
}

func (f *markdownFormatter) writeSettings(b *strings.Builder, settings []string) {
	b.WriteString("## Settings\n\n")
	for _, s := range settings {
		b.WriteString("- " + s + "\n")
	}
}
