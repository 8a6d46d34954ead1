package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yildizm/osanpo/internal/walk"
	"github.com/yildizm/go-termfmt"
)

var screenTitles = map[string]string{
	"dashboard": "Dashboard",
	"record":    "Record",
	"history":   "History",
	"stats":     "Stats",
	"settings":  "Settings",
}

// screenTitle returns the heading for a screen name, dashboard for unknown names
func screenTitle(screen string) string {
	if title, ok := screenTitles[screen]; ok {
		return title
	}
	return screenTitles["dashboard"]
}

// screenOf normalizes a snapshot's screen name
func screenOf(snap *walk.Snapshot) string {
	if _, ok := screenTitles[snap.Screen]; ok {
		return snap.Screen
	}
	return "dashboard"
}

// toiletSummary renders the non-zero toilet and photo counts of a walk
func toiletSummary(w walk.WalkRecord) string {
	var parts []string
	if w.Toilet.Pee > 0 {
		parts = append(parts, fmt.Sprintf("pee %d", w.Toilet.Pee))
	}
	if w.Toilet.Poop > 0 {
		parts = append(parts, fmt.Sprintf("poop %d", w.Toilet.Poop))
	}
	if w.Photos > 0 {
		parts = append(parts, fmt.Sprintf("photos %d", w.Photos))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// recentWalks returns what the dashboard lists
func recentWalks(snap *walk.Snapshot) []walk.WalkRecord {
	return snap.Walks[:min(3, len(snap.Walks))]
}

// averageDistances returns the weekly per-pet averages ordered by pet name
func averageDistances(week walk.WeeklySummary) [][2]string {
	names := make([]string, 0, len(week.AverageDistance))
	for name := range week.AverageDistance {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([][2]string, 0, len(names))
	for _, name := range names {
		out = append(out, [2]string{name, week.AverageDistance[name]})
	}
	return out
}

// timerState describes the timer for humans
func timerState(t walk.Timer) string {
	if t.Running {
		return "running"
	}
	return "stopped"
}

// createProgressBar renders a goal percentage with go-termfmt
func createProgressBar(percent int, opts *termfmt.TerminalOptions) string {
	return termfmt.CreateConfidenceBar(float64(percent)/100, opts)
}
