package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/yildizm/osanpo/internal/walk"
)

// csvFormatter writes history and stats as rows; other screens become
// section,key,value rows
type csvFormatter struct{}

// NewCSV creates a new CSV formatter
func NewCSV() Formatter {
	return &csvFormatter{}
}

func (f *csvFormatter) Format(snap *walk.Snapshot) ([]byte, error) {
	var records [][]string

	switch screenOf(snap) {
	case "history":
		records = walkRecords(snap.Walks)
	case "stats":
		records = petStatRecords(snap)
	default:
		records = keyValueRecords(snap)
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write CSV records: %w", err)
	}
	return b.Bytes(), nil
}

func walkRecords(walks []walk.WalkRecord) [][]string {
	records := [][]string{{"ID", "Pet", "Time", "Duration", "Distance", "Mood", "Pee", "Poop", "Photos"}}
	for _, w := range walks {
		records = append(records, []string{
			strconv.Itoa(w.ID), w.Pet, w.Time, w.Duration, w.Distance, w.Mood,
			strconv.Itoa(w.Toilet.Pee), strconv.Itoa(w.Toilet.Poop), strconv.Itoa(w.Photos),
		})
	}
	return records
}

func petStatRecords(snap *walk.Snapshot) [][]string {
	records := [][]string{{"Pet", "Kind", "Walks Today", "Minutes", "Average Distance"}}
	for _, p := range snap.Pets {
		records = append(records, []string{
			p.Name, p.Kind, strconv.Itoa(p.TodayWalks), strconv.Itoa(p.TotalMinutes), snap.Week.AverageDistance[p.Name],
		})
	}
	return records
}

func keyValueRecords(snap *walk.Snapshot) [][]string {
	records := [][]string{{"Section", "Key", "Value"}}
	add := func(section, key, value string) {
		records = append(records, []string{section, key, value})
	}

	switch screenOf(snap) {
	case "record":
		add("timer", "elapsed", snap.Timer.Display())
		add("timer", "state", timerState(snap.Timer))
		add("toilet", "pee", strconv.Itoa(snap.Tally.Pee))
		add("toilet", "poop", strconv.Itoa(snap.Tally.Poop))
	case "settings":
		for i, s := range snap.Settings {
			add("settings", strconv.Itoa(i+1), s)
		}
	default:
		if p, ok := selectedPet(snap); ok {
			add("pet", "selected", p.Name)
		}
		add("today", "total_time", snap.Today.TotalTime)
		add("today", "distance", snap.Today.Distance)
		add("today", "walks", snap.Today.Walks)
		for _, g := range snap.Today.Goals {
			add("goal", g.Label, fmt.Sprintf("%s/%s", g.Current, g.Target))
		}
	}
	return records
}

func selectedPet(snap *walk.Snapshot) (walk.Pet, bool) {
	if snap.SelectedPet < 0 || snap.SelectedPet >= len(snap.Pets) {
		return walk.Pet{}, false
	}
	return snap.Pets[snap.SelectedPet], true
}
