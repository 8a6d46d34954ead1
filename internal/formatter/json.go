package formatter

import (
	"encoding/json"

	"github.com/yildizm/osanpo/internal/walk"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(snap *walk.Snapshot) ([]byte, error) {
	output := &JSONOutput{Screen: screenOf(snap)}

	switch output.Screen {
	case "record":
		output.Timer = &TimerOutput{
			Display: snap.Timer.Display(),
			Running: snap.Timer.Running,
			Elapsed: snap.Timer.Elapsed,
		}
		tally := snap.Tally
		output.Toilet = &tally
	case "history":
		output.Walks = snap.Walks
	case "stats":
		output.Pets = createPetOutputs(snap)
		week := snap.Week
		output.Week = &week
	case "settings":
		output.Settings = snap.Settings
	default:
		output.Pets = createPetOutputs(snap)
		today := snap.Today
		output.Today = &today
		output.Walks = recentWalks(snap)
	}

	return json.MarshalIndent(output, "", "  ")
}

// JSONOutput holds the sections of one screen; sections a screen does not
// show are omitted
type JSONOutput struct {
	Screen   string              `json:"screen"`
	Pets     []PetOutput         `json:"pets,omitempty"`
	Today    *walk.DailySummary  `json:"today,omitempty"`
	Walks    []walk.WalkRecord   `json:"walks,omitempty"`
	Timer    *TimerOutput        `json:"timer,omitempty"`
	Toilet   *walk.ToiletTally   `json:"toilet,omitempty"`
	Week     *walk.WeeklySummary `json:"week,omitempty"`
	Settings []string            `json:"settings,omitempty"`
}

// PetOutput is a pet with its selection state
type PetOutput struct {
	walk.Pet
	Selected bool `json:"selected"`
}

// TimerOutput is the record screen timer
type TimerOutput struct {
	Display string `json:"display"`
	Running bool   `json:"running"`
	Elapsed int    `json:"elapsed_seconds"`
}

func createPetOutputs(snap *walk.Snapshot) []PetOutput {
	out := make([]PetOutput, 0, len(snap.Pets))
	for i, p := range snap.Pets {
		out = append(out, PetOutput{Pet: p, Selected: i == snap.SelectedPet})
	}
	return out
}
