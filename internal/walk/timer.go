package walk

import (
	"fmt"

	"github.com/yildizm/osanpo/internal/emoji"
)

// Timer is the record screen's walk clock. It only advances through Tick.
type Timer struct {
	Running bool `json:"running"`
	Elapsed int  `json:"elapsed"` // seconds
}

// Toggle flips between running and paused
func (t *Timer) Toggle() {
	t.Running = !t.Running
}

// Reset stops the timer and clears the elapsed time
func (t *Timer) Reset() {
	t.Running = false
	t.Elapsed = 0
}

// Tick advances the clock by one second while running
func (t *Timer) Tick() {
	if t.Running {
		t.Elapsed++
	}
}

// Display formats the elapsed time as MM:SS
func (t Timer) Display() string {
	return fmt.Sprintf("%02d:%02d", t.Elapsed/60, t.Elapsed%60)
}

// Glyph returns the button glyph: start while stopped, pause while running
func (t Timer) Glyph() string {
	if t.Running {
		return emoji.GetEmoji("pause")
	}
	return emoji.GetEmoji("play")
}

// ToiletTally counts toilet events during a walk being recorded
type ToiletTally struct {
	Pee  int `json:"pee"`
	Poop int `json:"poop"`
}

// Inc adds one event of the given kind
func (t *ToiletTally) Inc(kind ToiletKind) {
	switch kind {
	case Pee:
		t.Pee++
	case Poop:
		t.Poop++
	}
}

// Dec removes one event of the given kind, never going below zero
func (t *ToiletTally) Dec(kind ToiletKind) {
	switch kind {
	case Pee:
		if t.Pee > 0 {
			t.Pee--
		}
	case Poop:
		if t.Poop > 0 {
			t.Poop--
		}
	}
}

// Count returns the counter for kind
func (t ToiletTally) Count(kind ToiletKind) int {
	switch kind {
	case Pee:
		return t.Pee
	case Poop:
		return t.Poop
	default:
		return 0
	}
}

// Total returns pee plus poop
func (t ToiletTally) Total() int {
	return t.Pee + t.Poop
}

// Reset clears both counters
func (t *ToiletTally) Reset() {
	t.Pee = 0
	t.Poop = 0
}
