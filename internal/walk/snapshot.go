package walk

// Snapshot bundles everything one screen renders from, for non-interactive
// output. Screen is the canonical screen name.
type Snapshot struct {
	Screen      string        `json:"screen"`
	Pets        []Pet         `json:"pets"`
	SelectedPet int           `json:"selected_pet"`
	Walks       []WalkRecord  `json:"walks"`
	Today       DailySummary  `json:"today"`
	Week        WeeklySummary `json:"week"`
	Timer       Timer         `json:"timer"`
	Tally       ToiletTally   `json:"toilet"`
	Settings    []string      `json:"settings,omitempty"`
}

// NewSnapshot captures the catalog and state cells. The selected pet index is
// clamped into the catalog's bounds.
func NewSnapshot(screen string, c *Catalog, selected int, timer Timer, tally ToiletTally) *Snapshot {
	return &Snapshot{
		Screen:      screen,
		Pets:        c.Pets(),
		SelectedPet: c.ClampPet(selected),
		Walks:       c.RecentWalks(),
		Today:       c.Today(),
		Week:        c.Week(),
		Timer:       timer,
		Tally:       tally,
	}
}
