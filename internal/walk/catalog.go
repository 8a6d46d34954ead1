package walk

// Catalog is the in-memory mock data source. Every catalog is built fresh and
// never mutated; accessors hand out copies.
type Catalog struct {
	pets  []Pet
	walks []WalkRecord
	today DailySummary
	week  WeeklySummary
}

// NewCatalog builds the sample data set
func NewCatalog() *Catalog {
	return &Catalog{
		pets: []Pet{
			{
				ID:           1,
				Name:         "ポチ",
				Kind:         "柴犬",
				Age:          "3歳",
				Avatar:       "/placeholder.svg?height=40&width=40",
				Color:        "orange",
				TodayWalks:   2,
				TotalMinutes: 45,
			},
			{
				ID:           2,
				Name:         "ミケ",
				Kind:         "三毛猫",
				Age:          "2歳",
				Avatar:       "/placeholder.svg?height=40&width=40",
				Color:        "pink",
				TodayWalks:   1,
				TotalMinutes: 20,
			},
		},
		walks: []WalkRecord{
			{ID: 1, Pet: "ポチ", Duration: "25分", Distance: "1.2km", Time: "今日 14:30", Mood: "😊", Toilet: Toilet{Pee: 2, Poop: 1}, Photos: 3},
			{ID: 2, Pet: "ミケ", Duration: "15分", Distance: "0.8km", Time: "今日 10:15", Mood: "😸", Toilet: Toilet{Pee: 1, Poop: 0}, Photos: 1},
			{ID: 3, Pet: "ポチ", Duration: "30分", Distance: "1.5km", Time: "昨日 16:00", Mood: "😄", Toilet: Toilet{Pee: 3, Poop: 1}, Photos: 5},
		},
		today: DailySummary{
			TotalTime: "45分",
			Distance:  "2.8km",
			Walks:     "3回",
			Goals: []Goal{
				{Label: "散歩時間", Current: "45分", Target: "60分", Progress: 75},
				{Label: "散歩回数", Current: "3回", Target: "4回", Progress: 75},
			},
		},
		week: WeeklySummary{
			TotalTime:     "4.5時間",
			TotalDistance: "12.3km",
			Walks:         "18回",
			AverageDistance: map[string]string{
				"ポチ": "2.1km",
				"ミケ": "2.1km",
			},
		},
	}
}

// Pets returns all pets in display order
func (c *Catalog) Pets() []Pet {
	out := make([]Pet, len(c.pets))
	copy(out, c.pets)
	return out
}

// PetCount returns the number of pets
func (c *Catalog) PetCount() int {
	return len(c.pets)
}

// Pet returns the pet at index i, or false when i is out of range
func (c *Catalog) Pet(i int) (Pet, bool) {
	if i < 0 || i >= len(c.pets) {
		return Pet{}, false
	}
	return c.pets[i], true
}

// ClampPet maps any index into [0, PetCount). With no pets it returns 0.
func (c *Catalog) ClampPet(i int) int {
	if len(c.pets) == 0 || i < 0 {
		return 0
	}
	if i >= len(c.pets) {
		return len(c.pets) - 1
	}
	return i
}

// RecentWalks returns the full walk history, newest first
func (c *Catalog) RecentWalks() []WalkRecord {
	return c.Recent(len(c.walks))
}

// Recent returns the first n walks
func (c *Catalog) Recent(n int) []WalkRecord {
	n = max(0, min(n, len(c.walks)))
	out := make([]WalkRecord, n)
	copy(out, c.walks[:n])
	return out
}

// Today returns today's summary
func (c *Catalog) Today() DailySummary {
	s := c.today
	s.Goals = make([]Goal, len(c.today.Goals))
	copy(s.Goals, c.today.Goals)
	return s
}

// Week returns the weekly summary
func (c *Catalog) Week() WeeklySummary {
	s := c.week
	s.AverageDistance = make(map[string]string, len(c.week.AverageDistance))
	for k, v := range c.week.AverageDistance {
		s.AverageDistance[k] = v
	}
	return s
}
