package walk

// Pet represents a pet profile shown on the dashboard and stats screens
type Pet struct {
	ID           int    `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Kind         string `yaml:"kind" json:"kind"` // species/breed label
	Age          string `yaml:"age" json:"age"`
	Avatar       string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
	Color        string `yaml:"color" json:"color"` // color token, resolved by the UI theme
	TodayWalks   int    `yaml:"today_walks" json:"today_walks"`
	TotalMinutes int    `yaml:"total_minutes" json:"total_minutes"`
}

// Initial returns the first rune of the pet name, used as avatar fallback
func (p Pet) Initial() string {
	for _, r := range p.Name {
		return string(r)
	}
	return "?"
}

// Toilet pairs the urination and defecation counts of a walk
type Toilet struct {
	Pee  int `yaml:"pee" json:"pee"`
	Poop int `yaml:"poop" json:"poop"`
}

// WalkRecord represents one finished walk in the history
type WalkRecord struct {
	ID       int    `yaml:"id" json:"id"`
	Pet      string `yaml:"pet" json:"pet"`
	Duration string `yaml:"duration" json:"duration"`
	Distance string `yaml:"distance" json:"distance"`
	Time     string `yaml:"time" json:"time"`
	Mood     string `yaml:"mood" json:"mood"`
	Toilet   Toilet `yaml:"toilet" json:"toilet"`
	Photos   int    `yaml:"photos" json:"photos"`
}

// Goal is a daily target with its current progress
type Goal struct {
	Label    string `json:"label"`
	Current  string `json:"current"`
	Target   string `json:"target"`
	Progress int    `json:"progress"` // percent, 0..100
}

// DailySummary holds the dashboard's quick stats and goals for today
type DailySummary struct {
	TotalTime string `json:"total_time"`
	Distance  string `json:"distance"`
	Walks     string `json:"walks"`
	Goals     []Goal `json:"goals"`
}

// WeeklySummary holds the stats screen's weekly totals
type WeeklySummary struct {
	TotalTime       string            `json:"total_time"`
	TotalDistance   string            `json:"total_distance"`
	Walks           string            `json:"walks"`
	AverageDistance map[string]string `json:"average_distance"` // keyed by pet name
}

// ToiletKind selects one of the two toilet counters
type ToiletKind int

const (
	Pee ToiletKind = iota
	Poop
)

// String returns the counter name
func (k ToiletKind) String() string {
	switch k {
	case Pee:
		return "pee"
	case Poop:
		return "poop"
	default:
		return "unknown"
	}
}
