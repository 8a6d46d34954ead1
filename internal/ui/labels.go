package ui

// Labels holds every user-facing string of the TUI for one language
type Labels struct {
	Nav map[Screen]string

	Loading string
	Goodbye string
	Help    string

	// dashboard
	AppTitle      string
	AppSubtitle   string
	Companions    string
	SelectedBadge string
	PetToday      string // format: walk count
	MinutesUnit   string // format: minutes
	TodayTotal    string
	TodayDistance string
	TodayWalks    string
	TodayGoal     string
	RecentWalks   string
	ViewAll       string
	WalkWith      string // format: pet name

	// record
	RecordTitle  string
	WalkTime     string
	Start        string
	Pause        string
	Stop         string
	Distance     string
	Photos       string
	Toilet       string
	PhotoCount   string // format: count
	TimesCount   string // format: count
	TakePhoto    string
	ToiletRecord string
	Pee          string
	Poop         string

	// history
	HistoryTitle string
	Details      string

	// stats
	StatsTitle    string
	WeeklyStats   string
	TotalTime     string
	TotalDistance string
	WalkCount     string
	PerPet        string
	Today         string
	AvgDistance   string

	// settings
	SettingsTitle string
	Settings      []string
}

var japaneseLabels = Labels{
	Nav: map[Screen]string{
		ScreenDashboard: "ホーム",
		ScreenHistory:   "履歴",
		ScreenRecord:    "記録",
		ScreenStats:     "統計",
		ScreenSettings:  "設定",
	},

	Loading: "準備中...",
	Goodbye: "またお散歩しようね！",
	Help:    "tab/←→ 画面切替 • 1-5 移動 • q 終了",

	AppTitle:      "おさんぽ手帳",
	AppSubtitle:   "今日も一緒にお散歩しよう！",
	Companions:    "今日のお散歩仲間",
	SelectedBadge: "選択中",
	PetToday:      "今日: %d回",
	MinutesUnit:   "%d分",
	TodayTotal:    "今日の合計",
	TodayDistance: "今日の距離",
	TodayWalks:    "今日の散歩",
	TodayGoal:     "今日の目標",
	RecentWalks:   "最近のお散歩記録",
	ViewAll:       "すべて見る",
	WalkWith:      "%sとお散歩",

	RecordTitle:  "散歩を記録",
	WalkTime:     "お散歩時間",
	Start:        "スタート",
	Pause:        "一時停止",
	Stop:         "リセット",
	Distance:     "距離",
	Photos:       "写真",
	Toilet:       "トイレ",
	PhotoCount:   "%d枚",
	TimesCount:   "%d回",
	TakePhoto:    "写真を撮る",
	ToiletRecord: "トイレ記録",
	Pee:          "おしっこ",
	Poop:         "うんち",

	HistoryTitle: "散歩履歴",
	Details:      "詳細",

	StatsTitle:    "統計",
	WeeklyStats:   "今週の統計",
	TotalTime:     "合計時間",
	TotalDistance: "合計距離",
	WalkCount:     "散歩回数",
	PerPet:        "ペット別統計",
	Today:         "今日",
	AvgDistance:   "平均距離",

	SettingsTitle: "設定",
	Settings:      []string{"通知設定", "家族共有", "Notion連携"},
}

var englishLabels = Labels{
	Nav: map[Screen]string{
		ScreenDashboard: "Home",
		ScreenHistory:   "History",
		ScreenRecord:    "Record",
		ScreenStats:     "Stats",
		ScreenSettings:  "Settings",
	},

	Loading: "Getting ready...",
	Goodbye: "See you on the next walk!",
	Help:    "tab/←→ switch • 1-5 jump • q quit",

	AppTitle:      "Walk Notebook",
	AppSubtitle:   "Let's go for a walk together today!",
	Companions:    "Today's walking buddies",
	SelectedBadge: "selected",
	PetToday:      "today: %d",
	MinutesUnit:   "%d min",
	TodayTotal:    "total today",
	TodayDistance: "distance today",
	TodayWalks:    "walks today",
	TodayGoal:     "Today's goals",
	RecentWalks:   "Recent walks",
	ViewAll:       "view all",
	WalkWith:      "Walk with %s",

	RecordTitle:  "Record a walk",
	WalkTime:     "Walk time",
	Start:        "start",
	Pause:        "pause",
	Stop:         "reset",
	Distance:     "distance",
	Photos:       "photos",
	Toilet:       "toilet",
	PhotoCount:   "%d",
	TimesCount:   "%dx",
	TakePhoto:    "Take a photo",
	ToiletRecord: "Toilet log",
	Pee:          "pee",
	Poop:         "poop",

	HistoryTitle: "Walk history",
	Details:      "details",

	StatsTitle:    "Stats",
	WeeklyStats:   "This week",
	TotalTime:     "total time",
	TotalDistance: "total distance",
	WalkCount:     "walks",
	PerPet:        "Per pet",
	Today:         "today",
	AvgDistance:   "avg distance",

	SettingsTitle: "Settings",
	Settings:      []string{"Notifications", "Family sharing", "Notion sync"},
}

// LabelsFor returns the labels for a language code, Japanese by default
func LabelsFor(language string) Labels {
	if language == "en" {
		return englishLabels
	}
	return japaneseLabels
}
