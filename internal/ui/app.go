package ui

import (
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/osanpo/internal/config"
	"github.com/yildizm/osanpo/internal/emoji"
	"github.com/yildizm/osanpo/internal/logger"
	"github.com/yildizm/osanpo/internal/ui/components"
	"github.com/yildizm/osanpo/internal/walk"
)

const (
	maxContentWidth = 80
	minContentWidth = 40
)

// Options configures a Model
type Options struct {
	InitialScreen  string
	SelectedPet    int
	Theme          string
	Language       string
	Mouse          bool
	LiveTimer      bool
	TickInterval   time.Duration
	ToiletCounters bool

	// NoEmoji keeps emoji off across config reloads
	NoEmoji bool

	// Reloads delivers config changes while the program runs; may be nil
	Reloads <-chan config.Reload
	Logger  *logger.Logger
}

// OptionsFromConfig maps a loaded config onto model options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		InitialScreen:  cfg.UI.InitialScreen,
		Theme:          cfg.UI.Theme,
		Language:       cfg.UI.Language,
		Mouse:          cfg.UI.Mouse,
		LiveTimer:      cfg.Record.LiveTimer,
		TickInterval:   cfg.Record.TickInterval,
		ToiletCounters: cfg.Record.ToiletCounters,
	}
}

// Model is the walk tracker TUI. The screen selector, selected pet, timer and
// toilet tally are its only state; everything else is read from the catalog.
type Model struct {
	width    int
	height   int
	ready    bool
	quitting bool

	catalog     *walk.Catalog
	screen      Screen
	selectedPet int
	timer       walk.Timer
	carry       time.Duration // tick time not yet added to the timer
	tally       walk.ToiletTally
	settings    *components.List
	scroll      int

	opts   Options
	labels Labels
	styles *Styles
	log    *logger.Logger
}

// New creates a model over the given catalog
func New(catalog *walk.Catalog, opts Options) *Model {
	if opts.Theme != "" {
		SetThemeByName(opts.Theme)
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logger.New("ui", nil)
		log.SetOutput(io.Discard)
	}

	m := &Model{
		catalog:     catalog,
		selectedPet: catalog.ClampPet(opts.SelectedPet),
		settings:    components.NewList(maxContentWidth),
		opts:        opts,
		labels:      LabelsFor(opts.Language),
		styles:      GetStyles(),
		log:         log.WithComponent("ui"),
	}
	m.refreshSettings()

	screen, ok := ParseScreen(opts.InitialScreen)
	if !ok && opts.InitialScreen != "" {
		m.log.Warn("unknown screen %q, showing dashboard", opts.InitialScreen)
	}
	m.SetScreen(screen)
	return m
}

// Screen returns the active screen
func (m *Model) Screen() Screen {
	return m.screen
}

// SelectedPet returns the index of the selected pet
func (m *Model) SelectedPet() int {
	return m.selectedPet
}

// Timer returns the record screen timer
func (m *Model) Timer() walk.Timer {
	return m.timer
}

// Tally returns the record screen toilet counters
func (m *Model) Tally() walk.ToiletTally {
	return m.tally
}

// Snapshot captures the model for non-interactive output
func (m *Model) Snapshot() *walk.Snapshot {
	snap := walk.NewSnapshot(m.screen.String(), m.catalog, m.selectedPet, m.timer, m.tally)
	snap.Settings = append([]string(nil), m.labels.Settings...)
	return snap
}

// SetScreen switches the active screen. Values outside the five screens fall
// back to the dashboard.
func (m *Model) SetScreen(s Screen) {
	if !s.Valid() {
		s = ScreenDashboard
	}
	if s != m.screen {
		m.log.DebugWithFields("switching screen", []logger.Field{logger.Screen(s.String())})
	}
	m.screen = s
	m.scroll = 0
}

// SelectPet marks the pet at index i as selected, clamped to the pet list
func (m *Model) SelectPet(i int) {
	m.selectedPet = m.catalog.ClampPet(i)
}

// Init starts the optional timer ticks and config watching
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.opts.LiveTimer {
		cmds = append(cmds, tick(m.opts.TickInterval))
	}
	if m.opts.Reloads != nil {
		cmds = append(cmds, waitForReload(m.opts.Reloads))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tickMsg:
		return m.handleTick()
	case configReloadMsg:
		return m.handleReload(msg.reload)
	}

	return m, nil
}

// View renders the active screen above the navigation bar
func (m *Model) View() string {
	if !m.ready {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Title.Render(m.labels.Loading))
	}

	if m.quitting {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Success.Render(m.labels.Goodbye+" "+emoji.GetEmoji("wave")))
	}

	content := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderScreen())
	help := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Muted.Render(m.labels.Help))
	nav := m.renderNav()

	content = viewport(content, m.scroll, m.viewportHeight(nav))

	return lipgloss.JoinVertical(lipgloss.Left, content, help, nav)
}

// viewportHeight is the number of rows left for content above the help line
// and the navigation bar
func (m *Model) viewportHeight(nav string) int {
	return m.height - lipgloss.Height(nav) - 1
}

// clampScroll keeps the scroll offset within the rendered content
func (m *Model) clampScroll() {
	height := m.viewportHeight(m.renderNav())
	if height <= 0 {
		m.scroll = 0
		return
	}
	m.scroll = max(0, min(m.scroll, lipgloss.Height(m.renderScreen())-height))
}

// viewport cuts content to height lines starting at offset and pads it so the
// navigation bar stays on the bottom rows
func viewport(content string, offset, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	offset = max(0, min(offset, len(lines)-height))
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return maxContentWidth
	}
	return max(minContentWidth, min(maxContentWidth, m.width-2))
}

func (m *Model) refreshSettings() {
	icons := []string{"bell", "users", "zap"}
	items := make([]components.ListItem, 0, len(m.labels.Settings))
	for i, title := range m.labels.Settings {
		item := components.ListItem{ID: title, Title: title}
		if i < len(icons) {
			item.Icon = emoji.GetEmoji(icons[i])
		}
		items = append(items, item)
	}
	m.settings.SetItems(items)
	m.settings.Focused = true
	m.settings.Suffix = emoji.GetEmoji("chevron")
	m.settings.Cursor = emoji.GetEmoji("cursor")
	m.settings.Palette = m.styles.Palette
}

// Handler functions for Update method

// handleWindowResize handles window resize events
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.clampScroll()
	return m, nil
}

// handleKeyPress handles global keys first, then the active screen's keys
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m.handleQuit()
	case "tab", "right", "l":
		return m.handleNavStep(1)
	case "shift+tab", "left", "h":
		return m.handleNavStep(-1)
	case "1", "2", "3", "4", "5":
		return m.handleNumberKey(msg.String())
	case "pgdown", "ctrl+d":
		m.scroll += max(1, m.height/2)
		m.clampScroll()
		return m, nil
	case "pgup", "ctrl+u":
		m.scroll = max(0, m.scroll-max(1, m.height/2))
		return m, nil
	}

	switch m.screen {
	case ScreenDashboard:
		return m.handleDashboardKey(msg.String())
	case ScreenRecord:
		return m.handleRecordKey(msg.String())
	case ScreenSettings:
		return m.handleSettingsKey(msg.String())
	}
	return m, nil
}

// handleQuit handles quit commands
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleNavStep moves along the navigation bar, wrapping at both ends
func (m *Model) handleNavStep(delta int) (tea.Model, tea.Cmd) {
	i := (navIndex(m.screen) + delta + len(navOrder)) % len(navOrder)
	m.SetScreen(navOrder[i])
	return m, nil
}

// handleNumberKey jumps to the n-th navigation entry
func (m *Model) handleNumberKey(key string) (tea.Model, tea.Cmd) {
	i := int(key[0] - '1')
	if i >= 0 && i < len(navOrder) {
		m.SetScreen(navOrder[i])
	}
	return m, nil
}

func (m *Model) handleDashboardKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.SelectPet(m.selectedPet - 1)
	case "down", "j":
		m.SelectPet(m.selectedPet + 1)
	case "a":
		m.SetScreen(ScreenHistory)
	}
	return m, nil
}

func (m *Model) handleRecordKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case " ", "s":
		m.timer.Toggle()
		m.log.Debug("timer running=%v", m.timer.Running)
	case "r":
		m.timer.Reset()
		m.carry = 0
		m.tally.Reset()
	case "p":
		m.adjustTally(walk.Pee, 1)
	case "P":
		m.adjustTally(walk.Pee, -1)
	case "o":
		m.adjustTally(walk.Poop, 1)
	case "O":
		m.adjustTally(walk.Poop, -1)
	}
	return m, nil
}

// adjustTally changes a toilet counter. The counters stay at zero unless
// enabled in the config.
func (m *Model) adjustTally(kind walk.ToiletKind, delta int) {
	if !m.opts.ToiletCounters {
		return
	}
	if delta > 0 {
		m.tally.Inc(kind)
	} else {
		m.tally.Dec(kind)
	}
}

func (m *Model) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.settings.MoveUp()
	case "down", "j":
		m.settings.MoveDown()
	}
	return m, nil
}

// handleMouse selects a navigation entry on left click and scrolls on wheel
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll++
		m.clampScroll()
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll = max(0, m.scroll-1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		if s, ok := m.navHit(msg.X, msg.Y); ok {
			m.SetScreen(s)
		}
	}
	return m, nil
}

// handleTick advances the live timer by the elapsed tick interval
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.timer.Running {
		m.carry += m.opts.TickInterval
		for m.carry >= time.Second {
			m.timer.Tick()
			m.carry -= time.Second
		}
	}
	return m, tick(m.opts.TickInterval)
}

// handleReload applies theme, language and emoji changes from a config reload
func (m *Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	next := waitForReload(m.opts.Reloads)
	if r.Err != nil {
		m.log.WarnWithFields("config reload failed", []logger.Field{logger.Error(r.Err)})
		return m, next
	}

	cfg := r.Config
	if !SetThemeByName(cfg.UI.Theme) {
		m.log.Warn("unknown theme %q", cfg.UI.Theme)
	}
	emoji.SetEmojiDisabled(m.opts.NoEmoji || !cfg.UI.Emoji)
	m.opts.Theme = cfg.UI.Theme
	m.opts.Language = cfg.UI.Language
	m.labels = LabelsFor(cfg.UI.Language)
	m.styles = GetStyles()
	m.refreshSettings()
	m.clampScroll()

	m.log.InfoWithFields("config reloaded", []logger.Field{
		logger.F("theme", cfg.UI.Theme),
		logger.F("language", cfg.UI.Language),
	})
	return m, next
}

// Run runs the TUI until the user quits
func Run(catalog *walk.Catalog, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(New(catalog, opts), programOpts...)
	_, err := p.Run()
	return err
}
