package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/osanpo/internal/config"
)

// tickMsg drives the live walk timer
type tickMsg time.Time

// tick schedules the next timer tick
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// configReloadMsg carries a reload from the config watcher
type configReloadMsg struct {
	reload config.Reload
}

// waitForReload blocks on the watcher channel. It yields nothing once the
// channel is closed, which ends the listening loop.
func waitForReload(ch <-chan config.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadMsg{reload: r}
	}
}
