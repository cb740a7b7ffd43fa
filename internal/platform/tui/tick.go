// Package tui provides the Bubble Tea front end for Tancheke.
// It owns the terminal loop, input mapping, screens and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tancheke/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigChangedMsg carries tuning reloaded from disk.
type ConfigChangedMsg struct {
	Config config.TanksConfig
}

// ConfigErrorMsg reports a tuning file that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

// waitForConfig blocks on the watcher until the next reload or error.
// It returns nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Changes:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Config: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}
