package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tancheke/internal/audio"
	"github.com/vovakirdan/tancheke/internal/config"
	"github.com/vovakirdan/tancheke/internal/core"
	"github.com/vovakirdan/tancheke/internal/games/tanks"
	"github.com/vovakirdan/tancheke/internal/storage"
)

type view int

const (
	viewMenu view = iota
	viewPlaying
	viewScoreboard
)

// RecordStore is the persisted high score shown on the title menu.
type RecordStore interface {
	tanks.HighScoreStore
	Reset() error
}

type nopRecord struct{}

func (nopRecord) Load() int      { return 0 }
func (nopRecord) Save(int) error { return nil }
func (nopRecord) Reset() error   { return nil }

// Options wires the collaborators of a session. Nil collaborators are skipped.
type Options struct {
	Config        core.RuntimeConfig
	Tuning        config.TanksConfig
	Preset        config.DifficultyPreset // Reapplied to reloaded tuning
	Record        RecordStore
	Store         *storage.Store
	Sound         *audio.Player
	Watcher       *config.Watcher
	Logger        *log.Logger
	Renderer      *lipgloss.Renderer // Output color profile, default if nil
	ScreenshotDir string
	Remote        bool // Disables screenshots and clipboard for SSH sessions
}

// Model is the Bubble Tea model for one player: title menu, game view,
// result screen and run history.
type Model struct {
	game    *tanks.Game
	screen  *core.Screen
	cells   *CellRenderer
	record  RecordStore
	store   *storage.Store
	sound   *audio.Player
	watcher *config.Watcher
	logger  *log.Logger
	preset  config.DifficultyPreset
	config  core.RuntimeConfig
	shotDir string
	remote  bool

	keys  KeyMap
	help  help.Model
	menu  MenuModel
	board ScoreboardModel
	view  view

	input    core.InputFrame
	state    core.GameState
	ticking  bool
	status   string
	quitting bool
}

// NewModel creates a session model that starts on the title menu.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	record := opts.Record
	if record == nil {
		record = nopRecord{}
	}
	tuning := opts.Tuning
	if err := tuning.Validate(); err != nil {
		tuning = config.DefaultTanksConfig()
	}
	cfg := opts.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".tancheke", "screenshots")
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game: tanks.New(
			tanks.WithConfig(tuning),
			tanks.WithHighScores(record),
			tanks.WithLogger(logger),
		),
		screen:  core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		cells:   NewCellRenderer(opts.Renderer),
		record:  record,
		store:   opts.Store,
		sound:   opts.Sound,
		watcher: opts.Watcher,
		logger:  logger,
		preset:  opts.Preset,
		config:  cfg,
		shotDir: shotDir,
		remote:  opts.Remote,
		keys:    DefaultKeyMap(),
		help:    h,
		menu:    NewMenuModel(cfg.ScreenW, cfg.ScreenH),
		input:   core.NewInputFrame(),
	}
}

// gameRows leaves the last terminal row for the help line.
func gameRows(h int) int {
	if h <= 1 {
		return 1
	}
	return h - 1
}

// Init starts listening for tuning reloads.
func (m Model) Init() tea.Cmd {
	return waitForConfig(m.watcher)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		cfg := msg.Config
		config.ApplyTanksPreset(&cfg, m.preset)
		m.game.StageConfig(cfg)
		m.logger.Info("tuning staged", "level", m.state.Level)
		m.status = "tuning reloaded, applies from the next level"
		return m, waitForConfig(m.watcher)

	case ConfigErrorMsg:
		m.logger.Warn("could not reload tuning", "error", msg.Err)
		m.status = "tuning not reloaded: " + msg.Err.Error()
		return m, waitForConfig(m.watcher)
	}

	if m.view == viewScoreboard {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewMenu:
		return m.updateMenu(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyFrame()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Result screen
	if m.state.GameOver {
		switch action {
		case core.ActionConfirm:
			return m.startRun()
		case core.ActionMenu:
			m.openMenu("")
		case core.ActionRestart:
			m.openMenu(m.resetRecord())
		}
		return m, nil
	}

	if action == core.ActionMenu {
		m.openMenu("run abandoned")
		return m, nil
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice MenuChoice
	m.menu, choice = m.menu.Update(msg)

	switch choice {
	case ChoiceStart:
		return m.startRun()
	case ChoiceScoreboard:
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
	case ChoiceResetRecord:
		m.menu.SetNotice(m.resetRecord())
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.openMenu("")
		return m, nil
	}
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.menu.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if m.view == viewScoreboard {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick steps the game once. Ticks stop while the game is not shown.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.view != viewPlaying {
		m.ticking = false
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	if m.sound != nil {
		m.sound.Play(result.Events...)
	}
	if result.Has(core.EventRunEnded) {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// startRun resets the game with a fresh seed unless one was fixed.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	m.game.Reset(cfg)
	m.state = m.game.State()
	m.input.Clear()
	m.view = viewPlaying
	m.status = ""

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) openMenu(notice string) {
	m.view = viewMenu
	m.menu.SetNotice(notice)
}

// resetRecord clears the high score and returns a notice for the menu.
func (m *Model) resetRecord() string {
	if err := m.record.Reset(); err != nil {
		m.logger.Warn("could not reset record", "error", err)
		return "could not reset record"
	}
	m.logger.Info("record reset")
	return "record reset"
}

// saveRun appends the finished run to the history.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	mode := storage.ModeCampaign
	if m.state.Level == tanks.BonusLevel {
		mode = storage.ModeBonus
	}
	run := storage.Run{
		Mode:    mode,
		Outcome: m.state.Outcome,
		Score:   m.state.Score,
		Level:   m.state.Level,
		Ticks:   m.game.Snapshot().Tick,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current frame as text and returns a status line.
func (m *Model) saveScreenshot() string {
	if m.remote || m.shotDir == "" {
		return "screenshots are disabled"
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return "screenshot failed"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return "screenshot failed"
	}
	return "saved " + path
}

// copyFrame puts the current frame on the system clipboard.
func (m *Model) copyFrame() string {
	if m.remote || clipboard.Unsupported {
		return "clipboard unavailable"
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("could not copy frame", "error", err)
		return "copy failed"
	}
	return "frame copied"
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewMenu:
		return m.menu.View(m.record.Load())
	case viewScoreboard:
		return m.board.View()
	}

	m.game.Render(m.screen)
	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys)
	}
	return m.cells.Render(m.screen) + "\n" + dimStyle.Render(footer)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
