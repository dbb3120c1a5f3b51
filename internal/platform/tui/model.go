package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// noticeDuration is how long a notification stays on the status row.
const noticeDuration = 2 * time.Second

// statusRows is the notification line between the game and the help bar.
const statusRows = 1

// Game is the simulation driven by the host.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures the host around a game.
type Options struct {
	Store  *storage.Store // Run history; nil disables saving
	Logger *log.Logger    // nil discards
	Preset string         // Difficulty preset recorded with each run
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model hosting a single game.
type Model struct {
	game    Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	preset  string
	config  core.RuntimeConfig
	clock   *core.FixedStep
	pending core.InputFrame // Intents queued since the last tick
	state   core.GameState
	keys    KeyMap
	help    help.Model

	lastFrame   time.Time
	notice      string
	noticeUntil time.Time
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		store:   opts.Store,
		logger:  logger,
		preset:  opts.Preset,
		config:  cfg,
		clock:   core.NewFixedStep(cfg.TickRate),
		pending: core.NewInputFrame(),
		keys:    DefaultKeyMap(),
		help:    h,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameRows())
	return m
}

// gameRows returns the terminal rows left for the game below the chrome.
func (m Model) gameRows() int {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = 0
		for _, col := range m.keys.FullHelp() {
			helpRows = max(helpRows, len(col))
		}
	}
	return max(1, m.config.ScreenH-statusRows-helpRows)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session ready", "game", m.game.ID(), "seed", m.config.Seed,
		"tps", m.config.TickRate, "fps", m.config.FPS)
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		m = m.advance(time.Time(msg))
		return m, frameCmd(m.config.FPS)
	}

	return m, nil
}

// handleKey queues intents for keyboard input. Any key starts the game and
// any key restarts it after game over.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.gameRows())
		return m, nil
	}

	if m.state.GameOver {
		if !m.pending.Has(core.ActionRestart) {
			m.pending.Set(core.ActionRestart)
		}
		return m, nil
	}
	if !m.state.Started && !m.pending.Has(core.ActionStart) {
		m.pending.Set(core.ActionStart)
	}
	m.pending.Set(m.keys.Action(msg))

	return m, nil
}

// handleMouse buys a power-up on left click, starting the game first if needed.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if !m.state.Started && !m.pending.Has(core.ActionStart) {
		m.pending.Set(core.ActionStart)
	}
	m.pending.Set(core.ActionBuyPowerUp)
	return m, nil
}

// handleResize adapts the screen buffer. The world is resolution independent,
// so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.gameRows())
	m.help.Width = msg.Width
	return m, nil
}

// advance runs as many fixed ticks as the elapsed wall-clock time allows.
// Queued intents go to the first tick; with zero ticks they wait for the next frame.
func (m Model) advance(now time.Time) Model {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	ticks := m.clock.Advance(elapsed)
	for range ticks {
		if !m.pending.Empty() {
			m.logger.Debug("applying intents", "actions", m.pending.Actions, "frame", m.state.Frame)
		}
		result := m.game.Step(m.pending)
		m.pending.Clear()
		m.state = result.State
		m = m.handleEvents(result.Events, now)
	}

	if m.notice != "" && now.After(m.noticeUntil) {
		m.notice = ""
	}
	return m
}

// handleEvents logs simulation events and forwards notifications.
func (m Model) handleEvents(events []core.Event, now time.Time) Model {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventStarted, core.EventRestarted:
			m.logger.Info("run started", "event", ev.Kind, "coins", m.state.Coins, "best", m.state.BestScore)

		case core.EventPowerUpActivated, core.EventPurchaseRejected:
			m.logger.Info("power-up purchase", "event", ev.Kind, "coins", m.state.Coins,
				"available", m.state.PowerUps)
			m = m.notify(ev.Message, now)

		case core.EventPowerUpExpired:
			m.logger.Debug("power-up expired", "frame", m.state.Frame)
			m = m.notify(ev.Message, now)

		case core.EventGameOver:
			m.logger.Info("game over", "score", m.state.Score, "best", m.state.BestScore,
				"coins", m.state.Coins, "frames", m.state.Frame)
			m = m.notify(ev.Message, now)
			m = m.saveRun(now)
		}
	}
	return m
}

func (m Model) notify(msg string, now time.Time) Model {
	if msg == "" {
		return m
	}
	m.notice = msg
	m.noticeUntil = now.Add(noticeDuration)
	return m
}

// saveRun records the finished run and announces a new all-time best.
// Storage is best-effort.
func (m Model) saveRun(now time.Time) Model {
	if m.store == nil {
		return m
	}

	record, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("could not read all-time best", "error", err)
		record = -1
	}

	id, err := m.store.SaveRun(storage.Run{
		Score:          m.state.Score,
		Coins:          m.state.Coins,
		Frames:         m.state.Frame,
		PowerUpsBought: m.state.PowerUpsBought,
		Preset:         m.preset,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return m
	}
	m.logger.Debug("run saved", "id", id, "score", m.state.Score)

	if record > 0 && m.state.Score > record {
		m.logger.Info("new all-time best", "score", m.state.Score, "previous", record)
		m = m.notify(fmt.Sprintf("New all-time best: %d!", m.state.Score), now)
	}
	return m
}

// saveScreenshot saves the current screen to ~/.runner/screenshots.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		*m = m.notify("Screenshot failed", time.Now())
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	*m = m.notify("Screenshot saved", time.Now())
}

func (m *Model) writeScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Notice returns the notification currently shown on the status row.
func (m Model) Notice() string {
	return m.notice
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" +
		statusStyle.Render(m.notice) + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
