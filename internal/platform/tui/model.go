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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

// helpHeight is the number of terminal rows reserved below the arena.
const helpHeight = 1

// Game is what the terminal runtime drives each tick.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Sound plays feedback for game events.
type Sound interface {
	PlayPickup()
}

// Options holds the optional collaborators of a Model.
type Options struct {
	HoldTicks int         // Ticks a direction stays held after a key press
	Logger    *log.Logger // nil discards log output
	Sound     Sound       // nil plays nothing
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game    Game
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	held    *core.HeldKeys
	clock   *core.FrameClock
	sound   Sound
	logger  *log.Logger
	now     func() time.Time
	config  core.RuntimeConfig
	pending core.InputFrame // One-shot actions waiting for the next tick

	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model and resets the game with cfg.
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

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		keys:      DefaultKeyMap(),
		help:      h,
		held:      core.NewHeldKeys(opts.HoldTicks),
		clock:     core.NewFrameClock(cfg.TickRate),
		sound:     opts.Sound,
		logger:    logger,
		now:       time.Now,
		config:    cfg,
		pending:   core.NewInputFrame(),
		gameState: game.State(),
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		m.nextTick(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "tick", m.gameState.Tick)
		return m, tea.Quit
	case action == core.ActionPause:
		m.pending.Set(action)
	case action != core.ActionNone:
		m.held.Press(action)
	}

	return m, nil
}

// handleResize re-projects the arena onto the new terminal size.
// The game keeps running; only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.held.Tick(&frame)

	result := m.game.Step(frame)
	if result.Collected {
		m.logger.Debug("fish collected", "score", result.State.Score, "tick", result.State.Tick)
		if m.sound != nil {
			m.sound.PlayPickup()
		}
	}
	if result.State.Paused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}
	m.gameState = result.State

	return m, m.nextTick()
}

// nextTick schedules the next frame on the fixed-timestep clock.
func (m Model) nextTick() tea.Cmd {
	return tickCmd(m.clock.Next(m.now()))
}

// saveScreenshot writes the current frame as plain text under
// ~/.orca/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".orca", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the final game state.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return model.State(), nil
}
