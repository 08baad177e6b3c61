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

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of terminal rows reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(gameConfig(m.config))
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// gameConfig hands the game the area above the help line.
func gameConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenH = max(cfg.ScreenH-helpHeight, 1)
	return cfg
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
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.inputFrame.Has(core.ActionBack):
		m.backToMenu = true
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Play.Screenshot):
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gc := gameConfig(m.config)
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.help.Width = msg.Width

	// Games that can re-layout keep their state; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, result)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition records state changes worth a log line.
func (m Model) logTransition(prev core.GameState, result core.StepResult) {
	cur := result.State
	switch {
	case cur.GameOver && !prev.GameOver:
		m.logger.Info("game over", "lines", cur.Score, "frames", cur.Frame)
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("game restarted")
	case cur.Paused != prev.Paused:
		m.logger.Debug("pause toggled", "paused", cur.Paused, "frame", cur.Frame)
	}
	if result.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", result.Cleared, "lines", cur.Score)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Play)
}

// State returns the last game state observed by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunResult describes how a game session ended.
type RunResult struct {
	State      core.GameState
	BackToMenu bool
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (RunResult, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
