// Package tetris implements the falling-block puzzle engine: the piece
// catalog with SRS kick tables, the rotation state machine, the arena with
// gravity, debounced movement and line clearing, and the registry.Game
// adapter the platform drives once per frame.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "tetris"

// Package-level configuration applied on the next Reset (like the CLI flags
// that select it).
var activeConfig = config.DefaultTetrisConfig()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.TetrisConfig) {
	activeConfig = cfg
}

// ArenaConfigFrom extracts the arena knobs from a game configuration.
func ArenaConfigFrom(cfg config.TetrisConfig) ArenaConfig {
	return ArenaConfig{
		Width:           cfg.Arena.Width,
		Height:          cfg.Arena.Height,
		GravityInterval: cfg.Timing.GravityInterval,
		LateralDebounce: cfg.Timing.LateralDebounce,
		RotateDebounce:  cfg.Timing.RotateDebounce,
	}
}

// Game adapts an Arena to the platform's per-frame game interface.
type Game struct {
	cfg        config.TetrisConfig
	rng        *rand.Rand
	arena      *Arena
	difficulty *config.DifficultyManager

	frame         uint64
	softDropUntil uint64
	lastCleared   int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game using the package configuration.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game. The arena configuration must be valid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.arena = NewArena(ArenaConfigFrom(g.cfg), g.rng)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.frame = 0
	g.softDropUntil = 0
	g.lastCleared = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.requiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.arena == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.arena.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.arena.GameOver() {
		g.paused = !g.paused
	}

	if g.arena.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	if input.Has(core.ActionSoftDrop) {
		g.softDropUntil = g.frame + uint64(g.cfg.Timing.SoftDropHold)
	}
	g.arena.SetGravityInterval(g.gravityInterval())

	cleared := g.arena.Apply(g.frame, Commands{
		Left:      input.Has(core.ActionLeft),
		Right:     input.Has(core.ActionRight),
		RotateCW:  input.Has(core.ActionRotateCW),
		RotateCCW: input.Has(core.ActionRotateCCW),
	})
	g.lastCleared = cleared

	return core.StepResult{State: g.State(), Cleared: cleared}
}

// gravityInterval picks the soft drop interval while a recent soft drop press
// is held, otherwise the difficulty-scaled base interval.
func (g *Game) gravityInterval() int {
	if g.frame < g.softDropUntil {
		return g.cfg.Timing.SoftDropInterval
	}
	return g.baseInterval()
}

func (g *Game) baseInterval() int {
	return g.difficulty.GravityInterval(
		g.cfg.Timing.GravityInterval,
		g.cfg.Timing.MinGravityInterval,
		g.arena.Score(),
		int(g.frame),
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.arena == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.arena.Score(),
		Frame:    g.frame,
		GameOver: g.arena.GameOver(),
		Paused:   g.paused,
	}
}
