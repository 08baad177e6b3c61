package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame           uint64
	Score           int
	Cleared         int // Rows cleared during the last frame
	Shape           Shape
	Rotation        Rotation
	Origin          core.Vector
	Settled         int
	GravityInterval int
	State           GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.arena == nil {
		return Snapshot{}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.arena.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	active := g.arena.Active()
	return Snapshot{
		Frame:           g.frame,
		Score:           g.arena.Score(),
		Cleared:         g.lastCleared,
		Shape:           active.Shape,
		Rotation:        active.Rotation,
		Origin:          active.Origin,
		Settled:         len(g.arena.settled),
		GravityInterval: g.arena.GravityInterval(),
		State:           state,
	}
}
