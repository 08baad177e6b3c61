package tetris

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ArenaConfig holds the knobs fixed when an arena is built.
// Width and Height are the largest valid column and row index: the well spans
// columns 0..Width and rows 0..Height inclusive.
type ArenaConfig struct {
	Width  int
	Height int

	// GravityInterval is the number of frames between automatic drops.
	GravityInterval int
	// LateralDebounce is the minimum frame gap between repeated shifts in the
	// same direction.
	LateralDebounce int
	// RotateDebounce applies the same rule to rotations. Zero disables it.
	RotateDebounce int
}

// DefaultArenaConfig mirrors the classic 10x20 well.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Width:           9,
		Height:          19,
		GravityInterval: 20,
		LateralDebounce: 5,
	}
}

// Validate reports configuration values the arena cannot run with.
func (c ArenaConfig) Validate() error {
	var errs []error
	if c.Width < 3 {
		errs = append(errs, fmt.Errorf("width %d is below 3", c.Width))
	}
	if c.Height < 3 {
		errs = append(errs, fmt.Errorf("height %d is below 3", c.Height))
	}
	if c.GravityInterval < 0 {
		errs = append(errs, fmt.Errorf("gravity interval %d is negative", c.GravityInterval))
	}
	if c.LateralDebounce < 0 {
		errs = append(errs, fmt.Errorf("lateral debounce %d is negative", c.LateralDebounce))
	}
	if c.RotateDebounce < 0 {
		errs = append(errs, fmt.Errorf("rotate debounce %d is negative", c.RotateDebounce))
	}
	if len(errs) > 0 {
		return fmt.Errorf("tetris: invalid arena config: %w", errors.Join(errs...))
	}
	return nil
}

// Tile is a settled cell of the stack.
type Tile struct {
	Pos   core.Vector
	Color core.Color
}

// Position returns the tile's cell.
func (t Tile) Position() core.Vector {
	return t.Pos
}

// ActiveView is a read-only description of the falling piece.
type ActiveView struct {
	Shape    Shape
	Color    core.Color
	Rotation Rotation
	Origin   core.Vector
	Tiles    [4]core.Vector
}

// Commands are the player inputs applied during one frame.
type Commands struct {
	Left      bool
	Right     bool
	RotateCW  bool
	RotateCCW bool
}

// inputMark remembers the last honored input for debouncing.
type inputMark struct {
	frame uint64
	dir   int
}

// Arena owns the settled stack and the falling piece.
// It is not safe for concurrent use.
type Arena struct {
	cfg   ArenaConfig
	rng   *rand.Rand
	piece Piece

	// settled keeps lock order for rendering; occupied indexes it by cell.
	settled  []Tile
	occupied *intmap.Map[int64, core.Color]

	score           int
	gravityInterval int
	lastGravity     uint64
	lastLateral     inputMark
	lastRotate      inputMark
	gameOver        bool
}

// NewArena builds an empty arena and spawns the first piece.
// It panics if cfg does not validate; callers should check cfg.Validate first.
func NewArena(cfg ArenaConfig, rng *rand.Rand) *Arena {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	a := &Arena{
		cfg:             cfg,
		rng:             rng,
		occupied:        intmap.New[int64, core.Color]((cfg.Width + 1) * (cfg.Height + 1)),
		gravityInterval: cfg.GravityInterval,
	}
	a.spawn()
	return a
}

// cellKey packs a position into a single map key.
func cellKey(p core.Vector) int64 {
	return int64(p.Y)<<32 | int64(uint32(p.X))
}

func (a *Arena) spawnOrigin() core.Vector {
	return core.Vector{X: a.cfg.Width / 2, Y: 0}
}

// spawn replaces the active piece with a random one at the spawn origin.
// A blocked spawn is not detected here; it locks on the next gravity tick and
// surfaces through the ceiling check.
func (a *Arena) spawn() {
	a.piece = NewPiece(RandomDefinition(a.rng), a.spawnOrigin())
}

// isSettled reports whether a settled tile occupies p.
func (a *Arena) isSettled(p core.Vector) bool {
	_, ok := a.occupied.Get(cellKey(p))
	return ok
}

// legal reports whether the active piece may occupy p: inside the side
// walls, not below the floor and not on the stack. Cells above row 0 are legal.
func (a *Arena) legal(p core.Vector) bool {
	if p.X < 0 || p.X > a.cfg.Width || p.Y > a.cfg.Height {
		return false
	}
	return !a.isSettled(p)
}

// fallable ignores the side walls; gravity only collides with floor and stack.
func (a *Arena) fallable(p core.Vector) bool {
	return p.Y <= a.cfg.Height && !a.isSettled(p)
}

// Tick applies gravity for the given frame. The piece drops one row once more
// than the gravity interval has passed since the last drop; a piece that
// cannot drop locks and a new one spawns.
func (a *Arena) Tick(frame uint64) {
	if frame <= a.lastGravity+uint64(a.gravityInterval) {
		return
	}
	a.lastGravity = frame

	down := a.piece.Moved(core.Vector{X: 0, Y: 1})
	if down.Fits(a.fallable) {
		a.piece = down
		return
	}
	a.lock()
	a.spawn()
}

// lock turns the active piece into settled tiles. A tile above the ceiling
// or on an occupied cell ends the game; the latter only happens when the
// piece spawned into the stack and never moved.
func (a *Arena) lock() {
	color := a.piece.def.color
	for _, p := range a.piece.Tiles() {
		if p.Y < 0 || a.isSettled(p) {
			a.gameOver = true
		}
		a.addSettled(Tile{Pos: p, Color: color})
	}
}

func (a *Arena) addSettled(t Tile) {
	key := cellKey(t.Pos)
	if _, ok := a.occupied.Get(key); ok {
		return
	}
	a.occupied.Put(key, t.Color)
	a.settled = append(a.settled, t)
}

// MoveLateral shifts the piece by dx columns. A repeat in the same direction
// is ignored until more than LateralDebounce frames have passed; a change of
// direction is honored at once. Blocked moves are dropped silently.
func (a *Arena) MoveLateral(dx int, frame uint64) {
	if !a.lastLateral.allows(dx, frame, a.cfg.LateralDebounce) {
		return
	}
	a.lastLateral = inputMark{frame: frame, dir: dx}

	moved := a.piece.Moved(core.Vector{X: dx, Y: 0})
	if moved.Fits(a.legal) {
		a.piece = moved
	}
}

// Rotate turns the piece once in dir, trying the SRS kick candidates in order.
// A rejected rotation leaves the piece untouched.
func (a *Arena) Rotate(dir RotateDirection, frame uint64) bool {
	if a.cfg.RotateDebounce > 0 {
		sign := 1
		if dir == CounterClockwise {
			sign = -1
		}
		if !a.lastRotate.allows(sign, frame, a.cfg.RotateDebounce) {
			return false
		}
		a.lastRotate = inputMark{frame: frame, dir: sign}
	}

	rotated, ok := a.piece.Rotated(dir, a.legal)
	if ok {
		a.piece = rotated
	}
	return ok
}

func (m inputMark) allows(dir int, frame uint64, threshold int) bool {
	return frame > m.frame+uint64(threshold) || dir != m.dir
}

// SetGravityInterval changes the number of frames between drops.
// Negative values are treated as zero.
func (a *Arena) SetGravityInterval(frames int) {
	a.gravityInterval = max(frames, 0)
}

// GravityInterval returns the current number of frames between drops.
func (a *Arena) GravityInterval() int {
	return a.gravityInterval
}

// ClearRows removes every full row in a single top-to-bottom sweep, shifting
// the rows above each one down. Each removed row scores one point.
// It returns the number of rows removed.
func (a *Arena) ClearRows() int {
	cleared := 0
	for y := 0; y <= a.cfg.Height; y++ {
		if !a.rowFull(y) {
			continue
		}
		cleared++
		a.score++
		a.collapse(y)
	}
	return cleared
}

func (a *Arena) rowFull(y int) bool {
	for x := 0; x <= a.cfg.Width; x++ {
		if !a.isSettled(core.Vector{X: x, Y: y}) {
			return false
		}
	}
	return true
}

// collapse drops row y and moves every tile above it down by one.
func (a *Arena) collapse(row int) {
	kept := a.settled[:0]
	for _, t := range a.settled {
		switch {
		case t.Pos.Y == row:
			continue
		case t.Pos.Y < row:
			t.Pos.Y++
		}
		kept = append(kept, t)
	}
	a.settled = kept

	a.occupied.Clear()
	for _, t := range a.settled {
		a.occupied.Put(cellKey(t.Pos), t.Color)
	}
}

// HitCeiling reports whether any settled tile lies above row 0.
func (a *Arena) HitCeiling() bool {
	for _, t := range a.settled {
		if t.Pos.Y < 0 {
			return true
		}
	}
	return false
}

// Apply runs one frame in order: inputs, gravity, game-over check, then row
// clearing. Rows are not cleared once the game is over. It returns the number
// of rows cleared.
func (a *Arena) Apply(frame uint64, cmds Commands) int {
	if cmds.Left {
		a.MoveLateral(-1, frame)
	}
	if cmds.Right {
		a.MoveLateral(1, frame)
	}
	if cmds.RotateCW {
		a.Rotate(Clockwise, frame)
	}
	if cmds.RotateCCW {
		a.Rotate(CounterClockwise, frame)
	}

	a.Tick(frame)

	if a.HitCeiling() {
		a.gameOver = true
	}
	if a.gameOver {
		return 0
	}
	return a.ClearRows()
}

// GameOver reports whether a piece has locked above the ceiling or into a
// blocked spawn. It stays set.
func (a *Arena) GameOver() bool {
	return a.gameOver
}

// Score returns the number of rows cleared.
func (a *Arena) Score() int {
	return a.score
}

// Bounds returns the largest valid column and row index.
func (a *Arena) Bounds() core.Vector {
	return core.Vector{X: a.cfg.Width, Y: a.cfg.Height}
}

// Settled returns a copy of the settled tiles in lock order.
func (a *Arena) Settled() []Tile {
	tiles := make([]Tile, len(a.settled))
	copy(tiles, a.settled)
	return tiles
}

// SettledAt returns the tile at p, if any.
func (a *Arena) SettledAt(p core.Vector) (Tile, bool) {
	color, ok := a.occupied.Get(cellKey(p))
	if !ok {
		return Tile{}, false
	}
	return Tile{Pos: p, Color: color}, true
}

// Active describes the falling piece.
func (a *Arena) Active() ActiveView {
	return ActiveView{
		Shape:    a.piece.def.shape,
		Color:    a.piece.def.color,
		Rotation: a.piece.rotation,
		Origin:   a.piece.origin,
		Tiles:    a.piece.Tiles(),
	}
}
