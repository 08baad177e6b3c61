package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestArena(t *testing.T, mutate func(*ArenaConfig)) *Arena {
	t.Helper()
	cfg := DefaultArenaConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	return NewArena(cfg, rand.New(rand.NewSource(7)))
}

func withGravity(n int) func(*ArenaConfig) {
	return func(c *ArenaConfig) { c.GravityInterval = n }
}

func (a *Arena) place(s Shape, origin core.Vector) {
	a.piece = NewPiece(Lookup(s), origin)
}

func (a *Arena) fill(cells ...core.Vector) {
	for _, c := range cells {
		a.addSettled(Tile{Pos: c, Color: core.ColorGray})
	}
}

func (a *Arena) fillRow(y int, skip ...int) {
	skipped := map[int]bool{}
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x <= a.cfg.Width; x++ {
		if !skipped[x] {
			a.fill(core.Vec(x, y))
		}
	}
}

func TestNewArenaSpawnsAtCenter(t *testing.T) {
	a := newTestArena(t, nil)

	view := a.Active()
	assert.Equal(t, core.Vec(4, 0), view.Origin)
	assert.Equal(t, Spawn, view.Rotation)
	assert.Equal(t, Lookup(view.Shape).Color(), view.Color)
	assert.Equal(t, core.Vec(9, 19), a.Bounds())
	assert.Empty(t, a.Settled())
	assert.False(t, a.GameOver())
}

func TestNewArenaPanicsOnInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArenaConfig)
		want   string
	}{
		{"narrow", func(c *ArenaConfig) { c.Width = 2 }, "width"},
		{"short", func(c *ArenaConfig) { c.Height = 0 }, "height"},
		{"gravity", func(c *ArenaConfig) { c.GravityInterval = -1 }, "gravity"},
		{"lateral", func(c *ArenaConfig) { c.LateralDebounce = -3 }, "lateral"},
		{"rotate", func(c *ArenaConfig) { c.RotateDebounce = -1 }, "rotate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArenaConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Panics(t, func() { NewArena(cfg, nil) })
		})
	}
}

func TestTickWaitsForInterval(t *testing.T) {
	a := newTestArena(t, withGravity(2))
	a.place(ShapeT, core.Vec(4, 5))

	steps := []struct {
		frame uint64
		y     int
	}{
		{1, 5}, {2, 5}, {3, 6}, {4, 6}, {5, 6}, {6, 7},
	}
	for _, s := range steps {
		a.Tick(s.frame)
		assert.Equal(t, s.y, a.Active().Origin.Y, "frame %d", s.frame)
	}
}

func TestTickEveryFrameWithZeroInterval(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeT, core.Vec(4, 5))

	for frame := uint64(1); frame <= 3; frame++ {
		a.Tick(frame)
	}
	assert.Equal(t, 8, a.Active().Origin.Y)

	// Repeating a frame does not drop twice.
	a.Tick(3)
	assert.Equal(t, 8, a.Active().Origin.Y)
}

func TestTickLocksAndSpawns(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeT, core.Vec(4, 19))

	a.Tick(1)

	settled := a.Settled()
	require.Len(t, settled, 4)
	for _, tile := range settled {
		assert.Equal(t, core.ColorMagenta, tile.Color)
	}
	assert.ElementsMatch(t,
		[]core.Vector{{X: 4, Y: 18}, {X: 3, Y: 19}, {X: 4, Y: 19}, {X: 5, Y: 19}},
		[]core.Vector{settled[0].Position(), settled[1].Position(), settled[2].Position(), settled[3].Position()})

	assert.Equal(t, core.Vec(4, 0), a.Active().Origin)
	assert.Equal(t, Spawn, a.Active().Rotation)
	assert.False(t, a.GameOver())

	// The lock consumed the gravity step for frame 1.
	a.Tick(1)
	assert.Equal(t, 0, a.Active().Origin.Y)
	a.Tick(2)
	assert.Equal(t, 1, a.Active().Origin.Y)
}

func TestLockAboveCeilingEndsGame(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeT, core.Vec(4, 0))
	a.fill(core.Vec(3, 1), core.Vec(4, 1), core.Vec(5, 1))

	cleared := a.Apply(1, Commands{})

	assert.Zero(t, cleared)
	assert.True(t, a.GameOver())
	assert.True(t, a.HitCeiling())
	_, ok := a.SettledAt(core.Vec(4, -1))
	assert.True(t, ok)
}

func TestTickLockAboveCeilingSetsGameOver(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeI, core.Vec(4, -1))
	a.fillRow(0)

	a.Tick(1)
	assert.True(t, a.GameOver())
}

func TestLockOnBlockedSpawnEndsGame(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeI, core.Vec(4, 0))
	for x := 3; x <= 6; x++ {
		a.fill(core.Vec(x, 0), core.Vec(x, 1))
	}

	cleared := a.Apply(1, Commands{})

	assert.Zero(t, cleared)
	assert.True(t, a.GameOver(), "I piece locked into the stack")
	assert.False(t, a.HitCeiling(), "no tile above row 0")
	assert.Len(t, a.Settled(), 8)

	for frame := uint64(2); frame < 50; frame++ {
		a.Apply(frame, Commands{})
	}
	assert.True(t, a.GameOver())
}

func TestMoveLateralDebounce(t *testing.T) {
	a := newTestArena(t, withGravity(1000))
	a.place(ShapeT, core.Vec(4, 5))

	steps := []struct {
		frame uint64
		dx    int
		x     int
	}{
		{10, -1, 3}, // first press
		{11, -1, 3}, // same direction inside the window
		{12, 1, 4},  // direction change bypasses the window
		{14, 1, 4},  // 14 is not past 12+5
		{17, 1, 4},
		{18, 1, 5},
	}
	for _, s := range steps {
		a.MoveLateral(s.dx, s.frame)
		assert.Equal(t, s.x, a.Active().Origin.X, "frame %d dx %d", s.frame, s.dx)
	}
}

func TestMoveLateralBlocked(t *testing.T) {
	a := newTestArena(t, withGravity(1000))

	a.place(ShapeT, core.Vec(1, 5))
	a.MoveLateral(-1, 10)
	assert.Equal(t, core.Vec(1, 5), a.Active().Origin, "left wall")

	a.place(ShapeT, core.Vec(8, 5))
	a.MoveLateral(1, 20)
	assert.Equal(t, core.Vec(8, 5), a.Active().Origin, "right wall")

	a.place(ShapeT, core.Vec(4, 5))
	a.fill(core.Vec(6, 5))
	a.MoveLateral(1, 30)
	assert.Equal(t, core.Vec(4, 5), a.Active().Origin, "stack")
}

func TestRotateDebounce(t *testing.T) {
	a := newTestArena(t, func(c *ArenaConfig) {
		c.GravityInterval = 1000
		c.RotateDebounce = 3
	})
	a.place(ShapeT, core.Vec(4, 10))

	assert.True(t, a.Rotate(Clockwise, 10))
	assert.False(t, a.Rotate(Clockwise, 11))
	assert.True(t, a.Rotate(CounterClockwise, 12))
	assert.False(t, a.Rotate(CounterClockwise, 14))
	assert.True(t, a.Rotate(CounterClockwise, 16))
	assert.Equal(t, Left, a.Active().Rotation)
}

func TestRotateWithoutDebounce(t *testing.T) {
	a := newTestArena(t, withGravity(1000))
	a.place(ShapeT, core.Vec(4, 10))

	assert.True(t, a.Rotate(Clockwise, 10))
	assert.True(t, a.Rotate(Clockwise, 10))
	assert.Equal(t, Two, a.Active().Rotation)
}

func TestRotateUsesArenaBounds(t *testing.T) {
	a := newTestArena(t, withGravity(1000))
	a.piece = Piece{def: Lookup(ShapeI), origin: core.Vec(9, 10), rotation: Right}

	require.True(t, a.Rotate(Clockwise, 1))
	assert.Equal(t, core.Vec(8, 11), a.Active().Origin)
}

func TestClearRowsSingle(t *testing.T) {
	a := newTestArena(t, nil)
	a.fillRow(17)
	a.fill(core.Vec(0, 18), core.Vec(0, 19), core.Vec(3, 16))

	assert.Equal(t, 1, a.ClearRows())
	assert.Equal(t, 1, a.Score())
	assert.Len(t, a.Settled(), 3)

	for _, p := range []core.Vector{{X: 0, Y: 18}, {X: 0, Y: 19}, {X: 3, Y: 17}} {
		_, ok := a.SettledAt(p)
		assert.True(t, ok, "expected tile at %v", p)
	}
	_, ok := a.SettledAt(core.Vec(3, 16))
	assert.False(t, ok)
}

func TestClearRowsAdjacent(t *testing.T) {
	a := newTestArena(t, nil)
	a.fillRow(18)
	a.fillRow(19)
	a.fill(core.Vec(2, 17))

	assert.Equal(t, 2, a.ClearRows())
	assert.Equal(t, 2, a.Score())
	require.Len(t, a.Settled(), 1)
	assert.Equal(t, core.Vec(2, 19), a.Settled()[0].Pos)
}

func TestClearRowsSeparated(t *testing.T) {
	a := newTestArena(t, nil)
	a.fillRow(15)
	a.fillRow(19)
	a.fill(core.Vec(0, 14), core.Vec(1, 16))

	assert.Equal(t, 2, a.ClearRows())
	_, ok := a.SettledAt(core.Vec(0, 16))
	assert.True(t, ok)
	_, ok = a.SettledAt(core.Vec(1, 17))
	assert.True(t, ok)
	assert.Len(t, a.Settled(), 2)
}

func TestClearRowsIgnoresPartialRows(t *testing.T) {
	a := newTestArena(t, nil)
	a.fillRow(19, 4)

	assert.Zero(t, a.ClearRows())
	assert.Zero(t, a.Score())
	assert.Len(t, a.Settled(), 9)
}

func TestApplyDropsIPieceIntoGap(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.fillRow(19, 3, 4, 5, 6)
	a.place(ShapeI, core.Vec(4, 18))

	assert.Zero(t, a.Apply(1, Commands{}))
	assert.Equal(t, 19, a.Active().Origin.Y)

	assert.Equal(t, 1, a.Apply(2, Commands{}))
	assert.Equal(t, 1, a.Score())
	assert.Empty(t, a.Settled())
	assert.False(t, a.GameOver())
}

func TestApplyInputsBeforeGravity(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeT, core.Vec(4, 5))

	a.Apply(1, Commands{Left: true, RotateCW: true})

	view := a.Active()
	assert.Equal(t, core.Vec(3, 6), view.Origin)
	assert.Equal(t, Right, view.Rotation)
}

func TestApplySkipsClearingAfterGameOver(t *testing.T) {
	a := newTestArena(t, withGravity(1000))
	a.fillRow(19)
	a.gameOver = true

	assert.Zero(t, a.Apply(1, Commands{}))
	assert.Zero(t, a.Score())
	assert.Len(t, a.Settled(), 10)
}

func TestOperationsAfterGameOver(t *testing.T) {
	a := newTestArena(t, withGravity(0))
	a.place(ShapeT, core.Vec(4, 0))
	a.fill(core.Vec(3, 1), core.Vec(4, 1), core.Vec(5, 1))
	a.Apply(1, Commands{})
	require.True(t, a.GameOver())

	assert.NotPanics(t, func() {
		for frame := uint64(2); frame < 200; frame++ {
			a.Apply(frame, Commands{Left: true, Right: frame%2 == 0, RotateCW: true, RotateCCW: frame%3 == 0})
			a.Tick(frame)
			a.MoveLateral(1, frame)
			a.Rotate(CounterClockwise, frame)
			a.ClearRows()
			_ = a.Active()
			_ = a.Settled()
		}
	})
	assert.True(t, a.GameOver(), "game over is sticky")
}

func TestSettledReturnsCopy(t *testing.T) {
	a := newTestArena(t, nil)
	a.fill(core.Vec(0, 19))

	tiles := a.Settled()
	tiles[0].Pos = core.Vec(5, 5)

	_, ok := a.SettledAt(core.Vec(0, 19))
	assert.True(t, ok)
	assert.Equal(t, core.Vec(0, 19), a.Settled()[0].Pos)
}

func TestSetGravityInterval(t *testing.T) {
	a := newTestArena(t, nil)
	assert.Equal(t, 20, a.GravityInterval())

	a.SetGravityInterval(3)
	assert.Equal(t, 3, a.GravityInterval())

	a.SetGravityInterval(-4)
	assert.Zero(t, a.GravityInterval())
}

func overlapsStack(a *Arena) bool {
	for _, p := range a.Active().Tiles {
		if a.isSettled(p) {
			return true
		}
	}
	return false
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		a := NewArena(ArenaConfig{Width: 9, Height: 19, GravityInterval: 1, LateralDebounce: 1}, rand.New(rand.NewSource(seed)))
		input := rand.New(rand.NewSource(seed * 31))

		for frame := uint64(1); frame < 5000 && !a.GameOver(); frame++ {
			clean := !overlapsStack(a)

			switch input.Intn(5) {
			case 0:
				a.MoveLateral(-1, frame)
			case 1:
				a.MoveLateral(1, frame)
			case 2:
				a.Rotate(Clockwise, frame)
			case 3:
				a.Rotate(CounterClockwise, frame)
			}

			view := a.Active()
			if clean {
				require.False(t, overlapsStack(a), "seed %d frame %d: move or rotate overlapped the stack", seed, frame)
			}
			def := Lookup(view.Shape)
			for i, off := range def.Offsets(view.Rotation) {
				require.Equal(t, view.Origin.Add(off), view.Tiles[i])
				require.True(t, view.Tiles[i].X >= 0 && view.Tiles[i].X <= 9 && view.Tiles[i].Y <= 19, "tile %v outside well", view.Tiles[i])
			}

			a.Apply(frame, Commands{})

			seen := map[core.Vector]bool{}
			for _, tile := range a.Settled() {
				require.False(t, seen[tile.Pos], "seed %d frame %d: duplicate settled tile %v", seed, frame, tile.Pos)
				seen[tile.Pos] = true
			}
			if !a.GameOver() {
				for y := 0; y <= 19; y++ {
					require.False(t, a.rowFull(y), "full row %d survived clearing", y)
				}
			}
		}
	}
}
