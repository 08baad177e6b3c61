package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestShapeNames(t *testing.T) {
	var names string
	for _, s := range Shapes() {
		names += s.String()
	}
	assert.Equal(t, "IJLOSTZ", names)
	assert.Equal(t, "?", Shape(42).String())
}

func TestOffsetsDerivedByClockwiseTurns(t *testing.T) {
	for _, s := range Shapes() {
		def := Lookup(s)
		for r := Right; r <= Left; r++ {
			prev := def.Offsets(r - 1)
			cur := def.Offsets(r)
			for i := range cur {
				assert.Equal(t, prev[i].RotateCW(), cur[i], "%s %s tile %d", s, r, i)
			}
		}
	}
}

func TestTOffsetsPerRotation(t *testing.T) {
	def := Lookup(ShapeT)

	// Nub points up, right, down, left.
	assert.ElementsMatch(t, []core.Vector{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}, def.Offsets(Spawn))
	assert.ElementsMatch(t, []core.Vector{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, def.Offsets(Right))
	assert.ElementsMatch(t, []core.Vector{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, def.Offsets(Two))
	assert.ElementsMatch(t, []core.Vector{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}, def.Offsets(Left))
}

func TestTilesAreDistinct(t *testing.T) {
	for _, s := range Shapes() {
		def := Lookup(s)
		for r := Spawn; r <= Left; r++ {
			seen := map[core.Vector]bool{}
			for _, v := range def.Offsets(r) {
				assert.False(t, seen[v], "%s %s repeats %v", s, r, v)
				seen[v] = true
			}
		}
	}
}

func TestCatalogFamiliesAndColors(t *testing.T) {
	tests := []struct {
		shape  Shape
		family KickFamily
		color  core.Color
	}{
		{ShapeI, FamilyI, core.ColorCyan},
		{ShapeJ, FamilyJLSTZ, core.ColorBlue},
		{ShapeL, FamilyJLSTZ, core.ColorGray},
		{ShapeO, FamilyO, core.ColorYellow},
		{ShapeS, FamilyJLSTZ, core.ColorGreen},
		{ShapeT, FamilyJLSTZ, core.ColorMagenta},
		{ShapeZ, FamilyJLSTZ, core.ColorRed},
	}

	for _, tc := range tests {
		def := Lookup(tc.shape)
		assert.Equal(t, tc.shape, def.Shape())
		assert.Equal(t, tc.family, def.Family(), "%s family", tc.shape)
		assert.Equal(t, tc.color, def.Color(), "%s color", tc.shape)
	}
}

func TestLookupUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Lookup(Shape(-1)) })
	assert.Panics(t, func() { Lookup(shapeCount) })
}

func TestRandomDefinitionIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := map[Shape]int{}
	const draws = 7000
	for range draws {
		counts[RandomDefinition(rng).Shape()]++
	}

	require.Len(t, counts, int(shapeCount))
	for s, n := range counts {
		assert.InDelta(t, draws/int(shapeCount), n, 150, "shape %s drawn %d times", s, n)
	}
}

func TestRandomDefinitionIsDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(5))
	b := rand.New(rand.NewSource(5))
	for range 50 {
		assert.Same(t, RandomDefinition(a), RandomDefinition(b))
	}
}
