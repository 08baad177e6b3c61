package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
	shapeCount
)

// String returns the single-letter piece name.
func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return "?"
	}
	return string("IJLOSTZ"[s])
}

// Definition is the static description of a piece. Definitions are built once
// at package initialization and shared read-only by every piece instance.
type Definition struct {
	shape   Shape
	color   core.Color
	family  KickFamily
	offsets [rotationCount][4]core.Vector
}

// Shape returns the piece identifier.
func (d *Definition) Shape() Shape { return d.shape }

// Color returns the display attribute used for the piece and its settled tiles.
func (d *Definition) Color() core.Color { return d.color }

// Family returns the kick table family the piece rotates with.
func (d *Definition) Family() KickFamily { return d.family }

// Offsets returns the four tile positions relative to the piece origin
// for the given orientation.
func (d *Definition) Offsets(r Rotation) [4]core.Vector {
	return d.offsets[r]
}

// Kicks returns the ordered candidate displacements for turning from one
// orientation to another.
func (d *Definition) Kicks(from, to Rotation) []core.Vector {
	return d.family.Kicks(from, to)
}

// newDefinition derives the Right, Two and Left layouts by turning the spawn
// layout clockwise one quarter at a time.
func newDefinition(shape Shape, color core.Color, family KickFamily, spawn [4]core.Vector) *Definition {
	d := &Definition{shape: shape, color: color, family: family}
	d.offsets[Spawn] = spawn
	for r := Right; r <= Left; r++ {
		for i, v := range d.offsets[r-1] {
			d.offsets[r][i] = v.RotateCW()
		}
	}
	return d
}

// Spawn layouts are given in screen coordinates around the rotation center at
// (0, 0); negative y is above the center.
var catalog = [shapeCount]*Definition{
	ShapeI: newDefinition(ShapeI, core.ColorCyan, FamilyI, [4]core.Vector{
		{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
	}),
	ShapeJ: newDefinition(ShapeJ, core.ColorBlue, FamilyJLSTZ, [4]core.Vector{
		{X: -1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	}),
	ShapeL: newDefinition(ShapeL, core.ColorGray, FamilyJLSTZ, [4]core.Vector{
		{X: 1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	}),
	ShapeO: newDefinition(ShapeO, core.ColorYellow, FamilyO, [4]core.Vector{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0},
	}),
	ShapeS: newDefinition(ShapeS, core.ColorGreen, FamilyJLSTZ, [4]core.Vector{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0},
	}),
	ShapeT: newDefinition(ShapeT, core.ColorMagenta, FamilyJLSTZ, [4]core.Vector{
		{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0},
	}),
	ShapeZ: newDefinition(ShapeZ, core.ColorRed, FamilyJLSTZ, [4]core.Vector{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0},
	}),
}

// Lookup returns the definition for a shape. It panics on an unknown shape.
func Lookup(s Shape) *Definition {
	if s < 0 || s >= shapeCount {
		panic(fmt.Sprintf("tetris: unknown shape %d", int(s)))
	}
	return catalog[s]
}

// Shapes lists every shape in catalog order.
func Shapes() []Shape {
	shapes := make([]Shape, 0, shapeCount)
	for s := ShapeI; s < shapeCount; s++ {
		shapes = append(shapes, s)
	}
	return shapes
}

// RandomDefinition picks one of the seven shapes with equal probability.
func RandomDefinition(rng *rand.Rand) *Definition {
	return catalog[rng.Intn(int(shapeCount))]
}
