package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is the falling tetromino. It is a value: moves and rotations return a
// new Piece and the caller decides whether to commit it.
type Piece struct {
	def      *Definition
	origin   core.Vector
	rotation Rotation
}

// NewPiece places a piece in its spawn orientation at origin.
func NewPiece(def *Definition, origin core.Vector) Piece {
	return Piece{def: def, origin: origin, rotation: Spawn}
}

// Definition returns the static piece description.
func (p Piece) Definition() *Definition { return p.def }

// Origin returns the rotation center in arena coordinates.
func (p Piece) Origin() core.Vector { return p.origin }

// Rotation returns the current orientation.
func (p Piece) Rotation() Rotation { return p.rotation }

// Tiles returns the absolute positions of the four tiles.
func (p Piece) Tiles() [4]core.Vector {
	return placeTiles(p.origin, p.def.offsets[p.rotation])
}

// Moved returns the piece displaced by delta.
func (p Piece) Moved(delta core.Vector) Piece {
	p.origin = p.origin.Add(delta)
	return p
}

// Rotated turns the piece once in dir using the SRS kick candidates of its
// family. legal reports whether a single cell may be occupied. The first
// candidate whose four tiles are all legal is applied; if none is, ok is
// false and the original piece is returned unchanged.
func (p Piece) Rotated(dir RotateDirection, legal func(core.Vector) bool) (rotated Piece, ok bool) {
	target := p.rotation.Next(dir)
	layout := p.def.offsets[target]

	for _, kick := range p.def.Kicks(p.rotation, target) {
		origin := p.origin.Add(kick)
		if allLegal(placeTiles(origin, layout), legal) {
			return Piece{def: p.def, origin: origin, rotation: target}, true
		}
	}
	return p, false
}

// Fits reports whether every tile of the piece is legal.
func (p Piece) Fits(legal func(core.Vector) bool) bool {
	return allLegal(p.Tiles(), legal)
}

func placeTiles(origin core.Vector, layout [4]core.Vector) [4]core.Vector {
	var tiles [4]core.Vector
	for i, off := range layout {
		tiles[i] = origin.Add(off)
	}
	return tiles
}

func allLegal(tiles [4]core.Vector, legal func(core.Vector) bool) bool {
	for _, t := range tiles {
		if !legal(t) {
			return false
		}
	}
	return true
}
