package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// KickFamily selects the wall kick table a piece uses.
type KickFamily int

const (
	FamilyJLSTZ KickFamily = iota
	FamilyI
	FamilyO
)

func (f KickFamily) String() string {
	switch f {
	case FamilyI:
		return "I"
	case FamilyO:
		return "O"
	default:
		return "JLSTZ"
	}
}

// offsetRow holds one SRS offset per orientation, indexed by Rotation.
type offsetRow [rotationCount]core.Vector

// SRS offset data, transcribed as published: y grows upward. Each row is one
// kick candidate; the kick for a from->to transition is row[from] - row[to].
var (
	offsetsJLSTZ = []offsetRow{
		{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}},
		{{X: 0, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 0}, {X: -1, Y: -1}},
		{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: 0}, {X: 0, Y: 2}},
		{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 0}, {X: -1, Y: 2}},
	}

	offsetsI = []offsetRow{
		{{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}},
		{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		{{X: 2, Y: 0}, {X: 0, Y: 0}, {X: -2, Y: 1}, {X: 0, Y: 1}},
		{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}},
		{{X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}, {X: 0, Y: 2}},
	}

	// The O piece has a single row: its kick only re-centers the square.
	offsetsO = []offsetRow{
		{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 0}},
	}
)

func (f KickFamily) table() []offsetRow {
	switch f {
	case FamilyI:
		return offsetsI
	case FamilyO:
		return offsetsO
	default:
		return offsetsJLSTZ
	}
}

// Kicks returns the candidate displacements for a from->to turn in screen
// coordinates, in the order they must be tried.
func (f KickFamily) Kicks(from, to Rotation) []core.Vector {
	table := f.table()
	kicks := make([]core.Vector, len(table))
	for i, row := range table {
		d := row[from].Sub(row[to])
		kicks[i] = core.Vector{X: d.X, Y: -d.Y}
	}
	return kicks
}
