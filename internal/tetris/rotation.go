package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Rotation is one of the four orientations of a piece.
// The numeric values index the per-orientation offset and kick tables.
type Rotation int

const (
	Spawn Rotation = iota // orientation the piece enters the well with
	Right                 // one clockwise turn from Spawn
	Two                   // two turns from Spawn
	Left                  // one counter-clockwise turn from Spawn
)

// rotationCount is the size of the rotation cycle.
const rotationCount = 4

// RotateDirection selects which way a piece turns.
type RotateDirection int

const (
	Clockwise RotateDirection = iota
	CounterClockwise
)

// Next returns the orientation reached by turning once in dir.
func (r Rotation) Next(dir RotateDirection) Rotation {
	step := 1
	if dir == CounterClockwise {
		step = -1
	}
	return Rotation(core.Mod(int(r)+step, rotationCount))
}

// String returns the conventional SRS state name.
func (r Rotation) String() string {
	switch r {
	case Spawn:
		return "0"
	case Right:
		return "R"
	case Two:
		return "2"
	case Left:
		return "L"
	default:
		return "?"
	}
}

func (d RotateDirection) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}
