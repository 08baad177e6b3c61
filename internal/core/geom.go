// Package core provides fundamental types and utilities for the tetris engine
// and its terminal front end. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Vector is an integer 2D position or displacement in screen coordinates:
// x grows to the right, y grows downward.
type Vector struct {
	X, Y int
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k int) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// RotateCW turns v a quarter turn clockwise around the origin as seen on screen.
func (v Vector) RotateCW() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// RotateCCW turns v a quarter turn counter-clockwise around the origin.
func (v Vector) RotateCCW() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// String formats the vector as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the point lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Mod returns x modulo m in the range [0, m), also for negative x.
func Mod(x, m int) int {
	return (x%m + m) % m
}
