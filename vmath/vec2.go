package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector used for positions and displacements in
// the normalized [0,1]×[0,1] game field. Value methods return new
// vectors; only Rotate mutates its receiver.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides componentwise. Zero components in w produce IEEE
// Inf/NaN results, which propagate to the caller unchecked.
func (v Vec2) Div(w Vec2) Vec2 {
	return Vec2{v.X / w.X, v.Y / w.Y}
}

// Rotate rotates the vector in place by angle radians.
func (v *Vec2) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
}

// Rotated returns the vector rotated by angle radians.
func (v Vec2) Rotated(angle float64) Vec2 {
	v.Rotate(angle)
	return v
}

// Clamp limits each axis independently to [min, max] of the given box
// corners.
func (v Vec2) Clamp(min, max Vec2) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, min.X), max.X),
		Y: math.Min(math.Max(v.Y, min.Y), max.Y),
	}
}

// Round rounds each axis to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Inside reports whether the point lies within or on the boundary of
// the axis-aligned box [p1, p2].
func (v Vec2) Inside(p1, p2 Vec2) bool {
	return v.X >= p1.X && v.Y >= p1.Y && v.X <= p2.X && v.Y <= p2.Y
}

// Outside requires the point to be simultaneously below p1 and above
// p2 on both axes. For a well-formed box (p1 ≤ p2 componentwise) no
// point satisfies that, so this is always false; it is retained for
// parity with the boundary logic it was written for, where the branch
// never fires. Callers wanting "not inside" should negate Inside.
func (v Vec2) Outside(p1, p2 Vec2) bool {
	return v.X < p1.X && v.Y < p1.Y && v.X > p2.X && v.Y > p2.Y
}
