// Package vec provides the 2D vector value type shared by positions and velocities.
package vec

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned when a zero-length vector is normalized.
var ErrDegenerateVector = errors.New("vec: degenerate (zero-length) vector")

// Vec2 is a 2D vector in pixel units
type Vec2 struct {
	X, Y float64
}

// New returns Vec2{x, y}
func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v / s. Dividing by zero yields the zero vector instead of Inf/NaN.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Len returns the magnitude of v
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared magnitude (avoids sqrt)
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// A zero-length v returns the zero vector and ErrDegenerateVector.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, ErrDegenerateVector
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, nil
}

// Dot returns the dot product
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
