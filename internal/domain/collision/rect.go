// Package collision holds the pure collision predicates used by the physics
// systems: tile grid contacts, rectangle vs rectangle, rectangle vs circle,
// and the approach angle between two bodies.
package collision

import (
	"math"

	"github.com/younwookim/platformer/internal/domain/vec"
)

// Rect is an axis-aligned rectangle in pixel units (top-left origin)
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rectangle center
func (r Rect) Center() vec.Vec2 {
	return vec.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether the projections overlap on both axes.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contacts holds directional contact flags
type Contacts struct {
	Left, Right, Top, Bottom bool
}

// Any reports whether any flag is set
func (c Contacts) Any() bool {
	return c.Left || c.Right || c.Top || c.Bottom
}

// Or returns the union of both flag sets
func (c Contacts) Or(o Contacts) Contacts {
	return Contacts{
		Left:   c.Left || o.Left,
		Right:  c.Right || o.Right,
		Top:    c.Top || o.Top,
		Bottom: c.Bottom || o.Bottom,
	}
}

// RectRect classifies the contact of a against b.
// If the rectangles do not intersect every flag is false. Otherwise each flag
// reports whether that edge of a lies inside b's span on the same axis
// (boundaries inclusive). Deep overlaps may set all four flags; callers
// disambiguate with ApproachAngle.
func RectRect(a, b Rect) Contacts {
	if !a.Intersects(b) {
		return Contacts{}
	}
	return Contacts{
		Left:   within(a.X, b.X, b.Right()),
		Right:  within(a.Right(), b.X, b.Right()),
		Top:    within(a.Y, b.Y, b.Bottom()),
		Bottom: within(a.Bottom(), b.Y, b.Bottom()),
	}
}

// ApproachAngle returns atan2(dy, dx) of a's center relative to b's center.
// A body directly above b yields -pi/2, one to its right yields 0.
func ApproachAngle(a, b Rect) float64 {
	d := a.Center().Sub(b.Center())
	return math.Atan2(d.Y, d.X)
}

// CircleRect reports whether the circle is close enough to r to count as touching.
// Only centers are compared: the squared center distance must not exceed
// (radius*margin)^2. A margin above 1 makes pickups forgiving.
func CircleRect(r Rect, center vec.Vec2, radius, margin float64) bool {
	limit := radius * margin
	return r.Center().Sub(center).LenSq() <= limit*limit
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
