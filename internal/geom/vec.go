// internal/geom/vec.go
package geom

import "math"

// Vec2 is a point or direction on the arena plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector, or the zero vector for near-zero input.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// FromAngle builds a unit vector from an angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
