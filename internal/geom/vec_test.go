package geom

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec2{X: 1e-12, Y: -1e-12}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("normalizing a near-zero vector = %v, want zero", v)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Length()-1) > 1e-9 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
}

func TestFromAngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 4, math.Pi / 2, -math.Pi / 3} {
		v := FromAngle(angle)
		if math.Abs(v.Angle()-angle) > 1e-9 {
			t.Errorf("FromAngle(%v).Angle() = %v", angle, v.Angle())
		}
	}
}
