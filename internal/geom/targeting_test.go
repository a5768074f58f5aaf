package geom

import (
	"math"
	"testing"
)

func TestInCircleBoundaryInclusive(t *testing.T) {
	center := Vec2{}
	if !InCircle(center, Vec2{X: 5}, 5) {
		t.Error("point on the boundary should count as inside")
	}
	if InCircle(center, Vec2{X: 5.001}, 5) {
		t.Error("point just outside should not count")
	}
}

func TestInRingBoundariesInclusive(t *testing.T) {
	center := Vec2{}
	cases := []struct {
		x    float64
		want bool
	}{
		{1.9, false},
		{2.0, true},
		{2.5, true},
		{3.0, true},
		{3.1, false},
	}
	for _, c := range cases {
		if got := InRing(center, Vec2{X: c.x}, 2, 3); got != c.want {
			t.Errorf("InRing at distance %v = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestKNearestSortsAndTruncates(t *testing.T) {
	candidates := []Candidate{
		{ID: 1, Pos: Vec2{X: 9}},
		{ID: 2, Pos: Vec2{X: 1}},
		{ID: 3, Pos: Vec2{X: 5}},
		{ID: 4, Pos: Vec2{X: 3}},
	}
	out := KNearest(Vec2{}, candidates, 3)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	wantOrder := []uint64{2, 4, 3}
	for i, want := range wantOrder {
		if uint64(out[i].ID) != want {
			t.Errorf("out[%d].ID = %d, want %d", i, out[i].ID, want)
		}
	}
	// Input must be untouched.
	if candidates[0].ID != 1 || candidates[0].Distance != 0 {
		t.Error("KNearest modified its input slice")
	}
}

func TestKNearestDegenerate(t *testing.T) {
	if out := KNearest(Vec2{}, nil, 5); out != nil {
		t.Errorf("empty candidates should return nil, got %v", out)
	}
	if out := KNearest(Vec2{}, []Candidate{{ID: 1}}, 0); out != nil {
		t.Errorf("k=0 should return nil, got %v", out)
	}
}

func TestPullVectorZeroOutsideRadius(t *testing.T) {
	pull := PullVector(Vec2{}, Vec2{X: 9}, 8, 150)
	if pull.Length() != 0 {
		t.Errorf("pull outside radius = %v, want zero", pull)
	}
}

func TestPullVectorZeroAtCenter(t *testing.T) {
	pull := PullVector(Vec2{}, Vec2{X: 0.005}, 8, 150)
	if pull.Length() != 0 {
		t.Errorf("pull at the center = %v, want zero to avoid the singularity", pull)
	}
}

func TestPullVectorStrongerNearCenter(t *testing.T) {
	near := PullVector(Vec2{}, Vec2{X: 2}, 8, 150).Length()
	far := PullVector(Vec2{}, Vec2{X: 7}, 8, 150).Length()
	if near <= far {
		t.Errorf("pull should rise toward the center: near=%v far=%v", near, far)
	}
}

func TestPullVectorFalloffCapped(t *testing.T) {
	// Just inside the singularity guard; the falloff must clamp to the cap.
	pull := PullVector(Vec2{}, Vec2{X: 0.02}, 8, 150)
	want := 150.0 * 10.0 * 0.1
	if math.Abs(pull.Length()-want) > 1e-9 {
		t.Errorf("capped pull magnitude = %v, want %v", pull.Length(), want)
	}
}

func TestPullVectorPointsAtCenter(t *testing.T) {
	pull := PullVector(Vec2{X: 10, Y: 10}, Vec2{X: 14, Y: 10}, 8, 150)
	if pull.X >= 0 || math.Abs(pull.Y) > 1e-9 {
		t.Errorf("pull = %v, want direction toward the center (-X)", pull)
	}
}
