// internal/geom/targeting.go
package geom

import (
	"math"
	"sort"

	"go-survivors/internal/types"
)

// InCircle reports whether p lies within radius of center. The boundary
// counts as inside.
func InCircle(center, p Vec2, radius float64) bool {
	return center.Distance(p) <= radius
}

// InRing reports whether p lies in the closed annulus [inner, outer] around
// center. Both boundaries count as touching.
func InRing(center, p Vec2, inner, outer float64) bool {
	d := center.Distance(p)
	return d >= inner && d <= outer
}

// Candidate is one targeting option produced by KNearest.
type Candidate struct {
	ID       types.EntityID
	Pos      Vec2
	Distance float64
}

// KNearest returns up to k candidates sorted ascending by distance from
// origin. The sort is stable, so equal distances keep the caller's order.
// The input slice is not modified.
func KNearest(origin Vec2, candidates []Candidate, k int) []Candidate {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i := range out {
		out[i].Distance = origin.Distance(out[i].Pos)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if len(out) > k {
		out = out[:k]
	}
	return out
}

const (
	pullFalloffFloor = 0.1  // normalized distance below which falloff stops growing
	pullFalloffCap   = 10.0 // maximum falloff multiplier near the center
	pullScale        = 0.1
)

// PullVector computes the force pulling a point toward center. Strength
// rises toward the center with an inverse falloff capped to avoid a
// singularity; points outside pullRadius receive zero pull.
func PullVector(center, p Vec2, pullRadius, strength float64) Vec2 {
	dist := center.Distance(p)
	if dist > pullRadius || dist <= 0.01 {
		return Vec2{}
	}
	dir := center.Sub(p).Normalize()
	normalized := dist / pullRadius
	falloff := math.Min(1.0/math.Max(normalized, pullFalloffFloor), pullFalloffCap)
	return dir.Scale(strength * falloff * pullScale)
}
