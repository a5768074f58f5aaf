// internal/component/experience.go
package component

import "math"

// Experience tracks the player's level progression. Thresholds grow
// geometrically; AddXP handles multi-level jumps in one call.
type Experience struct {
	Current int
	Level   int
	TotalXP int

	BaseXP int     // XP required for level 1 -> 2
	Growth float64 // per-level threshold multiplier
}

// NewExperience starts at level 1 with zero XP.
func NewExperience(baseXP int, growth float64) *Experience {
	return &Experience{Level: 1, BaseXP: baseXP, Growth: growth}
}

// Threshold returns the XP needed to advance from the given level,
// ceiling-rounded to an integer.
func (e *Experience) Threshold(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Ceil(float64(e.BaseXP) * math.Pow(e.Growth, float64(level-1))))
}

// AddXP adds experience, advancing levels while the running total covers the
// current threshold. Returns the number of levels gained.
func (e *Experience) AddXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	e.Current += amount
	e.TotalXP += amount
	gained := 0
	for e.Current >= e.Threshold(e.Level) {
		e.Current -= e.Threshold(e.Level)
		e.Level++
		gained++
	}
	return gained
}

// ExperienceOrb is dropped on enemy death and drifts toward the player once
// inside the pickup radius.
type ExperienceOrb struct {
	Value int
}
