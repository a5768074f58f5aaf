// internal/component/rocket.go
package component

import (
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// RocketState is the phase a rocket is in. Rockets sit still through the
// launch pause, lock onto the nearest enemy, then steer toward the locked
// position until they detonate.
type RocketState int

const (
	RocketPausing RocketState = iota
	RocketTargeting
	RocketHoming
)

// Rocket is a homing projectile. Unlike Projectile it does not fly a
// straight line: it pauses on launch, acquires a target position, and turns
// toward it with a bounded steering rate. Detonation spawns an expanding
// explosion instead of a single hit.
type Rocket struct {
	State   RocketState
	Damage  float64
	Element types.Element
	Source  types.EntityID

	Speed          float64
	HomingStrength float64 // how quickly the heading turns toward the target
	Direction      geom.Vec2

	Target    geom.Vec2
	HasTarget bool

	PauseTimer Timer
	Lifetime   Timer
}

// NewRocket creates a rocket in the launch pause, headed along dir.
func NewRocket(source types.EntityID, dir geom.Vec2, damage float64, element types.Element, speed, homingStrength, pauseSecs, lifetimeSecs float64) *Rocket {
	return &Rocket{
		State:          RocketPausing,
		Damage:         damage,
		Element:        element,
		Source:         source,
		Speed:          speed,
		HomingStrength: homingStrength,
		Direction:      dir.Normalize(),
		PauseTimer:     NewTimer(pauseSecs),
		Lifetime:       NewTimer(lifetimeSecs),
	}
}
