// internal/component/projectile.go
package component

import "go-survivors/internal/types"

// Projectile flies in a straight line until it hits an enemy or its
// lifetime expires.
type Projectile struct {
	Damage   float64
	Element  types.Element
	Source   types.EntityID
	Lifetime Timer

	// CollisionRadius is the hit distance against enemy centers.
	CollisionRadius float64

	// Burn parameters applied to the victim on hit. BurnRatio of zero means
	// no burn.
	BurnRatio    float64
	BurnDuration float64
	BurnInterval float64
}
