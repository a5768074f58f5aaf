// internal/component/movement.go
package component

// Position is an entity's location on the arena plane.
type Position struct {
	X, Y float64
}

// Velocity is integrated into Position each frame. Steering writes the base
// vector; force effects (pull fields) add to it afterwards, never overwrite.
type Velocity struct {
	X, Y float64
}
