// internal/component/player.go
package component

// Player marks the player avatar.
type Player struct {
	Speed float64
}

// Enemy is a hostile entity chasing the player.
type Enemy struct {
	DefID         string
	Speed         float64
	ContactDamage float64
	XPValue       int
	Radius        float64
}
