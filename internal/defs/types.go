// internal/defs/types.go
package defs

// SpellKind selects which spawn routine the casting system invokes.
type SpellKind string

const (
	KindProjectile    SpellKind = "PROJECTILE"     // fireball family
	KindBeam          SpellKind = "BEAM"           // instant line hit
	KindDelayedStrike SpellKind = "DELAYED_STRIKE" // thunder strike
	KindCircleZone    SpellKind = "CIRCLE_ZONE"    // blight zone
	KindChaosZone     SpellKind = "CHAOS_ZONE"     // entropy field (randomized ticks)
	KindPullField     SpellKind = "PULL_FIELD"     // warp rift
	KindAura          SpellKind = "AURA"           // radiance (follows the player)
	KindRing          SpellKind = "RING"           // halo shield
	KindWave          SpellKind = "WAVE"           // inferno pulse
	KindTether        SpellKind = "TETHER"         // grim tether
	KindDominate      SpellKind = "DOMINATE"       // psychic takeover
	KindHoming        SpellKind = "HOMING"         // rocket: pause, lock on, detonate
)

// SpellDefinition describes one castable spell. Level-dependent damage and
// cooldown are derived at runtime; the definition holds the level-1 base.
type SpellDefinition struct {
	ID          string    `json:"id" jsonschema:"required"`
	Name        string    `json:"name" jsonschema:"required"`
	Description string    `json:"description,omitempty"`
	Element     string    `json:"element" jsonschema:"required,enum=FIRE,enum=FROST,enum=POISON,enum=LIGHTNING,enum=LIGHT,enum=DARK,enum=CHAOS,enum=PSYCHIC"`
	Kind        SpellKind `json:"kind" jsonschema:"required"`
	FireRate    float64   `json:"fire_rate" jsonschema:"required"`   // seconds between casts at level 1
	BaseDamage  float64   `json:"base_damage" jsonschema:"required"` // damage at level 1 before scaling
}

// EnemyDefinition describes one enemy archetype.
type EnemyDefinition struct {
	ID            string  `json:"id" jsonschema:"required"`
	Name          string  `json:"name" jsonschema:"required"`
	Health        float64 `json:"health" jsonschema:"required"`
	Speed         float64 `json:"speed" jsonschema:"required"`
	Radius        float64 `json:"radius"`
	ContactDamage float64 `json:"contact_damage"`
	XP            int     `json:"xp"`
}
