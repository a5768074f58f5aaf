// internal/component/loot.go
package component

// HealthPack restores health to the player who picks it up. Packs drift
// toward the player inside the pickup radius, the same as experience orbs.
type HealthPack struct {
	Heal float64
}

// PowerUpKind names one power-up effect.
type PowerUpKind string

const (
	PowerUpMaxHealth    PowerUpKind = "MAX_HEALTH"    // permanent max health bonus
	PowerUpHealthRegen  PowerUpKind = "HEALTH_REGEN"  // permanent regeneration bonus
	PowerUpFireRate     PowerUpKind = "FIRE_RATE"     // temporary: halves cast intervals
	PowerUpPickupRadius PowerUpKind = "PICKUP_RADIUS" // permanent pickup range bonus
	PowerUpMoveSpeed    PowerUpKind = "MOVE_SPEED"    // temporary movement speed bonus
)

// AllPowerUpKinds lists every kind, in the order drops roll from.
func AllPowerUpKinds() []PowerUpKind {
	return []PowerUpKind{
		PowerUpMaxHealth, PowerUpHealthRegen, PowerUpFireRate,
		PowerUpPickupRadius, PowerUpMoveSpeed,
	}
}

// Permanent reports whether the kind stays active for the rest of the run.
func (k PowerUpKind) Permanent() bool {
	return k != PowerUpFireRate && k != PowerUpMoveSpeed
}

// Duration returns the active window for temporary kinds, zero otherwise.
func (k PowerUpKind) Duration() float64 {
	if k.Permanent() {
		return 0
	}
	return PowerUpTempDuration
}

// PowerUpTempDuration is how long temporary power-ups stay active. Picking
// the same kind up again restarts the window.
const PowerUpTempDuration = 20.0

// PowerUpStackBonus is the per-stack multiplier bonus for stacking kinds.
const PowerUpStackBonus = 0.25

// PowerUpItem is a dropped power-up waiting to be collected.
type PowerUpItem struct {
	Kind PowerUpKind
}

// Boosts tracks the player's collected power-ups: a stack count per kind and
// a shared expiry window per temporary kind. Permanent kinds stack without
// limit; temporary kinds stack too, but one timer covers the whole kind and
// expiry clears every stack of it at once.
type Boosts struct {
	Stacks map[PowerUpKind]int
	Timers map[PowerUpKind]float64 // remaining seconds, temporary kinds only
}

func NewBoosts() *Boosts {
	return &Boosts{
		Stacks: make(map[PowerUpKind]int),
		Timers: make(map[PowerUpKind]float64),
	}
}

// Add records a picked-up power-up. Temporary kinds restart their window.
func (b *Boosts) Add(kind PowerUpKind) {
	b.Stacks[kind]++
	if !kind.Permanent() {
		b.Timers[kind] = kind.Duration()
	}
}

// StackCount returns the active stacks of a kind.
func (b *Boosts) StackCount(kind PowerUpKind) int {
	return b.Stacks[kind]
}

// Multiplier returns 1 plus the per-stack bonus for each active stack.
func (b *Boosts) Multiplier(kind PowerUpKind) float64 {
	return 1.0 + PowerUpStackBonus*float64(b.Stacks[kind])
}

// Tick advances the temporary windows, clearing a kind's stacks on expiry.
func (b *Boosts) Tick(delta float64) {
	for kind, remaining := range b.Timers {
		remaining -= delta
		if remaining <= 0 {
			delete(b.Timers, kind)
			delete(b.Stacks, kind)
			continue
		}
		b.Timers[kind] = remaining
	}
}
