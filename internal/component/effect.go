// internal/component/effect.go
package component

import (
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// EffectBehavior selects the targeting and action strategy of a TimedEffect.
type EffectBehavior int

const (
	// BehaviorCircleDamage damages every enemy inside Radius on each tick.
	BehaviorCircleDamage EffectBehavior = iota
	// BehaviorRingDamage damages enemies touching the annulus
	// [InnerRadius, Radius], with a per-enemy hit cooldown.
	BehaviorRingDamage
	// BehaviorPullField pulls enemies inside PullRadius toward the center
	// and damages those inside Radius on each tick.
	BehaviorPullField
	// BehaviorExpandingWave grows CurrentRadius at ExpansionRate and damages
	// each enemy at most once as the ring front passes over it.
	BehaviorExpandingWave
	// BehaviorDelayedStrike waits out its lifetime, then damages the circle
	// once on expiry.
	BehaviorDelayedStrike
)

// TimedEffect is the generic shape behind the area spells: a center, a
// lifetime, an optional repeating tick, and strategy-specific parameters.
// Effects tick, emit damage events, and are despawned by the cleanup pass
// once the lifetime fires.
type TimedEffect struct {
	Behavior EffectBehavior
	Element  types.Element
	Source   types.EntityID // caster, carried onto damage events

	Center   geom.Vec2
	Radius   float64
	Lifetime Timer

	// Repeating tick for behaviors that act on an interval. Nil for
	// behaviors that act continuously or once.
	TickTimer *Timer

	Damage float64

	// Randomized damage range (entropy field). Both zero means fixed damage.
	MinDamageMult float64
	MaxDamageMult float64

	// Ring parameters.
	InnerRadius float64
	HitCooldown float64 // seconds before the same enemy can be hit again

	// Pull field parameters.
	PullRadius   float64
	PullStrength float64

	// Expanding wave parameters.
	ExpansionRate float64
	CurrentRadius float64

	// FollowOwner recenters the effect on its owner every frame (auras).
	FollowOwner bool
	Owner       types.EntityID

	// Per-enemy bookkeeping: next-allowed-hit time for rings, hit-once set
	// for waves. Lazily allocated.
	NextHit map[types.EntityID]float64
	HitOnce map[types.EntityID]bool
}

// Expired reports whether the lifetime has run out.
func (e *TimedEffect) Expired() bool {
	return e.Lifetime.Finished()
}

// Tick advances the effect's timers by delta seconds.
func (e *TimedEffect) Tick(delta float64) {
	e.Lifetime.Tick(delta)
	if e.TickTimer != nil {
		e.TickTimer.Tick(delta)
	}
}

// ShouldAct reports whether the repeating tick completed this frame.
func (e *TimedEffect) ShouldAct() bool {
	return e.TickTimer != nil && e.TickTimer.JustFinished()
}

// MarkHit records a ring hit so the enemy is immune until now+HitCooldown.
func (e *TimedEffect) MarkHit(id types.EntityID, now float64) {
	if e.NextHit == nil {
		e.NextHit = make(map[types.EntityID]float64)
	}
	e.NextHit[id] = now + e.HitCooldown
}

// CanHit reports whether the per-enemy hit cooldown has elapsed.
func (e *TimedEffect) CanHit(id types.EntityID, now float64) bool {
	if e.NextHit == nil {
		return true
	}
	return now >= e.NextHit[id]
}

// MarkHitOnce records that the wave front already passed over the enemy.
func (e *TimedEffect) MarkHitOnce(id types.EntityID) {
	if e.HitOnce == nil {
		e.HitOnce = make(map[types.EntityID]bool)
	}
	e.HitOnce[id] = true
}

// AlreadyHit reports whether a hit-once effect has hit the enemy before.
func (e *TimedEffect) AlreadyHit(id types.EntityID) bool {
	return e.HitOnce[id]
}
