// internal/component/combat.go
package component

// Health belongs to anything that can take damage. Current is clamped to
// [0, Max] on every mutation; only combat resolution mutates it.
type Health struct {
	Current float64
	Max     float64
}

// NewHealth creates a health pool at full.
func NewHealth(max float64) *Health {
	return &Health{Current: max, Max: max}
}

// TakeDamage reduces current health, clamped at zero.
func (h *Health) TakeDamage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal restores health, clamped at max.
func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

// Percentage returns current health as a fraction of max, 0 when max is 0.
func (h *Health) Percentage() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Invincibility is the player's hurt cooldown: while its timer runs, enemy
// contact produces no new damage.
type Invincibility struct {
	Duration Timer
}

func NewInvincibility(seconds float64) *Invincibility {
	return &Invincibility{Duration: NewTimer(seconds)}
}
