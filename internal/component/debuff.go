// internal/component/debuff.go
package component

import "go-survivors/internal/types"

// Corroded makes its carrier take more damage from all sources. Reapplying
// refreshes the duration but never stacks the multiplier.
type Corroded struct {
	Duration         Timer
	DamageMultiplier float64
}

func NewCorroded(durationSecs, multiplier float64) *Corroded {
	return &Corroded{
		Duration:         NewTimer(durationSecs),
		DamageMultiplier: multiplier,
	}
}

// Refresh restarts the duration, keeping the existing multiplier.
func (c *Corroded) Refresh(durationSecs float64) {
	c.Duration = NewTimer(durationSecs)
}

func (c *Corroded) Expired() bool {
	return c.Duration.Finished()
}

// Burning deals fire damage on a repeating tick until its duration runs out.
// Applied by fireball hits; a fresh hit replaces the previous burn.
type Burning struct {
	Duration      Timer
	TickTimer     Timer
	DamagePerTick float64
	Source        types.EntityID // caster, for damage attribution
}

func NewBurning(durationSecs, tickIntervalSecs, damagePerTick float64) *Burning {
	return &Burning{
		Duration:      NewTimer(durationSecs),
		TickTimer:     NewRepeatingTimer(tickIntervalSecs),
		DamagePerTick: damagePerTick,
	}
}

func (b *Burning) Expired() bool {
	return b.Duration.Finished()
}
