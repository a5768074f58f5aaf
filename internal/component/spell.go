// internal/component/spell.go
package component

import "go-survivors/internal/types"

// Spell is an equipped spell or weapon slot. Damage and cooldown both derive
// from Level; LastFired is compared against game time, never accumulated, so
// cooldowns cannot drift.
type Spell struct {
	DefID      string
	Element    types.Element
	Level      int     // 1..MaxSpellLevel
	FireRate   float64 // seconds between casts at level 1
	BaseDamage float64
	LastFired  float64 // game-time timestamp of the last cast
}

// MaxSpellLevel is the cap past which LevelUp is a no-op.
const MaxSpellLevel = 10

// NewSpell creates a level-1 spell from its definition values.
func NewSpell(defID string, element types.Element, fireRate, baseDamage float64) *Spell {
	return &Spell{
		DefID:      defID,
		Element:    element,
		Level:      1,
		FireRate:   fireRate,
		BaseDamage: baseDamage,
	}
}

// Damage scales linearly with level: base * level * 1.25.
func (s *Spell) Damage() float64 {
	return s.BaseDamage * float64(s.Level) * 1.25
}

// EffectiveFireRate interpolates the cast interval from 100% of FireRate at
// level 1 down to 50% at level 10.
func (s *Spell) EffectiveFireRate() float64 {
	scale := 1.0 - float64(s.Level-1)*0.5/9.0
	return s.FireRate * scale
}

// ProjectileCount steps up with level for multi-projectile spells:
// 1 at levels 1-4, 2 at 5-9, 3 at 10.
func (s *Spell) ProjectileCount() int {
	return 1 + s.Level/5
}

// Ready reports whether the cooldown has elapsed at the given game time.
func (s *Spell) Ready(now float64) bool {
	return now-s.LastFired >= s.EffectiveFireRate()
}

// LevelUp raises the spell level by one, capped at MaxSpellLevel.
func (s *Spell) LevelUp() {
	if s.Level < MaxSpellLevel {
		s.Level++
	}
}
