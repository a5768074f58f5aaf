package component

import (
	"math"
	"testing"

	"go-survivors/internal/types"
)

func TestSpellDamageScalesWithLevel(t *testing.T) {
	s := NewSpell("SPELL_FIREBALL", types.ElementFire, 1.0, 10.0)

	if got := s.Damage(); got != 12.5 {
		t.Errorf("level 1 damage = %v, want 12.5", got)
	}
	s.Level = 4
	if got := s.Damage(); got != 50.0 {
		t.Errorf("level 4 damage = %v, want 50", got)
	}
	s.Level = 10
	if got := s.Damage(); got != 125.0 {
		t.Errorf("level 10 damage = %v, want 125", got)
	}
}

func TestSpellEffectiveFireRate(t *testing.T) {
	s := NewSpell("SPELL_FIREBALL", types.ElementFire, 2.0, 10.0)

	if got := s.EffectiveFireRate(); got != 2.0 {
		t.Errorf("level 1 fire rate = %v, want 2.0", got)
	}
	s.Level = 10
	if got := s.EffectiveFireRate(); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("level 10 fire rate = %v, want 1.0", got)
	}
	// Monotonically decreasing across the whole range.
	prev := math.Inf(1)
	for level := 1; level <= MaxSpellLevel; level++ {
		s.Level = level
		rate := s.EffectiveFireRate()
		if rate >= prev {
			t.Errorf("fire rate not decreasing at level %d: %v >= %v", level, rate, prev)
		}
		prev = rate
	}
}

func TestSpellProjectileCount(t *testing.T) {
	s := NewSpell("SPELL_FIREBALL", types.ElementFire, 1.0, 10.0)
	cases := []struct {
		level int
		want  int
	}{
		{1, 1}, {4, 1}, {5, 2}, {9, 2}, {10, 3},
	}
	for _, c := range cases {
		s.Level = c.level
		if got := s.ProjectileCount(); got != c.want {
			t.Errorf("level %d projectile count = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestSpellLevelUpCapped(t *testing.T) {
	s := NewSpell("SPELL_FIREBALL", types.ElementFire, 1.0, 10.0)
	for i := 0; i < 20; i++ {
		s.LevelUp()
	}
	if s.Level != MaxSpellLevel {
		t.Errorf("level = %d, want cap %d", s.Level, MaxSpellLevel)
	}
}

func TestSpellReady(t *testing.T) {
	s := NewSpell("SPELL_FIREBALL", types.ElementFire, 1.0, 10.0)
	if !s.Ready(0) {
		t.Error("fresh spell should be ready at time 0")
	}
	s.LastFired = 5.0
	if s.Ready(5.5) {
		t.Error("spell should still be cooling down at 5.5")
	}
	if !s.Ready(6.0) {
		t.Error("spell should be ready at 6.0")
	}
}
