package component

import "testing"

func TestPowerUpKindPermanence(t *testing.T) {
	permanent := map[PowerUpKind]bool{
		PowerUpMaxHealth:    true,
		PowerUpHealthRegen:  true,
		PowerUpFireRate:     false,
		PowerUpPickupRadius: true,
		PowerUpMoveSpeed:    false,
	}
	for _, kind := range AllPowerUpKinds() {
		want, ok := permanent[kind]
		if !ok {
			t.Fatalf("unexpected kind %q", kind)
		}
		if kind.Permanent() != want {
			t.Errorf("%s.Permanent() = %v, want %v", kind, kind.Permanent(), want)
		}
		if want && kind.Duration() != 0 {
			t.Errorf("%s is permanent but has duration %v", kind, kind.Duration())
		}
		if !want && kind.Duration() != PowerUpTempDuration {
			t.Errorf("%s duration = %v, want %v", kind, kind.Duration(), PowerUpTempDuration)
		}
	}
}

func TestBoostsStackMultiplier(t *testing.T) {
	b := NewBoosts()
	if got := b.Multiplier(PowerUpMaxHealth); got != 1.0 {
		t.Errorf("empty multiplier = %v, want 1", got)
	}
	b.Add(PowerUpMaxHealth)
	b.Add(PowerUpMaxHealth)
	if got := b.StackCount(PowerUpMaxHealth); got != 2 {
		t.Errorf("stacks = %d, want 2", got)
	}
	if got := b.Multiplier(PowerUpMaxHealth); got != 1.5 {
		t.Errorf("multiplier = %v, want 1.5 at two stacks", got)
	}
}

func TestBoostsTemporaryWindowClearsAllStacks(t *testing.T) {
	b := NewBoosts()
	b.Add(PowerUpMoveSpeed)
	b.Tick(PowerUpTempDuration / 2)
	b.Add(PowerUpMoveSpeed) // restarts the shared window

	b.Tick(PowerUpTempDuration - 1)
	if got := b.StackCount(PowerUpMoveSpeed); got != 2 {
		t.Fatalf("stacks = %d before expiry, want 2", got)
	}

	b.Tick(2)
	if got := b.StackCount(PowerUpMoveSpeed); got != 0 {
		t.Errorf("stacks = %d after expiry, want 0", got)
	}
	if got := b.Multiplier(PowerUpMoveSpeed); got != 1.0 {
		t.Errorf("multiplier = %v after expiry, want 1", got)
	}
}

func TestBoostsPermanentStacksNeverExpire(t *testing.T) {
	b := NewBoosts()
	b.Add(PowerUpPickupRadius)
	b.Tick(10 * PowerUpTempDuration)
	if got := b.StackCount(PowerUpPickupRadius); got != 1 {
		t.Errorf("stacks = %d, want permanent stack to survive", got)
	}
}
