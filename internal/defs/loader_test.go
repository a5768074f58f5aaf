package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults returned error: %v", err)
	}
	if got := len(SpellLibrary); got != 13 {
		t.Errorf("len(SpellLibrary) = %d, want 13", got)
	}
	if got := len(EnemyLibrary); got != 3 {
		t.Errorf("len(EnemyLibrary) = %d, want 3", got)
	}

	fireball, ok := SpellLibrary["SPELL_FIREBALL"]
	if !ok {
		t.Fatal("SPELL_FIREBALL not in library")
	}
	if fireball.Element != "FIRE" || fireball.Kind != KindProjectile {
		t.Errorf("fireball element/kind = %s/%s, want FIRE/PROJECTILE", fireball.Element, fireball.Kind)
	}
	if fireball.BaseDamage != 10 || fireball.FireRate != 1 {
		t.Errorf("fireball base stats = %v dmg / %v rate, want 10 / 1", fireball.BaseDamage, fireball.FireRate)
	}

	walker, ok := EnemyLibrary["ENEMY_WALKER"]
	if !ok {
		t.Fatal("ENEMY_WALKER not in library")
	}
	if walker.Health != 100 || walker.Speed != 2.2 || walker.XP != 5 {
		t.Errorf("walker stats = %v hp / %v speed / %d xp, want 100 / 2.2 / 5",
			walker.Health, walker.Speed, walker.XP)
	}
}

func TestEverySpellHasASpawnKind(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	known := map[SpellKind]bool{
		KindProjectile: true, KindBeam: true, KindDelayedStrike: true,
		KindCircleZone: true, KindChaosZone: true, KindPullField: true,
		KindAura: true, KindRing: true, KindWave: true,
		KindTether: true, KindDominate: true, KindHoming: true,
	}
	for id, def := range SpellLibrary {
		if !known[def.Kind] {
			t.Errorf("%s: unknown kind %q", id, def.Kind)
		}
	}
}

func TestLoadSpellDefinitionsReplacesLibrary(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "spells.json")
	custom := `[{"id":"SPELL_TEST","name":"Test","element":"FIRE","kind":"PROJECTILE","fire_rate":1,"base_damage":5}]`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadSpellDefinitions(path); err != nil {
		t.Fatalf("LoadSpellDefinitions returned error: %v", err)
	}
	defer LoadDefaults()

	if len(SpellLibrary) != 1 {
		t.Errorf("len(SpellLibrary) = %d, want 1 after replacement", len(SpellLibrary))
	}
	if _, ok := SpellLibrary["SPELL_TEST"]; !ok {
		t.Error("SPELL_TEST not in replaced library")
	}
}

func TestLoadSpellDefinitionsBadFile(t *testing.T) {
	if err := LoadSpellDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSchemasReflect(t *testing.T) {
	if s := SpellSchema(); s.Title != "Spell definitions" {
		t.Errorf("spell schema title = %q", s.Title)
	}
	if s := EnemySchema(); s.Title != "Enemy definitions" {
		t.Errorf("enemy schema title = %q", s.Title)
	}
}
