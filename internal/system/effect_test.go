package system

import (
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

func TestBlightZoneTicksFractionOfSpellDamage(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	inside := addEnemy(ecs, 1, 0, 100)
	outside := addEnemy(ecs, 10, 0, 100)

	SpawnBlightZone(ecs, 0, geom.Vec2{}, 100, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())

	// First tick fires at the tick interval.
	sys.Update(config.BlightZoneTickInterval)
	resolve(ecs, bus)

	want := 100 - 100*config.BlightZoneTickDamageRatio
	if got := ecs.Healths[inside].Current; got != want {
		t.Errorf("inside enemy health = %v, want %v", got, want)
	}
	if got := ecs.Healths[outside].Current; got != 100 {
		t.Errorf("outside enemy health = %v, want untouched", got)
	}
}

func TestEntropyFieldDamageWithinRange(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	enemy := addEnemy(ecs, 1, 0, 1000)

	SpawnEntropyField(ecs, 0, geom.Vec2{}, 10, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())
	sys.Update(config.EntropyFieldTickInterval)

	pending := bus.Pending()
	if len(pending) != 1 {
		t.Fatalf("events = %d, want 1", len(pending))
	}
	got := pending[0].Amount
	min := 10 * config.EntropyFieldMinDamageMult
	max := 10 * config.EntropyFieldMaxDamageMult
	if got < min || got > max {
		t.Errorf("entropy damage = %v, want within [%v, %v]", got, min, max)
	}
	_ = enemy
}

func TestInfernoPulseHitsEachEnemyOnce(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	enemy := addEnemy(ecs, 1, 0, 100)

	SpawnInfernoPulse(ecs, 0, geom.Vec2{}, 10, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())

	// Several frames while the wave covers the enemy.
	for i := 0; i < 10; i++ {
		sys.Update(0.05)
	}
	resolve(ecs, bus)

	if got := ecs.Healths[enemy].Current; got != 90 {
		t.Errorf("health = %v, want 90 (hit exactly once)", got)
	}
}

func TestInfernoPulseReachesEnemyAsItExpands(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	far := addEnemy(ecs, 5, 0, 100)

	SpawnInfernoPulse(ecs, 0, geom.Vec2{}, 10, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())

	// After 0.1s the front is at 2.0 world units: too short.
	sys.Update(0.1)
	if bus.Len() != 0 {
		t.Fatalf("wave hit at radius 2, enemy at 5: %d events", bus.Len())
	}
	// After another 0.2s the front is at 6.0: covered.
	sys.Update(0.2)
	if bus.Len() != 1 {
		t.Errorf("events = %d, want 1 once the front passes", bus.Len())
	}
	_ = far
}

func TestHaloShieldPerEnemyHitCooldown(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	onRing := addEnemy(ecs, config.HaloShieldRadius, 0, 1000)
	center := addEnemy(ecs, 0, 0, 1000)

	player := addPlayer(ecs, 0, 0, 100)
	SpawnHaloShield(ecs, player, geom.Vec2{}, 10, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())

	sys.Update(0.016)
	ecs.GameTime += 0.016
	sys.Update(0.016) // still inside the hit cooldown
	resolve(ecs, bus)

	if got := ecs.Healths[onRing].Current; got != 990 {
		t.Errorf("ring enemy health = %v, want 990 (one hit within cooldown)", got)
	}
	if got := ecs.Healths[center].Current; got != 1000 {
		t.Errorf("center enemy health = %v, want untouched inside the ring hole", got)
	}

	// Past the cooldown the same enemy is hit again.
	ecs.GameTime += config.HaloShieldHitCooldown
	sys.Update(0.016)
	resolve(ecs, bus)
	if got := ecs.Healths[onRing].Current; got != 980 {
		t.Errorf("ring enemy health = %v, want 980 after cooldown", got)
	}
}

func TestThunderStrikeLandsAfterDelayOnly(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	enemy := addEnemy(ecs, 1, 0, 100)

	SpawnThunderStrike(ecs, 0, geom.Vec2{}, 25, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())

	sys.Update(0.3)
	if bus.Len() != 0 {
		t.Fatal("strike landed before its delay")
	}
	sys.Update(0.3) // crosses the 0.5s delay
	resolve(ecs, bus)
	if got := ecs.Healths[enemy].Current; got != 75 {
		t.Errorf("health = %v, want 75", got)
	}

	// Expired strike acts no further and is cleaned up.
	sys.Update(0.3)
	if bus.Len() != 0 {
		t.Error("strike must land exactly once")
	}
	NewEffectCleanupSystem(ecs).Update(0)
	if len(ecs.TimedEffects) != 0 {
		t.Error("expired strike should be despawned")
	}
}

func TestWarpRiftPullAddsToVelocity(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	enemy := addEnemy(ecs, 4, 0, 100)
	ecs.Velocities[enemy].X = 1.5 // steering already wrote a base velocity

	SpawnWarpRift(ecs, 0, geom.Vec2{}, 10, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())
	sys.Update(0.016)

	vel := ecs.Velocities[enemy]
	if vel.X >= 1.5 {
		t.Errorf("pull did not compose: vel.X = %v, want < 1.5", vel.X)
	}
	// Pull composes instead of overwriting, so the base is still in there.
	pull := geom.PullVector(geom.Vec2{}, geom.Vec2{X: 4}, config.WarpRiftPullRadius, config.WarpRiftPullStrength)
	want := 1.5 + pull.X
	if diff := vel.X - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("vel.X = %v, want base+pull = %v", vel.X, want)
	}
}

func TestWarpRiftDamagesInnerCircleOnTick(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	inner := addEnemy(ecs, 1, 0, 100)
	pulled := addEnemy(ecs, 5, 0, 100) // pulled but outside the damage circle

	SpawnWarpRift(ecs, 0, geom.Vec2{}, 10, nil)
	sys := NewTimedEffectSystem(ecs, bus, testRNG())
	sys.Update(config.WarpRiftTickInterval)
	resolve(ecs, bus)

	if got := ecs.Healths[inner].Current; got != 90 {
		t.Errorf("inner enemy health = %v, want 90", got)
	}
	if got := ecs.Healths[pulled].Current; got != 100 {
		t.Errorf("pulled enemy health = %v, want untouched", got)
	}
}

func TestRadianceFollowsOwner(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	player := addPlayer(ecs, 0, 0, 100)
	effectID := SpawnRadiance(ecs, player, geom.Vec2{}, 10, nil)

	ecs.Positions[player].X = 20
	sys := NewTimedEffectSystem(ecs, bus, testRNG())
	sys.Update(0.016)

	effect := ecs.TimedEffects[effectID]
	if effect.Center.X != 20 {
		t.Errorf("aura center X = %v, want 20 (recentered on owner)", effect.Center.X)
	}
}

func TestEffectDamageCarriesElementAndSource(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	addEnemy(ecs, 1, 0, 100)
	caster := types.EntityID(77)

	SpawnBlightZone(ecs, caster, geom.Vec2{}, 100, nil)
	NewTimedEffectSystem(ecs, bus, testRNG()).Update(config.BlightZoneTickInterval)

	pending := bus.Pending()
	if len(pending) != 1 {
		t.Fatalf("events = %d, want 1", len(pending))
	}
	if pending[0].Element != types.ElementPoison {
		t.Errorf("element = %v, want poison", pending[0].Element)
	}
	if pending[0].Source != caster {
		t.Errorf("source = %v, want caster %v", pending[0].Source, caster)
	}
}

func TestEntropyFieldReproducibleWithFixedSeed(t *testing.T) {
	run := func() []float64 {
		ecs := entity.NewECS()
		bus := event.NewDamageBus()
		var enemies []types.EntityID
		for i := 0; i < 8; i++ {
			enemies = append(enemies, addEnemy(ecs, 0.5+0.1*float64(i), -0.4+0.1*float64(i), 1000))
		}
		SpawnEntropyField(ecs, 0, geom.Vec2{}, 10, nil)
		sys := NewTimedEffectSystem(ecs, bus, utils.NewPRNGService(42))
		sys.Update(config.EntropyFieldTickInterval)
		resolve(ecs, bus)

		healths := make([]float64, len(enemies))
		for i, id := range enemies {
			healths[i] = ecs.Healths[id].Current
		}
		return healths
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("enemy %d health diverged between identically seeded runs: %v vs %v",
				i, first[i], second[i])
		}
	}
}
