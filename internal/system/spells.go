// internal/system/spells.go
//
// The concrete effect catalogue. Every spell is a thin instantiation of the
// generic TimedEffect shape (or a projectile / tether / dominate component)
// with its constants from the config package.
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

func newTickTimer(interval float64) *component.Timer {
	t := component.NewRepeatingTimer(interval)
	return &t
}

// SpawnEntropyField creates a chaos zone dealing randomized damage each tick.
func SpawnEntropyField(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, damage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:      component.BehaviorCircleDamage,
		Element:       types.ElementChaos,
		Source:        caster,
		Center:        center,
		Radius:        config.EntropyFieldRadius,
		Lifetime:      component.NewTimer(config.EntropyFieldDuration),
		TickTimer:     newTickTimer(config.EntropyFieldTickInterval),
		Damage:        damage,
		MinDamageMult: config.EntropyFieldMinDamageMult,
		MaxDamageMult: config.EntropyFieldMaxDamageMult,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindChaosZone, types.ElementChaos, config.EntropyFieldRadius))
	}
	return id
}

// SpawnBlightZone creates a poison zone ticking a fraction of spell damage.
func SpawnBlightZone(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, spellDamage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:  component.BehaviorCircleDamage,
		Element:   types.ElementPoison,
		Source:    caster,
		Center:    center,
		Radius:    config.BlightZoneRadius,
		Lifetime:  component.NewTimer(config.BlightZoneDuration),
		TickTimer: newTickTimer(config.BlightZoneTickInterval),
		Damage:    spellDamage * config.BlightZoneTickDamageRatio,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindCircleZone, types.ElementPoison, config.BlightZoneRadius))
	}
	return id
}

// SpawnWarpRift creates a pull field with an inner damage circle.
func SpawnWarpRift(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, damage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:     component.BehaviorPullField,
		Element:      types.ElementChaos,
		Source:       caster,
		Center:       center,
		Radius:       config.WarpRiftDamageRadius,
		PullRadius:   config.WarpRiftPullRadius,
		PullStrength: config.WarpRiftPullStrength,
		Lifetime:     component.NewTimer(config.WarpRiftDuration),
		TickTimer:    newTickTimer(config.WarpRiftTickInterval),
		Damage:       damage,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindPullField, types.ElementChaos, config.WarpRiftPullRadius))
	}
	return id
}

// SpawnRadiance creates a pulsing aura that follows the caster.
func SpawnRadiance(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, damage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:    component.BehaviorCircleDamage,
		Element:     types.ElementLight,
		Source:      caster,
		Center:      center,
		Radius:      config.RadiancePulseRadius,
		Lifetime:    component.NewTimer(config.RadianceDuration),
		TickTimer:   newTickTimer(config.RadiancePulseInterval),
		Damage:      damage,
		FollowOwner: true,
		Owner:       caster,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindAura, types.ElementLight, config.RadiancePulseRadius))
	}
	return id
}

// SpawnHaloShield creates a damaging ring around the caster with a per-enemy
// hit cooldown.
func SpawnHaloShield(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, damage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:    component.BehaviorRingDamage,
		Element:     types.ElementLight,
		Source:      caster,
		Center:      center,
		InnerRadius: config.HaloShieldRadius - config.HaloShieldRingThickness/2,
		Radius:      config.HaloShieldRadius + config.HaloShieldRingThickness/2,
		HitCooldown: config.HaloShieldHitCooldown,
		Lifetime:    component.NewTimer(config.HaloShieldDuration),
		Damage:      damage,
		FollowOwner: true,
		Owner:       caster,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindRing, types.ElementLight, config.HaloShieldRadius))
	}
	return id
}

// SpawnInfernoPulse creates an expanding wave that hits each enemy once.
func SpawnInfernoPulse(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, damage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	lifetime := config.InfernoPulseMaxRadius / config.InfernoPulseExpansionRate
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:      component.BehaviorExpandingWave,
		Element:       types.ElementFire,
		Source:        caster,
		Center:        center,
		Radius:        config.InfernoPulseMaxRadius,
		ExpansionRate: config.InfernoPulseExpansionRate,
		Lifetime:      component.NewTimer(lifetime),
		Damage:        damage,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindWave, types.ElementFire, config.InfernoPulseMaxRadius))
	}
	return id
}

// SpawnThunderStrike creates a strike that lands after a short delay.
func SpawnThunderStrike(ecs *entity.ECS, caster types.EntityID, center geom.Vec2, damage float64, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior: component.BehaviorDelayedStrike,
		Element:  types.ElementLightning,
		Source:   caster,
		Center:   center,
		Radius:   config.ThunderStrikeRadius,
		Lifetime: component.NewTimer(config.ThunderStrikeDelay),
		Damage:   damage,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindDelayedStrike, types.ElementLightning, config.ThunderStrikeRadius))
	}
	return id
}

// SpawnGrimTether links up to GrimTetherMaxLinks enemies near the target
// point so that damage against one is shared with the rest. Returns zero
// when fewer than two enemies are in link range.
func SpawnGrimTether(ecs *entity.ECS, ids *types.IDGenerator, center geom.Vec2, vis Visuals) types.EntityID {
	candidates := enemyCandidates(ecs)
	nearest := geom.KNearest(center, candidates, config.GrimTetherMaxLinks)

	members := make([]types.EntityID, 0, len(nearest))
	for _, c := range nearest {
		if c.Distance <= config.GrimTetherLinkRange {
			members = append(members, c.ID)
		}
	}
	if len(members) < 2 {
		return 0
	}

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.Tethers[id] = component.NewTether(ids.Next(), members, config.GrimTetherSharePercentage, config.GrimTetherDuration)
	for _, m := range members {
		ecs.TetheredEnemies[m] = &component.TetheredEnemy{TetherEntity: id}
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindTether, types.ElementDark, config.GrimTetherLinkRange))
	}
	return id
}

// SpawnDominate takes over the nearest enemy within range. Returns zero when
// no enemy is close enough.
func SpawnDominate(ecs *entity.ECS, origin geom.Vec2) types.EntityID {
	candidates := enemyCandidates(ecs)
	nearest := geom.KNearest(origin, candidates, 1)
	if len(nearest) == 0 || nearest[0].Distance > config.DominateRange {
		return 0
	}
	target := nearest[0].ID
	if _, already := ecs.Dominated[target]; already {
		return 0
	}
	ecs.Dominated[target] = component.NewDominated(
		config.DominateDuration,
		config.DominateAttackInterval,
		config.DominateAllyDamage,
		config.DominateRange,
	)
	return target
}

// SpawnFireball launches one projectile toward the target. Fire projectiles
// apply a burn on hit; other elements hit clean.
func SpawnFireball(ecs *entity.ECS, caster types.EntityID, origin, target geom.Vec2, damage float64, element types.Element, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	dir := target.Sub(origin).Normalize()
	ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	ecs.Velocities[id] = &component.Velocity{
		X: dir.X * config.FireballSpeed,
		Y: dir.Y * config.FireballSpeed,
	}
	proj := &component.Projectile{
		Damage:          damage,
		Element:         element,
		Source:          caster,
		Lifetime:        component.NewTimer(config.FireballLifetime),
		CollisionRadius: config.FireballCollisionRadius,
	}
	if element == types.ElementFire {
		proj.BurnRatio = config.BurnDamageRatio
		proj.BurnDuration = config.BurnTotalDuration
		proj.BurnInterval = config.BurnTickInterval
	}
	ecs.Projectiles[id] = proj
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Projectile(element))
	}
	return id
}

// SpawnRocket launches a homing rocket from origin headed toward target.
// The rocket sits through its launch pause before it acquires a lock, so
// target only seeds the initial heading.
func SpawnRocket(ecs *entity.ECS, caster types.EntityID, origin, target geom.Vec2, damage float64, element types.Element, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Rockets[id] = component.NewRocket(
		caster,
		target.Sub(origin),
		damage,
		element,
		config.RocketHomingSpeed,
		config.RocketHomingStrength,
		config.RocketPauseDuration,
		config.RocketLifetime,
	)
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Projectile(element))
	}
	return id
}

// spawnExplosion creates the detonation of a rocket: an expanding wave that
// damages each enemy once as the blast front passes over it.
func spawnExplosion(ecs *entity.ECS, source types.EntityID, center geom.Vec2, damage float64, element types.Element, vis Visuals) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: center.X, Y: center.Y}
	ecs.TimedEffects[id] = &component.TimedEffect{
		Behavior:      component.BehaviorExpandingWave,
		Element:       element,
		Source:        source,
		Center:        center,
		Radius:        config.RocketExplosionRadius,
		Lifetime:      component.NewTimer(config.RocketExplosionDuration),
		Damage:        damage,
		ExpansionRate: config.RocketExplosionExpansion,
	}
	if vis != nil {
		attachVisual(ecs.Renderables, id, vis.Effect(defs.KindWave, element, config.RocketExplosionRadius))
	}
	return id
}

// CastRadiantBeam damages every enemy along a line from origin toward
// target, immediately. No entity is spawned for the hit itself.
func CastRadiantBeam(ecs *entity.ECS, bus *event.DamageBus, caster types.EntityID, origin, target geom.Vec2, damage float64) int {
	dir := target.Sub(origin).Normalize()
	if dir.Length() == 0 {
		return 0
	}
	hits := 0
	for _, c := range enemyCandidates(ecs) {
		rel := c.Pos.Sub(origin)
		along := rel.X*dir.X + rel.Y*dir.Y
		if along < 0 || along > config.RadiantBeamLength {
			continue
		}
		// Perpendicular distance from the beam line.
		closest := origin.Add(dir.Scale(along))
		if closest.Distance(c.Pos) <= config.RadiantBeamCollisionRadius {
			bus.Push(event.NewDamage(c.ID, damage, types.ElementLight).WithSource(caster))
			hits++
		}
	}
	return hits
}

// spreadDirections fans out count directions around the base angle, spaced
// by the configured spread.
func spreadDirections(base geom.Vec2, count int, spreadDeg float64) []geom.Vec2 {
	if count <= 1 {
		return []geom.Vec2{base}
	}
	baseAngle := base.Angle()
	step := spreadDeg * math.Pi / 180.0
	start := baseAngle - step*float64(count-1)/2
	out := make([]geom.Vec2, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, geom.FromAngle(start+step*float64(i)))
	}
	return out
}

// enemyCandidates snapshots enemy positions for targeting queries, in
// ascending ID order so downstream RNG draws and distance ties resolve the
// same way every run.
func enemyCandidates(ecs *entity.ECS) []geom.Candidate {
	out := make([]geom.Candidate, 0, len(ecs.Enemies))
	for _, id := range sortedIDs(ecs.Enemies) {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		out = append(out, geom.Candidate{ID: id, Pos: geom.Vec2{X: pos.X, Y: pos.Y}})
	}
	return out
}
