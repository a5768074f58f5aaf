// internal/system/casting.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// CastingSystem is the spell scheduler: every equipped spell fires as soon
// as its cooldown clears and a target is available. Targets come from a
// random pick among the nearest enemies so repeated casts spread out instead
// of always hammering the closest one.
type CastingSystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
	rng *utils.PRNGService
	ids *types.IDGenerator
	vis Visuals
}

func NewCastingSystem(ecs *entity.ECS, bus *event.DamageBus, rng *utils.PRNGService, ids *types.IDGenerator, vis Visuals) *CastingSystem {
	return &CastingSystem{ecs: ecs, bus: bus, rng: rng, ids: ids, vis: vis}
}

func (s *CastingSystem) Update(deltaTime float64) {
	origin, casterID, ok := s.casterOrigin()
	if !ok {
		return
	}

	now := s.ecs.GameTime
	rateScale := s.fireRateScale()
	for _, spellID := range sortedIDs(s.ecs.Spells) {
		spell := s.ecs.Spells[spellID]
		if now-spell.LastFired < spell.EffectiveFireRate()*rateScale {
			continue
		}
		def, ok := defs.SpellLibrary[spell.DefID]
		if !ok {
			continue
		}
		if s.cast(def, spell, casterID, origin) {
			spell.LastFired = now
		}
	}
}

// cast fires one spell. Returns false when no valid target exists, in which
// case the cooldown is not consumed.
func (s *CastingSystem) cast(def defs.SpellDefinition, spell *component.Spell, caster types.EntityID, origin geom.Vec2) bool {
	switch def.Kind {
	case defs.KindProjectile:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		base := target.Sub(origin).Normalize()
		dirs := spreadDirections(base, spell.ProjectileCount(), config.FireballSpreadAngle)
		for _, dir := range dirs {
			SpawnFireball(s.ecs, caster, origin, origin.Add(dir), spell.Damage(), spell.Element, s.vis)
		}
		return true

	case defs.KindBeam:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		CastRadiantBeam(s.ecs, s.bus, caster, origin, target, spell.Damage())
		return true

	case defs.KindDelayedStrike:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		SpawnThunderStrike(s.ecs, caster, target, spell.Damage(), s.vis)
		return true

	case defs.KindCircleZone:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		SpawnBlightZone(s.ecs, caster, target, spell.Damage(), s.vis)
		return true

	case defs.KindChaosZone:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		SpawnEntropyField(s.ecs, caster, target, spell.Damage(), s.vis)
		return true

	case defs.KindPullField:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		SpawnWarpRift(s.ecs, caster, target, spell.Damage(), s.vis)
		return true

	case defs.KindAura:
		SpawnRadiance(s.ecs, caster, origin, spell.Damage(), s.vis)
		return true

	case defs.KindRing:
		SpawnHaloShield(s.ecs, caster, origin, spell.Damage(), s.vis)
		return true

	case defs.KindWave:
		SpawnInfernoPulse(s.ecs, caster, origin, spell.Damage(), s.vis)
		return true

	case defs.KindTether:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		return SpawnGrimTether(s.ecs, s.ids, target, s.vis) != 0

	case defs.KindDominate:
		return SpawnDominate(s.ecs, origin) != 0

	case defs.KindHoming:
		target, ok := s.pickTarget(origin)
		if !ok {
			return false
		}
		SpawnRocket(s.ecs, caster, origin, target, spell.Damage(), spell.Element, s.vis)
		return true
	}
	return false
}

// pickTarget chooses uniformly among the nearest TargetPoolSize enemies.
func (s *CastingSystem) pickTarget(origin geom.Vec2) (geom.Vec2, bool) {
	nearest := geom.KNearest(origin, enemyCandidates(s.ecs), config.TargetPoolSize)
	if len(nearest) == 0 {
		return geom.Vec2{}, false
	}
	chosen := nearest[s.rng.Intn(len(nearest))]
	return chosen.Pos, true
}

// fireRateScale halves every cast interval while the caster holds an active
// fire-rate boost.
func (s *CastingSystem) fireRateScale() float64 {
	for id := range s.ecs.Players {
		if boosts, ok := s.ecs.Boosts[id]; ok && boosts.StackCount(component.PowerUpFireRate) > 0 {
			return 0.5
		}
	}
	return 1.0
}

func (s *CastingSystem) casterOrigin() (geom.Vec2, types.EntityID, bool) {
	for id := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return geom.Vec2{X: pos.X, Y: pos.Y}, id, true
		}
	}
	return geom.Vec2{}, 0, false
}
