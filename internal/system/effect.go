// internal/system/effect.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/utils"
)

// TimedEffectSystem advances every timed effect and runs its per-frame
// action: emitting damage events onto the bus and adding pull forces to
// enemy velocities. Expiry removal belongs to EffectCleanupSystem, a
// separate pass, so acting and despawning never race within one frame.
type TimedEffectSystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
	rng *utils.PRNGService
}

func NewTimedEffectSystem(ecs *entity.ECS, bus *event.DamageBus, rng *utils.PRNGService) *TimedEffectSystem {
	return &TimedEffectSystem{ecs: ecs, bus: bus, rng: rng}
}

func (s *TimedEffectSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.TimedEffects) {
		effect := s.ecs.TimedEffects[id]
		if effect.FollowOwner {
			if ownerPos, ok := s.ecs.Positions[effect.Owner]; ok {
				effect.Center = geom.Vec2{X: ownerPos.X, Y: ownerPos.Y}
				if pos, ok := s.ecs.Positions[id]; ok {
					pos.X, pos.Y = effect.Center.X, effect.Center.Y
				}
			}
		}

		effect.Tick(deltaTime)

		switch effect.Behavior {
		case component.BehaviorCircleDamage:
			s.actCircle(effect)
		case component.BehaviorRingDamage:
			s.actRing(effect)
		case component.BehaviorPullField:
			s.actPull(effect)
		case component.BehaviorExpandingWave:
			s.actWave(effect, deltaTime)
		case component.BehaviorDelayedStrike:
			s.actDelayedStrike(effect)
		}
	}
}

func (s *TimedEffectSystem) actCircle(effect *component.TimedEffect) {
	if !effect.ShouldAct() {
		return
	}
	for _, c := range enemyCandidates(s.ecs) {
		if geom.InCircle(effect.Center, c.Pos, effect.Radius) {
			s.bus.Push(event.NewDamage(c.ID, s.effectDamage(effect), effect.Element).WithSource(effect.Source))
		}
	}
}

func (s *TimedEffectSystem) actRing(effect *component.TimedEffect) {
	now := s.ecs.GameTime
	for _, c := range enemyCandidates(s.ecs) {
		if !geom.InRing(effect.Center, c.Pos, effect.InnerRadius, effect.Radius) {
			continue
		}
		if !effect.CanHit(c.ID, now) {
			continue
		}
		effect.MarkHit(c.ID, now)
		s.bus.Push(event.NewDamage(c.ID, effect.Damage, effect.Element).WithSource(effect.Source))
	}
}

func (s *TimedEffectSystem) actPull(effect *component.TimedEffect) {
	damageTick := effect.ShouldAct()
	for _, c := range enemyCandidates(s.ecs) {
		pull := geom.PullVector(effect.Center, c.Pos, effect.PullRadius, effect.PullStrength)
		if pull.Length() > 0 {
			// Compose with steering: always add, never overwrite.
			if vel, ok := s.ecs.Velocities[c.ID]; ok {
				vel.X += pull.X
				vel.Y += pull.Y
			}
		}
		if damageTick && geom.InCircle(effect.Center, c.Pos, effect.Radius) {
			s.bus.Push(event.NewDamage(c.ID, effect.Damage, effect.Element).WithSource(effect.Source))
		}
	}
}

func (s *TimedEffectSystem) actWave(effect *component.TimedEffect, deltaTime float64) {
	effect.CurrentRadius += effect.ExpansionRate * deltaTime
	if effect.CurrentRadius > effect.Radius {
		effect.CurrentRadius = effect.Radius
	}
	for _, c := range enemyCandidates(s.ecs) {
		if effect.AlreadyHit(c.ID) {
			continue
		}
		if geom.InCircle(effect.Center, c.Pos, effect.CurrentRadius) {
			effect.MarkHitOnce(c.ID)
			s.bus.Push(event.NewDamage(c.ID, effect.Damage, effect.Element).WithSource(effect.Source))
		}
	}
}

func (s *TimedEffectSystem) actDelayedStrike(effect *component.TimedEffect) {
	if !effect.Lifetime.JustFinished() {
		return
	}
	for _, c := range enemyCandidates(s.ecs) {
		if geom.InCircle(effect.Center, c.Pos, effect.Radius) {
			s.bus.Push(event.NewDamage(c.ID, effect.Damage, effect.Element).WithSource(effect.Source))
		}
	}
}

// effectDamage applies the randomized multiplier range when configured.
func (s *TimedEffectSystem) effectDamage(effect *component.TimedEffect) float64 {
	if effect.MaxDamageMult > 0 {
		return effect.Damage * s.rng.Range(effect.MinDamageMult, effect.MaxDamageMult)
	}
	return effect.Damage
}

// EffectCleanupSystem despawns timed effects whose lifetime has fired. It
// runs after resolution so nothing still references the entity this frame.
type EffectCleanupSystem struct {
	ecs *entity.ECS
}

func NewEffectCleanupSystem(ecs *entity.ECS) *EffectCleanupSystem {
	return &EffectCleanupSystem{ecs: ecs}
}

func (s *EffectCleanupSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.TimedEffects {
		if effect.Expired() {
			s.ecs.RemoveEntity(id)
		}
	}
}
