// internal/system/rocket.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// RocketSystem drives homing rockets through their phases: hold still
// through the launch pause, lock onto the nearest enemy, steer toward the
// locked position, and detonate into an expanding explosion on arrival.
// Rockets that never find a lock detonate where they are when the lifetime
// runs out.
type RocketSystem struct {
	ecs *entity.ECS
	vis Visuals
}

func NewRocketSystem(ecs *entity.ECS, vis Visuals) *RocketSystem {
	return &RocketSystem{ecs: ecs, vis: vis}
}

func (s *RocketSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Rockets) {
		rocket := s.ecs.Rockets[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}
		p := geom.Vec2{X: pos.X, Y: pos.Y}

		rocket.Lifetime.Tick(deltaTime)
		if rocket.Lifetime.Finished() {
			s.detonate(id, rocket, p)
			continue
		}

		switch rocket.State {
		case component.RocketPausing:
			rocket.PauseTimer.Tick(deltaTime)
			if rocket.PauseTimer.Finished() {
				rocket.State = component.RocketTargeting
			}

		case component.RocketTargeting:
			nearest := geom.KNearest(p, enemyCandidates(s.ecs), 1)
			if len(nearest) == 0 {
				break
			}
			rocket.Target = nearest[0].Pos
			rocket.HasTarget = true
			rocket.Direction = rocket.Target.Sub(p).Normalize()
			rocket.State = component.RocketHoming

		case component.RocketHoming:
			if rocket.Target.Distance(p) < config.RocketExplodeDistance {
				s.detonate(id, rocket, p)
				continue
			}
			desired := rocket.Target.Sub(p).Normalize()
			rocket.Direction = rocket.Direction.Add(desired.Scale(rocket.HomingStrength * deltaTime)).Normalize()
		}

		if vel, ok := s.ecs.Velocities[id]; ok {
			// Only a homing rocket moves; paused and targeting ones hover.
			if rocket.State == component.RocketHoming {
				vel.X = rocket.Direction.X * rocket.Speed
				vel.Y = rocket.Direction.Y * rocket.Speed
			} else {
				vel.X, vel.Y = 0, 0
			}
		}
	}
}

func (s *RocketSystem) detonate(id types.EntityID, rocket *component.Rocket, at geom.Vec2) {
	spawnExplosion(s.ecs, rocket.Source, at, rocket.Damage, rocket.Element, s.vis)
	s.ecs.RemoveEntity(id)
}
