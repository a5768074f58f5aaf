// internal/system/projectile.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// ProjectileSystem moves projectiles, expires them, and turns collisions
// into damage events. A fire projectile also applies a burn to its victim;
// reapplication replaces the previous burn outright.
type ProjectileSystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
}

func NewProjectileSystem(ecs *entity.ECS, bus *event.DamageBus) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, bus: bus}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.ecs.RemoveEntity(id)
			continue
		}

		proj.Lifetime.Tick(deltaTime)
		if proj.Lifetime.Finished() {
			s.ecs.RemoveEntity(id)
			continue
		}

		// MovementSystem already integrated the velocity this frame.
		p := geom.Vec2{X: pos.X, Y: pos.Y}
		for _, enemyID := range sortedIDs(s.ecs.Enemies) {
			enemyPos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			hitRange := proj.CollisionRadius + s.ecs.Enemies[enemyID].Radius
			if geom.InCircle(geom.Vec2{X: enemyPos.X, Y: enemyPos.Y}, p, hitRange) {
				s.hit(id, proj, enemyID)
				break
			}
		}
	}
}

func (s *ProjectileSystem) hit(projID types.EntityID, proj *component.Projectile, enemyID types.EntityID) {
	s.bus.Push(event.NewDamage(enemyID, proj.Damage, proj.Element).WithSource(proj.Source))

	if proj.BurnRatio > 0 {
		burn := component.NewBurning(proj.BurnDuration, proj.BurnInterval, proj.Damage*proj.BurnRatio)
		burn.Source = proj.Source
		s.ecs.Burning[enemyID] = burn
	}

	s.ecs.RemoveEntity(projID)
}
