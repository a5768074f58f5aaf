// internal/system/dominate.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// DominateSystem drives taken-over enemies: on each attack tick a dominated
// enemy damages the nearest enemy within its attack range. Steering toward
// that enemy lives in SteeringSystem; expiry releases the enemy back to its
// own mind.
type DominateSystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
}

func NewDominateSystem(ecs *entity.ECS, bus *event.DamageBus) *DominateSystem {
	return &DominateSystem{ecs: ecs, bus: bus}
}

func (s *DominateSystem) Update(deltaTime float64) {
	for _, id := range sortedIDs(s.ecs.Dominated) {
		dom := s.ecs.Dominated[id]
		if _, alive := s.ecs.Enemies[id]; !alive {
			delete(s.ecs.Dominated, id)
			continue
		}

		dom.Duration.Tick(deltaTime)
		dom.AttackTimer.Tick(deltaTime)

		if dom.AttackTimer.JustFinished() {
			if victim, ok := s.nearestVictim(id, dom.AttackRange); ok {
				s.bus.Push(event.NewDamage(victim, dom.AttackDamage, types.ElementPsychic).WithSource(id))
			}
		}

		if dom.Expired() {
			delete(s.ecs.Dominated, id)
		}
	}
}

func (s *DominateSystem) nearestVictim(self types.EntityID, attackRange float64) (types.EntityID, bool) {
	selfPos, ok := s.ecs.Positions[self]
	if !ok {
		return 0, false
	}
	origin := geom.Vec2{X: selfPos.X, Y: selfPos.Y}

	candidates := make([]geom.Candidate, 0, len(s.ecs.Enemies))
	for _, id := range sortedIDs(s.ecs.Enemies) {
		if id == self {
			continue
		}
		if pos, ok := s.ecs.Positions[id]; ok {
			candidates = append(candidates, geom.Candidate{ID: id, Pos: geom.Vec2{X: pos.X, Y: pos.Y}})
		}
	}
	nearest := geom.KNearest(origin, candidates, 1)
	if len(nearest) == 0 || nearest[0].Distance > attackRange {
		return 0, false
	}
	return nearest[0].ID, true
}
