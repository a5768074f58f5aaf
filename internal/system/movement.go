// internal/system/movement.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// SteeringSystem writes the base velocity each frame: enemies chase the
// player, dominated enemies chase their nearest living kin. Force effects
// (pull fields) add onto these vectors afterwards.
type SteeringSystem struct {
	ecs *entity.ECS
}

func NewSteeringSystem(ecs *entity.ECS) *SteeringSystem {
	return &SteeringSystem{ecs: ecs}
}

func (s *SteeringSystem) Update(deltaTime float64) {
	playerPos, hasPlayer := s.playerPosition()

	for id, enemy := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}

		var target geom.Vec2
		if _, dominated := s.ecs.Dominated[id]; dominated {
			t, found := s.nearestOtherEnemy(id, geom.Vec2{X: pos.X, Y: pos.Y})
			if !found {
				vel.X, vel.Y = 0, 0
				continue
			}
			target = t
		} else if hasPlayer {
			target = playerPos
		} else {
			vel.X, vel.Y = 0, 0
			continue
		}

		dir := target.Sub(geom.Vec2{X: pos.X, Y: pos.Y}).Normalize()
		vel.X = dir.X * enemy.Speed
		vel.Y = dir.Y * enemy.Speed
	}
}

func (s *SteeringSystem) playerPosition() (geom.Vec2, bool) {
	for id := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return geom.Vec2{X: pos.X, Y: pos.Y}, true
		}
	}
	return geom.Vec2{}, false
}

func (s *SteeringSystem) nearestOtherEnemy(self types.EntityID, origin geom.Vec2) (geom.Vec2, bool) {
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
	if len(nearest) == 0 {
		return geom.Vec2{}, false
	}
	return nearest[0].Pos, true
}

// MovementSystem integrates velocities into positions. It runs after
// steering and after force effects so the frame's composed velocity is what
// moves the entity.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		if vel, ok := s.ecs.Velocities[id]; ok {
			pos.X += vel.X * deltaTime
			pos.Y += vel.Y * deltaTime
		}
	}
}
