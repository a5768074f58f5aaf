// internal/system/tether.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
)

// TetherShareSystem propagates damage across tether links. For every
// pending non-propagated event whose target is tethered, it appends a
// propagated event of amount*share for each other member. Propagated events
// never re-trigger sharing, so a share can never cascade.
//
// Runs after all damage producers and before combat resolution, so shared
// damage resolves in the same drain as the hit that caused it.
type TetherShareSystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
}

func NewTetherShareSystem(ecs *entity.ECS, bus *event.DamageBus) *TetherShareSystem {
	return &TetherShareSystem{ecs: ecs, bus: bus}
}

func (s *TetherShareSystem) Update(deltaTime float64) {
	// Snapshot: events appended below must not be re-examined.
	pending := s.bus.Pending()
	snapshot := make([]event.DamageEvent, len(pending))
	copy(snapshot, pending)

	for _, e := range snapshot {
		if e.Propagated {
			continue
		}
		tethered, ok := s.ecs.TetheredEnemies[e.Target]
		if !ok {
			continue
		}
		tether, ok := s.ecs.Tethers[tethered.TetherEntity]
		if !ok || !tether.Contains(e.Target) {
			continue
		}
		shared := e.Amount * tether.SharePercentage
		for _, member := range tether.Members {
			if member == e.Target {
				continue
			}
			s.bus.Push(event.DamageEvent{
				Target:     member,
				Amount:     shared,
				Source:     e.Target,
				Element:    e.Element,
				Propagated: true,
			})
		}
	}
}

// TetherSystem maintains tether lifecycles: ticks durations, prunes dead
// members, and despawns defunct tethers (expired or fewer than two links).
type TetherSystem struct {
	ecs *entity.ECS
}

func NewTetherSystem(ecs *entity.ECS) *TetherSystem {
	return &TetherSystem{ecs: ecs}
}

func (s *TetherSystem) Update(deltaTime float64) {
	for id, tether := range s.ecs.Tethers {
		tether.Duration.Tick(deltaTime)

		// Prune members that died or despawned since last frame.
		alive := tether.Members[:0]
		for _, m := range tether.Members {
			if _, ok := s.ecs.Enemies[m]; ok {
				alive = append(alive, m)
			}
		}
		tether.Members = alive

		if tether.Defunct() {
			for _, m := range tether.Members {
				if back, ok := s.ecs.TetheredEnemies[m]; ok && back.TetherEntity == id {
					delete(s.ecs.TetheredEnemies, m)
				}
			}
			s.ecs.RemoveEntity(id)
		}
	}

	// Drop back-references whose tether is gone.
	for enemyID, back := range s.ecs.TetheredEnemies {
		if _, ok := s.ecs.Tethers[back.TetherEntity]; !ok {
			delete(s.ecs.TetheredEnemies, enemyID)
		}
	}
}
