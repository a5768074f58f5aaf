// internal/system/combat.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// CombatSystem is the single consumer of the damage bus. Once per frame,
// after every producer has run, it drains the queue in append order: applies
// the Corroded multiplier, clamps health, and dispatches exactly one death
// notification per entity that reached zero. Entities are marked for despawn
// and removed afterwards, never mid-drain.
type CombatSystem struct {
	ecs        *entity.ECS
	bus        *event.DamageBus
	dispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, bus *event.DamageBus, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, bus: bus, dispatcher: dispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	died := make(map[types.EntityID]bool)

	for _, e := range s.bus.Drain() {
		health, ok := s.ecs.Healths[e.Target]
		if !ok {
			// Target despawned between emission and resolution. Expected
			// under system ordering; drop silently.
			continue
		}
		if died[e.Target] {
			continue
		}

		amount := e.Amount
		if corroded, ok := s.ecs.Corroded[e.Target]; ok {
			amount *= corroded.DamageMultiplier
		}
		health.TakeDamage(amount)

		if health.IsDead() {
			died[e.Target] = true
			s.notifyDeath(e.Target)
		}
	}

	// Despawn pass, separate from resolution.
	for id := range died {
		s.ecs.RemoveEntity(id)
	}
}

func (s *CombatSystem) notifyDeath(id types.EntityID) {
	var pos geom.Vec2
	if p, ok := s.ecs.Positions[id]; ok {
		pos = geom.Vec2{X: p.X, Y: p.Y}
	}
	entityType := event.EntityProjectile
	if _, ok := s.ecs.Enemies[id]; ok {
		entityType = event.EntityEnemy
	} else if _, ok := s.ecs.Players[id]; ok {
		entityType = event.EntityPlayer
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.EntityDied,
		Data: event.DeathNotification{Entity: id, Position: pos, EntityType: entityType},
	})
}
