// internal/entity/ecs.go
package entity

import (
	"go-survivors/internal/component"
	"go-survivors/internal/types"
)

// ECS stores components in per-type maps keyed by entity ID. Systems iterate
// the map of the component they own; cross-type access is a lookup by ID.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions       map[types.EntityID]*component.Position
	Velocities      map[types.EntityID]*component.Velocity
	Healths         map[types.EntityID]*component.Health
	Renderables     map[types.EntityID]*component.Renderable
	Players         map[types.EntityID]*component.Player
	Enemies         map[types.EntityID]*component.Enemy
	Spells          map[types.EntityID]*component.Spell
	Projectiles     map[types.EntityID]*component.Projectile
	TimedEffects    map[types.EntityID]*component.TimedEffect
	Tethers         map[types.EntityID]*component.Tether
	TetheredEnemies map[types.EntityID]*component.TetheredEnemy
	Corroded        map[types.EntityID]*component.Corroded
	Burning         map[types.EntityID]*component.Burning
	Dominated       map[types.EntityID]*component.Dominated
	Invincibilities map[types.EntityID]*component.Invincibility
	Experiences     map[types.EntityID]*component.Experience
	ExperienceOrbs  map[types.EntityID]*component.ExperienceOrb
	Rockets         map[types.EntityID]*component.Rocket
	HealthPacks     map[types.EntityID]*component.HealthPack
	PowerUps        map[types.EntityID]*component.PowerUpItem
	Boosts          map[types.EntityID]*component.Boosts
}

func NewECS() *ECS {
	return &ECS{
		NextID:          1,
		Positions:       make(map[types.EntityID]*component.Position),
		Velocities:      make(map[types.EntityID]*component.Velocity),
		Healths:         make(map[types.EntityID]*component.Health),
		Renderables:     make(map[types.EntityID]*component.Renderable),
		Players:         make(map[types.EntityID]*component.Player),
		Enemies:         make(map[types.EntityID]*component.Enemy),
		Spells:          make(map[types.EntityID]*component.Spell),
		Projectiles:     make(map[types.EntityID]*component.Projectile),
		TimedEffects:    make(map[types.EntityID]*component.TimedEffect),
		Tethers:         make(map[types.EntityID]*component.Tether),
		TetheredEnemies: make(map[types.EntityID]*component.TetheredEnemy),
		Corroded:        make(map[types.EntityID]*component.Corroded),
		Burning:         make(map[types.EntityID]*component.Burning),
		Dominated:       make(map[types.EntityID]*component.Dominated),
		Invincibilities: make(map[types.EntityID]*component.Invincibility),
		Experiences:     make(map[types.EntityID]*component.Experience),
		ExperienceOrbs:  make(map[types.EntityID]*component.ExperienceOrb),
		Rockets:         make(map[types.EntityID]*component.Rocket),
		HealthPacks:     make(map[types.EntityID]*component.HealthPack),
		PowerUps:        make(map[types.EntityID]*component.PowerUpItem),
		Boosts:          make(map[types.EntityID]*component.Boosts),
	}
}

// NewEntity reserves a fresh entity ID.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes every component attached to the entity. Queries
// against a removed ID simply miss; no system treats that as an error.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Spells, id)
	delete(ecs.Projectiles, id)
	delete(ecs.TimedEffects, id)
	delete(ecs.Tethers, id)
	delete(ecs.TetheredEnemies, id)
	delete(ecs.Corroded, id)
	delete(ecs.Burning, id)
	delete(ecs.Dominated, id)
	delete(ecs.Invincibilities, id)
	delete(ecs.Experiences, id)
	delete(ecs.ExperienceOrbs, id)
	delete(ecs.Rockets, id)
	delete(ecs.HealthPacks, id)
	delete(ecs.PowerUps, id)
	delete(ecs.Boosts, id)
}

// Exists reports whether the entity still has a position, the one component
// every live entity carries.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}
