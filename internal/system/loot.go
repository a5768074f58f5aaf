// internal/system/loot.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// LootSystem handles dropped health packs and power-ups: both drift toward
// the player inside the pickup radius and apply on contact. It also owns the
// power-up bookkeeping, ticking the temporary windows and recomputing the
// player's derived stats (max health, speed, regeneration) from the active
// stacks every frame.
type LootSystem struct {
	ecs *entity.ECS
	cfg config.Tuning
}

func NewLootSystem(ecs *entity.ECS, cfg config.Tuning) *LootSystem {
	return &LootSystem{ecs: ecs, cfg: cfg}
}

func (s *LootSystem) Update(deltaTime float64) {
	playerID, origin, ok := s.player()
	if !ok {
		return
	}
	boosts := s.ecs.Boosts[playerID]
	if boosts == nil {
		boosts = component.NewBoosts()
		s.ecs.Boosts[playerID] = boosts
	}
	boosts.Tick(deltaTime)

	pickupRadius := s.cfg.PickupRadius * boosts.Multiplier(component.PowerUpPickupRadius)

	var consumed []types.EntityID
	for _, id := range sortedIDs(s.ecs.HealthPacks) {
		pack := s.ecs.HealthPacks[id]
		switch s.approach(id, origin, pickupRadius, deltaTime) {
		case lootCollected:
			if health, ok := s.ecs.Healths[playerID]; ok {
				health.Heal(pack.Heal)
			}
			consumed = append(consumed, id)
		}
	}
	for _, id := range sortedIDs(s.ecs.PowerUps) {
		item := s.ecs.PowerUps[id]
		switch s.approach(id, origin, pickupRadius, deltaTime) {
		case lootCollected:
			boosts.Add(item.Kind)
			consumed = append(consumed, id)
		}
	}
	for _, id := range consumed {
		s.ecs.RemoveEntity(id)
	}

	s.applyStats(playerID, boosts, deltaTime)
}

type lootOutcome int

const (
	lootIdle lootOutcome = iota
	lootAttracted
	lootCollected
)

// approach drifts one dropped item toward the player and reports whether it
// reached collection distance this frame.
func (s *LootSystem) approach(id types.EntityID, origin geom.Vec2, pickupRadius, deltaTime float64) lootOutcome {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return lootIdle
	}
	p := geom.Vec2{X: pos.X, Y: pos.Y}
	dist := origin.Distance(p)

	if dist <= config.OrbCollectRadius {
		return lootCollected
	}
	if dist <= pickupRadius {
		step := origin.Sub(p).Normalize().Scale(config.OrbDriftSpeed * deltaTime)
		pos.X += step.X
		pos.Y += step.Y
		return lootAttracted
	}
	return lootIdle
}

// applyStats recomputes the player's boosted stats from the tuning baseline.
func (s *LootSystem) applyStats(playerID types.EntityID, boosts *component.Boosts, deltaTime float64) {
	if player, ok := s.ecs.Players[playerID]; ok {
		player.Speed = s.cfg.PlayerSpeed * boosts.Multiplier(component.PowerUpMoveSpeed)
	}
	if health, ok := s.ecs.Healths[playerID]; ok {
		health.Max = s.cfg.PlayerMaxHealth * boosts.Multiplier(component.PowerUpMaxHealth)
		if health.Current > health.Max {
			health.Current = health.Max
		}
		if stacks := boosts.StackCount(component.PowerUpHealthRegen); stacks > 0 && !health.IsDead() {
			health.Heal(config.PlayerRegenPerStack * float64(stacks) * deltaTime)
		}
	}
}

func (s *LootSystem) player() (types.EntityID, geom.Vec2, bool) {
	for id := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return id, geom.Vec2{X: pos.X, Y: pos.Y}, true
		}
	}
	return 0, geom.Vec2{}, false
}
