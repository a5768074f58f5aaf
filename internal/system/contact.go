// internal/system/contact.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

// ContactSystem applies touch damage from enemies to the player and grants a
// short hurt cooldown so overlapping packs don't shred the player in a single
// frame.
type ContactSystem struct {
	ecs *entity.ECS
	cfg config.Tuning
	bus *event.DamageBus
}

func NewContactSystem(ecs *entity.ECS, cfg config.Tuning, bus *event.DamageBus) *ContactSystem {
	return &ContactSystem{ecs: ecs, cfg: cfg, bus: bus}
}

func (s *ContactSystem) Update(deltaTime float64) {
	// Tick down invincibility windows first.
	for id, inv := range s.ecs.Invincibilities {
		inv.Duration.Tick(deltaTime)
		if inv.Duration.Finished() {
			delete(s.ecs.Invincibilities, id)
		}
	}

	for playerID := range s.ecs.Players {
		if _, invincible := s.ecs.Invincibilities[playerID]; invincible {
			continue
		}
		playerPos, ok := s.ecs.Positions[playerID]
		if !ok {
			continue
		}
		origin := geom.Vec2{X: playerPos.X, Y: playerPos.Y}

		if enemyID, dmg, hit := s.touchingEnemy(origin); hit {
			s.bus.Push(event.NewDamage(playerID, dmg, types.ElementNone).WithSource(enemyID))
			s.ecs.Invincibilities[playerID] = component.NewInvincibility(s.cfg.PlayerHurtCooldown)
		}
	}
}

// touchingEnemy scans in ascending ID order so the attacker credited for an
// overlapping pack is the same on every run.
func (s *ContactSystem) touchingEnemy(origin geom.Vec2) (types.EntityID, float64, bool) {
	for _, id := range sortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		p := geom.Vec2{X: pos.X, Y: pos.Y}
		if origin.Distance(p) <= enemy.Radius+config.PlayerRadius {
			return id, enemy.ContactDamage, true
		}
	}
	return 0, 0, false
}
