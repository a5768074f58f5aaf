// internal/system/death.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/utils"
)

// DeathSystem listens for entity deaths: enemy deaths drop an experience orb
// where the enemy stood, roll for loot, and feed the kill/score counters; a
// player death ends the run.
type DeathSystem struct {
	ecs        *entity.ECS
	cfg        config.Tuning
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	vis        Visuals

	kills int
	score int
}

func NewDeathSystem(ecs *entity.ECS, cfg config.Tuning, rng *utils.PRNGService, dispatcher *event.Dispatcher, vis Visuals) *DeathSystem {
	s := &DeathSystem{ecs: ecs, cfg: cfg, rng: rng, dispatcher: dispatcher, vis: vis}
	dispatcher.Subscribe(event.EntityDied, s)
	return s
}

func (s *DeathSystem) Kills() int { return s.kills }
func (s *DeathSystem) Score() int { return s.score }

func (s *DeathSystem) OnEvent(e event.Event) {
	note, ok := e.Data.(event.DeathNotification)
	if !ok {
		return
	}

	switch note.EntityType {
	case event.EntityEnemy:
		s.kills++
		xp := 1
		if enemy, ok := s.ecs.Enemies[note.Entity]; ok {
			xp = enemy.XPValue
		}
		s.score += xp
		s.spawnOrb(note, xp)
		s.rollLoot(note)
	case event.EntityPlayer:
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

func (s *DeathSystem) spawnOrb(note event.DeathNotification, value int) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: note.Position.X, Y: note.Position.Y}
	s.ecs.ExperienceOrbs[id] = &component.ExperienceOrb{Value: value}
	if s.vis != nil {
		attachVisual(s.ecs.Renderables, id, s.vis.Orb())
	}
}

// rollLoot gives each dead enemy an independent chance to drop a health pack
// and a power-up.
func (s *DeathSystem) rollLoot(note event.DeathNotification) {
	if s.rng.Float64() < s.cfg.HealthPackDropChance {
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: note.Position.X, Y: note.Position.Y}
		s.ecs.HealthPacks[id] = &component.HealthPack{Heal: config.HealthPackHeal}
		if s.vis != nil {
			attachVisual(s.ecs.Renderables, id, s.vis.HealthPack())
		}
	}
	if s.rng.Float64() < s.cfg.PowerUpDropChance {
		kinds := component.AllPowerUpKinds()
		kind := kinds[s.rng.Intn(len(kinds))]
		id := s.ecs.NewEntity()
		s.ecs.Positions[id] = &component.Position{X: note.Position.X, Y: note.Position.Y}
		s.ecs.PowerUps[id] = &component.PowerUpItem{Kind: kind}
		if s.vis != nil {
			attachVisual(s.ecs.Renderables, id, s.vis.PowerUp(kind))
		}
	}
}
