// internal/system/experience.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// ExperienceSystem drifts dropped orbs toward the player once inside the
// pickup radius, collects them on contact, and on each level-up raises a
// random equipped spell one level.
type ExperienceSystem struct {
	ecs        *entity.ECS
	cfg        config.Tuning
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewExperienceSystem(ecs *entity.ECS, cfg config.Tuning, rng *utils.PRNGService, dispatcher *event.Dispatcher) *ExperienceSystem {
	return &ExperienceSystem{ecs: ecs, cfg: cfg, rng: rng, dispatcher: dispatcher}
}

func (s *ExperienceSystem) Update(deltaTime float64) {
	playerID, origin, ok := s.player()
	if !ok {
		return
	}
	exp := s.ecs.Experiences[playerID]
	if exp == nil {
		return
	}

	pickupRadius := s.cfg.PickupRadius
	if boosts, ok := s.ecs.Boosts[playerID]; ok {
		pickupRadius *= boosts.Multiplier(component.PowerUpPickupRadius)
	}

	var collected []types.EntityID
	for _, orbID := range sortedIDs(s.ecs.ExperienceOrbs) {
		orb := s.ecs.ExperienceOrbs[orbID]
		pos, ok := s.ecs.Positions[orbID]
		if !ok {
			continue
		}
		p := geom.Vec2{X: pos.X, Y: pos.Y}
		dist := origin.Distance(p)

		if dist <= config.OrbCollectRadius {
			levels := exp.AddXP(orb.Value)
			collected = append(collected, orbID)
			for i := 0; i < levels; i++ {
				s.levelUpRandomSpell()
				if s.dispatcher != nil {
					// A single orb can carry the player through several
					// levels; announce each one it crossed.
					reached := exp.Level - levels + 1 + i
					s.dispatcher.Dispatch(event.Event{Type: event.PlayerLevelUp, Data: reached})
				}
			}
			continue
		}

		if dist <= pickupRadius {
			step := origin.Sub(p).Normalize().Scale(config.OrbDriftSpeed * deltaTime)
			pos.X += step.X
			pos.Y += step.Y
		}
	}

	for _, id := range collected {
		s.ecs.RemoveEntity(id)
	}
}

// levelUpRandomSpell raises a random equipped spell that still has headroom.
func (s *ExperienceSystem) levelUpRandomSpell() {
	var eligible []*component.Spell
	for _, id := range sortedIDs(s.ecs.Spells) {
		if spell := s.ecs.Spells[id]; spell.Level < component.MaxSpellLevel {
			eligible = append(eligible, spell)
		}
	}
	if len(eligible) == 0 {
		return
	}
	eligible[s.rng.Intn(len(eligible))].LevelUp()
}

func (s *ExperienceSystem) player() (types.EntityID, geom.Vec2, bool) {
	for id := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return id, geom.Vec2{X: pos.X, Y: pos.Y}, true
		}
	}
	return 0, geom.Vec2{}, false
}
