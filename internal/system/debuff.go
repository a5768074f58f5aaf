// internal/system/debuff.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
)

// CorrodeApplySystem inspects pending poison damage and applies or refreshes
// the Corroded debuff on the victim. Reapplication refreshes the duration
// only; the multiplier never stacks.
//
// Runs after damage producers (including the tether share) and before
// resolution, so the debuff is in place when this frame's drain applies the
// multiplier, including for the poison hit that applied it.
type CorrodeApplySystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
}

func NewCorrodeApplySystem(ecs *entity.ECS, bus *event.DamageBus) *CorrodeApplySystem {
	return &CorrodeApplySystem{ecs: ecs, bus: bus}
}

func (s *CorrodeApplySystem) Update(deltaTime float64) {
	for _, e := range s.bus.Pending() {
		if e.Element != types.ElementPoison {
			continue
		}
		if _, isEnemy := s.ecs.Enemies[e.Target]; !isEnemy {
			continue
		}
		if corroded, ok := s.ecs.Corroded[e.Target]; ok {
			corroded.Refresh(config.CorrodedDuration)
		} else {
			s.ecs.Corroded[e.Target] = component.NewCorroded(config.CorrodedDuration, config.CorrodedDamageMultiplier)
		}
	}
}

// DebuffSystem ticks debuff timers, emits burn damage, and removes expired
// debuffs. Removal happens here on expiry, never waiting for another
// trigger.
type DebuffSystem struct {
	ecs *entity.ECS
	bus *event.DamageBus
}

func NewDebuffSystem(ecs *entity.ECS, bus *event.DamageBus) *DebuffSystem {
	return &DebuffSystem{ecs: ecs, bus: bus}
}

func (s *DebuffSystem) Update(deltaTime float64) {
	for id, corroded := range s.ecs.Corroded {
		corroded.Duration.Tick(deltaTime)
		if corroded.Expired() {
			delete(s.ecs.Corroded, id)
		}
	}

	for _, id := range sortedIDs(s.ecs.Burning) {
		burning := s.ecs.Burning[id]
		burning.Duration.Tick(deltaTime)
		burning.TickTimer.Tick(deltaTime)
		if burning.TickTimer.JustFinished() {
			s.bus.Push(event.NewDamage(id, burning.DamagePerTick, types.ElementFire).WithSource(burning.Source))
		}
		if burning.Expired() {
			delete(s.ecs.Burning, id)
		}
	}
}
