package system

import (
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

func TestEnemyDeathDropsOrbAndScores(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	dispatcher := event.NewDispatcher()
	enemy := addEnemy(ecs, 7, -3, 10)

	death := NewDeathSystem(ecs, config.DefaultTuning(), utils.NewPRNGService(1), dispatcher, nil)
	bus.Push(event.NewDamage(enemy, 100, types.ElementFire))
	NewCombatSystem(ecs, bus, dispatcher).Update(0)

	if death.Kills() != 1 {
		t.Errorf("kills = %d, want 1", death.Kills())
	}
	if death.Score() != 5 {
		t.Errorf("score = %d, want the enemy's xp value 5", death.Score())
	}
	if len(ecs.ExperienceOrbs) != 1 {
		t.Fatalf("orbs = %d, want 1", len(ecs.ExperienceOrbs))
	}
	for id, orb := range ecs.ExperienceOrbs {
		if orb.Value != 5 {
			t.Errorf("orb value = %d, want 5", orb.Value)
		}
		pos := ecs.Positions[id]
		if pos.X != 7 || pos.Y != -3 {
			t.Errorf("orb at (%v,%v), want where the enemy died (7,-3)", pos.X, pos.Y)
		}
	}
}

func TestEnemyDeathRollsLoot(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	dispatcher := event.NewDispatcher()
	enemy := addEnemy(ecs, 2, 2, 10)

	cfg := config.DefaultTuning()
	cfg.HealthPackDropChance = 1.0
	cfg.PowerUpDropChance = 1.0
	NewDeathSystem(ecs, cfg, utils.NewPRNGService(1), dispatcher, nil)

	bus.Push(event.NewDamage(enemy, 100, types.ElementFire))
	NewCombatSystem(ecs, bus, dispatcher).Update(0)

	if len(ecs.HealthPacks) != 1 {
		t.Errorf("health packs = %d, want 1 with a guaranteed drop", len(ecs.HealthPacks))
	}
	if len(ecs.PowerUps) != 1 {
		t.Errorf("power-ups = %d, want 1 with a guaranteed drop", len(ecs.PowerUps))
	}
	for id := range ecs.HealthPacks {
		pos := ecs.Positions[id]
		if pos.X != 2 || pos.Y != 2 {
			t.Errorf("pack at (%v,%v), want where the enemy died (2,2)", pos.X, pos.Y)
		}
	}
}

func TestEnemyDeathNoLootAtZeroChance(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	dispatcher := event.NewDispatcher()
	enemy := addEnemy(ecs, 0, 0, 10)

	cfg := config.DefaultTuning()
	cfg.HealthPackDropChance = 0
	cfg.PowerUpDropChance = 0
	NewDeathSystem(ecs, cfg, utils.NewPRNGService(1), dispatcher, nil)

	bus.Push(event.NewDamage(enemy, 100, types.ElementFire))
	NewCombatSystem(ecs, bus, dispatcher).Update(0)

	if len(ecs.HealthPacks) != 0 || len(ecs.PowerUps) != 0 {
		t.Errorf("loot dropped with zero chance: packs=%d powerups=%d",
			len(ecs.HealthPacks), len(ecs.PowerUps))
	}
}

func TestPlayerDeathDispatchesGameOver(t *testing.T) {
	ecs := entity.NewECS()
	bus := event.NewDamageBus()
	dispatcher := event.NewDispatcher()
	player := addPlayer(ecs, 0, 0, 10)

	over := &gameOverFlag{}
	dispatcher.Subscribe(event.GameOver, over)
	NewDeathSystem(ecs, config.DefaultTuning(), utils.NewPRNGService(1), dispatcher, nil)

	bus.Push(event.NewDamage(player, 100, types.ElementNone))
	NewCombatSystem(ecs, bus, dispatcher).Update(0)

	if !over.fired {
		t.Error("player death should raise the game-over event")
	}
}

type gameOverFlag struct {
	fired bool
}

func (g *gameOverFlag) OnEvent(e event.Event) {
	g.fired = true
}
