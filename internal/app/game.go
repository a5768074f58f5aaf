// internal/app/game.go
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/system"
	"go-survivors/internal/types"
	"go-survivors/internal/utils"
)

// System is anything the game advances once per frame.
type System interface {
	Update(deltaTime float64)
}

// Game owns the world and runs the fixed per-frame system pipeline. It is
// renderer-agnostic: the window loop and the headless simulator both drive
// it through Update.
type Game struct {
	ECS *entity.ECS

	cfg        config.Tuning
	logger     *log.Logger
	dispatcher *event.Dispatcher
	bus        *event.DamageBus
	rng        *utils.PRNGService
	ids        *types.IDGenerator
	vis        system.Visuals

	systems []System
	spawner *system.SpawnerSystem
	death   *system.DeathSystem

	playerID types.EntityID
	input    geom.Vec2
	elapsed  float64
	over     bool
}

// NewGame builds a world with a player at the origin and the full system
// pipeline. Definitions must be loaded before calling (defs.LoadDefaults or
// an override file). A nil vis runs headless.
func NewGame(cfg config.Tuning, vis system.Visuals, logger *log.Logger) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	bus := event.NewDamageBus()
	rng := utils.NewPRNGService(cfg.Seed)
	ids := types.NewIDGenerator()

	g := &Game{
		ECS:        ecs,
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
		bus:        bus,
		rng:        rng,
		ids:        ids,
		vis:        vis,
	}
	g.spawnPlayer()

	// Subscribe before any system constructor runs: the spawner announces
	// its first wave during construction.
	dispatcher.Subscribe(event.WaveStarted, g)
	dispatcher.Subscribe(event.PlayerLevelUp, g)
	dispatcher.Subscribe(event.GameOver, g)

	g.spawner = system.NewSpawnerSystem(ecs, cfg, rng, dispatcher, vis)
	g.death = system.NewDeathSystem(ecs, cfg, rng, dispatcher, vis)

	// Frame pipeline. Producers push onto the damage bus, the share/apply
	// systems read the pending queue, combat drains it. Cleanups run after
	// resolution so everything despawned this frame took its final tick.
	g.systems = []System{
		g.spawner,
		system.NewCastingSystem(ecs, bus, rng, ids, vis),
		system.NewSteeringSystem(ecs),
		system.NewTimedEffectSystem(ecs, bus, rng),
		system.NewRocketSystem(ecs, vis),
		system.NewMovementSystem(ecs),
		system.NewProjectileSystem(ecs, bus),
		system.NewContactSystem(ecs, cfg, bus),
		system.NewDominateSystem(ecs, bus),
		system.NewDebuffSystem(ecs, bus),
		system.NewTetherShareSystem(ecs, bus),
		system.NewCorrodeApplySystem(ecs, bus),
		system.NewCombatSystem(ecs, bus, dispatcher),
		system.NewTetherSystem(ecs),
		system.NewEffectCleanupSystem(ecs),
		system.NewExperienceSystem(ecs, cfg, rng, dispatcher),
		system.NewLootSystem(ecs, cfg),
	}

	return g
}

func (g *Game) spawnPlayer() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Healths[id] = component.NewHealth(g.cfg.PlayerMaxHealth)
	g.ECS.Players[id] = &component.Player{Speed: g.cfg.PlayerSpeed}
	g.ECS.Experiences[id] = component.NewExperience(g.cfg.ExperienceBaseXP, g.cfg.ExperienceGrowth)
	g.ECS.Boosts[id] = component.NewBoosts()
	if g.vis != nil {
		if r := g.vis.Player(); r != nil {
			g.ECS.Renderables[id] = r
		}
	}
	g.playerID = id
}

// EquipSpell adds a spell slot from the definition library. Each slot is its
// own entity so the casting system tracks cooldowns independently.
func (g *Game) EquipSpell(defID string) error {
	def, ok := defs.SpellLibrary[defID]
	if !ok {
		return fmt.Errorf("app: unknown spell %q", defID)
	}
	id := g.ECS.NewEntity()
	g.ECS.Spells[id] = component.NewSpell(def.ID, types.Element(def.Element), def.FireRate, def.BaseDamage)
	return nil
}

// SetMoveInput sets the player's movement direction for the next Update.
// The vector is normalized; a zero vector stops the player.
func (g *Game) SetMoveInput(dir geom.Vec2) {
	g.input = dir.Normalize()
}

// Update advances the world one frame. Delta time is clamped so a stalled
// frame cannot tunnel entities through each other.
func (g *Game) Update(deltaTime float64) {
	if g.over {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.ECS.GameTime += deltaTime
	g.elapsed += deltaTime

	if vel, ok := g.ECS.Velocities[g.playerID]; ok {
		speed := g.cfg.PlayerSpeed
		if p, ok := g.ECS.Players[g.playerID]; ok {
			speed = p.Speed
		}
		step := g.input.Scale(speed)
		vel.X = step.X
		vel.Y = step.Y
	}

	for _, s := range g.systems {
		s.Update(deltaTime)
	}
}

// OnEvent logs the run milestones and latches the game-over flag.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		if wave, ok := e.Data.(int); ok && g.logger != nil {
			g.logger.Info("wave started", "wave", wave)
		}
	case event.PlayerLevelUp:
		if level, ok := e.Data.(int); ok && g.logger != nil {
			g.logger.Info("level up", "level", level)
		}
	case event.GameOver:
		g.over = true
		if g.logger != nil {
			g.logger.Info("run over",
				"elapsed", g.elapsed,
				"wave", g.spawner.Wave(),
				"kills", g.death.Kills(),
				"score", g.death.Score(),
			)
		}
	}
}

func (g *Game) Over() bool       { return g.over }
func (g *Game) Elapsed() float64 { return g.elapsed }
func (g *Game) Wave() int        { return g.spawner.Wave() }
func (g *Game) Kills() int       { return g.death.Kills() }
func (g *Game) Score() int       { return g.death.Score() }

// Level returns the player's current level.
func (g *Game) Level() int {
	if exp, ok := g.ECS.Experiences[g.playerID]; ok {
		return exp.Level
	}
	return 1
}

// PlayerHealth returns current and max player health.
func (g *Game) PlayerHealth() (float64, float64) {
	if h, ok := g.ECS.Healths[g.playerID]; ok {
		return h.Current, h.Max
	}
	return 0, 0
}

// PlayerID exposes the player entity for the render layer.
func (g *Game) PlayerID() types.EntityID { return g.playerID }
