// internal/system/spawner.go
package system

import (
	"math"
	"sort"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/geom"
	"go-survivors/internal/utils"
)

// SpawnerSystem produces enemy waves. Each wave lasts WaveDuration seconds,
// carries a per-wave enemy budget and spawns on a ramping interval: every new
// wave multiplies the interval by SpawnIntervalFactor down to SpawnMinInterval.
// Enemies appear on a circle of SpawnRadius around the player so they always
// walk in from off-screen.
type SpawnerSystem struct {
	ecs        *entity.ECS
	cfg        config.Tuning
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	vis        Visuals

	wave          int
	waveTimer     component.Timer
	spawnTimer    component.Timer
	spawnInterval float64
	budget        int

	enemyPool []defs.EnemyDefinition
}

func NewSpawnerSystem(ecs *entity.ECS, cfg config.Tuning, rng *utils.PRNGService, dispatcher *event.Dispatcher, vis Visuals) *SpawnerSystem {
	s := &SpawnerSystem{
		ecs:           ecs,
		cfg:           cfg,
		rng:           rng,
		dispatcher:    dispatcher,
		vis:           vis,
		spawnInterval: cfg.SpawnBaseInterval,
	}
	for _, def := range defs.EnemyLibrary {
		s.enemyPool = append(s.enemyPool, def)
	}
	// Stable pool order so a fixed seed reproduces a run exactly.
	sort.Slice(s.enemyPool, func(i, j int) bool { return s.enemyPool[i].ID < s.enemyPool[j].ID })
	s.startWave(1)
	return s
}

func (s *SpawnerSystem) Wave() int { return s.wave }

func (s *SpawnerSystem) startWave(n int) {
	s.wave = n
	s.budget = s.cfg.WaveBaseEnemies + (n-1)*s.cfg.WaveEnemyIncrement
	if n > 1 {
		s.spawnInterval = math.Max(s.spawnInterval*s.cfg.SpawnIntervalFactor, s.cfg.SpawnMinInterval)
	}
	s.waveTimer = component.NewTimer(s.cfg.WaveDuration)
	s.spawnTimer = component.NewRepeatingTimer(s.spawnInterval)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: n})
	}
}

func (s *SpawnerSystem) Update(deltaTime float64) {
	origin, ok := s.playerOrigin()
	if !ok {
		return
	}

	s.waveTimer.Tick(deltaTime)
	if s.waveTimer.Finished() {
		s.startWave(s.wave + 1)
	}

	s.spawnTimer.Tick(deltaTime)
	if s.spawnTimer.JustFinished() && s.budget > 0 && len(s.ecs.Enemies) < s.cfg.SoftEnemyCap {
		s.spawnEnemy(origin)
		s.budget--
	}
}

func (s *SpawnerSystem) spawnEnemy(origin geom.Vec2) {
	if len(s.enemyPool) == 0 {
		return
	}
	def := s.enemyPool[s.rng.Intn(len(s.enemyPool))]

	angle := s.rng.Range(0, 2*math.Pi)
	pos := origin.Add(geom.FromAngle(angle).Scale(s.cfg.SpawnRadius))

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = component.NewHealth(def.Health)
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         def.ID,
		Speed:         def.Speed,
		ContactDamage: def.ContactDamage,
		XPValue:       def.XP,
		Radius:        def.Radius,
	}
	if s.vis != nil {
		attachVisual(s.ecs.Renderables, id, s.vis.Enemy(def))
	}
}

func (s *SpawnerSystem) playerOrigin() (geom.Vec2, bool) {
	for id := range s.ecs.Players {
		if pos, ok := s.ecs.Positions[id]; ok {
			return geom.Vec2{X: pos.X, Y: pos.Y}, true
		}
	}
	return geom.Vec2{}, false
}
