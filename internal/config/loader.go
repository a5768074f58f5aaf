// internal/config/loader.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the runtime-adjustable subset of the defaults above. Zero values
// in the YAML leave the default in place, so override files only need to
// name what they change.
type Tuning struct {
	PlayerSpeed        float64 `yaml:"player_speed"`
	PlayerMaxHealth    float64 `yaml:"player_max_health"`
	PlayerHurtCooldown float64 `yaml:"player_hurt_cooldown"`
	PickupRadius       float64 `yaml:"pickup_radius"`

	ExperienceBaseXP int     `yaml:"experience_base_xp"`
	ExperienceGrowth float64 `yaml:"experience_growth"`

	SpawnBaseInterval   float64 `yaml:"spawn_base_interval"`
	SpawnMinInterval    float64 `yaml:"spawn_min_interval"`
	SpawnIntervalFactor float64 `yaml:"spawn_interval_factor"`
	WaveDuration        float64 `yaml:"wave_duration"`
	WaveBaseEnemies     int     `yaml:"wave_base_enemies"`
	WaveEnemyIncrement  int     `yaml:"wave_enemy_increment"`
	SpawnRadius         float64 `yaml:"spawn_radius"`
	SoftEnemyCap        int     `yaml:"soft_enemy_cap"`

	HealthPackDropChance float64 `yaml:"health_pack_drop_chance"`
	PowerUpDropChance    float64 `yaml:"powerup_drop_chance"`

	Seed int64 `yaml:"seed"` // 0 means time-seeded
}

// DefaultTuning mirrors the package constants.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:          PlayerSpeed,
		PlayerMaxHealth:      PlayerMaxHealth,
		PlayerHurtCooldown:   PlayerHurtCooldown,
		PickupRadius:         PickupRadius,
		ExperienceBaseXP:     ExperienceBaseXP,
		ExperienceGrowth:     ExperienceGrowth,
		SpawnBaseInterval:    SpawnBaseInterval,
		SpawnMinInterval:     SpawnMinInterval,
		SpawnIntervalFactor:  SpawnIntervalFactor,
		WaveDuration:         WaveDuration,
		WaveBaseEnemies:      WaveBaseEnemies,
		WaveEnemyIncrement:   WaveEnemyIncrement,
		SpawnRadius:          SpawnRadius,
		SoftEnemyCap:         SoftEnemyCap,
		HealthPackDropChance: HealthPackDropChance,
		PowerUpDropChance:    PowerUpDropChance,
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults unchanged.
func Load(path string) (Tuning, error) {
	cfg := DefaultTuning()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var overlay Tuning
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.apply(overlay)
	return cfg, nil
}

func (t *Tuning) apply(o Tuning) {
	if o.PlayerSpeed > 0 {
		t.PlayerSpeed = o.PlayerSpeed
	}
	if o.PlayerMaxHealth > 0 {
		t.PlayerMaxHealth = o.PlayerMaxHealth
	}
	if o.PlayerHurtCooldown > 0 {
		t.PlayerHurtCooldown = o.PlayerHurtCooldown
	}
	if o.PickupRadius > 0 {
		t.PickupRadius = o.PickupRadius
	}
	if o.ExperienceBaseXP > 0 {
		t.ExperienceBaseXP = o.ExperienceBaseXP
	}
	if o.ExperienceGrowth > 0 {
		t.ExperienceGrowth = o.ExperienceGrowth
	}
	if o.SpawnBaseInterval > 0 {
		t.SpawnBaseInterval = o.SpawnBaseInterval
	}
	if o.SpawnMinInterval > 0 {
		t.SpawnMinInterval = o.SpawnMinInterval
	}
	if o.SpawnIntervalFactor > 0 {
		t.SpawnIntervalFactor = o.SpawnIntervalFactor
	}
	if o.WaveDuration > 0 {
		t.WaveDuration = o.WaveDuration
	}
	if o.WaveBaseEnemies > 0 {
		t.WaveBaseEnemies = o.WaveBaseEnemies
	}
	if o.WaveEnemyIncrement > 0 {
		t.WaveEnemyIncrement = o.WaveEnemyIncrement
	}
	if o.SpawnRadius > 0 {
		t.SpawnRadius = o.SpawnRadius
	}
	if o.SoftEnemyCap > 0 {
		t.SoftEnemyCap = o.SoftEnemyCap
	}
	if o.HealthPackDropChance > 0 {
		t.HealthPackDropChance = o.HealthPackDropChance
	}
	if o.PowerUpDropChance > 0 {
		t.PowerUpDropChance = o.PowerUpDropChance
	}
	if o.Seed != 0 {
		t.Seed = o.Seed
	}
}
