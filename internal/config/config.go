// internal/config/config.go
package config

// Arena and pacing defaults. Distances and speeds are in world units
// (the render layer scales by WorldScale). Every effect tunable is a named
// constant so tests and the YAML overlay can reconfigure behavior without
// touching logic.
const (
	ScreenWidth  = 1280
	ScreenHeight = 960
	MaxDeltaTime = 0.06

	PlayerSpeed        = 5.0
	PlayerMaxHealth    = 100.0
	PlayerRadius       = 0.4
	PlayerHurtCooldown = 0.35
	PickupRadius       = 3.0
	OrbDriftSpeed      = 8.0
	OrbCollectRadius   = 0.5

	ExperienceBaseXP = 10
	ExperienceGrowth = 1.5

	// Wave spawner: interval ramps down each wave, count ramps up.
	SpawnBaseInterval   = 0.75
	SpawnMinInterval    = 0.20
	SpawnIntervalFactor = 0.92
	WaveDuration        = 15.0
	WaveBaseEnemies     = 10
	WaveEnemyIncrement  = 4
	SpawnRadius         = 16.0
	SoftEnemyCap        = 140

	// Casting.
	TargetPoolSize = 5 // random pick among the 5 nearest enemies
)

// Effect catalogue defaults.
const (
	EntropyFieldRadius        = 5.0
	EntropyFieldDuration      = 4.0
	EntropyFieldTickInterval  = 0.5
	EntropyFieldMinDamageMult = 0.25
	EntropyFieldMaxDamageMult = 2.0

	BlightZoneRadius          = 4.0
	BlightZoneDuration        = 5.0
	BlightZoneTickInterval    = 0.5
	BlightZoneTickDamageRatio = 0.15

	WarpRiftPullRadius   = 8.0
	WarpRiftDamageRadius = 2.0
	WarpRiftPullStrength = 150.0
	WarpRiftDuration     = 4.0
	WarpRiftTickInterval = 0.5

	RadiancePulseRadius   = 8.0
	RadiancePulseInterval = 0.5
	RadianceDuration      = 6.0

	HaloShieldRadius        = 3.0
	HaloShieldRingThickness = 0.5
	HaloShieldHitCooldown   = 0.5
	HaloShieldDuration      = 6.0

	InfernoPulseMaxRadius     = 6.0
	InfernoPulseExpansionRate = 20.0

	ThunderStrikeDelay  = 0.5
	ThunderStrikeRadius = 3.0

	GrimTetherDuration        = 8.0
	GrimTetherSharePercentage = 0.5
	GrimTetherLinkRange       = 10.0
	GrimTetherMaxLinks        = 5

	CorrodedDuration         = 4.0
	CorrodedDamageMultiplier = 1.2

	DominateRange          = 10.0
	DominateDuration       = 5.0
	DominateAllyDamage     = 15.0
	DominateAttackInterval = 1.0

	FireballSpeed           = 20.0
	FireballLifetime        = 5.0
	FireballSpreadAngle     = 15.0 // degrees between multi-projectile shots
	FireballCollisionRadius = 1.0
	BurnTickInterval        = 0.5
	BurnTotalDuration       = 3.0
	BurnDamageRatio         = 0.25

	RadiantBeamLength          = 800.0
	RadiantBeamCollisionRadius = 1.0

	RocketPauseDuration      = 0.5
	RocketHomingSpeed        = 7.5
	RocketHomingStrength     = 2.0
	RocketExplodeDistance    = 1.0
	RocketLifetime           = 6.0
	RocketExplosionRadius    = 4.0
	RocketExplosionExpansion = 15.0
	RocketExplosionDuration  = 0.3
)

// Loot drop defaults.
const (
	HealthPackDropChance = 0.03
	HealthPackHeal       = 25.0
	PowerUpDropChance    = 0.02
	PlayerRegenPerStack  = 0.25 // hp/s granted per health-regen stack
)

// Effect geometry in the catalogue above is expressed in world units; the
// render layer scales world units to pixels.
const WorldScale = 32.0
