// internal/event/types.go
package event

import (
	"go-survivors/internal/geom"
	"go-survivors/internal/types"
)

const (
	EntityDied    EventType = "EntityDied"    // Data: DeathNotification
	WaveStarted   EventType = "WaveStarted"   // Data: int (wave number)
	PlayerLevelUp EventType = "PlayerLevelUp" // Data: int (new level)
	GameOver      EventType = "GameOver"
)

// EntityType classifies what died, for loot/score/bookkeeping listeners.
type EntityType int

const (
	EntityPlayer EntityType = iota
	EntityEnemy
	EntityProjectile
)

// DeathNotification is the sole channel by which the effect layer reports
// entity death to loot, experience and score.
type DeathNotification struct {
	Entity     types.EntityID
	Position   geom.Vec2
	EntityType EntityType
}
