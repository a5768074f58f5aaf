package system

import (
	"math"
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/geom"
)

func TestSteeringChasesPlayer(t *testing.T) {
	ecs := entity.NewECS()
	addPlayer(ecs, 10, 0, 100)
	enemy := addEnemy(ecs, 0, 0, 100)

	NewSteeringSystem(ecs).Update(0.016)

	vel := ecs.Velocities[enemy]
	if vel.X <= 0 || vel.Y != 0 {
		t.Errorf("velocity = (%v,%v), want toward the player (+X)", vel.X, vel.Y)
	}
	speed := math.Hypot(vel.X, vel.Y)
	if math.Abs(speed-2.2) > 1e-9 {
		t.Errorf("speed = %v, want the enemy's 2.2", speed)
	}
}

func TestSteeringDominatedChasesKin(t *testing.T) {
	ecs := entity.NewECS()
	addPlayer(ecs, 10, 0, 100)
	dominated := addEnemy(ecs, 0, 0, 100)
	addEnemy(ecs, -5, 0, 100) // kin on the other side of the player

	SpawnDominate(ecs, geom.Vec2{})
	NewSteeringSystem(ecs).Update(0.016)

	vel := ecs.Velocities[dominated]
	if vel.X >= 0 {
		t.Errorf("dominated velocity X = %v, want toward kin (-X), not the player", vel.X)
	}
}

func TestSteeringStopsWithoutTarget(t *testing.T) {
	ecs := entity.NewECS()
	enemy := addEnemy(ecs, 0, 0, 100)
	ecs.Velocities[enemy].X = 3

	NewSteeringSystem(ecs).Update(0.016)

	if vel := ecs.Velocities[enemy]; vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity = (%v,%v), want zero with no player", vel.X, vel.Y)
	}
}

func TestMovementIntegratesVelocity(t *testing.T) {
	ecs := entity.NewECS()
	player := addPlayer(ecs, 0, 0, 100)
	ecs.Velocities[player].X = config.PlayerSpeed

	NewMovementSystem(ecs).Update(0.5)

	if got := ecs.Positions[player].X; math.Abs(got-config.PlayerSpeed*0.5) > 1e-9 {
		t.Errorf("position X = %v, want %v", got, config.PlayerSpeed*0.5)
	}
}
