package ecs

import (
	"math"

	"github.com/younwookim/platformer/internal/domain/vec"
)

// PhysicsConfig holds the tuning consumed by the systems.
// Distances are in pixels, velocities in pixels/frame.
type PhysicsConfig struct {
	// Physics
	Gravity      float64 // added to velocity.y every frame
	MaxFallSpeed float64

	// Movement
	Acceleration  float64
	Friction      float64 // multiplicative, applied when no direction is held
	StopThreshold float64 // |vx| below this snaps to 0

	// Player
	PlayerWidth  float64
	PlayerHeight float64
	PlayerSpeed  float64
	JumpPower    float64
	Spawn        vec.Vec2

	// Enemy
	EnemyWidth  float64
	EnemyHeight float64
	EnemySpeed  float64

	// Pickup
	CoinRadius float64
	CoinMargin float64

	// Combat
	StompAngle     float64 // radians
	SideHitIframes int     // 0 disables

	// Stage rules
	TimeLimit  float64 // seconds
	FrameTime  float64 // seconds consumed per frame
	Lives      int
	FallLimitY float64

	// Animation
	AnimationSpeed int // game frames per visual frame
}

// DefaultPhysicsConfig returns the tuning the game ships with
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:        0.2,
		MaxFallSpeed:   2.0,
		Acceleration:   0.5,
		Friction:       0.85,
		StopThreshold:  0.1,
		PlayerWidth:    16,
		PlayerHeight:   16,
		PlayerSpeed:    2.0,
		JumpPower:      3.6,
		Spawn:          vec.New(80, 80),
		EnemyWidth:     16,
		EnemyHeight:    16,
		EnemySpeed:     1.0,
		CoinRadius:     8,
		CoinMargin:     1.25,
		StompAngle:     math.Pi / 4,
		SideHitIframes: 60,
		TimeLimit:      60,
		FrameTime:      1.0 / 60.0,
		Lives:          3,
		FallLimitY:     120,
		AnimationSpeed: 6,
	}
}
