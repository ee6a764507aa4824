package system

import (
	"math"

	"github.com/younwookim/platformer/internal/domain/vec"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Tuning flattens the YAML configs into the values the systems consume.
// spawn comes from the stage being played.
func Tuning(gc *config.GameConfig, spawn config.PositionConfig) ecs.PhysicsConfig {
	p := gc.Physics
	e := gc.Entities

	frameTime := 1.0 / 60.0
	if p.Display.Framerate > 0 {
		frameTime = p.Display.FrameTime()
	}

	return ecs.PhysicsConfig{
		Gravity:        p.Physics.Gravity,
		MaxFallSpeed:   p.Physics.MaxFallSpeed,
		Acceleration:   p.Movement.Acceleration,
		Friction:       p.Movement.Friction,
		StopThreshold:  p.Movement.StopThreshold,
		PlayerWidth:    e.Player.Width,
		PlayerHeight:   e.Player.Height,
		PlayerSpeed:    e.Player.Speed,
		JumpPower:      e.Player.JumpPower,
		Spawn:          vec.New(spawn.X, spawn.Y),
		EnemyWidth:     e.Enemy.Width,
		EnemyHeight:    e.Enemy.Height,
		EnemySpeed:     e.Enemy.Speed,
		CoinRadius:     e.Coin.Radius,
		CoinMargin:     e.Coin.Margin,
		StompAngle:     p.Combat.StompAngleDeg * math.Pi / 180,
		SideHitIframes: p.Combat.SideHitIframes,
		TimeLimit:      p.Rules.TimeLimit,
		FrameTime:      frameTime,
		Lives:          p.Rules.Lives,
		FallLimitY:     p.Rules.FallLimitY,
		AnimationSpeed: p.Animation.Speed,
	}
}
