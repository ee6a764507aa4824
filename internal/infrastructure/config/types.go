package config

import (
	"errors"
	"fmt"
)

// ErrInvalidPhysics is returned for a physics.yaml that cannot drive the game
var ErrInvalidPhysics = errors.New("invalid physics config")

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsSettings `yaml:"physics"`
	Movement  MovementConfig  `yaml:"movement"`
	Combat    CombatConfig    `yaml:"combat"`
	Animation AnimationConfig `yaml:"animation"`
	Rules     RulesConfig     `yaml:"rules"`
	Input     InputConfig     `yaml:"input"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// FrameTime is the length of one update in seconds
func (d DisplayConfig) FrameTime() float64 {
	return 1.0 / float64(d.Framerate)
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`      // pixels/frame²
	MaxFallSpeed float64 `yaml:"maxFallSpeed"` // pixels/frame
}

type MovementConfig struct {
	Acceleration  float64 `yaml:"acceleration"`
	Friction      float64 `yaml:"friction"`
	StopThreshold float64 `yaml:"stopThreshold"`
}

type CombatConfig struct {
	StompAngleDeg  float64 `yaml:"stompAngleDeg"`
	SideHitIframes int     `yaml:"sideHitIframes"` // frames, 0 disables
}

type AnimationConfig struct {
	Speed int `yaml:"speed"` // game frames per sprite frame
}

type RulesConfig struct {
	TimeLimit  float64 `yaml:"timeLimit"` // seconds
	Lives      int     `yaml:"lives"`
	FallLimitY float64 `yaml:"fallLimitY"`
}

type InputConfig struct {
	GamepadDeadZone float64 `yaml:"gamepadDeadZone"` // 0..1 of full stick travel
}

// DefaultPhysicsConfig returns the values shipped in physics.yaml
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Display:   DisplayConfig{ScreenWidth: 272, ScreenHeight: 160, Scale: 3, Framerate: 60},
		Physics:   PhysicsSettings{Gravity: 0.2, MaxFallSpeed: 2.0},
		Movement:  MovementConfig{Acceleration: 0.5, Friction: 0.85, StopThreshold: 0.1},
		Combat:    CombatConfig{StompAngleDeg: 45, SideHitIframes: 60},
		Animation: AnimationConfig{Speed: 6},
		Rules:     RulesConfig{TimeLimit: 60, Lives: 3, FallLimitY: 120},
		Input:     InputConfig{GamepadDeadZone: 0.3},
	}
}

// Validate rejects values that would divide by zero or leave nothing to draw
func (c *PhysicsConfig) Validate() error {
	d := c.Display
	switch {
	case d.Framerate <= 0:
		return fmt.Errorf("display.framerate %d must be positive: %w", d.Framerate, ErrInvalidPhysics)
	case d.ScreenWidth <= 0 || d.ScreenHeight <= 0:
		return fmt.Errorf("display size %dx%d must be positive: %w", d.ScreenWidth, d.ScreenHeight, ErrInvalidPhysics)
	case d.Scale <= 0:
		return fmt.Errorf("display.scale %d must be positive: %w", d.Scale, ErrInvalidPhysics)
	case c.Animation.Speed <= 0:
		return fmt.Errorf("animation.speed %d must be positive: %w", c.Animation.Speed, ErrInvalidPhysics)
	}
	return nil
}
