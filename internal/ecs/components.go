package ecs

import (
	"github.com/younwookim/platformer/internal/domain/collision"
	"github.com/younwookim/platformer/internal/domain/vec"
)

// Position is the committed position plus the staged next position and the
// position before the last commit. Only CommitPositions writes the embedded
// X/Y once a frame is running.
type Position struct {
	vec.Vec2
	Next vec.Vec2
	Prev vec.Vec2
}

// NewPosition creates a position whose staged and previous values equal p
func NewPosition(p vec.Vec2) Position {
	return Position{Vec2: p, Next: p, Prev: p}
}

// Teleport moves the committed, staged and previous position at once
func (p *Position) Teleport(to vec.Vec2) {
	p.Vec2 = to
	p.Next = to
	p.Prev = to
}

// Velocity is in pixels per frame
type Velocity struct {
	vec.Vec2
}

// RectBody is an axis-aligned box anchored at Position. FlipX means the
// entity faces left.
type RectBody struct {
	Width, Height float64
	FlipX         bool
}

// Rect returns the body box at the committed position
func (b RectBody) Rect(p Position) collision.Rect {
	return collision.NewRect(p.X, p.Y, b.Width, b.Height)
}

// CircleBody is a circle whose bounding square is anchored at Position
type CircleBody struct {
	Radius float64
}

// Center returns the circle center for the given position
func (c CircleBody) Center(p Position) vec.Vec2 {
	return p.Add(vec.New(c.Radius, c.Radius))
}

// CollisionInfo holds this frame's tile contacts. It is fully overwritten by
// UpdateTileCollision every frame.
type CollisionInfo struct {
	collision.Contacts
}

// TileCollidable marks a tile layer as solid
type TileCollidable struct {
	SurfaceHeight int
}

// TileLayer references a tile grid of the tile query service
type TileLayer struct {
	ID        int
	PixelSize int
}

// Movable holds the control tuning of an entity
type Movable struct {
	Speed     float64
	JumpPower float64
}

// StageState is the progress record of the running stage
type StageState struct {
	ID                 int
	IsGoal             bool
	GameOver           bool
	TimeRemaining      float64 // seconds
	Lives              int
	Coins              int
	InitEnemyPositions []vec.Vec2
}

// Playing reports whether the stage is still in progress
func (s StageState) Playing() bool {
	return !s.IsGoal && !s.GameOver
}

// Player tags the controlled entity
type Player struct {
	Iframes int // remaining frames in which side hits are ignored
}

// AnimState is the derived visual state of the player
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimCrouch
)

// String returns the state name
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimCrouch:
		return "crouch"
	default:
		return "unknown"
	}
}

// Animation is the player's sprite selection
type Animation struct {
	State   AnimState
	Frame   int
	Timer   int
	SpriteX int
	SpriteY int
}

// EnemyState tags enemies
type EnemyState struct {
	IsDead bool
}

// EnemyAnimation is the enemy walk cycle
type EnemyAnimation struct {
	Frame   int
	Timer   int
	SpriteX int
	SpriteY int
}

// CoinState tags coins
type CoinState struct {
	IsCollected bool
}

// Collectible marks entities picked up by the player on contact
type Collectible struct{}

// GoalMarker marks the tile layer that ends the stage on contact
type GoalMarker struct{}
