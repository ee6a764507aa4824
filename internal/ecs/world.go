package ecs

import "fmt"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component tables and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position       *Store[Position]
	Velocity       *Store[Velocity]
	RectBody       *Store[RectBody]
	CircleBody     *Store[CircleBody]
	CollisionInfo  *Store[CollisionInfo]
	TileCollidable *Store[TileCollidable]
	TileLayer      *Store[TileLayer]
	Movable        *Store[Movable]
	StageState     *Store[StageState]
	Animation      *Store[Animation]
	EnemyAnimation *Store[EnemyAnimation]

	// Role components
	Player      *Store[Player]
	Enemy       *Store[EnemyState]
	Coin        *Store[CoinState]
	Collectible *Store[Collectible]
	Goal        *Store[GoalMarker]

	// Singleton references
	PlayerID EntityID
	StageID  EntityID

	// Gameplay events raised by systems since the last drain
	events []Event
	frame  uint64
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:         1, // 0 is "nil"
		Position:       NewStore[Position](),
		Velocity:       NewStore[Velocity](),
		RectBody:       NewStore[RectBody](),
		CircleBody:     NewStore[CircleBody](),
		CollisionInfo:  NewStore[CollisionInfo](),
		TileCollidable: NewStore[TileCollidable](),
		TileLayer:      NewStore[TileLayer](),
		Movable:        NewStore[Movable](),
		StageState:     NewStore[StageState](),
		Animation:      NewStore[Animation](),
		EnemyAnimation: NewStore[EnemyAnimation](),
		Player:         NewStore[Player](),
		Enemy:          NewStore[EnemyState](),
		Coin:           NewStore[CoinState](),
		Collectible:    NewStore[Collectible](),
		Goal:           NewStore[GoalMarker](),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	w.Position.Delete(id)
	w.Velocity.Delete(id)
	w.RectBody.Delete(id)
	w.CircleBody.Delete(id)
	w.CollisionInfo.Delete(id)
	w.TileCollidable.Delete(id)
	w.TileLayer.Delete(id)
	w.Movable.Delete(id)
	w.StageState.Delete(id)
	w.Animation.Delete(id)
	w.EnemyAnimation.Delete(id)
	w.Player.Delete(id)
	w.Enemy.Delete(id)
	w.Coin.Delete(id)
	w.Collectible.Delete(id)
	w.Goal.Delete(id)

	if w.PlayerID == id {
		w.PlayerID = 0
	}
	if w.StageID == id {
		w.StageID = 0
	}
}

// Exists checks if an entity has a Position or is a tile layer / stage
func (w *World) Exists(id EntityID) bool {
	return w.Position.Has(id) || w.TileLayer.Has(id) || w.StageState.Has(id)
}

// MustPlayer returns the player entity. A world without a player is a setup
// error and panics.
func (w *World) MustPlayer() EntityID {
	if w.PlayerID == 0 || !w.Player.Has(w.PlayerID) {
		panic("ecs: world has no player entity")
	}
	return w.PlayerID
}

// MustStage returns the stage state singleton, panicking when absent
func (w *World) MustStage() *StageState {
	s, ok := w.StageState.Get(w.StageID)
	if !ok {
		panic("ecs: world has no stage state")
	}
	return s
}

// mustGet fetches a component the caller's query already guaranteed
func mustGet[T any](s *Store[T], id EntityID, name string) *T {
	p, ok := s.Get(id)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %d has no %s", id, name))
	}
	return p
}

// Frame returns the number of completed pipeline steps
func (w *World) Frame() uint64 {
	return w.frame
}
