package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/vec"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Velocity)
	assert.NotNil(t, w.Player)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Position.Set(id1, NewPosition(vec.New(100, 200)))

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	cfg := DefaultPhysicsConfig()
	id := SpawnEnemy(w, vec.New(10, 20), cfg)

	require.True(t, w.Exists(id))

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	assert.False(t, w.Velocity.Has(id))
	assert.False(t, w.RectBody.Has(id))
	assert.False(t, w.Enemy.Has(id))
	assert.False(t, w.EnemyAnimation.Has(id))
}

func TestDestroyEntity_ClearsSingletons(t *testing.T) {
	w := NewWorld()
	cfg := DefaultPhysicsConfig()
	SpawnStage(w, 1, nil, cfg)
	id := SpawnPlayer(w, cfg)

	w.DestroyEntity(id)
	assert.Equal(t, EntityID(0), w.PlayerID)
	assert.Panics(t, func() { w.MustPlayer() })

	w.DestroyEntity(w.StageID)
	assert.Panics(t, func() { w.MustStage() })
}

func TestStore_ReferenceSemantics(t *testing.T) {
	s := NewStore[Velocity]()
	s.Set(7, Velocity{Vec2: vec.New(1, 0)})

	v, ok := s.Get(7)
	require.True(t, ok)
	v.X = 5

	again, _ := s.Get(7)
	assert.Equal(t, 5.0, again.X, "mutation through the reference must be visible")
	assert.Equal(t, 1, s.Len())

	s.Delete(7)
	_, ok = s.Get(7)
	assert.False(t, ok)
}

func TestJoin(t *testing.T) {
	a := NewStore[Position]()
	b := NewStore[Velocity]()
	c := NewStore[Player]()

	for _, id := range []EntityID{5, 1, 3, 9} {
		a.Set(id, Position{})
	}
	for _, id := range []EntityID{9, 3, 4} {
		b.Set(id, Velocity{})
	}
	c.Set(9, Player{})

	assert.Equal(t, []EntityID{1, 3, 5, 9}, Join(a))
	assert.Equal(t, []EntityID{3, 9}, Join(a, b))
	assert.Equal(t, []EntityID{9}, Join(a, b, c))
	assert.Empty(t, Join(NewStore[Position](), b))
}

func TestDrainEvents(t *testing.T) {
	w := NewWorld()
	cfg := DefaultPhysicsConfig()
	SpawnStage(w, 1, nil, cfg)

	w.emit(EventCoinCollected, 3)
	w.emit(EventGoalReached, 4)

	events := w.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventCoinCollected, events[0].Kind)
	assert.Equal(t, 3, events[0].Lives)
	assert.Equal(t, "goal_reached", events[1].Kind.String())
	assert.Empty(t, w.DrainEvents())
}

func TestSpawnStage_SpawnsEnemies(t *testing.T) {
	w := NewWorld()
	cfg := DefaultPhysicsConfig()

	init := []vec.Vec2{vec.New(120, 80), vec.New(200, 80)}
	SpawnStage(w, 2, init, cfg)

	stage := w.MustStage()
	assert.Equal(t, 2, stage.ID)
	assert.Equal(t, cfg.Lives, stage.Lives)
	assert.InDelta(t, cfg.TimeLimit, stage.TimeRemaining, 1e-9)
	assert.Equal(t, 2, w.Enemy.Len())

	for _, id := range w.Enemy.IDs() {
		vel, _ := w.Velocity.Get(id)
		body, _ := w.RectBody.Get(id)
		assert.Less(t, vel.X, 0.0, "enemies start walking left")
		assert.True(t, body.FlipX)
	}

	// The recorded positions are a copy
	init[0] = vec.New(0, 0)
	assert.Equal(t, vec.New(120, 80), stage.InitEnemyPositions[0])
}
