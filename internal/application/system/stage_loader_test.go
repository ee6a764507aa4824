package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/vec"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func testStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:    7,
		Name:  "test",
		Spawn: config.PositionConfig{X: 16, Y: 8},
		Layers: []config.LayerConfig{
			{ID: 0, Kind: config.LayerBackground, Rows: []string{"..22"}},
			{ID: 1, Kind: config.LayerSolid, Rows: []string{
				"................",
				"................",
				"................",
				"................",
				"################",
			}},
			{ID: 4, Kind: config.LayerSolid, SurfaceHeight: 2, Rows: []string{"......=="}},
			{ID: 2, Kind: config.LayerCoins, Rows: []string{
				"o.oo",
				"oooo",
				"o...",
			}},
			{ID: 3, Kind: config.LayerGoal, Rows: []string{".......G"}},
		},
		Enemies: []config.PositionConfig{{X: 100, Y: 0}},
		Coins:   []config.PositionConfig{{X: 100, Y: 4}},
	}
}

func testTuning() ecs.PhysicsConfig {
	gc := &config.GameConfig{}
	phys := config.DefaultPhysicsConfig()
	ent := config.DefaultEntitiesConfig()
	gc.Physics, gc.Entities = &phys, &ent
	return Tuning(gc, config.PositionConfig{X: 16, Y: 8})
}

func TestLoadStage(t *testing.T) {
	st, err := LoadStage(testStageConfig(), testTuning())
	require.NoError(t, err)

	w := st.World
	assert.Equal(t, "test", st.Name)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, st.Tiles.IDs())

	t.Run("keeps draw order", func(t *testing.T) {
		kinds := make([]int, 0, len(st.Layers))
		for _, l := range st.Layers {
			kinds = append(kinds, l.ID)
		}
		assert.Equal(t, []int{0, 1, 4, 2, 3}, kinds)
	})

	t.Run("solid layers collide", func(t *testing.T) {
		assert.Equal(t, 2, w.TileCollidable.Len())
		heights := map[int]int{}
		for _, id := range w.TileCollidable.IDs() {
			layer, ok := w.TileLayer.Get(id)
			require.True(t, ok)
			col, _ := w.TileCollidable.Get(id)
			heights[layer.ID] = col.SurfaceHeight
		}
		assert.Equal(t, map[int]int{1: 8, 4: 2}, heights)
	})

	t.Run("goal layer defaults to a full tile", func(t *testing.T) {
		require.Equal(t, 1, w.Goal.Len())
		layer, _ := w.TileLayer.Get(w.Goal.IDs()[0])
		assert.Equal(t, 3, layer.ID)
		assert.Equal(t, 8, layer.PixelSize)
	})

	t.Run("coins sampled every other cell plus explicit", func(t *testing.T) {
		var got []vec.Vec2
		for _, id := range w.Coin.IDs() {
			p, _ := w.Position.Get(id)
			got = append(got, p.Vec2)
		}
		// (0,0), (2,0) and (0,2) in tiles; (3,0) and row 1 are skipped
		assert.ElementsMatch(t, []vec.Vec2{
			vec.New(0, 0),
			vec.New(16, 0),
			vec.New(0, 16),
			vec.New(100, 4),
		}, got)
	})

	t.Run("stage and actors", func(t *testing.T) {
		stage := w.MustStage()
		assert.Equal(t, 7, stage.ID)
		assert.Equal(t, 3, stage.Lives)
		assert.Equal(t, []vec.Vec2{vec.New(100, 0)}, stage.InitEnemyPositions)
		assert.Equal(t, 1, w.Enemy.Len())

		p, ok := w.Position.Get(w.MustPlayer())
		require.True(t, ok)
		assert.Equal(t, vec.New(16, 8), p.Vec2)
	})
}

func TestLoadStage_RejectsUnknownLayer(t *testing.T) {
	cfg := testStageConfig()
	cfg.Layers = append(cfg.Layers, config.LayerConfig{ID: 9, Kind: "lava"})

	_, err := LoadStage(cfg, testTuning())
	assert.ErrorIs(t, err, config.ErrUnknownLayer)
}

func TestLoadStage_PlayerLandsOnFloor(t *testing.T) {
	st, err := LoadStage(testStageConfig(), testTuning())
	require.NoError(t, err)

	p := ecs.NewPipeline(testTuning(), ecs.Services{Tiles: st.Tiles})
	for i := 0; i < 60; i++ {
		require.NoError(t, p.Step(st.World, ecs.Actions{}))
	}

	id := st.World.MustPlayer()
	col, _ := st.World.CollisionInfo.Get(id)
	pos, _ := st.World.Position.Get(id)
	assert.True(t, col.Bottom)
	assert.InDelta(t, 32.0, pos.Y+16, 2.0)
}
