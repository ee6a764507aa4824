package ecs

import (
	"testing"

	"github.com/younwookim/platformer/internal/domain/vec"
)

const benchEntities = 10_000

// benchWorld fills a world with walkers on a long floor. Every fourth entity
// is a coin instead of an enemy.
func benchWorld(b *testing.B) (*World, *mockTiles, PhysicsConfig) {
	b.Helper()

	cfg := DefaultPhysicsConfig()
	w := NewWorld()
	tiles := newMockTiles()
	tiles.fillRow(floorLayer, 12, 0, benchEntities)

	SpawnTileLayer(w, floorLayer, true, 8)
	SpawnStage(w, 1, nil, cfg)
	SpawnPlayer(w, cfg)
	for i := 0; i < benchEntities; i++ {
		at := vec.New(float64(i*16+200), 80)
		if i%4 == 1 {
			SpawnCoin(w, at, cfg.CoinRadius)
			continue
		}
		SpawnEnemy(w, at, cfg)
	}
	return w, tiles, cfg
}

// Case 1: one table
// Sum of every X

func BenchmarkStore_SingleColumn(b *testing.B) {
	w, _, _ := benchWorld(b)
	b.ResetTimer()

	var sum float64
	for n := 0; n < b.N; n++ {
		sum = 0
		for _, id := range w.Position.IDs() {
			p, _ := w.Position.Get(id)
			sum += p.X
		}
	}
	_ = sum
}

// Case 2: several tables
// Next = Position + Velocity

func BenchmarkStore_JoinMultiColumn(b *testing.B) {
	w, _, _ := benchWorld(b)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for _, id := range Join(w.Velocity, w.Position) {
			p, _ := w.Position.Get(id)
			v, _ := w.Velocity.Get(id)
			p.Next = p.Vec2.Add(v.Vec2)
		}
	}
}

// Case 3: filter by role
// Enemies only, driven by the smaller table

func BenchmarkStore_JoinFilter(b *testing.B) {
	w, _, _ := benchWorld(b)
	b.ResetTimer()

	var sum float64
	for n := 0; n < b.N; n++ {
		sum = 0
		for _, id := range Join(w.Enemy, w.Position, w.RectBody) {
			body, _ := w.RectBody.Get(id)
			sum += body.Width
		}
	}
	_ = sum
}

// Case 4: the whole frame

func BenchmarkPipeline_Step(b *testing.B) {
	w, tiles, cfg := benchWorld(b)
	p := NewPipeline(cfg, Services{Tiles: tiles})
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if err := p.Step(w, Actions{Right: n%2 == 0}); err != nil {
			b.Fatal(err)
		}
	}
}
