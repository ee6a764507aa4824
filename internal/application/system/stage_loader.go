package system

import (
	"fmt"

	"github.com/younwookim/platformer/internal/domain/collision"
	"github.com/younwookim/platformer/internal/domain/tilemap"
	"github.com/younwookim/platformer/internal/domain/vec"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// coinCellStride is the spacing, in cells, at which coin layers are sampled.
// A coin covers 2x2 tiles.
const coinCellStride = 2

// DrawLayer is a tile layer in back-to-front order
type DrawLayer struct {
	ID   int
	Kind string
}

// Stage is a loaded stage: its tile grids plus the world populated for it
type Stage struct {
	Name   string
	Tiles  *tilemap.Map
	World  *ecs.World
	Layers []DrawLayer
}

// LoadStage builds the tile grids and spawns every entity the stage needs
func LoadStage(cfg *config.StageConfig, tuning ecs.PhysicsConfig) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", cfg.Name, err)
	}

	w := ecs.NewWorld()
	tiles := tilemap.NewMap()
	st := &Stage{Name: cfg.Name, Tiles: tiles, World: w}

	for _, lc := range cfg.Layers {
		layer := tilemap.ParseLayer(lc.ID, lc.Rows)
		tiles.Add(layer)
		st.Layers = append(st.Layers, DrawLayer{ID: lc.ID, Kind: lc.Kind})

		switch lc.Kind {
		case config.LayerBackground:
			ecs.SpawnTileLayer(w, lc.ID, false, 0)
		case config.LayerSolid:
			ecs.SpawnTileLayer(w, lc.ID, true, orFullTile(lc.SurfaceHeight))
		case config.LayerGoal:
			ecs.SpawnGoalLayer(w, lc.ID, orFullTile(lc.PixelSize))
		case config.LayerCoins:
			spawnCoinLayer(w, layer, tuning.CoinRadius)
		}
	}

	for _, c := range cfg.Coins {
		ecs.SpawnCoin(w, vec.New(c.X, c.Y), tuning.CoinRadius)
	}

	enemies := make([]vec.Vec2, 0, len(cfg.Enemies))
	for _, e := range cfg.Enemies {
		enemies = append(enemies, vec.New(e.X, e.Y))
	}
	ecs.SpawnStage(w, cfg.ID, enemies, tuning)
	ecs.SpawnPlayer(w, tuning)

	return st, nil
}

// spawnCoinLayer places a coin at every occupied sample cell
func spawnCoinLayer(w *ecs.World, l *tilemap.Layer, radius float64) {
	for ty := 0; ty < l.Height; ty += coinCellStride {
		for tx := 0; tx < l.Width; tx += coinCellStride {
			if !l.Occupied(tx, ty) {
				continue
			}
			at := vec.New(float64(tx*collision.TileSize), float64(ty*collision.TileSize))
			ecs.SpawnCoin(w, at, radius)
		}
	}
}

func orFullTile(v int) int {
	if v == 0 {
		return collision.TileSize
	}
	return v
}
