package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/domain/collision"
)

// ErrUnknownLayer is returned for a stage layer with an unrecognised kind
var ErrUnknownLayer = errors.New("unknown layer kind")

// Layer kinds
const (
	LayerBackground = "background" // drawn, never collided
	LayerSolid      = "solid"
	LayerCoins      = "coins" // occupied cells become coins
	LayerGoal       = "goal"
)

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID      int              `yaml:"id"`
	Name    string           `yaml:"name"`
	Spawn   PositionConfig   `yaml:"spawn"`
	Layers  []LayerConfig    `yaml:"layers"`
	Enemies []PositionConfig `yaml:"enemies"`
	Coins   []PositionConfig `yaml:"coins"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayerConfig is one tile grid. Rows use '.' for empty cells.
type LayerConfig struct {
	ID            int      `yaml:"id"`
	Kind          string   `yaml:"kind"`
	SurfaceHeight int      `yaml:"surfaceHeight"` // solid layers; defaults to a full tile
	PixelSize     int      `yaml:"pixelSize"`     // goal layers; defaults to a full tile
	Rows          []string `yaml:"rows"`
}

// Validate checks layer kinds, ids and per-layer heights
func (s *StageConfig) Validate() error {
	seen := make(map[int]bool, len(s.Layers))
	for i, l := range s.Layers {
		switch l.Kind {
		case LayerBackground, LayerSolid, LayerCoins, LayerGoal:
		default:
			return fmt.Errorf("layer %d (%q): %w", i, l.Kind, ErrUnknownLayer)
		}
		if seen[l.ID] {
			return fmt.Errorf("layer %d: duplicate id %d", i, l.ID)
		}
		seen[l.ID] = true
		if l.SurfaceHeight < 0 || l.SurfaceHeight > collision.TileSize {
			return fmt.Errorf("layer %d: surfaceHeight %d out of range 0..%d", i, l.SurfaceHeight, collision.TileSize)
		}
		if l.PixelSize < 0 || l.PixelSize > collision.TileSize {
			return fmt.Errorf("layer %d: pixelSize %d out of range 0..%d", i, l.PixelSize, collision.TileSize)
		}
	}
	return nil
}
