// Package tilemap provides the tile query service: fixed-size occupancy
// grids addressed by layer id and integer tile coordinates.
package tilemap

import (
	"sort"

	"github.com/younwookim/platformer/internal/domain/collision"
)

// Empty is the cell value of an unoccupied tile
const Empty uint8 = 0

// Layer is a row-major grid of tile cells. A cell value of zero is empty;
// any other value is occupied and doubles as the tile kind for rendering.
type Layer struct {
	ID     int
	Width  int
	Height int
	cells  []uint8
}

// NewLayer creates an empty layer of w x h tiles
func NewLayer(id, w, h int) *Layer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Layer{
		ID:     id,
		Width:  w,
		Height: h,
		cells:  make([]uint8, w*h),
	}
}

// ParseLayer builds a layer from text rows.
// '.', ' ' and '0' are empty; digits '1'..'9' set that tile kind;
// any other character is kind 1. Short rows are padded with empty cells.
func ParseLayer(id int, rows []string) *Layer {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	l := NewLayer(id, w, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			l.Set(x, y, kindOf(row[x]))
		}
	}
	return l
}

func kindOf(ch byte) uint8 {
	switch {
	case ch == '.' || ch == ' ' || ch == '0':
		return Empty
	case ch >= '1' && ch <= '9':
		return ch - '0'
	default:
		return 1
	}
}

func (l *Layer) inBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < l.Width && ty < l.Height
}

// Set stores a cell value. Out-of-range writes are ignored.
func (l *Layer) Set(tx, ty int, v uint8) {
	if !l.inBounds(tx, ty) {
		return
	}
	l.cells[ty*l.Width+tx] = v
}

// At returns the cell value, or Empty outside the layer
func (l *Layer) At(tx, ty int) uint8 {
	if !l.inBounds(tx, ty) {
		return Empty
	}
	return l.cells[ty*l.Width+tx]
}

// Occupied reports whether the cell holds a tile
func (l *Layer) Occupied(tx, ty int) bool {
	return l.At(tx, ty) != Empty
}

// Count returns the number of occupied cells
func (l *Layer) Count() int {
	n := 0
	for _, c := range l.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Map is a set of layers addressed by id
type Map struct {
	layers map[int]*Layer
}

var _ collision.TileQuery = (*Map)(nil)

// NewMap creates a map holding the given layers
func NewMap(layers ...*Layer) *Map {
	m := &Map{layers: make(map[int]*Layer, len(layers))}
	for _, l := range layers {
		m.Add(l)
	}
	return m
}

// Add registers a layer, replacing any layer with the same id
func (m *Map) Add(l *Layer) {
	if l == nil {
		return
	}
	m.layers[l.ID] = l
}

// Layer returns the layer with the given id
func (m *Map) Layer(id int) (*Layer, bool) {
	l, ok := m.layers[id]
	return l, ok
}

// IDs returns the layer ids in ascending order
func (m *Map) IDs() []int {
	ids := make([]int, 0, len(m.layers))
	for id := range m.layers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Occupied implements collision.TileQuery. Unknown layers and
// out-of-range cells are unoccupied.
func (m *Map) Occupied(layerID, tx, ty int) bool {
	if m == nil {
		return false
	}
	l, ok := m.layers[layerID]
	if !ok {
		return false
	}
	return l.Occupied(tx, ty)
}

// PixelSize returns the width and height in pixels of the largest layer
func (m *Map) PixelSize() (w, h int) {
	for _, l := range m.layers {
		if lw := l.Width * collision.TileSize; lw > w {
			w = lw
		}
		if lh := l.Height * collision.TileSize; lh > h {
			h = lh
		}
	}
	return w, h
}
