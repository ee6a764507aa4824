package collision

import "math"

// TileSize is the edge length of one tile cell in pixels
const TileSize = 8

// TileQuery reports whether a tile cell of a layer is occupied.
// Cells outside the layer bounds must report false.
type TileQuery interface {
	Occupied(layerID, tx, ty int) bool
}

// TileRange returns the inclusive tile index range covered by r.
// The min corner is floored and the max corner is ceiled, so a tile that only
// touches the right or bottom edge is included.
func TileRange(r Rect) (minTX, minTY, maxTX, maxTY int) {
	minTX = int(math.Floor(r.X / TileSize))
	minTY = int(math.Floor(r.Y / TileSize))
	maxTX = int(math.Ceil(r.Right() / TileSize))
	maxTY = int(math.Ceil(r.Bottom() / TileSize))
	return minTX, minTY, maxTX, maxTY
}

// Tilemap computes the contacts of r against every occupied cell of a layer.
//
// surfaceHeight is the number of pixels, from the bottom of a cell upward,
// that count as solid surface. The vertical contact band of a cell at row ty
// is [ty*8 + (8-surfaceHeight), ty*8 + 8). Bottom is set when r's bottom edge
// falls inside a band, Top when r's top edge does; both require the cell to
// overlap r horizontally. Left/Right contacts are ignored for cells whose band
// starts below r's bottom edge minus surfaceHeight, i.e. the surface r is
// standing on.
//
// A cell touched on its side with an occupied cell below it is a wall face,
// not a ceiling, and gives no Top.
func Tilemap(r Rect, tiles TileQuery, layerID, surfaceHeight int) Contacts {
	var c Contacts
	if tiles == nil {
		return c
	}

	sh := float64(surfaceHeight)
	adjustedBottom := r.Bottom() - sh
	minTX, minTY, maxTX, maxTY := TileRange(r)

	for ty := minTY; ty <= maxTY; ty++ {
		bandTop := float64(ty*TileSize) + (TileSize - sh)
		bandEnd := bandTop + sh

		for tx := minTX; tx <= maxTX; tx++ {
			if !tiles.Occupied(layerID, tx, ty) {
				continue
			}

			left := float64(tx * TileSize)
			right := left + TileSize

			var side bool
			if adjustedBottom >= bandTop {
				if r.X > left && r.X <= right {
					c.Left, side = true, true
				}
				if r.Right() >= left && r.Right() < right {
					c.Right, side = true, true
				}
			}

			if r.X < right && r.Right() > left {
				if r.Bottom() >= bandTop && r.Bottom() < bandEnd {
					c.Bottom = true
				}
				if r.Y >= bandTop && r.Y < bandEnd &&
					!(side && tiles.Occupied(layerID, tx, ty+1)) {
					c.Top = true
				}
			}
		}
	}

	return c
}
