package board

import (
	"fmt"
	"math"
)

// Tile addresses one arena cell by (column, row).
type Tile struct {
	X int
	Y int
}

// Mapper converts between capture-region pixel coordinates and the
// fixed arena grid. Pure given the region size; the tile size is
// cached at construction.
type Mapper struct {
	w, h         int
	tileW, tileH float64
}

// NewMapper derives the tile size from the capture-region dimensions.
func NewMapper(w, h int) (*Mapper, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("board: invalid region size w=%d h=%d", w, h)
	}
	return &Mapper{
		w:     w,
		h:     h,
		tileW: float64(w) / float64(ArenaWidth),
		tileH: float64(h) / float64(ArenaHeight),
	}, nil
}

// Region returns the pixel dimensions the mapper was built for.
func (m *Mapper) Region() (w, h int) { return m.w, m.h }

// TileSize returns the pixel size of one tile.
func (m *Mapper) TileSize() (tw, th float64) { return m.tileW, m.tileH }

// ToTile maps a region-local pixel coordinate to its tile. Reports
// false for coordinates outside [0,W]x[0,H]. Indices are clamped to
// the grid to absorb rounding at the far edge.
func (m *Mapper) ToTile(px, py float64) (Tile, bool) {
	if px < 0 || px > float64(m.w) || py < 0 || py > float64(m.h) {
		return Tile{}, false
	}
	tx := int(math.Floor(px / m.tileW))
	ty := int(math.Floor(py / m.tileH))
	if tx >= ArenaWidth {
		tx = ArenaWidth - 1
	}
	if ty >= ArenaHeight {
		ty = ArenaHeight - 1
	}
	return Tile{X: tx, Y: ty}, true
}

// ToPixelCenter returns the centroid pixel of a tile. Reports false
// for tile indices outside the grid.
func (m *Mapper) ToPixelCenter(t Tile) (px, py int, ok bool) {
	if t.X < 0 || t.X >= ArenaWidth || t.Y < 0 || t.Y >= ArenaHeight {
		return 0, 0, false
	}
	px = int(math.Floor((float64(t.X) + 0.5) * m.tileW))
	py = int(math.Floor((float64(t.Y) + 0.5) * m.tileH))
	return px, py, true
}
