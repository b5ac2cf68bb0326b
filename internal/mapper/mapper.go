// Package mapper converts between normalized viewport space ([0,1]×[0,1]),
// world space, and discrete tile/cell indices. World space is sampled from
// the host at the two viewport corners; the transform between the two
// spaces is linear per axis.
package mapper

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/coltonmorris/zone-map/internal/grid"
)

const (
	// TileSize is the tile edge length in world units.
	TileSize = 533.33333

	// HalfGrid is the world coordinate of the grid's zero edge: the 64-tile
	// grid spans [-HalfGrid, HalfGrid] on both world axes.
	HalfGrid = (grid.TilesPerSide / 2) * TileSize
)

// Mapper holds the world-space samples for one viewport state. The world's
// vertical (row) axis runs along the viewport's horizontal axis and vice
// versa, so normalized X is driven by world Y and normalized Y by world X.
type Mapper struct {
	p00 r2.Point // world position at normalized (0,0)
	p11 r2.Point // world position at normalized (1,1)
}

// New builds a mapper from the two corner samples. Returns ok=false when
// the samples coincide on either axis; such a degenerate viewport cannot
// be mapped and the caller must skip the update.
func New(p00, p11 r2.Point) (*Mapper, bool) {
	if p00.X == p11.X || p00.Y == p11.Y {
		return nil, false
	}
	return &Mapper{p00: p00, p11: p11}, true
}

// WorldFromNormalized maps a normalized viewport point to world space.
func (m *Mapper) WorldFromNormalized(n r2.Point) r2.Point {
	return r2.Point{
		X: m.p00.X + n.Y*(m.p11.X-m.p00.X),
		Y: m.p00.Y + n.X*(m.p11.Y-m.p00.Y),
	}
}

// NormalizedFromWorld maps a world point to normalized viewport space.
func (m *Mapper) NormalizedFromWorld(w r2.Point) r2.Point {
	return r2.Point{
		X: m.NormXFromWorldY(w.Y),
		Y: m.NormYFromWorldX(w.X),
	}
}

// NormXFromWorldY gives the normalized horizontal position of a world Y
// coordinate (the axis-swapped basis).
func (m *Mapper) NormXFromWorldY(wy float64) float64 {
	return (wy - m.p00.Y) / (m.p11.Y - m.p00.Y)
}

// NormYFromWorldX gives the normalized vertical position of a world X
// coordinate.
func (m *Mapper) NormYFromWorldX(wx float64) float64 {
	return (wx - m.p00.X) / (m.p11.X - m.p00.X)
}

// PixelFromNormalized scales a normalized point to canvas pixels.
func PixelFromNormalized(n r2.Point, canvasW, canvasH float64) r2.Point {
	return r2.Point{X: n.X * canvasW, Y: n.Y * canvasH}
}

// TileIndex gives the tile index containing a world coordinate, clamped to
// the grid. World coordinates decrease as tile indices increase.
func TileIndex(w float64) int {
	t := int(math.Floor((HalfGrid - w) / TileSize))
	if t < 0 {
		return 0
	}
	if t >= grid.TilesPerSide {
		return grid.TilesPerSide - 1
	}
	return t
}

// TileBoundaryWorld gives the world coordinate of the leading edge of tile t.
func TileBoundaryWorld(t int) float64 {
	return HalfGrid - float64(t)*TileSize
}

// TileCenterWorld gives the world coordinate of the center of tile t.
func TileCenterWorld(t int) float64 {
	return HalfGrid - (float64(t)+0.5)*TileSize
}

// CellCenterWorld gives the world coordinate of the center of cell c within
// tile t on one axis.
func CellCenterWorld(t, c int) float64 {
	return HalfGrid - (float64(t)+0.5+(float64(c)-7.5)/grid.CellsPerSide)*TileSize
}

// CellSizeNormalized gives one cell's footprint in normalized space.
func (m *Mapper) CellSizeNormalized() (w, h float64) {
	cell := TileSize / grid.CellsPerSide
	w = cell / math.Abs(m.p11.Y-m.p00.Y)
	h = cell / math.Abs(m.p11.X-m.p00.X)
	return w, h
}

// VisibleTileRange gives the tile rows and columns overlapping the
// viewport, widened by margin tiles and clamped to the grid.
func (m *Mapper) VisibleTileRange(margin int) (minRow, maxRow, minCol, maxCol int) {
	r0, r1 := TileIndex(m.p00.X), TileIndex(m.p11.X)
	c0, c1 := TileIndex(m.p00.Y), TileIndex(m.p11.Y)
	minRow, maxRow = orderedClamp(r0, r1, margin)
	minCol, maxCol = orderedClamp(c0, c1, margin)
	return minRow, maxRow, minCol, maxCol
}

func orderedClamp(a, b, margin int) (lo, hi int) {
	if a > b {
		a, b = b, a
	}
	lo = a - margin
	hi = b + margin
	if lo < 0 {
		lo = 0
	}
	if hi >= grid.TilesPerSide {
		hi = grid.TilesPerSide - 1
	}
	return lo, hi
}
