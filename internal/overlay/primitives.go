package overlay

import "github.com/golang/geo/r2"

// RGBA is a fill/line color with components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// FillRect is one cell's colored rectangle in canvas pixel space.
type FillRect struct {
	Rect  r2.Rect
	Color RGBA
}

// GridLine is a tile-boundary line in normalized viewport space. The
// renderer extends it across the full canvas on the other axis.
type GridLine struct {
	Vertical bool    // vertical lines mark tile columns, horizontal mark rows
	Pos      float64 // normalized position on the crossing axis
}

// Label is a text placement in canvas pixel space.
type Label struct {
	Pos  r2.Point
	Text string
}

// Frame is the complete draw output of one viewport update. It is handed
// to the host renderer as-is and persists until the next successful update.
type Frame struct {
	Fills      []FillRect
	Lines      []GridLine
	Labels     []Label // area name labels at region centroids
	TileLabels []Label // tile index labels for the debug grid
}
