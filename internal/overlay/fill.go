package overlay

import (
	"log/slog"

	"github.com/golang/geo/r2"

	"github.com/coltonmorris/zone-map/internal/grid"
	"github.com/coltonmorris/zone-map/internal/mapper"
)

// cellOverlap scales each cell rectangle slightly past its footprint so
// adjacent fills meet without hairline seams.
const cellOverlap = 1.05

// minLabelCells is the smallest per-area cell count that earns a label;
// single-cell slivers stay unlabeled to reduce clutter.
const minLabelCells = 2

// centroid accumulates the pixel positions of one area's matching cells.
type centroid struct {
	sumX, sumY float64
	count      int
}

// aggregateFills runs the two-pass scan over every tile in the grid. Pass
// one only counts matching cells for diagnostics; pass two emits one fill
// rectangle per matching cell and accumulates per-area centroids for label
// placement.
func (e *Engine) aggregateFills(
	g *gridEntry,
	gridName string,
	m *mapper.Mapper,
	canvasW, canvasH float64,
	valid map[uint32]struct{},
) ([]FillRect, []Label) {
	if len(valid) == 0 {
		return nil, nil
	}

	// Pass 1: count.
	matched := 0
	for key := range g.tiles {
		buf, ok := e.decodedTile(g, key)
		if !ok {
			continue
		}
		for row := 0; row < grid.CellsPerSide; row++ {
			for col := 0; col < grid.CellsPerSide; col++ {
				id := grid.AreaID(buf, row, col)
				if id == 0 {
					continue
				}
				if _, in := valid[id]; in {
					matched++
				}
			}
		}
	}
	if !e.opts.Silent {
		slog.Debug("fill scan", "grid", gridName, "areas", len(valid), "matched_cells", matched)
	}

	// Pass 2: draw.
	cellW, cellH := m.CellSizeNormalized()
	sizePx := r2.Point{
		X: cellW * canvasW * cellOverlap,
		Y: cellH * canvasH * cellOverlap,
	}

	fills := make([]FillRect, 0, matched)
	centroids := make(map[uint32]*centroid)
	for key := range g.tiles {
		buf, ok := e.decodedTile(g, key)
		if !ok {
			continue
		}
		tileRow, tileCol := grid.TileRowCol(key)
		for row := 0; row < grid.CellsPerSide; row++ {
			for col := 0; col < grid.CellsPerSide; col++ {
				id := grid.AreaID(buf, row, col)
				if id == 0 {
					continue
				}
				if _, in := valid[id]; !in {
					continue
				}

				world := r2.Point{
					X: mapper.CellCenterWorld(tileRow, row),
					Y: mapper.CellCenterWorld(tileCol, col),
				}
				px := mapper.PixelFromNormalized(m.NormalizedFromWorld(world), canvasW, canvasH)

				c := e.colors.ColorOf(id)
				fills = append(fills, FillRect{
					Rect:  r2.RectFromCenterSize(px, sizePx),
					Color: RGBA{R: c.R, G: c.G, B: c.B, A: e.opts.FillAlpha},
				})

				acc := centroids[id]
				if acc == nil {
					acc = &centroid{}
					centroids[id] = acc
				}
				acc.sumX += px.X
				acc.sumY += px.Y
				acc.count++
			}
		}
	}

	labels := make([]Label, 0, len(centroids))
	for id, acc := range centroids {
		if acc.count < minLabelCells {
			continue
		}
		pos := r2.Point{X: acc.sumX / float64(acc.count), Y: acc.sumY / float64(acc.count)}
		if pos.X < 0 || pos.X > canvasW || pos.Y < 0 || pos.Y > canvasH {
			continue
		}
		labels = append(labels, Label{Pos: pos, Text: e.labelText(id)})
	}
	return fills, labels
}

// labelText derives the label for an area: its display name, with a
// trailing marker when exploring it grants experience.
func (e *Engine) labelText(id uint32) string {
	text := e.tables.Name(id)
	if info, ok := e.tables.Info[id]; ok && info.ExplorationLevel != 0 {
		text += "*"
	}
	return text
}
