package overlay

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/coltonmorris/zone-map/internal/mapper"
)

// Grid lines slightly off-screen are kept so panning stays continuous;
// anything beyond this normalized band is culled.
const (
	lineCullMin = -0.5
	lineCullMax = 1.5
)

// maxLabeledSpan is the widest visible tile span (per axis) that still
// gets tile index labels on a continent view. Wider views would produce an
// unreadable label storm.
const maxLabeledSpan = 15

// aggregateGridLines produces the debug overlay: tile boundary lines in
// normalized space and tile index labels at tile centers. Independent of
// region data.
func (e *Engine) aggregateGridLines(m *mapper.Mapper, canvasW, canvasH float64, topLevel bool) ([]GridLine, []Label) {
	minRow, maxRow, minCol, maxCol := m.VisibleTileRange(1)

	var lines []GridLine
	for t := minRow; t <= maxRow+1; t++ {
		pos := m.NormYFromWorldX(mapper.TileBoundaryWorld(t))
		if pos >= lineCullMin && pos <= lineCullMax {
			lines = append(lines, GridLine{Vertical: false, Pos: pos})
		}
	}
	for t := minCol; t <= maxCol+1; t++ {
		pos := m.NormXFromWorldY(mapper.TileBoundaryWorld(t))
		if pos >= lineCullMin && pos <= lineCullMax {
			lines = append(lines, GridLine{Vertical: true, Pos: pos})
		}
	}

	if topLevel && (maxRow-minRow > maxLabeledSpan || maxCol-minCol > maxLabeledSpan) {
		return lines, nil
	}

	var labels []Label
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			n := r2.Point{
				X: m.NormXFromWorldY(mapper.TileCenterWorld(col)),
				Y: m.NormYFromWorldX(mapper.TileCenterWorld(row)),
			}
			if n.X < 0 || n.X > 1 || n.Y < 0 || n.Y > 1 {
				continue
			}
			labels = append(labels, Label{
				Pos:  mapper.PixelFromNormalized(n, canvasW, canvasH),
				Text: fmt.Sprintf("%d,%d", row, col),
			})
		}
	}
	return lines, labels
}
