package gen

import "github.com/coltonmorris/zone-map/internal/grid"

// NeighborGraph records which areas touch each other on the cell grid.
// Edges are bidirectional; area 0 and self-edges are never recorded.
type NeighborGraph map[uint32]map[uint32]struct{}

func (g NeighborGraph) add(a, b uint32) {
	if a == 0 || b == 0 || a == b {
		return
	}
	if g[a] == nil {
		g[a] = make(map[uint32]struct{})
	}
	if g[b] == nil {
		g[b] = make(map[uint32]struct{})
	}
	g[a][b] = struct{}{}
	g[b][a] = struct{}{}
}

// Merge copies every edge of other into g.
func (g NeighborGraph) Merge(other NeighborGraph) {
	for a, peers := range other {
		for b := range peers {
			g.add(a, b)
		}
	}
}

// Degree returns the number of distinct neighbors of an area.
func (g NeighborGraph) Degree(id uint32) int {
	return len(g[id])
}

// Neighbors reports whether a and b share a boundary.
func (g NeighborGraph) Neighbors(a, b uint32) bool {
	_, ok := g[a][b]
	return ok
}

// AddTileNeighbors records adjacencies between the 256 cells of one tile:
// horizontal and vertical 4-adjacency.
func (g NeighborGraph) AddTileNeighbors(ids []uint32) {
	if len(ids) < grid.CellsPerTile {
		return
	}
	for row := 0; row < grid.CellsPerSide; row++ {
		for col := 0; col < grid.CellsPerSide-1; col++ {
			i := row*grid.CellsPerSide + col
			g.add(ids[i], ids[i+1])
		}
	}
	for row := 0; row < grid.CellsPerSide-1; row++ {
		for col := 0; col < grid.CellsPerSide; col++ {
			i := row*grid.CellsPerSide + col
			g.add(ids[i], ids[i+grid.CellsPerSide])
		}
	}
}

// AddSeamNeighbors records adjacencies across tile boundaries: the last
// cell column of each tile against the first column of its right
// neighbor, and the last cell row against the top row of the tile below.
func (g NeighborGraph) AddSeamNeighbors(tiles map[int][]uint32) {
	for key, ids := range tiles {
		row, col := grid.TileRowCol(key)

		if col < grid.TilesPerSide-1 {
			if right, ok := tiles[grid.TileKey(row, col+1)]; ok {
				for y := 0; y < grid.CellsPerSide; y++ {
					g.add(ids[y*grid.CellsPerSide+grid.CellsPerSide-1], right[y*grid.CellsPerSide])
				}
			}
		}
		if row < grid.TilesPerSide-1 {
			if below, ok := tiles[grid.TileKey(row+1, col)]; ok {
				for x := 0; x < grid.CellsPerSide; x++ {
					g.add(ids[(grid.CellsPerSide-1)*grid.CellsPerSide+x], below[x])
				}
			}
		}
	}
}
