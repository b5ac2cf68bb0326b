package grid

import "encoding/binary"

// Grid constants. A continent is subdivided into 64×64 tiles, each tile into
// 16×16 cells; every cell stores one 4-byte little-endian area ID.
const (
	TilesPerSide = 64
	CellsPerSide = 16

	CellsPerTile = CellsPerSide * CellsPerSide // 256
	TileBytes    = CellsPerTile * 4            // 1024

	MaxTileKey = TilesPerSide*TilesPerSide - 1 // 4095
)

// TileKey packs a tile (row, col) pair into the single integer key used by
// the tile tables: key = row*64 + col.
func TileKey(row, col int) int {
	return row*TilesPerSide + col
}

// TileRowCol is the inverse of TileKey.
func TileRowCol(key int) (row, col int) {
	return key / TilesPerSide, key % TilesPerSide
}

// IsValidTileKey reports whether key names a tile inside the 64×64 grid.
func IsValidTileKey(key int) bool {
	return key >= 0 && key <= MaxTileKey
}

// AreaID reads the area ID stored for cell (cellRow, cellCol) out of a
// decoded tile buffer. Returns 0 (no area) for any cell outside the 16×16
// grid and for a nil or undersized buffer; it never panics.
func AreaID(buf []byte, cellRow, cellCol int) uint32 {
	if cellRow < 0 || cellRow >= CellsPerSide || cellCol < 0 || cellCol >= CellsPerSide {
		return 0
	}
	offset := (cellRow*CellsPerSide + cellCol) * 4
	if offset+4 > len(buf) {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[offset:])
}
