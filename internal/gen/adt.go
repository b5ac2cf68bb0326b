// Package gen builds the overlay data files from raw world-geometry
// archives and the game's area tables: it scans root ADT terrain files for
// per-chunk area IDs, derives the area adjacency graph, assigns display
// colors, and exports the JSON tables the engine loads.
package gen

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coltonmorris/zone-map/internal/grid"
)

// ADT chunks are stored as reversed FourCC + little-endian payload size.
// The MCNK terrain-chunk header keeps its area ID at byte offset 0x34.
const (
	mcnkMagic      = "KNCM"
	mcnkAreaOffset = 0x34
)

// ParseADTName splits a root ADT filename of the form
// "<Map>_<col>_<row>.adt" into its parts. Returns ok=false for anything
// else (object/texture split files, other extensions).
func ParseADTName(name string) (mapName string, tileCol, tileRow int, ok bool) {
	base := filepath.Base(name)
	if !strings.EqualFold(filepath.Ext(base), ".adt") {
		return "", 0, 0, false
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, false
	}
	row, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, false
	}
	if col < 0 || col >= grid.TilesPerSide || row < 0 || row >= grid.TilesPerSide {
		return "", 0, 0, false
	}
	return parts[0], col, row, true
}

// ScanAreaIDs walks the chunk stream of a root ADT file and collects the
// area ID of every MCNK terrain chunk, in file order. Returns nil (no
// error) when the file holds no terrain chunks; the result is always
// padded or truncated to exactly 256 entries otherwise.
func ScanAreaIDs(data []byte) ([]uint32, error) {
	var ids []uint32

	offset := 0
	for offset+8 <= len(data) {
		magic := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		if size < 0 || offset+8+size > len(data) {
			return nil, fmt.Errorf("chunk %q at offset %d overruns file (size %d)", magic, offset, size)
		}
		if magic == mcnkMagic {
			if size < mcnkAreaOffset+4 {
				return nil, fmt.Errorf("MCNK at offset %d too short for header (size %d)", offset, size)
			}
			ids = append(ids, binary.LittleEndian.Uint32(data[offset+8+mcnkAreaOffset:]))
		}
		offset += 8 + size
	}

	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > grid.CellsPerTile {
		ids = ids[:grid.CellsPerTile]
	}
	for len(ids) < grid.CellsPerTile {
		ids = append(ids, 0)
	}
	return ids, nil
}
