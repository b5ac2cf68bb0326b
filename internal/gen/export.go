package gen

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/coltonmorris/zone-map/internal/area"
	"github.com/coltonmorris/zone-map/internal/codec"
	"github.com/coltonmorris/zone-map/internal/grid"
)

// Continent accumulates one continent's scanned tiles.
type Continent struct {
	Name  string
	Tiles map[int][]uint32 // tile key → 256 area IDs
	Found map[uint32]struct{}
}

// BuildContinent scans a directory of root ADT files and collects the
// per-tile area IDs for one continent. Files that are not root ADTs are
// ignored; a malformed ADT fails the build.
func BuildContinent(dir, name string) (*Continent, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	c := &Continent{
		Name:  name,
		Tiles: make(map[int][]uint32),
		Found: make(map[uint32]struct{}),
	}

	parsed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		_, col, row, ok := ParseADTName(entry.Name())
		if !ok {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		ids, err := ScanAreaIDs(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", entry.Name(), err)
		}
		if ids == nil {
			continue
		}
		for _, id := range ids {
			if id != 0 {
				c.Found[id] = struct{}{}
			}
		}
		c.Tiles[grid.TileKey(row, col)] = ids
		parsed++
	}

	slog.Info("scanned continent", "continent", name, "tiles", parsed, "areas", len(c.Found))
	return c, nil
}

// EncodedTiles converts the raw area-ID tiles to blob text.
func (c *Continent) EncodedTiles() map[int]string {
	out := make(map[int]string, len(c.Tiles))
	for key, ids := range c.Tiles {
		raw := make([]byte, grid.TileBytes)
		for i, id := range ids {
			binary.LittleEndian.PutUint32(raw[i*4:], id)
		}
		out[key] = codec.Encode(raw)
	}
	return out
}

type tileGridFile struct {
	Name         string            `json:"name"`
	TileSize     int               `json:"tileSize"`
	TilesPerSide int               `json:"tilesPerSide"`
	Tiles        map[string]string `json:"tiles"`
}

type areaInfoFileEntry struct {
	Name             string     `json:"name"`
	ParentID         uint32     `json:"parentId"`
	RootParentID     uint32     `json:"rootParentId"`
	ExplorationLevel int        `json:"explorationLevel"`
	Color            [3]float64 `json:"color"`
	NeighborCount    int        `json:"neighborCount"`
}

type hierarchyFileEntry struct {
	Name     string            `json:"name"`
	Children map[string]string `json:"children"`
}

type viewAreaFileEntry struct {
	AreaID uint32 `json:"areaId"`
	Name   string `json:"name"`
}

// WriteTileGrid writes one continent's tile table as <Name>_tiles.json.
func WriteTileGrid(path string, c *Continent) error {
	tiles := make(map[string]string, len(c.Tiles))
	for key, blob := range c.EncodedTiles() {
		tiles[strconv.Itoa(key)] = blob
	}
	return writeJSON(path, tileGridFile{
		Name:         c.Name,
		TileSize:     grid.CellsPerSide,
		TilesPerSide: grid.TilesPerSide,
		Tiles:        tiles,
	})
}

// WriteAreaInfo writes area_info.json for every found area.
func WriteAreaInfo(path string, found map[uint32]struct{}, areas map[uint32]AreaRow, colors map[uint32]area.RGB, graph NeighborGraph) error {
	out := make(map[string]areaInfoFileEntry, len(found))
	for id := range found {
		if id == 0 {
			continue
		}
		entry := areaInfoFileEntry{
			Name:          fmt.Sprintf("Unknown_%d", id),
			RootParentID:  id,
			Color:         [3]float64{0.5, 0.5, 0.5},
			NeighborCount: graph.Degree(id),
		}
		if row, ok := areas[id]; ok {
			entry.Name = row.Name
			entry.ParentID = row.ParentID
			entry.RootParentID = RootParent(id, areas)
			entry.ExplorationLevel = row.ExplorationLevel
		}
		if c, ok := colors[id]; ok {
			entry.Color = [3]float64{c.R, c.G, c.B}
		}
		out[strconv.FormatUint(uint64(id), 10)] = entry
	}
	return writeJSON(path, out)
}

// WriteHierarchy writes area_hierarchy.json, grouping found areas by their
// root parent.
func WriteHierarchy(path string, found map[uint32]struct{}, areas map[uint32]AreaRow) error {
	grouped := make(map[uint32]map[string]string)
	for id := range found {
		if id == 0 {
			continue
		}
		root := RootParent(id, areas)
		if grouped[root] == nil {
			grouped[root] = make(map[string]string)
		}
		grouped[root][strconv.FormatUint(uint64(id), 10)] = areaName(id, areas)
	}

	out := make(map[string]hierarchyFileEntry, len(grouped))
	for root, children := range grouped {
		out[strconv.FormatUint(uint64(root), 10)] = hierarchyFileEntry{
			Name:     areaName(root, areas),
			Children: children,
		}
	}
	slog.Info("built area hierarchy", "roots", len(out), "areas", len(found))
	return writeJSON(path, out)
}

// WriteMapToArea writes map_to_area.json.
func WriteMapToArea(path string, entries []MapEntry) error {
	out := make(map[string]viewAreaFileEntry, len(entries))
	for _, e := range entries {
		out[strconv.Itoa(e.MapID)] = viewAreaFileEntry{AreaID: e.AreaID, Name: e.ZoneName}
	}
	return writeJSON(path, out)
}

func areaName(id uint32, areas map[uint32]AreaRow) string {
	if row, ok := areas[id]; ok {
		return row.Name
	}
	return fmt.Sprintf("Unknown_%d", id)
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
