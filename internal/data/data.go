// Package data loads the generated JSON data files: per-continent tile
// grids, the area info table, the area hierarchy, and the view-to-area
// mapping.
package data

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/coltonmorris/zone-map/internal/area"
	"github.com/coltonmorris/zone-map/internal/grid"
)

// TileGridFile mirrors a <continent>_tiles.json file.
type TileGridFile struct {
	Name         string            `json:"name"`
	TileSize     int               `json:"tileSize"`
	TilesPerSide int               `json:"tilesPerSide"`
	Tiles        map[string]string `json:"tiles"`
}

type areaInfoEntry struct {
	Name             string     `json:"name"`
	ParentID         uint32     `json:"parentId"`
	RootParentID     uint32     `json:"rootParentId"`
	ExplorationLevel int        `json:"explorationLevel"`
	Color            *[3]float64 `json:"color,omitempty"`
	NeighborCount    int        `json:"neighborCount"`
}

type hierarchyEntry struct {
	Name     string            `json:"name"`
	Children map[string]string `json:"children"`
}

type viewAreaEntry struct {
	AreaID uint32 `json:"areaId"`
	Name   string `json:"name"`
}

// LoadTileGrid reads one continent's tile table. Keys outside the 64×64
// grid are rejected.
func LoadTileGrid(path string) (string, map[int]string, error) {
	var file TileGridFile
	if err := readJSON(path, &file); err != nil {
		return "", nil, err
	}
	if file.TilesPerSide != 0 && file.TilesPerSide != grid.TilesPerSide {
		return "", nil, fmt.Errorf("%s: unsupported tilesPerSide %d", path, file.TilesPerSide)
	}

	tiles := make(map[int]string, len(file.Tiles))
	for keyStr, blob := range file.Tiles {
		key, err := strconv.Atoi(keyStr)
		if err != nil {
			return "", nil, fmt.Errorf("%s: bad tile key %q: %w", path, keyStr, err)
		}
		if !grid.IsValidTileKey(key) {
			return "", nil, fmt.Errorf("%s: tile key %d outside grid", path, key)
		}
		tiles[key] = blob
	}

	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), "_tiles.json")
	}
	slog.Info("loaded tile grid", "grid", name, "tiles", len(tiles))
	return name, tiles, nil
}

// LoadAreaInfo reads area_info.json.
func LoadAreaInfo(path string) (map[uint32]area.Info, error) {
	var raw map[string]areaInfoEntry
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}

	info := make(map[uint32]area.Info, len(raw))
	for idStr, entry := range raw {
		id, err := parseAreaID(idStr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rec := area.Info{
			Name:             entry.Name,
			ParentID:         entry.ParentID,
			RootParentID:     entry.RootParentID,
			ExplorationLevel: entry.ExplorationLevel,
			NeighborCount:    entry.NeighborCount,
		}
		if entry.Color != nil {
			rec.Color = &area.RGB{R: entry.Color[0], G: entry.Color[1], B: entry.Color[2]}
		}
		info[id] = rec
	}
	slog.Info("loaded area info", "count", len(info))
	return info, nil
}

// LoadHierarchy reads area_hierarchy.json.
func LoadHierarchy(path string) (map[uint32]area.Hierarchy, error) {
	var raw map[string]hierarchyEntry
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}

	hierarchy := make(map[uint32]area.Hierarchy, len(raw))
	for idStr, entry := range raw {
		root, err := parseAreaID(idStr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		children := make(map[uint32]string, len(entry.Children))
		for childStr, childName := range entry.Children {
			child, err := parseAreaID(childStr)
			if err != nil {
				return nil, fmt.Errorf("%s: root %d: %w", path, root, err)
			}
			children[child] = childName
		}
		hierarchy[root] = area.Hierarchy{Name: entry.Name, Children: children}
	}
	slog.Info("loaded area hierarchy", "roots", len(hierarchy))
	return hierarchy, nil
}

// LoadViewToArea reads map_to_area.json.
func LoadViewToArea(path string) (map[int]area.ViewArea, error) {
	var raw map[string]viewAreaEntry
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}

	views := make(map[int]area.ViewArea, len(raw))
	for idStr, entry := range raw {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("%s: bad view id %q: %w", path, idStr, err)
		}
		views[id] = area.ViewArea{AreaID: entry.AreaID, Name: entry.Name}
	}
	slog.Info("loaded view mapping", "views", len(views))
	return views, nil
}

// LoadTables loads the three area tables from a data directory. A missing
// file degrades to a nil table (the engine falls back per its contract)
// rather than failing the whole load.
func LoadTables(dir string) *area.Tables {
	tables := &area.Tables{}

	if info, err := LoadAreaInfo(filepath.Join(dir, "area_info.json")); err != nil {
		slog.Warn("area info unavailable", "err", err)
	} else {
		tables.Info = info
	}
	if hierarchy, err := LoadHierarchy(filepath.Join(dir, "area_hierarchy.json")); err != nil {
		slog.Warn("area hierarchy unavailable", "err", err)
	} else {
		tables.Hierarchy = hierarchy
	}
	if views, err := LoadViewToArea(filepath.Join(dir, "map_to_area.json")); err != nil {
		slog.Warn("view mapping unavailable", "err", err)
	} else {
		tables.ViewToArea = views
	}
	return tables
}

// FindTileGridFiles lists the *_tiles.json files in a data directory.
func FindTileGridFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_tiles.json"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return matches, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func parseAreaID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad area id %q: %w", s, err)
	}
	return uint32(id), nil
}
