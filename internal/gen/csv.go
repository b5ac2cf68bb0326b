package gen

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// AreaRow is one record of the game's area table export.
type AreaRow struct {
	ID               uint32
	Name             string
	ParentID         uint32
	ExplorationLevel int
}

// MapEntry links a host view (map) identifier to its area.
type MapEntry struct {
	ZoneName string
	MapID    int
	AreaID   uint32
}

// ParseAreaTable reads the AreaTable CSV export. Rows with a malformed ID
// are skipped, matching the tolerant behavior of the table dumps.
func ParseAreaTable(r io.Reader) (map[uint32]AreaRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading area table header: %w", err)
	}
	idIdx, err := columnIndex(header, "ID")
	if err != nil {
		return nil, err
	}
	nameIdx, err := columnIndex(header, "AreaName_lang")
	if err != nil {
		return nil, err
	}
	parentIdx, err := columnIndex(header, "ParentAreaID")
	if err != nil {
		return nil, err
	}
	levelIdx, err := columnIndex(header, "ExplorationLevel")
	if err != nil {
		return nil, err
	}

	areas := make(map[uint32]AreaRow)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading area table: %w", err)
		}
		if len(record) <= max4(idIdx, nameIdx, parentIdx, levelIdx) {
			continue
		}
		id, err := strconv.ParseUint(record[idIdx], 10, 32)
		if err != nil {
			continue
		}
		parent, _ := strconv.ParseUint(record[parentIdx], 10, 32)
		level, _ := strconv.Atoi(record[levelIdx])
		areas[uint32(id)] = AreaRow{
			ID:               uint32(id),
			Name:             record[nameIdx],
			ParentID:         uint32(parent),
			ExplorationLevel: level,
		}
	}
	return areas, nil
}

// ParseMapToArea reads the mapIdToArea CSV (Zone, mapId, AreaId columns).
func ParseMapToArea(r io.Reader) ([]MapEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading map table header: %w", err)
	}
	zoneIdx, err := columnIndex(header, "Zone")
	if err != nil {
		return nil, err
	}
	mapIdx, err := columnIndex(header, "mapId")
	if err != nil {
		return nil, err
	}
	areaIdx, err := columnIndex(header, "AreaId")
	if err != nil {
		return nil, err
	}

	var entries []MapEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading map table: %w", err)
		}
		if len(record) <= max4(zoneIdx, mapIdx, areaIdx, 0) {
			continue
		}
		mapID, err := strconv.Atoi(strings.TrimSpace(record[mapIdx]))
		if err != nil {
			continue
		}
		areaID, err := strconv.ParseUint(strings.TrimSpace(record[areaIdx]), 10, 32)
		if err != nil {
			continue
		}
		entries = append(entries, MapEntry{
			ZoneName: record[zoneIdx],
			MapID:    mapID,
			AreaID:   uint32(areaID),
		})
	}
	return entries, nil
}

// RootParent walks an area's parent chain to its hierarchy root, guarding
// against cycles in the table.
func RootParent(id uint32, areas map[uint32]AreaRow) uint32 {
	current := id
	visited := make(map[uint32]struct{})
	for {
		row, ok := areas[current]
		if !ok {
			return id
		}
		if row.ParentID == 0 {
			return current
		}
		if _, seen := visited[current]; seen {
			return current
		}
		visited[current] = struct{}{}
		current = row.ParentID
	}
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no %q column in header", name)
}

func max4(a, b, c, d int) int {
	m := a
	for _, v := range []int{b, c, d} {
		if v > m {
			m = v
		}
	}
	return m
}
