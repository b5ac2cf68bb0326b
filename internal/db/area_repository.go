package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/coltonmorris/zone-map/internal/area"
)

// SaveAreaTables replaces the stored area metadata with the given tables
// (full replace, single transaction).
func (s *Store) SaveAreaTables(ctx context.Context, tables *area.Tables) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning area table save: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"area_info", "area_hierarchy", "map_to_area"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	infoRows := make([][]any, 0, len(tables.Info))
	for id, info := range tables.Info {
		var r, g, b *float64
		if info.Color != nil {
			r, g, b = &info.Color.R, &info.Color.G, &info.Color.B
		}
		infoRows = append(infoRows, []any{
			int64(id), info.Name, int64(info.ParentID), int64(info.RootParentID),
			info.ExplorationLevel, r, g, b, info.NeighborCount,
		})
	}
	if len(infoRows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"area_info"},
			[]string{"area_id", "name", "parent_id", "root_parent_id", "exploration_level", "color_r", "color_g", "color_b", "neighbor_count"},
			pgx.CopyFromRows(infoRows),
		)
		if err != nil {
			return fmt.Errorf("inserting area info: %w", err)
		}
	}

	hierRows := make([][]any, 0, len(tables.Hierarchy))
	for root, h := range tables.Hierarchy {
		for child, childName := range h.Children {
			hierRows = append(hierRows, []any{int64(root), int64(child), h.Name, childName})
		}
	}
	if len(hierRows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"area_hierarchy"},
			[]string{"root_id", "child_id", "root_name", "child_name"},
			pgx.CopyFromRows(hierRows),
		)
		if err != nil {
			return fmt.Errorf("inserting area hierarchy: %w", err)
		}
	}

	viewRows := make([][]any, 0, len(tables.ViewToArea))
	for viewID, va := range tables.ViewToArea {
		viewRows = append(viewRows, []any{viewID, int64(va.AreaID), va.Name})
	}
	if len(viewRows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"map_to_area"},
			[]string{"view_id", "area_id", "name"},
			pgx.CopyFromRows(viewRows),
		)
		if err != nil {
			return fmt.Errorf("inserting view mappings: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing area table save: %w", err)
	}

	slog.Info("saved area tables",
		"areas", len(infoRows),
		"hierarchyEntries", len(hierRows),
		"views", len(viewRows))
	return nil
}

// LoadAreaTables loads the full area metadata. Missing tables come back as
// empty maps, never nil, so the result is always usable.
func (s *Store) LoadAreaTables(ctx context.Context) (*area.Tables, error) {
	tables := &area.Tables{
		Info:       make(map[uint32]area.Info),
		Hierarchy:  make(map[uint32]area.Hierarchy),
		ViewToArea: make(map[int]area.ViewArea),
	}

	rows, err := s.pool.Query(ctx,
		`SELECT area_id, name, parent_id, root_parent_id, exploration_level,
		        color_r, color_g, color_b, neighbor_count
		 FROM area_info`)
	if err != nil {
		return nil, fmt.Errorf("querying area info: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, parent, root int64
			info             area.Info
			r, g, b          *float64
		)
		if err := rows.Scan(&id, &info.Name, &parent, &root, &info.ExplorationLevel, &r, &g, &b, &info.NeighborCount); err != nil {
			return nil, fmt.Errorf("scanning area info row: %w", err)
		}
		info.ParentID = uint32(parent)
		info.RootParentID = uint32(root)
		if r != nil && g != nil && b != nil {
			info.Color = &area.RGB{R: *r, G: *g, B: *b}
		}
		tables.Info[uint32(id)] = info
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating area info rows: %w", err)
	}
	rows.Close()

	rows, err = s.pool.Query(ctx,
		`SELECT root_id, child_id, root_name, child_name FROM area_hierarchy`)
	if err != nil {
		return nil, fmt.Errorf("querying area hierarchy: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rootID, childID     int64
			rootName, childName string
		)
		if err := rows.Scan(&rootID, &childID, &rootName, &childName); err != nil {
			return nil, fmt.Errorf("scanning hierarchy row: %w", err)
		}
		h, ok := tables.Hierarchy[uint32(rootID)]
		if !ok {
			h = area.Hierarchy{Name: rootName, Children: make(map[uint32]string)}
		}
		h.Children[uint32(childID)] = childName
		tables.Hierarchy[uint32(rootID)] = h
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hierarchy rows: %w", err)
	}
	rows.Close()

	rows, err = s.pool.Query(ctx,
		`SELECT view_id, area_id, name FROM map_to_area`)
	if err != nil {
		return nil, fmt.Errorf("querying view mappings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			viewID int
			areaID int64
			name   string
		)
		if err := rows.Scan(&viewID, &areaID, &name); err != nil {
			return nil, fmt.Errorf("scanning view mapping row: %w", err)
		}
		tables.ViewToArea[viewID] = area.ViewArea{AreaID: uint32(areaID), Name: name}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating view mapping rows: %w", err)
	}

	return tables, nil
}
