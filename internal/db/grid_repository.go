package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/coltonmorris/zone-map/internal/grid"
)

// SaveGrid replaces the stored tile set for one named grid (full replace).
func (s *Store) SaveGrid(ctx context.Context, name string, tiles map[int]string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning grid save for %q: %w", name, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tile_grids WHERE grid_name = $1`, name); err != nil {
		return fmt.Errorf("deleting old tiles for %q: %w", name, err)
	}

	rows := make([][]any, 0, len(tiles))
	for key, blob := range tiles {
		if !grid.IsValidTileKey(key) {
			return fmt.Errorf("saving grid %q: tile key %d out of range", name, key)
		}
		rows = append(rows, []any{name, key, blob})
	}

	if len(rows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"tile_grids"},
			[]string{"grid_name", "tile_key", "blob"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("inserting tiles for %q: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing grid save for %q: %w", name, err)
	}

	slog.Info("saved tile grid", "grid", name, "tiles", len(rows))
	return nil
}

// LoadGrid loads all tiles of one named grid. Returns nil, nil if the
// grid has no tiles.
func (s *Store) LoadGrid(ctx context.Context, name string) (map[int]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT tile_key, blob FROM tile_grids WHERE grid_name = $1`, name)
	if err != nil {
		return nil, fmt.Errorf("querying tiles for %q: %w", name, err)
	}
	defer rows.Close()

	tiles := make(map[int]string)
	for rows.Next() {
		var (
			key  int
			blob string
		)
		if err := rows.Scan(&key, &blob); err != nil {
			return nil, fmt.Errorf("scanning tile row: %w", err)
		}
		tiles[key] = blob
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tile rows: %w", err)
	}

	if len(tiles) == 0 {
		return nil, nil
	}
	return tiles, nil
}

// ListGrids returns the names of all stored grids.
func (s *Store) ListGrids(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT grid_name FROM tile_grids ORDER BY grid_name`)
	if err != nil {
		return nil, fmt.Errorf("querying grid names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning grid name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating grid names: %w", err)
	}
	return names, nil
}
