// tilegen scans extracted ADT terrain files and generates the JSON data
// set consumed by the overlay engine: per-continent tile grids, the area
// info table, the area hierarchy, and the view-to-area mapping.
//
// Usage:
//
//	go run ./cmd/tilegen -areas AreaTable.csv -maps maps.csv -out data Kalimdor=extract/Kalimdor Azeroth=extract/Azeroth
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/coltonmorris/zone-map/internal/gen"
)

func main() {
	areasPath := flag.String("areas", "", "AreaTable CSV export (optional, areas named Unknown_<id> without it)")
	mapsPath := flag.String("maps", "", "zone/mapId/areaId CSV (optional)")
	out := flag.String("out", "data", "output directory")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: tilegen [flags] Name=adt-dir [Name=adt-dir ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(context.Background(), *areasPath, *mapsPath, *out, flag.Args()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, areasPath, mapsPath, out string, specs []string) error {
	areas, err := loadAreaTable(areasPath)
	if err != nil {
		return err
	}

	var mapEntries []gen.MapEntry
	if mapsPath != "" {
		f, err := os.Open(mapsPath)
		if err != nil {
			return fmt.Errorf("opening map table: %w", err)
		}
		mapEntries, err = gen.ParseMapToArea(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing map table: %w", err)
		}
	}

	continents := make([]*gen.Continent, len(specs))
	g, _ := errgroup.WithContext(ctx)
	for i, spec := range specs {
		name, dir, ok := strings.Cut(spec, "=")
		if !ok || name == "" || dir == "" {
			return fmt.Errorf("bad continent spec %q, want Name=dir", spec)
		}
		g.Go(func() error {
			c, err := gen.BuildContinent(dir, name)
			if err != nil {
				return err
			}
			continents[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Areas from different continents never touch, so one shared graph is
	// safe to merge into after the parallel scans.
	found := make(map[uint32]struct{})
	graph := make(gen.NeighborGraph)
	var mu sync.Mutex
	g, _ = errgroup.WithContext(ctx)
	for _, c := range continents {
		g.Go(func() error {
			local := make(gen.NeighborGraph)
			for _, ids := range c.Tiles {
				local.AddTileNeighbors(ids)
			}
			local.AddSeamNeighbors(c.Tiles)

			mu.Lock()
			defer mu.Unlock()
			for id := range c.Found {
				found[id] = struct{}{}
			}
			graph.Merge(local)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	colors := gen.AssignColors(found, graph, areas)
	slog.Info("assigned colors", "areas", len(colors))

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, c := range continents {
		path := filepath.Join(out, c.Name+"_tiles.json")
		if err := gen.WriteTileGrid(path, c); err != nil {
			return err
		}
		slog.Info("wrote tile grid", "path", path, "tiles", len(c.Tiles))
	}
	if err := gen.WriteAreaInfo(filepath.Join(out, "area_info.json"), found, areas, colors, graph); err != nil {
		return err
	}
	if err := gen.WriteHierarchy(filepath.Join(out, "area_hierarchy.json"), found, areas); err != nil {
		return err
	}
	if err := gen.WriteMapToArea(filepath.Join(out, "map_to_area.json"), mapEntries); err != nil {
		return err
	}

	slog.Info("generation complete", "continents", len(continents), "areas", len(found), "out", out)
	return nil
}

func loadAreaTable(path string) (map[uint32]gen.AreaRow, error) {
	if path == "" {
		slog.Warn("no area table given, area names will be Unknown_<id>")
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening area table: %w", err)
	}
	defer f.Close()

	areas, err := gen.ParseAreaTable(f)
	if err != nil {
		return nil, fmt.Errorf("parsing area table: %w", err)
	}
	slog.Info("loaded area table", "rows", len(areas))
	return areas, nil
}
