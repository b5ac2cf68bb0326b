// areaimport loads the generated JSON data set and imports it into
// PostgreSQL, so deployments can serve tiles and area tables from the
// database instead of shipping the files.
//
// Usage:
//
//	go run ./cmd/areaimport -config config/zonemap.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coltonmorris/zone-map/internal/config"
	"github.com/coltonmorris/zone-map/internal/data"
	"github.com/coltonmorris/zone-map/internal/db"
)

const ConfigPath = "config/zonemap.yaml"

func main() {
	cfgPath := flag.String("config", ConfigPath, "config file path")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *cfgPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("area import starting", "data", cfg.DataDir)

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	store, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer store.Close()

	tables := data.LoadTables(cfg.DataDir)
	if err := store.SaveAreaTables(ctx, tables); err != nil {
		return fmt.Errorf("importing area tables: %w", err)
	}

	paths, err := data.FindTileGridFiles(cfg.DataDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		slog.Warn("no tile grid files found", "dir", cfg.DataDir)
	}
	for _, path := range paths {
		name, tiles, err := data.LoadTileGrid(path)
		if err != nil {
			return err
		}
		if err := store.SaveGrid(ctx, name, tiles); err != nil {
			return fmt.Errorf("importing grid %q: %w", name, err)
		}
	}

	slog.Info("import complete", "grids", len(paths), "areas", len(tables.Info))
	return nil
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
