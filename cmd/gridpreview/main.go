// gridpreview renders one generated tile grid to a PNG for eyeballing:
// one pixel per cell (1024x1024 for the full 64x64 tile grid), scaled to
// the requested size. Cells use the same color assignment as the overlay
// engine, so the preview matches what the overlay would draw.
//
// Usage:
//
//	go run ./cmd/gridpreview -data data -grid Kalimdor -out kalimdor.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/coltonmorris/zone-map/internal/area"
	"github.com/coltonmorris/zone-map/internal/codec"
	"github.com/coltonmorris/zone-map/internal/data"
	"github.com/coltonmorris/zone-map/internal/grid"
)

func main() {
	dataDir := flag.String("data", "data", "directory with generated JSON files")
	gridName := flag.String("grid", "", "grid name (loads <name>_tiles.json)")
	out := flag.String("out", "preview.png", "output PNG path")
	size := flag.Int("size", 2048, "output image size in pixels")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if *gridName == "" {
		fmt.Fprintln(os.Stderr, "usage: gridpreview -data DIR -grid NAME [-out FILE] [-size N]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(*dataDir, *gridName, *out, *size); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(dataDir, gridName, out string, size int) error {
	_, tiles, err := data.LoadTileGrid(filepath.Join(dataDir, gridName+"_tiles.json"))
	if err != nil {
		return err
	}
	tables := data.LoadTables(dataDir)

	img := render(tiles, area.NewColorAssigner(tables))

	scaled := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, scaled); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}

	slog.Info("wrote preview", "path", out, "size", size, "tiles", len(tiles))
	return nil
}

// render paints one pixel per cell. Cells with area 0 (and tiles that fail
// to decode) stay transparent.
func render(tiles map[int]string, colors *area.ColorAssigner) *image.NRGBA {
	side := grid.TilesPerSide * grid.CellsPerSide
	img := image.NewNRGBA(image.Rect(0, 0, side, side))

	for key, blob := range tiles {
		buf, ok := codec.Decode(blob)
		if !ok {
			slog.Warn("skipping malformed tile blob", "tile", key)
			continue
		}
		tileRow, tileCol := grid.TileRowCol(key)
		for cellRow := 0; cellRow < grid.CellsPerSide; cellRow++ {
			for cellCol := 0; cellCol < grid.CellsPerSide; cellCol++ {
				id := grid.AreaID(buf, cellRow, cellCol)
				if id == 0 {
					continue
				}
				c := colors.ColorOf(id)
				img.SetNRGBA(
					tileCol*grid.CellsPerSide+cellCol,
					tileRow*grid.CellsPerSide+cellRow,
					color.NRGBA{
						R: uint8(c.R * 255),
						G: uint8(c.G * 255),
						B: uint8(c.B * 255),
						A: 255,
					},
				)
			}
		}
	}
	return img
}
