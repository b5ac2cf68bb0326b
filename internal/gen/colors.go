package gen

import (
	"math"
	"sort"

	"github.com/coltonmorris/zone-map/internal/area"
)

// palette holds visually distinct base colors for graph coloring.
var palette = []area.RGB{
	{R: 0.90, G: 0.30, B: 0.30}, // red
	{R: 0.30, G: 0.70, B: 0.30}, // green
	{R: 0.30, G: 0.50, B: 0.90}, // blue
	{R: 0.90, G: 0.80, B: 0.20}, // yellow
	{R: 0.80, G: 0.40, B: 0.80}, // purple
	{R: 0.20, G: 0.80, B: 0.80}, // cyan
	{R: 0.95, G: 0.60, B: 0.30}, // orange
	{R: 0.60, G: 0.80, B: 0.40}, // lime
	{R: 0.80, G: 0.50, B: 0.60}, // pink
	{R: 0.50, G: 0.70, B: 0.80}, // sky blue
	{R: 0.70, G: 0.60, B: 0.40}, // tan
	{R: 0.60, G: 0.40, B: 0.70}, // violet
	{R: 0.40, G: 0.60, B: 0.50}, // teal
	{R: 0.85, G: 0.70, B: 0.70}, // light pink
	{R: 0.70, G: 0.85, B: 0.70}, // light green
	{R: 0.70, G: 0.70, B: 0.85}, // light blue
}

// AssignColors colors every found area so that no two touching areas (and
// no child against its parent) share a palette entry. Areas are colored in
// descending neighbor-degree order; when the palette is exhausted for an
// area, a golden-ratio HSV fallback unique to its ID is used instead.
func AssignColors(found map[uint32]struct{}, graph NeighborGraph, areas map[uint32]AreaRow) map[uint32]area.RGB {
	ordered := make([]uint32, 0, len(found))
	for id := range found {
		if id != 0 {
			ordered = append(ordered, id)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := graph.Degree(ordered[i]), graph.Degree(ordered[j])
		if di != dj {
			return di > dj
		}
		return ordered[i] < ordered[j]
	})

	colors := make(map[uint32]area.RGB, len(ordered))
	paletteIdx := make(map[uint32]int, len(ordered))

	for _, id := range ordered {
		taken := make(map[int]struct{})
		for neighbor := range graph[id] {
			if idx, ok := paletteIdx[neighbor]; ok {
				taken[idx] = struct{}{}
			}
		}
		if row, ok := areas[id]; ok {
			if idx, ok := paletteIdx[row.ParentID]; ok {
				taken[idx] = struct{}{}
			}
		}

		chosen := -1
		for i := range palette {
			if _, used := taken[i]; !used {
				chosen = i
				break
			}
		}
		if chosen >= 0 {
			colors[id] = palette[chosen]
			paletteIdx[id] = chosen
			continue
		}
		colors[id] = fallbackColor(id)
	}
	return colors
}

// fallbackColor derives a unique color from the area ID when every palette
// entry is taken by a neighbor.
func fallbackColor(id uint32) area.RGB {
	hue := math.Mod(float64(id)*0.618033988749895, 1.0)
	return area.HSVToRGB(hue, 0.7, 0.9)
}
