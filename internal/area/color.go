package area

import (
	"log/slog"
	"math"
)

// goldenRatio drives the fallback hue sequence: consecutive IDs land far
// apart on the hue wheel, keeping accidental collisions rare.
const goldenRatio = 0.6180339887

// Magenta is the color every area gets when the Info table is missing
// entirely.
var Magenta = RGB{R: 1, G: 0, B: 1}

// ColorAssigner memoizes per-area display colors. Stored colors win;
// otherwise a deterministic HSV fallback is derived from the area ID.
// Warnings about missing entries fire once per ID for the process lifetime.
type ColorAssigner struct {
	tables *Tables

	colors       map[uint32]RGB
	warned       map[uint32]struct{}
	warnedNoInfo bool
}

// NewColorAssigner builds an assigner over the given tables. A nil Tables
// (or nil Info map) degrades every lookup to magenta.
func NewColorAssigner(t *Tables) *ColorAssigner {
	return &ColorAssigner{
		tables: t,
		colors: make(map[uint32]RGB),
		warned: make(map[uint32]struct{}),
	}
}

// ColorOf returns the display color for an area. Deterministic and
// idempotent for a fixed Info table.
func (a *ColorAssigner) ColorOf(id uint32) RGB {
	if c, ok := a.colors[id]; ok {
		return c
	}

	if a.tables == nil || a.tables.Info == nil {
		if !a.warnedNoInfo {
			a.warnedNoInfo = true
			slog.Warn("area info table unavailable, using magenta for all areas")
		}
		a.colors[id] = Magenta
		return Magenta
	}

	info, ok := a.tables.Info[id]
	if ok && info.Color != nil {
		a.colors[id] = *info.Color
		return *info.Color
	}

	if _, already := a.warned[id]; !already {
		a.warned[id] = struct{}{}
		if ok {
			slog.Warn("area has no stored color, using fallback", "area", id, "name", info.Name)
		} else {
			slog.Warn("area missing from info table, using fallback color", "area", id)
		}
	}

	hue := math.Mod(float64(id)*goldenRatio, 1.0)
	c := HSVToRGB(hue, 0.65, 0.85)
	a.colors[id] = c
	return c
}

// HSVToRGB converts hue/saturation/value (each in [0,1]) to RGB.
func HSVToRGB(h, s, v float64) RGB {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h * 6) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{R: r + m, G: g + m, B: b + m}
}
