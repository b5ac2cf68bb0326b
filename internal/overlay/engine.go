// Package overlay turns decoded tile grids into renderable geometry for
// the current viewport: colored cell fills, tile boundary lines, and label
// placements. The Engine is the context object owning all mutable state
// (registered grids, decode caches, color memoization); it is
// single-threaded by contract and driven synchronously by host viewport
// events.
package overlay

import (
	"log/slog"

	"github.com/golang/geo/r2"

	"github.com/coltonmorris/zone-map/internal/area"
	"github.com/coltonmorris/zone-map/internal/codec"
	"github.com/coltonmorris/zone-map/internal/mapper"
	"github.com/coltonmorris/zone-map/internal/tilecache"
)

// maxViewWalk bounds the parent-view walk so a malformed parent chain
// cannot loop forever.
const maxViewWalk = 32

// excludedWaterNames lists the large water bodies that are never filled or
// labeled even when the hierarchy claims them: they blanket whole coasts
// and drown the useful zones.
var excludedWaterNames = []string{
	"The Great Sea",
	"The Veiled Sea",
	"The Forbidding Sea",
	"The North Sea",
	"The South Seas",
}

// Options tune engine behavior.
type Options struct {
	// CacheCapacity bounds each grid's decoded-tile cache; 0 means the
	// tilecache default.
	CacheCapacity int

	// FillAlpha is the opacity of cell fills; 0 means the default 0.5.
	FillAlpha float64

	// Silent suppresses diagnostic logging, not geometry computation.
	Silent bool
}

type gridEntry struct {
	tiles map[int]string // tile key → encoded blob, immutable after registration
	cache *tilecache.Cache
}

// Engine owns all overlay state and produces a Frame per viewport update.
type Engine struct {
	host   Host
	tables *area.Tables
	colors *area.ColorAssigner
	opts   Options

	grids map[string]*gridEntry

	// excluded is the water-body ID set, resolved lazily from names.
	excluded map[uint32]struct{}

	frame Frame
}

// New builds an engine over the given host adapter and area tables.
func New(host Host, tables *area.Tables, opts Options) *Engine {
	if host == nil {
		host = NullHost{}
	}
	if opts.FillAlpha == 0 {
		opts.FillAlpha = 0.5
	}
	return &Engine{
		host:   host,
		tables: tables,
		colors: area.NewColorAssigner(tables),
		opts:   opts,
		grids:  make(map[string]*gridEntry),
	}
}

// RegisterGrid installs a continent's tile table under its name. Repeated
// registration replaces the previous table and resets its decode cache.
func (e *Engine) RegisterGrid(name string, tiles map[int]string) {
	e.grids[name] = &gridEntry{
		tiles: tiles,
		cache: tilecache.New(e.opts.CacheCapacity),
	}
	if !e.opts.Silent {
		slog.Info("registered tile grid", "grid", name, "tiles", len(tiles))
	}
}

// Frame returns the geometry produced by the last successful update.
func (e *Engine) Frame() Frame {
	return e.frame
}

// HandleViewportChange recomputes the frame for the given view and canvas
// size. It runs to completion before returning. On a degenerate viewport
// (zero-size canvas, coincident world samples, unavailable host) the
// previous frame persists unchanged.
func (e *Engine) HandleViewportChange(viewID int, canvasW, canvasH float64) {
	if !e.host.Available() {
		return
	}
	if canvasW <= 0 || canvasH <= 0 {
		return
	}

	p00, ok := e.host.WorldPosition(viewID, r2.Point{X: 0, Y: 0})
	if !ok {
		return
	}
	p11, ok := e.host.WorldPosition(viewID, r2.Point{X: 1, Y: 1})
	if !ok {
		return
	}
	m, ok := mapper.New(p00, p11)
	if !ok {
		if !e.opts.Silent {
			slog.Debug("degenerate viewport, keeping previous frame", "view", viewID)
		}
		return
	}

	continentView, topLevel := e.walkToContinent(viewID)

	var frame Frame
	frame.Lines, frame.TileLabels = e.aggregateGridLines(m, canvasW, canvasH, topLevel)

	if g, name := e.gridForView(continentView); g != nil {
		valid := e.validAreaSet(viewID)
		frame.Fills, frame.Labels = e.aggregateFills(g, name, m, canvasW, canvasH, valid)
	}

	e.frame = frame
}

// walkToContinent follows parent views up to the top-level continent view.
// Returns the continent view and whether viewID itself is the continent.
func (e *Engine) walkToContinent(viewID int) (continentView int, topLevel bool) {
	current := viewID
	for i := 0; i < maxViewWalk; i++ {
		parent, continent, ok := e.host.ViewInfo(current)
		if !ok {
			// No view metadata: treat the view as its own top level.
			return current, current == viewID
		}
		if continent {
			return current, current == viewID
		}
		if parent == current {
			return current, current == viewID
		}
		current = parent
	}
	return current, false
}

// gridForView resolves the continent view to its registered grid through
// the view-to-area table.
func (e *Engine) gridForView(continentView int) (*gridEntry, string) {
	if e.tables == nil || e.tables.ViewToArea == nil {
		return nil, ""
	}
	entry, ok := e.tables.ViewToArea[continentView]
	if !ok {
		return nil, ""
	}
	g, ok := e.grids[entry.Name]
	if !ok {
		return nil, ""
	}
	return g, entry.Name
}

// validAreaSet computes the fillable area IDs for the current view: the
// descendants of the view's hierarchy root, minus the excluded water
// bodies.
func (e *Engine) validAreaSet(viewID int) map[uint32]struct{} {
	if e.tables == nil || e.tables.ViewToArea == nil {
		return nil
	}
	entry, ok := e.tables.ViewToArea[viewID]
	if !ok {
		return nil
	}
	root := e.tables.RootOf(entry.AreaID)
	valid := e.tables.ChildrenOf(root)
	if valid == nil {
		return nil
	}
	// The root itself counts as one of its own areas.
	valid[root] = struct{}{}
	for id := range e.excludedSet() {
		delete(valid, id)
	}
	return valid
}

func (e *Engine) excludedSet() map[uint32]struct{} {
	if e.excluded != nil {
		return e.excluded
	}
	e.excluded = make(map[uint32]struct{})
	for _, name := range excludedWaterNames {
		if id, ok := e.tables.IDByName(name); ok {
			e.excluded[id] = struct{}{}
		}
	}
	return e.excluded
}

// decodedTile returns the decoded byte buffer for one tile, consulting the
// grid's cache before decoding the stored blob. A malformed blob is
// indistinguishable from an absent tile.
func (e *Engine) decodedTile(g *gridEntry, key int) ([]byte, bool) {
	if buf, ok := g.cache.Get(key); ok {
		return buf, true
	}
	blob, ok := g.tiles[key]
	if !ok {
		return nil, false
	}
	buf, ok := codec.Decode(blob)
	if !ok {
		return nil, false
	}
	g.cache.Put(key, buf)
	return buf, true
}
