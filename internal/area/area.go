// Package area holds the static area metadata tables and the color
// assignment logic. The tables are supplied externally (data files or the
// store) and are read-only to the overlay engine.
package area

import "fmt"

// RGB is a display color with components in [0,1].
type RGB struct {
	R, G, B float64
}

// Info describes one area: display name, optional stored color, the level
// at which exploring it grants experience, and its hierarchy parents.
type Info struct {
	Name             string
	Color            *RGB
	ExplorationLevel int
	ParentID         uint32
	RootParentID     uint32
	NeighborCount    int
}

// Hierarchy groups the descendants of one root area.
type Hierarchy struct {
	Name     string
	Children map[uint32]string
}

// ViewArea links a host view identifier to the area it represents.
type ViewArea struct {
	AreaID uint32
	Name   string
}

// Tables bundles the three static lookup tables.
type Tables struct {
	Info       map[uint32]Info
	Hierarchy  map[uint32]Hierarchy
	ViewToArea map[int]ViewArea
}

// Name returns the display name for an area, or "Unknown_<id>" when the
// table has no entry.
func (t *Tables) Name(id uint32) string {
	if t != nil {
		if info, ok := t.Info[id]; ok && info.Name != "" {
			return info.Name
		}
	}
	return fmt.Sprintf("Unknown_%d", id)
}

// RootOf resolves the hierarchy root of an area: the stored root parent if
// present, otherwise a walk up the parent chain with a cycle guard.
func (t *Tables) RootOf(id uint32) uint32 {
	if t == nil {
		return id
	}
	if info, ok := t.Info[id]; ok && info.RootParentID != 0 {
		return info.RootParentID
	}

	current := id
	seen := make(map[uint32]struct{})
	for {
		info, ok := t.Info[current]
		if !ok || info.ParentID == 0 {
			return current
		}
		if _, cyclic := seen[current]; cyclic {
			return current
		}
		seen[current] = struct{}{}
		current = info.ParentID
	}
}

// IDByName finds an area ID by exact display name.
func (t *Tables) IDByName(name string) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	for id, info := range t.Info {
		if info.Name == name {
			return id, true
		}
	}
	return 0, false
}

// ChildrenOf returns the descendant set of a hierarchy root, nil when the
// root is unknown.
func (t *Tables) ChildrenOf(root uint32) map[uint32]struct{} {
	if t == nil {
		return nil
	}
	h, ok := t.Hierarchy[root]
	if !ok {
		return nil
	}
	set := make(map[uint32]struct{}, len(h.Children))
	for id := range h.Children {
		set[id] = struct{}{}
	}
	return set
}
