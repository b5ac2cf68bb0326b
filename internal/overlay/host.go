package overlay

import "github.com/golang/geo/r2"

// Host is the capability surface of the external map UI. Implementations
// must be probed through Available before any other call; when the host
// lacks the underlying API, every mapping operation reports ok=false and
// the engine skips the update.
type Host interface {
	// Available reports whether the host map API can be used at all.
	Available() bool

	// WorldPosition converts a normalized viewport position on the given
	// view to a world-space position.
	WorldPosition(viewID int, n r2.Point) (r2.Point, bool)

	// ViewInfo returns the parent view of viewID and whether viewID itself
	// is a top-level (continent) view.
	ViewInfo(viewID int) (parent int, continent bool, ok bool)
}

// NullHost is a Host with no capability; every probe fails. Useful as a
// placeholder before the real adapter is wired and in tests.
type NullHost struct{}

func (NullHost) Available() bool                              { return false }
func (NullHost) WorldPosition(int, r2.Point) (r2.Point, bool) { return r2.Point{}, false }
func (NullHost) ViewInfo(int) (int, bool, bool)               { return 0, false, false }
