// Package gesture defines the canonical pointer event stream the drawer
// engines consume, plus the per-gesture session record that tracks one
// physical gesture from contact to release.
//
// Mouse and touch input are two wire formats converging on one event shape;
// the adapters in this package do the translation so the engines never
// branch on input source except where behavior genuinely differs (commit
// deadzones).
package gesture

import "time"

// Kind is the phase of a pointer event.
type Kind int

const (
	KindDown Kind = iota
	KindMove
	KindUp
	KindCancel
)

// Pointer identifies the input device class that produced an event.
type Pointer int

const (
	PointerMouse Pointer = iota
	PointerTouch
)

// Point is a position in engine units.
type Point struct {
	X float64
	Y float64
}

// Event is the canonical single-contact pointer event.
type Event struct {
	Kind    Kind
	Point   Point
	Time    time.Time
	Pointer Pointer
}

// ScrollRegion describes a scrollable area under a contact point, in engine
// units. Offset is the distance already scrolled from the start of the
// content.
type ScrollRegion struct {
	Offset   float64
	Viewport float64
	Content  float64
}

// AtStart reports whether the region is scrolled to its beginning.
func (r ScrollRegion) AtStart() bool {
	return r.Offset <= 0
}

// AtEnd reports whether the region is scrolled to its end.
func (r ScrollRegion) AtEnd() bool {
	return r.Offset+r.Viewport >= r.Content
}

// Surface answers hit-testing questions about whatever is rendered under a
// gesture. Implemented by the embedding UI; engines tolerate a nil Surface
// (nothing is interactive, nothing scrolls).
type Surface interface {
	// InteractiveAt reports whether the point lands on an interactive
	// control (button, link) that should win small movements.
	InteractiveAt(p Point) bool
	// ScrollRegionAt returns the scrollable region containing the point,
	// if any. Called again at commit time so the answer reflects live
	// scroll position, not the position at contact.
	ScrollRegionAt(p Point) (ScrollRegion, bool)
}

// Capture acquires exclusive pointer tracking for a committed gesture.
// Capture is an optimization, not a correctness requirement: both
// operations are best effort and the engines swallow errors.
type Capture interface {
	Acquire() error
	Release() error
}

// NopCapture is a Capture that does nothing, for surfaces without a native
// capture mechanism.
type NopCapture struct{}

func (NopCapture) Acquire() error { return nil }
func (NopCapture) Release() error { return nil }
