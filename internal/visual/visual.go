// Package visual defines the frame-level output shape shared by both drag
// engines. The presentation layer reads one State per processed input event
// and paints the drawer from it; it never mutates engine internals.
package visual

// Axis selects which axis a scale transform stretches along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Edge identifies the screen edge a drawer is anchored to.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

// Horizontal reports whether the edge anchors a left/right drawer.
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// ScaleConfig tells the renderer how to apply an elastic overscale:
// along which axis, in which direction (+1 away from the anchor, -1
// toward it), and anchored at which origin edge.
type ScaleConfig struct {
	Axis      Axis
	Direction int
	Origin    Edge
}

// State is the continuous visual deformation computed after every input
// event. A new value replaces the previous one wholesale; fields are never
// patched individually from outside the engine.
//
// Invariants: Scale == 1 exactly when ScaleConfig == nil; Offset is never
// negative; Progress is Offset divided by the reference extent whenever
// Offset > 0.
type State struct {
	// Active is true while a committed drag is in progress.
	Active bool
	// Offset is the translation magnitude in the closing direction.
	Offset float64
	// Progress is the normalized [0,1] travel toward the primary outcome.
	Progress float64
	// Scale is the elastic overscale factor, >= 1.
	Scale float64
	// ScaleConfig describes how to apply Scale; nil when Scale is 1.
	ScaleConfig *ScaleConfig
	// PendingExtent is the panel's live extent while a vertical sheet is
	// resizing mid-drag; nil when the panel is at its resting extent.
	PendingExtent *float64
	// Velocity is the last signed instantaneous velocity sample, in
	// units/ms toward closing.
	Velocity float64
}

// Rest returns the state of an idle engine.
func Rest() State {
	return State{Scale: 1}
}
