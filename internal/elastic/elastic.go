// Package elastic implements the overscale feedback curves the drawer
// engines apply when a drag travels in a resisted direction or beyond a
// structural limit.
package elastic

import "math"

// Curve maps an excess drag distance to a visual overscale factor.
// Scale(d) is 1 for d <= Start, rises quickly past Start and decelerates
// toward 1+MaxScale, which it reaches at Start+Travel. Monotonic
// non-decreasing, capped, continuous at zero.
type Curve struct {
	Start    float64 `koanf:"start"`     // distance before the curve engages
	Travel   float64 `koanf:"travel"`    // distance over which the curve saturates
	MaxScale float64 `koanf:"max_scale"` // additional scale at saturation
	Exponent float64 `koanf:"exponent"`  // shape: higher = faster initial response
}

// Scale returns the overscale factor for an excess distance d.
func (c Curve) Scale(d float64) float64 {
	d -= c.Start
	if d <= 0 || c.Travel <= 0 || c.MaxScale <= 0 {
		return 1
	}
	n := d / c.Travel
	if n > 1 {
		n = 1
	}
	return 1 + c.MaxScale*(1-math.Pow(1-n, c.Exponent))
}

// Profile names the curve used in each drag context. The tuples are tuning
// values, not correctness values; they differ per context and are exposed
// through configuration so behavior stays reproducible.
type Profile struct {
	// DragWrongDirection: horizontal drawer dragged away from its closing
	// direction after commit.
	DragWrongDirection Curve `koanf:"drag_wrong_direction"`
	// DragPreCommit: horizontal drawer nudged the wrong way before the
	// gesture commits. Two-phase: nothing until Start, then growth.
	DragPreCommit Curve `koanf:"drag_pre_commit"`
	// SheetBeyondFloor: vertical sheet dragged closing-ward after both
	// shrink capacity and translation are exhausted.
	SheetBeyondFloor Curve `koanf:"sheet_beyond_floor"`
	// SheetBeyondFull: vertical sheet dragged open past fullscreen.
	SheetBeyondFull Curve `koanf:"sheet_beyond_full"`
	// SheetWrongDirection: vertical sheet dragged open when no growth is
	// possible.
	SheetWrongDirection Curve `koanf:"sheet_wrong_direction"`
}

// DefaultProfile returns the tuned curve table.
func DefaultProfile() Profile {
	return Profile{
		DragWrongDirection:  Curve{Start: 0, Travel: 240, MaxScale: 0.06, Exponent: 2.2},
		DragPreCommit:       Curve{Start: 8, Travel: 320, MaxScale: 0.08, Exponent: 2.0},
		SheetBeyondFloor:    Curve{Start: 0, Travel: 280, MaxScale: 0.08, Exponent: 2.2},
		SheetBeyondFull:     Curve{Start: 0, Travel: 320, MaxScale: 0.10, Exponent: 2.4},
		SheetWrongDirection: Curve{Start: 0, Travel: 200, MaxScale: 0.05, Exponent: 2.0},
	}
}
