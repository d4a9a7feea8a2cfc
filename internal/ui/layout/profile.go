// Package layout provides pure functions for drawer dimension calculations.
// Everything here is derived from the viewport extent and a named size
// token each time it is needed; nothing is cached or persisted.
package layout

// Size is a named drawer size token.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeFull   Size = "full"
)

// DefaultHeaderExtent is the height of the header strip a minimized sheet
// collapses to, in engine units.
const DefaultHeaderExtent = 64

// DefaultFractions maps size tokens to the fraction of the viewport a
// docked drawer occupies.
var DefaultFractions = map[Size]float64{
	SizeSmall:  0.25,
	SizeMedium: 0.40,
	SizeLarge:  0.60,
	SizeFull:   1.0,
}

// HeightProfile is the set of extents a vertical sheet moves between:
// the minimized header strip, the resting dock extent, and fullscreen.
type HeightProfile struct {
	Header float64
	Dock   float64
	Full   float64
}

// Heights derives the sheet height profile from the viewport extent and a
// size token, using the default fraction table and header extent.
func Heights(viewport float64, size Size) HeightProfile {
	return HeightsWith(viewport, Fraction(size), DefaultHeaderExtent)
}

// HeightsWith derives a height profile from explicit tuning values. The
// dock extent never exceeds the viewport, and the header never exceeds
// the dock.
func HeightsWith(viewport, fraction, header float64) HeightProfile {
	if viewport < 0 {
		viewport = 0
	}
	dock := viewport * fraction
	if dock > viewport {
		dock = viewport
	}
	if header > dock {
		header = dock
	}
	return HeightProfile{Header: header, Dock: dock, Full: viewport}
}

// Width derives the resting width of a horizontal drawer from the viewport
// width and a size token.
func Width(viewport float64, size Size) float64 {
	if viewport < 0 {
		return 0
	}
	return viewport * Fraction(size)
}

// Fraction returns the viewport fraction for a size token. Unknown tokens
// fall back to medium.
func Fraction(size Size) float64 {
	if f, ok := DefaultFractions[size]; ok {
		return f
	}
	return DefaultFractions[SizeMedium]
}
