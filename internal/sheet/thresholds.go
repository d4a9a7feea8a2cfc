package sheet

import (
	"time"

	"github.com/llehouerou/drawer/internal/elastic"
)

// Thresholds holds every tuning value of the vertical engine: commit
// deadzones, the scroll-conflict refractory, and the per-mode release
// heuristics. The release constants layer independent distance and
// velocity gates with ad-hoc multipliers; they are preserved as-is and
// exposed through configuration rather than rationalized.
type Thresholds struct {
	// MouseDeadzone / TouchDeadzone: commit deadzone by input device.
	MouseDeadzone float64 `koanf:"mouse_deadzone"`
	TouchDeadzone float64 `koanf:"touch_deadzone"`
	// DominanceRatio: how strongly vertical movement must dominate
	// horizontal movement to commit.
	DominanceRatio float64 `koanf:"dominance_ratio"`
	// RefractoryMS: how long drag capture stays suppressed after a
	// gesture defers to native scrolling.
	RefractoryMS float64 `koanf:"refractory_ms"`
	// GestureDistance: minimum total travel for any release decision.
	GestureDistance float64 `koanf:"gesture_distance"`
	// CloseVelocity: base swipe velocity in units/ms.
	CloseVelocity float64 `koanf:"close_velocity"`
	// CloseFraction of the dock extent that closes from Normal when
	// minimize is disabled.
	CloseFraction float64 `koanf:"close_fraction"`
	// FastCloseFraction of the dock extent required for a fast swipe to
	// close from Normal when minimize is disabled.
	FastCloseFraction float64 `koanf:"fast_close_fraction"`
	// ExpandFraction of the dock extent that expands from Normal.
	ExpandFraction float64 `koanf:"expand_fraction"`
	// MinimizeFraction of the dock extent that minimizes from Normal.
	MinimizeFraction float64 `koanf:"minimize_fraction"`
	// ForceCloseVelocityFactor and ForceCloseFraction: a closing gesture
	// faster than factor x CloseVelocity AND longer than fraction x dock
	// skips Minimized and closes outright.
	ForceCloseVelocityFactor float64 `koanf:"force_close_velocity_factor"`
	ForceCloseFraction       float64 `koanf:"force_close_fraction"`
	// MinimizedToggleFraction of the header extent that restores or
	// closes a minimized sheet.
	MinimizedToggleFraction float64 `koanf:"minimized_toggle_fraction"`
	// ExpandedReturnFraction of the dock extent that collapses Expanded
	// back to Normal.
	ExpandedReturnFraction float64 `koanf:"expanded_return_fraction"`
	// ExpandedCloseFraction of the fullscreen extent that closes from
	// Expanded.
	ExpandedCloseFraction float64 `koanf:"expanded_close_fraction"`
	// ExtentFloor: the minimum live extent when no mode-specific floor
	// applies.
	ExtentFloor float64 `koanf:"extent_floor"`
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MouseDeadzone:            4,
		TouchDeadzone:            8,
		DominanceRatio:           1.15,
		RefractoryMS:             100,
		GestureDistance:          30,
		CloseVelocity:            0.5,
		CloseFraction:            0.4,
		FastCloseFraction:        0.6,
		ExpandFraction:           0.3,
		MinimizeFraction:         0.15,
		ForceCloseVelocityFactor: 3.0,
		ForceCloseFraction:       1.2,
		MinimizedToggleFraction:  0.5,
		ExpandedReturnFraction:   0.3,
		ExpandedCloseFraction:    0.4,
		ExtentFloor:              20,
	}
}

// Refractory returns the scroll-conflict refractory as a duration.
func (t Thresholds) Refractory() time.Duration {
	return time.Duration(t.RefractoryMS * float64(time.Millisecond))
}

// Curves selects the elastic feedback curves this engine uses.
type Curves struct {
	// BeyondFloor applies to closing-direction travel after shrink
	// capacity and translation are both exhausted.
	BeyondFloor elastic.Curve
	// BeyondFull applies to opening-direction travel past fullscreen.
	BeyondFull elastic.Curve
	// WrongDirection applies to opening-direction travel when no growth
	// is possible.
	WrongDirection elastic.Curve
}

// DefaultCurves returns the engine's slice of the default curve table.
func DefaultCurves() Curves {
	p := elastic.DefaultProfile()
	return Curves{
		BeyondFloor:    p.SheetBeyondFloor,
		BeyondFull:     p.SheetBeyondFull,
		WrongDirection: p.SheetWrongDirection,
	}
}
