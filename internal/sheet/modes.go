package sheet

import (
	"math"

	"github.com/llehouerou/drawer/internal/ui/layout"
)

// Mode is the discrete display mode of a vertical sheet.
type Mode int

const (
	// ModeNormal is the initial mode: the sheet rests at its dock extent.
	ModeNormal Mode = iota
	// ModeExpanded fills the viewport. Only reachable from Normal, and
	// only when expansion is enabled.
	ModeExpanded
	// ModeMinimized collapses the sheet to its header strip. Only
	// reachable from Normal, and only when minimize is enabled.
	ModeMinimized
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeExpanded:
		return "expanded"
	case ModeMinimized:
		return "minimized"
	}
	return "unknown"
}

// Outcome is the discrete result of a release decision.
type Outcome int

const (
	// OutcomeNone discards the gesture: visual state resets, mode is
	// unchanged, no callback fires.
	OutcomeNone Outcome = iota
	// OutcomeClose dismisses the sheet entirely.
	OutcomeClose
	// OutcomeExpand grows the sheet to fullscreen.
	OutcomeExpand
	// OutcomeMinimize collapses the sheet to its header strip.
	OutcomeMinimize
	// OutcomeRestore returns a minimized sheet to Normal.
	OutcomeRestore
	// OutcomeCollapse returns an expanded sheet to Normal.
	OutcomeCollapse
)

// ReleaseContext carries everything a release decision needs. Closing and
// Velocity are signed toward the sheet's closing direction (positive =
// closing). Velocity is the same-gesture average in units/ms.
type ReleaseContext struct {
	Closing     float64
	Velocity    float64
	Heights     layout.HeightProfile
	CanExpand   bool
	CanMinimize bool
}

// Resolve is the pure transition function of the mode state machine:
// (mode, release context) -> (new mode, outcome). It fires no side
// effects; the engine maps outcomes to callbacks. Every transition the
// sheet can make passes through here or through the imperative minimize
// escape hatch — there is no Expanded<->Minimized path.
func Resolve(mode Mode, ctx ReleaseContext, th Thresholds) (Mode, Outcome) {
	// Tiny wobbles are not gestures, whatever their velocity says.
	if math.Abs(ctx.Closing) < th.GestureDistance {
		return mode, OutcomeNone
	}

	opening := -ctx.Closing
	fastClosing := ctx.Velocity > th.CloseVelocity
	fastOpening := ctx.Velocity < -th.CloseVelocity

	switch mode {
	case ModeNormal:
		if ctx.CanExpand && (fastOpening || opening >= th.ExpandFraction*ctx.Heights.Dock) {
			return ModeExpanded, OutcomeExpand
		}
		if ctx.CanMinimize {
			// Skipping minimize and closing outright takes an extreme
			// gesture: far faster and far longer than a plain close.
			if ctx.Velocity > th.ForceCloseVelocityFactor*th.CloseVelocity &&
				ctx.Closing >= th.ForceCloseFraction*ctx.Heights.Dock {
				return mode, OutcomeClose
			}
			if ctx.Closing >= th.MinimizeFraction*ctx.Heights.Dock {
				return ModeMinimized, OutcomeMinimize
			}
			return mode, OutcomeNone
		}
		if (fastClosing && ctx.Closing >= th.FastCloseFraction*ctx.Heights.Dock) ||
			ctx.Closing >= th.CloseFraction*ctx.Heights.Dock {
			return mode, OutcomeClose
		}
		return mode, OutcomeNone

	case ModeMinimized:
		// Minimized sheets tolerate free dragging without snapping; only
		// a clear swipe or travel past half the header moves them.
		if fastOpening || opening > th.MinimizedToggleFraction*ctx.Heights.Header {
			return ModeNormal, OutcomeRestore
		}
		if fastClosing || ctx.Closing > th.MinimizedToggleFraction*ctx.Heights.Header {
			return mode, OutcomeClose
		}
		return mode, OutcomeNone

	case ModeExpanded:
		if fastClosing || ctx.Closing >= th.ExpandedCloseFraction*ctx.Heights.Full {
			return mode, OutcomeClose
		}
		if ctx.Closing >= th.ExpandedReturnFraction*ctx.Heights.Dock {
			return ModeNormal, OutcomeCollapse
		}
		return mode, OutcomeNone
	}

	return mode, OutcomeNone
}
