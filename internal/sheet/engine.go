// Package sheet implements the gesture engine for panels anchored to the
// top or bottom screen edge. Unlike the horizontal engine, a vertical
// sheet's extent can change during the drag (the panel grows or shrinks
// before it starts translating), and release resolves against a
// three-mode state machine: Normal, Expanded, Minimized.
package sheet

import (
	"math"
	"time"

	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/ui/layout"
	"github.com/llehouerou/drawer/internal/visual"
)

// Anchor is the screen edge the sheet slides in from.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorTop
)

// Options configures an Engine.
type Options struct {
	Anchor Anchor
	// Heights returns the live height profile. Queried on every event so
	// viewport resizes take effect mid-gesture; a zero profile reads as
	// lost geometry and abandons the gesture.
	Heights     func() layout.HeightProfile
	CanExpand   bool
	CanMinimize bool
	Thresholds  Thresholds
	Curves      Curves
	Surface     gesture.Surface // optional
	Capture     gesture.Capture // optional
	OnClose     func()
	OnMinimize  func()
	OnRestore   func()
}

// Engine recognizes drag gestures on a vertical sheet and runs its mode
// state machine. Not safe for concurrent use; all events arrive
// sequentially on the UI thread.
type Engine struct {
	opts       Options
	mode       Mode
	session    *gesture.Session
	captured   bool
	state      visual.State
	deferUntil time.Time
}

// New creates an engine in Normal mode. Zero-value thresholds and curves
// are replaced by the defaults.
func New(opts Options) *Engine {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}
	if opts.Curves == (Curves{}) {
		opts.Curves = DefaultCurves()
	}
	if opts.Heights == nil {
		opts.Heights = func() layout.HeightProfile { return layout.HeightProfile{} }
	}
	return &Engine{opts: opts, state: visual.Rest()}
}

// State returns the current visual state.
func (e *Engine) State() visual.State {
	return e.state
}

// Mode returns the current display mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Extent returns the sheet's resting extent for the current mode.
func (e *Engine) Extent() float64 {
	return restingExtent(e.opts.Heights(), e.mode)
}

// SetMinimized is the imperative escape hatch: the controller can force
// the sheet to Minimized outside of a gesture (backdrop tap). A no-op
// unless the sheet is in Normal mode with minimize enabled; calling it
// while already minimized neither changes mode nor re-fires the callback.
func (e *Engine) SetMinimized() {
	if e.mode != ModeNormal || !e.opts.CanMinimize {
		return
	}
	e.abandon()
	e.mode = ModeMinimized
	if e.opts.OnMinimize != nil {
		e.opts.OnMinimize()
	}
}

// Deactivate abandons any in-flight gesture and resets the mode to
// Normal. Called whenever the sheet becomes inactive.
func (e *Engine) Deactivate() {
	e.abandon()
	e.mode = ModeNormal
}

// Handle processes one canonical pointer event and returns the recomputed
// visual state.
func (e *Engine) Handle(ev gesture.Event) visual.State {
	switch ev.Kind {
	case gesture.KindDown:
		e.pointerDown(ev)
	case gesture.KindMove:
		e.pointerMove(ev)
	case gesture.KindUp:
		e.release(ev)
	case gesture.KindCancel:
		e.abandon()
	}
	return e.state
}

func (e *Engine) pointerDown(ev gesture.Event) {
	if e.session != nil {
		// Single-contact only: a second down is ignored.
		return
	}
	if ev.Time.Before(e.deferUntil) {
		// Refractory after deferring to native scroll; avoids flicker
		// between scroll and drag capture.
		return
	}
	s := gesture.NewSession(ev)
	s.ExtentAtStart = restingExtent(e.opts.Heights(), e.mode)
	if e.opts.Surface != nil {
		s.InteractiveTarget = e.opts.Surface.InteractiveAt(ev.Point)
		_, s.InScrollRegion = e.opts.Surface.ScrollRegionAt(ev.Point)
	}
	e.session = s
}

// closingDelta is the signed displacement of p from the gesture start,
// positive toward the sheet's closing direction.
func (e *Engine) closingDelta(p gesture.Point) float64 {
	if e.opts.Anchor == AnchorBottom {
		return p.Y - e.session.Start.Y
	}
	return e.session.Start.Y - p.Y
}

func (e *Engine) pointerMove(ev gesture.Event) {
	s := e.session
	if s == nil {
		return
	}
	h := e.opts.Heights()
	if h.Full <= 0 {
		// Backing geometry vanished mid-gesture: reset without firing
		// any callback.
		e.abandon()
		return
	}

	prevClosing := e.closingDelta(s.Last)
	dt := s.Advance(ev)
	closing := e.closingDelta(ev.Point)
	if dt > 0 {
		s.AddSample((closing - prevClosing) / dt)
	}

	if !s.Committed && !e.tryCommit(ev, s, closing) {
		return
	}
	if e.session == nil {
		// tryCommit deferred to native scrolling.
		return
	}

	e.state = e.dragState(s, h, closing)
}

// tryCommit runs the commit test, including the scroll-conflict resolver,
// and acquires capture on success. Deferring to native scroll abandons
// the session and starts the refractory period.
func (e *Engine) tryCommit(ev gesture.Event, s *gesture.Session, closing float64) bool {
	th := e.opts.Thresholds
	adx := math.Abs(s.DeltaX())
	ady := math.Abs(s.DeltaY())

	deadzone := th.MouseDeadzone
	if s.Pointer == gesture.PointerTouch {
		deadzone = th.TouchDeadzone
	}
	if s.InteractiveTarget && ady <= th.TouchDeadzone*2 {
		// Interactive controls win small movements on either device.
		return false
	}
	if closing == 0 || ady <= deadzone || ady < adx*th.DominanceRatio {
		return false
	}

	if s.InScrollRegion && !e.scrollAllowsDrag(s, closing) {
		e.session = nil
		e.deferUntil = ev.Time.Add(th.Refractory())
		e.state = visual.Rest()
		return false
	}

	s.Committed = true
	if e.opts.Capture != nil {
		_ = e.opts.Capture.Acquire()
		e.captured = true
	}
	return true
}

// scrollAllowsDrag decides the scroll-vs-drag conflict using the region's
// live scroll position. The drag wins only when the region is already at
// the boundary the movement would push past; otherwise native scrolling
// takes the gesture.
func (e *Engine) scrollAllowsDrag(s *gesture.Session, closing float64) bool {
	if e.opts.Surface == nil {
		return true
	}
	region, ok := e.opts.Surface.ScrollRegionAt(s.Start)
	if !ok {
		return true
	}
	towardAnchor := closing > 0
	if e.opts.Anchor == AnchorTop {
		// For a top sheet the closing direction is upward, which is the
		// same finger movement that scrolls content toward its end.
		towardAnchor = !towardAnchor
	}
	if towardAnchor {
		return region.AtStart()
	}
	return region.AtEnd()
}

// dragState computes the visual state for a committed drag. Closing
// travel is spent in order: shrink capacity, then translation, then
// elastic overscale. Opening travel grows the extent where the mode
// allows it and otherwise reads as resistance.
func (e *Engine) dragState(s *gesture.Session, h layout.HeightProfile, closing float64) visual.State {
	st := visual.State{Active: true, Scale: 1, Velocity: s.LastSample()}
	start := s.ExtentAtStart

	if closing >= 0 {
		minExtent := e.minAllowedExtent(h)
		shrinkCap := math.Max(start-minExtent, 0)
		offsetCap := math.Max(minExtent, 0)

		remaining := closing
		shrink := math.Min(remaining, shrinkCap)
		remaining -= shrink
		offset := math.Min(remaining, offsetCap)
		remaining -= offset

		extent := start - shrink
		st.PendingExtent = &extent
		st.Offset = offset
		if offset > 0 && start > 0 {
			st.Progress = offset / start
		}
		if remaining > 0 {
			e.applyScale(&st, e.opts.Curves.BeyondFloor.Scale(remaining), 1)
		}
		return st
	}

	opening := -closing
	switch {
	case e.mode == ModeNormal && e.opts.CanExpand:
		growCap := math.Max(h.Full-start, 0)
		grow := math.Min(opening, growCap)
		extent := start + grow
		st.PendingExtent = &extent
		if rest := opening - grow; rest > 0 {
			// The sheet cannot grow past fullscreen.
			e.applyScale(&st, e.opts.Curves.BeyondFull.Scale(rest), -1)
		}
	case e.mode == ModeMinimized:
		growCap := math.Max(h.Dock-start, 0)
		extent := start + math.Min(opening, growCap)
		st.PendingExtent = &extent
	default:
		e.applyScale(&st, e.opts.Curves.WrongDirection.Scale(opening), -1)
	}
	return st
}

// minAllowedExtent is the smallest live extent the current mode permits
// while dragging toward closing.
func (e *Engine) minAllowedExtent(h layout.HeightProfile) float64 {
	switch e.mode {
	case ModeExpanded:
		return h.Dock
	case ModeMinimized:
		// Negative: a minimized sheet may be dragged fully off-screen.
		return -h.Header
	default:
		if e.opts.CanMinimize && e.opts.Anchor == AnchorBottom {
			return h.Header
		}
		return e.opts.Thresholds.ExtentFloor
	}
}

func (e *Engine) applyScale(st *visual.State, scale float64, direction int) {
	st.Scale = scale
	if scale > 1 {
		origin := visual.EdgeBottom
		if e.opts.Anchor == AnchorTop {
			origin = visual.EdgeTop
		}
		st.ScaleConfig = &visual.ScaleConfig{Axis: visual.AxisY, Direction: direction, Origin: origin}
	}
}

func (e *Engine) release(ev gesture.Event) {
	s := e.session
	if s == nil {
		e.state = visual.Rest()
		return
	}
	s.Advance(ev)
	committed := s.Committed
	closing := e.closingDelta(ev.Point)
	elapsed := s.ElapsedMS()
	h := e.opts.Heights()
	e.abandon()

	if !committed || h.Full <= 0 {
		return
	}

	velocity := 0.0
	if elapsed > 0 {
		velocity = closing / elapsed
	}
	ctx := ReleaseContext{
		Closing:     closing,
		Velocity:    velocity,
		Heights:     h,
		CanExpand:   e.opts.CanExpand,
		CanMinimize: e.opts.CanMinimize,
	}
	newMode, outcome := Resolve(e.mode, ctx, e.opts.Thresholds)
	e.mode = newMode

	switch outcome {
	case OutcomeClose:
		if e.opts.OnClose != nil {
			e.opts.OnClose()
		}
	case OutcomeMinimize:
		if e.opts.OnMinimize != nil {
			e.opts.OnMinimize()
		}
	case OutcomeRestore:
		if e.opts.OnRestore != nil {
			e.opts.OnRestore()
		}
	}
}

// abandon resets the session and visual state and releases capture. Mode
// is preserved; only Deactivate resets it.
func (e *Engine) abandon() {
	if e.captured && e.opts.Capture != nil {
		_ = e.opts.Capture.Release()
	}
	e.captured = false
	e.session = nil
	e.state = visual.Rest()
}

// restingExtent is the extent the sheet rests at in a given mode.
func restingExtent(h layout.HeightProfile, mode Mode) float64 {
	switch mode {
	case ModeExpanded:
		return h.Full
	case ModeMinimized:
		return h.Header
	default:
		return h.Dock
	}
}
