// Package drag implements the gesture engine for drawers anchored to the
// left or right screen edge. It consumes the canonical pointer stream
// while the drawer is open and produces a visual.State after every event;
// the presentation layer applies the offset and overscale, and the engine
// calls OnClose at most once per gesture when a release qualifies.
package drag

import (
	"math"

	"github.com/llehouerou/drawer/internal/elastic"
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/visual"
)

// Anchor is the screen edge the drawer slides in from.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorRight
)

// Thresholds holds the tuning values for gesture classification and the
// release decision. The defaults are the empirically tuned set; they are
// deliberately not rationalized into rounder numbers.
type Thresholds struct {
	// Deadzone is the movement below which a gesture stays uncommitted.
	// Relaxed compared to the vertical engine.
	Deadzone float64 `koanf:"deadzone"`
	// InteractiveDeadzone replaces Deadzone when the contact started on
	// an interactive control.
	InteractiveDeadzone float64 `koanf:"interactive_deadzone"`
	// DominanceRatio is how strongly horizontal movement must dominate
	// vertical movement to commit.
	DominanceRatio float64 `koanf:"dominance_ratio"`
	// CloseFraction of the panel width that closes on release.
	CloseFraction float64 `koanf:"close_fraction"`
	// CloseVelocity in units/ms toward closing that closes on release
	// regardless of distance.
	CloseVelocity float64 `koanf:"close_velocity"`
}

// DefaultThresholds returns the tuned defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Deadzone:            7,
		InteractiveDeadzone: 16,
		DominanceRatio:      1.1,
		CloseFraction:       0.4,
		CloseVelocity:       0.5,
	}
}

// Curves selects the elastic feedback curves this engine uses.
type Curves struct {
	// WrongDirection applies when a committed drag reverses past its
	// start point.
	WrongDirection elastic.Curve
	// PreCommit applies to wrong-direction movement before commit.
	PreCommit elastic.Curve
}

// DefaultCurves returns the engine's slice of the default curve table.
func DefaultCurves() Curves {
	p := elastic.DefaultProfile()
	return Curves{WrongDirection: p.DragWrongDirection, PreCommit: p.DragPreCommit}
}

// Options configures an Engine.
type Options struct {
	Anchor     Anchor
	Width      float64 // live panel width in engine units
	Thresholds Thresholds
	Curves     Curves
	Surface    gesture.Surface // optional
	Capture    gesture.Capture // optional
	OnClose    func()          // fired at most once per gesture
}

// Engine recognizes close gestures on a horizontal drawer. Not safe for
// concurrent use; all events arrive sequentially on the UI thread.
type Engine struct {
	opts     Options
	session  *gesture.Session
	captured bool
	state    visual.State
}

// New creates an engine. Zero-value thresholds and curves are replaced by
// the defaults.
func New(opts Options) *Engine {
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = DefaultThresholds()
	}
	if opts.Curves == (Curves{}) {
		opts.Curves = DefaultCurves()
	}
	return &Engine{opts: opts, state: visual.Rest()}
}

// State returns the current visual state.
func (e *Engine) State() visual.State {
	return e.state
}

// SetWidth updates the live panel width. Losing the backing geometry
// mid-gesture abandons the session without firing any callback.
func (e *Engine) SetWidth(w float64) {
	e.opts.Width = w
	if w <= 0 && e.session != nil {
		e.abandon()
	}
}

// Deactivate synchronously abandons any in-flight gesture, releasing
// capture and resetting visual state. Called when the drawer closes for
// any reason outside the gesture.
func (e *Engine) Deactivate() {
	e.abandon()
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
		// A second contact while one gesture is live is ignored.
		return
	}
	s := gesture.NewSession(ev)
	if e.opts.Surface != nil {
		s.InteractiveTarget = e.opts.Surface.InteractiveAt(ev.Point)
	}
	e.session = s
}

// closingDelta is the signed displacement of p from the gesture start,
// positive toward the drawer's closing direction.
func (e *Engine) closingDelta(p gesture.Point) float64 {
	if e.opts.Anchor == AnchorLeft {
		return e.session.Start.X - p.X
	}
	return p.X - e.session.Start.X
}

func (e *Engine) pointerMove(ev gesture.Event) {
	s := e.session
	if s == nil {
		return
	}

	prevClosing := e.closingDelta(s.Last)
	dt := s.Advance(ev)
	closing := e.closingDelta(ev.Point)
	if dt > 0 {
		s.AddSample((closing - prevClosing) / dt)
	}

	if !s.Committed && !e.tryCommit(s, closing) {
		if closing < 0 {
			// Pre-commit wrong direction: elastic feedback only, no
			// offset, no commitment.
			e.setScale(e.opts.Curves.PreCommit.Scale(-closing), s)
			return
		}
		// Below-deadzone movement in the closing direction is buffered
		// silently.
		return
	}

	if closing >= 0 {
		width := e.opts.Width
		offset := math.Min(closing, width)
		if offset < 0 {
			offset = 0
		}
		progress := 0.0
		if width > 0 {
			progress = offset / width
		}
		e.state = visual.State{
			Active:   true,
			Offset:   offset,
			Progress: progress,
			Scale:    1,
			Velocity: s.LastSample(),
		}
		return
	}

	// Momentarily reversed past the start point: offset never goes
	// negative, the reversal reads as overscale instead.
	e.state = visual.State{Active: true, Scale: 1, Velocity: s.LastSample()}
	e.setScale(e.opts.Curves.WrongDirection.Scale(-closing), s)
}

// tryCommit runs the commit test and acquires capture on success.
func (e *Engine) tryCommit(s *gesture.Session, closing float64) bool {
	adx := math.Abs(s.DeltaX())
	ady := math.Abs(s.DeltaY())

	deadzone := e.opts.Thresholds.Deadzone
	if s.InteractiveTarget {
		deadzone = e.opts.Thresholds.InteractiveDeadzone
	}

	if closing <= 0 || adx <= deadzone || adx < ady*e.opts.Thresholds.DominanceRatio {
		return false
	}

	s.Committed = true
	if e.opts.Capture != nil {
		_ = e.opts.Capture.Acquire()
		e.captured = true
	}
	return true
}

// setScale writes an overscale-only state, attaching the scale config
// required whenever the factor exceeds 1.
func (e *Engine) setScale(scale float64, s *gesture.Session) {
	st := visual.State{Active: s.Committed, Scale: scale, Velocity: s.LastSample()}
	if scale > 1 {
		origin := visual.EdgeLeft
		if e.opts.Anchor == AnchorRight {
			origin = visual.EdgeRight
		}
		st.ScaleConfig = &visual.ScaleConfig{Axis: visual.AxisX, Direction: -1, Origin: origin}
	}
	e.state = st
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
	mean := s.MeanSample()
	e.abandon()

	if !committed {
		return
	}
	width := e.opts.Width
	if width > 0 && closing >= e.opts.Thresholds.CloseFraction*width ||
		mean > e.opts.Thresholds.CloseVelocity {
		if e.opts.OnClose != nil {
			e.opts.OnClose()
		}
	}
}

// abandon resets the session and visual state and releases capture. Every
// terminal path goes through here so the engine can never be left in a
// committed-but-orphaned state.
func (e *Engine) abandon() {
	if e.captured && e.opts.Capture != nil {
		_ = e.opts.Capture.Release()
	}
	e.captured = false
	e.session = nil
	e.state = visual.Rest()
}
