package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/ui/layout"
)

// driver feeds a synthetic gesture into an engine with controlled timing.
type driver struct {
	e  *Engine
	t  time.Time
	at gesture.Point
}

func newDriver(e *Engine, x, y float64) *driver {
	d := &driver{e: e, t: time.Unix(10, 0), at: gesture.Point{X: x, Y: y}}
	d.e.Handle(gesture.Event{Kind: gesture.KindDown, Point: d.at, Time: d.t})
	return d
}

func (d *driver) down() {
	d.e.Handle(gesture.Event{Kind: gesture.KindDown, Point: d.at, Time: d.t})
}

func (d *driver) move(dx, dy float64, over time.Duration) {
	const steps = 4
	for i := 1; i <= steps; i++ {
		d.t = d.t.Add(over / steps)
		p := gesture.Point{
			X: d.at.X + dx*float64(i)/steps,
			Y: d.at.Y + dy*float64(i)/steps,
		}
		d.e.Handle(gesture.Event{Kind: gesture.KindMove, Point: p, Time: d.t})
	}
	d.at.X += dx
	d.at.Y += dy
}

func (d *driver) up() {
	d.t = d.t.Add(time.Millisecond)
	d.e.Handle(gesture.Event{Kind: gesture.KindUp, Point: d.at, Time: d.t})
}

type callbacks struct {
	closed, minimized, restored int
}

func (c *callbacks) wire(opts *Options) {
	opts.OnClose = func() { c.closed++ }
	opts.OnMinimize = func() { c.minimized++ }
	opts.OnRestore = func() { c.restored++ }
}

type scrollSurface struct {
	region gesture.ScrollRegion
	has    bool
}

func (s *scrollSurface) InteractiveAt(gesture.Point) bool { return false }
func (s *scrollSurface) ScrollRegionAt(gesture.Point) (gesture.ScrollRegion, bool) {
	return s.region, s.has
}

func heights() layout.HeightProfile {
	return layout.HeightProfile{Header: 64, Dock: 600, Full: 1000}
}

func newBottomSheet(cb *callbacks, expand, minimize bool) *Engine {
	opts := Options{
		Anchor:      AnchorBottom,
		Heights:     heights,
		CanExpand:   expand,
		CanMinimize: minimize,
	}
	if cb != nil {
		cb.wire(&opts)
	}
	return New(opts)
}

func TestSlowDragToMinimize(t *testing.T) {
	// Bottom sheet, dock 600, minimize enabled, expand disabled: 200
	// units down (33% of dock) at low velocity minimizes on release.
	cb := &callbacks{}
	e := newBottomSheet(cb, false, true)
	d := newDriver(e, 100, 400)

	d.move(0, 200, 2*time.Second)
	d.up()

	assert.Equal(t, ModeMinimized, e.Mode())
	assert.Equal(t, 1, cb.minimized, "minimize callback fires exactly once")
	assert.Zero(t, cb.closed)
}

func TestShortDragDiscarded(t *testing.T) {
	// Same sheet, 50 units down (8% of dock), no swipe velocity: nothing
	// happens and the visual state resets.
	cb := &callbacks{}
	e := newBottomSheet(cb, false, true)
	d := newDriver(e, 100, 400)

	d.move(0, 50, time.Second)
	d.up()

	assert.Equal(t, ModeNormal, e.Mode())
	assert.Zero(t, cb.closed)
	assert.Zero(t, cb.minimized)
	st := e.State()
	assert.False(t, st.Active)
	assert.Zero(t, st.Offset)
	assert.Equal(t, 1.0, st.Scale)
}

func TestMinimizedRestore(t *testing.T) {
	// Minimized sheet, header 64: 40 units up (>50% of header) restores.
	cb := &callbacks{}
	e := newBottomSheet(cb, false, true)
	e.SetMinimized()
	require.Equal(t, ModeMinimized, e.Mode())
	require.Equal(t, 1, cb.minimized)

	d := newDriver(e, 100, 900)
	d.move(0, -40, 300*time.Millisecond)
	d.up()

	assert.Equal(t, ModeNormal, e.Mode())
	assert.Equal(t, 1, cb.restored, "restore callback fires exactly once")
	assert.Zero(t, cb.closed)
}

func TestSetMinimizedIdempotent(t *testing.T) {
	cb := &callbacks{}
	e := newBottomSheet(cb, false, true)

	e.SetMinimized()
	e.SetMinimized()

	assert.Equal(t, ModeMinimized, e.Mode())
	assert.Equal(t, 1, cb.minimized, "second call must not re-fire the callback")
}

func TestSetMinimizedRequiresCapability(t *testing.T) {
	cb := &callbacks{}
	e := newBottomSheet(cb, false, false)

	e.SetMinimized()

	assert.Equal(t, ModeNormal, e.Mode())
	assert.Zero(t, cb.minimized)
}

func TestExpandByDrag(t *testing.T) {
	cb := &callbacks{}
	e := newBottomSheet(cb, true, false)
	d := newDriver(e, 100, 800)

	// Opening drag grows the live extent toward fullscreen.
	d.move(0, -300, 500*time.Millisecond)
	st := e.State()
	require.True(t, st.Active)
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, 900.0, *st.PendingExtent) // dock 600 + 300

	d.up()
	assert.Equal(t, ModeExpanded, e.Mode())
	assert.Equal(t, 1000.0, e.Extent())
}

func TestExtentPipelineShrinkThenTranslateThenElastic(t *testing.T) {
	// Normal bottom sheet with minimize enabled: min extent is the
	// header (64). Shrink capacity is 600-64=536, then translation up to
	// 64, then elastic.
	e := newBottomSheet(nil, false, true)
	d := newDriver(e, 100, 200)

	d.move(0, 300, 300*time.Millisecond)
	st := e.State()
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, 300.0, *st.PendingExtent)
	assert.Zero(t, st.Offset)
	assert.Equal(t, 1.0, st.Scale)

	d.move(0, 286, 300*time.Millisecond) // total 586: extent at floor, offset 50
	st = e.State()
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, 64.0, *st.PendingExtent)
	assert.Equal(t, 50.0, st.Offset)
	assert.Equal(t, 50.0/600.0, st.Progress)
	assert.Equal(t, 1.0, st.Scale)

	d.move(0, 100, 300*time.Millisecond) // total 686: both exhausted by 86
	st = e.State()
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, 64.0, *st.PendingExtent, "extent clamps at the floor during elastic")
	assert.Equal(t, 64.0, st.Offset, "offset clamps at the translation capacity")
	assert.Greater(t, st.Scale, 1.0)
	require.NotNil(t, st.ScaleConfig)
}

func TestExpandCapBeyondFullOverscale(t *testing.T) {
	e := newBottomSheet(nil, true, false)
	d := newDriver(e, 100, 900)

	d.move(0, -500, 500*time.Millisecond) // grow cap is 400
	st := e.State()
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, 1000.0, *st.PendingExtent, "cannot grow past fullscreen")
	assert.Greater(t, st.Scale, 1.0)
}

func TestOpeningWithoutExpandIsResistance(t *testing.T) {
	e := newBottomSheet(nil, false, false)
	d := newDriver(e, 100, 900)

	d.move(0, -200, 300*time.Millisecond)
	st := e.State()
	assert.Nil(t, st.PendingExtent, "extent must not change")
	assert.Greater(t, st.Scale, 1.0)
	assert.Zero(t, st.Offset)
}

func TestMinimizedDragOffscreen(t *testing.T) {
	// Minimized sheets permit dragging fully off-screen: the floor is
	// negative, so extent keeps shrinking and no translation occurs.
	e := newBottomSheet(nil, false, true)
	e.SetMinimized()
	d := newDriver(e, 100, 950)

	d.move(0, 100, 200*time.Millisecond)
	st := e.State()
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, -36.0, *st.PendingExtent) // header 64 - 100
	assert.Zero(t, st.Offset)
}

func TestScrollConflictDefersToNativeScroll(t *testing.T) {
	// Content not at its top: dragging a bottom sheet downward must fall
	// through to native scrolling.
	surface := &scrollSurface{
		region: gesture.ScrollRegion{Offset: 120, Viewport: 200, Content: 800},
		has:    true,
	}
	e := New(Options{Anchor: AnchorBottom, Heights: heights, CanMinimize: true, Surface: surface})
	d := newDriver(e, 100, 400)

	d.move(0, 60, 100*time.Millisecond)

	st := e.State()
	assert.False(t, st.Active, "gesture must defer to scrolling")

	// Refractory: an immediate retry is ignored.
	d.down()
	d.move(0, 60, 10*time.Millisecond)
	assert.False(t, e.State().Active)

	// After the refractory lapses, at the top of the content, drag wins.
	surface.region.Offset = 0
	d.t = d.t.Add(150 * time.Millisecond)
	d.down()
	d.move(0, 60, 100*time.Millisecond)
	assert.True(t, e.State().Active)
}

func TestScrollAtBoundaryAllowsDrag(t *testing.T) {
	surface := &scrollSurface{
		region: gesture.ScrollRegion{Offset: 0, Viewport: 200, Content: 800},
		has:    true,
	}
	e := New(Options{Anchor: AnchorBottom, Heights: heights, CanMinimize: true, Surface: surface})
	d := newDriver(e, 100, 400)

	d.move(0, 60, 100*time.Millisecond)
	assert.True(t, e.State().Active)
}

func TestCaptureReleasedOnCancel(t *testing.T) {
	spy := &captureSpy{}
	e := New(Options{Anchor: AnchorBottom, Heights: heights, CanMinimize: true, Capture: spy})
	d := newDriver(e, 100, 400)
	d.move(0, 100, 100*time.Millisecond)

	require.Equal(t, 1, spy.acquired)
	e.Handle(gesture.Event{Kind: gesture.KindCancel, Time: d.t})
	assert.Equal(t, 1, spy.released)
	assert.False(t, e.State().Active)
}

func TestGeometryLossResetsWithoutCallbacks(t *testing.T) {
	cb := &callbacks{}
	gone := false
	opts := Options{
		Anchor:      AnchorBottom,
		CanMinimize: true,
		Heights: func() layout.HeightProfile {
			if gone {
				return layout.HeightProfile{}
			}
			return heights()
		},
	}
	cb.wire(&opts)
	e := New(opts)
	d := newDriver(e, 100, 200)
	d.move(0, 400, 200*time.Millisecond)

	gone = true
	d.move(0, 10, 10*time.Millisecond)

	assert.False(t, e.State().Active)
	d.up()
	assert.Zero(t, cb.closed)
	assert.Zero(t, cb.minimized)
}

func TestDeactivateResetsMode(t *testing.T) {
	e := newBottomSheet(nil, false, true)
	e.SetMinimized()
	require.Equal(t, ModeMinimized, e.Mode())

	e.Deactivate()
	assert.Equal(t, ModeNormal, e.Mode())
	assert.False(t, e.State().Active)
}

func TestTopSheetClosingDirection(t *testing.T) {
	// A top sheet closes upward.
	closed := 0
	e := New(Options{
		Anchor:  AnchorTop,
		Heights: heights,
		OnClose: func() { closed++ },
	})
	d := newDriver(e, 100, 500)

	d.move(0, -250, 2*time.Second) // 250 >= 40% of dock 600
	st := e.State()
	require.True(t, st.Active)
	require.NotNil(t, st.PendingExtent)
	assert.Equal(t, 350.0, *st.PendingExtent)

	d.up()
	assert.Equal(t, 1, closed)
}

type captureSpy struct {
	acquired, released int
}

func (c *captureSpy) Acquire() error { c.acquired++; return nil }
func (c *captureSpy) Release() error { c.released++; return nil }
