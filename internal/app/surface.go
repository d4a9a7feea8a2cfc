package app

import (
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/ui/layout"
)

// cellRect is an axis-aligned rectangle in terminal cells.
type cellRect struct {
	x, y, w, h int
}

func (r cellRect) contains(cx, cy int) bool {
	return cx >= r.x && cx < r.x+r.w && cy >= r.y && cy < r.y+r.h
}

// panelSurface answers the engines' hit-testing queries against the
// rendered drawer. The controller refreshes its rectangles and scroll
// numbers after every layout or scroll change; the engines only ever
// read it, so the snapshot it holds is always the one on screen when
// the event arrived.
type panelSurface struct {
	cellSize float64

	// heights is the live profile the sheet engine's Heights closure
	// reads.
	heights layout.HeightProfile

	panel       cellRect
	interactive cellRect

	hasScroll bool
	scroll    cellRect
	// Scroll numbers in engine units, mirroring the content viewport.
	scrollOffset   float64
	scrollViewport float64
	scrollContent  float64
}

func (s *panelSurface) cell(v float64) int {
	if s.cellSize <= 0 {
		return int(v)
	}
	return int(v / s.cellSize)
}

// InteractiveAt reports whether the point lands on the drawer's title
// row, which acts as the panel's control strip.
func (s *panelSurface) InteractiveAt(p gesture.Point) bool {
	return s.interactive.contains(s.cell(p.X), s.cell(p.Y))
}

// ScrollRegionAt returns the content viewport's scroll state when the
// point is inside it.
func (s *panelSurface) ScrollRegionAt(p gesture.Point) (gesture.ScrollRegion, bool) {
	if !s.hasScroll || !s.scroll.contains(s.cell(p.X), s.cell(p.Y)) {
		return gesture.ScrollRegion{}, false
	}
	return gesture.ScrollRegion{
		Offset:   s.scrollOffset,
		Viewport: s.scrollViewport,
		Content:  s.scrollContent,
	}, true
}

// syncSurface recomputes the hit-testing rectangles from the panel's
// resting geometry and mirrors the viewport's scroll position. Called
// after every geometry or scroll change.
func (m *Model) syncSurface() {
	s := m.surface
	s.hasScroll = false
	s.panel = cellRect{}
	s.interactive = cellRect{}
	if !m.Open {
		return
	}

	x, y, w, h := m.Panel.ContentBounds(m.restingExtentUnits())
	s.panel = cellRect{x: x, y: y, w: w, h: h}

	// The title row (inside the border) doubles as the interactive strip.
	s.interactive = cellRect{x: x, y: y + 1, w: w, h: 1}

	if m.SheetEngine != nil && m.SheetEngine.Mode() != sheet.ModeMinimized {
		cell := m.Cfg.Input.CellSize
		s.hasScroll = true
		s.scroll = cellRect{x: x + 2, y: y + 2, w: max(w-4, 0), h: m.Content.Height}
		s.scrollOffset = float64(m.Content.YOffset) * cell
		s.scrollViewport = float64(m.Content.Height) * cell
		s.scrollContent = float64(m.Content.TotalLineCount()) * cell
	}
}

// restingExtentUnits is the drawer's extent ignoring any in-flight drag,
// used for hit-testing at contact time.
func (m *Model) restingExtentUnits() float64 {
	if m.DragEngine != nil {
		return layout.Width(m.viewportUnits(m.ActiveEdge), m.Sizes[m.ActiveEdge])
	}
	if m.SheetEngine != nil {
		return m.SheetEngine.Extent()
	}
	return 0
}
