// Package app is the controller around the gesture engines: it owns the
// open/closed lifecycle of each drawer, feeds pointer input into the
// active engine, and paints the drawer layer from the engine's visual
// state. The engines themselves stay pure functions of their event
// stream; every global effect (dimming the backdrop, persisting
// preferences) happens here.
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/drag"
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/state"
	"github.com/llehouerou/drawer/internal/ui/drawerpanel"
	"github.com/llehouerou/drawer/internal/ui/layout"
	"github.com/llehouerou/drawer/internal/visual"
)

// Model is the root application model containing all state.
type Model struct {
	Cfg      *config.Config
	StateMgr state.Interface

	Width  int
	Height int

	Open       bool
	ActiveEdge visual.Edge
	ShowHelp   bool
	StatusMsg  string

	DragEngine  *drag.Engine
	SheetEngine *sheet.Engine
	Panel       drawerpanel.Model
	Content     viewport.Model

	// Per-edge preferences, loaded from the store at startup.
	Sizes       map[visual.Edge]layout.Size
	CanExpand   bool
	CanMinimize bool

	adapter *gesture.MouseAdapter
	events  *engineEvents
	surface *panelSurface
}

// engineEvents collects side effects the engines fire during Handle. It
// doubles as the pointer-capture implementation: while captured, the
// controller stops routing wheel events into the drawer content. A
// pointer keeps it stable across the value-copied tea.Model.
type engineEvents struct {
	closed    bool
	minimized bool
	restored  bool
	captured  bool
}

func (e *engineEvents) Acquire() error { e.captured = true; return nil }
func (e *engineEvents) Release() error { e.captured = false; return nil }

func (e *engineEvents) drain() (closed, minimized, restored bool) {
	closed, minimized, restored = e.closed, e.minimized, e.restored
	e.closed, e.minimized, e.restored = false, false, false
	return closed, minimized, restored
}

// New creates the application model from configuration and the
// preference store.
func New(cfg *config.Config, stateMgr state.Interface) Model {
	m := Model{
		Cfg:         cfg,
		StateMgr:    stateMgr,
		Sizes:       make(map[visual.Edge]layout.Size),
		CanExpand:   true,
		CanMinimize: true,
		adapter:     gesture.NewMouseAdapter(cfg.Input.CellSize),
		events:      &engineEvents{},
		surface:     &panelSurface{cellSize: cfg.Input.CellSize},
	}

	for _, edge := range []visual.Edge{visual.EdgeLeft, visual.EdgeRight, visual.EdgeTop, visual.EdgeBottom} {
		m.Sizes[edge] = layout.SizeMedium
		if prefs, err := stateMgr.GetPrefs(edge.String()); err == nil && prefs != nil {
			m.Sizes[edge] = layout.Size(prefs.Size)
			if edge == visual.EdgeBottom {
				m.CanExpand = prefs.CanExpand
				m.CanMinimize = prefs.CanMinimize
			}
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// viewportUnits returns the viewport extent in engine units along the
// active drawer's axis.
func (m Model) viewportUnits(edge visual.Edge) float64 {
	cell := m.Cfg.Input.CellSize
	if edge.Horizontal() {
		return float64(m.Width) * cell
	}
	return float64(m.Height) * cell
}

// heights returns the live height profile for the vertical sheet.
func (m Model) heights(edge visual.Edge) layout.HeightProfile {
	return m.Cfg.Heights(m.viewportUnits(edge), m.Sizes[edge])
}

// openDrawer activates a drawer on the given edge and builds its engine.
func (m Model) openDrawer(edge visual.Edge) Model {
	if m.Open {
		return m
	}
	m.Open = true
	m.ActiveEdge = edge
	m.StatusMsg = ""

	title := strings.ToUpper(edge.String()[:1]) + edge.String()[1:] + " drawer"
	m.Panel = drawerpanel.New(edge, title, m.Cfg.Input.CellSize)
	m.Panel.SetSize(m.Width, m.Height)

	events := m.events
	if edge.Horizontal() {
		anchor := drag.AnchorLeft
		if edge == visual.EdgeRight {
			anchor = drag.AnchorRight
		}
		m.DragEngine = drag.New(drag.Options{
			Anchor:     anchor,
			Width:      layout.Width(m.viewportUnits(edge), m.Sizes[edge]),
			Thresholds: m.Cfg.Drag,
			Curves: drag.Curves{
				WrongDirection: m.Cfg.Elastic.DragWrongDirection,
				PreCommit:      m.Cfg.Elastic.DragPreCommit,
			},
			Surface: m.surface,
			Capture: events,
			OnClose: func() { events.closed = true },
		})
	} else {
		anchor := sheet.AnchorBottom
		if edge == visual.EdgeTop {
			anchor = sheet.AnchorTop
		}
		surface := m.surface
		m.SheetEngine = sheet.New(sheet.Options{
			Anchor:      anchor,
			Heights:     func() layout.HeightProfile { return surface.heights },
			CanExpand:   m.CanExpand && edge == visual.EdgeBottom,
			CanMinimize: m.CanMinimize && edge == visual.EdgeBottom,
			Thresholds:  m.Cfg.Sheet,
			Curves: sheet.Curves{
				BeyondFloor:    m.Cfg.Elastic.SheetBeyondFloor,
				BeyondFull:     m.Cfg.Elastic.SheetBeyondFull,
				WrongDirection: m.Cfg.Elastic.SheetWrongDirection,
			},
			Surface:    m.surface,
			Capture:    events,
			OnClose:    func() { events.closed = true },
			OnMinimize: func() { events.minimized = true },
			OnRestore:  func() { events.restored = true },
		})
		m.Content = viewport.New(m.Width-4, 1)
		m.Content.SetContent(sampleContent())
	}

	m.syncGeometry()
	return m
}

// closeDrawer deactivates whichever engine is live and resets to the
// closed state. Mode resets with the engine.
func (m Model) closeDrawer() Model {
	if m.DragEngine != nil {
		m.DragEngine.Deactivate()
		m.DragEngine = nil
	}
	if m.SheetEngine != nil {
		m.SheetEngine.Deactivate()
		m.SheetEngine = nil
	}
	m.adapter.Cancel()
	m.events.drain()
	m.Open = false
	return m
}

// syncGeometry pushes the current viewport geometry into the engines and
// the hit-testing surface. Called on open, resize and size-token change.
func (m *Model) syncGeometry() {
	if !m.Open {
		return
	}
	m.Panel.SetSize(m.Width, m.Height)

	if m.DragEngine != nil {
		m.DragEngine.SetWidth(layout.Width(m.viewportUnits(m.ActiveEdge), m.Sizes[m.ActiveEdge]))
	}
	if m.SheetEngine != nil {
		m.surface.heights = m.heights(m.ActiveEdge)

		dockCells := m.Panel.Cells(m.surface.heights.Dock)
		m.Content.Width = max(m.Width-4, 1)
		m.Content.Height = max(dockCells-4, 1)
	}
	m.syncSurface()
}

// cycleSize steps the active drawer through the size tokens and persists
// the preference.
func (m Model) cycleSize(delta int) Model {
	if !m.Open {
		return m
	}
	order := []layout.Size{layout.SizeSmall, layout.SizeMedium, layout.SizeLarge, layout.SizeFull}
	cur := 1
	for i, s := range order {
		if s == m.Sizes[m.ActiveEdge] {
			cur = i
		}
	}
	next := (cur + delta + len(order)) % len(order)
	m.Sizes[m.ActiveEdge] = order[next]
	m.syncGeometry()
	m.savePrefs(m.ActiveEdge)
	m.StatusMsg = fmt.Sprintf("size: %s", order[next])
	return m
}

func (m Model) savePrefs(edge visual.Edge) {
	m.StateMgr.SavePrefs(state.DrawerPrefs{
		Edge:        edge.String(),
		Size:        string(m.Sizes[edge]),
		CanExpand:   m.CanExpand,
		CanMinimize: m.CanMinimize,
	})
}

// sampleContent fills the sheet's scrollable region.
func sampleContent() string {
	var b strings.Builder
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "%2d  The quick brown fox jumps over the lazy dog\n", i)
	}
	return strings.TrimRight(b.String(), "\n")
}
