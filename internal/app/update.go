package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/visual"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.syncGeometry()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.ShowHelp = !m.ShowHelp
		return m, nil
	}

	if m.ShowHelp {
		// Any other key dismisses help.
		m.ShowHelp = false
		return m, nil
	}

	if !m.Open {
		switch msg.String() {
		case "h":
			return m.openDrawer(visual.EdgeLeft), nil
		case "l":
			return m.openDrawer(visual.EdgeRight), nil
		case "k":
			return m.openDrawer(visual.EdgeTop), nil
		case "j":
			return m.openDrawer(visual.EdgeBottom), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.closeDrawer(), nil
	case "+", "=":
		return m.cycleSize(1), nil
	case "-":
		return m.cycleSize(-1), nil
	case "m":
		if m.SheetEngine != nil {
			m.SheetEngine.SetMinimized()
			m = m.drainEngineEvents()
		}
		return m, nil
	case "e":
		if m.SheetEngine != nil && m.ActiveEdge == visual.EdgeBottom {
			m.CanExpand = !m.CanExpand
			m.savePrefs(m.ActiveEdge)
			// The engine binds its capabilities at construction; rebuild
			// it to pick the change up.
			edge := m.ActiveEdge
			m = m.closeDrawer().openDrawer(edge)
			if m.CanExpand {
				m.StatusMsg = "expand enabled"
			} else {
				m.StatusMsg = "expand disabled"
			}
		}
		return m, nil
	case "up":
		if m.SheetEngine != nil {
			m.Content.LineUp(1)
			m.syncSurface()
		}
		return m, nil
	case "down":
		if m.SheetEngine != nil {
			m.Content.LineDown(1)
			m.syncSurface()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.Open {
		return m, nil
	}

	// Wheel scrolls the sheet content as long as no drag holds capture.
	if msg.Action == tea.MouseActionPress && !m.events.captured && m.SheetEngine != nil {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.Content.LineUp(3)
			m.syncSurface()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.Content.LineDown(3)
			m.syncSurface()
			return m, nil
		}
	}

	// A press on the dimmed backdrop minimizes the sheet when it can
	// minimize, and closes the drawer otherwise. The press is consumed
	// here so it never starts a gesture session.
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		!m.surface.panel.contains(msg.X, msg.Y) {
		if m.SheetEngine != nil && m.SheetEngine.Mode() == sheet.ModeNormal && m.sheetCanMinimize() {
			m.SheetEngine.SetMinimized()
			return m.drainEngineEvents(), nil
		}
		return m.closeDrawer(), nil
	}

	ev, ok := m.adapter.Translate(msg)
	if !ok {
		return m, nil
	}
	if m.DragEngine != nil {
		m.DragEngine.Handle(ev)
	} else if m.SheetEngine != nil {
		m.SheetEngine.Handle(ev)
	}
	return m.drainEngineEvents(), nil
}

func (m Model) sheetCanMinimize() bool {
	return m.CanMinimize && m.ActiveEdge == visual.EdgeBottom
}

// drainEngineEvents applies the side effects collected during the last
// engine call.
func (m Model) drainEngineEvents() Model {
	closed, minimized, restored := m.events.drain()
	switch {
	case closed:
		m = m.closeDrawer()
		m.StatusMsg = "drawer closed"
	case minimized:
		m.StatusMsg = "sheet minimized"
		m.syncSurface()
	case restored:
		m.StatusMsg = "sheet restored"
		m.syncSurface()
	}
	return m
}
