package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/ui/overlay"
	"github.com/llehouerou/drawer/internal/ui/styles"
	"github.com/llehouerou/drawer/internal/visual"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	base := m.baseView()
	if m.Open {
		base = overlay.Dim(base)
		base = overlay.Compose(base, m.drawerLayer(), m.Width)
	}
	if m.ShowHelp {
		base = overlay.Compose(base, m.helpLayer(), m.Width)
	}
	return base
}

// baseView paints the backdrop screen the drawers slide over.
func (m Model) baseView() string {
	t := styles.T()
	s := t.S()

	lines := make([]string, m.Height)
	for i := range lines {
		lines[i] = ""
	}

	title := styles.ApplyGradient("Drawer Gestures", t.Primary, t.Secondary)
	put := func(row int, text string) {
		if row >= 0 && row < len(lines) {
			lines[row] = text
		}
	}

	put(1, "  "+title)
	put(3, "  "+s.Muted.Render("Open a drawer, then drag it with the mouse."))
	put(5, "  "+s.Base.Render("h")+s.Muted.Render("  left drawer"))
	put(6, "  "+s.Base.Render("l")+s.Muted.Render("  right drawer"))
	put(7, "  "+s.Base.Render("k")+s.Muted.Render("  top sheet"))
	put(8, "  "+s.Base.Render("j")+s.Muted.Render("  bottom sheet"))
	put(10, "  "+s.Hint.Render("? help   q quit"))

	if m.StatusMsg != "" {
		put(m.Height-2, "  "+s.Muted.Render(m.StatusMsg))
	}

	return strings.Join(lines, "\n")
}

// drawerLayer renders the active drawer from its engine's visual state.
func (m Model) drawerLayer() string {
	var (
		st        = m.engineState()
		extent    = m.restingExtentUnits()
		minimized bool
	)
	if st.PendingExtent != nil {
		extent = *st.PendingExtent
	} else if m.SheetEngine != nil {
		minimized = m.SheetEngine.Mode() == sheet.ModeMinimized
	}
	return m.Panel.Render(m.drawerContent(), st, extent, minimized)
}

func (m Model) engineState() visual.State {
	if m.DragEngine != nil {
		return m.DragEngine.State()
	}
	if m.SheetEngine != nil {
		return m.SheetEngine.State()
	}
	return visual.Rest()
}

func (m Model) drawerContent() string {
	s := styles.T().S()
	if m.SheetEngine != nil {
		hint := "drag down to "
		if m.sheetCanMinimize() {
			hint += "minimize, further to close"
		} else {
			hint += "close"
		}
		return m.Content.View() + "\n" + s.Hint.Render(hint)
	}

	var b strings.Builder
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, "item %d\n", i)
	}
	b.WriteString(s.Hint.Render("drag toward the " + m.ActiveEdge.String() + " edge to close"))
	return b.String()
}

// helpLayer renders the key binding reference as a centered popup.
func (m Model) helpLayer() string {
	t := styles.T()
	s := t.S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Key bindings") + "\n")
	lastCtx := ""
	for _, kb := range keymap.All {
		if kb.Context != lastCtx {
			lastCtx = kb.Context
			b.WriteString("\n" + s.Muted.Render(lastCtx) + "\n")
		}
		keys := strings.Join(kb.Keys, ", ")
		fmt.Fprintf(&b, "  %s %s\n", s.Base.Render(fmt.Sprintf("%-10s", keys)), s.Muted.Render(kb.Description))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 2).
		Render(strings.TrimRight(b.String(), "\n"))

	return centerLayer(box, m.Width, m.Height)
}

// centerLayer positions a box in the middle of a full-screen layer for
// the overlay compositor.
func centerLayer(box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	top := (height - len(boxLines)) / 2
	if top < 0 {
		top = 0
	}
	indent := (width - lipgloss.Width(box)) / 2
	if indent < 0 {
		indent = 0
	}

	out := make([]string, height)
	for i, line := range boxLines {
		if top+i >= height {
			break
		}
		out[top+i] = strings.Repeat(" ", indent) + line
	}
	return strings.Join(out, "\n")
}
