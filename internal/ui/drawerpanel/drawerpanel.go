// Package drawerpanel renders a drawer from its engine visual state. It
// is a pure presentation layer: it consumes the offset, extent and
// overscale the engines computed and paints a layer string for the
// overlay compositor; it never feeds anything back into the engines.
package drawerpanel

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/drawer/internal/ui/styles"
	"github.com/llehouerou/drawer/internal/visual"
)

// Model is the renderable state of one drawer.
type Model struct {
	Edge     visual.Edge
	Title    string
	CellSize float64 // engine units per terminal cell

	width  int // terminal width
	height int // terminal height
}

// New creates a drawer panel for an edge.
func New(edge visual.Edge, title string, cellSize float64) Model {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Model{Edge: edge, Title: title, CellSize: cellSize}
}

// SetSize sets the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cells converts engine units to whole terminal cells.
func (m Model) Cells(units float64) int {
	return int(math.Round(units / m.CellSize))
}

// Render paints the drawer as a full-screen layer for overlay.Compose.
// extentUnits is the drawer's live extent (PendingExtent while resizing,
// the resting extent otherwise); minimized selects the header-strip
// rendering. The engine's translation offset slides the drawer toward
// its edge, cropping what has left the screen.
func (m Model) Render(content string, st visual.State, extentUnits float64, minimized bool) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	extent := m.Cells(extentUnits)
	offset := m.Cells(st.Offset)
	if offset < 0 {
		offset = 0
	}

	// Overscale cannot render as a sub-cell transform; it shows as a
	// border tint ramping toward the limit color instead.
	resistance := math.Min((st.Scale-1)*10, 1)

	var box string
	if m.Edge.Horizontal() {
		box = m.renderBody(content, extent, m.height, st.Active, resistance)
		return m.placeHorizontal(box, extent, offset)
	}

	if minimized {
		box = m.renderHeader(extent)
	} else {
		box = m.renderBody(content, m.width, extent, st.Active, resistance)
	}
	return m.placeVertical(box, extent, offset)
}

// renderBody draws the bordered drawer box at the given outer size.
func (m Model) renderBody(content string, w, h int, dragging bool, resistance float64) string {
	if w < 2 || h < 2 {
		return ""
	}
	title := runewidth.Truncate(m.Title, w-2, "…")
	inner := styles.T().S().Title.Render(title) + "\n" + content
	return styles.PanelStyle(dragging, resistance).
		Width(w - 2).
		Height(h - 2).
		MaxHeight(h).
		Render(inner)
}

// renderHeader draws the minimized header strip.
func (m Model) renderHeader(h int) string {
	if h < 1 {
		return ""
	}
	s := styles.T().S()
	label := " " + runewidth.Truncate(m.Title, m.width-20, "…") + "  (drag up to restore)"
	line := s.Header.Width(m.width).Render(label)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// placeHorizontal positions a left/right drawer, sliding it off-screen by
// the offset.
func (m Model) placeHorizontal(box string, extent, offset int) string {
	visible := extent - offset
	if visible <= 0 || box == "" {
		return ""
	}
	lines := strings.Split(box, "\n")
	out := make([]string, m.height)
	for i := range out {
		if i >= len(lines) {
			continue
		}
		switch m.Edge {
		case visual.EdgeLeft:
			// The drawer's left columns have slid off-screen.
			out[i] = ansi.Cut(lines[i], offset, extent)
		case visual.EdgeRight:
			kept := ansi.Cut(lines[i], 0, visible)
			out[i] = strings.Repeat(" ", m.width-visible) + kept
		}
	}
	return strings.Join(out, "\n")
}

// placeVertical positions a top/bottom drawer, sliding it off-screen by
// the offset.
func (m Model) placeVertical(box string, extent, offset int) string {
	visible := extent - offset
	if visible <= 0 || box == "" {
		return ""
	}
	if visible > m.height {
		visible = m.height
	}
	lines := strings.Split(box, "\n")
	if len(lines) > extent {
		lines = lines[:extent]
	}

	out := make([]string, m.height)
	switch m.Edge {
	case visual.EdgeBottom:
		// Keep the top rows of the box; the bottom ones slid off-screen.
		for i := 0; i < visible && i < len(lines); i++ {
			out[m.height-visible+i] = lines[i]
		}
	case visual.EdgeTop:
		// Keep the bottom rows of the box.
		skip := len(lines) - visible
		if skip < 0 {
			skip = 0
		}
		for i := 0; i+skip < len(lines) && i < visible; i++ {
			out[i] = lines[i+skip]
		}
	}
	return strings.Join(out, "\n")
}

// ContentBounds returns the cell rectangle the drawer body occupies at a
// given extent, for hit-testing by the controller. Returns x, y, width,
// height.
func (m Model) ContentBounds(extentUnits float64) (int, int, int, int) {
	extent := m.Cells(extentUnits)
	switch m.Edge {
	case visual.EdgeLeft:
		return 0, 0, extent, m.height
	case visual.EdgeRight:
		return m.width - extent, 0, extent, m.height
	case visual.EdgeTop:
		return 0, 0, m.width, extent
	default:
		return 0, m.height - extent, m.width, extent
	}
}
