package drawerpanel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawer/internal/visual"
)

func plainLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Strip(l)
	}
	return lines
}

func TestRenderBottomDrawerOccupiesLowerRows(t *testing.T) {
	m := New(visual.EdgeBottom, "Queue", 8)
	m.SetSize(40, 20)

	// 48 units = 6 cells at cell size 8.
	out := m.Render("hello", visual.Rest(), 48, false)
	lines := plainLines(out)

	if len(lines) != 20 {
		t.Fatalf("layer has %d lines, want 20", len(lines))
	}
	for i := 0; i < 14; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			t.Errorf("line %d = %q, want empty above the drawer", i, lines[i])
		}
	}
	bottom := strings.Join(lines[14:], "\n")
	if !strings.Contains(bottom, "Queue") {
		t.Error("drawer rows missing the title")
	}
}

func TestRenderOffsetSlidesOffscreen(t *testing.T) {
	m := New(visual.EdgeBottom, "Queue", 8)
	m.SetSize(40, 20)

	st := visual.Rest()
	st.Active = true
	st.Offset = 24 // 3 cells

	out := m.Render("hello", st, 48, false)
	lines := plainLines(out)

	// 6-cell drawer minus 3 cells of offset: only 3 visible rows.
	for i := 0; i < 17; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			t.Errorf("line %d = %q, want empty", i, lines[i])
		}
	}
	if strings.TrimSpace(lines[17]) == "" {
		t.Error("line 17 empty, want visible drawer row")
	}
}

func TestRenderFullyOffscreenIsEmpty(t *testing.T) {
	m := New(visual.EdgeBottom, "Queue", 8)
	m.SetSize(40, 20)

	st := visual.Rest()
	st.Offset = 48

	if out := m.Render("hello", st, 48, false); out != "" {
		t.Errorf("fully offset drawer rendered %q, want empty", out)
	}
}

func TestRenderMinimizedHeaderStrip(t *testing.T) {
	m := New(visual.EdgeBottom, "Queue", 8)
	m.SetSize(40, 20)

	out := m.Render("hello", visual.Rest(), 16, true) // 2 cells
	lines := plainLines(out)

	if strings.TrimSpace(lines[19]) == "" {
		t.Error("bottom row empty, want header strip")
	}
	joined := strings.Join(lines, "\n")
	if strings.Contains(joined, "hello") {
		t.Error("minimized drawer must not render body content")
	}
	if !strings.Contains(joined, "Queue") {
		t.Error("header strip missing the title")
	}
}

func TestRenderLeftDrawer(t *testing.T) {
	m := New(visual.EdgeLeft, "Nav", 8)
	m.SetSize(40, 10)

	out := m.Render("x", visual.Rest(), 80, false) // 10 cells wide
	lines := plainLines(out)

	if w := ansi.StringWidth(lines[0]); w != 10 {
		t.Errorf("left drawer row width = %d, want 10", w)
	}
}

func TestContentBounds(t *testing.T) {
	tests := []struct {
		edge       visual.Edge
		x, y, w, h int
	}{
		{visual.EdgeLeft, 0, 0, 10, 20},
		{visual.EdgeRight, 30, 0, 10, 20},
		{visual.EdgeTop, 0, 0, 40, 10},
		{visual.EdgeBottom, 0, 10, 40, 10},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			m := New(tt.edge, "t", 8)
			m.SetSize(40, 20)
			x, y, w, h := m.ContentBounds(80) // 10 cells
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("ContentBounds = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}
