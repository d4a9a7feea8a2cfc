package styles

import "github.com/charmbracelet/lipgloss"

// PanelBorder returns the drawer border color for the current drag state.
// Resting drawers use the neutral border; a committed drag uses the
// accent; elastic resistance blends toward the limit color as the
// overscale factor approaches the curve's cap.
func PanelBorder(dragging bool, resistance float64) lipgloss.Color {
	t := T()
	base := t.Border
	if dragging {
		base = t.BorderDrag
	}
	if resistance <= 0 {
		return base
	}
	return Blend(base, t.BorderLimit, resistance)
}

// PanelStyle returns the bordered style for a drawer body.
func PanelStyle(dragging bool, resistance float64) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(PanelBorder(dragging, resistance))
}
