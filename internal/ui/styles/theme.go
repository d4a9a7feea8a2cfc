package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the drawer UI.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused drawer, active states
	Secondary lipgloss.Color // Gold/orange - resistance feedback

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text, dimmed backdrop

	// Backgrounds
	BgBase   lipgloss.Color // Drawer backgrounds
	BgHeader lipgloss.Color // Minimized header strip

	// Borders
	Border      lipgloss.Color // Resting drawer borders
	BorderDrag  lipgloss.Color // Borders while a drag is committed
	BorderLimit lipgloss.Color // Borders at full elastic overscale

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text, backdrop content
	Title  lipgloss.Style // Bold, bright
	Header lipgloss.Style // Minimized header strip text
	Hint   lipgloss.Style // Key hints in footers
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgHeader: lipgloss.Color("#262626"),

	Border:      lipgloss.Color("#585858"),
	BorderDrag:  lipgloss.Color("#a78bfa"),
	BorderLimit: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgHeader).
			Bold(true),
		Hint: lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
	}
}
