// Package keymap defines key bindings for the demo application.
package keymap

// Binding describes a single key binding for documentation.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global", "drawer", "sheet"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit", "global"},
	{[]string{"?"}, "Toggle help", "global"},
	{[]string{"h"}, "Open left drawer", "global"},
	{[]string{"l"}, "Open right drawer", "global"},
	{[]string{"k"}, "Open top sheet", "global"},
	{[]string{"j"}, "Open bottom sheet", "global"},

	// Any open drawer
	{[]string{"esc"}, "Close drawer", "drawer"},
	{[]string{"+", "-"}, "Cycle drawer size", "drawer"},

	// Bottom sheet
	{[]string{"m"}, "Minimize sheet", "sheet"},
	{[]string{"e"}, "Toggle expand capability", "sheet"},
	{[]string{"up", "down"}, "Scroll sheet content", "sheet"},
}
