package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/drawer/internal/ui/layout"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Input.CellSize != 8 {
		t.Errorf("CellSize = %v, want 8", cfg.Input.CellSize)
	}
	if cfg.Drag.Deadzone != 7 {
		t.Errorf("Drag.Deadzone = %v, want 7", cfg.Drag.Deadzone)
	}
	if cfg.Sheet.ForceCloseVelocityFactor != 3.0 {
		t.Errorf("Sheet.ForceCloseVelocityFactor = %v, want 3.0", cfg.Sheet.ForceCloseVelocityFactor)
	}
	if cfg.Elastic.SheetBeyondFull.MaxScale != 0.10 {
		t.Errorf("SheetBeyondFull.MaxScale = %v, want 0.10", cfg.Elastic.SheetBeyondFull.MaxScale)
	}
	if cfg.HeaderExtent != 64 {
		t.Errorf("HeaderExtent = %v, want 64", cfg.HeaderExtent)
	}
}

func TestLoadMissingFilesUsesDefaults(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "nope.toml")})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}
	if cfg.Drag.CloseFraction != 0.4 {
		t.Errorf("CloseFraction = %v, want default 0.4", cfg.Drag.CloseFraction)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
header_extent = 48

[input]
cell_size = 4

[sheet]
minimize_fraction = 0.2

[elastic.drag_pre_commit]
start = 10
travel = 200
max_scale = 0.12
exponent = 2.1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if cfg.Input.CellSize != 4 {
		t.Errorf("CellSize = %v, want 4", cfg.Input.CellSize)
	}
	if cfg.Sheet.MinimizeFraction != 0.2 {
		t.Errorf("MinimizeFraction = %v, want 0.2", cfg.Sheet.MinimizeFraction)
	}
	if cfg.Elastic.DragPreCommit.MaxScale != 0.12 {
		t.Errorf("DragPreCommit.MaxScale = %v, want 0.12", cfg.Elastic.DragPreCommit.MaxScale)
	}
	// Untouched keys keep their defaults.
	if cfg.Sheet.ExpandFraction != 0.3 {
		t.Errorf("ExpandFraction = %v, want default 0.3", cfg.Sheet.ExpandFraction)
	}
	if cfg.HeaderExtent != 48 {
		t.Errorf("HeaderExtent = %v, want 48", cfg.HeaderExtent)
	}
}

func TestFractionFallsBackToMedium(t *testing.T) {
	cfg := Default()
	if got := cfg.Fraction(layout.Size("bogus")); got != 0.40 {
		t.Errorf("Fraction(bogus) = %v, want medium 0.40", got)
	}
}

func TestHeightsUsesConfiguredTable(t *testing.T) {
	cfg := Default()
	cfg.Sizes["medium"] = 0.5
	cfg.HeaderExtent = 40

	h := cfg.Heights(1000, layout.SizeMedium)
	want := layout.HeightProfile{Header: 40, Dock: 500, Full: 1000}
	if h != want {
		t.Errorf("Heights = %+v, want %+v", h, want)
	}
}
