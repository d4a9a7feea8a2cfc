package state

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema
// initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := initSchema(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

func TestGetPrefsEmpty(t *testing.T) {
	db := setupTestDB(t)

	p, err := getPrefs(db, "bottom")
	if err != nil {
		t.Fatalf("getPrefs failed: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil prefs on empty db, got %+v", p)
	}
}

func TestSaveAndGetPrefs(t *testing.T) {
	db := setupTestDB(t)

	want := DrawerPrefs{Edge: "bottom", Size: "large", CanExpand: true, CanMinimize: true}
	if err := savePrefs(db, want); err != nil {
		t.Fatalf("savePrefs failed: %v", err)
	}

	got, err := getPrefs(db, "bottom")
	if err != nil {
		t.Fatalf("getPrefs failed: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("getPrefs = %+v, want %+v", got, want)
	}
}

func TestSavePrefsUpsert(t *testing.T) {
	db := setupTestDB(t)

	if err := savePrefs(db, DrawerPrefs{Edge: "left", Size: "small"}); err != nil {
		t.Fatal(err)
	}
	if err := savePrefs(db, DrawerPrefs{Edge: "left", Size: "full", CanMinimize: true}); err != nil {
		t.Fatal(err)
	}

	got, err := getPrefs(db, "left")
	if err != nil {
		t.Fatal(err)
	}
	if got.Size != "full" || !got.CanMinimize {
		t.Errorf("upsert result = %+v, want size full, minimize on", got)
	}
}

// TestManagerRoundTrip saves through the debounced path and verifies the
// pending write is flushed on Close and survives a reopen.
func TestManagerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawer.db")

	m, err := openAt(path)
	if err != nil {
		t.Fatalf("openAt failed: %v", err)
	}
	m.SavePrefs(DrawerPrefs{Edge: "bottom", Size: "medium", CanMinimize: true})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m2, err := openAt(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m2.Close()

	got, err := m2.GetPrefs("bottom")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Size != "medium" || !got.CanMinimize {
		t.Errorf("prefs after reopen = %+v, want medium/minimize", got)
	}
}

func TestMockImplementsInterface(t *testing.T) {
	var s Interface = NewMock()

	s.SavePrefs(DrawerPrefs{Edge: "top", Size: "small"})
	got, err := s.GetPrefs("top")
	if err != nil || got == nil || got.Size != "small" {
		t.Errorf("mock round trip = (%+v, %v)", got, err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("mock Close = %v", err)
	}
}
