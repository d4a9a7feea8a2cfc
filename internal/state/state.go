// Package state persists per-edge drawer preferences (size token,
// capability toggles) across runs. In-gesture drag state is deliberately
// never persisted; only resting preferences are.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "drawer"
	dbFileName   = "drawer.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager stores preferences in a SQLite database under the xdg data dir.
// Saves are debounced so rapid toggling during a session coalesces into
// one write.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]DrawerPrefs
}

// Open opens (creating if needed) the preference database.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return openAt(dbPath)
}

func openAt(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, pending: make(map[string]DrawerPrefs)}, nil
}

// Close flushes any pending saves and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = make(map[string]DrawerPrefs)
	m.saveMu.Unlock()

	for _, p := range pending {
		_ = savePrefs(m.db, p)
	}

	return m.db.Close()
}

// GetPrefs returns the stored preferences for an edge, or nil if none
// were saved yet.
func (m *Manager) GetPrefs(edge string) (*DrawerPrefs, error) {
	return getPrefs(m.db, edge)
}

// SavePrefs schedules a debounced save of one edge's preferences.
func (m *Manager) SavePrefs(prefs DrawerPrefs) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[prefs.Edge] = prefs

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = make(map[string]DrawerPrefs)
		m.saveMu.Unlock()

		for _, p := range pending {
			_ = savePrefs(m.db, p)
		}
	})
}
