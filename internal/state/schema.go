package state

import "database/sql"

const currentSchemaVersion = 1

// DrawerPrefs is one edge's persisted preferences.
type DrawerPrefs struct {
	Edge        string
	Size        string
	CanExpand   bool
	CanMinimize bool
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS drawer_prefs (
			edge TEXT PRIMARY KEY,
			size TEXT NOT NULL,
			can_expand INTEGER NOT NULL DEFAULT 0,
			can_minimize INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}

func getPrefs(db *sql.DB, edge string) (*DrawerPrefs, error) {
	row := db.QueryRow(`
		SELECT edge, size, can_expand, can_minimize
		FROM drawer_prefs WHERE edge = ?`, edge)

	var p DrawerPrefs
	var canExpand, canMinimize int
	err := row.Scan(&p.Edge, &p.Size, &canExpand, &canMinimize)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.CanExpand = canExpand != 0
	p.CanMinimize = canMinimize != 0
	return &p, nil
}

func savePrefs(db *sql.DB, p DrawerPrefs) error {
	canExpand, canMinimize := 0, 0
	if p.CanExpand {
		canExpand = 1
	}
	if p.CanMinimize {
		canMinimize = 1
	}
	_, err := db.Exec(`
		INSERT INTO drawer_prefs (edge, size, can_expand, can_minimize)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(edge) DO UPDATE SET
			size = excluded.size,
			can_expand = excluded.can_expand,
			can_minimize = excluded.can_minimize`,
		p.Edge, p.Size, canExpand, canMinimize)
	return err
}
