package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the full
// list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Offline queue: events captured while disconnected, awaiting
	// submission. position preserves insertion order for replay.
	`CREATE TABLE IF NOT EXISTS offline_events (
		position      INTEGER PRIMARY KEY AUTOINCREMENT,
		id            TEXT NOT NULL UNIQUE,
		kind          TEXT NOT NULL
		              CHECK(kind IN ('entrar','salir','iniciar_pausa','terminar_pausa')),
		user_id       TEXT NOT NULL DEFAULT '',
		user_login    TEXT NOT NULL DEFAULT '',
		note          TEXT NOT NULL DEFAULT '',
		lat           TEXT NOT NULL DEFAULT '',
		lng           TEXT NOT NULL DEFAULT '',
		out_of_range  INTEGER NOT NULL DEFAULT 0,
		justification TEXT NOT NULL DEFAULT '',
		captured_at   TEXT NOT NULL
	)`,

	// Local copy of server-side clock events so history stays viewable
	// while disconnected. recorded_at keeps the raw ERP representation.
	`CREATE TABLE IF NOT EXISTS event_cache (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL DEFAULT '',
		user_login    TEXT NOT NULL DEFAULT '',
		kind          TEXT NOT NULL,
		recorded_at   TEXT NOT NULL,
		note          TEXT NOT NULL DEFAULT '',
		lat           TEXT NOT NULL DEFAULT '',
		lng           TEXT NOT NULL DEFAULT '',
		out_of_range  INTEGER NOT NULL DEFAULT 0,
		justification TEXT NOT NULL DEFAULT '',
		fetched_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_event_cache_user ON event_cache(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_cache_recorded ON event_cache(recorded_at)`,
}
