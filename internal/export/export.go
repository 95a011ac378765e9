// Package export writes a SQLite snapshot of the sync-up store for ad-hoc
// querying. The JSON document stays the source of truth; the snapshot is
// regenerated from scratch on every export.
package export

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"syncups/internal/syncup"
)

const schema = `
CREATE TABLE IF NOT EXISTS sync_ups (
	id       TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	duration INTEGER NOT NULL,
	theme    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS attendees (
	id         TEXT PRIMARY KEY,
	sync_up_id TEXT NOT NULL REFERENCES sync_ups(id),
	pos        INTEGER NOT NULL,
	name       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meetings (
	id         TEXT PRIMARY KEY,
	sync_up_id TEXT NOT NULL REFERENCES sync_ups(id),
	pos        INTEGER NOT NULL,
	date       TEXT NOT NULL,
	transcript TEXT NOT NULL
);
DELETE FROM meetings;
DELETE FROM attendees;
DELETE FROM sync_ups;
`

// ToSQLite writes all sync-ups to the SQLite database at path, replacing any
// previous snapshot.
func ToSQLite(path string, syncUps []syncup.SyncUp) error {
	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("prepare schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, su := range syncUps {
		if _, err := tx.Exec(
			`INSERT INTO sync_ups (id, title, duration, theme) VALUES (?, ?, ?, ?)`,
			su.ID, su.Title, su.Duration, string(su.Theme),
		); err != nil {
			return fmt.Errorf("insert sync-up %s: %w", su.ID, err)
		}
		for i, a := range su.Attendees {
			if _, err := tx.Exec(
				`INSERT INTO attendees (id, sync_up_id, pos, name) VALUES (?, ?, ?, ?)`,
				a.ID, su.ID, i, a.Name,
			); err != nil {
				return fmt.Errorf("insert attendee %s: %w", a.ID, err)
			}
		}
		for i, meeting := range su.Meetings {
			if _, err := tx.Exec(
				`INSERT INTO meetings (id, sync_up_id, pos, date, transcript) VALUES (?, ?, ?, ?, ?)`,
				meeting.ID, su.ID, i, meeting.Date.UTC().Format("2006-01-02T15:04:05Z"), meeting.Transcript,
			); err != nil {
				return fmt.Errorf("insert meeting %s: %w", meeting.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
