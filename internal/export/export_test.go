package export

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"syncups/internal/syncup"
)

func sampleSyncUps() []syncup.SyncUp {
	return []syncup.SyncUp{
		{
			ID:       "su-1",
			Title:    "Design",
			Duration: 60,
			Theme:    syncup.ThemeAppOrange,
			Attendees: []syncup.Attendee{
				{ID: "a-1", Name: "Blob"},
				{ID: "a-2", Name: "Blob Jr"},
			},
			Meetings: []syncup.Meeting{
				{
					ID:         "m-1",
					Date:       time.Date(2026, 1, 8, 9, 30, 0, 0, time.UTC),
					Transcript: "hello",
				},
			},
		},
		{
			ID:       "su-2",
			Title:    "Product",
			Duration: 1800,
			Theme:    syncup.ThemePoppy,
		},
	}
}

func TestToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.sqlite")

	if err := ToSQLite(path, sampleSyncUps()); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sync_ups`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("sync_ups = %d, want 2", count)
	}

	var title string
	var duration int
	if err := db.QueryRow(
		`SELECT title, duration FROM sync_ups WHERE id = ?`, "su-1",
	).Scan(&title, &duration); err != nil {
		t.Fatal(err)
	}
	if title != "Design" || duration != 60 {
		t.Errorf("su-1 = %q/%d", title, duration)
	}

	var name string
	if err := db.QueryRow(
		`SELECT name FROM attendees WHERE sync_up_id = ? AND pos = 1`, "su-1",
	).Scan(&name); err != nil {
		t.Fatal(err)
	}
	if name != "Blob Jr" {
		t.Errorf("attendee = %q", name)
	}

	var date, transcript string
	if err := db.QueryRow(
		`SELECT date, transcript FROM meetings WHERE id = ?`, "m-1",
	).Scan(&date, &transcript); err != nil {
		t.Fatal(err)
	}
	if date != "2026-01-08T09:30:00Z" {
		t.Errorf("date = %q", date)
	}
	if transcript != "hello" {
		t.Errorf("transcript = %q", transcript)
	}
}

func TestToSQLiteReplacesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.sqlite")

	if err := ToSQLite(path, sampleSyncUps()); err != nil {
		t.Fatal(err)
	}
	if err := ToSQLite(path, []syncup.SyncUp{{ID: "su-9", Title: "Retro", Duration: 300, Theme: syncup.ThemeSky}}); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sync_ups`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("sync_ups = %d, want 1", count)
	}
	var attendees int
	if err := db.QueryRow(`SELECT COUNT(*) FROM attendees`).Scan(&attendees); err != nil {
		t.Fatal(err)
	}
	if attendees != 0 {
		t.Errorf("attendees = %d, want 0", attendees)
	}
}
