package repository

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rubytogether/time-card/internal/db"
	"github.com/rubytogether/time-card/internal/model"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	return database
}

func seedEntry(t *testing.T, database *sqlx.DB) *model.Entry {
	t.Helper()

	worker, err := NewWorkerRepository(database).FindOrCreate("alice")
	if err != nil {
		t.Fatalf("create worker: %v", err)
	}

	entry := &model.Entry{
		WorkerID: worker.ID,
		Minutes:  90,
		Message:  "worked on the api",
		Date:     time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
	}
	err = NewEntryRepository(database).Create(entry)
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return entry
}

func TestEntryUpdatePatchesOnlySuppliedFields(t *testing.T) {
	database := testDB(t)
	entry := seedEntry(t, database)
	entries := NewEntryRepository(database)

	minutes := 45
	updated, err := entries.Update(entry.ID, model.EntryPatch{Minutes: &minutes})
	if err != nil {
		t.Fatalf("patch minutes: %v", err)
	}
	if updated.Minutes != 45 {
		t.Errorf("minutes = %d, want 45", updated.Minutes)
	}
	if updated.Message != "worked on the api" {
		t.Errorf("message = %q, want it untouched", updated.Message)
	}
	if !updated.Date.Equal(entry.Date) {
		t.Errorf("date = %v, want it untouched (%v)", updated.Date, entry.Date)
	}
	if updated.WorkerID != entry.WorkerID {
		t.Errorf("worker_id = %d, want it untouched (%d)", updated.WorkerID, entry.WorkerID)
	}
}

func TestEntryUpdateKeepsEarlierPatches(t *testing.T) {
	database := testDB(t)
	entry := seedEntry(t, database)
	entries := NewEntryRepository(database)

	minutes := 45
	_, err := entries.Update(entry.ID, model.EntryPatch{Minutes: &minutes})
	if err != nil {
		t.Fatalf("patch minutes: %v", err)
	}

	message := "reviews"
	updated, err := entries.Update(entry.ID, model.EntryPatch{Message: &message})
	if err != nil {
		t.Fatalf("patch message: %v", err)
	}
	if updated.Minutes != 45 {
		t.Errorf("minutes = %d, want the earlier patch kept", updated.Minutes)
	}
	if updated.Message != "reviews" {
		t.Errorf("message = %q, want %q", updated.Message, "reviews")
	}
}

func TestEntryUpdateMissingEntry(t *testing.T) {
	database := testDB(t)
	entries := NewEntryRepository(database)

	minutes := 45
	_, err := entries.Update(99, model.EntryPatch{Minutes: &minutes})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
}
