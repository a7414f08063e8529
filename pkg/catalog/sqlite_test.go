package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestSQLiteBackend(t *testing.T) *SQLiteBackend {
	t.Helper()

	backend, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend failed: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestSQLiteBackend_SaveAndLoad(t *testing.T) {
	backend := newTestSQLiteBackend(t)
	ctx := context.Background()

	record := &Record{
		File:            "data/frozen.dat",
		ObjectName:      "Frozen",
		FrameCount:      399,
		SpriteFileCount: 4,
		Checksum:        "abc123",
	}

	if err := backend.Save(ctx, record); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if record.ID == "" {
		t.Error("Save did not assign an ID")
	}

	loaded, err := backend.Load(ctx, "data/frozen.dat")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected record, got nil")
	}
	if loaded.ObjectName != "Frozen" || loaded.FrameCount != 399 || loaded.Checksum != "abc123" {
		t.Errorf("Loaded record mismatch: %+v", loaded)
	}
}

func TestSQLiteBackend_UpsertKeepsIdentity(t *testing.T) {
	backend := newTestSQLiteBackend(t)
	ctx := context.Background()

	first := &Record{File: "data/davis.dat", ObjectName: "Davis", FrameCount: 10}
	if err := backend.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := &Record{File: "data/davis.dat", ObjectName: "Davis", FrameCount: 12}
	if err := backend.Save(ctx, second); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	loaded, err := backend.Load(ctx, "data/davis.dat")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.FrameCount != 12 {
		t.Errorf("Expected frame count 12, got %d", loaded.FrameCount)
	}
	if loaded.ID != first.ID {
		t.Errorf("Upsert changed record ID: %s -> %s", first.ID, loaded.ID)
	}
}

func TestSQLiteBackend_DeleteAndList(t *testing.T) {
	backend := newTestSQLiteBackend(t)
	ctx := context.Background()

	for _, file := range []string{"data/weapon.dat", "data/bandit.dat", "data/frozen.dat"} {
		if err := backend.Save(ctx, &Record{File: file, ObjectName: "x"}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	if err := backend.Delete(ctx, "data/frozen.dat"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	records, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].File != "data/bandit.dat" || records[1].File != "data/weapon.dat" {
		t.Errorf("List not ordered by file: %s, %s", records[0].File, records[1].File)
	}
}

func TestSQLiteBackend_Cleanup(t *testing.T) {
	backend := newTestSQLiteBackend(t)
	ctx := context.Background()

	old := &Record{File: "data/old.dat", ObjectName: "Old", ParsedAt: time.Now().Add(-48 * time.Hour)}
	fresh := &Record{File: "data/fresh.dat", ObjectName: "Fresh"}

	if err := backend.Save(ctx, old); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := backend.Save(ctx, fresh); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	deleted, err := backend.Cleanup(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted record, got %d", deleted)
	}

	records, err := backend.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 || records[0].File != "data/fresh.dat" {
		t.Errorf("Unexpected records after cleanup: %+v", records)
	}
}

func TestSQLiteBackend_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	backend, err := NewSQLiteBackend(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteBackend failed: %v", err)
	}
	if err := backend.Save(ctx, &Record{File: "data/frozen.dat", ObjectName: "Frozen"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteBackend(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.Load(ctx, "data/frozen.dat")
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if loaded == nil || loaded.ObjectName != "Frozen" {
		t.Errorf("Record lost across reopen: %+v", loaded)
	}
}

func TestSQLiteBackend_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteBackend(""); err == nil {
		t.Error("NewSQLiteBackend with empty path succeeded, want error")
	}
}
