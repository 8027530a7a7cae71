package storage

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a migrated store backed by a temp-dir database.
func createTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return store
}

func TestNewStore(t *testing.T) {
	t.Run("creates database file and parent directory", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
		store, err := NewStore(dbPath)
		if err != nil {
			t.Fatalf("NewStore() error = %v", err)
		}
		defer func() { _ = store.Close() }()

		if store.dbPath != dbPath {
			t.Errorf("dbPath = %q, want %q", store.dbPath, dbPath)
		}
	})

	t.Run("rejects empty path", func(t *testing.T) {
		if _, err := NewStore(""); err == nil {
			t.Error("NewStore(\"\") expected error, got nil")
		}
	})
}

func TestMigrateIdempotent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	// Second migration run must be a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	var version int
	if err := store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, ExpectedSchemaVersion)
	}
}
