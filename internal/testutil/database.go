package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/storage"
)

// SetupTestDB creates a migrated in-memory store seeded with ds. A nil ds
// leaves the store empty. Cleanup is registered on t.
func SetupTestDB(t *testing.T, ds *dataset.Dataset) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if ds != nil {
		if err := store.ReplaceRecords(ctx, ds.Daily(), ds.Hourly(), nil); err != nil {
			t.Fatalf("failed to seed dataset: %v", err)
		}
	}

	return store
}
