package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tal3a/internal/storage"
	"github.com/mmynk/tal3a/internal/storage/storagetest"
)

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		// Create temp directory for test database
		tempDir, err := os.MkdirTemp("", "tal3a-test-*")
		if err != nil {
			t.Fatalf("Failed to create temp dir: %v", err)
		}
		t.Cleanup(func() { os.RemoveAll(tempDir) })

		store, err := New(filepath.Join(tempDir, "test.db"))
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "test.db")
	storagetest.RunReopen(t, func(t *testing.T) storage.Store {
		store, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}
		return store
	})
}
