// Package testutil provides shared test helpers for setting up workspaces and databases.
package testutil

import (
	"os"
	"testing"

	"github.com/scrivenhq/scriven/internal/docstore"
	"github.com/scrivenhq/scriven/internal/storage"
)

// TestDocs creates a temporary SQLite document store that is automatically cleaned up.
func TestDocs(t *testing.T) *docstore.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "scriven-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	docs, err := docstore.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { docs.Close() })
	return docs
}

// TestWorkspace creates a temporary workspace directory with a storage.Provider.
func TestWorkspace(t *testing.T) (string, storage.Provider) {
	t.Helper()
	workspaceDir := t.TempDir()
	store, err := storage.NewFS(workspaceDir)
	if err != nil {
		t.Fatal(err)
	}
	return workspaceDir, store
}
