package impl

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"ecomarket/internal/domain/repository"
	"ecomarket/internal/infra/persistence/file"
)

// storageFixtures holds the shared dependencies every service test needs: a
// real file-backed store in a temp directory, the write lock, and a silent
// logger. The store seeds itself on first load, so every test starts from
// the same dataset.
type storageFixtures struct {
	store  repository.DocumentStore
	lock   *repository.DocumentLock
	logger *slog.Logger
}

func newStorageFixtures(t *testing.T) storageFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return storageFixtures{
		store:  file.New(filepath.Join(t.TempDir(), "db.json"), logger),
		lock:   repository.NewDocumentLock(),
		logger: logger,
	}
}
