// Package file implements the document store on a single local JSON file.
// Every load reads and deserializes the whole file; every save rewrites it.
package file

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"ecomarket/internal/domain/repository"
	"ecomarket/internal/errors"
	"ecomarket/internal/infra/persistence/model"
	"ecomarket/internal/infra/persistence/seed"
)

type store struct {
	path   string
	logger *slog.Logger
}

// New is the constructor for the file-backed document store. The file does
// not need to exist: the first load seeds it.
func New(path string, logger *slog.Logger) repository.DocumentStore {
	return &store{
		path:   path,
		logger: logger,
	}
}

// Load reads the whole document from disk. A missing file is recovered by
// seeding; any other read failure is an I/O error for the caller.
func (s *store) Load(ctx context.Context) (*repository.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("Store file not found, creating with seed data", slog.String("path", s.path))
			doc := seed.Document()
			if saveErr := s.Save(ctx, doc); saveErr != nil {
				return nil, errors.Wrap(saveErr, "failed to persist seed document")
			}

			return doc, nil
		}

		return nil, errors.Wrapf(err, "failed to read store file %s", s.path)
	}

	doc, err := model.DecodeDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode store file %s", s.path)
	}

	return doc, nil
}

// Save serializes the full document and replaces the file. The write goes to
// a temporary file first and is renamed into place, so a concurrent Load never
// observes a half-written document.
func (s *store) Save(_ context.Context, doc *repository.Document) error {
	data, err := model.EncodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode store document")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create store directory for %s", s.path)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write store file %s", tmpPath)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.Wrapf(err, "failed to replace store file %s", s.path)
	}

	return nil
}
