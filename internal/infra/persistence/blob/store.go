// Package blob implements the document store on a single object in a
// gocloud.dev bucket, so deployments can point the same whole-document
// semantics at local directories or cloud object storage via a bucket URL.
package blob

import (
	"context"
	"log/slog"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"ecomarket/internal/domain/repository"
	"ecomarket/internal/errors"
	"ecomarket/internal/infra/persistence/model"
	"ecomarket/internal/infra/persistence/seed"
)

type store struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// New is the constructor for the blob-backed document store. The caller owns
// the bucket handle and its lifetime.
func New(bucket *blob.Bucket, key string, logger *slog.Logger) repository.DocumentStore {
	return &store{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load reads the whole document object. A missing object is recovered by
// seeding, mirroring the file backend's missing-file behavior.
func (s *store) Load(ctx context.Context) (*repository.Document, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.Info("Store object not found, creating with seed data", slog.String("key", s.key))
			doc := seed.Document()
			if saveErr := s.Save(ctx, doc); saveErr != nil {
				return nil, errors.Wrap(saveErr, "failed to persist seed document")
			}

			return doc, nil
		}

		return nil, errors.Wrapf(err, "failed to read store object %s", s.key)
	}

	doc, err := model.DecodeDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode store object %s", s.key)
	}

	return doc, nil
}

// Save serializes the full document and overwrites the object.
func (s *store) Save(ctx context.Context, doc *repository.Document) error {
	data, err := model.EncodeDocument(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode store document")
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write store object %s", s.key)
	}

	return nil
}
