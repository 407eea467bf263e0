package model

import (
	"encoding/json"

	"ecomarket/internal/domain/repository"
	"ecomarket/internal/errors"
)

// EncodeDocument serializes the domain document into the human-readable JSON
// artifact both storage backends persist.
func EncodeDocument(doc *repository.Document) ([]byte, error) {
	data, err := json.MarshalIndent(FromDocumentDomain(doc), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal store document")
	}

	return data, nil
}

// DecodeDocument parses a persisted JSON artifact back into the domain
// document, reconstituting timestamp fields.
func DecodeDocument(data []byte) (*repository.Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal store document")
	}

	return ToDocumentDomain(&doc), nil
}
