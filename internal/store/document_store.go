// Package store implements persistence for the application: a file-backed
// JSON document store, typed user and note repositories built on top of it,
// and a filesystem store for uploaded avatar images.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// fileDocumentStore is the file-backed implementation of [DocumentStore].
// The entire database lives in a single JSON file; every operation reads or
// writes the whole document.
//
// A mutex serializes all access. Holding it across the load→mutate→save
// sequence of [fileDocumentStore.Update] closes the lost-update race that a
// bare load/save pair would allow between concurrent requests. The lock is
// process-local; running multiple server processes against the same file is
// not supported.
type fileDocumentStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileDocumentStore constructs a [DocumentStore] backed by the JSON file
// at path. The file is created lazily on first load; its parent directory
// is created eagerly so that startup fails fast on an unwritable location.
func NewFileDocumentStore(path string, logger *logger.Logger) (DocumentStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating document directory: %w", ErrStorageUnavailable, err)
		}
	}

	logger.Debug().Str("path", path).Msg("creating file document store")
	return &fileDocumentStore{
		path:   path,
		logger: logger,
	}, nil
}

// Load returns the current document, initializing an empty one if the
// backing file does not exist yet.
func (s *fileDocumentStore) Load(ctx context.Context) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Save fully overwrites the backing file with the serialized document.
func (s *fileDocumentStore) Save(ctx context.Context, doc models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, doc)
}

// Update loads the document, applies fn, and saves the result, all under
// the store's writer lock.
func (s *fileDocumentStore) Update(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	if err := fn(&doc); err != nil {
		return err
	}

	return s.save(ctx, doc)
}

// load reads and parses the document file. Callers must hold s.mu.
//
// A missing file is the one recoverable condition: it means a fresh
// installation, so an empty document is persisted and returned. Any other
// read error, and any parse error, is surfaced as ErrStorageUnavailable —
// a corrupted database must be repaired by an operator, not silently
// replaced with an empty one.
func (s *fileDocumentStore) load(ctx context.Context) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return models.Document{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := models.NewDocument()
			if saveErr := s.save(ctx, doc); saveErr != nil {
				return models.Document{}, saveErr
			}
			log.Info().Str("path", s.path).Msg("initialized empty document store")
			return doc, nil
		}
		log.Err(err).Str("path", s.path).Msg("error reading document file")
		return models.Document{}, fmt.Errorf("%w: reading document file: %w", ErrStorageUnavailable, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Err(err).Str("path", s.path).Msg("document file is corrupted")
		return models.Document{}, fmt.Errorf("%w: parsing document file: %w", ErrStorageUnavailable, err)
	}

	return doc, nil
}

// save serializes doc and atomically replaces the document file via a
// temp-file rename, so a crash mid-write never leaves a half-written
// database behind. Callers must hold s.mu.
func (s *fileDocumentStore) save(ctx context.Context, doc models.Document) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializing document: %w", ErrStorageUnavailable, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Err(err).Str("path", tmp).Msg("error writing document file")
		return fmt.Errorf("%w: writing document file: %w", ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		log.Err(err).Str("path", s.path).Msg("error replacing document file")
		return fmt.Errorf("%w: replacing document file: %w", ErrStorageUnavailable, err)
	}

	return nil
}
