package store

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages bundles every persistence component the application needs, so
// the wiring code can pass one value instead of four.
type Storages struct {
	Documents      DocumentStore
	UserRepository UserRepository
	NoteRepository NoteRepository
	AvatarStorage  AvatarStorage
}

// NewStorages constructs the document store and the repositories built on
// top of it according to cfg.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	documents, err := NewFileDocumentStore(cfg.Document.Path, logger)
	if err != nil {
		return nil, err
	}

	avatars, err := NewAvatarStorage(cfg.Files.AvatarDir, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Documents:      documents,
		UserRepository: NewUserRepository(documents, logger),
		NoteRepository: NewNoteRepository(documents, logger),
		AvatarStorage:  avatars,
	}, nil
}
