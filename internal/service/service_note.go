package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService. It validates
// user input and delegates persistence to the NoteRepository; ownership
// scoping happens inside the repository's (id, userID) lookups.
type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote validates that title and content are present and persists a
// new note owned by userID.
func (n *noteService) CreateNote(ctx context.Context, userID int64, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if title == "" || content == "" {
		log.Error().Int64("userID", userID).Msg("note title and content are required")
		return models.Note{}, ErrInvalidDataProvided
	}

	return n.noteRepository.CreateNote(ctx, userID, title, content)
}

// ListNotes returns the user's notes, most recently modified first.
func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return n.noteRepository.GetNotesByUserID(ctx, userID)
}

// GetNote returns the note matching (id, userID) or store.ErrNoteNotFound.
func (n *noteService) GetNote(ctx context.Context, id, userID int64) (models.Note, error) {
	return n.noteRepository.FindNote(ctx, id, userID)
}

// UpdateNote validates the input and overwrites the matching note.
func (n *noteService) UpdateNote(ctx context.Context, id, userID int64, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if title == "" || content == "" {
		log.Error().Int64("id", id).Int64("userID", userID).Msg("note title and content are required")
		return models.Note{}, ErrInvalidDataProvided
	}

	return n.noteRepository.UpdateNote(ctx, id, userID, title, content)
}

// DeleteNote removes the matching note; store.ErrNoteNotFound reports a miss.
func (n *noteService) DeleteNote(ctx context.Context, id, userID int64) error {
	return n.noteRepository.DeleteNote(ctx, id, userID)
}
