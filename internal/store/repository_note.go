package store

import (
	"context"
	"sort"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the document-backed implementation of [NoteRepository].
//
// Ownership is enforced at lookup: every read and mutation matches on
// (id, userID), so a note owned by another account is indistinguishable
// from a note that does not exist.
type noteRepository struct {
	documents DocumentStore
	logger    *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// document store and logger.
func NewNoteRepository(documents DocumentStore, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		documents: documents,
		logger:    logger,
	}
}

// CreateNote appends a new note owned by userID and returns it with
// server-assigned fields. The id comes from the document's nextNoteId
// counter, which is global across all users. CreatedAt and UpdatedAt are
// set to the same instant.
func (r *noteRepository) CreateNote(ctx context.Context, userID int64, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var created models.Note
	err := r.documents.Update(ctx, func(doc *models.Document) error {
		now := time.Now()
		created = models.Note{
			ID:        doc.NextNoteID,
			UserID:    userID,
			Title:     title,
			Content:   content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		doc.NextNoteID++
		doc.Notes = append(doc.Notes, created)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("userID", userID).Msg("error persisting new note")
		return models.Note{}, err
	}

	return created, nil
}

// GetNotesByUserID returns all notes owned by userID, ordered by UpdatedAt
// descending. The ordering is a user-facing contract: the most recently
// modified note appears first in every list view.
func (r *noteRepository) GetNotesByUserID(ctx context.Context, userID int64) ([]models.Note, error) {
	doc, err := r.documents.Load(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0)
	for _, note := range doc.Notes {
		if note.UserID == userID {
			notes = append(notes, note)
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

// FindNote returns the note matching both id and owner, or [ErrNoteNotFound].
func (r *noteRepository) FindNote(ctx context.Context, id, userID int64) (models.Note, error) {
	doc, err := r.documents.Load(ctx)
	if err != nil {
		return models.Note{}, err
	}

	for _, note := range doc.Notes {
		if note.ID == id && note.UserID == userID {
			return note, nil
		}
	}

	return models.Note{}, ErrNoteNotFound
}

// UpdateNote overwrites title and content of the note matching (id, userID),
// refreshes UpdatedAt, persists the document, and returns the updated note.
// Returns [ErrNoteNotFound] — and performs no mutation — when no note
// matches, including when the note exists but belongs to another user.
func (r *noteRepository) UpdateNote(ctx context.Context, id, userID int64, title, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var updated models.Note
	err := r.documents.Update(ctx, func(doc *models.Document) error {
		for i := range doc.Notes {
			if doc.Notes[i].ID == id && doc.Notes[i].UserID == userID {
				doc.Notes[i].Title = title
				doc.Notes[i].Content = content
				doc.Notes[i].UpdatedAt = time.Now()
				updated = doc.Notes[i]
				return nil
			}
		}
		return ErrNoteNotFound
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("id", id).Int64("userID", userID).Msg("error updating note")
		return models.Note{}, err
	}

	return updated, nil
}

// DeleteNote removes the note matching (id, userID). Returns
// [ErrNoteNotFound] when nothing matched — deleting the same note twice
// reports a miss on the second call rather than failing silently.
func (r *noteRepository) DeleteNote(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.documents.Update(ctx, func(doc *models.Document) error {
		for i := range doc.Notes {
			if doc.Notes[i].ID == id && doc.Notes[i].UserID == userID {
				doc.Notes = append(doc.Notes[:i], doc.Notes[i+1:]...)
				return nil
			}
		}
		return ErrNoteNotFound
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("id", id).Int64("userID", userID).Msg("error deleting note")
		return err
	}

	return nil
}

// CountNotesByUserID returns the number of notes owned by userID.
func (r *noteRepository) CountNotesByUserID(ctx context.Context, userID int64) (int, error) {
	doc, err := r.documents.Load(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, note := range doc.Notes {
		if note.UserID == userID {
			count++
		}
	}

	return count, nil
}
