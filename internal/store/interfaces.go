package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-keeper/models"
)

// DocumentStore provides atomic-looking reads and writes of the whole
// persisted [models.Document]. The document is the single unit of I/O:
// there is no way to read or write an individual record.
type DocumentStore interface {
	// Load returns the current document. If no backing file exists yet, it
	// initializes an empty document (counters at 1), persists it, and
	// returns it. An unreadable or corrupted file yields
	// ErrStorageUnavailable; corrupted data is never silently discarded.
	Load(ctx context.Context) (models.Document, error)

	// Save fully overwrites the backing file with the serialized document.
	Save(ctx context.Context, doc models.Document) error

	// Update runs fn on the current document and persists the result while
	// holding the store's writer lock, so concurrent read-modify-write
	// sequences cannot overwrite each other's changes. If fn returns an
	// error, nothing is persisted and the error is returned unchanged.
	Update(ctx context.Context, fn func(doc *models.Document) error) error
}

// UserRepository exposes typed account operations on top of the
// [DocumentStore]'s whole-document read/write.
type UserRepository interface {
	// CreateUser appends a new user with the next free id and CreatedAt set
	// to the current time. It does NOT enforce email uniqueness; the caller
	// is responsible for pre-checking with FindUserByEmail.
	CreateUser(ctx context.Context, name, email, passwordHash string) (models.User, error)

	// FindUserByEmail returns the user with exactly matching email or
	// ErrNoUserWasFound. Comparison is case-sensitive.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUserName replaces the display name of the user with the given id.
	UpdateUserName(ctx context.Context, id int64, name string) (models.User, error)

	// UpdateUserPassword replaces the stored password hash of the user.
	UpdateUserPassword(ctx context.Context, id int64, passwordHash string) (models.User, error)

	// UpdateUserProfileImage records the avatar path on the user.
	UpdateUserProfileImage(ctx context.Context, id int64, imagePath string) (models.User, error)
}

// NoteRepository exposes typed note operations, all scoped by the owning
// user's id so that notes are never visible across accounts.
type NoteRepository interface {
	// CreateNote appends a new note owned by userID with the next free id
	// and CreatedAt == UpdatedAt == now.
	CreateNote(ctx context.Context, userID int64, title, content string) (models.Note, error)

	// GetNotesByUserID returns all notes owned by userID ordered by
	// UpdatedAt descending (most recently modified first).
	GetNotesByUserID(ctx context.Context, userID int64) ([]models.Note, error)

	// FindNote returns the note only if both id and owner match;
	// otherwise ErrNoteNotFound.
	FindNote(ctx context.Context, id, userID int64) (models.Note, error)

	// UpdateNote overwrites title and content of the matching note and
	// refreshes UpdatedAt. Returns ErrNoteNotFound if no note matches
	// (id, userID).
	UpdateNote(ctx context.Context, id, userID int64, title, content string) (models.Note, error)

	// DeleteNote removes the matching note. Returns ErrNoteNotFound when
	// nothing was deleted, so a second delete of the same note is a
	// reportable miss rather than a silent no-op.
	DeleteNote(ctx context.Context, id, userID int64) error

	// CountNotesByUserID returns the number of notes owned by userID.
	CountNotesByUserID(ctx context.Context, userID int64) (int, error)
}

// AvatarStorage persists uploaded profile images outside the JSON document,
// on the local filesystem. The document only records the returned path.
type AvatarStorage interface {
	// SaveAvatar stores the image content under a freshly generated file
	// name with the given extension and returns the public relative path
	// (e.g. "/uploads/profile_images/<uuid>.png").
	SaveAvatar(ctx context.Context, content io.Reader, ext string) (string, error)

	// DeleteAvatar removes a previously stored image by its public path.
	// Deleting a path that no longer exists is not an error.
	DeleteAvatar(ctx context.Context, imagePath string) error
}
