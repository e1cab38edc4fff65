package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService establishes identity: it registers accounts, verifies
// credentials, and manages the JWT token lifecycle that gates every
// protected operation.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService exposes the note operations available to an authenticated
// user. Every method takes the owner's userID, which handlers extract from
// the verified token — never from client input.
type NoteService interface {
	CreateNote(ctx context.Context, userID int64, title, content string) (models.Note, error)
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetNote(ctx context.Context, id, userID int64) (models.Note, error)
	UpdateNote(ctx context.Context, id, userID int64, title, content string) (models.Note, error)
	DeleteNote(ctx context.Context, id, userID int64) error
}

// ProfileService exposes account self-management: reading the profile with
// its note statistics, renaming, and avatar replacement.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, int, error)
	UpdateName(ctx context.Context, userID int64, name string) (models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, content io.Reader, ext string) (models.User, error)
}
