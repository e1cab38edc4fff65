package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned monotonically
	// from the document's nextUserId counter. Immutable after creation.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	// Uniqueness and lookup use exact (case-sensitive) string equality.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived hash, never plaintext. It is persisted
	// under the "password" key of the document layout.
	PasswordHash string `json:"password"`

	// CreatedAt is the timestamp when the user account was created.
	// Set once at creation, immutable afterwards.
	CreatedAt time.Time `json:"created_at"`

	// ProfileImage is the relative path of the stored avatar asset
	// (e.g. "/uploads/profile_images/<uuid>.png"). Empty until the user
	// uploads an image for the first time.
	ProfileImage string `json:"profile_image,omitempty"`
}

// Profile is the client-facing projection of a User. It carries the same
// identity attributes without the credential hash, so it is safe to
// serialize into API responses.
type Profile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	ProfileImage string    `json:"profile_image,omitempty"`
}

// Profile returns the safe projection of the user for API responses.
func (u User) Profile() Profile {
	return Profile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		ProfileImage: u.ProfileImage,
	}
}
