package store

import "errors"

// Sentinel errors returned by store and repository methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces no result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a note lookup or mutation targets a
	// note that does not exist or is owned by a different user. The two
	// cases are deliberately merged so callers cannot probe for other
	// users' records.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrStorageUnavailable is returned when the backing document file
	// cannot be read, parsed, or written. It is fatal for the current
	// request; the store never retries and never discards existing data.
	ErrStorageUnavailable = errors.New("storage is unavailable")
)
