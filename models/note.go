package models

import "time"

// Note represents a single rich-text note owned by a user.
//
// The Content field holds the editor markup as-is; the server treats it as
// an opaque string and never interprets or rewrites it.
type Note struct {
	// ID is the unique identifier of the note, assigned monotonically from
	// the document's nextNoteId counter. The counter is global across all
	// users, not per-account.
	ID int64 `json:"id"`

	// UserID references the owning user's ID. Set at creation, immutable.
	// Every lookup and mutation is scoped by (ID, UserID) so notes are
	// never visible across accounts.
	UserID int64 `json:"user_id"`

	// Title is the note's heading shown in list views.
	Title string `json:"title"`

	// Content is the rich-text body of the note, opaque to the server.
	Content string `json:"content"`

	// CreatedAt is set once when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt equals CreatedAt at creation and is refreshed on every
	// content mutation. List views order notes by this field, newest first.
	UpdatedAt time.Time `json:"updated_at"`
}
