package models

// Document is the persistence root: the single serialized aggregate holding
// all users, all notes, and the two monotonic id counters. The whole
// document is the unit of every read and write performed by the store.
//
// The JSON layout is fixed and shared with earlier versions of the
// application, so the field names must not change.
type Document struct {
	// Users is the complete set of registered accounts.
	Users []User `json:"users"`

	// Notes is the complete set of notes across all accounts.
	Notes []Note `json:"notes"`

	// NextUserID is the id that will be assigned to the next created user.
	// Starts at 1 and only ever grows.
	NextUserID int64 `json:"nextUserId"`

	// NextNoteID is the id that will be assigned to the next created note.
	// Starts at 1 and only ever grows.
	NextNoteID int64 `json:"nextNoteId"`
}

// NewDocument returns an empty document with both counters set to their
// initial value. It is the state a fresh installation starts from.
func NewDocument() Document {
	return Document{
		Users:      []User{},
		Notes:      []Note{},
		NextUserID: 1,
		NextNoteID: 1,
	}
}
