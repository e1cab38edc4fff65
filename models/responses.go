package models

// AuthResponse is the envelope returned by the signup and signin endpoints.
//
// On success, Success is true and Token carries the signed bearer token the
// client stores for subsequent requests. UserID and Name duplicate the
// account identity so the client does not have to decode the token.
// On failure, Success is false and Message holds a client-safe explanation.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	UserID  int64  `json:"userId,omitempty"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProfileResponse is returned by the profile read and update endpoints.
// Stats is only populated on reads.
type ProfileResponse struct {
	Success bool          `json:"success"`
	User    *Profile      `json:"user,omitempty"`
	Stats   *ProfileStats `json:"stats,omitempty"`
	Message string        `json:"message,omitempty"`
}

// ProfileStats carries aggregate figures shown on the profile page.
type ProfileStats struct {
	// TotalNotes is the number of notes owned by the account.
	TotalNotes int `json:"totalNotes"`
}

// MessageResponse is the generic envelope for endpoints that return no
// payload beyond a success flag and an optional human-readable message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SignupRequest is the request body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest is the request body of POST /api/auth/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NoteRequest is the request body of note create and update endpoints.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateProfileRequest is the request body of PUT /api/auth/profile.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// ChangePasswordRequest is the request body of PUT /api/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
