package models

import "time"

// User represents an account that can log in and own search history.
// PasswordHash holds a bcrypt digest and is never serialised.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Email is optional and may be empty.
	Email string `json:"email,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public view of the user that is sent to clients.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.UserID, Username: u.Username}
}

// UserSummary is the part of a user that the API exposes.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Credentials is the body of register and login requests.
// Password is plaintext and lives only for the duration of a request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}
