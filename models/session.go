package models

import "time"

// Session binds an opaque token to an authenticated user until ExpiresAt.
// The token is what the client keeps in its cookie; everything else stays
// on the server.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// User returns the summary of the user that owns the session.
func (s Session) User() UserSummary {
	return UserSummary{ID: s.UserID, Username: s.Username}
}
