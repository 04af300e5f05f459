package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/media-finder/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// DeleteUser removes a user together with its search history.
	DeleteUser(ctx context.Context, userID int64) error
}

// SearchRepository persists the per-user search history.
type SearchRepository interface {
	SaveSearch(ctx context.Context, userID int64, query string) (models.SearchRecord, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error)
	// DeleteSearch reports whether a record owned by userID was removed.
	DeleteSearch(ctx context.Context, userID, searchID int64) (bool, error)
}

// SessionStore keeps server-side sessions keyed by their opaque token.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	// Get returns the session for token or [ErrSessionNotFound]. Expired
	// sessions may still be returned; callers check the expiry.
	Get(ctx context.Context, token string) (models.Session, error)
	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, token string) error
	// PurgeExpired drops every session expired at now and returns how many
	// were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// MediaCache stores upstream media provider responses.
type MediaCache interface {
	Get(ctx context.Context, key string) (models.MediaResponse, bool, error)
	Set(ctx context.Context, key string, resp models.MediaResponse, ttl time.Duration) error
}
