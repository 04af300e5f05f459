package service

import (
	"context"
	"time"

	"github.com/MKhiriev/media-finder/models"
)

// AuthService registers users and verifies their credentials.
type AuthService interface {
	// Register hashes the password and creates the user.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login returns the user whose password matches, or ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// SessionService issues, validates and destroys server-side sessions.
type SessionService interface {
	CreateSession(ctx context.Context, user models.User) (models.Session, error)
	// ValidateSession returns ErrUnauthenticated for an empty, unknown or
	// expired token.
	ValidateSession(ctx context.Context, token string) (models.Session, error)
	// DestroySession is idempotent.
	DestroySession(ctx context.Context, token string) error
	// PurgeExpired drops every expired session and returns how many were
	// removed.
	PurgeExpired(ctx context.Context) (int, error)
	// Lifetime is the absolute duration of a session.
	Lifetime() time.Duration
}

// SearchService manages the search history of authenticated users.
type SearchService interface {
	SaveSearch(ctx context.Context, userID int64, query string) (models.SearchRecord, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error)
	// DeleteSearch removes the search if it belongs to userID. Missing and
	// foreign searches are silently ignored.
	DeleteSearch(ctx context.Context, userID, searchID int64) error
}

// MediaService proxies queries to the third-party media providers.
type MediaService interface {
	Search(ctx context.Context, provider string, q models.MediaQuery) (models.MediaResponse, error)
	VideoDetails(ctx context.Context, id string) (models.MediaResponse, error)
}

// ContactService accepts contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, req models.ContactRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// SearchServiceWrapper defines middleware composition for SearchService.
type SearchServiceWrapper interface {
	Wrap(SearchService) SearchService
}
