package adapter

import "errors"

var (
	// ErrProviderNotConfigured is returned when a provider that needs an API
	// key has none.
	ErrProviderNotConfigured = errors.New("media provider is not configured")

	// ErrUpstreamUnavailable is returned when the provider could not be
	// reached or did not answer in time.
	ErrUpstreamUnavailable = errors.New("media provider is unavailable")

	// ErrInvalidBaseURL is returned when a provider base URL cannot be used.
	ErrInvalidBaseURL = errors.New("invalid provider base url")
)

// Upstream answers outside 2xx. They are relayed to the client as is; these
// values only classify them for logs.
var (
	ErrBadRequest          = errors.New("upstream bad request")
	ErrUnauthorized        = errors.New("upstream rejected credentials")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream not found")
	ErrRateLimited         = errors.New("upstream rate limit exceeded")
	ErrInternalServerError = errors.New("upstream internal server error")
)
