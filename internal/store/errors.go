package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a user lookup matches no record, or when
	// a search record references a user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrInvalidUserData is returned when a user is missing its username or
	// password hash.
	ErrInvalidUserData = errors.New("invalid user data")

	// ErrEmptyQuery is returned when a search record with a blank query is
	// about to be persisted.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrSessionNotFound is returned by session stores when no session exists
	// for the given token.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrUnsupportedDSN is returned when the database DSN matches no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
