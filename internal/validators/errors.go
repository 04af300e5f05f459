package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyQuery       = errors.New("search query is required")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyMessage     = errors.New("message is required")
	ErrInvalidPage      = errors.New("page must be a positive number")
	ErrInvalidMediaType = errors.New("media type must be image or audio")
)
