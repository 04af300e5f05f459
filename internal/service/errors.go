package service

import "errors"

var (
	// ErrValidation wraps every input validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated means the request carries no usable session.
	ErrUnauthenticated = errors.New("not authenticated")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownProvider = errors.New("unknown media provider")
)
