// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// MediaFinder server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgCredentialsRequired is returned by register and login when the
	// username or password is missing.
	MsgCredentialsRequired = "Username and password are required"

	// MsgUsernameAlreadyExists is returned when a registration attempt uses
	// a username that is already taken.
	MsgUsernameAlreadyExists = "Username already exists"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password so that callers cannot enumerate accounts.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNotAuthenticated is returned when a protected route is requested
	// without a valid session.
	MsgNotAuthenticated = "Not authenticated"

	// MsgSearchQueryRequired is returned when a search is saved without a
	// query.
	MsgSearchQueryRequired = "Search query is required"

	// MsgInvalidSearchID is returned when the search id path segment is not
	// a positive integer.
	MsgInvalidSearchID = "Invalid search id"

	// MsgInvalidContactForm is returned when a contact submission lacks
	// name, email, or message.
	MsgInvalidContactForm = "Name, email and message are required"

	// MsgProviderNotConfigured is a format string taking the provider name.
	// It is returned when a media provider has no API key configured.
	MsgProviderNotConfigured = "%s is not configured"

	// MsgUpstreamUnavailable is returned when a media provider cannot be
	// reached.
	MsgUpstreamUnavailable = "media provider is unavailable"

	// MsgInvalidEmail is returned when an optional email is malformed.
	MsgInvalidEmail = "Invalid email"

	// MsgInvalidPage is returned when the page parameter is not a positive
	// integer.
	MsgInvalidPage = "Page must be a positive number"

	// MsgInvalidMediaType is returned for an Openverse mediaType other than
	// image or audio.
	MsgInvalidMediaType = "mediaType must be image or audio"

	// MsgInvalidLimit is returned when the limit parameter is not an integer.
	MsgInvalidLimit = "Limit must be a number"

	// MsgVideoIDRequired is returned when the video id parameter is missing.
	MsgVideoIDRequired = "Video id is required"

	// MsgInvalidDataProvided is returned for any other malformed input.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs. It never carries internal detail.
	MsgInternalServerError = "internal server error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found. API endpoints are available at /api/*"
)

// Confirmation messages written on success.
const (
	MsgRegistered       = "User registered successfully"
	MsgLoggedIn         = "Login successful"
	MsgLoggedOut        = "Logout successful"
	MsgSearchSaved      = "Search saved"
	MsgSearchDeleted    = "Search deleted"
	MsgAPIConnected     = "Backend API is connected successfully!"
	MsgContactSubmitted = "Contact form submission received successfully"
)
