// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// The RequestValidator knows the MediaFinder request types: credentials,
// saved searches, contact forms and media queries. Callers may name the
// fields to check (see the Field* constants); without names every default
// field of the type is checked. Failures are the sentinel errors in
// errors.go, which the HTTP layer turns into client messages.
package validators

import "context"

// Validator checks obj, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
