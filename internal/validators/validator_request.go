// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/media-finder/models"
)

// RequestValidator validates the bodies and query parameters accepted by the
// HTTP API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.SaveSearchRequest:
		return v.validateSaveSearchRequest(ctx, value, fields...)
	case *models.SaveSearchRequest:
		return v.validateSaveSearchRequest(ctx, *value, fields...)

	case models.ContactRequest:
		return v.validateContactRequest(ctx, value, fields...)
	case *models.ContactRequest:
		return v.validateContactRequest(ctx, *value, fields...)

	case models.MediaQuery:
		return v.validateMediaQuery(ctx, value, fields...)
	case *models.MediaQuery:
		return v.validateMediaQuery(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *RequestValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(creds.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			// whitespace is a legitimate password
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldEmail:
			if creds.Email != "" {
				if _, err := mail.ParseAddress(creds.Email); err != nil {
					return ErrInvalidEmail
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateSaveSearchRequest(_ context.Context, request models.SaveSearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if isBlank(request.Query) {
				return ErrEmptyQuery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateContactRequest(_ context.Context, request models.ContactRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if _, err := mail.ParseAddress(request.Email); err != nil {
				return ErrInvalidEmail
			}
		case FieldMessage:
			if isBlank(request.Message) {
				return ErrEmptyMessage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateMediaQuery(_ context.Context, query models.MediaQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery, FieldPage}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if isBlank(query.Query) {
				return ErrEmptyQuery
			}
		case FieldPage:
			if query.Page < 1 {
				return ErrInvalidPage
			}
		case FieldMediaType:
			if query.MediaType != MediaTypeImage && query.MediaType != MediaTypeAudio {
				return ErrInvalidMediaType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
