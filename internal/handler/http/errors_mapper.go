package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/media-finder/internal/adapter"
	"github.com/MKhiriev/media-finder/internal/app"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/service"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/internal/utils"
	"github.com/MKhiriev/media-finder/internal/validators"
	"github.com/MKhiriev/media-finder/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrUnauthenticated:    http.StatusUnauthorized,
	service.ErrUnknownProvider:    http.StatusNotFound,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrInvalidUserData:       http.StatusBadRequest,
	store.ErrEmptyQuery:            http.StatusBadRequest,

	adapter.ErrProviderNotConfigured: http.StatusServiceUnavailable,
	adapter.ErrUpstreamUnavailable:   http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is checked in order; the first match wins. More specific
// errors come before the sentinels that wrap them.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrEmptyUsername, app.MsgCredentialsRequired},
	{validators.ErrEmptyPassword, app.MsgCredentialsRequired},
	{store.ErrInvalidUserData, app.MsgCredentialsRequired},
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrEmptyQuery, app.MsgSearchQueryRequired},
	{store.ErrEmptyQuery, app.MsgSearchQueryRequired},
	{validators.ErrEmptyName, app.MsgInvalidContactForm},
	{validators.ErrEmptyMessage, app.MsgInvalidContactForm},
	{validators.ErrInvalidPage, app.MsgInvalidPage},
	{validators.ErrInvalidMediaType, app.MsgInvalidMediaType},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameAlreadyExists},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrUnauthenticated, app.MsgNotAuthenticated},
	{service.ErrUnknownProvider, app.MsgNotFound},
	{adapter.ErrUpstreamUnavailable, app.MsgUpstreamUnavailable},
	{service.ErrValidation, app.MsgInvalidDataProvided},
}

// messageFromError returns the client-facing message for err. Unknown errors
// never leak their text.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its status and an {"error": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorMessage(w, status, messageFromError(err))
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
