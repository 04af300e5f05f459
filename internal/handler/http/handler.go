package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/service"
	"github.com/MKhiriev/media-finder/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	cookie         cookieSettings
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	lifetime := cfg.App.SessionDuration
	if lifetime <= 0 {
		lifetime = config.DefaultSessionDuration
	}
	name := cfg.App.CookieName
	if name == "" {
		name = config.DefaultCookieName
	}

	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		cookie: cookieSettings{
			name:   name,
			secure: cfg.App.CookieSecure,
			maxAge: int(lifetime / time.Second),
		},
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}

// decodeBody reads a JSON request body into v. An empty body leaves v at its
// zero value so that validation reports the missing fields.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
