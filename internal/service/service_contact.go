package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/validators"
	"github.com/MKhiriev/media-finder/models"
)

type contactService struct {
	validator validators.Validator

	logger *logger.Logger
}

// NewContactService returns a ContactService that records submissions in
// the log. There is no mail delivery.
func NewContactService(logger *logger.Logger) ContactService {
	return &contactService{
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}

func (c *contactService) Submit(ctx context.Context, req models.ContactRequest) error {
	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*contactService.Submit").
		Str("name", req.Name).
		Str("email", req.Email).
		Str("subject", req.Subject).
		Int("message_length", len(req.Message)).
		Msg("contact form submission received")

	return nil
}
