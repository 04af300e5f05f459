package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/media-finder/internal/validators"
	"github.com/MKhiriev/media-finder/models"
)

// AuthValidationService rejects malformed credentials before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	// email is optional and stored as given
	if err := v.validator.Validate(ctx, creds, validators.FieldUsername, validators.FieldPassword); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Register(ctx, creds)
}

func (v *AuthValidationService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Login(ctx, creds)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// SearchValidationService rejects empty queries before they reach the
// wrapped SearchService.
type SearchValidationService struct {
	inner     SearchService
	validator validators.Validator
}

func NewSearchValidationService() SearchServiceWrapper {
	return &SearchValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *SearchValidationService) SaveSearch(ctx context.Context, userID int64, query string) (models.SearchRecord, error) {
	if err := v.validator.Validate(ctx, models.SaveSearchRequest{Query: query}, validators.FieldQuery); err != nil {
		return models.SearchRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.SaveSearch(ctx, userID, query)
}

func (v *SearchValidationService) ListRecent(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error) {
	return v.inner.ListRecent(ctx, userID, limit)
}

func (v *SearchValidationService) DeleteSearch(ctx context.Context, userID, searchID int64) error {
	if searchID <= 0 {
		return fmt.Errorf("%w: search id must be positive", ErrValidation)
	}

	return v.inner.DeleteSearch(ctx, userID, searchID)
}

func (v *SearchValidationService) Wrap(wrapped SearchService) SearchService {
	v.inner = wrapped
	return v
}
