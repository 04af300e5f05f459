package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/mock"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/internal/validators"
	"github.com/MKhiriev/media-finder/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any repository call fails the test
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthValidationService().Wrap(NewAuthService(repo, hasher, logger.Nop()))
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{name: "empty username", creds: models.Credentials{Password: "pw"}, wantErr: validators.ErrEmptyUsername},
		{name: "empty password", creds: models.Credentials{Username: "alice"}, wantErr: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.creds)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := svc.Login(ctx, models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAuthValidationService_PassesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthValidationService().Wrap(NewAuthService(repo, hasher, logger.Nop()))

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{PasswordHash: "h"}, nil)
	hasher.EXPECT().Compare("h", "   ").Return(nil)

	// whitespace is a legitimate password
	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "   "})
	assert.NoError(t, err)
}

func TestAuthValidationService_RegisterKeepsFreeFormEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthValidationService().Wrap(NewAuthService(repo, hasher, logger.Nop()))

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash("pw").Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.Equal(t, "not-an-email", u.Email)
		u.UserID = 1
		return u, nil
	})

	user, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw", Email: "not-an-email"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}
