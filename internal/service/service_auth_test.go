package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/media-finder/internal/crypto"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/mock"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc is a helper that builds authService with mocks.
func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(repo, hasher, logger.Nop()), repo, hasher
}

var errDB = errors.New("db is down")

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound),
		hasher.EXPECT().Hash("pw123456").Return("$2a$10$hash", nil),
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "$2a$10$hash", u.PasswordHash)
				assert.Equal(t, "alice@example.com", u.Email)
				assert.False(t, u.CreatedAt.IsZero())
				u.UserID = 1
				return u, nil
			},
		),
	)

	user, err := svc.Register(ctx, models.Credentials{Username: " alice ", Password: "pw123456", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	for _, creds := range []models.Credentials{
		{Username: "", Password: "pw"},
		{Username: "   ", Password: "pw"},
		{Username: "alice", Password: ""},
	} {
		_, err := svc.Register(context.Background(), creds)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 1, Username: "alice"}, nil)

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash("pw").Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Register_LookupFails(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, errDB)

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, errDB)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Register_HashFails(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	hashErr := errors.New("entropy exhausted")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, hashErr)
	assert.NotErrorIs(t, err, ErrValidation)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	stored := models.User{UserID: 7, Username: "alice", PasswordHash: "hash"}

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
	hasher.EXPECT().Compare("hash", "pw123456").Return(nil)

	user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 7, PasswordHash: "hash"}, nil)
	hasher.EXPECT().Compare("hash", "wrong").Return(crypto.ErrPasswordMismatch)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownAndWrongAreIndistinguishable(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{PasswordHash: "hash"}, nil)
	hasher.EXPECT().Compare("hash", "wrong").Return(crypto.ErrPasswordMismatch)

	_, errUnknown := svc.Login(context.Background(), models.Credentials{Username: "bob", Password: "wrong"})
	_, errWrong := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_MalformedHash(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	hashErr := errors.New("crypto/bcrypt: hashedSecret too short")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{PasswordHash: "bad"}, nil)
	hasher.EXPECT().Compare("bad", "pw").Return(hashErr)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, hashErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryFails(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, errDB)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrValidation)
}

// ── real bcrypt ──────────────────────────────────────────────────────────────

func TestAuthService_RoundTripWithBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, crypto.NewBcryptHasher(4), logger.Nop())

	var saved models.User
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 1
			saved = u
			return u, nil
		},
	)

	_, err := svc.Register(context.Background(), models.Credentials{Username: "alice", Password: "pw123456"})
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", saved.PasswordHash, "plaintext must never be stored")

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(saved, nil).Times(2)

	_, err = svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw1234567"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
