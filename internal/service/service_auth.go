package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/media-finder/internal/crypto"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are hashed with the configured PasswordHasher before they reach
// the UserRepository; the plaintext never leaves this type.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and compares login attempts.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The username is looked up first so that a taken name is rejected before
// paying for a bcrypt hash. The UNIQUE constraint still decides races
// between concurrent registrations.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrValidation if username or password is empty, or the password is too
//     long to hash.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Register").Logger()

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		log.Debug().Str("username", username).Msg("username is already taken")
		return models.User{}, fmt.Errorf("user registration failed: %w", store.ErrUsernameAlreadyExists)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user lookup before registration failed")
		return models.User{}, fmt.Errorf("user lookup before registration failed: %w", err)
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(creds.Email),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials
// so the caller cannot tell which one was wrong.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "authService.Login").Logger()

	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}
