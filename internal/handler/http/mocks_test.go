package http

import (
	"context"
	"time"

	"github.com/MKhiriev/media-finder/internal/service"
	"github.com/MKhiriev/media-finder/models"
)

// Hand-written service doubles. A nil func field means "succeed with the zero
// value", except ValidateSession which then treats every token as unknown.

type mockAuthService struct {
	registerFn func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn    func(ctx context.Context, creds models.Credentials) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.registerFn == nil {
		return models.User{}, nil
	}
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, creds)
}

type mockSessionService struct {
	createFn   func(ctx context.Context, user models.User) (models.Session, error)
	validateFn func(ctx context.Context, token string) (models.Session, error)
	destroyFn  func(ctx context.Context, token string) error

	destroyed []string
}

func (m *mockSessionService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	if m.createFn == nil {
		return models.Session{}, nil
	}
	return m.createFn(ctx, user)
}

func (m *mockSessionService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	if m.validateFn == nil {
		return models.Session{}, service.ErrUnauthenticated
	}
	return m.validateFn(ctx, token)
}

func (m *mockSessionService) DestroySession(ctx context.Context, token string) error {
	m.destroyed = append(m.destroyed, token)
	if m.destroyFn == nil {
		return nil
	}
	return m.destroyFn(ctx, token)
}

func (m *mockSessionService) PurgeExpired(context.Context) (int, error) {
	return 0, nil
}

func (m *mockSessionService) Lifetime() time.Duration {
	return 24 * time.Hour
}

type mockSearchService struct {
	saveFn   func(ctx context.Context, userID int64, query string) (models.SearchRecord, error)
	listFn   func(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error)
	deleteFn func(ctx context.Context, userID, searchID int64) error
}

func (m *mockSearchService) SaveSearch(ctx context.Context, userID int64, query string) (models.SearchRecord, error) {
	if m.saveFn == nil {
		return models.SearchRecord{}, nil
	}
	return m.saveFn(ctx, userID, query)
}

func (m *mockSearchService) ListRecent(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, userID, limit)
}

func (m *mockSearchService) DeleteSearch(ctx context.Context, userID, searchID int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, userID, searchID)
}

type mockMediaService struct {
	searchFn func(ctx context.Context, provider string, q models.MediaQuery) (models.MediaResponse, error)
	videoFn  func(ctx context.Context, id string) (models.MediaResponse, error)
}

func (m *mockMediaService) Search(ctx context.Context, provider string, q models.MediaQuery) (models.MediaResponse, error) {
	if m.searchFn == nil {
		return models.MediaResponse{StatusCode: 200}, nil
	}
	return m.searchFn(ctx, provider, q)
}

func (m *mockMediaService) VideoDetails(ctx context.Context, id string) (models.MediaResponse, error) {
	if m.videoFn == nil {
		return models.MediaResponse{StatusCode: 200}, nil
	}
	return m.videoFn(ctx, id)
}

type mockContactService struct {
	submitFn func(ctx context.Context, req models.ContactRequest) error
}

func (m *mockContactService) Submit(ctx context.Context, req models.ContactRequest) error {
	if m.submitFn == nil {
		return nil
	}
	return m.submitFn(ctx, req)
}
