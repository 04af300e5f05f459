package service

import (
	"github.com/MKhiriev/media-finder/internal/adapter"
	"github.com/MKhiriev/media-finder/internal/config"
	"github.com/MKhiriev/media-finder/internal/crypto"
	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/internal/utils"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	SearchService  SearchService
	MediaService   MediaService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, providers *adapter.Providers, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, crypto.NewBcryptHasher(cfg.App.BcryptCost), logger),
	)
	searchService := NewSearchValidationService().Wrap(
		NewSearchService(storages.SearchRepository, logger),
	)

	return &Services{
		AuthService:    authService,
		SessionService: NewSessionService(storages.SessionStore, utils.NewUUIDGenerator(), cfg.App, logger),
		SearchService:  searchService,
		MediaService:   NewMediaService(providers, storages.MediaCache, cfg.Adapter, logger),
		ContactService: NewContactService(logger),
		AppInfoService: appInfoService,
	}, nil
}
