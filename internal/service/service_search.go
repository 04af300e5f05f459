package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/metrics"
	"github.com/MKhiriev/media-finder/internal/store"
	"github.com/MKhiriev/media-finder/models"
)

type searchService struct {
	searchRepository store.SearchRepository

	logger *logger.Logger
}

func NewSearchService(searchRepository store.SearchRepository, logger *logger.Logger) SearchService {
	return &searchService{
		searchRepository: searchRepository,
		logger:           logger,
	}
}

func (s *searchService) SaveSearch(ctx context.Context, userID int64, query string) (models.SearchRecord, error) {
	record, err := s.searchRepository.SaveSearch(ctx, userID, query)
	if err != nil {
		return models.SearchRecord{}, fmt.Errorf("error saving search: %w", err)
	}

	metrics.RecordSearchSaved()
	return record, nil
}

func (s *searchService) ListRecent(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error) {
	records, err := s.searchRepository.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent searches: %w", err)
	}

	return records, nil
}

func (s *searchService) DeleteSearch(ctx context.Context, userID, searchID int64) error {
	deleted, err := s.searchRepository.DeleteSearch(ctx, userID, searchID)
	if err != nil {
		return fmt.Errorf("error deleting search: %w", err)
	}

	if !deleted {
		logger.FromContext(ctx).Debug().
			Str("func", "*searchService.DeleteSearch").
			Int64("user_id", userID).
			Int64("search_id", searchID).
			Msg("nothing deleted: search is missing or owned by another user")
	}

	return nil
}
