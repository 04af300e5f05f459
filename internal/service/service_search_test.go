package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/internal/mock"
	"github.com/MKhiriev/media-finder/internal/validators"
	"github.com/MKhiriev/media-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSearchSvc(t *testing.T) (SearchService, *mock.MockSearchRepository) {
	t.Helper()
	repo := mock.NewMockSearchRepository(gomock.NewController(t))

	return NewSearchValidationService().Wrap(NewSearchService(repo, logger.Nop())), repo
}

func TestSearchService_SaveSearch(t *testing.T) {
	svc, repo := newTestSearchSvc(t)
	want := models.SearchRecord{ID: 1, UserID: 7, Query: "cats", Timestamp: time.Now()}

	repo.EXPECT().SaveSearch(gomock.Any(), int64(7), "cats").Return(want, nil)

	got, err := svc.SaveSearch(context.Background(), 7, "cats")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchService_SaveSearch_EmptyQuery(t *testing.T) {
	svc, _ := newTestSearchSvc(t)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.SaveSearch(context.Background(), 7, q)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, validators.ErrEmptyQuery)
	}
}

func TestSearchService_SaveSearch_StoreFault(t *testing.T) {
	svc, repo := newTestSearchSvc(t)

	repo.EXPECT().SaveSearch(gomock.Any(), int64(7), "cats").Return(models.SearchRecord{}, errDB)

	_, err := svc.SaveSearch(context.Background(), 7, "cats")
	assert.ErrorIs(t, err, errDB)
}

func TestSearchService_ListRecent(t *testing.T) {
	svc, repo := newTestSearchSvc(t)
	records := []models.SearchRecord{{ID: 2, UserID: 7, Query: "dogs"}, {ID: 1, UserID: 7, Query: "cats"}}

	repo.EXPECT().ListRecent(gomock.Any(), int64(7), 10).Return(records, nil)

	got, err := svc.ListRecent(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSearchService_ListRecent_StoreFault(t *testing.T) {
	svc, repo := newTestSearchSvc(t)

	repo.EXPECT().ListRecent(gomock.Any(), int64(7), 10).Return(nil, errDB)

	_, err := svc.ListRecent(context.Background(), 7, 10)
	assert.ErrorIs(t, err, errDB)
}

func TestSearchService_DeleteSearch(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
	}{
		{name: "owned record", deleted: true},
		{name: "missing or foreign record is a no-op", deleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestSearchSvc(t)

			repo.EXPECT().DeleteSearch(gomock.Any(), int64(7), int64(3)).Return(tt.deleted, nil)

			assert.NoError(t, svc.DeleteSearch(context.Background(), 7, 3))
		})
	}
}

func TestSearchService_DeleteSearch_InvalidID(t *testing.T) {
	svc, _ := newTestSearchSvc(t)

	assert.ErrorIs(t, svc.DeleteSearch(context.Background(), 7, 0), ErrValidation)
	assert.ErrorIs(t, svc.DeleteSearch(context.Background(), 7, -5), ErrValidation)
}

func TestSearchService_DeleteSearch_StoreFault(t *testing.T) {
	svc, repo := newTestSearchSvc(t)

	repo.EXPECT().DeleteSearch(gomock.Any(), int64(7), int64(3)).Return(false, errDB)

	assert.ErrorIs(t, svc.DeleteSearch(context.Background(), 7, 3), errDB)
}
