package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/media-finder/internal/logger"
	"github.com/MKhiriev/media-finder/models"
)

// searchRepository is the SQL-backed implementation of [SearchRepository].
type searchRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewSearchRepository constructs a [SearchRepository] backed by db.
func NewSearchRepository(db *DB, logger *logger.Logger) SearchRepository {
	logger.Debug().Msg("creating search repository")
	return &searchRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// SaveSearch appends query to the history of userID, stamped with the
// current time. A blank query is rejected with [ErrEmptyQuery]; a userID
// with no account gives [ErrUserNotFound].
func (r *searchRepository) SaveSearch(ctx context.Context, userID int64, query string) (models.SearchRecord, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return models.SearchRecord{}, ErrEmptyQuery
	}

	record := models.SearchRecord{
		UserID:    userID,
		Query:     query,
		Timestamp: r.now(),
	}

	sqlQuery, args, err := buildInsertSearchQuery(r.db.builder(), record.UserID, record.Query, record.Timestamp)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.SaveSearch").Msg("error building query")
		return models.SearchRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&record.ID)
	if err != nil {
		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.SearchRecord{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*searchRepository.SaveSearch").Int64("user_id", userID).Msg("error inserting search")
		return models.SearchRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// ListRecent returns at most limit records of userID, newest first. A
// non-positive limit means [DefaultRecentLimit]; limits above
// [MaxRecentLimit] are capped. The result is never nil.
func (r *searchRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.SearchRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecentSearchesQuery(r.db.builder(), userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.ListRecent").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.ListRecent").Int64("user_id", userID).Msg("error selecting searches")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SearchRecord, 0, normalizeLimit(limit))
	for rows.Next() {
		var record models.SearchRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Query, &record.Timestamp); err != nil {
			log.Err(err).Str("func", "*searchRepository.ListRecent").Msg("error scanning search row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*searchRepository.ListRecent").Msg("error iterating search rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// DeleteSearch removes the record only when it belongs to userID.
func (r *searchRepository) DeleteSearch(ctx context.Context, userID, searchID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSearchQuery(r.db.builder(), userID, searchID)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.DeleteSearch").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*searchRepository.DeleteSearch").Int64("user_id", userID).Int64("search_id", searchID).Msg("error deleting search")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}
