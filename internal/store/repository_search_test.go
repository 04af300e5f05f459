package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/media-finder/internal/logger"
)

func newSearchFixture(t *testing.T) (*DB, UserRepository, *searchRepository) {
	t.Helper()

	db := newTestSQLiteDB(t)
	return db, NewUserRepository(db, logger.Nop()), NewSearchRepository(db, logger.Nop()).(*searchRepository)
}

func TestSearchRepository_SaveSearch(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")

	before := time.Now().UTC().Add(-time.Second)
	record, err := repo.SaveSearch(context.Background(), alice.UserID, "  cats  ")
	require.NoError(t, err)

	assert.Positive(t, record.ID)
	assert.Equal(t, alice.UserID, record.UserID)
	assert.Equal(t, "cats", record.Query)
	assert.True(t, record.Timestamp.After(before))
}

func TestSearchRepository_SaveSearch_EmptyQuery(t *testing.T) {
	db, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := repo.SaveSearch(context.Background(), alice.UserID, q)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.Equal(t, 0, countRows(t, db.DB, "SELECT COUNT(*) FROM searches"))
}

func TestSearchRepository_SaveSearch_UnknownUser(t *testing.T) {
	_, _, repo := newSearchFixture(t)

	_, err := repo.SaveSearch(context.Background(), 12345, "cats")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchRepository_ListRecent_NewestFirst(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")
	ctx := context.Background()

	for _, q := range []string{"first", "second", "third"} {
		_, err := repo.SaveSearch(ctx, alice.UserID, q)
		require.NoError(t, err)
	}

	records, err := repo.ListRecent(ctx, alice.UserID, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Query)
	assert.Equal(t, "second", records[1].Query)
	assert.Equal(t, "first", records[2].Query)
}

func TestSearchRepository_ListRecent_OrdersByTimestamp(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// inserted out of chronological order
	for _, offset := range []int{2, 0, 1} {
		ts := base.Add(time.Duration(offset) * time.Minute)
		repo.now = func() time.Time { return ts }
		_, err := repo.SaveSearch(ctx, alice.UserID, fmt.Sprintf("minute-%d", offset))
		require.NoError(t, err)
	}

	records, err := repo.ListRecent(ctx, alice.UserID, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "minute-2", records[0].Query)
	assert.Equal(t, "minute-1", records[1].Query)
	assert.Equal(t, "minute-0", records[2].Query)

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Timestamp.After(records[i-1].Timestamp))
	}
}

func TestSearchRepository_ListRecent_Limit(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := repo.SaveSearch(ctx, alice.UserID, fmt.Sprintf("q%d", i))
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: DefaultRecentLimit},
		{name: "smaller", limit: 3, want: 3},
		{name: "larger than history", limit: 50, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.ListRecent(ctx, alice.UserID, tt.limit)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
			assert.Equal(t, "q11", records[0].Query)
		})
	}
}

func TestSearchRepository_ListRecent_EmptyIsNotNil(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")

	records, err := repo.ListRecent(context.Background(), alice.UserID, 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSearchRepository_ListRecent_IsolatedPerUser(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")
	ctx := context.Background()

	_, err := repo.SaveSearch(ctx, alice.UserID, "alice-query")
	require.NoError(t, err)
	_, err = repo.SaveSearch(ctx, bob.UserID, "bob-query")
	require.NoError(t, err)

	records, err := repo.ListRecent(ctx, bob.UserID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bob-query", records[0].Query)
	assert.Equal(t, bob.UserID, records[0].UserID)
}

func TestSearchRepository_DeleteSearch(t *testing.T) {
	_, users, repo := newSearchFixture(t)
	alice := createTestUser(t, users, "alice")
	bob := createTestUser(t, users, "bob")
	ctx := context.Background()

	record, err := repo.SaveSearch(ctx, alice.UserID, "cats")
	require.NoError(t, err)

	// someone else's record is left alone
	deleted, err := repo.DeleteSearch(ctx, bob.UserID, record.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	records, err := repo.ListRecent(ctx, alice.UserID, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	deleted, err = repo.DeleteSearch(ctx, alice.UserID, record.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// second delete is a no-op
	deleted, err = repo.DeleteSearch(ctx, alice.UserID, record.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	records, err = repo.ListRecent(ctx, alice.UserID, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ── sqlmock fault paths ───────────────────────────────────────────────────────

func TestSearchRepository_SaveSearch_ForeignKeyPostgres(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO searches").
		WithArgs(int64(9), "cats", sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.SaveSearch(context.Background(), 9, "cats")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchRepository_SaveSearch_DBFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO searches").WillReturnError(errors.New("disk full"))

	_, err := repo.SaveSearch(context.Background(), 1, "cats")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSearchRepository_ListRecent_DBFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, user_id, query, timestamp FROM searches").
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))

	records, err := repo.ListRecent(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Nil(t, records)
}

func TestSearchRepository_ListRecent_ScanFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.Nop())

	rows := sqlmock.NewRows(searchColumns).AddRow("not-a-number", 1, "cats", time.Now())
	mock.ExpectQuery("SELECT id, user_id, query, timestamp FROM searches").WillReturnRows(rows)

	_, err := repo.ListRecent(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSearchRepository_ListRecent_RowsFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.Nop())

	rows := sqlmock.NewRows(searchColumns).
		AddRow(int64(1), int64(1), "cats", time.Now()).
		RowError(0, errors.New("connection lost"))
	mock.ExpectQuery("SELECT id, user_id, query, timestamp FROM searches").WillReturnRows(rows)

	_, err := repo.ListRecent(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSearchRepository_DeleteSearch_DBFault(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSearchRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM searches").
		WithArgs(int64(2), int64(1)).
		WillReturnError(errors.New("boom"))

	deleted, err := repo.DeleteSearch(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.False(t, deleted)
}
