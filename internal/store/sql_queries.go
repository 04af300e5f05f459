// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/media-finder/models"
)

var (
	usersTable    = models.User{}.TableName()
	searchesTable = models.SearchRecord{}.TableName()

	userColumns   = []string{"id", "username", "password_hash", "email", "created_at"}
	searchColumns = []string{"id", "user_id", "query", "timestamp"}
)

// Paging bounds of ListRecent.
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password_hash", "email", "created_at").
		Values(user.Username, user.PasswordHash, nullString(user.Email), user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertSearchQuery(b sq.StatementBuilderType, userID int64, query string, ts time.Time) (string, []any, error) {
	return b.Insert(searchesTable).
		Columns("user_id", "query", "timestamp").
		Values(userID, query, ts).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectRecentSearchesQuery orders newest first; id breaks ties between
// records saved within the same clock tick.
func buildSelectRecentSearchesQuery(b sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	return b.Select(searchColumns...).
		From(searchesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(normalizeLimit(limit))).
		ToSql()
}

func buildDeleteSearchQuery(b sq.StatementBuilderType, userID, searchID int64) (string, []any, error) {
	return b.Delete(searchesTable).
		Where(sq.Eq{"id": searchID, "user_id": userID}).
		ToSql()
}

// normalizeLimit maps non-positive limits to the default and caps the rest.
func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
