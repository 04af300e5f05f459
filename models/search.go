package models

import "time"

// SearchRecord is one query submitted by one user.
type SearchRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the SearchRecord model.
func (s SearchRecord) TableName() string {
	return "searches"
}

// SaveSearchRequest is the body of POST /search/save.
type SaveSearchRequest struct {
	Query string `json:"query"`
}
