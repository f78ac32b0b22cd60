package database

import (
	"time"
)

// Resource status values. Status is only ever changed through an explicit
// status update, never by the import pipeline.
const (
	StatusNew        = "new"
	StatusInterested = "interested"
	StatusApplied    = "applied"
	StatusRejected   = "rejected"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusInterested, StatusApplied, StatusRejected:
		return true
	}
	return false
}

// Resource is a stored item. Fields copied from the feed entry are immutable
// after insert; a re-import of the same content is rejected as a duplicate.
type Resource struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	DatePosted  string    `json:"date_posted"`
	Source      string    `json:"source"`
	Location    string    `json:"location"`
	WorkStatus  string    `json:"work_status"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	DateAdded   time.Time `json:"date_added"`
}

// DataSource is a named, typed origin (RSS, API, ...) optionally bound to a
// saved search.
type DataSource struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SourceType  string    `json:"source_type"`
	BestFor     string    `json:"best_for"`
	SourceURL   string    `json:"source_url"`
	LastUpdated time.Time `json:"last_updated"`
}

// SavedSearch is a persisted keyword/location/source configuration. The
// DataSource* fields are populated from the joined data source on reads.
type SavedSearch struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Keywords     string    `json:"keywords"`
	Location     string    `json:"location"`
	IsActive     bool      `json:"is_active"`
	DataSourceID *int64    `json:"data_source_id"`
	DateCreated  time.Time `json:"date_created"`

	DataSourceName string `json:"data_source_name,omitempty"`
	DataSourceType string `json:"data_source_type,omitempty"`
	DataSourceURL  string `json:"data_source_url,omitempty"`
}

// SearchUpdate carries a partial saved-search update; nil fields are left
// unchanged.
type SearchUpdate struct {
	Name         *string
	Keywords     *string
	Location     *string
	IsActive     *bool
	DataSourceID *int64
}

// Report partitions a candidate batch: New + Duplicates + Errors always
// equals the batch length.
type Report struct {
	New        int `json:"new"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}
