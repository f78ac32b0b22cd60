package database

import (
	"errors"

	"github.com/lysyi3m/resource-scout/app/feed"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMissingTitle is returned for candidates without a title.
	ErrMissingTitle = errors.New("candidate is missing a title")
)

type ResourceRepository interface {
	Add(entry feed.Entry) (bool, error)
	AddBatch(entries []feed.Entry) Report
	List(textFilter string) ([]Resource, error)
	GetResourceCount() (int, error)

	UpdateStatus(id int64, status string) error
	UpdateNotes(id int64, notes string) error
}

type DataSourceRepository interface {
	ListDataSources() ([]DataSource, error)
	AddDataSource(name, sourceType, bestFor, sourceURL string) (int64, error)
	GetDataSource(id int64) (*DataSource, error)
}

type SearchRepository interface {
	ListSearches() ([]SavedSearch, error)
	AddSearch(name, keywords, location string, isActive bool, dataSourceID *int64) (int64, error)
	GetSearch(id int64) (*SavedSearch, error)
	UpdateSearch(id int64, update SearchUpdate) error
	DeleteSearch(id int64) error
	GetSearchCount() (int, error)
}
