package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// SearchRepo handles database operations for saved searches. Reads join the
// weakly-referenced data source so callers get its name/type/url in one shot.
type SearchRepo struct {
	db *DB
}

func NewSearchRepository(db *DB) *SearchRepo {
	return &SearchRepo{db: db}
}

const searchSelect = `
	SELECT s.id, s.name, s.keywords, s.location, s.is_active,
	       s.data_source_id, s.date_created,
	       COALESCE(ds.name, ''), COALESCE(ds.source_type, ''),
	       COALESCE(ds.source_url, '')
	FROM searches s
	LEFT JOIN data_sources ds ON s.data_source_id = ds.id
`

func (r *SearchRepo) ListSearches() ([]SavedSearch, error) {
	rows, err := r.db.Query(searchSelect + " ORDER BY s.id")
	if err != nil {
		return nil, fmt.Errorf("failed to list searches: %w", err)
	}
	defer rows.Close()

	var searches []SavedSearch
	for rows.Next() {
		search, err := scanSearch(rows.Scan)
		if err != nil {
			return nil, err
		}
		searches = append(searches, search)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search rows: %w", err)
	}

	return searches, nil
}

func (r *SearchRepo) AddSearch(name, keywords, location string, isActive bool, dataSourceID *int64) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO searches (name, keywords, location, is_active, data_source_id, date_created)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, keywords, location, isActive, dataSourceID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert search: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read search id: %w", err)
	}

	return id, nil
}

func (r *SearchRepo) GetSearch(id int64) (*SavedSearch, error) {
	row := r.db.QueryRow(searchSelect+" WHERE s.id = ?", id)

	search, err := scanSearch(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &search, nil
}

// UpdateSearch applies only the fields set in the update; nil fields are left
// unchanged. An update with no fields is a no-op, not an error.
func (r *SearchRepo) UpdateSearch(id int64, update SearchUpdate) error {
	var sets []string
	var args []interface{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Keywords != nil {
		sets = append(sets, "keywords = ?")
		args = append(args, *update.Keywords)
	}
	if update.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *update.Location)
	}
	if update.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *update.IsActive)
	}
	if update.DataSourceID != nil {
		sets = append(sets, "data_source_id = ?")
		args = append(args, *update.DataSourceID)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	result, err := r.db.Exec("UPDATE searches SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("failed to update search: %w", err)
	}

	return checkFound(result)
}

func (r *SearchRepo) DeleteSearch(id int64) error {
	result, err := r.db.Exec("DELETE FROM searches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete search: %w", err)
	}

	return checkFound(result)
}

func (r *SearchRepo) GetSearchCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM searches").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get search count: %w", err)
	}
	return count, nil
}

func scanSearch(scan func(dest ...interface{}) error) (SavedSearch, error) {
	var search SavedSearch
	var dataSourceID sql.NullInt64

	err := scan(
		&search.ID, &search.Name, &search.Keywords, &search.Location,
		&search.IsActive, &dataSourceID, &search.DateCreated,
		&search.DataSourceName, &search.DataSourceType, &search.DataSourceURL,
	)
	if err == sql.ErrNoRows {
		return search, err
	}
	if err != nil {
		return search, fmt.Errorf("failed to scan search row: %w", err)
	}

	if dataSourceID.Valid {
		search.DataSourceID = &dataSourceID.Int64
	}

	return search, nil
}
