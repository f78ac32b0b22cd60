package database

import (
	"database/sql"
	"fmt"
	"time"
)

// DataSourceRepo handles database operations for data sources.
type DataSourceRepo struct {
	db *DB
}

func NewDataSourceRepository(db *DB) *DataSourceRepo {
	return &DataSourceRepo{db: db}
}

func (r *DataSourceRepo) ListDataSources() ([]DataSource, error) {
	rows, err := r.db.Query(`
		SELECT id, name, source_type, best_for, source_url, last_updated
		FROM data_sources
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list data sources: %w", err)
	}
	defer rows.Close()

	var sources []DataSource
	for rows.Next() {
		var ds DataSource
		err := rows.Scan(&ds.ID, &ds.Name, &ds.SourceType, &ds.BestFor, &ds.SourceURL, &ds.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf("failed to scan data source row: %w", err)
		}
		sources = append(sources, ds)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating data source rows: %w", err)
	}

	return sources, nil
}

func (r *DataSourceRepo) AddDataSource(name, sourceType, bestFor, sourceURL string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO data_sources (name, source_type, best_for, source_url, last_updated)
		VALUES (?, ?, ?, ?, ?)
	`, name, sourceType, bestFor, sourceURL, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert data source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read data source id: %w", err)
	}

	return id, nil
}

func (r *DataSourceRepo) GetDataSource(id int64) (*DataSource, error) {
	var ds DataSource
	err := r.db.QueryRow(`
		SELECT id, name, source_type, best_for, source_url, last_updated
		FROM data_sources
		WHERE id = ?
	`, id).Scan(&ds.ID, &ds.Name, &ds.SourceType, &ds.BestFor, &ds.SourceURL, &ds.LastUpdated)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get data source: %w", err)
	}

	return &ds, nil
}
