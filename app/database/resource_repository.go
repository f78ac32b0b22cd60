package database

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/lysyi3m/resource-scout/app/feed"
)

// ResourceRepo handles database operations for imported resources.
//
// Deduplication uses a single scheme: a SHA-256 hash over the case-folded,
// trimmed title|company|description, stored in the UNIQUE dedup_key column.
// The column constraint is the only guard against concurrent imports racing
// on the same key.
type ResourceRepo struct {
	db *DB
}

func NewResourceRepository(db *DB) *ResourceRepo {
	return &ResourceRepo{db: db}
}

// Add inserts a candidate entry unless its dedup key already exists.
// Returns false without mutation when the key collides.
func (r *ResourceRepo) Add(entry feed.Entry) (bool, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return false, ErrMissingTitle
	}

	result, err := r.db.Exec(`
		INSERT INTO resources (
			title, company, url, description, date_posted, source,
			location, work_status, dedup_key, status, notes, date_added
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?)
		ON CONFLICT(dedup_key) DO NOTHING
	`, entry.Title, entry.Company, entry.URL, entry.Description,
		entry.DatePosted, entry.Source, entry.Location, entry.WorkStatus,
		dedupKey(entry), StatusNew, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to insert resource: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return affected > 0, nil
}

// AddBatch applies Add to each candidate in input order. Candidates that
// error are counted and logged, never silently dropped.
func (r *ResourceRepo) AddBatch(entries []feed.Entry) Report {
	var report Report

	for _, entry := range entries {
		inserted, err := r.Add(entry)
		if err != nil {
			slog.Error("Failed to store resource", "title", entry.Title, "url", entry.URL, "error", err)
			report.Errors++
			continue
		}

		if inserted {
			report.New++
		} else {
			report.Duplicates++
		}
	}

	return report
}

// List returns stored resources, newest first (date_added DESC, id DESC).
// A non-empty textFilter keeps rows whose title or company contains it,
// case-insensitively.
func (r *ResourceRepo) List(textFilter string) ([]Resource, error) {
	query := `
		SELECT id, title, company, url, description, date_posted, source,
		       location, work_status, status, notes, date_added
		FROM resources
	`
	var args []interface{}

	if textFilter != "" {
		query += " WHERE title LIKE '%' || ? || '%' OR company LIKE '%' || ? || '%'"
		args = append(args, textFilter, textFilter)
	}

	query += " ORDER BY date_added DESC, id DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	var resources []Resource
	for rows.Next() {
		var res Resource
		err := rows.Scan(
			&res.ID, &res.Title, &res.Company, &res.URL, &res.Description,
			&res.DatePosted, &res.Source, &res.Location, &res.WorkStatus,
			&res.Status, &res.Notes, &res.DateAdded,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}

	return resources, nil
}

func (r *ResourceRepo) GetResourceCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM resources").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get resource count: %w", err)
	}
	return count, nil
}

// UpdateStatus sets the status of a resource. Unknown ids return ErrNotFound;
// the caller decides whether that surfaces as a 404.
func (r *ResourceRepo) UpdateStatus(id int64, status string) error {
	if !IsValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}

	result, err := r.db.Exec("UPDATE resources SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update resource status: %w", err)
	}

	return checkFound(result)
}

// UpdateNotes replaces the free-text note on a resource.
func (r *ResourceRepo) UpdateNotes(id int64, notes string) error {
	result, err := r.db.Exec("UPDATE resources SET notes = ? WHERE id = ?", notes, id)
	if err != nil {
		return fmt.Errorf("failed to update resource notes: %w", err)
	}

	return checkFound(result)
}

func dedupKey(entry feed.Entry) string {
	fold := cases.Fold()
	content := fmt.Sprintf("%s|%s|%s",
		fold.String(strings.TrimSpace(entry.Title)),
		fold.String(strings.TrimSpace(entry.Company)),
		fold.String(strings.TrimSpace(entry.Description)))

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
