package database

import (
	"errors"
	"testing"

	"github.com/lysyi3m/resource-scout/app/feed"
)

func testEntry(title string) feed.Entry {
	return feed.Entry{
		Title:       title,
		Company:     "Acme",
		URL:         "http://x/1",
		Description: "need python",
		DatePosted:  "Mon, 03 Jul 2023 10:00:00 GMT",
		Source:      "example.com",
		Location:    "remote",
		WorkStatus:  feed.WorkStatusRemote,
	}
}

func TestResourceRepo_AddAndDuplicate(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	inserted, err := repo.Add(testEntry("Python Dev"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !inserted {
		t.Fatal("Expected first add to insert")
	}

	inserted, err = repo.Add(testEntry("Python Dev"))
	if err != nil {
		t.Fatalf("Expected no error on duplicate, got: %v", err)
	}
	if inserted {
		t.Error("Expected duplicate add to be a no-op")
	}

	count, err := repo.GetResourceCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected 1 stored resource, got %d", count)
	}
}

func TestResourceRepo_DedupKeyIgnoresCaseAndWhitespace(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	if _, err := repo.Add(testEntry("Python Dev")); err != nil {
		t.Fatal(err)
	}

	entry := testEntry("  PYTHON DEV  ")
	entry.Company = "ACME"
	inserted, err := repo.Add(entry)
	if err != nil {
		t.Fatal(err)
	}
	if inserted {
		t.Error("Expected case/whitespace variant to collide on the dedup key")
	}
}

func TestResourceRepo_AddMissingTitle(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	_, err := repo.Add(feed.Entry{Title: "   ", Company: "Acme"})
	if !errors.Is(err, ErrMissingTitle) {
		t.Errorf("Expected ErrMissingTitle, got: %v", err)
	}
}

func TestResourceRepo_AddBatchPartition(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	batch := []feed.Entry{
		testEntry("Python Dev"),
		testEntry("Go Dev"),
		testEntry("Python Dev"), // duplicate within the batch
		{Title: "", Company: "Acme"},
	}

	report := repo.AddBatch(batch)

	if report.New != 2 {
		t.Errorf("Expected 2 new, got %d", report.New)
	}
	if report.Duplicates != 1 {
		t.Errorf("Expected 1 duplicate, got %d", report.Duplicates)
	}
	if report.Errors != 1 {
		t.Errorf("Expected 1 error, got %d", report.Errors)
	}
	if report.New+report.Duplicates+report.Errors != len(batch) {
		t.Errorf("Report does not partition the batch: %+v", report)
	}
}

func TestResourceRepo_AddBatchIdempotent(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	batch := []feed.Entry{testEntry("Python Dev"), testEntry("Go Dev")}

	first := repo.AddBatch(batch)
	if first.New != len(batch) || first.Duplicates != 0 {
		t.Errorf("Expected all new on first run, got %+v", first)
	}

	second := repo.AddBatch(batch)
	if second.New != 0 || second.Duplicates != len(batch) {
		t.Errorf("Expected all duplicates on second run, got %+v", second)
	}
}

func TestResourceRepo_ListOrderAndFilter(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	entries := []feed.Entry{testEntry("First"), testEntry("Second"), testEntry("Third")}
	for _, entry := range entries {
		if _, err := repo.Add(entry); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected every inserted resource, got %d", len(all))
	}

	// Newest first
	if all[0].Title != "Third" || all[2].Title != "First" {
		t.Errorf("Expected newest-first ordering, got %s ... %s", all[0].Title, all[2].Title)
	}

	filtered, err := repo.List("second")
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered) != 1 || filtered[0].Title != "Second" {
		t.Errorf("Expected case-insensitive title filter to match 'Second', got %v", filtered)
	}

	byCompany, err := repo.List("acme")
	if err != nil {
		t.Fatal(err)
	}
	if len(byCompany) != 3 {
		t.Errorf("Expected company filter to match all, got %d", len(byCompany))
	}
}

func TestResourceRepo_UpdateStatus(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	repo.AddBatch([]feed.Entry{testEntry("Python Dev"), testEntry("Go Dev")})

	all, err := repo.List("")
	if err != nil {
		t.Fatal(err)
	}

	target := all[0]
	if err := repo.UpdateStatus(target.ID, StatusApplied); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	all, err = repo.List("")
	if err != nil {
		t.Fatal(err)
	}
	for _, res := range all {
		if res.ID == target.ID {
			if res.Status != StatusApplied {
				t.Errorf("Expected status 'applied', got %s", res.Status)
			}
		} else if res.Status != StatusNew {
			t.Errorf("Unrelated resource %d changed status to %s", res.ID, res.Status)
		}
	}
}

func TestResourceRepo_UpdateStatusUnknownID(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	err := repo.UpdateStatus(9999, StatusApplied)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

func TestResourceRepo_UpdateStatusInvalid(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	if err := repo.UpdateStatus(1, "archived"); err == nil {
		t.Error("Expected error for status outside the enum")
	}
}

func TestResourceRepo_UpdateNotes(t *testing.T) {
	repo := NewResourceRepository(newTestDB(t))

	if _, err := repo.Add(testEntry("Python Dev")); err != nil {
		t.Fatal(err)
	}

	all, err := repo.List("")
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.UpdateNotes(all[0].ID, "followed up by email"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	all, err = repo.List("")
	if err != nil {
		t.Fatal(err)
	}
	if all[0].Notes != "followed up by email" {
		t.Errorf("Expected updated notes, got %q", all[0].Notes)
	}

	if err := repo.UpdateNotes(9999, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown id, got: %v", err)
	}
}
