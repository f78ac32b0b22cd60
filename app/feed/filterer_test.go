package feed

import (
	"testing"
)

func TestMatchAny_NoKeywords(t *testing.T) {
	filterer := NewFilterer()

	entries := []Entry{
		{Title: "Python Developer", Description: "Backend role"},
		{Title: "Go Developer", Description: "Systems role"},
	}

	result := filterer.MatchAny(entries, nil)

	if len(result) != 2 {
		t.Errorf("Expected 2 entries with no keywords, got %d", len(result))
	}
}

func TestMatchAny_KeepsEntriesMatchingAnyKeyword(t *testing.T) {
	filterer := NewFilterer()

	entries := []Entry{
		{Title: "Python Developer", Description: "Backend role"},
		{Title: "Designer", Description: "We need a developer mindset"},
		{Title: "Accountant", Description: "Finance role"},
	}

	result := filterer.MatchAny(entries, []string{"python", "developer"})

	if len(result) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(result))
	}
	if result[0].Title != "Python Developer" {
		t.Errorf("Expected first match 'Python Developer', got %s", result[0].Title)
	}
	if result[1].Title != "Designer" {
		t.Errorf("Expected second match 'Designer' (description match), got %s", result[1].Title)
	}
}

func TestMatchAny_CaseInsensitive(t *testing.T) {
	filterer := NewFilterer()

	entries := []Entry{
		{Title: "PYTHON Engineer", Description: ""},
	}

	result := filterer.MatchAny(entries, []string{"python"})

	if len(result) != 1 {
		t.Errorf("Expected case-insensitive match, got %d entries", len(result))
	}
}

func TestFilterer_RequiredAll(t *testing.T) {
	filterer := NewFilterer()

	entries := []Entry{
		{Title: "Python Developer", Description: "docker and kubernetes"},
		{Title: "Python Developer", Description: "no container experience needed"},
		{Title: "Go Developer", Description: "docker experience"},
	}

	result := filterer.Run(entries, []string{"python", "docker"}, nil)

	if len(result) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(result))
	}

	// Every required term must appear in title or description
	for _, entry := range result {
		if !filterer.entryContains(entry, "python") || !filterer.entryContains(entry, "docker") {
			t.Errorf("Entry %q does not contain all required terms", entry.Title)
		}
	}
}

func TestFilterer_ExcludeAny(t *testing.T) {
	filterer := NewFilterer()

	entries := []Entry{
		{Title: "Python Developer", Description: "need python"},
		{Title: "Senior Python Developer", Description: "need python"},
		{Title: "Python Developer", Description: "senior level only"},
	}

	result := filterer.Run(entries, []string{"python"}, []string{"senior"})

	if len(result) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(result))
	}

	for _, entry := range result {
		if filterer.entryContains(entry, "senior") {
			t.Errorf("Entry %q contains an excluded term", entry.Title)
		}
	}
}

func TestFilterer_EmptyInput(t *testing.T) {
	filterer := NewFilterer()

	result := filterer.Run(nil, []string{"python"}, []string{"senior"})

	if len(result) != 0 {
		t.Errorf("Expected empty result for empty input, got %d entries", len(result))
	}
}
