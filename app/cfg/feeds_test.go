package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFeeds_MissingFileUsesDefaults(t *testing.T) {
	feedsConfig, err := LoadFeeds(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got: %v", err)
	}

	if len(feedsConfig.Feeds) == 0 {
		t.Error("Expected built-in default feeds when file is missing")
	}
}

func TestLoadFeeds_ParsesYaml(t *testing.T) {
	content := `feeds:
  - https://example.com/jobs.rss
  - https://example.org/feed
filters:
  required_skills:
    - python
  exclude_keywords:
    - senior
    - lead
`
	path := filepath.Join(t.TempDir(), "feeds.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	feedsConfig, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(feedsConfig.Feeds) != 2 {
		t.Errorf("Expected 2 feeds, got %d", len(feedsConfig.Feeds))
	}
	if len(feedsConfig.Filters.RequiredSkills) != 1 || feedsConfig.Filters.RequiredSkills[0] != "python" {
		t.Errorf("Unexpected required skills: %v", feedsConfig.Filters.RequiredSkills)
	}
	if len(feedsConfig.Filters.ExcludeKeywords) != 2 {
		t.Errorf("Expected 2 exclude keywords, got %d", len(feedsConfig.Filters.ExcludeKeywords))
	}
}

func TestLoadFeeds_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yml")
	if err := os.WriteFile(path, []byte("feeds: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFeeds(path); err == nil {
		t.Error("Expected error for invalid yaml")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}
