package cfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FeedsConfig describes the default feed list and the filters applied to
// every import run.
type FeedsConfig struct {
	Feeds   []string    `yaml:"feeds"`
	Filters FeedFilters `yaml:"filters"`
}

type FeedFilters struct {
	RequiredSkills  []string `yaml:"required_skills"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
}

// defaultFeeds is used when no feeds file exists on disk.
var defaultFeeds = []string{
	"https://weworkremotely.com/categories/remote-programming-jobs.rss",
	"https://remoteok.io/remote-dev-jobs.rss",
	"https://remotive.com/remote-jobs/feed/qa",
	"https://jobicy.com/?feed=job_feed&job_categories=technical-support&job_types=full-time&search_region=usa",
}

func LoadFeeds(path string) (*FeedsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FeedsConfig{Feeds: defaultFeeds}, nil
		}
		return nil, fmt.Errorf("failed to read feeds file: %w", err)
	}

	var feedsConfig FeedsConfig
	if err := yaml.Unmarshal(data, &feedsConfig); err != nil {
		return nil, fmt.Errorf("failed to parse feeds file %s: %w", path, err)
	}

	if len(feedsConfig.Feeds) == 0 {
		feedsConfig.Feeds = defaultFeeds
	}

	return &feedsConfig, nil
}
