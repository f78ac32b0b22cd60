// Package importer composes the fetch → filter → dedup-insert pipeline.
// Imports run synchronously inside the triggering request; there is no
// background scheduling.
package importer

import (
	"cmp"
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/lysyi3m/resource-scout/app/cfg"
	"github.com/lysyi3m/resource-scout/app/database"
	"github.com/lysyi3m/resource-scout/app/feed"
)

type Importer struct {
	fetcher     *feed.Fetcher
	filterer    *feed.Filterer
	resources   database.ResourceRepository
	searches    database.SearchRepository
	feedsConfig *cfg.FeedsConfig

	mu          sync.Mutex
	lastFetched []feed.Entry
}

// Result reports an import run. Fetched counts entries that survived
// filtering; Imported counts rows newly inserted.
type Result struct {
	Imported int
	Fetched  int
	Report   database.Report
}

func New(fetcher *feed.Fetcher, filterer *feed.Filterer,
	resources database.ResourceRepository, searches database.SearchRepository,
	feedsConfig *cfg.FeedsConfig) *Importer {
	return &Importer{
		fetcher:     fetcher,
		filterer:    filterer,
		resources:   resources,
		searches:    searches,
		feedsConfig: feedsConfig,
	}
}

// RunImport fetches the default feed list and imports entries matching any
// of the space-separated keywords.
func (i *Importer) RunImport(ctx context.Context, keywords, location string) (Result, error) {
	return i.importFrom(ctx, i.feedsConfig.Feeds, keywords, location)
}

// RunSavedSearch replays a saved search. A linked RSS source with a URL is
// fetched instead of the default list; source types the system does not
// implement (e.g. API) succeed without importing anything.
func (i *Importer) RunSavedSearch(ctx context.Context, id int64) error {
	search, err := i.searches.GetSearch(id)
	if err != nil {
		return err
	}

	keywords := cmp.Or(search.Keywords, "python")
	location := cmp.Or(search.Location, "remote")

	switch strings.ToUpper(search.DataSourceType) {
	case "RSS":
		locators := i.feedsConfig.Feeds
		if search.DataSourceURL != "" {
			locators = []string{search.DataSourceURL}
		}
		_, err := i.importFrom(ctx, locators, keywords, location)
		return err
	case "API":
		slog.Info("Saved search source type not implemented, skipping", "search", search.Name, "type", search.DataSourceType)
		return nil
	default:
		slog.Info("Saved search has no runnable data source, skipping", "search", search.Name)
		return nil
	}
}

// SaveFetched re-offers the last filtered batch to the store.
func (i *Importer) SaveFetched() database.Report {
	i.mu.Lock()
	entries := i.lastFetched
	i.mu.Unlock()

	return i.resources.AddBatch(entries)
}

func (i *Importer) importFrom(ctx context.Context, locators []string, keywords, location string) (Result, error) {
	slog.Info("Starting import", "keywords", keywords, "location", location, "feeds", len(locators))

	entries, results := i.fetcher.Run(ctx, locators)

	failedFeeds := 0
	for _, res := range results {
		if res.Err != nil {
			failedFeeds++
		}
	}

	matched := i.filterer.MatchAny(entries, strings.Fields(keywords))

	workStatus := feed.WorkStatusUnknown
	if strings.Contains(strings.ToLower(location), "remote") {
		workStatus = feed.WorkStatusRemote
	}
	for idx := range matched {
		matched[idx].Location = location
		matched[idx].WorkStatus = workStatus
	}

	filtered := i.filterer.Run(matched,
		i.feedsConfig.Filters.RequiredSkills,
		i.feedsConfig.Filters.ExcludeKeywords)

	i.mu.Lock()
	i.lastFetched = filtered
	i.mu.Unlock()

	report := i.resources.AddBatch(filtered)

	slog.Info("Import completed",
		"fetched", len(entries),
		"failed_feeds", failedFeeds,
		"matched", len(filtered),
		"new", report.New,
		"duplicates", report.Duplicates,
		"errors", report.Errors)

	return Result{Imported: report.New, Fetched: len(filtered), Report: report}, nil
}
