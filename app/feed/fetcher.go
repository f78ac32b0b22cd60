package feed

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const defaultFetchTimeout = 30 * time.Second

type Fetcher struct {
	httpClient   *http.Client
	gofeedParser *gofeed.Parser
	userAgent    string
	timeout      time.Duration
}

func NewFetcher(userAgent string) *Fetcher {
	return &Fetcher{
		httpClient:   &http.Client{},
		gofeedParser: gofeed.NewParser(),
		userAgent:    userAgent,
		timeout:      defaultFetchTimeout,
	}
}

// Run retrieves and parses each locator sequentially. Failures are recorded
// per locator in the returned results and never abort the remaining feeds.
func (f *Fetcher) Run(ctx context.Context, locators []string) ([]Entry, []FeedResult) {
	var entries []Entry
	results := make([]FeedResult, 0, len(locators))

	for _, locator := range locators {
		feedEntries, err := f.fetchOne(ctx, locator)
		if err != nil {
			slog.Error("Feed fetch failed", "feed", locator, "error", err)
			results = append(results, FeedResult{URL: locator, Err: err})
			continue
		}

		slog.Info("Feed fetched", "feed", locator, "entries", len(feedEntries))
		results = append(results, FeedResult{URL: locator, EntryCount: len(feedEntries)})
		entries = append(entries, feedEntries...)
	}

	return entries, results
}

func (f *Fetcher) fetchOne(ctx context.Context, locator string) ([]Entry, error) {
	source, err := sourceHost(locator)
	if err != nil {
		return nil, err
	}

	data, err := f.download(ctx, locator)
	if err != nil {
		return nil, err
	}

	parsed, err := f.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, f.normalizeItem(item, source))
	}

	return entries, nil
}

func (f *Fetcher) download(ctx context.Context, locator string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", locator, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

func (f *Fetcher) normalizeItem(item *gofeed.Item, source string) Entry {
	entry := Entry{
		Title:       cmp.Or(item.Title, "No Title"),
		Company:     cmp.Or(f.extractAuthor(item), "Unknown"),
		URL:         item.Link,
		Description: cmp.Or(item.Description, item.Content),
		DatePosted:  item.Published,
		Source:      source,
	}

	return entry
}

func (f *Fetcher) extractAuthor(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return cmp.Or(item.Authors[0].Name, item.Authors[0].Email)
	}

	if item.Author != nil {
		return cmp.Or(item.Author.Name, item.Author.Email)
	}

	return ""
}

// sourceHost extracts the authority component of a feed locator. A locator
// without a host segment is an unrecovered error for that locator.
func sourceHost(locator string) (string, error) {
	parsed, err := url.Parse(locator)
	if err != nil {
		return "", fmt.Errorf("invalid feed locator: %w", err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("feed locator has no host: %s", locator)
	}

	return parsed.Host, nil
}
