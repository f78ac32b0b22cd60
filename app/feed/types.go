package feed

// Work status values derived from the search location.
const (
	WorkStatusRemote  = "remote"
	WorkStatusUnknown = "unknown"
)

// Entry is a feed item reshaped into the common field set used across the
// pipeline. Entries are ephemeral; only the store assigns identity.
type Entry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	URL         string `json:"url"`
	Description string `json:"description"`
	DatePosted  string `json:"date_posted"`
	Source      string `json:"source"`
	Location    string `json:"location,omitempty"`
	WorkStatus  string `json:"work_status,omitempty"`
}

// FeedResult records the outcome of fetching a single locator. A failed
// locator contributes no entries but never aborts the remaining ones.
type FeedResult struct {
	URL        string
	EntryCount int
	Err        error
}
