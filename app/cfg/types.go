package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	FeedsFile string
	Port      string
	BaseUrl   string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
