// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// AthletesCSV is the path of the athlete events file.
	AthletesCSV string `koanf:"athletes_csv"`

	// RegionsCSV is the path of the NOC region lookup file.
	RegionsCSV string `koanf:"regions_csv"`

	// DefaultTopN is the ranking length when a request names none.
	DefaultTopN int `koanf:"default_top_n"`

	// MaxTopLimit caps the n parameter of ranking views.
	MaxTopLimit int `koanf:"max_top_limit"`

	// MaxRecordsPage caps the page size of GET /records.
	MaxRecordsPage int `koanf:"max_records_page"`

	// ViewCacheSize bounds the memoized aggregate views.
	ViewCacheSize int `koanf:"view_cache_size"`

	// HistogramBins sets the age histogram bucket count.
	HistogramBins int `koanf:"histogram_bins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		AthletesCSV:    "athlete_events.csv",
		RegionsCSV:     "noc_regions.csv",
		DefaultTopN:    10,
		MaxTopLimit:    100,
		MaxRecordsPage: 1000,
		ViewCacheSize:  4096,
		HistogramBins:  30,
	}
}
