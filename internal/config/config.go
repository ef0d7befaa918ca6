package config

import "time"

// Config contains the static settings of the menu browser.
// Use DefaultConfig() to get the stock values, then override as needed.
type Config struct {
	// API endpoint
	APIURL   string `koanf:"api_url" yaml:"api_url"`     // Base URL of the menu endpoint
	PagePath string `koanf:"page_path" yaml:"page_path"` // Path carrying the food-court id, e.g. /food-courts/{id}

	// UI text
	AppTitle          string `koanf:"app_title" yaml:"app_title"`
	AppSubtitle       string `koanf:"app_subtitle" yaml:"app_subtitle"`
	SearchPlaceholder string `koanf:"search_placeholder" yaml:"search_placeholder"`

	// UI settings
	ShimmerCount     int    `koanf:"shimmer_count" yaml:"shimmer_count"` // Placeholder cards shown while loading (default: 5)
	CurrencySymbol   string `koanf:"currency_symbol" yaml:"currency_symbol"`
	PriceDecimals    int    `koanf:"price_decimals" yaml:"price_decimals"` // Digits after the point, rounding applies (default: 0)
	PlaceholderImage string `koanf:"placeholder_image" yaml:"placeholder_image"`

	// Error handling
	ErrorTitle            string `koanf:"error_title" yaml:"error_title"`
	EmptyDataErrorMessage string `koanf:"empty_data_error_message" yaml:"empty_data_error_message"`
	APIErrorMessage       string `koanf:"api_error_message" yaml:"api_error_message"`

	// Network hardening
	RequestTimeout        time.Duration `koanf:"request_timeout" yaml:"request_timeout"` // Per attempt (default: 10s)
	MaxRetries            int           `koanf:"max_retries" yaml:"max_retries"`         // Extra attempts after the first (default: 2)
	RetryBackoff          time.Duration `koanf:"retry_backoff" yaml:"retry_backoff"`     // First backoff, doubled per attempt (default: 500ms)
	ProbeTimeout          time.Duration `koanf:"probe_timeout" yaml:"probe_timeout"`     // Banner and image probes (default: 5s)
	ImageProbeConcurrency int           `koanf:"image_probe_concurrency" yaml:"image_probe_concurrency"`
	ProbeImages           bool          `koanf:"probe_images" yaml:"probe_images"`

	// Diagnostics
	LogFile string `koanf:"log_file" yaml:"log_file"`
	Verbose bool   `koanf:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a Config with the stock food court values.
func DefaultConfig() Config {
	return Config{
		APIURL: "https://api.hariken.xyz/food-court-by-slug",

		AppTitle:          "Digital Food Court",
		AppSubtitle:       "Taste the Variety",
		SearchPlaceholder: "Search menu items...",

		ShimmerCount:     5,
		CurrencySymbol:   "৳",
		PriceDecimals:    0,
		PlaceholderImage: "https://placehold.co/80x80/cccccc/333333?text=FOOD",

		ErrorTitle:            "Failed to Load Menu",
		EmptyDataErrorMessage: "No menu items available at the moment. Please check back later.",
		APIErrorMessage:       "We’re having some trouble right now. Please check your internet connection or try again shortly.",

		RequestTimeout:        10 * time.Second,
		MaxRetries:            2,
		RetryBackoff:          500 * time.Millisecond,
		ProbeTimeout:          5 * time.Second,
		ImageProbeConcurrency: 4,
		ProbeImages:           true,

		LogFile: "foodcourt.log",
	}
}

// WithAPIURL returns a copy of the config with a different endpoint.
func (c Config) WithAPIURL(url string) Config {
	c.APIURL = url
	return c
}

// WithPagePath returns a copy of the config with a different page path.
func (c Config) WithPagePath(path string) Config {
	c.PagePath = path
	return c
}

// WithRequestTimeout returns a copy of the config with a different per-attempt timeout.
func (c Config) WithRequestTimeout(d time.Duration) Config {
	c.RequestTimeout = d
	return c
}

// WithRetries returns a copy of the config with a different retry policy.
func (c Config) WithRetries(n int, backoff time.Duration) Config {
	c.MaxRetries = n
	c.RetryBackoff = backoff
	return c
}

// WithImageProbes returns a copy of the config with image probing enabled/disabled.
func (c Config) WithImageProbes(enabled bool) Config {
	c.ProbeImages = enabled
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return &ConfigError{Field: "APIURL", Message: "must not be empty"}
	}
	if c.ShimmerCount < 0 {
		return &ConfigError{Field: "ShimmerCount", Message: "must not be negative"}
	}
	if c.PriceDecimals < 0 || c.PriceDecimals > 4 {
		return &ConfigError{Field: "PriceDecimals", Message: "must be between 0 and 4"}
	}
	if c.RequestTimeout <= 0 {
		return &ConfigError{Field: "RequestTimeout", Message: "must be positive"}
	}
	if c.MaxRetries < 0 {
		return &ConfigError{Field: "MaxRetries", Message: "must not be negative"}
	}
	if c.MaxRetries > 0 && c.RetryBackoff <= 0 {
		return &ConfigError{Field: "RetryBackoff", Message: "must be positive when retries are enabled"}
	}
	if c.ProbeImages && c.ImageProbeConcurrency <= 0 {
		return &ConfigError{Field: "ImageProbeConcurrency", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
