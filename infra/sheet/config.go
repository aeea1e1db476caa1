package sheet

import "fmt"

// Config defines where the spreadsheet export comes from and how long a
// fetched copy stays valid.
type Config struct {
	// URL of the published delimiter-separated export.
	URL string `json:"url"`
	// XLSXPath switches to a local workbook file instead of HTTP.
	XLSXPath string `json:"xlsx_path"`
	// CacheSeconds is the validity window of a fetched copy.
	CacheSeconds int `json:"cache_seconds"`
	// TimeoutSeconds bounds one HTTP fetch.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.CacheSeconds == 0 {
		c.CacheSeconds = 60
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 25
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.URL == "" && c.XLSXPath == "" {
		return fmt.Errorf("either url or xlsx_path is required")
	}
	if c.CacheSeconds < 0 {
		return fmt.Errorf("cache_seconds must not be negative")
	}
	return nil
}
