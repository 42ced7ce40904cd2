// internal/config/types.go

// Package config provides the YAML configuration consumed at process
// start: the source registry, request settings, and output settings.
// Configuration is loaded once and treated as immutable while scrapers
// run.
package config

import (
	"time"

	"github.com/civicdata/statement-go/internal/scraper"
)

// Config is the root configuration document.
type Config struct {
	// Name identifies this configuration.
	Name string `yaml:"name" json:"name"`

	// Version of the configuration format.
	Version string `yaml:"version" json:"version"`

	// Request tunes the HTTP client shared by all scrapers.
	Request RequestConfig `yaml:"request" json:"request"`

	// Sources is the registry table. When empty, the compiled-in
	// default table is used.
	Sources []SourceConfig `yaml:"sources" json:"sources"`

	// Output selects where records are written.
	Output OutputConfig `yaml:"output" json:"output"`
}

// SourceConfig is one registry entry.
type SourceConfig struct {
	// Name uniquely identifies the source.
	Name string `yaml:"name" json:"name"`

	// Pattern names the extractor family.
	Pattern string `yaml:"pattern" json:"pattern"`

	// URLBase is the canonical listing-page URL.
	URLBase string `yaml:"url_base" json:"url_base"`

	// DocTypeID is the document-type identifier for documentquery
	// families.
	DocTypeID string `yaml:"doc_type_id,omitempty" json:"doc_type_id,omitempty"`

	// AjaxURL is the data-fetch endpoint for the jet_smart_filters
	// family.
	AjaxURL string `yaml:"ajax_url,omitempty" json:"ajax_url,omitempty"`
}

// RequestConfig tunes the outbound HTTP client.
type RequestConfig struct {
	// TimeoutSeconds bounds each request. Defaults to 30.
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds"`

	// UserAgent overrides the default browser-like identification.
	UserAgent string `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`

	// RateLimit caps outbound requests per second. Zero disables
	// rate limiting.
	RateLimit float64 `yaml:"rate_limit,omitempty" json:"rate_limit,omitempty"`

	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Timeout returns the configured timeout as a duration.
func (r RequestConfig) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// OutputConfig selects the output format and destination.
type OutputConfig struct {
	// Format is one of json, csv, sqlite, postgresql, mysql, mongodb,
	// excel.
	Format string `yaml:"format" json:"format"`

	// File is the destination path for file-based formats.
	File string `yaml:"file,omitempty" json:"file,omitempty"`

	// DSN is the connection string for database formats.
	DSN string `yaml:"dsn,omitempty" json:"dsn,omitempty"`

	// Table is the table or collection name for database formats.
	Table string `yaml:"table,omitempty" json:"table,omitempty"`
}

// ScraperSources converts the configured source table into registry
// entries.
func (c *Config) ScraperSources() []scraper.Source {
	sources := make([]scraper.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		sources = append(sources, scraper.Source{
			Name:      s.Name,
			Pattern:   scraper.Pattern(s.Pattern),
			URLBase:   s.URLBase,
			DocTypeID: s.DocTypeID,
			AjaxURL:   s.AjaxURL,
		})
	}
	return sources
}
