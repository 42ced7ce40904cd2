// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads and validates a YAML configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}

// Load parses and validates YAML configuration data.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateTemplate returns a starter configuration with one source per
// commonly used pattern.
func GenerateTemplate() *Config {
	return &Config{
		Name:    "press-releases",
		Version: "1.0",
		Request: RequestConfig{
			TimeoutSeconds: 30,
		},
		Sources: []SourceConfig{
			{Name: "moran", Pattern: "table_recordlist_date", URLBase: "https://www.moran.senate.gov/public/index.cfm/news-releases"},
			{Name: "durbin", Pattern: "article_block", URLBase: "https://www.durbin.senate.gov/newsroom/press-releases"},
			{Name: "issa", Pattern: "media_body", URLBase: "https://issa.house.gov/media/press-releases"},
			{Name: "mcgovern", Pattern: "middot_sibling_date", URLBase: "https://mcgovern.house.gov", DocTypeID: "27"},
		},
		Output: OutputConfig{
			Format: "json",
			File:   "releases.json",
		},
	}
}
