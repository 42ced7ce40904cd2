// internal/config/validation.go
package config

import (
	"fmt"

	"github.com/civicdata/statement-go/internal/scraper"
)

// Validate checks the configuration for structural errors. Each
// message names the offending field so a misconfigured source is
// findable without reading the whole file.
func (c *Config) Validate() error {
	if c.Request.TimeoutSeconds < 0 {
		return fmt.Errorf("request.timeout_seconds must not be negative")
	}
	if c.Request.RateLimit < 0 {
		return fmt.Errorf("request.rate_limit must not be negative")
	}

	names := make(map[string]struct{}, len(c.Sources))
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("sources[%d]: name is required", i)
		}
		if _, dup := names[src.Name]; dup {
			return fmt.Errorf("sources[%d]: duplicate name %q", i, src.Name)
		}
		names[src.Name] = struct{}{}

		pattern := scraper.Pattern(src.Pattern)
		if !pattern.Valid() {
			return fmt.Errorf("sources[%d] (%s): unknown pattern %q", i, src.Name, src.Pattern)
		}
		if pattern == scraper.PatternJetSmartFilters {
			if src.AjaxURL == "" {
				return fmt.Errorf("sources[%d] (%s): pattern jet_smart_filters requires ajax_url", i, src.Name)
			}
		} else if src.URLBase == "" {
			return fmt.Errorf("sources[%d] (%s): url_base is required", i, src.Name)
		}
	}

	if c.Output.Format != "" {
		if err := validateOutput(c.Output); err != nil {
			return err
		}
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	switch out.Format {
	case "json", "csv", "excel", "sqlite":
		if out.File == "" {
			return fmt.Errorf("output.file is required for format %q", out.Format)
		}
	case "postgresql", "mysql", "mongodb":
		if out.DSN == "" {
			return fmt.Errorf("output.dsn is required for format %q", out.Format)
		}
	default:
		return fmt.Errorf("unsupported output format %q", out.Format)
	}
	return nil
}
