// cmd/statement/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/civicdata/statement-go/internal/config"
	"github.com/civicdata/statement-go/internal/output"
	"github.com/civicdata/statement-go/internal/scraper"
	"github.com/civicdata/statement-go/internal/utils"
)

// Version information (set by build flags)
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runScrapers(os.Args[2:])
	case "validate":
		validateConfig(os.Args[2:])
	case "template":
		printTemplate()
	case "sources":
		listSources(os.Args[2:])
	case "version":
		fmt.Printf("statement %s (%s)\n", version, gitCommit)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`statement - press release scraper

Usage:
  statement run <config.yaml> [--source name] [--page N]
  statement validate <config.yaml>
  statement template
  statement sources [config.yaml]
  statement version

Commands:
  run       Scrape one source (or every registered source) and write
            records to the configured output
  validate  Check a configuration file without scraping
  template  Print a starter configuration to stdout
  sources   List registered source names
  version   Print version information
`)
}

// runScrapers loads the configuration, builds the engine, and scrapes
// the requested sources. A source that yields nothing (including on
// transport failure) is logged and skipped; the run continues.
func runScrapers(args []string) {
	logger := utils.NewLogger()

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "run requires a configuration file")
		os.Exit(1)
	}

	cfg, err := config.LoadFromFile(args[0])
	if err != nil {
		logger.Errorf("configuration error: %v", err)
		os.Exit(1)
	}

	sourceName, page := parseRunFlags(args[1:])

	registry, err := buildRegistry(cfg)
	if err != nil {
		logger.Errorf("registry error: %v", err)
		os.Exit(1)
	}

	client := scraper.NewHTTPClient(scraper.ClientConfig{
		Timeout:   cfg.Request.Timeout(),
		UserAgent: cfg.Request.UserAgent,
		RateLimit: cfg.Request.RateLimit,
		Headers:   cfg.Request.Headers,
	})
	defer client.Close()

	engine := scraper.New(registry, scraper.WithFetcher(scraper.NewHTTPFetcher(client)))

	names := registry.Names()
	if sourceName != "" {
		names = []string{sourceName}
	}

	outCfg := cfg.Output
	if outCfg.Format == "" {
		outCfg = config.OutputConfig{Format: "json", File: "releases.json"}
		logger.Infof("no output configured, writing %s", outCfg.File)
	}
	writer, err := output.NewWriter(outCfg)
	if err != nil {
		logger.Errorf("output error: %v", err)
		os.Exit(1)
	}
	defer writer.Close()

	ctx := context.Background()
	total := 0
	for _, name := range names {
		records, err := engine.Scrape(ctx, name, page)
		if err != nil {
			// Unknown source: configuration error, not a transient fault.
			logger.Errorf("%v", err)
			continue
		}
		if len(records) == 0 {
			logger.Warnf("no records for %s (page %d)", name, page)
			continue
		}
		if err := writer.Write(records); err != nil {
			logger.Errorf("write failed for %s: %v", name, err)
			continue
		}
		logger.WithField("source", name).Infof("scraped %d records", len(records))
		total += len(records)
	}
	logger.Infof("done: %d records from %d sources", total, len(names))
}

func parseRunFlags(args []string) (source string, page int) {
	page = 1
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--source", "-s":
			if i+1 < len(args) {
				i++
				source = args[i]
			}
		case "--page", "-p":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil && n > 0 {
					page = n
				}
			}
		}
	}
	return source, page
}

func buildRegistry(cfg *config.Config) (*scraper.Registry, error) {
	if len(cfg.Sources) == 0 {
		return scraper.DefaultRegistry(), nil
	}
	return scraper.NewRegistry(cfg.ScraperSources())
}

func validateConfig(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "validate requires a configuration file")
		os.Exit(1)
	}
	if _, err := config.LoadFromFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("configuration %q is valid\n", args[0])
}

func printTemplate() {
	data, err := yaml.Marshal(config.GenerateTemplate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render template: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func listSources(args []string) {
	registry := scraper.DefaultRegistry()
	if len(args) > 0 {
		cfg, err := config.LoadFromFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}
		if r, err := buildRegistry(cfg); err == nil {
			registry = r
		}
	}
	for _, name := range registry.Names() {
		src, _ := registry.Lookup(name)
		fmt.Printf("%-20s %s\n", name, src.Pattern)
	}
}
