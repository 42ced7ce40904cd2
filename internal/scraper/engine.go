// internal/scraper/engine.go
package scraper

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/civicdata/statement-go/internal/monitoring"
	"github.com/civicdata/statement-go/pkg/types"
)

// Engine dispatches scrape requests to pattern extractors. It holds
// only read-only state: the registry and the fetcher. Invocations are
// independent, so callers that want concurrency run one goroutine per
// source against a shared Engine.
type Engine struct {
	registry *Registry
	fetcher  Fetcher
	metrics  *monitoring.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithFetcher substitutes the page fetcher. Tests use this to serve
// fixture documents without a network.
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) { e.fetcher = f }
}

// WithMetrics attaches a metrics collector. A nil collector is valid
// and records nothing.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New creates an engine over the given registry. The default fetcher
// issues real HTTP requests with the default client configuration.
func New(registry *Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		fetcher:  NewHTTPFetcher(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scrape runs the registered source's extractor for the given page and
// returns its normalized records. An unknown name returns ErrNoScraper
// without touching the network. Transport failures are not errors: the
// result is simply empty for that page.
func (e *Engine) Scrape(ctx context.Context, name string, page int) ([]types.Record, error) {
	src, ok := e.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoScraper, name)
	}
	return e.ScrapeSources(ctx, src.Pattern, []Source{src}, page)
}

// ScrapeSources invokes one pattern extractor directly over an explicit
// collection of sources, bypassing the registry. Used when one family
// serves many unrelated sites that share a structure.
func (e *Engine) ScrapeSources(ctx context.Context, pattern Pattern, sources []Source, page int) ([]types.Record, error) {
	extract, ok := extractors[pattern]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
	if page < 1 {
		page = 1
	}

	var raw []types.Record
	for _, src := range sources {
		raw = append(raw, extract(e, ctx, src, page)...)
	}

	records := normalizeRecords(raw)
	e.metrics.AddRecords(string(pattern), len(records))
	return records, nil
}

// ScrapeURLs is ScrapeSources for patterns that need nothing beyond a
// base URL per source.
func (e *Engine) ScrapeURLs(ctx context.Context, pattern Pattern, urls []string, page int) ([]types.Record, error) {
	sources := make([]Source, 0, len(urls))
	for _, u := range urls {
		sources = append(sources, Source{Pattern: pattern, URLBase: u})
	}
	return e.ScrapeSources(ctx, pattern, sources, page)
}

// Registry exposes the engine's registry for listing sources.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// document fetches a full page, recording the outcome.
func (e *Engine) document(ctx context.Context, pattern Pattern, url string) *goquery.Document {
	doc := e.fetcher.Document(ctx, url)
	e.metrics.ObserveFetch(string(pattern), doc != nil)
	return doc
}

// fragment fetches an out-of-band HTML fragment, recording the outcome.
func (e *Engine) fragment(ctx context.Context, pattern Pattern, url string) *goquery.Document {
	doc := e.fetcher.Fragment(ctx, url)
	e.metrics.ObserveFetch(string(pattern), doc != nil)
	return doc
}
