// internal/scraper/fetch.go
package scraper

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher turns a URL into a navigable document, or nil on any
// failure. The engine treats a nil document exactly like a page with
// zero results; it never raises the failure to the caller. Tests
// substitute a stub implementation.
type Fetcher interface {
	// Document fetches and parses a full HTML page.
	Document(ctx context.Context, url string) *goquery.Document

	// Fragment fetches a JSON envelope whose "content" key holds an
	// HTML fragment, and parses that fragment. Used by the families
	// whose listing markup is lazily injected.
	Fragment(ctx context.Context, url string) *goquery.Document
}

// HTTPFetcher is the production Fetcher backed by HTTPClient.
type HTTPFetcher struct {
	client *HTTPClient
}

// NewHTTPFetcher creates a fetcher over the given client. A nil client
// gets the default configuration.
func NewHTTPFetcher(client *HTTPClient) *HTTPFetcher {
	if client == nil {
		client = NewHTTPClient(ClientConfig{})
	}
	return &HTTPFetcher{client: client}
}

// Document fetches url and parses the body. Transport errors, non-2xx
// statuses, and unparseable bodies all yield nil.
func (f *HTTPFetcher) Document(ctx context.Context, url string) *goquery.Document {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}
	return doc
}

// fragmentEnvelope is the JSON shape returned by the jet-smart-filters
// data endpoints.
type fragmentEnvelope struct {
	Content string `json:"content"`
}

// Fragment fetches url, decodes the JSON envelope, and parses the HTML
// fragment under its "content" key. A malformed payload or an empty
// fragment yields nil, which the engine treats as a structural mismatch
// for the whole page.
func (f *HTTPFetcher) Fragment(ctx context.Context, url string) *goquery.Document {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil
	}

	var envelope fragmentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil
	}
	if envelope.Content == "" {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(envelope.Content))
	if err != nil {
		return nil
	}
	return doc
}
