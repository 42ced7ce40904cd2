// internal/scraper/engine_test.go
package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScrapeUnknownSource(t *testing.T) {
	fetcher := &stubFetcher{}
	engine := newTestEngine(t, []Source{
		{Name: "known", Pattern: PatternMediaBody, URLBase: "https://example.gov/news"},
	}, fetcher)

	_, err := engine.Scrape(context.Background(), "missing", 1)
	if !errors.Is(err, ErrNoScraper) {
		t.Fatalf("err = %v, want ErrNoScraper", err)
	}
	if len(fetcher.requested) != 0 {
		t.Errorf("unknown source must not touch the network, requested %v", fetcher.requested)
	}
}

func TestScrapeFetchFailureIsEmptyNotError(t *testing.T) {
	// Fetcher has no fixture for the URL, standing in for a transport
	// failure or non-2xx response.
	fetcher := &stubFetcher{}
	engine := newTestEngine(t, []Source{
		{Name: "down", Pattern: PatternMediaBody, URLBase: "https://down.example.gov/news"},
	}, fetcher)

	records, err := engine.Scrape(context.Background(), "down", 1)
	if err != nil {
		t.Fatalf("transport failure must not surface as an error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestScrapeSourcesUnknownPattern(t *testing.T) {
	engine := New(DefaultRegistry(), WithFetcher(&stubFetcher{}))
	_, err := engine.ScrapeSources(context.Background(), Pattern("bogus"), nil, 1)
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestScrapeCoercesPage(t *testing.T) {
	reqURL := "https://example.gov/news?page=1"
	fetcher := &stubFetcher{pages: map[string]string{
		reqURL: `<div class="media-body"><a href="/news/r1">R1</a></div>`,
	}}
	engine := newTestEngine(t, []Source{
		{Name: "src", Pattern: PatternMediaBody, URLBase: "https://example.gov/news"},
	}, fetcher)

	records, err := engine.Scrape(context.Background(), "src", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("page 0 should be treated as page 1, got %d records", len(records))
	}
}

func TestScrapeURLsMergesAndDedupes(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]string{
		"https://a.example.gov/news?page=1": `<div class="media-body"><a href="https://shared.example.gov/r1">One</a></div>`,
		"https://b.example.gov/news?page=1": `<div class="media-body"><a href="https://shared.example.gov/r1">One Again</a></div>
			<div class="media-body"><a href="https://b.example.gov/r2">Two</a></div>`,
	}}
	engine := New(DefaultRegistry(), WithFetcher(fetcher))

	records, err := engine.ScrapeURLs(context.Background(), PatternMediaBody, []string{
		"https://a.example.gov/news",
		"https://b.example.gov/news",
	}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 after cross-source dedupe", len(records))
	}
	if records[0].Title != "One" {
		t.Errorf("first occurrence should win, got %q", records[0].Title)
	}
}

func TestScrapeServerErrorEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer server.Close()

	registry, err := NewRegistry([]Source{
		{Name: "flaky", Pattern: PatternMediaBody, URLBase: server.URL + "/news"},
	})
	if err != nil {
		t.Fatal(err)
	}
	engine := New(registry)

	records, err := engine.Scrape(context.Background(), "flaky", 1)
	if err != nil {
		t.Fatalf("HTTP 500 must not surface as an error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
