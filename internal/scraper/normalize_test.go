// internal/scraper/normalize_test.go
package scraper

import (
	"testing"

	"github.com/civicdata/statement-go/pkg/types"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		link string
		want string
	}{
		{
			"absolute passes through",
			"https://example.gov/press?page=2",
			"https://other.gov/release/1",
			"https://other.gov/release/1",
		},
		{
			"root relative resolves to origin",
			"https://example.gov/press?page=2",
			"/news/release-1",
			"https://example.gov/news/release-1",
		},
		{
			"bare relative resolves against directory",
			"https://example.house.gov/news/documentquery.aspx?DocumentTypeID=27&Page=1",
			"documentsingle.aspx?DocumentID=42",
			"https://example.house.gov/news/documentsingle.aspx?DocumentID=42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveURL(tt.base, tt.link); got != tt.want {
				t.Errorf("resolveURL(%q, %q) = %q, want %q", tt.base, tt.link, got, tt.want)
			}
		})
	}
}

func TestNormalizeRecordsFiltersGenericURLs(t *testing.T) {
	records := []types.Record{
		{Source: "https://example.gov/press", URL: "/news", Title: "More News"},
		{Source: "https://example.gov/press", URL: "/news/", Title: "All Releases"},
		{Source: "https://example.gov/press", URL: "/news/release-1", Title: "Real Release"},
	}
	got := normalizeRecords(records)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].URL != "https://example.gov/news/release-1" {
		t.Errorf("surviving URL = %q", got[0].URL)
	}
}

func TestNormalizeRecordsDedupes(t *testing.T) {
	records := []types.Record{
		{Source: "https://example.gov/press", URL: "/news/one", Title: "First"},
		{Source: "https://example.gov/press", URL: "https://example.gov/news/one", Title: "Duplicate"},
		{Source: "https://example.gov/press", URL: "/news/two", Title: "Second"},
	}
	got := normalizeRecords(records)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Title != "First" {
		t.Errorf("first occurrence should win, got title %q", got[0].Title)
	}
}

func TestNormalizeRecordsSkipsEmptyURL(t *testing.T) {
	records := []types.Record{
		{Source: "https://example.gov/press", URL: "", Title: "No Link"},
	}
	if got := normalizeRecords(records); len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Senator   Announces\n\tFunding  ", "Senator Announces Funding"},
		{"", ""},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		if got := cleanTitle(tt.in); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
