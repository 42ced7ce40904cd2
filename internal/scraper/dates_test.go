// internal/scraper/dates_test.go
package scraper

import "testing"

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		layouts []string
		want    string
	}{
		{"short slash", "01/15/24", recordListDateLayouts, "2024-01-15"},
		{"long slash", "01/15/2024", recordListDateLayouts, "2024-01-15"},
		{"month name", "January 15, 2024", recordListDateLayouts, "2024-01-15"},
		{"dotted short", "01.15.24", recordListDateLayouts, "2024-01-15"},
		{"dotted long", "01.15.2024", articleBlockLayouts, "2024-01-15"},
		{"month abbr", "Jan 15, 2024", articleBlockLayouts, "2024-01-15"},
		{"iso", "2024-01-15", articleBlockLayouts, "2024-01-15"},
		{"surrounding whitespace", "  01/15/2024\n", tableTimeLayouts, "2024-01-15"},
		{"jet month name", "February 3, 2023", jetListingDateLayouts, "2023-02-03"},
		{"media body short", "12/31/99", mediaBodyLayouts, "1999-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.text, tt.layouts)
			if got == nil {
				t.Fatalf("parseDate(%q) = nil, want %s", tt.text, tt.want)
			}
			if got.String() != tt.want {
				t.Errorf("parseDate(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDateUnrecognized(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"Posted yesterday",
		"15 January 2024",
		"2024/01/15",
		"||",
	}
	for _, text := range tests {
		if got := parseDate(text, articleBlockLayouts); got != nil {
			t.Errorf("parseDate(%q) = %v, want nil", text, got)
		}
	}
}

func TestParseDateLadderOrder(t *testing.T) {
	// The record list ladder tries the two-digit year first, so an
	// ambiguous 01/02/06 resolves as January 2, 2006.
	got := parseDate("01/02/06", recordListDateLayouts)
	if got == nil || got.String() != "2006-01-02" {
		t.Fatalf("parseDate(01/02/06) = %v, want 2006-01-02", got)
	}
}
