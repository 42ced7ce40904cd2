// internal/scraper/dates.go
package scraper

import (
	"strings"
	"time"

	"github.com/civicdata/statement-go/pkg/types"
)

// Date layouts observed across the target sites. Each extractor family
// tries its own ordered subset; the first successful parse wins and the
// rest are never attempted.
const (
	layoutShortSlash = "01/02/06"        // 01/15/24
	layoutLongSlash  = "01/02/2006"      // 01/15/2024
	layoutMonthName  = "January 2, 2006" // January 15, 2024
	layoutMonthAbbr  = "Jan 2, 2006"     // Jan 15, 2024
	layoutISO        = "2006-01-02"      // 2024-01-15, from machine-readable attributes
)

// Per-family parse ladders. Order matters: it reproduces the selector
// priority each site family was observed to need.
var (
	recordListDateLayouts = []string{layoutShortSlash, layoutLongSlash, layoutMonthName}
	jetListingDateLayouts = []string{layoutMonthName, layoutLongSlash, layoutShortSlash}
	articleBlockLayouts   = []string{layoutShortSlash, layoutLongSlash, layoutMonthName, layoutMonthAbbr, layoutISO}
	tableTimeLayouts      = []string{layoutShortSlash, layoutLongSlash, layoutISO, layoutMonthName}
	elementPostLayouts    = []string{layoutMonthName, layoutLongSlash, layoutShortSlash}
	middotDateLayouts     = []string{layoutLongSlash, layoutShortSlash, layoutMonthName}
	monthNameOnlyLayouts  = []string{layoutMonthName}
	mediaBodyLayouts      = []string{layoutShortSlash, layoutMonthName}
	newscontentLayouts    = []string{layoutShortSlash, layoutMonthName}
)

// parseDate tries each layout in order against the trimmed text and
// returns the first successful parse. Period-delimited dates (01.15.24)
// are normalized to slash-delimited form before each attempt; the raw
// text is tried as well so that layouts containing literal punctuation
// still match. A nil result means no recognized format matched, which
// is missing information, not an error.
func parseDate(text string, layouts []string) *types.Date {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(text, ".", "/")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			d := types.DateOf(t)
			return &d
		}
		if normalized == text {
			continue
		}
		if t, err := time.Parse(layout, text); err == nil {
			d := types.DateOf(t)
			return &d
		}
	}
	return nil
}
