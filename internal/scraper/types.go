// internal/scraper/types.go

// Package scraper implements the generic press-release extraction
// engine: a registry-driven dispatcher that maps each configured source
// to one of a small set of reusable markup-family extractors, plus the
// pagination, date-parsing, and result-normalization logic those
// extractors share.
package scraper

import "errors"

// Pattern identifies a recognized markup family. Each pattern is
// implemented once and parametrized by a Source; hundreds of sites
// share the same handful of structures.
type Pattern string

const (
	// PatternTableRecordListDate covers table listings with a dedicated
	// td.recordListDate date cell.
	PatternTableRecordListDate Pattern = "table_recordlist_date"

	// PatternJetListingElementor covers WordPress sites using the Jet
	// Engine listing grid with Elementor widgets.
	PatternJetListingElementor Pattern = "jet_listing_elementor"

	// PatternArticleBlock covers div.ArticleBlock listings with an h2 or
	// h3 title link and the date in a p or time element.
	PatternArticleBlock Pattern = "article_block"

	// PatternTableTime covers plain table listings with a header row and
	// a time element per row.
	PatternTableTime Pattern = "table_time"

	// PatternElementPostMedia covers .element containers with separate
	// post-media-list title and date elements.
	PatternElementPostMedia Pattern = "element_post_media"

	// PatternMiddotSiblingDate covers documentquery listings where the
	// date text is the raw sibling node following a span.middot marker.
	PatternMiddotSiblingDate Pattern = "middot_sibling_date"

	// PatternNewsTexthold covers documentquery listings with
	// .news-texthold containers and a time element.
	PatternNewsTexthold Pattern = "news_texthold"

	// PatternEtPbPost covers Divi-theme sites with article.et_pb_post
	// containers and /page/N/ path pagination.
	PatternEtPbPost Pattern = "et_pb_post"

	// PatternMediaBody covers div.media-body listings. One configuration
	// of this pattern serves well over two hundred distinct sites.
	PatternMediaBody Pattern = "media_body"

	// PatternJetSmartFilters covers sites whose listing markup is lazily
	// injected and must be fetched from a jet-smart-filters data
	// endpoint returning a JSON envelope with an HTML fragment.
	PatternJetSmartFilters Pattern = "jet_smart_filters"

	// PatternNewscontentSibling covers #newscontent listings where the
	// date sits two sibling positions before the h2 title in document
	// order.
	PatternNewscontentSibling Pattern = "newscontent_sibling"
)

// Patterns returns every recognized pattern.
func Patterns() []Pattern {
	return []Pattern{
		PatternTableRecordListDate,
		PatternJetListingElementor,
		PatternArticleBlock,
		PatternTableTime,
		PatternElementPostMedia,
		PatternMiddotSiblingDate,
		PatternNewsTexthold,
		PatternEtPbPost,
		PatternMediaBody,
		PatternJetSmartFilters,
		PatternNewscontentSibling,
	}
}

// Valid reports whether p names a recognized pattern.
func (p Pattern) Valid() bool {
	for _, known := range Patterns() {
		if p == known {
			return true
		}
	}
	return false
}

// Source configures one scrape target for a pattern. Sources are
// static data: defined once at startup and never mutated.
type Source struct {
	// Name uniquely identifies the source in the registry.
	Name string

	// Pattern names the extractor family to invoke.
	Pattern Pattern

	// URLBase is the canonical listing-page URL.
	URLBase string

	// DocTypeID is the numeric document-type identifier required by the
	// documentquery families. Defaults to "27" when empty.
	DocTypeID string

	// AjaxURL is the data-fetch endpoint for the jet_smart_filters
	// family, which never requests the listing page itself.
	AjaxURL string
}

var (
	// ErrNoScraper is returned when a source name has no registry entry.
	// This is a caller configuration error, distinct from transport
	// failures, which yield empty results without an error.
	ErrNoScraper = errors.New("no scraper registered")

	// ErrUnknownPattern is returned when a pattern name does not match
	// any implemented extractor family.
	ErrUnknownPattern = errors.New("unknown pattern")
)
