// internal/scraper/patterns.go
package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/civicdata/statement-go/pkg/types"
)

// extractFunc scans one source's listing page for a given page number
// and emits raw candidate records. URLs are still page-relative at this
// point; normalizeRecords resolves and filters them.
type extractFunc func(e *Engine, ctx context.Context, src Source, page int) []types.Record

// extractors maps each pattern to its implementation. Every extractor
// follows the same shape: build the request URL for the family's
// pagination convention, fetch, select the repeating containers, then
// locate the link and date within each container through ordered
// selector fallbacks. A container without a link is skipped silently;
// a missing or unparseable date never blocks the record.
var extractors = map[Pattern]extractFunc{
	PatternTableRecordListDate: (*Engine).extractTableRecordListDate,
	PatternJetListingElementor: (*Engine).extractJetListingElementor,
	PatternArticleBlock:        (*Engine).extractArticleBlock,
	PatternTableTime:           (*Engine).extractTableTime,
	PatternElementPostMedia:    (*Engine).extractElementPostMedia,
	PatternMiddotSiblingDate:   (*Engine).extractMiddotSiblingDate,
	PatternNewsTexthold:        (*Engine).extractNewsTexthold,
	PatternEtPbPost:            (*Engine).extractEtPbPost,
	PatternMediaBody:           (*Engine).extractMediaBody,
	PatternJetSmartFilters:     (*Engine).extractJetSmartFilters,
	PatternNewscontentSibling:  (*Engine).extractNewscontentSibling,
}

// linkRecord seeds a record from the request URL and the matched title
// link. The URL is the raw href; the title is the link text.
func linkRecord(reqURL string, link *goquery.Selection) types.Record {
	href, _ := link.Attr("href")
	return types.Record{
		Source: reqURL,
		URL:    strings.TrimSpace(href),
		Title:  strings.TrimSpace(link.Text()),
		Domain: hostOf(reqURL),
	}
}

// timeText prefers a time element's machine-readable datetime attribute
// over its display text.
func timeText(el *goquery.Selection) string {
	if goquery.NodeName(el) == "time" {
		if dt, ok := el.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
			return dt
		}
	}
	return el.Text()
}

// table_recordlist_date: table tbody tr rows with a td.recordListDate
// date cell. Generic ?page=N pagination.
func (e *Engine) extractTableRecordListDate(ctx context.Context, src Source, page int) []types.Record {
	reqURL := queryPageURL(src.URLBase, "page", page)
	doc := e.document(ctx, PatternTableRecordListDate, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if cell := firstMatch(row, "td.recordListDate"); cell != nil {
			rec.Date = parseDate(cell.Text(), recordListDateLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// jet_listing_elementor: Jet Engine listing grids. The container class
// differs between themes, so the item selector itself is a fallback
// chain.
func (e *Engine) extractJetListingElementor(ctx context.Context, src Source, page int) []types.Record {
	reqURL := jetListingPageURL(src.URLBase, page)
	doc := e.document(ctx, PatternJetListingElementor, reqURL)
	if doc == nil {
		return nil
	}

	items := doc.Find(".jet-listing-grid__item")
	if items.Length() == 0 {
		items = doc.Find(".elementor-widget-wrap")
	}

	var out []types.Record
	items.Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "h3 a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, "span.elementor-icon-list-text", "li span.elementor-icon-list-text", ".elementor-post-date"); el != nil {
			rec.Date = parseDate(el.Text(), jetListingDateLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// article_block: div.ArticleBlock listings, h2 title link with h3
// fallback, date in a p element or a time element whose datetime
// attribute is preferred. PageNum_rs pagination.
func (e *Engine) extractArticleBlock(ctx context.Context, src Source, page int) []types.Record {
	reqURL := queryPageURL(src.URLBase, "PageNum_rs", page)
	doc := e.document(ctx, PatternArticleBlock, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("div.ArticleBlock").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "h2 a", "h3 a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, "p", "time"); el != nil {
			rec.Date = parseDate(timeText(el), articleBlockLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// table_time: plain table rows, first row is a header. The date lives
// in a time element.
func (e *Engine) extractTableTime(ctx context.Context, src Source, page int) []types.Record {
	reqURL := queryPageURL(src.URLBase, "page", page)
	doc := e.document(ctx, PatternTableTime, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		link := firstMatch(row, "td a", "a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, "time"); el != nil {
			rec.Date = parseDate(timeText(el), tableTimeLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// element_post_media: .element containers with dedicated title and date
// elements; the title element is preferred over the link text.
func (e *Engine) extractElementPostMedia(ctx context.Context, src Source, page int) []types.Record {
	reqURL := queryPageURL(src.URLBase, "page", page)
	doc := e.document(ctx, PatternElementPostMedia, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find(".element").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if title := firstMatch(row, ".post-media-list-title", ".element-title"); title != nil {
			rec.Title = strings.TrimSpace(title.Text())
		}
		if el := firstMatch(row, ".post-media-list-date", ".element-datetime"); el != nil {
			rec.Date = parseDate(el.Text(), elementPostLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// middot_sibling_date: documentquery article listings where the date is
// the bare text node following a span.middot separator rather than a
// contained child.
func (e *Engine) extractMiddotSiblingDate(ctx context.Context, src Source, page int) []types.Record {
	reqURL := documentQueryURL(hostOf(src.URLBase), src.DocTypeID, page)
	doc := e.document(ctx, PatternMiddotSiblingDate, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("article").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "h2 a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if marker := firstMatch(row, "span.middot"); marker != nil {
			rec.Date = parseDate(nextSiblingText(marker), middotDateLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// news_texthold: documentquery listings with .news-texthold containers
// and a long-form date in a time element.
func (e *Engine) extractNewsTexthold(ctx context.Context, src Source, page int) []types.Record {
	reqURL := documentQueryURL(hostOf(src.URLBase), src.DocTypeID, page)
	doc := e.document(ctx, PatternNewsTexthold, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find(".news-texthold").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "h2 a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, "time"); el != nil {
			rec.Date = parseDate(el.Text(), monthNameOnlyLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// et_pb_post: Divi-theme article.et_pb_post containers, paginated by a
// trailing /page/N/ path segment.
func (e *Engine) extractEtPbPost(ctx context.Context, src Source, page int) []types.Record {
	reqURL := trailingPageURL(src.URLBase, page)
	doc := e.document(ctx, PatternEtPbPost, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("article.et_pb_post").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "h2 a", "h3 a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, "p span.published", "span.published"); el != nil {
			rec.Date = parseDate(el.Text(), monthNameOnlyLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// media_body: div.media-body listings. A single configuration of this
// family serves hundreds of near-identical sites.
func (e *Engine) extractMediaBody(ctx context.Context, src Source, page int) []types.Record {
	reqURL := queryPageURL(src.URLBase, "page", page)
	doc := e.document(ctx, PatternMediaBody, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("div.media-body").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, ".row .col-auto"); el != nil {
			rec.Date = parseDate(el.Text(), mediaBodyLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// jet_smart_filters: the listing content is lazily injected, so the
// extractor never requests the listing page. It pages the configured
// data endpoint and parses the HTML fragment out of the JSON envelope.
func (e *Engine) extractJetSmartFilters(ctx context.Context, src Source, page int) []types.Record {
	if src.AjaxURL == "" {
		return nil
	}
	reqURL := queryPageURL(src.AjaxURL, "paged", page)
	doc := e.fragment(ctx, PatternJetSmartFilters, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find(".elementor-widget-wrap").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "h4 a", "h2 a", "h3 a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		if el := firstMatch(row, "span.elementor-post-info__item--type-date", "span.elementor-heading-title"); el != nil {
			rec.Date = parseDate(el.Text(), monthNameOnlyLayouts)
		}
		out = append(out, rec)
	})
	return out
}

// newscontent_sibling: #newscontent h2 titles whose date sits two raw
// sibling positions back in document order. PageNum_rs pagination.
func (e *Engine) extractNewscontentSibling(ctx context.Context, src Source, page int) []types.Record {
	reqURL := queryPageURL(src.URLBase, "PageNum_rs", page)
	doc := e.document(ctx, PatternNewscontentSibling, reqURL)
	if doc == nil {
		return nil
	}

	var out []types.Record
	doc.Find("#newscontent h2").Each(func(_ int, row *goquery.Selection) {
		link := firstMatch(row, "a")
		if link == nil {
			return
		}
		rec := linkRecord(reqURL, link)
		rec.Title = strings.TrimSpace(row.Text())
		rec.Date = parseDate(siblingBackText(row, 2), newscontentLayouts)
		out = append(out, rec)
	})
	return out
}
