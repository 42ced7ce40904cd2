// internal/scraper/pagination.go
package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// The sites behind a single pattern share a markup family but not a
// pagination convention, so each family owns its URL-construction rule.
// Every rule replaces an existing page marker in place rather than
// appending a duplicate.

var (
	pagenumSegmentRe = regexp.MustCompile(`/pagenum/\d+/`)
	pageSegmentRe    = regexp.MustCompile(`/page/\d+/`)
)

// queryPageURL sets key=page on the base URL's query string, replacing
// an existing value. An unparseable base is returned unchanged; the
// fetch will surface the failure as zero results.
func queryPageURL(base, key string, page int) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set(key, strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// jetListingPageURL builds the request URL for the jet_listing family.
// The Jet Engine sites disagree about where the page number lives: a
// pagenum query key alongside a jsf filter marker, a /pagenum/N/ path
// segment, or a bare listing URL that needs both the filter marker and
// the page number appended.
func jetListingPageURL(base string, page int) string {
	switch {
	case strings.Contains(base, "?jsf=") || strings.Contains(base, "&jsf="):
		return queryPageURL(base, "pagenum", page)
	case pagenumSegmentRe.MatchString(base):
		return pagenumSegmentRe.ReplaceAllString(base, fmt.Sprintf("/pagenum/%d/", page))
	case strings.Contains(base, "/pagenum/"), strings.Contains(base, "/jsf/"):
		return strings.TrimRight(base, "/") + fmt.Sprintf("/pagenum/%d/", page)
	default:
		u, err := url.Parse(base)
		if err != nil {
			return base
		}
		q := u.Query()
		q.Set("jsf", "jet-engine:press-list")
		q.Set("pagenum", strconv.Itoa(page))
		u.RawQuery = q.Encode()
		return u.String()
	}
}

// trailingPageURL builds the request URL for families paginated by a
// trailing /page/N/ path segment, including the Divi sites that keep an
// et_blog query marker after the segment.
func trailingPageURL(base string, page int) string {
	if pageSegmentRe.MatchString(base) {
		return pageSegmentRe.ReplaceAllString(base, fmt.Sprintf("/page/%d/", page))
	}
	if idx := strings.Index(base, "?et_blog"); idx >= 0 {
		prefix := strings.TrimRight(base[:idx], "/")
		return prefix + fmt.Sprintf("/page/%d/", page) + base[idx:]
	}
	return strings.TrimRight(base, "/") + fmt.Sprintf("/page/%d/", page)
}

// documentQueryURL builds the internal documentquery endpoint used by
// the House site families. docType defaults to "27", the shared
// document-type identifier for press releases.
func documentQueryURL(host, docType string, page int) string {
	if docType == "" {
		docType = "27"
	}
	return fmt.Sprintf("https://%s/news/documentquery.aspx?DocumentTypeID=%s&Page=%d", host, docType, page)
}

// hostOf extracts the registered network location from a URL. A bare
// hostname passes through unchanged, which lets documentquery sources
// configure either form.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(rawURL, "/")
	}
	return u.Host
}
