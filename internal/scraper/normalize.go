// internal/scraper/normalize.go
package scraper

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/civicdata/statement-go/pkg/types"
)

// genericPaths are resolved link paths that point at a listing or
// navigation page rather than an individual release. They show up when
// a container's first link is a "more news" link; they must never
// appear in final output.
var genericPaths = map[string]struct{}{
	"/news":  {},
	"/news/": {},
}

// resolveURL returns link unchanged when it already carries a scheme,
// otherwise resolves it against the request URL that produced it.
// Root-relative links resolve to origin + path; bare relative links
// resolve against the request URL's directory, which is what the
// documentquery sites rely on.
func resolveURL(base, link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	b, err := url.Parse(base)
	if err != nil {
		return link
	}
	ref, err := url.Parse(link)
	if err != nil {
		return link
	}
	return b.ResolveReference(ref).String()
}

// normalizeRecords applies the shared result shaping to every
// extractor's raw output: URL resolution, generic-URL filtering, title
// cleanup, and de-duplication by resolved URL within this one
// invocation. Records without a URL never reach this point; extractors
// skip containers lacking a link.
func normalizeRecords(records []types.Record) []types.Record {
	out := make([]types.Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		if r.URL == "" {
			continue
		}
		r.URL = resolveURL(r.Source, r.URL)
		if isGenericURL(r.URL) {
			continue
		}
		if _, dup := seen[r.URL]; dup {
			continue
		}
		seen[r.URL] = struct{}{}
		r.Title = cleanTitle(r.Title)
		out = append(out, r)
	}
	return out
}

// isGenericURL reports whether the resolved URL's path is exactly one
// of the known generic listing paths.
func isGenericURL(resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	_, generic := genericPaths[u.Path]
	return generic
}

// cleanTitle collapses internal whitespace and NFC-normalizes the
// text. Titles may be empty but are never absent.
func cleanTitle(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
