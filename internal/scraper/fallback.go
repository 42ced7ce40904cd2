// internal/scraper/fallback.go
package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// firstMatch tries each selector in order against root and returns the
// first element the first matching selector finds. There is no merging
// of partial matches: once a selector matches, the rest are never
// tried.
func firstMatch(root *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, selector := range selectors {
		if m := root.Find(selector); m.Length() > 0 {
			return m.First()
		}
	}
	return nil
}

// nextSiblingText returns the text of the raw node following sel in
// document order. Whitespace-only text nodes are skipped; an element
// sibling ends the search. Used by the family whose date text sits
// outside any element, directly after a span.middot marker.
func nextSiblingText(sel *goquery.Selection) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}
	for n := sel.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.TextNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				return text
			}
		case html.ElementNode:
			return ""
		}
	}
	return ""
}

// siblingBackText walks the given number of raw sibling positions
// backwards from sel and returns that node's text. The count includes
// whitespace text nodes, matching how the newscontent sites interleave
// a date element, a newline, and the h2 title. Assumption carried from
// the source sites: a dedicated date element and a generic date
// paragraph never co-occur in one container, so whichever lookup runs
// first wins.
func siblingBackText(sel *goquery.Selection, positions int) string {
	if sel == nil || len(sel.Nodes) == 0 {
		return ""
	}
	n := sel.Nodes[0]
	for i := 0; i < positions && n != nil; i++ {
		n = n.PrevSibling
	}
	if n == nil {
		return ""
	}
	return strings.TrimSpace(nodeText(n))
}

// nodeText collects the text content of a raw node and its subtree.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
