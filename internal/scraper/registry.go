// internal/scraper/registry.go
package scraper

import (
	"fmt"
	"sort"
)

// Registry is the immutable source table: one entry per officeholder or
// body, mapping its name to a pattern and the parameters that pattern
// needs. It is constructed once at startup and only read afterwards.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds a registry from a source list, rejecting empty or
// duplicate names and unknown patterns.
func NewRegistry(sources []Source) (*Registry, error) {
	m := make(map[string]Source, len(sources))
	for _, src := range sources {
		if src.Name == "" {
			return nil, fmt.Errorf("source with empty name (url_base %q)", src.URLBase)
		}
		if !src.Pattern.Valid() {
			return nil, fmt.Errorf("source %q: %w %q", src.Name, ErrUnknownPattern, src.Pattern)
		}
		if src.Pattern == PatternJetSmartFilters {
			if src.AjaxURL == "" {
				return nil, fmt.Errorf("source %q: jet_smart_filters requires ajax_url", src.Name)
			}
		} else if src.URLBase == "" {
			return nil, fmt.Errorf("source %q: url_base is required", src.Name)
		}
		if _, dup := m[src.Name]; dup {
			return nil, fmt.Errorf("duplicate source name %q", src.Name)
		}
		m[src.Name] = src
	}
	return &Registry{sources: m}, nil
}

// Lookup returns the source registered under name.
func (r *Registry) Lookup(name string) (Source, bool) {
	src, ok := r.sources[name]
	return src, ok
}

// Names returns all registered source names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.sources)
}

// DefaultRegistry builds the registry over the compiled-in source
// table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultSources())
	if err != nil {
		// The default table is static data; a bad entry is a programming
		// error caught by the registry tests.
		panic(err)
	}
	return r
}

// DefaultSources is the compiled-in source table. Callers that manage
// their own configuration load an equivalent table from YAML instead.
func DefaultSources() []Source {
	return []Source{
		// table_recordlist_date
		{Name: "moran", Pattern: PatternTableRecordListDate, URLBase: "https://www.moran.senate.gov/public/index.cfm/news-releases"},
		{Name: "boozman", Pattern: PatternTableRecordListDate, URLBase: "https://www.boozman.senate.gov/public/index.cfm/press-releases"},
		{Name: "thune", Pattern: PatternTableRecordListDate, URLBase: "https://www.thune.senate.gov/public/index.cfm/press-releases"},
		{Name: "barrasso", Pattern: PatternTableRecordListDate, URLBase: "https://www.barrasso.senate.gov/public/index.cfm/news-releases"},
		{Name: "graham", Pattern: PatternTableRecordListDate, URLBase: "https://www.lgraham.senate.gov/public/index.cfm/press-releases"},

		// jet_listing_elementor
		{Name: "timscott", Pattern: PatternJetListingElementor, URLBase: "https://www.scott.senate.gov/media-center/press-releases/jsf/jet-engine:press-list"},
		{Name: "cassidy", Pattern: PatternJetListingElementor, URLBase: "https://www.cassidy.senate.gov/newsroom/press-releases/?jsf=jet-engine:press-list"},
		{Name: "fetterman", Pattern: PatternJetListingElementor, URLBase: "https://www.fetterman.senate.gov/press-releases/?jsf=jet-engine:press-list"},
		{Name: "tester", Pattern: PatternJetListingElementor, URLBase: "https://www.tester.senate.gov/newsroom/press-releases"},
		{Name: "britt", Pattern: PatternJetListingElementor, URLBase: "https://www.britt.senate.gov/media/press-releases/?jsf=jet-engine:press-list"},
		{Name: "toddyoung", Pattern: PatternJetListingElementor, URLBase: "https://www.young.senate.gov/newsroom/press-releases/?jsf=jet-engine:press-list"},
		{Name: "markkelly", Pattern: PatternJetListingElementor, URLBase: "https://www.kelly.senate.gov/newsroom/press-releases/?jsf=jet-engine:press-list"},
		{Name: "lujan", Pattern: PatternJetListingElementor, URLBase: "https://www.lujan.senate.gov/newsroom/press-releases/?jsf=jet-engine:press-list"},
		{Name: "mullin", Pattern: PatternJetListingElementor, URLBase: "https://www.mullin.senate.gov/newsroom/press-releases/?jsf=jet-engine:press-list"},
		{Name: "ossoff", Pattern: PatternJetListingElementor, URLBase: "https://www.ossoff.senate.gov/press-releases/?jsf=jet-engine:press-list"},

		// article_block
		{Name: "chrismurphy", Pattern: PatternArticleBlock, URLBase: "https://www.murphy.senate.gov/newsroom/press-releases"},
		{Name: "markey", Pattern: PatternArticleBlock, URLBase: "https://www.markey.senate.gov/news/press-releases"},
		{Name: "cotton", Pattern: PatternArticleBlock, URLBase: "https://www.cotton.senate.gov/news/press-releases"},
		{Name: "rounds", Pattern: PatternArticleBlock, URLBase: "https://www.rounds.senate.gov/newsroom/press-releases"},
		{Name: "kaine", Pattern: PatternArticleBlock, URLBase: "https://www.kaine.senate.gov/news"},
		{Name: "durbin", Pattern: PatternArticleBlock, URLBase: "https://www.durbin.senate.gov/newsroom/press-releases"},
		{Name: "crapo", Pattern: PatternArticleBlock, URLBase: "https://www.crapo.senate.gov/media/newsreleases"},
		{Name: "hirono", Pattern: PatternArticleBlock, URLBase: "https://www.hirono.senate.gov/news/press-releases"},
		{Name: "garypeters", Pattern: PatternArticleBlock, URLBase: "https://www.peters.senate.gov/newsroom/press-releases"},
		{Name: "jackreed", Pattern: PatternArticleBlock, URLBase: "https://www.reed.senate.gov/news/releases"},
		{Name: "heinrich", Pattern: PatternArticleBlock, URLBase: "https://www.heinrich.senate.gov/newsroom/press-releases"},
		{Name: "cantwell", Pattern: PatternArticleBlock, URLBase: "https://www.cantwell.senate.gov/news/press-releases"},
		{Name: "capito", Pattern: PatternArticleBlock, URLBase: "https://www.capito.senate.gov/news/press-releases"},
		{Name: "cruz", Pattern: PatternArticleBlock, URLBase: "https://www.cruz.senate.gov/newsroom/press-releases"},
		{Name: "daines", Pattern: PatternArticleBlock, URLBase: "https://www.daines.senate.gov/news/press-releases"},
		{Name: "duckworth", Pattern: PatternArticleBlock, URLBase: "https://www.duckworth.senate.gov/news/press-releases"},
		{Name: "hassan", Pattern: PatternArticleBlock, URLBase: "https://www.hassan.senate.gov/news/press-releases"},
		{Name: "aguilar", Pattern: PatternArticleBlock, URLBase: "https://aguilar.house.gov/media/press-releases"},
		{Name: "bergman", Pattern: PatternArticleBlock, URLBase: "https://bergman.house.gov/media/press-releases"},

		// table_time
		{Name: "barr", Pattern: PatternTableTime, URLBase: "https://barr.house.gov/media-center/press-releases"},

		// element_post_media
		{Name: "tillis", Pattern: PatternElementPostMedia, URLBase: "https://www.tillis.senate.gov/press-releases"},
		{Name: "wicker", Pattern: PatternElementPostMedia, URLBase: "https://www.wicker.senate.gov/press-releases"},
		{Name: "blackburn", Pattern: PatternElementPostMedia, URLBase: "https://www.blackburn.senate.gov/news/cc8c80c1-d564-4bbb-93a4-f1d772346ae0"},

		// middot_sibling_date
		{Name: "brownley", Pattern: PatternMiddotSiblingDate, URLBase: "https://brownley.house.gov", DocTypeID: "2519"},
		{Name: "emmer", Pattern: PatternMiddotSiblingDate, URLBase: "https://emmer.house.gov", DocTypeID: "2516"},
		{Name: "foxx", Pattern: PatternMiddotSiblingDate, URLBase: "https://foxx.house.gov", DocTypeID: "1525"},
		{Name: "gosar", Pattern: PatternMiddotSiblingDate, URLBase: "https://gosar.house.gov"},
		{Name: "griffith", Pattern: PatternMiddotSiblingDate, URLBase: "https://griffith.house.gov"},
		{Name: "houlahan", Pattern: PatternMiddotSiblingDate, URLBase: "https://houlahan.house.gov"},
		{Name: "huizenga", Pattern: PatternMiddotSiblingDate, URLBase: "https://huizenga.house.gov"},
		{Name: "jasonsmith", Pattern: PatternMiddotSiblingDate, URLBase: "https://jasonsmith.house.gov"},
		{Name: "mast", Pattern: PatternMiddotSiblingDate, URLBase: "https://mast.house.gov"},
		{Name: "mcgovern", Pattern: PatternMiddotSiblingDate, URLBase: "https://mcgovern.house.gov"},
		{Name: "schweikert", Pattern: PatternMiddotSiblingDate, URLBase: "https://schweikert.house.gov"},
		{Name: "titus", Pattern: PatternMiddotSiblingDate, URLBase: "https://titus.house.gov"},

		// news_texthold
		{Name: "larsen", Pattern: PatternNewsTexthold, URLBase: "https://larsen.house.gov"},
		{Name: "connolly", Pattern: PatternNewsTexthold, URLBase: "https://connolly.house.gov", DocTypeID: "1952"},
		{Name: "tonko", Pattern: PatternNewsTexthold, URLBase: "https://tonko.house.gov"},

		// et_pb_post
		{Name: "hagerty", Pattern: PatternEtPbPost, URLBase: "https://www.hagerty.senate.gov/press-releases/?et_blog"},
		{Name: "budd", Pattern: PatternEtPbPost, URLBase: "https://www.budd.senate.gov/category/news/press-releases/?et_blog"},
		{Name: "lummis", Pattern: PatternEtPbPost, URLBase: "https://www.lummis.senate.gov/press-releases/?et_blog"},
		{Name: "rubio", Pattern: PatternEtPbPost, URLBase: "https://www.rubio.senate.gov/news/?et_blog"},

		// media_body (one extractor, hundreds of sites; representative set)
		{Name: "issa", Pattern: PatternMediaBody, URLBase: "https://issa.house.gov/media/press-releases"},
		{Name: "tenney", Pattern: PatternMediaBody, URLBase: "https://tenney.house.gov/media/press-releases"},
		{Name: "amodei", Pattern: PatternMediaBody, URLBase: "https://amodei.house.gov/news-releases"},
		{Name: "palmer", Pattern: PatternMediaBody, URLBase: "https://palmer.house.gov/media-center/press-releases"},
		{Name: "newhouse", Pattern: PatternMediaBody, URLBase: "https://newhouse.house.gov/media-center/press-releases"},
		{Name: "doggett", Pattern: PatternMediaBody, URLBase: "https://doggett.house.gov/media/press-releases"},
		{Name: "ocasio-cortez", Pattern: PatternMediaBody, URLBase: "https://ocasio-cortez.house.gov/media/press-releases"},
		{Name: "hudson", Pattern: PatternMediaBody, URLBase: "https://hudson.house.gov/media/press-releases"},
		{Name: "espaillat", Pattern: PatternMediaBody, URLBase: "https://espaillat.house.gov/media/press-releases"},
		{Name: "biggs", Pattern: PatternMediaBody, URLBase: "https://biggs.house.gov/media/press-releases"},
		{Name: "larson", Pattern: PatternMediaBody, URLBase: "https://larson.house.gov/media-center/press-releases"},
		{Name: "walberg", Pattern: PatternMediaBody, URLBase: "https://walberg.house.gov/media/press-releases"},
		{Name: "burchett", Pattern: PatternMediaBody, URLBase: "https://burchett.house.gov/media/press-releases"},
		{Name: "golden", Pattern: PatternMediaBody, URLBase: "https://golden.house.gov/media/press-releases"},
		{Name: "harder", Pattern: PatternMediaBody, URLBase: "https://harder.house.gov/media/press-releases"},
		{Name: "roy", Pattern: PatternMediaBody, URLBase: "https://roy.house.gov/media/press-releases"},
		{Name: "sherrill", Pattern: PatternMediaBody, URLBase: "https://sherrill.house.gov/media/press-releases"},
		{Name: "scalise", Pattern: PatternMediaBody, URLBase: "https://scalise.house.gov/media/press-releases"},
		{Name: "neguse", Pattern: PatternMediaBody, URLBase: "https://neguse.house.gov/media/press-releases"},
		{Name: "khanna", Pattern: PatternMediaBody, URLBase: "https://khanna.house.gov/media/press-releases"},
		{Name: "pelosi", Pattern: PatternMediaBody, URLBase: "https://pelosi.house.gov/news/press-releases"},
		{Name: "crow", Pattern: PatternMediaBody, URLBase: "https://crow.house.gov/media/press-releases"},
		{Name: "pappas", Pattern: PatternMediaBody, URLBase: "https://pappas.house.gov/media/press-releases"},

		// jet_smart_filters (out-of-band data endpoint)
		{
			Name:    "marshall",
			Pattern: PatternJetSmartFilters,
			URLBase: "https://www.marshall.senate.gov/newsroom/press-releases",
			AjaxURL: "https://www.marshall.senate.gov/wp-admin/admin-ajax.php?action=jet_smart_filters&provider=jet-engine%2Fpress-list&settings%5Blisitng_id%5D=67853&settings%5Bcustom_post_types%5D%5B%5D=press_releases",
		},
		{
			Name:    "cornyn",
			Pattern: PatternJetSmartFilters,
			URLBase: "https://www.cornyn.senate.gov/news/",
			AjaxURL: "https://www.cornyn.senate.gov/wp-admin/admin-ajax.php?action=jet_smart_filters&provider=jet-engine%2Fdefault&settings%5Blisitng_id%5D=16387&settings%5Bcustom_post_types%5D%5B%5D=news",
		},

		// newscontent_sibling
		{Name: "huffman", Pattern: PatternNewscontentSibling, URLBase: "https://huffman.house.gov/media-center/press-releases"},
		{Name: "castro", Pattern: PatternNewscontentSibling, URLBase: "https://castro.house.gov/media-center/press-releases"},
		{Name: "mikelevin", Pattern: PatternNewscontentSibling, URLBase: "https://mikelevin.house.gov/media/press-releases"},
		{Name: "senate_approps", Pattern: PatternNewscontentSibling, URLBase: "https://www.appropriations.senate.gov/news/majority"},
	}
}
