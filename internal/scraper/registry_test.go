// internal/scraper/registry_test.go
package scraper

import (
	"sort"
	"testing"
)

func TestNewRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr bool
	}{
		{
			"valid",
			[]Source{{Name: "a", Pattern: PatternMediaBody, URLBase: "https://a.example.gov/news"}},
			false,
		},
		{
			"empty name",
			[]Source{{Pattern: PatternMediaBody, URLBase: "https://a.example.gov/news"}},
			true,
		},
		{
			"unknown pattern",
			[]Source{{Name: "a", Pattern: Pattern("nope"), URLBase: "https://a.example.gov/news"}},
			true,
		},
		{
			"missing url base",
			[]Source{{Name: "a", Pattern: PatternMediaBody}},
			true,
		},
		{
			"jet smart filters needs ajax url",
			[]Source{{Name: "a", Pattern: PatternJetSmartFilters, URLBase: "https://a.example.gov/news"}},
			true,
		},
		{
			"jet smart filters with ajax url",
			[]Source{{Name: "a", Pattern: PatternJetSmartFilters, AjaxURL: "https://a.example.gov/wp-admin/admin-ajax.php"}},
			false,
		},
		{
			"duplicate names",
			[]Source{
				{Name: "a", Pattern: PatternMediaBody, URLBase: "https://a.example.gov/news"},
				{Name: "a", Pattern: PatternTableTime, URLBase: "https://b.example.gov/news"},
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.sources)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryLookupAndNames(t *testing.T) {
	registry, err := NewRegistry([]Source{
		{Name: "beta", Pattern: PatternMediaBody, URLBase: "https://b.example.gov/news"},
		{Name: "alpha", Pattern: PatternTableTime, URLBase: "https://a.example.gov/news"},
	})
	if err != nil {
		t.Fatal(err)
	}

	src, ok := registry.Lookup("alpha")
	if !ok || src.Pattern != PatternTableTime {
		t.Errorf("Lookup(alpha) = %+v, %v", src, ok)
	}
	if _, ok := registry.Lookup("gamma"); ok {
		t.Error("Lookup(gamma) should miss")
	}

	names := registry.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(names) != 2 || registry.Len() != 2 {
		t.Errorf("Names() = %v, Len() = %d", names, registry.Len())
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()
	if registry.Len() == 0 {
		t.Fatal("default registry is empty")
	}

	// Every default source must carry a valid pattern the engine can
	// dispatch.
	for _, name := range registry.Names() {
		src, _ := registry.Lookup(name)
		if _, ok := extractors[src.Pattern]; !ok {
			t.Errorf("source %s has undispatchable pattern %q", name, src.Pattern)
		}
	}

	// Spot-check one source per fetch style.
	if src, ok := registry.Lookup("moran"); !ok || src.Pattern != PatternTableRecordListDate {
		t.Errorf("moran = %+v, %v", src, ok)
	}
	if src, ok := registry.Lookup("marshall"); !ok || src.AjaxURL == "" {
		t.Errorf("marshall should have an ajax endpoint, got %+v", src)
	}
}
