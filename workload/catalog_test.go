package workload

import (
	"sort"
	"strings"
	"testing"
)

func TestCatalogSorted(t *testing.T) {
	specs := Catalog()

	if len(specs) == 0 {
		t.Fatal("catalog is empty")
	}

	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("catalog not sorted by name: %v", names)
	}
}

func TestCatalogContents(t *testing.T) {
	specs := Catalog()

	byName := make(map[string]string, len(specs))
	for _, s := range specs {
		if strings.TrimSpace(s.SQL) == "" {
			t.Errorf("workload %s has empty SQL", s.Name)
		}

		byName[s.Name] = s.SQL
	}

	tests := []struct {
		name     string
		contains string
	}{
		{"10_convert_json_to_bson", "json_to_bson(raw_json)"},
		{"20_extract_string_json", "json_extract_string"},
		{"21_extract_string_bson", "bson_extract_string"},
		{"30_exists_json", "IS NOT NULL"},
		{"31_exists_bson", "bson_exists"},
		{"40_groupby_country_json", "GROUP BY country"},
		{"41_groupby_country_bson", "GROUP BY country"},
		{"50_size_json", "octet_length"},
		{"51_size_bson", "octet_length"},
	}

	if len(specs) != len(tests) {
		t.Errorf("catalog has %d workloads, want %d", len(specs), len(tests))
	}

	for _, tt := range tests {
		sql, ok := byName[tt.name]
		if !ok {
			t.Errorf("workload %s missing from catalog", tt.name)

			continue
		}

		if !strings.Contains(sql, tt.contains) {
			t.Errorf("workload %s SQL does not contain %q", tt.name, tt.contains)
		}
	}
}

func TestComparisonPairsDeclarationOrder(t *testing.T) {
	got := ComparisonPairs()

	wantLabels := []string{
		"Extract String", "Exists Check", "GroupBy Country", "Storage Size",
	}

	if len(got) != len(wantLabels) {
		t.Fatalf("got %d pairs, want %d", len(got), len(wantLabels))
	}

	for i, want := range wantLabels {
		if got[i].Label != want {
			t.Errorf("pair %d label = %q, want %q", i, got[i].Label, want)
		}
	}
}

func TestComparisonPairsReferenceCatalog(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range Catalog() {
		names[s.Name] = true
	}

	for _, p := range ComparisonPairs() {
		if !names[p.Baseline] {
			t.Errorf("pair %q baseline %s not in catalog", p.Label, p.Baseline)
		}
		if !names[p.Candidate] {
			t.Errorf("pair %q candidate %s not in catalog", p.Label, p.Candidate)
		}
		if p.Baseline == p.Candidate {
			t.Errorf("pair %q compares %s with itself", p.Label, p.Baseline)
		}
	}
}
