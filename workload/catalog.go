// Package workload defines the benchmark catalog for comparing JSON and
// BSON representations in DuckDB: the named benchmark queries, the pairs
// of queries that are semantically equivalent across the two encodings,
// and the deterministic setup SQL that provisions both tables.
package workload

import "sort"

// Spec is a single named benchmark query. The name prefix orders the
// catalog and groups paired workloads (x0 = JSON, x1 = BSON).
type Spec struct {
	Name string
	SQL  string
}

// ComparisonPair declares two workloads as the same logical operation over
// different encodings. A ratio is only reported when both sides produced
// valid statistics.
type ComparisonPair struct {
	Baseline  string
	Candidate string
	Label     string
}

// The catalog is a map literal so that a duplicate workload name is a
// compile error rather than a runtime surprise.
var catalog = map[string]string{
	"10_convert_json_to_bson": `
SELECT COUNT(*) FROM (
    SELECT json_to_bson(raw_json) AS bson_doc FROM json_data
) sub;`,

	"20_extract_string_json": `
SELECT COUNT(*) FROM (
    SELECT json_extract_string(data_json, '$.user.name') AS name FROM json_data
) sub;`,

	"21_extract_string_bson": `
SELECT COUNT(*) FROM (
    SELECT bson_extract_string(data_bson, '$.user.name') AS name FROM bson_data
) sub;`,

	"30_exists_json": `
SELECT COUNT(*) FROM (
    SELECT json_extract(data_json, '$.flag') IS NOT NULL AS has_flag FROM json_data
) sub;`,

	"31_exists_bson": `
SELECT COUNT(*) FROM (
    SELECT bson_exists(data_bson, '$.flag') AS has_flag FROM bson_data
) sub;`,

	"40_groupby_country_json": `
SELECT json_extract_string(data_json, '$.country') AS country, COUNT(*) AS cnt
FROM json_data
GROUP BY country
ORDER BY country;`,

	"41_groupby_country_bson": `
SELECT bson_extract_string(data_bson, '$.country') AS country, COUNT(*) AS cnt
FROM bson_data
GROUP BY country
ORDER BY country;`,

	"50_size_json": `
SELECT SUM(octet_length(raw_json::BLOB)) AS total_bytes FROM json_data;`,

	"51_size_bson": `
SELECT SUM(octet_length(data_bson::BLOB)) AS total_bytes FROM bson_data;`,
}

var pairs = []ComparisonPair{
	{"20_extract_string_json", "21_extract_string_bson", "Extract String"},
	{"30_exists_json", "31_exists_bson", "Exists Check"},
	{"40_groupby_country_json", "41_groupby_country_bson", "GroupBy Country"},
	{"50_size_json", "51_size_bson", "Storage Size"},
}

// Catalog returns all benchmark workloads sorted by name.
func Catalog() []Spec {
	specs := make([]Spec, 0, len(catalog))
	for name, sql := range catalog {
		specs = append(specs, Spec{Name: name, SQL: sql})
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})

	return specs
}

// ComparisonPairs returns the declared comparison pairs in declaration
// order. Reports must preserve this order.
func ComparisonPairs() []ComparisonPair {
	out := make([]ComparisonPair, len(pairs))
	copy(out, pairs)

	return out
}
