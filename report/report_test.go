package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/weiihann/bsonbench/harness"
	"github.com/weiihann/bsonbench/stats"
	"github.com/weiihann/bsonbench/workload"
)

func ok(median float64) harness.Outcome {
	return harness.Outcome{
		Stats: &stats.Summary{
			Min: median, Max: median, Mean: median, Median: median,
		},
	}
}

func TestGenerateSortedWithFailure(t *testing.T) {
	results := harness.ResultSet{
		"20_extract_string_json": ok(0.40),
		"21_extract_string_bson": ok(0.20),
		"10_convert":             {Err: "timeout: batch exceeded 10m0s"},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results, nil, 100000); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "100,000 rows") {
		t.Error("expected formatted row count in banner")
	}

	failedLine := ""
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "10_convert") {
			failedLine = line
		}
	}

	if failedLine == "" {
		t.Fatal("failed workload missing from report")
	}
	if !strings.Contains(failedLine, "FAILED") {
		t.Errorf("failed workload line %q lacks FAILED marker", failedLine)
	}
	if strings.Contains(failedLine, "0.") {
		t.Errorf("failed workload line %q carries fabricated numbers", failedLine)
	}

	// Sorted-name ordering.
	iConvert := strings.Index(output, "10_convert")
	iJSON := strings.Index(output, "20_extract_string_json")
	iBSON := strings.Index(output, "21_extract_string_bson")

	if !(iConvert < iJSON && iJSON < iBSON) {
		t.Error("workloads not printed in sorted-name order")
	}
}

func TestGenerateRatioFaster(t *testing.T) {
	results := harness.ResultSet{
		"20_extract_string_json": ok(0.40),
		"21_extract_string_bson": ok(0.20),
	}

	pairs := []workload.ComparisonPair{
		{
			Baseline:  "20_extract_string_json",
			Candidate: "21_extract_string_bson",
			Label:     "Extract String",
		},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results, pairs, 100); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "0.50x") {
		t.Error("expected 0.50x ratio")
	}
	if !strings.Contains(output, "50.0% faster") {
		t.Error("expected 'BSON is 50.0% faster'")
	}
}

func TestGenerateRatioSlower(t *testing.T) {
	results := harness.ResultSet{
		"30_exists_json": ok(0.10),
		"31_exists_bson": ok(0.20),
	}

	pairs := []workload.ComparisonPair{
		{Baseline: "30_exists_json", Candidate: "31_exists_bson", Label: "Exists Check"},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results, pairs, 100); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "2.00x") {
		t.Error("expected 2.00x ratio")
	}
	if !strings.Contains(output, "slower") {
		t.Error("expected slower label")
	}
}

func TestGenerateSkipsIncompletePairs(t *testing.T) {
	results := harness.ResultSet{
		"20_extract_string_json": ok(0.40),
		"21_extract_string_bson": {Err: "non-zero exit: boom"},
		"40_groupby_json":        ok(0.30),
	}

	pairs := []workload.ComparisonPair{
		{
			Baseline:  "20_extract_string_json",
			Candidate: "21_extract_string_bson",
			Label:     "Extract String",
		},
		{
			Baseline:  "40_groupby_json",
			Candidate: "41_groupby_bson", // never ran
			Label:     "GroupBy Country",
		},
	}

	var buf bytes.Buffer
	if err := Generate(&buf, results, pairs, 100); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "Extract String") {
		t.Error("pair with failed candidate must be skipped")
	}
	if strings.Contains(output, "GroupBy Country") {
		t.Error("pair with missing candidate must be skipped")
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, nil, nil, 0); err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	results := harness.ResultSet{
		"20_extract_string_json": ok(0.40),
		"10_convert":             {Err: "timeout"},
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, results); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed map[string]harness.Outcome
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(parsed))
	}
	if parsed["10_convert"].Err != "timeout" {
		t.Errorf("failure cause = %q, want timeout", parsed["10_convert"].Err)
	}
	if parsed["20_extract_string_json"].Stats.Median != 0.40 {
		t.Errorf("median = %v, want 0.40",
			parsed["20_extract_string_json"].Stats.Median)
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{100000, "100,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupDigits(tt.input); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
