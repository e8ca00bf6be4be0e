package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestFormatResults_EmptyList(t *testing.T) {
	out := FormatResults("golang", nil, 42)

	assert.Equal(t, "🔍 Search Results for: 'golang'\nFound 42 results\n\n", out)
	assert.NotContains(t, out, "1.")
}

func TestFormatResults_SingleItem(t *testing.T) {
	out := FormatResults("cats", []SearchResultItem{
		{Title: ptr("T"), Link: ptr("L"), Snippet: ptr("S")},
	}, 1)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "🔍 Search Results for: 'cats'", lines[0])
	assert.Equal(t, "Found 1 results", lines[1])
	assert.Equal(t, "1. T", lines[3])
	assert.Contains(t, lines[4], "L")
	assert.Contains(t, lines[4], "📎")
	assert.Equal(t, "S", strings.TrimSpace(lines[5]))
}

func TestFormatResults_MissingFieldsUseDefaults(t *testing.T) {
	out := FormatResults("q", []SearchResultItem{{}}, 1)

	assert.Contains(t, out, "1. No title\n")
	assert.Contains(t, out, "   📎 \n")
	assert.Contains(t, out, "   No description available\n")
}

func TestFormatResults_EmptyStringsAreKept(t *testing.T) {
	out := FormatResults("q", []SearchResultItem{{Title: ptr(""), Snippet: ptr("")}}, 1)

	assert.Contains(t, out, "1. \n")
	assert.NotContains(t, out, "No title")
	assert.NotContains(t, out, "No description available")
}

func TestFormatResults_TruncatesToFive(t *testing.T) {
	items := make([]SearchResultItem, 8)
	for i := range items {
		items[i] = SearchResultItem{Title: ptr(fmt.Sprintf("title-%d", i+1))}
	}

	out := FormatResults("q", items, 8)

	assert.Contains(t, out, "Found 8 results")
	for i := 1; i <= 5; i++ {
		assert.Contains(t, out, fmt.Sprintf("%d. title-%d\n", i, i))
	}
	assert.NotContains(t, out, "title-6")
	assert.Equal(t, 5, strings.Count(out, "📎"))
}

func TestFormatResults_DeclaredCountOnlyEchoed(t *testing.T) {
	out := FormatResults("q", []SearchResultItem{{Title: ptr("a")}, {Title: ptr("b")}}, 0)

	assert.Contains(t, out, "Found 0 results")
	assert.Contains(t, out, "2. b")
}

func TestFormatResults_Deterministic(t *testing.T) {
	items := []SearchResultItem{{Title: ptr("x"), Link: ptr("y"), Snippet: ptr("z")}}
	assert.Equal(t, FormatResults("q", items, 1), FormatResults("q", items, 1))
}

func TestFormatSerializedResults(t *testing.T) {
	tests := []struct {
		name        string
		resultsJSON string
		numResults  string
		contains    []string
	}{
		{
			name:        "valid input",
			resultsJSON: `[{"title":"T","link":"L","snippet":"S","position":1}]`,
			numResults:  "1",
			contains:    []string{"1. T", "📎 L", "   S"},
		},
		{
			name:        "whitespace around count",
			resultsJSON: `[]`,
			numResults:  " 3 ",
			contains:    []string{"Found 3 results"},
		},
		{
			name:        "malformed json",
			resultsJSON: `[{"title":`,
			numResults:  "1",
			contains:    []string{"❌ Error parsing results", "results_json"},
		},
		{
			name:        "json object instead of list",
			resultsJSON: `{"title":"T"}`,
			numResults:  "1",
			contains:    []string{"❌ Error parsing results"},
		},
		{
			name:        "non integer count",
			resultsJSON: `[]`,
			numResults:  "five",
			contains:    []string{"❌ Error parsing results", "num_results"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FormatSerializedResults("query", tt.resultsJSON, tt.numResults)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderedCount(t *testing.T) {
	assert.Equal(t, 0, RenderedCount(nil))
	assert.Equal(t, 3, RenderedCount(make([]SearchResultItem, 3)))
	assert.Equal(t, 5, RenderedCount(make([]SearchResultItem, 9)))
}
