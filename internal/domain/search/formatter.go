package search

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxRenderedResults caps how many items a report shows, whatever the declared count.
const MaxRenderedResults = 5

// ErrorMarker prefixes every user-facing error report.
const ErrorMarker = "❌"

const (
	defaultTitle   = "No title"
	defaultSnippet = "No description available"
)

// FormatResults renders a report header followed by at most
// MaxRenderedResults items. declaredCount is only echoed in the header.
func FormatResults(query string, results []SearchResultItem, declaredCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Search Results for: '%s'\n", query)
	fmt.Fprintf(&b, "Found %d results\n\n", declaredCount)

	for i, item := range results {
		if i >= MaxRenderedResults {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, valueOr(item.Title, defaultTitle))
		fmt.Fprintf(&b, "   📎 %s\n", valueOr(item.Link, ""))
		fmt.Fprintf(&b, "   %s\n\n", valueOr(item.Snippet, defaultSnippet))
	}
	return b.String()
}

// ParseSerializedResults decodes the string-typed prompt arguments.
func ParseSerializedResults(resultsJSON, numResults string) ([]SearchResultItem, int, error) {
	var results []SearchResultItem
	if err := json.Unmarshal([]byte(resultsJSON), &results); err != nil {
		return nil, 0, fmt.Errorf("results_json: %w", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(numResults))
	if err != nil {
		return nil, 0, fmt.Errorf("num_results: %w", err)
	}
	return results, count, nil
}

// FormatSerializedResults is FormatResults for callers that can only pass
// strings. Undecodable input yields an error report instead of an error.
func FormatSerializedResults(query, resultsJSON, numResults string) string {
	results, count, err := ParseSerializedResults(resultsJSON, numResults)
	if err != nil {
		return fmt.Sprintf("%s Error parsing results: %v", ErrorMarker, err)
	}
	return FormatResults(query, results, count)
}

// RenderedCount is the number of items FormatResults shows for results.
func RenderedCount(results []SearchResultItem) int {
	return min(len(results), MaxRenderedResults)
}

// IsErrorReport reports whether text is an error report rather than results.
func IsErrorReport(text string) bool {
	return strings.HasPrefix(text, ErrorMarker)
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
