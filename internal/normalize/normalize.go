// Package normalize turns raw model text into a typed pipeline result.
// Model output is untrusted and only probably JSON; extraction is a
// documented best-effort heuristic, never a strict grammar.
package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

const fallbackDetails = "LLM did not return a parseable JSON array. Displaying raw text."

// Normalize extracts a JSON array of recommendations from the raw model
// output. Elements are passed through as parsed, without per-field
// validation; callers must tolerate missing fields. Outcomes:
//   - a recommendation list when a located array parses;
//   - ModelError(LLM_JSON_PARSE_ERROR) with the raw text when a located
//     array fails strict parsing;
//   - UnparsedFallback with the trimmed text when no array span exists.
func Normalize(rawText string) advisor.Result {
	trimmed := strings.TrimSpace(rawText)

	span, ok := ExtractArray(trimmed)
	if !ok {
		return advisor.NewFallback(trimmed, fallbackDetails)
	}

	var recs []advisor.Recommendation
	if err := json.Unmarshal([]byte(span), &recs); err != nil {
		details := fmt.Sprintf("Failed to parse LLM output as JSON. Error: %v. Raw output was:\n%s", err, rawText)
		return advisor.NewModelError(advisor.CodeJSONParse, details, rawText)
	}
	return advisor.NewRecommendations(recs)
}
