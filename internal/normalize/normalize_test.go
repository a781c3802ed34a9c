package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

func TestNormalize_ExtractsArrayFromSurroundingProse(t *testing.T) {
	t.Parallel()

	raw := "here is the answer:\n[{\"stack_name\":\"X\",\"core_components\":[],\"justification\":\"y\"}]\ndone"
	result := Normalize(raw)

	require.Equal(t, advisor.KindRecommendations, result.Kind)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "X", result.Recommendations[0].StackName)
	assert.Empty(t, result.Recommendations[0].CoreComponents)
	assert.Equal(t, "y", result.Recommendations[0].Justification)
}

func TestNormalize_FallbackWhenNoBracketAtAll(t *testing.T) {
	t.Parallel()

	result := Normalize("  I cannot produce structured output today.  ")
	require.Equal(t, advisor.KindFallback, result.Kind)
	assert.Equal(t, "I cannot produce structured output today.", result.RawText)
	assert.NotEmpty(t, result.Details)
}

func TestNormalize_MalformedJSONIsModelError(t *testing.T) {
	t.Parallel()

	raw := "[{bad json}]"
	result := Normalize(raw)
	require.Equal(t, advisor.KindModelError, result.Kind)
	assert.Equal(t, advisor.CodeJSONParse, result.Code)
	assert.Equal(t, raw, result.RawText)
	assert.Contains(t, result.Details, "Failed to parse LLM output as JSON")
}

func TestNormalize_MissingFieldsPassThrough(t *testing.T) {
	t.Parallel()

	result := Normalize(`[{"stack_name":"Bare"}]`)
	require.Equal(t, advisor.KindRecommendations, result.Kind)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Bare", result.Recommendations[0].StackName)
	assert.Empty(t, result.Recommendations[0].Justification)
}

func TestNormalize_EmptyArray(t *testing.T) {
	t.Parallel()

	result := Normalize("[]")
	require.Equal(t, advisor.KindRecommendations, result.Kind)
	assert.Empty(t, result.Recommendations)
}

func TestExtractArray_IgnoresBracketsInsideStrings(t *testing.T) {
	t.Parallel()

	raw := `note [{"stack_name":"X [beta]","justification":"arrays: ]["}] trailing ]`
	span, ok := ExtractArray(raw)
	require.True(t, ok)
	assert.Equal(t, `[{"stack_name":"X [beta]","justification":"arrays: ]["}]`, span)

	result := Normalize(raw)
	require.Equal(t, advisor.KindRecommendations, result.Kind)
	assert.Equal(t, "X [beta]", result.Recommendations[0].StackName)
}

func TestExtractArray_HandlesEscapedQuotes(t *testing.T) {
	t.Parallel()

	span, ok := ExtractArray(`[{"justification":"say \"hi[\" now"}]`)
	require.True(t, ok)
	assert.Equal(t, `[{"justification":"say \"hi[\" now"}]`, span)
}

func TestExtractArray_NestedArrays(t *testing.T) {
	t.Parallel()

	span, ok := ExtractArray(`x [[1,2],[3]] y`)
	require.True(t, ok)
	assert.Equal(t, "[[1,2],[3]]", span)
}

func TestExtractArray_UnbalancedFallsBackToLastBracket(t *testing.T) {
	t.Parallel()

	span, ok := ExtractArray(`[ "unterminated ]`)
	require.True(t, ok)
	assert.Equal(t, `[ "unterminated ]`, span)
}

func TestExtractArray_NoSpan(t *testing.T) {
	t.Parallel()

	_, ok := ExtractArray("no brackets here")
	assert.False(t, ok)

	_, ok = ExtractArray("only open [")
	assert.False(t, ok)
}
