package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectDetails_Validate(t *testing.T) {
	t.Parallel()

	details := DefaultProjectDetails()
	require.NoError(t, details.Validate())

	details.Budget = "Enormous"
	require.Error(t, details.Validate())

	details = DefaultProjectDetails()
	details.TeamSkills = []string{"Python", "COBOL"}
	require.Error(t, details.Validate())
}

func TestResult_ExactlyOneVariant(t *testing.T) {
	t.Parallel()

	rec := NewRecommendations([]Recommendation{{StackName: "X", Justification: "y"}})
	assert.Equal(t, KindRecommendations, rec.Kind)
	assert.False(t, rec.IsError())

	ruleErr := NewRuleError(CodeContradictoryInput, "details")
	assert.Equal(t, KindRuleError, ruleErr.Kind)
	assert.True(t, ruleErr.IsError())
	assert.Equal(t, SourceRules, ruleErr.Source)

	modelErr := NewModelError(CodeJSONParse, "bad json", "raw")
	assert.True(t, modelErr.IsError())
	assert.Equal(t, "raw", modelErr.RawText)

	fb := NewFallback("free text", "no array found")
	assert.Equal(t, KindFallback, fb.Kind)
	assert.False(t, fb.IsError())
}

func TestResult_HistoryText(t *testing.T) {
	t.Parallel()

	rec := NewRecommendations([]Recommendation{{StackName: "X", CoreComponents: []string{}, Justification: "y"}})
	assert.JSONEq(t, `[{"stack_name":"X","core_components":[],"justification":"y"}]`, rec.HistoryText())

	fb := NewFallback("plain prose", "no array")
	assert.Equal(t, "plain prose", fb.HistoryText())

	modelErr := NewModelError(CodeChain, "boom", "")
	assert.Equal(t, "LLM_CHAIN_ERROR: boom", modelErr.HistoryText())
}
