package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

func TestRecommendationsMarkdown(t *testing.T) {
	t.Parallel()

	md := recommendationsMarkdown([]advisor.Recommendation{
		{
			StackName:      "JAMstack",
			CoreComponents: []string{"SSG", "CDN"},
			Justification:  "cheap and fast",
			Pros:           []string{"fast"},
			Cons:           []string{"static only"},
			Source:         advisor.SourceRules,
		},
		{StackName: "MERN", Justification: "JS everywhere"},
	})

	assert.Contains(t, md, "#### Recommendation #1: JAMstack")
	assert.Contains(t, md, "*Source: Rule-Based Pre-check*")
	assert.Contains(t, md, "`SSG`, `CDN`")
	assert.Contains(t, md, "- fast")
	assert.Contains(t, md, "- static only")
	assert.Contains(t, md, "#### Recommendation #2: MERN")
	assert.Contains(t, md, "---")
}

func TestRenderResult_ErrorAndFallback(t *testing.T) {
	t.Parallel()

	errOut := renderResult(advisor.NewModelError(advisor.CodeChain, "boom", ""), 80)
	assert.Contains(t, errOut, "LLM_CHAIN_ERROR")
	assert.Contains(t, errOut, "boom")

	fbOut := renderResult(advisor.NewFallback("raw model prose", "not an array"), 80)
	assert.Contains(t, fbOut, "raw model prose")
	assert.Contains(t, fbOut, "not an array")
}
