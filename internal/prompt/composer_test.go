package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

func sampleDetails() advisor.ProjectDetails {
	return advisor.ProjectDetails{
		ProjectDescription: "A marketplace for vintage synths",
		AppType:            "Web Application",
		TeamSkills:         []string{"Python", "React"},
		Budget:             advisor.BudgetMedium,
		Timeline:           advisor.TimelineMedium,
		ScalabilityNeeds:   advisor.ScalabilityMedium,
	}
}

func TestSummary_HumanizesFieldNames(t *testing.T) {
	t.Parallel()

	summary := Summary(sampleDetails())
	assert.Contains(t, summary, "- Project Description: A marketplace for vintage synths")
	assert.Contains(t, summary, "- App Type: Web Application")
	assert.Contains(t, summary, "- Team Skills: Python, React")
	assert.Contains(t, summary, "- Budget: Medium")
	assert.Contains(t, summary, "- Timeline: Medium (3-6 months)")
	assert.Contains(t, summary, "- Scalability Needs: Medium")
}

func TestCompose_EmbedsAllFieldsAndQuery(t *testing.T) {
	t.Parallel()

	composed := Compose(sampleDetails(), "What about hosting costs?")
	assert.Contains(t, composed, "System Instructions:")
	assert.Contains(t, composed, "expert AI Tech Stack Advisor")
	assert.Contains(t, composed, "- Scalability Needs: Medium")
	assert.Contains(t, composed, `User's specific question for this turn: "What about hosting costs?"`)
	assert.Contains(t, composed, "specified JSON format")
}

func TestCompose_DefaultQueryWhenEmpty(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"", "   ", "\n"} {
		composed := Compose(sampleDetails(), query)
		assert.Contains(t, composed, DefaultQuery)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	t.Parallel()

	details := sampleDetails()
	assert.Equal(t, Compose(details, "recommend"), Compose(details, "recommend"))
}
