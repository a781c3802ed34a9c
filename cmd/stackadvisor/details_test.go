package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

func TestDetailFlags_DefaultsValidate(t *testing.T) {
	t.Parallel()

	flags := detailFlags{
		appType:     "Web Application",
		budget:      advisor.BudgetMedium,
		timeline:    advisor.TimelineMedium,
		scalability: advisor.ScalabilityMedium,
	}
	details, err := flags.details()
	require.NoError(t, err)
	assert.Equal(t, "Web Application", details.AppType)
	assert.NotNil(t, details.TeamSkills)
}

func TestDetailFlags_RejectsInvalidBudget(t *testing.T) {
	t.Parallel()

	flags := detailFlags{
		appType:     "Web Application",
		budget:      "Unlimited",
		timeline:    advisor.TimelineMedium,
		scalability: advisor.ScalabilityMedium,
	}
	_, err := flags.details()
	require.Error(t, err)
}

func TestDetailFlags_FileWins(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "details.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"project_description": "from file",
		"app_type": "API Backend",
		"team_skills": ["Go"],
		"budget": "High",
		"timeline": "Long (6-12 months)",
		"scalability_needs": "Very High"
	}`), 0o644))

	flags := detailFlags{file: path, budget: "Unlimited"}
	details, err := flags.details()
	require.NoError(t, err)
	assert.Equal(t, "from file", details.ProjectDescription)
	assert.Equal(t, "API Backend", details.AppType)
	assert.Equal(t, advisor.BudgetHigh, details.Budget)
}
