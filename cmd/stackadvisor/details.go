package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

// detailFlags collects the project-details form fields from the command line.
type detailFlags struct {
	file        string
	description string
	appType     string
	skills      []string
	budget      string
	timeline    string
	scalability string
}

func (f *detailFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "details-file", "", "JSON file with project details")
	cmd.Flags().StringVar(&f.description, "description", "", "project description")
	cmd.Flags().StringVar(&f.appType, "app-type", "Web Application", "application type")
	cmd.Flags().StringSliceVar(&f.skills, "skills", nil, "team skills")
	cmd.Flags().StringVar(&f.budget, "budget", advisor.BudgetMedium, "budget (Low, Medium, High)")
	cmd.Flags().StringVar(&f.timeline, "timeline", advisor.TimelineMedium, "timeline")
	cmd.Flags().StringVar(&f.scalability, "scalability", advisor.ScalabilityMedium, "scalability needs")
}

// details resolves the flags into a validated snapshot. A details file,
// when given, wins over the individual flags.
func (f *detailFlags) details() (advisor.ProjectDetails, error) {
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return advisor.ProjectDetails{}, fmt.Errorf("read details file: %w", err)
		}
		details := advisor.DefaultProjectDetails()
		if err := json.Unmarshal(data, &details); err != nil {
			return advisor.ProjectDetails{}, fmt.Errorf("parse details file: %w", err)
		}
		if err := details.Validate(); err != nil {
			return advisor.ProjectDetails{}, err
		}
		return details, nil
	}

	details := advisor.ProjectDetails{
		ProjectDescription: f.description,
		AppType:            f.appType,
		TeamSkills:         f.skills,
		Budget:             f.budget,
		Timeline:           f.timeline,
		ScalabilityNeeds:   f.scalability,
	}
	if details.TeamSkills == nil {
		details.TeamSkills = []string{}
	}
	if err := details.Validate(); err != nil {
		return advisor.ProjectDetails{}, err
	}
	return details, nil
}
