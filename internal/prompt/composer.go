// Package prompt composes the instruction payload sent to the model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

// DefaultQuery is substituted when the user submits an empty query.
const DefaultQuery = "Provide initial tech stack recommendations based on the context above."

const systemInstruction = `You are an expert AI Tech Stack Advisor. Your task is to analyze the user's project requirements
and recommend up to three suitable technology stacks. Your recommendations must be thorough,
well-justified, and directly address the user's inputs. Consider the conversation history for follow-up questions.

Current Project Context (if provided by user, otherwise assume this is the first interaction):
%s

Instructions for your response:
1. If the user asks a follow-up question, prioritize answering that question in the context of previous recommendations OR if the new input significantly changes criteria, provide new recommendations.
2. Structure your entire response as a single JSON array. Each element in the array
   should be a JSON object representing one technology stack recommendation, containing the
   following keys:
   - "stack_name": A descriptive name for the tech stack.
   - "core_components": A list of strings detailing the main technologies.
   - "justification": A detailed explanation of why this stack is a good fit, referencing user inputs and conversation history.
   - "pros": A list of key advantages.
   - "cons": A list of key disadvantages or trade-offs.
   - "addressed_follow_up": (Optional string) Briefly mention if/how this response addresses a follow-up from the user.
3. If providing initial recommendations, be comprehensive. If answering a follow-up, be concise and targeted if possible.`

// Compose merges the project details and the current user query into one
// instruction blob. Deterministic for identical inputs: fields render in
// declaration order, one "Field: value" line each.
func Compose(details advisor.ProjectDetails, userQuery string) string {
	summary := Summary(details)
	query := strings.TrimSpace(userQuery)
	if query == "" {
		query = DefaultQuery
	}

	var b strings.Builder
	b.WriteString("System Instructions:\n")
	fmt.Fprintf(&b, systemInstruction, summary)
	b.WriteString("\n\nUser's Current Request/Context:\n")
	b.WriteString("The overall project context is as follows:\n")
	b.WriteString(summary)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "User's specific question for this turn: %q\n", query)
	b.WriteString("\nPlease provide your recommendations or answer in the specified JSON format.")
	return b.String()
}

// Summary renders the project details as a human-readable list, one line
// per field, field names humanized (underscores to spaces, title-cased).
func Summary(details advisor.ProjectDetails) string {
	lines := []string{
		line("project_description", details.ProjectDescription),
		line("app_type", details.AppType),
		line("team_skills", strings.Join(details.TeamSkills, ", ")),
		line("budget", details.Budget),
		line("timeline", details.Timeline),
		line("scalability_needs", details.ScalabilityNeeds),
	}
	return strings.Join(lines, "\n")
}

func line(field, value string) string {
	return fmt.Sprintf("- %s: %s", humanize(field), value)
}

func humanize(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
