// Package rules implements the deterministic pre-checks that run before
// any model call. Rules are evaluated in a fixed priority order; the
// first match wins and evaluation stops.
package rules

import (
	"strings"

	"github.com/metalagman/stackadvisor/internal/advisor"
)

// VerdictKind discriminates the evaluator outcome.
type VerdictKind int

// Evaluator outcomes.
const (
	// VerdictNone defers to the model path.
	VerdictNone VerdictKind = iota
	// VerdictDirect carries a fixed recommendation set.
	VerdictDirect
	// VerdictError carries a detected input contradiction.
	VerdictError
)

// Verdict is the outcome of the pre-check pass.
type Verdict struct {
	Kind            VerdictKind
	Recommendations []advisor.Recommendation
	Code            string
	Details         string
}

var staticSiteKeywords = []string{"static site", "brochure website", "portfolio", "landing page"}

var complexScopeKeywords = []string{"enterprise system", "large scale platform", "many complex features"}

// backendSkills is the set of skills considered backend-capable.
var backendSkills = []string{"node.js", "python", "java", "go", "ruby", "php", "c#"}

// Evaluate runs the ordered rule list against the project details. Pure:
// no side effects, no external calls.
func Evaluate(details advisor.ProjectDetails) Verdict {
	appType := strings.ToLower(details.AppType)
	description := strings.ToLower(details.ProjectDescription)
	scalability := strings.ToLower(details.ScalabilityNeeds)
	budget := strings.ToLower(details.Budget)
	timeline := strings.ToLower(details.Timeline)
	skills := lowered(details.TeamSkills)

	// Rule 1: simple static site shortcut.
	if containsAny(appType, description, staticSiteKeywords) &&
		(scalability == "low" || scalability == "") &&
		budget == "low" &&
		strings.HasPrefix(timeline, "very short") {
		return Verdict{Kind: VerdictDirect, Recommendations: []advisor.Recommendation{jamstackRecommendation()}}
	}

	// Rule 2: high scalability contradicts the absence of a backend.
	if (scalability == "high" || scalability == "very high") &&
		(strings.Contains(description, "no backend") ||
			strings.Contains(appType, "frontend only") ||
			!hasBackendSkill(skills)) {
		return Verdict{
			Kind:    VerdictError,
			Code:    advisor.CodeContradictoryInput,
			Details: "High scalability typically requires a robust backend. Please clarify if a backend is needed or adjust scalability expectations.",
		}
	}

	// Rule 3: complex scope against a short timeline with low budget or expertise.
	if containsAny(description, "", complexScopeKeywords) &&
		(strings.HasPrefix(timeline, "very short") || strings.HasPrefix(timeline, "short")) &&
		(budget == "low" || len(skills) == 0 || contains(skills, "none")) {
		return Verdict{
			Kind:    VerdictError,
			Code:    advisor.CodeUnrealisticScope,
			Details: "A complex project with a very short timeline and limited budget/expertise is challenging. Consider adjusting scope, timeline, or budget.",
		}
	}

	return Verdict{Kind: VerdictNone}
}

// hasBackendSkill reports whether at least one backend-capable skill is
// present. An empty list or a literal "none" entry counts as no backend
// capability.
func hasBackendSkill(loweredSkills []string) bool {
	if len(loweredSkills) == 0 || contains(loweredSkills, "none") {
		return false
	}
	for _, skill := range loweredSkills {
		if contains(backendSkills, skill) {
			return true
		}
	}
	return false
}

func jamstackRecommendation() advisor.Recommendation {
	return advisor.Recommendation{
		StackName:      "JAMstack (e.g., Astro / Eleventy / Hugo / Next.js static export)",
		CoreComponents: []string{"Static Site Generator", "CDN (Netlify, Vercel, GitHub Pages)"},
		Justification:  "For simple, static content with low budget and fast timeline, JAMstack offers optimal performance, security, and low cost.",
		Pros:           []string{"Excellent performance", "High security", "Low hosting costs", "Good developer experience"},
		Cons: []string{
			"Not suitable for dynamic server-side logic without workarounds (serverless functions)",
			"Build times can increase for very large sites",
		},
	}
}

func containsAny(a, b string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(a, kw) || (b != "" && strings.Contains(b, kw)) {
			return true
		}
	}
	return false
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func lowered(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}
