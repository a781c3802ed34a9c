// Package advisor defines the shared domain types of the recommendation pipeline.
package advisor

import (
	"encoding/json"
	"fmt"
)

// Budget levels, ordered.
const (
	BudgetLow    = "Low"
	BudgetMedium = "Medium"
	BudgetHigh   = "High"
)

// Timeline values, ordered shortest first.
const (
	TimelineVeryShort = "Very Short (Under 1 month)"
	TimelineShort     = "Short (1-3 months)"
	TimelineMedium    = "Medium (3-6 months)"
	TimelineLong      = "Long (6-12 months)"
)

// Scalability values, ordered.
const (
	ScalabilityLow      = "Low"
	ScalabilityMedium   = "Medium"
	ScalabilityHigh     = "High"
	ScalabilityVeryHigh = "Very High"
)

// AppTypes is the fixed set of application types accepted by the form.
var AppTypes = []string{
	"Web Application",
	"Mobile Application (Native)",
	"Mobile Application (Cross-Platform)",
	"API Backend",
	"Data Analytics Platform",
	"AI/ML Application",
	"Other",
}

// SkillVocabulary is the fixed set of selectable team skills.
var SkillVocabulary = []string{
	"Python", "JavaScript", "Java", "C#", "Ruby", "Go", "Swift", "Kotlin",
	"React", "Vue", "Angular", "Node.js", "Django", "Flask", "SQL", "NoSQL",
	"AWS", "Azure", "GCP", "None",
}

// ProjectDetails is the structured project state collected from the user.
// It is owned by the session and re-read on every turn; only the current
// snapshot matters, no history of it is kept.
type ProjectDetails struct {
	ProjectDescription string   `json:"project_description"`
	AppType            string   `json:"app_type"`
	TeamSkills         []string `json:"team_skills"`
	Budget             string   `json:"budget"`
	Timeline           string   `json:"timeline"`
	ScalabilityNeeds   string   `json:"scalability_needs"`
}

// DefaultProjectDetails returns the form defaults used at session start.
func DefaultProjectDetails() ProjectDetails {
	return ProjectDetails{
		AppType:          "Web Application",
		TeamSkills:       []string{},
		Budget:           BudgetMedium,
		Timeline:         TimelineMedium,
		ScalabilityNeeds: ScalabilityMedium,
	}
}

// Validate checks the enum-constrained fields against their fixed vocabularies.
func (d ProjectDetails) Validate() error {
	if !contains(AppTypes, d.AppType) {
		return fmt.Errorf("invalid app_type %q", d.AppType)
	}
	if !contains([]string{BudgetLow, BudgetMedium, BudgetHigh}, d.Budget) {
		return fmt.Errorf("invalid budget %q", d.Budget)
	}
	if !contains([]string{TimelineVeryShort, TimelineShort, TimelineMedium, TimelineLong}, d.Timeline) {
		return fmt.Errorf("invalid timeline %q", d.Timeline)
	}
	if !contains([]string{ScalabilityLow, ScalabilityMedium, ScalabilityHigh, ScalabilityVeryHigh}, d.ScalabilityNeeds) {
		return fmt.Errorf("invalid scalability_needs %q", d.ScalabilityNeeds)
	}
	for _, skill := range d.TeamSkills {
		if !contains(SkillVocabulary, skill) {
			return fmt.Errorf("unknown team skill %q", skill)
		}
	}
	return nil
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// Sources attached to recommendations after generation.
const (
	SourceRules = "Rule-Based Pre-check"
	SourceModel = "LLM via LangChain"
)

// Recommendation is one proposed technology stack. The normalizer passes
// model output through without per-field validation, so consumers must
// tolerate zero values.
type Recommendation struct {
	StackName         string   `json:"stack_name"`
	CoreComponents    []string `json:"core_components"`
	Justification     string   `json:"justification"`
	Pros              []string `json:"pros,omitempty"`
	Cons              []string `json:"cons,omitempty"`
	AddressedFollowUp string   `json:"addressed_follow_up,omitempty"`
	Source            string   `json:"source,omitempty"`
}

// ResultKind discriminates the Result union.
type ResultKind string

// Result variants. Exactly one is produced per turn.
const (
	KindRecommendations ResultKind = "recommendations"
	KindRuleError       ResultKind = "rule_error"
	KindModelError      ResultKind = "model_error"
	KindFallback        ResultKind = "fallback"
)

// Model error codes.
const (
	CodeNotInitialized = "LLM_NOT_INITIALIZED"
	CodeJSONParse      = "LLM_JSON_PARSE_ERROR"
	CodeChain          = "LLM_CHAIN_ERROR"
)

// Rule error codes.
const (
	CodeContradictoryInput = "Contradictory Input"
	CodeUnrealisticScope   = "Potentially Unrealistic Scope"
)

// Result is the single outcome of one pipeline turn: a recommendation
// list, a rule error, a model error, or an unparsed fallback.
type Result struct {
	Kind            ResultKind       `json:"kind"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Code            string           `json:"code,omitempty"`
	Details         string           `json:"details,omitempty"`
	// RawText carries the model's raw output for fallbacks and, where
	// available, for model errors (raw_text_fallback).
	RawText string `json:"raw_text,omitempty"`
	Source  string `json:"source,omitempty"`
}

// NewRecommendations wraps a recommendation list.
func NewRecommendations(recs []Recommendation) Result {
	return Result{Kind: KindRecommendations, Recommendations: recs}
}

// NewRuleError wraps a deterministic pre-check contradiction.
func NewRuleError(code, details string) Result {
	return Result{Kind: KindRuleError, Code: code, Details: details, Source: SourceRules}
}

// NewModelError wraps a model-path failure. rawText may be empty when the
// failure happened before any output was produced.
func NewModelError(code, details, rawText string) Result {
	return Result{Kind: KindModelError, Code: code, Details: details, RawText: rawText}
}

// NewFallback wraps a successful call whose text had no parseable shape.
func NewFallback(rawText, details string) Result {
	return Result{Kind: KindFallback, RawText: rawText, Details: details}
}

// IsError reports whether the result is a rule or model error.
func (r Result) IsError() bool {
	return r.Kind == KindRuleError || r.Kind == KindModelError
}

// HistoryText renders the result as the assistant side of a conversation
// turn for the model's chat history. Recommendation lists serialize to
// compact JSON, fallbacks contribute their raw text, errors contribute
// "code: details".
func (r Result) HistoryText() string {
	switch r.Kind {
	case KindRecommendations:
		b, err := json.Marshal(r.Recommendations)
		if err != nil {
			return ""
		}
		return string(b)
	case KindFallback:
		return r.RawText
	default:
		return fmt.Sprintf("%s: %s", r.Code, r.Details)
	}
}

// Turn is one (user input, produced output) pair. Append-only within a session.
type Turn struct {
	UserInput string `json:"user_input"`
	Result    Result `json:"result"`
}
