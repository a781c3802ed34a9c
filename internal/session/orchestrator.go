package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/metalagman/stackadvisor/internal/advisor"
	"github.com/metalagman/stackadvisor/internal/llm"
	"github.com/metalagman/stackadvisor/internal/normalize"
	"github.com/metalagman/stackadvisor/internal/prompt"
	"github.com/metalagman/stackadvisor/internal/rules"
)

// Orchestrator runs one synchronous pipeline turn at a time. A nil
// invoker (the client could not be constructed, typically a missing
// credential) degrades every model-path turn to LLM_NOT_INITIALIZED
// without calling out.
type Orchestrator struct {
	invoker llm.Invoker
}

// NewOrchestrator wires the orchestrator to a model invoker. invoker may
// be nil.
func NewOrchestrator(invoker llm.Invoker) *Orchestrator {
	return &Orchestrator{invoker: invoker}
}

// HandleTurn runs the pipeline for one user query: pre-check rules, then
// the model path only when no rule fired. The model is never called
// after a rule verdict. Every turn, including failures, yields exactly
// one result and is appended to the session memory and transcript.
func (o *Orchestrator) HandleTurn(ctx context.Context, sess *Session, userQuery string) advisor.Result {
	result := o.resolve(ctx, sess, userQuery)

	turn := advisor.Turn{UserInput: userQuery, Result: result}
	sess.Memory.Append(turn)
	sess.Transcript = append(sess.Transcript, turn)

	log.Debug().
		Str("session_id", sess.ID).
		Str("kind", string(result.Kind)).
		Str("code", result.Code).
		Int("memory_len", sess.Memory.Len()).
		Msg("turn resolved")

	return result
}

func (o *Orchestrator) resolve(ctx context.Context, sess *Session, userQuery string) advisor.Result {
	verdict := rules.Evaluate(sess.Details)
	switch verdict.Kind {
	case rules.VerdictDirect:
		return tagSource(advisor.NewRecommendations(verdict.Recommendations), advisor.SourceRules)
	case rules.VerdictError:
		return advisor.NewRuleError(verdict.Code, verdict.Details)
	}

	if o.invoker == nil {
		return advisor.NewModelError(advisor.CodeNotInitialized, "LLM client could not be set up.", "")
	}

	composed := prompt.Compose(sess.Details, userQuery)
	rawText, err := o.invoker.Invoke(ctx, composed, historyMessages(sess.Memory.Turns()))
	if err != nil {
		details := fmt.Sprintf("An unexpected error occurred: %v", err)
		return advisor.NewModelError(advisor.CodeChain, details, "")
	}

	return tagSource(normalize.Normalize(rawText), advisor.SourceModel)
}

// historyMessages flattens the memory window into ordered chat messages,
// oldest turn first, one user/assistant pair per turn.
func historyMessages(turns []advisor.Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(turns)*2)
	for _, t := range turns {
		msgs = append(msgs,
			llm.Message{Role: llm.RoleUser, Content: t.UserInput},
			llm.Message{Role: llm.RoleAssistant, Content: t.Result.HistoryText()},
		)
	}
	return msgs
}

// tagSource stamps the generation source on the result and each
// recommendation; generators themselves never set it.
func tagSource(result advisor.Result, source string) advisor.Result {
	result.Source = source
	for i := range result.Recommendations {
		result.Recommendations[i].Source = source
	}
	return result
}
