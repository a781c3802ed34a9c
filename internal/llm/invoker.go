// Package llm provides clients for the hosted model call. The model is
// treated as an opaque function: composed text in, raw text out.
package llm

import (
	"context"
	"fmt"
	"time"
)

const (
	// ProviderGemini selects the Google Gemini backend.
	ProviderGemini = "gemini"
	// ProviderOpenAI selects an OpenAI-compatible backend.
	ProviderOpenAI = "openai"

	defaultTimeout = 60 * time.Second
)

// Role identifies the author of a history message.
type Role string

// Chat history roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one ordered chat-history entry.
type Message struct {
	Role    Role
	Content string
}

// Invoker sends a composed prompt plus the memory window to the model
// and returns its raw text output verbatim. Implementations must not
// mutate the history slice and must not normalize the output.
type Invoker interface {
	Invoke(ctx context.Context, prompt string, history []Message) (string, error)
}

// Config selects and configures a model backend.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	APIKeyEnv   string
	BaseURL     string
	Timeout     time.Duration
	Temperature float32
}

// New constructs the invoker for the configured provider. A construction
// failure (typically a missing credential) is surfaced to the caller so
// the orchestrator can report LLM_NOT_INITIALIZED instead of calling out.
func New(ctx context.Context, cfg Config) (Invoker, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		client, err := NewGemini(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderOpenAI:
		client, err := NewOpenAI(cfg, nil)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
