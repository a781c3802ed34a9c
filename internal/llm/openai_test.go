package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIInvoke_SendsHistoryInOrder(t *testing.T) {
	const envKey = "STACKADVISOR_OPENAI_TEST_KEY"
	t.Setenv(envKey, "test-api-key")

	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [
				{"message": {"role": "assistant", "content": "[{\"stack_name\":\"X\"}]"}}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewOpenAI(Config{
		Model:     "gpt-4o-mini",
		BaseURL:   srv.URL,
		APIKeyEnv: envKey,
	}, srv.Client())
	require.NoError(t, err)

	history := []Message{
		{Role: RoleUser, Content: "first question"},
		{Role: RoleAssistant, Content: "first answer"},
	}
	out, err := client.Invoke(context.Background(), "current prompt", history)
	require.NoError(t, err)
	assert.Equal(t, `[{"stack_name":"X"}]`, out)

	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 3)
	first := messages[0].(map[string]any)
	second := messages[1].(map[string]any)
	last := messages[2].(map[string]any)
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "first question", first["content"])
	assert.Equal(t, "assistant", second["role"])
	assert.Equal(t, "user", last["role"])
	assert.Equal(t, "current prompt", last["content"])

	// The invoker must not mutate the caller's history.
	assert.Equal(t, "first question", history[0].Content)
	assert.Len(t, history, 2)
}

func TestNewOpenAI_ReturnsErrorWhenAPIKeyMissing(t *testing.T) {
	const envKey = "STACKADVISOR_OPENAI_MISSING_KEY"
	require.NoError(t, os.Unsetenv(envKey))

	_, err := NewOpenAI(Config{
		Model:     "gpt-4o-mini",
		BaseURL:   "http://127.0.0.1",
		APIKeyEnv: envKey,
	}, nil)
	require.Error(t, err)
}

func TestOpenAIInvoke_ReturnsErrorWhenNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewOpenAI(Config{
		Model:   "gpt-4o-mini",
		BaseURL: srv.URL,
		APIKey:  "test-api-key",
	}, srv.Client())
	require.NoError(t, err)

	_, err = client.Invoke(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choices")
}

func TestNew_UnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{Provider: "mystery", Model: "m"})
	require.Error(t, err)
}
