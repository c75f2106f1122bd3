package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(url string) *OpenAIGenerator {
	return NewOpenAIGenerator(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4-turbo-preview",
		BaseURL: url,
	})
}

func TestOpenAIGenerateText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4-turbo-preview",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  {\"headline\":\"Hi\"}  "}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 12, "total_tokens": 54}
		}`)) //nolint:errcheck
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)

	resp, err := g.GenerateText(context.Background(), TextGenerationRequest{
		SystemPrompt: "you are a copywriter",
		Prompt:       "write an ad",
		JSONOutput:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"headline":"Hi"}`, resp.Text, "response text should be trimmed")
	assert.Equal(t, 42, resp.Usage.InputTokens)
	assert.Equal(t, 12, resp.Usage.OutputTokens)
}

func TestOpenAIGenerateText_Throttled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)

	_, err := g.GenerateText(context.Background(), TextGenerationRequest{Prompt: "write an ad"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThrottled), "429 should classify as throttled")
}

func TestOpenAIGenerateText_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)

	_, err := g.GenerateText(context.Background(), TextGenerationRequest{Prompt: "write an ad"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable), "5xx should classify as unavailable")
}

func TestOpenAIGenerateText_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.GenerateText(ctx, TextGenerationRequest{Prompt: "write an ad"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "timeout should surface the context deadline")
}

func TestOpenAIGenerateText_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`)) //nolint:errcheck
	}))
	defer server.Close()

	g := newTestGenerator(server.URL)

	_, err := g.GenerateText(context.Background(), TextGenerationRequest{Prompt: "write an ad"})

	assert.Error(t, err)
}
