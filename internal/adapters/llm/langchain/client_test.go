package langchain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/meeting-prep-assistant/internal/domain"
	"github.com/bnema/meeting-prep-assistant/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

type fakeModel struct {
	messages []llms.MessageContent
	options  llms.CallOptions
	resp     *llms.ContentResponse
	err      error
	block    bool
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, option := range options {
		option(&m.options)
	}

	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	return m.resp, m.err
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func textOf(t *testing.T, message llms.MessageContent) string {
	t.Helper()

	require.Len(t, message.Parts, 1)
	part, ok := message.Parts[0].(llms.TextContent)
	require.True(t, ok)
	return part.Text
}

func TestClientCompleteSendsSystemAndUserMessages(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: `{"tasks": []}`, StopReason: "stop"}}}}
	client := NewWithModel(model, 0, nil)

	got, err := client.Complete(context.Background(), domain.Prompt{System: "be helpful", User: "plan my meeting"}, ports.CompletionOptions{Temperature: 0.2, MaxTokens: 256})
	require.NoError(t, err)
	assert.Equal(t, `{"tasks": []}`, got)

	require.Len(t, model.messages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, "be helpful", textOf(t, model.messages[0]))
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)
	assert.Equal(t, "plan my meeting", textOf(t, model.messages[1]))
	assert.InDelta(t, 0.2, model.options.Temperature, 1e-9)
	assert.Equal(t, 256, model.options.MaxTokens)
}

func TestClientCompleteOmitsEmptySystemAndMaxTokens(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "ok"}}}}
	client := NewWithModel(model, 0, nil)

	_, err := client.Complete(context.Background(), domain.Prompt{User: "hi"}, ports.CompletionOptions{})
	require.NoError(t, err)

	require.Len(t, model.messages, 1)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[0].Role)
	assert.Zero(t, model.options.MaxTokens)
}

func TestClientCompleteErrors(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{name: "transport", model: &fakeModel{err: errors.New("connection refused")}},
		{name: "nil response", model: &fakeModel{}},
		{name: "no choices", model: &fakeModel{resp: &llms.ContentResponse{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithModel(tt.model, 0, nil).Complete(context.Background(), domain.Prompt{User: "x"}, ports.CompletionOptions{})
			require.Error(t, err)
		})
	}
}

func TestClientCompleteAppliesTimeout(t *testing.T) {
	client := NewWithModel(&fakeModel{block: true}, 10*time.Millisecond, nil)

	_, err := client.Complete(context.Background(), domain.Prompt{User: "x"}, ports.CompletionOptions{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewTalksToOpenAICompatibleEndpoint(t *testing.T) {
	var request struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	var authorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		authorization = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1767225600,
			"model": "databricks-dbrx-instruct",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer server.Close()

	client, err := New(Config{
		BaseURL: server.URL + "/v1",
		Model:   "databricks-dbrx-instruct",
		Token:   "sk-test",
		Timeout: 5 * time.Second,
	}, nil)
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), domain.Prompt{System: "sys", User: "usr"}, ports.CompletionOptions{})
	require.NoError(t, err)

	assert.Equal(t, "hello", got)
	assert.Equal(t, "Bearer sk-test", authorization)
	assert.Equal(t, "databricks-dbrx-instruct", request.Model)
	require.Len(t, request.Messages, 2)
	assert.Equal(t, "system", request.Messages[0].Role)
	assert.Equal(t, "user", request.Messages[1].Role)
	assert.Contains(t, string(request.Messages[1].Content), "usr")
}

func TestNewWithoutTokenUsesPlaceholder(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New(Config{BaseURL: "http://127.0.0.1:1/v1", Model: "local"}, nil)
	require.NoError(t, err)
}
