package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const chatResponseJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "model": "o4-mini",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "  C  \n"}, "finish_reason": "stop"}],
  "usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
}`

// fakeOpenAI serves /v1/chat/completions and records the decoded request bodies.
type fakeOpenAI struct {
	status int
	body   string
	got    []map[string]any
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/v1/chat/completions" {
		http.NotFound(w, r)
		return
	}
	raw, _ := io.ReadAll(r.Body)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	f.got = append(f.got, decoded)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func newTestProvider(t *testing.T, fake *fakeOpenAI, model string) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return NewOpenAIProvider("test-key", model, srv.URL+"/v1", false, nil)
}

func TestOpenAIProviderCompletesWithMaxCompletionTokens(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, body: chatResponseJSON}
	p := newTestProvider(t, fake, "o4-mini")

	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "be helpful"},
			{Role: RoleUser, Content: "hello"},
		},
		MaxTokens:  1000,
		TokenParam: TokenParamMaxCompletionTokens,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "  C  \n" {
		t.Errorf("expected raw content, got %q", resp.Content)
	}
	if !resp.HasContent {
		t.Error("expected HasContent true")
	}
	if resp.InputTokens != 12 || resp.OutputTokens != 3 {
		t.Errorf("unexpected usage: %d/%d", resp.InputTokens, resp.OutputTokens)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("expected finish reason 'stop', got %q", resp.FinishReason)
	}

	if len(fake.got) != 1 {
		t.Fatalf("expected 1 request, got %d", len(fake.got))
	}
	body := fake.got[0]
	if body["model"] != "o4-mini" {
		t.Errorf("expected model o4-mini, got %v", body["model"])
	}
	if body["max_completion_tokens"] != float64(1000) {
		t.Errorf("expected max_completion_tokens 1000, got %v", body["max_completion_tokens"])
	}
	if _, ok := body["max_tokens"]; ok {
		t.Error("max_tokens must not be sent alongside max_completion_tokens")
	}
	messages, _ := body["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	second, _ := messages[1].(map[string]any)
	if first["role"] != "system" || second["role"] != "user" || second["content"] != "hello" {
		t.Errorf("unexpected messages: %v", messages)
	}
}

func TestOpenAIProviderCompletesWithMaxTokens(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, body: chatResponseJSON}
	p := newTestProvider(t, fake, "gpt-4")

	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages:   []Message{{Role: RoleUser, Content: "hello"}},
		MaxTokens:  300,
		TokenParam: TokenParamMaxTokens,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := fake.got[0]
	if body["model"] != "gpt-4" {
		t.Errorf("expected provider default model gpt-4, got %v", body["model"])
	}
	if body["max_tokens"] != float64(300) {
		t.Errorf("expected max_tokens 300, got %v", body["max_tokens"])
	}
	if _, ok := body["max_completion_tokens"]; ok {
		t.Error("max_completion_tokens must not be sent alongside max_tokens")
	}
}

func TestOpenAIProviderSendsEmptyPromptContent(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, body: chatResponseJSON}
	p := newTestProvider(t, fake, "o4-mini")

	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{
			{Role: RoleSystem, Content: "be helpful"},
			{Role: RoleUser, Content: ""},
		},
		MaxTokens: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	messages, _ := fake.got[0]["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	second, _ := messages[1].(map[string]any)
	content, ok := second["content"]
	if !ok {
		t.Fatalf("user message sent without content field: %v", second)
	}
	if content != "" {
		t.Errorf("expected empty user content, got %v", content)
	}
	if first["content"] != "be helpful" {
		t.Errorf("system content changed: %v", first["content"])
	}
	if fake.got[0]["max_completion_tokens"] != float64(1000) {
		t.Errorf("expected other fields to survive, got %v", fake.got[0])
	}
}

func TestFillEmptyContent(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		changed bool
	}{
		{"missing content", `{"model":"m","messages":[{"role":"user"}]}`, true},
		{"content present", `{"model":"m","messages":[{"role":"user","content":"hi"}]}`, false},
		{"tool call message", `{"messages":[{"role":"assistant","tool_calls":[]}]}`, false},
		{"no messages", `{"model":"m"}`, false},
		{"not json", `plain`, false},
	}
	for _, tt := range tests {
		_, changed := fillEmptyContent([]byte(tt.body))
		if changed != tt.changed {
			t.Errorf("%s: changed = %v, want %v", tt.name, changed, tt.changed)
		}
	}
}

func TestOpenAIProviderNoChoices(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, body: `{"id":"x","object":"chat.completion","model":"o4-mini","choices":[]}`}
	p := newTestProvider(t, fake, "o4-mini")

	resp, err := p.Complete(context.Background(), CompletionRequest{MaxTokens: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.HasContent || resp.Content != "" {
		t.Errorf("expected no content, got %+v", resp)
	}
}

func TestOpenAIProviderNullContent(t *testing.T) {
	fake := &fakeOpenAI{status: http.StatusOK, body: `{"choices":[{"index":0,"message":{"role":"assistant","content":null},"finish_reason":"length"}]}`}
	p := newTestProvider(t, fake, "o4-mini")

	resp, err := p.Complete(context.Background(), CompletionRequest{MaxTokens: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.HasContent {
		t.Error("expected HasContent false for null content")
	}
	if resp.FinishReason != "length" {
		t.Errorf("expected finish reason 'length', got %q", resp.FinishReason)
	}
}

func TestOpenAIProviderReturnsAPIError(t *testing.T) {
	fake := &fakeOpenAI{
		status: http.StatusUnauthorized,
		body:   `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`,
	}
	p := newTestProvider(t, fake, "o4-mini")

	_, err := p.Complete(context.Background(), CompletionRequest{MaxTokens: 10})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *openai.APIError, got %T: %v", err, err)
	}
	if apiErr.HTTPStatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.HTTPStatusCode)
	}
	if len(fake.got) != 1 {
		t.Errorf("expected exactly one attempt, got %d", len(fake.got))
	}
}

func TestOpenAIProviderNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewOpenAIProvider("test-key", "o4-mini", url+"/v1", false, nil)
	if _, err := p.Complete(context.Background(), CompletionRequest{MaxTokens: 10}); err == nil {
		t.Error("expected error when the server is unreachable")
	}
}

func TestOpenAIProviderDebugLogsRawResponse(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fake := &fakeOpenAI{status: http.StatusOK, body: chatResponseJSON}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	p := NewOpenAIProvider("test-key", "o4-mini", srv.URL+"/v1", true, zap.New(core))
	if _, err := p.Complete(context.Background(), CompletionRequest{MaxTokens: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("raw completion response").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 debug entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["response"]; !ok {
		t.Error("expected response field in debug entry")
	}
}

func TestOpenAIProviderNoDebugLogWhenDisabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	fake := &fakeOpenAI{status: http.StatusOK, body: chatResponseJSON}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	p := NewOpenAIProvider("test-key", "o4-mini", srv.URL+"/v1", false, zap.New(core))
	if _, err := p.Complete(context.Background(), CompletionRequest{MaxTokens: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logs.Len() != 0 {
		t.Errorf("expected no log entries, got %d", logs.Len())
	}
}
