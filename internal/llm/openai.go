package llm

import (
	"context"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIProvider implements Provider using the OpenAI Chat Completions API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	debug  bool
	logger *zap.Logger
}

// NewOpenAIProvider creates a new OpenAI provider. An empty baseURL uses
// the public OpenAI endpoint.
func NewOpenAIProvider(apiKey, model, baseURL string, debug bool, logger *zap.Logger) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Transport: contentTransport{base: http.DefaultTransport}}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		debug:  debug,
		logger: logger,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	apiReq := p.buildRequest(req)

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	if p.debug {
		p.logger.Debug("raw completion response", zap.Any("response", resp))
	}

	out := &CompletionResponse{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		out.Content = choice.Message.Content
		out.HasContent = choice.Message.Content != ""
		out.FinishReason = string(choice.FinishReason)
	}
	return out, nil
}

// buildRequest maps req onto the wire request. Exactly one of MaxTokens
// and MaxCompletionTokens is set.
func (p *OpenAIProvider) buildRequest(req CompletionRequest) openai.ChatCompletionRequest {
	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	switch ResolveTokenParam(req.TokenParam, model) {
	case TokenParamMaxCompletionTokens:
		apiReq.MaxCompletionTokens = req.MaxTokens
	default:
		apiReq.MaxTokens = req.MaxTokens
	}

	return apiReq
}
