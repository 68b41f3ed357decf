// Package responder turns a single prompt into generated text.
package responder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Murasan201/openai-text-generator/internal/llm"
)

// Settings holds the fixed parameters of every request a Responder sends.
type Settings struct {
	Model        string
	MaxTokens    int
	TokenParam   llm.TokenParam
	SystemPrompt string
	FallbackText string
}

// Responder sends a prompt with a fixed system instruction and returns the
// cleaned response text.
type Responder struct {
	provider llm.Provider
	settings Settings
	logger   *zap.Logger
}

// New creates a Responder. A nil logger discards log output.
func New(settings Settings, provider llm.Provider, logger *zap.Logger) (*Responder, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if settings.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if settings.MaxTokens <= 0 {
		return nil, fmt.Errorf("max tokens must be positive")
	}
	if strings.TrimSpace(settings.FallbackText) == "" {
		return nil, fmt.Errorf("fallback text is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{
		provider: provider,
		settings: settings,
		logger:   logger,
	}, nil
}

// BuildRequest returns the request GenerateText sends for prompt: the system
// instruction followed by the prompt as the user message, verbatim.
func (r *Responder) BuildRequest(prompt string) llm.CompletionRequest {
	return llm.CompletionRequest{
		Model: r.settings.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: r.settings.SystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:  r.settings.MaxTokens,
		TokenParam: r.settings.TokenParam,
	}
}

// GenerateText sends prompt to the provider once and returns the trimmed
// content. It returns the fallback text when the response carries no
// content. A nil error always comes with a non-empty string.
func (r *Responder) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := r.BuildRequest(prompt)
	log := r.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("provider", r.provider.Name()),
		zap.String("model", req.Model),
	)
	log.Debug("sending completion request",
		zap.Int("max_tokens", req.MaxTokens),
		zap.String("token_param", string(llm.ResolveTokenParam(req.TokenParam, req.Model))),
		zap.Int("prompt_bytes", len(prompt)),
	)

	start := time.Now()
	resp, err := r.provider.Complete(ctx, req)
	if err != nil {
		log.Debug("completion request failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return "", &RemoteError{Provider: r.provider.Name(), Model: req.Model, Err: err}
	}

	if resp == nil {
		resp = &llm.CompletionResponse{}
	}

	log.Debug("completion request finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("input_tokens", resp.InputTokens),
		zap.Int("output_tokens", resp.OutputTokens),
		zap.String("finish_reason", resp.FinishReason),
		zap.Float64("estimated_cost_usd", llm.EstimateCost(req.Model, resp.InputTokens, resp.OutputTokens)),
	)

	text := strings.TrimSpace(resp.Content)
	if !resp.HasContent || text == "" {
		log.Debug("empty completion, using fallback text")
		return r.settings.FallbackText, nil
	}
	return text, nil
}
