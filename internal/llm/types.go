package llm

import "strings"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role
	Content string
}

// TokenParam selects the request field that carries MaxTokens.
type TokenParam string

const (
	// TokenParamAuto picks the field from the model family.
	TokenParamAuto TokenParam = "auto"
	// TokenParamMaxTokens sends the bound as max_tokens.
	TokenParamMaxTokens TokenParam = "max_tokens"
	// TokenParamMaxCompletionTokens sends the bound as max_completion_tokens.
	TokenParamMaxCompletionTokens TokenParam = "max_completion_tokens"
)

// reasoningPrefixes are model families that reject max_tokens.
var reasoningPrefixes = []string{"o1", "o3", "o4", "gpt-5"}

// ResolveTokenParam returns the concrete field for param and model. Empty
// and auto resolve by model family.
func ResolveTokenParam(param TokenParam, model string) TokenParam {
	switch param {
	case TokenParamMaxTokens, TokenParamMaxCompletionTokens:
		return param
	}
	for _, prefix := range reasoningPrefixes {
		if strings.HasPrefix(model, prefix) {
			return TokenParamMaxCompletionTokens
		}
	}
	return TokenParamMaxTokens
}

// CompletionRequest contains the parameters for an LLM completion request.
type CompletionRequest struct {
	Model      string
	Messages   []Message
	MaxTokens  int
	TokenParam TokenParam
}

// CompletionResponse contains the result of an LLM completion request.
// HasContent is false when the service returned no choice or a choice
// without content.
type CompletionResponse struct {
	Content      string
	HasContent   bool
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}
