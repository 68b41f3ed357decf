package config

import "github.com/Murasan201/openai-text-generator/internal/llm"

// DefaultAPIKeyEnv is the environment variable holding the service credential.
const DefaultAPIKeyEnv = "OPENAI_API_KEY"

// SamplePrompt is the prompt used by the demo when none is given.
const SamplePrompt = "LLMの最新の技術動向について200文字程度で教えてください。"

// VariantPreset describes the request settings of a variant.
type VariantPreset struct {
	Model      string
	MaxTokens  int
	TokenParam llm.TokenParam
	Language   Language
	Debug      bool
}

var variantPresets = map[Variant]VariantPreset{
	VariantLegacy: {Model: "gpt-4", MaxTokens: 300, TokenParam: llm.TokenParamMaxTokens, Language: LanguageEnglish, Debug: true},
	VariantMini:   {Model: "o4-mini", MaxTokens: 1000, TokenParam: llm.TokenParamMaxCompletionTokens, Language: LanguageEnglish},
	VariantMiniJA: {Model: "o4-mini", MaxTokens: 1000, TokenParam: llm.TokenParamMaxCompletionTokens, Language: LanguageJapanese},
}

var systemPrompts = map[Language]string{
	LanguageEnglish: "You are a helpful assistant who provides detailed and informative responses. " +
		"Please elaborate on the latest technological trends with examples when possible. " +
		"Ensure your response is complete and not empty.",
	LanguageJapanese: "あなたは詳細で有益な回答を提供する親切なアシスタントです。" +
		"可能な限り具体例を交えて最新の技術動向を詳しく説明してください。" +
		"回答は必ず完結させ、空にしないでください。",
}

var fallbackTexts = map[Language]string{
	LanguageEnglish:  "No response was generated. Please try again.",
	LanguageJapanese: "応答が生成されませんでした。もう一度お試しください。",
}

// DefaultConfig returns a Config set up for the mini variant.
func DefaultConfig() *Config {
	cfg := &Config{APIKeyEnv: DefaultAPIKeyEnv}
	cfg.ApplyVariant(VariantMini)
	return cfg
}

// ApplyVariant overwrites the request settings with those of v. Unknown
// variants only set the Variant field so Validate can report them.
func (c *Config) ApplyVariant(v Variant) {
	c.Variant = v
	p, ok := variantPresets[v]
	if !ok {
		return
	}
	c.Model = p.Model
	c.MaxTokens = p.MaxTokens
	c.TokenParam = p.TokenParam
	c.Language = p.Language
	c.Debug = p.Debug
}

// Instruction returns the configured system instruction, or the built-in
// one for the configured language.
func (c *Config) Instruction() string {
	if c.SystemPrompt != "" {
		return c.SystemPrompt
	}
	return systemPrompts[c.Language]
}

// Fallback returns the sentence used when the model produces no content.
func (c *Config) Fallback() string {
	if c.FallbackText != "" {
		return c.FallbackText
	}
	return fallbackTexts[c.Language]
}
