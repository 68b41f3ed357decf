package llm

// modelPricing holds per-model pricing in USD per 1M tokens.
type modelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// priceTable maps model identifiers to their pricing.
var priceTable = map[string]modelPricing{
	"gpt-4":       {InputPerMillion: 30.00, OutputPerMillion: 60.00},
	"gpt-4-turbo": {InputPerMillion: 10.00, OutputPerMillion: 30.00},
	"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"o3-mini":     {InputPerMillion: 1.10, OutputPerMillion: 4.40},
	"o4-mini":     {InputPerMillion: 1.10, OutputPerMillion: 4.40},
}

// EstimateCost returns the estimated cost in USD for the given model and token counts.
// Returns 0 if the model is not found in the price table.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	pricing, ok := priceTable[model]
	if !ok {
		return 0
	}

	inputCost := float64(inputTokens) / 1_000_000.0 * pricing.InputPerMillion
	outputCost := float64(outputTokens) / 1_000_000.0 * pricing.OutputPerMillion
	return inputCost + outputCost
}

// KnownModel reports whether model has an entry in the price table.
func KnownModel(model string) bool {
	_, ok := priceTable[model]
	return ok
}

// EstimateTokens provides a rough token count estimation for the given text.
// Uses the approximation of 1 token per 4 bytes.
func EstimateTokens(text string) int {
	n := len(text) / 4
	if n == 0 && len(text) > 0 {
		return 1
	}
	return n
}
