package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to textgen! Let's configure the request settings.")
	fmt.Println()

	variantPrompt := promptui.Select{
		Label: "Select variant",
		Items: []string{
			"mini    — o4-mini, max_completion_tokens=1000, English",
			"mini-ja — o4-mini, max_completion_tokens=1000, Japanese",
			"legacy  — gpt-4, max_tokens=300, debug output",
		},
	}
	variantIdx, _, err := variantPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("variant selection: %w", err)
	}
	variants := []Variant{VariantMini, VariantMiniJA, VariantLegacy}

	cfg := DefaultConfig()
	cfg.ApplyVariant(variants[variantIdx])

	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: cfg.Model,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	cfg.Model = model

	tokensPrompt := promptui.Prompt{
		Label:   "Maximum output tokens",
		Default: strconv.Itoa(cfg.MaxTokens),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return fmt.Errorf("must be a positive integer")
			}
			return nil
		},
	}
	tokensStr, err := tokensPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("max tokens: %w", err)
	}
	cfg.MaxTokens, _ = strconv.Atoi(tokensStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv(cfg.APIKeyEnv) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running textgen generate.\n", cfg.APIKeyEnv)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
