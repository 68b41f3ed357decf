package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Murasan201/openai-text-generator/internal/config"
	"github.com/Murasan201/openai-text-generator/internal/llm"
)

var costCmd = &cobra.Command{
	Use:   "cost [prompt]",
	Short: "Estimate the API cost of a prompt",
	Long:  `Estimates the input tokens of the request and its worst-case cost from the configured token bound without making any API call.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	prompt := config.SamplePrompt
	if len(args) > 0 {
		prompt = args[0]
	}

	inputTokens := llm.EstimateTokens(cfg.Instruction()) + llm.EstimateTokens(prompt)
	maxCost := llm.EstimateCost(cfg.Model, inputTokens, cfg.MaxTokens)
	param := llm.ResolveTokenParam(cfg.TokenParam, cfg.Model)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Cost Estimate")
	fmt.Fprintln(out, "=============")
	fmt.Fprintf(out, "Model:            %s\n", cfg.Model)
	fmt.Fprintf(out, "Token field:      %s\n", param)
	fmt.Fprintf(out, "Input tokens:     ~%d\n", inputTokens)
	fmt.Fprintf(out, "Max output:       %d\n", cfg.MaxTokens)
	if llm.KnownModel(cfg.Model) {
		fmt.Fprintf(out, "Max cost:         $%.6f\n", maxCost)
	} else {
		fmt.Fprintf(out, "Max cost:         unknown (no pricing for %s)\n", cfg.Model)
	}
	return nil
}
