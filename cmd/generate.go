package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Murasan201/openai-text-generator/internal/config"
	"github.com/Murasan201/openai-text-generator/internal/logging"
	"github.com/Murasan201/openai-text-generator/internal/progress"
)

var separatorLine = strings.Repeat("=", 50)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Send a prompt and print the generated text",
	Long: `Sends the prompt (or the built-in sample prompt when none is given) with the
configured system instruction and prints the prompt followed by the generated text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("separators", false, "print separator lines around the output (default depends on variant)")
	cmd.Flags().Bool("no-spinner", false, "do not show a spinner while waiting for the model")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Fail on a missing credential before anything touches the network.
	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	provider, err := createLLMProviderFromConfig(cfg, apiKey, logger)
	if err != nil {
		return fmt.Errorf("creating LLM provider: %w", err)
	}

	responder, err := createResponderFromConfig(cfg, provider, logger)
	if err != nil {
		return fmt.Errorf("creating responder: %w", err)
	}

	prompt := config.SamplePrompt
	if len(args) > 0 {
		prompt = args[0]
	}

	separators := cfg.Variant != config.VariantLegacy
	if cmd.Flags().Changed("separators") {
		separators, _ = cmd.Flags().GetBool("separators")
	}
	noSpinner, _ := cmd.Flags().GetBool("no-spinner")

	out := cmd.OutOrStdout()
	if separators {
		fmt.Fprintln(out, separatorLine)
	}
	fmt.Fprintln(out, "Prompt:", prompt)
	if separators {
		fmt.Fprintln(out, separatorLine)
	}

	var reporter progress.Reporter = progress.NopReporter{}
	if !noSpinner {
		reporter = progress.NewReporter(os.Stderr)
	}
	reporter.Start(fmt.Sprintf("Waiting for %s", cfg.Model))
	text, err := responder.GenerateText(ctx, prompt)
	reporter.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Generated Text:")
	fmt.Fprintln(out, text)
	if separators {
		fmt.Fprintln(out, separatorLine)
	}
	return nil
}
