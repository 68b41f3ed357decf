package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	variant string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textgen",
	Short: "Generate text from a single prompt with an OpenAI chat model",
	Long: `textgen sends a prompt together with a fixed system instruction to an
OpenAI-compatible chat completion endpoint and prints the trimmed answer.
Without a subcommand it runs the generate demo with the built-in sample prompt.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotEnv(envFile)
	},
	RunE: runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".textgen.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment when present")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "request preset: legacy, mini, mini-ja")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (enables debug logging)")
	addGenerateFlags(rootCmd)
}

// loadDotEnv loads path into the process environment. A missing file is
// not an error; variables already set are not overridden.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
