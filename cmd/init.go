package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Murasan201/openai-text-generator/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize textgen configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose a request preset and writes the result to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
