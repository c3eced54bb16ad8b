// Package cmd provides the command-line interface for Parametric.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "parametric",
	Short: "Parametric is the entry point for model-definition tooling.",
	Long: `Parametric is the entry point for tooling around bounds-checked ` +
		`model parameters. It currently accepts and ignores residual ` +
		`arguments; subcommands will be added as tooling lands.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// Residual arguments are accepted and ignored.
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file is optional.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
