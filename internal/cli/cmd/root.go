// Package cmd implements the lexgen CLI: compile, tokenize, and lint
// subcommands over a YAML rule spec file, grounded on the teacher's
// internal/cli/cmd/root.go (persistent flags + cobra.OnInitialize shape).
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outputFormat string
	noColor      bool
	specPath     string
)

// rootCmd is the base command when lexgen is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "lexgen",
	Short: "Compile regex rule specs into a DFA and tokenize input against it",
	Long: `lexgen builds a deterministic lexer from an ordered list of
(token-name, regex) rules loaded from a YAML spec file, and tokenizes input
under maximal munch with ordered tie-breaking between rules.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.PersistentFlags().StringVarP(&specPath, "spec", "s", "", "Path to the YAML rule spec file")
}

func initConfig() {
	if noColor {
		os.Setenv("NO_COLOR", "1")
	}
}
