package cmd

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/arjunvelu/lexgen/internal/cliutil/output"
	"github.com/arjunvelu/lexgen/internal/specfile"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the rule spec and report success or a malformed-rule error",
	Example: `  lexgen compile --spec rules.yaml`,
	Run:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) {
	formatter := output.NewFormatter(outputFormat, noColor)

	rules, err := specfile.Load(specPath)
	if err != nil {
		formatter.PrintError("loading spec: %v", err)
		os.Exit(1)
	}

	if _, err := buildLexer(rules); err != nil {
		formatter.PrintError("compiling rules: %v", err)
		os.Exit(1)
	}

	gologger.Info().Msgf("compiled %d rules successfully", len(rules))
}
