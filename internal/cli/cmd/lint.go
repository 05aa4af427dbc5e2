package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunvelu/lexgen/internal/cliutil/output"
	"github.com/arjunvelu/lexgen/internal/specfile"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run advisory structural checks over every rule's pattern",
	Long: `Lint flags rule patterns with the AST shapes that make subset
construction expensive (nested quantifiers, overlapping alternation
branches) without blocking compilation.`,
	Example: `  lexgen lint --spec rules.yaml`,
	Run:     runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&warnUnsafe, "warn-unsafe", true, "run the diagnostics pass")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) {
	formatter := output.NewFormatter(outputFormat, noColor)

	rules, err := specfile.Load(specPath)
	if err != nil {
		formatter.PrintError("loading spec: %v", err)
		os.Exit(1)
	}

	lx, err := buildLexer(rules)
	if err != nil {
		formatter.PrintError("compiling rules: %v", err)
		os.Exit(1)
	}

	if err := formatter.FormatFindings(lx.Findings()); err != nil {
		formatter.PrintError("formatting output: %v", err)
		os.Exit(1)
	}
}
