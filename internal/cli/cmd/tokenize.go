package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunvelu/lexgen/internal/cliutil/output"
	"github.com/arjunvelu/lexgen/internal/specfile"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <input>",
	Short: "Tokenize an input string under the rule spec's maximal-munch lexer",
	Example: `  lexgen tokenize --spec rules.yaml "if foo"`,
	Args: cobra.ExactArgs(1),
	Run:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) {
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

	tokens, err := lx.Scan(args[0])
	if err != nil {
		formatter.PrintError("%v", err)
		os.Exit(1)
	}

	if err := formatter.FormatTokens(tokens); err != nil {
		formatter.PrintError("formatting output: %v", err)
		os.Exit(1)
	}
}
