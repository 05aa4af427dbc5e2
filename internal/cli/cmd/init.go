package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunvelu/lexgen/internal/cliutil/output"
	"github.com/arjunvelu/lexgen/internal/specfile"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Write a sample rule spec file to --spec",
	Example: `  lexgen init --spec rules.yaml`,
	Run:     runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	formatter := output.NewFormatter(outputFormat, noColor)

	path := specPath
	if path == "" {
		path = "rules.yaml"
	}

	if err := specfile.GenerateSample(path); err != nil {
		formatter.PrintError("writing sample spec: %v", err)
		os.Exit(1)
	}
}
