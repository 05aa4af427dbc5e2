package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunvelu/lexgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(lexgen.FullVersion())
}
