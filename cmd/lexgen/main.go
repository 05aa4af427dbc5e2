// Command lexgen compiles a YAML rule spec into a lexer and tokenizes
// input against it.
package main

import (
	"fmt"
	"os"

	"github.com/arjunvelu/lexgen/internal/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
