// Package output formats tokens, scan errors, and lint findings for the
// lexgen CLI, grounded on the teacher's internal/cli/output/formatter.go:
// same writer/format/noColor shape, same colorize/severity-symbol helpers,
// text and JSON render modes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/arjunvelu/lexgen"
	"github.com/arjunvelu/lexgen/internal/diagnostics"
)

// Formatter renders lexgen CLI output in text or JSON.
type Formatter struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewFormatter creates a Formatter writing to stdout.
func NewFormatter(format string, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{writer: os.Stdout, format: format, noColor: noColor}
}

// FormatTokens renders the tokens produced by a successful scan.
func (f *Formatter) FormatTokens(tokens []lexgen.Token) error {
	if f.format == "json" {
		enc := json.NewEncoder(f.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}
	for _, tok := range tokens {
		fmt.Fprintf(f.writer, "%s %q\n", f.colorize(tok.Name, color.FgCyan), tok.Lexeme)
	}
	return nil
}

// FormatFindings renders the advisory findings from Lexer.Findings.
func (f *Formatter) FormatFindings(findings []diagnostics.Finding) error {
	if f.format == "json" {
		enc := json.NewEncoder(f.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(findings)
	}
	if len(findings) == 0 {
		fmt.Fprintf(f.writer, "%s no structural concerns found\n", f.colorize("✓", color.FgGreen))
		return nil
	}
	for _, finding := range findings {
		fmt.Fprintf(f.writer, "%s rule %s: %s\n", f.severitySymbol(finding.Severity), finding.RuleName, finding.Message)
		if finding.Suggestion != "" {
			fmt.Fprintf(f.writer, "    suggestion: %s\n", finding.Suggestion)
		}
	}
	return nil
}

func (f *Formatter) colorize(text string, attr color.Attribute) string {
	if f.noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

func (f *Formatter) severitySymbol(severity string) string {
	switch severity {
	case "high":
		return f.colorize("⛔", color.FgRed)
	case "medium":
		return f.colorize("⚠", color.FgYellow)
	default:
		return f.colorize("ℹ", color.FgCyan)
	}
}

// PrintError prints an error message to stderr.
func (f *Formatter) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", f.colorize("Error:", color.FgRed), msg)
}

// PrintWarning prints a warning message to the formatter's writer.
func (f *Formatter) PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Warning:", color.FgYellow), msg)
}
