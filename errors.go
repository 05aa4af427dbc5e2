package lexgen

import (
	"errors"
	"fmt"

	"github.com/arjunvelu/lexgen/internal/regexast"
	"github.com/arjunvelu/lexgen/internal/scanner"
)

// Sentinel errors returned by New and Scan. Use errors.Is to test for them;
// a MalformedRegexError additionally unwraps to ErrMalformedRegex.
var (
	ErrMalformedRegex    = regexast.ErrMalformed
	ErrEmptySpec         = errors.New("lexgen: no rules given")
	ErrDuplicateRuleName = errors.New("lexgen: duplicate rule name")
	ErrUnrecognizedInput = scanner.ErrUnrecognizedInput
	ErrUnexpectedEOF     = scanner.ErrUnexpectedEOF
)

// MalformedRegexError reports which rule failed to parse and where.
type MalformedRegexError struct {
	RuleName string
	RuleIdx  int
	Offset   int
	Reason   string
}

func (e *MalformedRegexError) Error() string {
	return fmt.Sprintf("lexgen: rule %q (index %d): %s at offset %d", e.RuleName, e.RuleIdx, e.Reason, e.Offset)
}

func (e *MalformedRegexError) Unwrap() error { return ErrMalformedRegex }

// ScanError reports where Scan gave up on an input, with the same line/column
// semantics as the scanner package.
type ScanError = scanner.ScanError
