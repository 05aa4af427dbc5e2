package lexgen

import "github.com/arjunvelu/lexgen/internal/scanner"

// Rule pairs a token name with the regex source that recognizes it. Rules
// are matched in the order given: when two rules' longest matches tie in
// length, the earlier rule in this slice wins.
type Rule struct {
	Name    string
	Pattern string
}

// Token is one (rule name, lexeme) pair produced by Scan.
type Token = scanner.Token

// Options configures lexer construction.
type Options struct {
	// WarnOnUnsafeRules runs the advisory diagnostics pass over every
	// rule's pattern at construction time; findings are non-blocking and
	// retrievable afterward via Lexer.Findings.
	WarnOnUnsafeRules bool
}
