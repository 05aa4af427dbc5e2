package cmd

import "github.com/arjunvelu/lexgen"

var warnUnsafe bool

func buildLexer(rules []lexgen.Rule) (*lexgen.Lexer, error) {
	return lexgen.New(rules, lexgen.Options{WarnOnUnsafeRules: warnUnsafe})
}
