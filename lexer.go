package lexgen

import (
	"github.com/arjunvelu/lexgen/internal/automaton"
	"github.com/arjunvelu/lexgen/internal/diagnostics"
	"github.com/arjunvelu/lexgen/internal/regexast"
	"github.com/arjunvelu/lexgen/internal/scanner"
)

// Lexer tokenizes input under the rules it was built from, using maximal
// munch with earlier rules winning length ties.
type Lexer struct {
	rules    []Rule
	scan     *scanner.Scanner
	findings []diagnostics.Finding
}

// New compiles rules into a Lexer: each pattern is parsed into an AST,
// Thompson-compiled to an NFA, unioned with every other rule's NFA under a
// shared start state, and subset-constructed into a single DFA.
func New(rules []Rule, opts ...Options) (*Lexer, error) {
	if len(rules) == 0 {
		return nil, ErrEmptySpec
	}
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if _, dup := seen[r.Name]; dup {
			return nil, ErrDuplicateRuleName
		}
		seen[r.Name] = struct{}{}
	}

	parser := regexast.NewParser()
	nodes := make([]*regexast.Node, len(rules))
	nfas := make([]*automaton.NFA, len(rules))
	ruleNames := make([]string, len(rules))

	for i, r := range rules {
		node, err := parser.Parse(r.Pattern)
		if err != nil {
			pe, _ := err.(*regexast.ParseError)
			me := &MalformedRegexError{RuleName: r.Name, RuleIdx: i}
			if pe != nil {
				me.Offset = pe.Offset
				me.Reason = pe.Reason
			} else {
				me.Reason = err.Error()
			}
			return nil, me
		}
		nodes[i] = node
		nfas[i] = automaton.Compile(node)
		ruleNames[i] = r.Name
	}

	unified, finalToRule := automaton.Unite(nfas)
	dfa := automaton.Build(unified)

	lx := &Lexer{
		rules: rules,
		scan:  scanner.New(dfa, finalToRule, ruleNames),
	}

	if opt.WarnOnUnsafeRules {
		for i, r := range rules {
			lx.findings = append(lx.findings, diagnostics.Analyze(r.Name, r.Pattern, nodes[i])...)
		}
	}

	return lx, nil
}

// Scan tokenizes input in full under maximal munch. On failure it returns
// the same error scanner.Scan would have, describing where and why
// tokenization broke down; no partial token list is returned in that case.
func (lx *Lexer) Scan(input string) ([]Token, error) {
	return lx.scan.Scan(input)
}

// Findings returns the advisory diagnostics collected at construction time,
// or nil if Options.WarnOnUnsafeRules was false.
func (lx *Lexer) Findings() []diagnostics.Finding {
	return lx.findings
}

// Matches reports whether s, scanned on its own, reduces to exactly one
// token recognized by the named rule and spanning the entire string.
func (lx *Lexer) Matches(ruleName, s string) bool {
	tokens, err := lx.scan.Scan(s)
	if err != nil || len(tokens) != 1 {
		return false
	}
	return tokens[0].Name == ruleName && tokens[0].Lexeme == s
}
