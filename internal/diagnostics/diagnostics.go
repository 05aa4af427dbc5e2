// Package diagnostics runs advisory structural checks over a rule's parsed
// regex AST. Because every rule
// compiles to a DFA rather than a backtracking engine, the classic
// catastrophic-backtracking failure mode cannot occur at scan time; the
// risk that survives here is combinatorial blow-up in subset construction
// itself, when nested or overlapping quantifiers force the DFA to track
// exponentially many distinct NFA-state subsets.
package diagnostics

import (
	"fmt"

	"github.com/arjunvelu/lexgen/internal/regexast"
)

// Finding is one advisory observation about a rule's pattern. Findings never
// block lexer construction; callers decide what to do with them.
type Finding struct {
	RuleName   string
	Pattern    string
	Kind       string
	Severity   string
	Message    string
	Suggestion string
}

const (
	nestingDepthThreshold    = 5
	quantifierCountThreshold = 20
)

// Analyze walks node and returns every advisory finding for the rule named
// name with source pattern.
func Analyze(name, pattern string, node *regexast.Node) []Finding {
	var findings []Finding

	if depth := nestingDepth(node); depth > nestingDepthThreshold {
		findings = append(findings, Finding{
			RuleName: name,
			Pattern:  pattern,
			Kind:     "excessive_nesting",
			Severity: "medium",
			Message:  fmt.Sprintf("quantifier nesting depth %d exceeds %d", depth, nestingDepthThreshold),
			Suggestion: "flatten nested groups; deep nesting multiplies subset-construction states",
		})
	}

	if count := quantifierCount(node); count > quantifierCountThreshold {
		findings = append(findings, Finding{
			RuleName: name,
			Pattern:  pattern,
			Kind:     "too_many_quantifiers",
			Severity: "low",
			Message:  fmt.Sprintf("pattern has %d quantifiers (threshold %d)", count, quantifierCountThreshold),
			Suggestion: "split the rule into several smaller rules",
		})
	}

	findings = append(findings, detectNestedQuantifiers(name, pattern, node)...)
	findings = append(findings, detectOverlappingAlternation(name, pattern, node)...)

	return findings
}

func isQuantifier(n *regexast.Node) bool {
	switch n.Kind {
	case regexast.Star, regexast.Plus, regexast.Question:
		return true
	}
	return false
}

func hasQuantifier(n *regexast.Node) bool {
	if isQuantifier(n) {
		return true
	}
	for _, c := range n.Children {
		if hasQuantifier(c) {
			return true
		}
	}
	return false
}

func nestingDepth(n *regexast.Node) int {
	best := 0
	for _, c := range n.Children {
		if d := nestingDepth(c); d > best {
			best = d
		}
	}
	if isQuantifier(n) {
		return best + 1
	}
	return best
}

func quantifierCount(n *regexast.Node) int {
	count := 0
	if isQuantifier(n) {
		count = 1
	}
	for _, c := range n.Children {
		count += quantifierCount(c)
	}
	return count
}

// detectNestedQuantifiers flags constructs like (a+)+ or (a*)?, the shape
// that produces the largest subset-construction blow-up: a repetition whose
// body itself contains a repetition.
func detectNestedQuantifiers(name, pattern string, n *regexast.Node) []Finding {
	var findings []Finding
	if isQuantifier(n) {
		for _, c := range n.Children {
			if hasQuantifier(c) {
				findings = append(findings, Finding{
					RuleName:   name,
					Pattern:    pattern,
					Kind:       "nested_quantifiers",
					Severity:   "high",
					Message:    fmt.Sprintf("nested quantifier under %s", n.Kind),
					Suggestion: "rewrite as a single quantifier over the combined body",
				})
			}
		}
	}
	for _, c := range n.Children {
		findings = append(findings, detectNestedQuantifiers(name, pattern, c)...)
	}
	return findings
}

// detectOverlappingAlternation flags alternation branches whose sets of
// possible leading bytes intersect, a shape that widens the live NFA-state subsets the DFA must
// track while both branches stay viable.
func detectOverlappingAlternation(name, pattern string, n *regexast.Node) []Finding {
	var findings []Finding
	if n.Kind == regexast.Alternation && len(n.Children) >= 2 {
		for i := 0; i < len(n.Children); i++ {
			for j := i + 1; j < len(n.Children); j++ {
				if alphabetsOverlap(n.Children[i], n.Children[j]) {
					findings = append(findings, Finding{
						RuleName:   name,
						Pattern:    pattern,
						Kind:       "overlapping_alternation",
						Severity:   "medium",
						Message:    "alternation branches share leading bytes",
						Suggestion: "factor the common prefix out of the alternation",
					})
				}
			}
		}
	}
	for _, c := range n.Children {
		findings = append(findings, detectOverlappingAlternation(name, pattern, c)...)
	}
	return findings
}

func leadingBytes(n *regexast.Node, out map[byte]struct{}) {
	switch n.Kind {
	case regexast.Symbol:
		out[n.Char] = struct{}{}
	case regexast.CharClass:
		for _, c := range regexast.ExpandRange(n.Lo, n.Hi) {
			out[c] = struct{}{}
		}
	case regexast.Concat:
		if len(n.Children) > 0 {
			leadingBytes(n.Children[0], out)
		}
	case regexast.Alternation, regexast.Star, regexast.Plus, regexast.Question:
		for _, c := range n.Children {
			leadingBytes(c, out)
		}
	}
}

func alphabetsOverlap(a, b *regexast.Node) bool {
	as, bs := map[byte]struct{}{}, map[byte]struct{}{}
	leadingBytes(a, as)
	leadingBytes(b, bs)
	for c := range as {
		if _, ok := bs[c]; ok {
			return true
		}
	}
	return false
}
