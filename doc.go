/*
Package lexgen compiles an ordered list of (token-name, regex-source) rules
into a deterministic finite automaton and tokenizes input strings against it
under maximal munch, with ordered tie-breaking between rules that accept the
same longest lexeme.

# Overview

Given a spec of rules, lexgen runs the classic pipeline: each rule's regex
source is parsed into an AST, Thompson-constructed into an NFA, the per-rule
NFAs are unioned under a single fresh start state while rule identity is
preserved, and the union NFA is turned into a DFA via subset construction.
Scanning an input string walks that DFA once per token, tracking the longest
accepting position seen so far (maximal munch) and falling back to it the
moment the walk reaches a dead (sink) state.

# Quick Start

	import "github.com/arjunvelu/lexgen"

	lx, err := lexgen.New([]lexgen.Rule{
	    {Name: "IF", Pattern: "if"},
	    {Name: "ID", Pattern: "[a-z]+"},
	})
	if err != nil {
	    log.Fatal(err)
	}

	tokens, err := lx.Scan("ifier")
	if err != nil {
	    log.Fatal(err)
	}
	for _, tok := range tokens {
	    fmt.Printf("%s: %q\n", tok.Name, tok.Lexeme)
	}

# Regex Source Surface

	Construct    Surface   Semantics
	---------    -------   ---------
	Literal      c         itself
	Escape       \X        X as a literal, even if X is a metachar
	Epsilon      eps       the empty string
	Class        [a-b]     any single char in the inclusive range a..b
	Group        ( R )     parenthesized R
	Alternation  R|S       R or S
	Kleene       R*        zero or more R
	Plus         R+        one or more R
	Option       R?        zero or one R
	Space        ' '       a literal space, same as any other character

Anchors, back-references, lookaround, lazy quantifiers, and Unicode property
classes are not part of this surface.

# Rule Ordering

Rule order is the sole tie-breaker: when several rules accept the same
longest lexeme at a position, the name of the earliest rule in the spec
wins. This makes keyword-before-identifier rule orderings ("if" before
"[a-z]+") behave the way a hand-written lexer would.

# Errors

Lexer construction fails with a *MalformedRegexError (wrapping
ErrMalformedRegex) when a rule's regex source has unbalanced groups or
brackets, a malformed character class, or an operator with no operand.
Scanning fails with ErrUnrecognizedInput or ErrUnexpectedEOF when the DFA
walk reaches a dead state, or runs out of input, with no accepting position
since the last emitted token; in both cases the returned token slice holds
exactly one pair whose Name is empty and whose Lexeme is the descriptive
message, matching the error returned alongside it.

# Diagnostics

The internal/diagnostics package (wired through Options.WarnOnUnsafeRules)
flags individual rules whose AST has the ambiguity shapes that make
backtracking engines catastrophically slow: nested quantifiers, alternation
branches that can start with the same byte. lexgen's own scanner never
backtracks, so these shapes never cause a runtime blowup here; the warning
exists because the same regex source is often reused verbatim in contexts
that do backtrack.

# Version Information

	fmt.Println(lexgen.FullVersion())
*/
package lexgen
