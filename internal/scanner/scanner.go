// Package scanner implements maximal-munch tokenization over a compiled
// DFA, per spec.md §4.5-§4.6: per-token DFA walk tracking the longest
// accepting position seen so far, sink-triggered stop, and ordered
// tie-break by minimum rule index.
package scanner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arjunvelu/lexgen/internal/automaton"
)

// Token is one (rule-name, lexeme) pair. On a scan error the single Token
// returned has an empty Name and an Lexeme holding the descriptive message,
// matching the error returned alongside it.
type Token struct {
	Name   string
	Lexeme string
}

// Sentinel scan-time errors, per spec.md §7.
var (
	ErrUnrecognizedInput = errors.New("unrecognized input")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
)

// ScanError reports where tokenization broke down.
type ScanError struct {
	Err    error // ErrUnrecognizedInput or ErrUnexpectedEOF
	Line   int
	Column int // -1 for the EOF case, where there is no column
}

func (e *ScanError) Error() string {
	if errors.Is(e.Err, ErrUnexpectedEOF) {
		return fmt.Sprintf("No viable alternative at character EOF, line %d", e.Line)
	}
	return fmt.Sprintf("No viable alternative at character %d, line %d", e.Column, e.Line)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Scanner walks a compiled DFA over an input string under maximal munch.
type Scanner struct {
	dfa         *automaton.DFA
	finalToRule map[int]int
	ruleNames   []string
	sinks       map[int]struct{}
}

// New builds a Scanner. ruleNames[i] is the token name emitted when the
// winning accept state maps to rule index i via finalToRule. Sinks are
// computed once here, per spec.md §4.4's "Lexer precomputes all sinks at
// construction time", rather than re-derived on every step of the walk.
func New(dfa *automaton.DFA, finalToRule map[int]int, ruleNames []string) *Scanner {
	return &Scanner{dfa: dfa, finalToRule: finalToRule, ruleNames: ruleNames, sinks: dfa.Sinks()}
}

// Scan tokenizes input under maximal munch, returning the ordered tokens on
// success. On failure it returns a single Token whose Lexeme is the error
// message alongside a non-nil *ScanError describing the same failure.
func (s *Scanner) Scan(input string) ([]Token, error) {
	var tokens []Token

	line := 0
	lineStart := 0
	start := 0

	for start < len(input) {
		state := s.dfa.Start
		cursor := start

		type accept struct {
			end   int
			state int
		}
		var last *accept
		hitSink := false

		for cursor < len(input) {
			ch := input[cursor]
			next, ok := s.dfa.Step(state, ch)
			if !ok {
				hitSink = true
				break
			}
			if _, sink := s.sinks[next]; sink {
				hitSink = true
				break
			}
			cursor++
			if s.dfa.IsAccepting(next) {
				last = &accept{end: cursor, state: next}
			}
			state = next
		}

		if last == nil {
			if hitSink {
				return errToken(&ScanError{
					Err:    ErrUnrecognizedInput,
					Line:   line,
					Column: cursor - lineStart,
				})
			}
			return errToken(&ScanError{Err: ErrUnexpectedEOF, Line: line, Column: -1})
		}

		name, ok := s.selectRule(last.state)
		if !ok {
			return errToken(&ScanError{
				Err:    ErrUnrecognizedInput,
				Line:   line,
				Column: start - lineStart,
			})
		}

		lexeme := input[start:last.end]
		tokens = append(tokens, Token{Name: name, Lexeme: lexeme})

		// Line/column bookkeeping advances only over the accepted lexeme,
		// not over characters scanned-but-rolled-back while probing for a
		// longer match; a \n that ends up outside the final accepted
		// prefix must not move the line counter.
		if nl := strings.LastIndexByte(lexeme, '\n'); nl >= 0 {
			line += strings.Count(lexeme, "\n")
			lineStart = start + nl + 1
		}

		start = last.end
	}

	return tokens, nil
}

// selectRule picks the minimum rule index among every NFA accept state
// folded into dfaState, per spec.md §4.6's ordered tie-break.
func (s *Scanner) selectRule(dfaState int) (string, bool) {
	best := -1
	for ns := range s.dfa.NFAStates(dfaState) {
		if ruleIdx, ok := s.finalToRule[ns]; ok {
			if best == -1 || ruleIdx < best {
				best = ruleIdx
			}
		}
	}
	if best == -1 {
		return "", false
	}
	return s.ruleNames[best], true
}

func errToken(err *ScanError) ([]Token, error) {
	return []Token{{Name: "", Lexeme: err.Error()}}, err
}
