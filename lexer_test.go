package lexgen

import (
	"errors"
	"testing"
)

func TestNewRejectsEmptySpec(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmptySpec) {
		t.Fatalf("want ErrEmptySpec, got %v", err)
	}
}

func TestNewRejectsDuplicateRuleNames(t *testing.T) {
	_, err := New([]Rule{{Name: "A", Pattern: "a"}, {Name: "A", Pattern: "b"}})
	if !errors.Is(err, ErrDuplicateRuleName) {
		t.Fatalf("want ErrDuplicateRuleName, got %v", err)
	}
}

func TestNewRejectsMalformedRegex(t *testing.T) {
	_, err := New([]Rule{{Name: "A", Pattern: "(a"}})
	var me *MalformedRegexError
	if !errors.As(err, &me) {
		t.Fatalf("want *MalformedRegexError, got %v", err)
	}
	if me.RuleName != "A" || me.RuleIdx != 0 {
		t.Fatalf("got %+v", me)
	}
	if !errors.Is(err, ErrMalformedRegex) {
		t.Fatal("MalformedRegexError should unwrap to ErrMalformedRegex")
	}
}

// scenario 1: a single keyword rule.
func TestScenarioSingleKeyword(t *testing.T) {
	lx, err := New([]Rule{{Name: "IF", Pattern: "if"}})
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lx.Scan("if")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{{Name: "IF", Lexeme: "if"}}
	assertTokens(t, toks, want)
}

// scenario 2: repeated whitespace yields one token per run-length-one match.
func TestScenarioRepeatedWhitespace(t *testing.T) {
	lx, err := New([]Rule{{Name: "WS", Pattern: " "}})
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lx.Scan("   ")
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{{Name: "WS", Lexeme: " "}, {Name: "WS", Lexeme: " "}, {Name: "WS", Lexeme: " "}}
	assertTokens(t, toks, want)
}

// scenario 4: keyword-before-identifier ordering, maximal munch favors the
// longer identifier match even though IF also matches a prefix.
func TestScenarioKeywordVsIdentifier(t *testing.T) {
	lx, err := New([]Rule{
		{Name: "IF", Pattern: "if"},
		{Name: "ID", Pattern: "[a-z]+"},
	})
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lx.Scan("ifier")
	if err != nil {
		t.Fatal(err)
	}
	assertTokens(t, toks, []Token{{Name: "ID", Lexeme: "ifier"}})

	toks, err = lx.Scan("if")
	if err != nil {
		t.Fatal(err)
	}
	assertTokens(t, toks, []Token{{Name: "IF", Lexeme: "if"}})
}

// scenario 6: mid-input sink with no active accept surfaces
// ErrUnrecognizedInput and the accumulated tokens are discarded.
func TestScenarioUnrecognizedInput(t *testing.T) {
	lx, err := New([]Rule{
		{Name: "A", Pattern: "a+"},
		{Name: "B", Pattern: "b"},
	})
	if err != nil {
		t.Fatal(err)
	}
	toks, err := lx.Scan("aab?")
	if !errors.Is(err, ErrUnrecognizedInput) {
		t.Fatalf("want ErrUnrecognizedInput, got %v", err)
	}
	if len(toks) != 1 || toks[0].Name != "" {
		t.Fatalf("on error, result must be exactly one empty-name pair, got %+v", toks)
	}
}

// scenario 8: running out of input mid-match surfaces ErrUnexpectedEOF.
func TestScenarioUnexpectedEOF(t *testing.T) {
	lx, err := New([]Rule{{Name: "AB", Pattern: "ab"}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = lx.Scan("a")
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("want ErrUnexpectedEOF, got %v", err)
	}
}

func TestMatchesRequiresWholeStringToken(t *testing.T) {
	lx, err := New([]Rule{{Name: "AB", Pattern: "ab"}})
	if err != nil {
		t.Fatal(err)
	}
	if !lx.Matches("AB", "ab") {
		t.Error("ab should match AB")
	}
	if lx.Matches("AB", "a") || lx.Matches("AB", "abc") {
		t.Error("partial and over-long input should not match")
	}
}

func TestDeterministicAcrossCalls(t *testing.T) {
	lx, err := New([]Rule{
		{Name: "IF", Pattern: "if"},
		{Name: "ID", Pattern: "[a-z]+"},
	})
	if err != nil {
		t.Fatal(err)
	}
	first, err := lx.Scan("iffooif")
	if err != nil {
		t.Fatal(err)
	}
	second, err := lx.Scan("iffooif")
	if err != nil {
		t.Fatal(err)
	}
	assertTokens(t, first, second)
}

func TestWarnOnUnsafeRulesFindsNestedQuantifier(t *testing.T) {
	lx, err := New([]Rule{{Name: "BAD", Pattern: "(a+)+"}}, Options{WarnOnUnsafeRules: true})
	if err != nil {
		t.Fatal(err)
	}
	findings := lx.Findings()
	if len(findings) == 0 {
		t.Fatal("expected at least one finding for a nested-quantifier rule")
	}
}

func TestWarnOnUnsafeRulesOffByDefault(t *testing.T) {
	lx, err := New([]Rule{{Name: "BAD", Pattern: "(a+)+"}})
	if err != nil {
		t.Fatal(err)
	}
	if lx.Findings() != nil {
		t.Fatalf("findings should be nil when WarnOnUnsafeRules is false, got %v", lx.Findings())
	}
}

func assertTokens(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
