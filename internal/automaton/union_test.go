package automaton

import (
	"testing"

	"github.com/arjunvelu/lexgen/internal/regexast"
)

func TestUniteDisjointStateRanges(t *testing.T) {
	a := compileSrc(t, "a")
	b := compileSrc(t, "b")
	u, finalToRule := Unite([]*NFA{a, b})

	if len(finalToRule) != 2 {
		t.Fatalf("finalToRule has %d entries, want 2", len(finalToRule))
	}
	seen := map[int]int{}
	for state, rule := range finalToRule {
		seen[rule] = state
	}
	if seen[0] == seen[1] {
		t.Fatalf("both rules map to the same accept state: %v", finalToRule)
	}
	if u.Start != 0 {
		t.Fatalf("Start = %d, want 0", u.Start)
	}
}

func TestUniteAcceptsEitherRule(t *testing.T) {
	a := compileSrc(t, "a")
	b := compileSrc(t, "b")
	u, _ := Unite([]*NFA{a, b})

	if !runNFA(u, "a") || !runNFA(u, "b") {
		t.Fatal("unioned NFA should accept both rules' languages")
	}
	if runNFA(u, "c") {
		t.Fatal("unioned NFA should reject input neither rule accepts")
	}
}

func TestUniteFinalToRulePreservesIndex(t *testing.T) {
	specs := []string{"if", "[a-z]+", "[0-9]+"}
	nfas := make([]*NFA, len(specs))
	for i, s := range specs {
		node, err := regexast.NewParser().Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		nfas[i] = Compile(node)
	}
	_, finalToRule := Unite(nfas)

	ruleSeen := map[int]bool{}
	for _, rule := range finalToRule {
		if rule < 0 || rule >= len(specs) {
			t.Fatalf("rule index %d out of range", rule)
		}
		ruleSeen[rule] = true
	}
	for i := range specs {
		if !ruleSeen[i] {
			t.Fatalf("rule %d never appears in finalToRule: %v", i, finalToRule)
		}
	}
}
