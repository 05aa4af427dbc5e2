package regexast

import "testing"

func TestExpandRangeSingle(t *testing.T) {
	got := ExpandRange('a', 'a')
	if len(got) != 1 || got[0] != 'a' {
		t.Fatalf("got %v", got)
	}
}

func TestExpandRangeMultiple(t *testing.T) {
	got := ExpandRange('a', 'd')
	want := []byte{'a', 'b', 'c', 'd'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDumpChildrenFirst(t *testing.T) {
	n := &Node{Kind: Concat, Children: []*Node{
		{Kind: Symbol, Char: 'a'},
		{Kind: Symbol, Char: 'b'},
	}}
	dump := Dump(n)
	want := "  Symbol a\n  Symbol b\nConcat\n"
	if dump != want {
		t.Fatalf("Dump = %q, want %q", dump, want)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		Symbol:      "Symbol",
		CharClass:   "CharClass",
		Epsilon:     "Epsilon",
		Concat:      "Concat",
		Alternation: "Alternation",
		Star:        "Star",
		Plus:        "Plus",
		Question:    "Question",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
