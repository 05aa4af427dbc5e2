package automaton

import (
	"fmt"

	"github.com/arjunvelu/lexgen/internal/regexast"
)

// Compile runs Thompson construction over node, returning an NFA with a
// single start state (0) and single accept state (NumStates-1), per
// spec.md §4.2. Composite constructions remap each child's state ids by an
// offset equal to the states already placed, so ids never collide.
func Compile(node *regexast.Node) *NFA {
	switch node.Kind {
	case regexast.Epsilon:
		return compileEpsilon()
	case regexast.Symbol:
		return compileSymbol(node)
	case regexast.CharClass:
		return compileCharClass(node)
	case regexast.Concat:
		return compileConcat(Compile(node.Children[0]), Compile(node.Children[1]))
	case regexast.Alternation:
		kids := make([]*NFA, len(node.Children))
		for i, c := range node.Children {
			kids[i] = Compile(c)
		}
		return compileAlternation(kids)
	case regexast.Star:
		return compileStar(Compile(node.Children[0]))
	case regexast.Plus:
		return compilePlus(Compile(node.Children[0]))
	case regexast.Question:
		return compileQuestion(Compile(node.Children[0]))
	default:
		panic(fmt.Sprintf("automaton: unknown AST node kind %v", node.Kind))
	}
}

func compileEpsilon() *NFA {
	n := NewNFA(2, 0)
	n.AddEpsilon(0, 1)
	n.Accept[1] = struct{}{}
	return n
}

// compileSymbol uses node.Alphabet, the pattern-wide alphabet the parser's
// separate alphabet pass computed (spec.md §4.1), as this NFA's alphabet,
// rather than just the one character node.Char transitions on.
func compileSymbol(node *regexast.Node) *NFA {
	n := NewNFA(2, 0)
	n.AddSymbol(0, node.Char, 1)
	widenAlphabet(n, node.Alphabet)
	n.Accept[1] = struct{}{}
	return n
}

// compileCharClass widens its NFA's alphabet with node.Alphabet, the
// propagated pattern-wide alphabet, per spec.md §4.1's requirement that the
// computed alphabet reach every character-class node.
func compileCharClass(node *regexast.Node) *NFA {
	n := NewNFA(2, 0)
	for _, c := range regexast.ExpandRange(node.Lo, node.Hi) {
		n.AddSymbol(0, c, 1)
	}
	widenAlphabet(n, node.Alphabet)
	n.Accept[1] = struct{}{}
	return n
}

func widenAlphabet(n *NFA, alphabet map[byte]struct{}) {
	for ch := range alphabet {
		n.Alphabet[ch] = struct{}{}
	}
}

// compileConcat places A at states [0, a.NumStates), then B shifted by
// a.NumStates, with an epsilon from A's accept to B's start.
func compileConcat(a, b *NFA) *NFA {
	bR := b.Remap(a.NumStates)
	out := NewNFA(a.NumStates+b.NumStates, a.Start)
	mergeInto(out, a)
	mergeInto(out, bR)

	out.AddEpsilon(onlyState(a.Accept), bR.Start)
	out.Accept[onlyState(bR.Accept)] = struct{}{}
	return out
}

// compileAlternation gives each child a disjoint range starting at 1 (state
// 0 is the fresh start), and adds a fresh final accept state after all of
// them.
func compileAlternation(kids []*NFA) *NFA {
	offset := 1
	remapped := make([]*NFA, len(kids))
	for i, k := range kids {
		remapped[i] = k.Remap(offset)
		offset += k.NumStates
	}
	final := offset

	out := NewNFA(final+1, 0)
	for _, r := range remapped {
		mergeInto(out, r)
		out.AddEpsilon(0, r.Start)
		out.AddEpsilon(onlyState(r.Accept), final)
	}
	out.Accept[final] = struct{}{}
	return out
}

func compileStar(a *NFA) *NFA {
	aR := a.Remap(1)
	final := 1 + a.NumStates
	out := NewNFA(final+1, 0)
	mergeInto(out, aR)

	aAccept := onlyState(aR.Accept)
	out.AddEpsilon(0, aR.Start)
	out.AddEpsilon(0, final)
	out.AddEpsilon(aAccept, aR.Start)
	out.AddEpsilon(aAccept, final)
	out.Accept[final] = struct{}{}
	return out
}

func compilePlus(a *NFA) *NFA {
	aR := a.Remap(1)
	final := 1 + a.NumStates
	out := NewNFA(final+1, 0)
	mergeInto(out, aR)

	aAccept := onlyState(aR.Accept)
	out.AddEpsilon(0, aR.Start)
	out.AddEpsilon(aAccept, aR.Start)
	out.AddEpsilon(aAccept, final)
	out.Accept[final] = struct{}{}
	return out
}

func compileQuestion(a *NFA) *NFA {
	aR := a.Remap(1)
	final := 1 + a.NumStates
	out := NewNFA(final+1, 0)
	mergeInto(out, aR)

	aAccept := onlyState(aR.Accept)
	out.AddEpsilon(0, aR.Start)
	out.AddEpsilon(0, final)
	out.AddEpsilon(aAccept, final)
	out.Accept[final] = struct{}{}
	return out
}

// mergeInto copies src's transitions and alphabet into dst, assuming their
// state ranges are already disjoint.
func mergeInto(dst, src *NFA) {
	for from, byLabel := range src.Trans {
		for label, tos := range byLabel {
			for _, to := range tos {
				dst.AddTransition(from, label, to)
			}
		}
	}
	for ch := range src.Alphabet {
		dst.Alphabet[ch] = struct{}{}
	}
}

// onlyState returns the single element of a one-state set; Thompson
// construction guarantees every intermediate NFA has exactly one accept
// state, so this never sees a set of any other size.
func onlyState(set map[int]struct{}) int {
	for s := range set {
		return s
	}
	panic("automaton: expected exactly one accept state")
}
