// Package regexast builds and represents the abstract syntax tree for the
// lexgen regex surface: literals, escapes, the "eps" keyword, bracket
// classes, groups, alternation, and the postfix *, +, ? operators.
package regexast

import "strings"

// Kind tags the variant a Node holds.
type Kind int

const (
	// Symbol matches exactly one literal character.
	Symbol Kind = iota
	// CharClass matches any single character in an inclusive [Lo, Hi] range.
	CharClass
	// Epsilon matches the empty string.
	Epsilon
	// Concat matches Children[0] followed by Children[1].
	Concat
	// Alternation matches any one of Children.
	Alternation
	// Star matches Children[0] zero or more times.
	Star
	// Plus matches Children[0] one or more times.
	Plus
	// Question matches Children[0] zero or one times.
	Question
)

func (k Kind) String() string {
	switch k {
	case Symbol:
		return "Symbol"
	case CharClass:
		return "CharClass"
	case Epsilon:
		return "Epsilon"
	case Concat:
		return "Concat"
	case Alternation:
		return "Alternation"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Question:
		return "Question"
	default:
		return "Unknown"
	}
}

// Node is a single AST node. The tree owns its children: no sharing, no
// cycles. Only the fields relevant to Kind are meaningful:
//
//   - Symbol:     Char
//   - CharClass:  Lo, Hi
//   - Concat:     Children[0], Children[1]
//   - Alternation: Children (len >= 2)
//   - Star/Plus/Question: Children[0]
type Node struct {
	Kind     Kind
	Char     byte
	Lo, Hi   byte
	Children []*Node

	// Alphabet is the set of literal input symbols for the whole regex this
	// node was parsed from. It is computed once, by a separate source pass,
	// and shared (not copied) across every node in the tree.
	Alphabet map[byte]struct{}
}

// setAlphabet assigns alphabet to n and every descendant, sharing the same
// map rather than copying it, per the field's doc comment. This is how the
// alphabet pass reaches CharClass nodes and atomic Symbol nodes, not just
// the root.
func setAlphabet(n *Node, alphabet map[byte]struct{}) {
	n.Alphabet = alphabet
	for _, c := range n.Children {
		setAlphabet(c, alphabet)
	}
}

// ExpandRange expands the inclusive byte range [lo, hi] into a slice of
// individual code points, e.g. when driving Thompson construction.
func ExpandRange(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi)-int(lo)+1)
	for c := lo; ; c++ {
		out = append(out, c)
		if c == hi {
			break
		}
	}
	return out
}

// Dump renders a node and its children as an indented tree, one class name
// per line, children first, the same shape as the original implementation's
// print_tree debug helper. Useful for tests that want to eyeball a parse.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, indent int) {
	for _, c := range n.Children {
		dump(b, c, indent+1)
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(n.Kind.String())
	if n.Kind == Symbol {
		b.WriteByte(' ')
		b.WriteByte(n.Char)
	}
	if n.Kind == CharClass {
		b.WriteByte(' ')
		b.WriteByte(n.Lo)
		b.WriteByte('-')
		b.WriteByte(n.Hi)
	}
	b.WriteByte('\n')
}
