/*
File    : algebra-cas/simplify/flatten.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package simplify implements the rewrite-pass fixpoint simplifier: an
// ordered list of tree rewrites, each reporting whether it changed
// anything, looped until none of them do. Each pass operates through
// pointer-to-interface "slots" so it can replace a subtree in place without
// the caller threading indices around.
package simplify

import (
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/term"
)

// Leaf is one flattened leaf of an additive/assignment chain: the slot it
// lives in (so a pass can replace it) and the sign it contributes with
// after descending through any enclosing +, -, or = operators.
type Leaf struct {
	Sign float64
	slot *term.Node
}

// Node returns the leaf's current value.
func (l Leaf) Node() term.Node { return *l.slot }

// Set replaces the leaf's value in its parent.
func (l Leaf) Set(n term.Node) { *l.slot = n }

// flatten walks the connected run of additive/assignment operators
// starting at slot and returns one Leaf per non-additive subtree reached:
// descent through + leaves both signs unchanged, descent through - flips
// the right side's sign, descent through = flips the right side's sign
// (the right side is conceptually moved to the left with negation), and
// unary +/- toggle sign and recurse. Any other binary or a non-additive
// leaf halts descent and becomes one Leaf.
//
// A Leaf's slot always points at the outermost position a rewrite may
// safely replace whole: when a Unary wraps something that is not itself
// further additive structure (an Atom, or a non-additive Binary like a
// coefficient-times-variable product), flatten stops at the Unary rather
// than tunneling into its operand, so Set() discards the sign wrapper
// along with the value instead of leaving it to apply a second time.
func flatten(slot *term.Node, sign float64) []Leaf {
	switch n := (*slot).(type) {
	case *term.Unary:
		childSign := sign
		if n.Tok.Kind == lexer.Minus {
			childSign = -sign
		}
		if continuesAdditiveChain(n.Operand) {
			return flatten(&n.Operand, childSign)
		}
		return []Leaf{{Sign: childSign, slot: slot}}

	case *term.Binary:
		switch n.Tok.Kind {
		case lexer.Plus:
			return append(flatten(&n.Left, sign), flatten(&n.Right, sign)...)
		case lexer.Minus:
			return append(flatten(&n.Left, sign), flatten(&n.Right, -sign)...)
		case lexer.Assign:
			return append(flatten(&n.Left, sign), flatten(&n.Right, -sign)...)
		default:
			return []Leaf{{Sign: sign, slot: slot}}
		}

	default: // *term.Atom
		return []Leaf{{Sign: sign, slot: slot}}
	}
}

// continuesAdditiveChain reports whether n is itself +, -, = or another
// unary wrapper, i.e. whether flatten should keep descending into it
// rather than treating the current Unary as the terminal leaf.
func continuesAdditiveChain(n term.Node) bool {
	switch v := n.(type) {
	case *term.Binary:
		return v.Tok.Kind == lexer.Plus || v.Tok.Kind == lexer.Minus || v.Tok.Kind == lexer.Assign
	case *term.Unary:
		return true
	default:
		return false
	}
}
