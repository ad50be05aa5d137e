/*
File    : algebra-cas/term/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package term defines the term tree the parser builds and the simplifier,
// isolator, and solver rewrite: exactly three node shapes, Atom, Unary, and
// Binary.
//
// Every rewrite pass type-switches on the concrete node type directly
// rather than dispatching through a visitor interface, since three shapes
// don't justify the extra indirection.
package term

import (
	"fmt"
	"hash/fnv"

	"github.com/akashmaji946/algebra-cas/lexer"
)

// NodeKind tags which of the three node shapes a Node is.
type NodeKind int

const (
	AtomKind NodeKind = iota
	UnaryKind
	BinaryKind
)

// Node is the term tree's element interface. Every Node owns its children
// exclusively: String, Clone, Equal, and Hash all assume that no two live
// trees ever alias the same child pointer (flatten's leaf handles are the
// one sanctioned, scoped exception — see flatten in package simplify).
type Node interface {
	// Kind reports which concrete shape this node is.
	Kind() NodeKind
	// Token returns the node's identifying token: the atom itself for
	// Atom, the operator for Unary and Binary.
	Token() lexer.Token
	// String renders the canonical textual form: atoms bare, unary as
	// "<op><operand>", binary as "(<left> <op> <right>)".
	String() string
	// Clone deep-copies the subtree rooted at this node.
	Clone() Node
	// Equal reports structural equality: same kind, same token, and
	// (for Unary/Binary) recursively equal children.
	Equal(other Node) bool
	// Hash is consistent with Equal: equal nodes hash equally.
	Hash() uint64
}

// Atom is a leaf node: a bare Number or Variable token.
type Atom struct {
	Tok lexer.Token
}

// NewAtom builds an Atom, panicking if tok is not a Number or Variable.
func NewAtom(tok lexer.Token) *Atom {
	if !lexer.IsAtom(tok.Kind) {
		panic(fmt.Sprintf("term: Atom requires a Number or Variable token, got %s", tok.Kind))
	}
	return &Atom{Tok: tok}
}

func (a *Atom) Kind() NodeKind      { return AtomKind }
func (a *Atom) Token() lexer.Token  { return a.Tok }

// String renders a Number atom through lexer.NumericValue/FormatNumber so
// that whatever sign or precision the simplifier last wrote into the
// lexeme comes back out in canonical form; a Variable atom prints its
// lexeme verbatim.
func (a *Atom) String() string {
	if a.Tok.Kind == lexer.Number {
		value, err := lexer.NumericValue(a.Tok)
		if err != nil {
			return a.Tok.Lexeme
		}
		return lexer.FormatNumber(value)
	}
	return a.Tok.Lexeme
}

func (a *Atom) Clone() Node {
	return &Atom{Tok: a.Tok}
}

func (a *Atom) Equal(other Node) bool {
	o, ok := other.(*Atom)
	return ok && a.Tok == o.Tok
}

func (a *Atom) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(a.Tok.Lexeme))
	return h.Sum64()
}

// Unary is a prefix +/- applied to one operand.
type Unary struct {
	Tok     lexer.Token
	Operand Node
}

// NewUnary builds a Unary node, enforcing the Plus/Minus token invariant.
func NewUnary(tok lexer.Token, operand Node) *Unary {
	if !lexer.IsUnary(tok.Kind) {
		panic(fmt.Sprintf("term: Unary requires a Plus or Minus token, got %s", tok.Kind))
	}
	return &Unary{Tok: tok, Operand: operand}
}

func (u *Unary) Kind() NodeKind     { return UnaryKind }
func (u *Unary) Token() lexer.Token { return u.Tok }

func (u *Unary) String() string {
	return u.Tok.Lexeme + u.Operand.String()
}

func (u *Unary) Clone() Node {
	return &Unary{Tok: u.Tok, Operand: u.Operand.Clone()}
}

func (u *Unary) Equal(other Node) bool {
	o, ok := other.(*Unary)
	return ok && u.Tok == o.Tok && u.Operand.Equal(o.Operand)
}

func (u *Unary) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(u.Tok.Lexeme))
	return h.Sum64() ^ u.Operand.Hash()
}

// Binary is a two-operand operation: any operator kind, including "=" for
// an equation's root.
type Binary struct {
	Tok   lexer.Token
	Left  Node
	Right Node
}

// NewBinary builds a Binary node, enforcing the operator-token invariant.
func NewBinary(tok lexer.Token, left, right Node) *Binary {
	if !lexer.IsOperation(tok.Kind) {
		panic(fmt.Sprintf("term: Binary requires an operator token, got %s", tok.Kind))
	}
	return &Binary{Tok: tok, Left: left, Right: right}
}

func (b *Binary) Kind() NodeKind     { return BinaryKind }
func (b *Binary) Token() lexer.Token { return b.Tok }

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Tok.Lexeme + " " + b.Right.String() + ")"
}

func (b *Binary) Clone() Node {
	return &Binary{Tok: b.Tok, Left: b.Left.Clone(), Right: b.Right.Clone()}
}

func (b *Binary) Equal(other Node) bool {
	o, ok := other.(*Binary)
	return ok && b.Tok == o.Tok && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (b *Binary) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(b.Tok.Lexeme))
	return h.Sum64() ^ b.Left.Hash() ^ b.Right.Hash()
}
