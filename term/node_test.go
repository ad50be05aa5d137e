/*
File    : algebra-cas/term/node_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package term

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/algebra-cas/lexer"
)

func TestNode_String(t *testing.T) {
	x := NewAtom(lexer.NewToken(lexer.Variable, "x"))
	one := NewAtom(lexer.NewToken(lexer.Number, "1"))
	sum := NewBinary(lexer.NewToken(lexer.Plus, "+"), x, one)
	neg := NewUnary(lexer.NewToken(lexer.Minus, "-"), sum)

	assert.Equal(t, "x", x.String())
	assert.Equal(t, "(x + 1)", sum.String())
	assert.Equal(t, "-(x + 1)", neg.String())
}

func TestNode_CloneIsDeepAndIndependent(t *testing.T) {
	x := NewAtom(lexer.NewToken(lexer.Variable, "x"))
	orig := NewBinary(lexer.NewToken(lexer.Plus, "+"), x, x.Clone())

	clone := orig.Clone()
	assert.True(t, orig.Equal(clone))

	clone.(*Binary).Left.(*Atom).Tok.Lexeme = "y"
	assert.False(t, orig.Equal(clone))
	assert.Equal(t, "x", orig.Left.String())
}

func TestNode_EqualIsStructural(t *testing.T) {
	a := NewBinary(
		lexer.NewToken(lexer.Plus, "+"),
		NewAtom(lexer.NewToken(lexer.Variable, "x")),
		NewAtom(lexer.NewToken(lexer.Number, "2")),
	)
	b := NewBinary(
		lexer.NewToken(lexer.Plus, "+"),
		NewAtom(lexer.NewToken(lexer.Variable, "x")),
		NewAtom(lexer.NewToken(lexer.Number, "2")),
	)
	c := NewBinary(
		lexer.NewToken(lexer.Minus, "-"),
		NewAtom(lexer.NewToken(lexer.Variable, "x")),
		NewAtom(lexer.NewToken(lexer.Number, "2")),
	)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNode_HashConsistentWithEqual(t *testing.T) {
	a := NewUnary(lexer.NewToken(lexer.Minus, "-"), NewAtom(lexer.NewToken(lexer.Variable, "x")))
	b := NewUnary(lexer.NewToken(lexer.Minus, "-"), NewAtom(lexer.NewToken(lexer.Variable, "x")))

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestNode_InvariantsPanicOnBadToken(t *testing.T) {
	assert.Panics(t, func() {
		NewAtom(lexer.NewToken(lexer.Plus, "+"))
	})
	assert.Panics(t, func() {
		NewUnary(lexer.NewToken(lexer.Multiply, "*"), NewAtom(lexer.NewToken(lexer.Number, "1")))
	})
	assert.Panics(t, func() {
		NewBinary(lexer.NewToken(lexer.Variable, "x"), nil, nil)
	})
}
