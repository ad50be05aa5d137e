/*
File    : algebra-cas/evalconst/evalconst.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package evalconst folds constant arithmetic and, for fully-bound trees,
// walks a whole term.Node to a single real value. Two-operand folding and
// whole-tree evaluation are kept as separate entry points since the
// simplifier only ever needs the former.
package evalconst

import (
	"math"

	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/term"
)

// Fold evaluates a single binary operation over two Number tokens: +, -,
// *, / (division by zero fails with DivByZero), and ^ (real power, via
// math.Pow). % and sqrt are not constant-folded here: Fold fails with
// Unsupported for them, and the simplifier, which does call Fold on them,
// leaves such a node in the tree when it gets that error.
func Fold(left lexer.Token, op lexer.TokenKind, right lexer.Token) (float64, error) {
	leftVal, err := lexer.NumericValue(left)
	if err != nil {
		return 0, err
	}
	rightVal, err := lexer.NumericValue(right)
	if err != nil {
		return 0, err
	}
	return FoldValues(leftVal, op, rightVal)
}

// FoldValues is Fold's already-parsed-operand form, used by Fold and by
// Eval for each Binary node it walks.
func FoldValues(left float64, op lexer.TokenKind, right float64) (float64, error) {
	switch op {
	case lexer.Plus:
		return left + right, nil
	case lexer.Minus:
		return left - right, nil
	case lexer.Multiply:
		return left * right, nil
	case lexer.Divide:
		if right == 0 {
			return 0, casErr.New(casErr.DivByZero, "division by zero")
		}
		return left / right, nil
	case lexer.Power:
		return math.Pow(left, right), nil
	default:
		return 0, casErr.Newf(casErr.Unsupported, "operator %s is not constant-foldable", op)
	}
}

// Eval walks a fully-bound term.Node to a single real value, substituting
// each Variable atom from bindings. It supports the same operator set as
// FoldValues plus unary +/-; an unbound variable or an unsupported
// operator fails.
func Eval(bindings map[string]float64, n term.Node) (float64, error) {
	switch node := n.(type) {
	case *term.Atom:
		if node.Tok.Kind == lexer.Number {
			return lexer.NumericValue(node.Tok)
		}
		value, ok := bindings[node.Tok.Lexeme]
		if !ok {
			return 0, casErr.Newf(casErr.CannotDerive, "undefined variable %q", node.Tok.Lexeme)
		}
		return value, nil

	case *term.Unary:
		operand, err := Eval(bindings, node.Operand)
		if err != nil {
			return 0, err
		}
		if node.Tok.Kind == lexer.Minus {
			return -operand, nil
		}
		return operand, nil

	case *term.Binary:
		left, err := Eval(bindings, node.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(bindings, node.Right)
		if err != nil {
			return 0, err
		}
		return FoldValues(left, node.Tok.Kind, right)

	default:
		return 0, casErr.New(casErr.Unsupported, "unknown node kind in evaluation")
	}
}

// Assign evaluates an "=" rooted node's right-hand side and returns the
// left-hand variable name and its bound value. It fails if the root is
// not "=" or the left side is not a bare variable.
func Assign(bindings map[string]float64, n term.Node) (name string, value float64, err error) {
	bin, ok := n.(*term.Binary)
	if !ok || bin.Tok.Kind != lexer.Assign {
		return "", 0, casErr.New(casErr.NotAnEquation, "assignment requires an \"=\"-rooted tree")
	}
	atom, ok := bin.Left.(*term.Atom)
	if !ok || atom.Tok.Kind != lexer.Variable {
		return "", 0, casErr.New(casErr.ParseError, "left side of assignment must be a variable")
	}
	value, err = Eval(bindings, bin.Right)
	if err != nil {
		return "", 0, err
	}
	return atom.Tok.Lexeme, value, nil
}
