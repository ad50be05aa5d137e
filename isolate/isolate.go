/*
File    : algebra-cas/isolate/isolate.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package isolate moves the terms that do not contain a target variable
// from the left side of an "=" rooted term.Node to the right side, one term
// at a time, until the left side is the bare variable or no pass applies,
// using the same *term.Node slot convention the simplify package uses.
// Occurrences of the variable on the right side are not moved.
package isolate

import (
	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/term"
)

// containsVariable reports whether n has variable anywhere in its subtree.
func containsVariable(n term.Node, variable string) bool {
	switch v := n.(type) {
	case *term.Atom:
		return v.Tok.Kind == lexer.Variable && v.Tok.Lexeme == variable
	case *term.Unary:
		return containsVariable(v.Operand, variable)
	case *term.Binary:
		return containsVariable(v.Left, variable) || containsVariable(v.Right, variable)
	default:
		return false
	}
}

// transferAdditives moves a +/- term that does not contain variable from
// the left side to the right side, inverting it across "=". "x + 3 = y"
// becomes "x = y - 3"; "x - y = 0" becomes "x = 0 + y" (the operand that
// stays behind when it's the additive's right child keeps its original
// sign, since moving it only flips the side it sits on, not negates it
// again — the left-child case instead must re-wrap the surviving right
// child in the original operator, since "-" is not commutative).
func transferAdditives(lhs, rhs *term.Node, variable string) bool {
	bin, ok := (*lhs).(*term.Binary)
	if !ok || !lexer.IsAdditive(bin.Tok.Kind) {
		return false
	}

	opType := bin.Tok.Kind
	inverse := lexer.InverseOperation(opType)
	inverseTok := lexer.NewToken(inverse, string(lexer.OperatorChar(inverse)))

	if !containsVariable(bin.Left, variable) {
		// left is the constant side, whether opType is + or -: "left + x
		// = rhs" -> "x = rhs - left"; "left - x = rhs" -> "-x = rhs - left"
		// (the Unary(opType, right) wrap is the identity "+x" for Plus and
		// the needed sign flip "-x" for Minus; ReduceUnary later collapses
		// the redundant Plus wrap). The right-hand move is always a
		// subtraction of left, regardless of opType.
		minusTok := lexer.NewToken(lexer.Minus, string(lexer.OperatorChar(lexer.Minus)))
		*rhs = term.NewBinary(minusTok, *rhs, bin.Left)
		*lhs = term.NewUnary(lexer.NewToken(opType, string(lexer.OperatorChar(opType))), bin.Right)
		return true
	}
	if !containsVariable(bin.Right, variable) {
		// right is the constant side: "x + right = rhs" -> "x = rhs - right";
		// "x - right = rhs" -> "x = rhs + right".
		*rhs = term.NewBinary(inverseTok, *rhs, bin.Right)
		*lhs = bin.Left
		return true
	}
	return false
}

// transferMultiplicatives moves a */ factor that does not contain variable
// across "=" by applying its inverse to the right side. "2 * x = rhs"
// becomes "x = rhs / 2"; "x / 3 = rhs" becomes "x = rhs * 3".
func transferMultiplicatives(lhs, rhs *term.Node, variable string) bool {
	bin, ok := (*lhs).(*term.Binary)
	if !ok || !lexer.IsMultiplicative(bin.Tok.Kind) {
		return false
	}

	opType := bin.Tok.Kind
	inverse := lexer.InverseOperation(opType)
	inverseTok := lexer.NewToken(inverse, string(lexer.OperatorChar(inverse)))

	if !containsVariable(bin.Left, variable) {
		*rhs = term.NewBinary(inverseTok, *rhs, bin.Left)
		*lhs = bin.Right
		return true
	}
	if !containsVariable(bin.Right, variable) {
		*rhs = term.NewBinary(inverseTok, *rhs, bin.Right)
		*lhs = bin.Left
		return true
	}
	return false
}

// transferUnary moves a prefix +/- wrapping the variable side across "=" by
// re-applying the same operator to the right side. "-x = 2" becomes
// "x = -2".
func transferUnary(lhs, rhs *term.Node, variable string) bool {
	un, ok := (*lhs).(*term.Unary)
	if !ok {
		return false
	}
	if !containsVariable(un.Operand, variable) {
		return false
	}
	*rhs = term.NewUnary(un.Tok, *rhs)
	*lhs = un.Operand
	return true
}

// Isolate runs TransferAdditives, TransferMultiplicatives, and
// TransferUnary to a fixpoint over equation's left/right sides, until the
// left side is the bare variable or no pass reports further change.
// equation must be rooted at "="; ^ and sqrt
// cannot be crossed by any pass here (they have no entry in
// lexer.InverseOperation), so an equation whose variable-bearing side sits
// under one of those operators simply stops changing and the caller must
// inspect the returned tree's left side to see whether isolation actually
// completed.
func Isolate(cfg config.Config, equation term.Node, variable string) (term.Node, error) {
	bin, ok := equation.(*term.Binary)
	if !ok || bin.Tok.Kind != lexer.Assign {
		return nil, casErr.New(casErr.NotAnEquation, "isolate requires an \"=\"-rooted tree")
	}

	lhs := bin.Left
	rhs := bin.Right

	for iteration := 0; iteration < cfg.MaxIterationsExecuteSteps; iteration++ {
		changed := false
		if transferAdditives(&lhs, &rhs, variable) {
			changed = true
		} else if transferMultiplicatives(&lhs, &rhs, variable) {
			changed = true
		} else if transferUnary(&lhs, &rhs, variable) {
			changed = true
		}
		if !changed {
			return term.NewBinary(bin.Tok, lhs, rhs), nil
		}
	}

	return nil, casErr.New(casErr.NotConverged, "isolator did not converge")
}

// IsIsolated reports whether equation's left side is exactly the bare
// variable, the condition Isolate's caller checks to decide whether
// isolation reached a usable result rather than stalling under an
// uninvertible operator.
func IsIsolated(equation term.Node, variable string) bool {
	bin, ok := equation.(*term.Binary)
	if !ok || bin.Tok.Kind != lexer.Assign {
		return false
	}
	atom, ok := bin.Left.(*term.Atom)
	return ok && atom.Tok.Kind == lexer.Variable && atom.Tok.Lexeme == variable
}
