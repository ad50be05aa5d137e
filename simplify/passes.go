/*
File    : algebra-cas/simplify/passes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package simplify

import (
	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/evalconst"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/term"
)

// ReduceUnary collapses a chain of nested unary +/- into at most one unary,
// by the parity of its Minus signs: an even number of minuses (including
// zero, i.e. an all-Plus chain) collapses to the bare operand; an odd
// number collapses to a single Minus wrapping it. A single lone Minus is
// therefore left untouched. This folds what a one-layer-per-iteration
// double-negative/plus-unary elimination would otherwise take several
// fixpoint iterations to reach into a single pass.
func ReduceUnary(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false

	case *term.Unary:
		layers := 0
		minusCount := 0
		cur := term.Node(n)
		for {
			u, ok := cur.(*term.Unary)
			if !ok {
				break
			}
			layers++
			if u.Tok.Kind == lexer.Minus {
				minusCount++
			}
			cur = u.Operand
		}

		if layers > 1 || (layers == 1 && n.Tok.Kind == lexer.Plus) {
			if minusCount%2 == 1 {
				*slot = term.NewUnary(lexer.NewToken(lexer.Minus, "-"), cur)
			} else {
				*slot = cur
			}
			return true
		}
		return ReduceUnary(&n.Operand)

	case *term.Binary:
		leftChanged := ReduceUnary(&n.Left)
		rightChanged := ReduceUnary(&n.Right)
		return leftChanged || rightChanged
	}
	return false
}

// DistributeMinusOverBinary rewrites -(a op b), where op is + or -, into a
// Plus binary with op's sign merged into each side: -(a+b) -> (-a)+(-b),
// -(a-b) -> (-a)+b. Non-additive inner operators are left alone.
func DistributeMinusOverBinary(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false

	case *term.Unary:
		if n.Tok.Kind == lexer.Minus {
			if bin, ok := n.Operand.(*term.Binary); ok && lexer.IsAdditive(bin.Tok.Kind) {
				newLeft := negate(bin.Left)
				var newRight term.Node
				if bin.Tok.Kind == lexer.Plus {
					newRight = negate(bin.Right)
				} else {
					newRight = bin.Right.Clone()
				}
				*slot = term.NewBinary(lexer.NewToken(lexer.Plus, "+"), newLeft, newRight)
				return true
			}
		}
		return DistributeMinusOverBinary(&n.Operand)

	case *term.Binary:
		leftChanged := DistributeMinusOverBinary(&n.Left)
		rightChanged := DistributeMinusOverBinary(&n.Right)
		return leftChanged || rightChanged
	}
	return false
}

func negate(n term.Node) term.Node {
	return term.NewUnary(lexer.NewToken(lexer.Minus, "-"), n.Clone())
}

// MergeBinaryWithRightUnary rewrites a op (+-b) into a op' b, where op' XORs
// op's sign with the right unary's sign; it applies only when op is
// additive.
func MergeBinaryWithRightUnary(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false

	case *term.Unary:
		return MergeBinaryWithRightUnary(&n.Operand)

	case *term.Binary:
		if lexer.IsAdditive(n.Tok.Kind) {
			if ru, ok := n.Right.(*term.Unary); ok {
				merged := lexer.MergeUnarySign(n.Tok.Kind, ru.Tok.Kind)
				mergedTok := lexer.NewToken(merged, string(rune(lexer.OperatorChar(merged))))
				*slot = term.NewBinary(mergedTok, n.Left, ru.Operand)
				return true
			}
		}
		leftChanged := MergeBinaryWithRightUnary(&n.Left)
		rightChanged := MergeBinaryWithRightUnary(&n.Right)
		return leftChanged || rightChanged
	}
	return false
}

// DistributeMultiplyOverAdditive rewrites a*(b op c) into (a*b) op (a*c),
// and symmetrically (a op b)*c into (a*c) op (b*c), when op is + or -. The
// right side is tried first.
func DistributeMultiplyOverAdditive(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false

	case *term.Unary:
		return DistributeMultiplyOverAdditive(&n.Operand)

	case *term.Binary:
		if n.Tok.Kind == lexer.Multiply {
			if rewritten, ok := tryDistributeMultiply(n); ok {
				*slot = rewritten
				return true
			}
		}
		leftChanged := DistributeMultiplyOverAdditive(&n.Left)
		rightChanged := DistributeMultiplyOverAdditive(&n.Right)
		return leftChanged || rightChanged
	}
	return false
}

func tryDistributeMultiply(n *term.Binary) (term.Node, bool) {
	mulTok := lexer.NewToken(lexer.Multiply, "*")
	if rightBin, ok := n.Right.(*term.Binary); ok && lexer.IsAdditive(rightBin.Tok.Kind) {
		newLeft := term.NewBinary(mulTok, n.Left.Clone(), rightBin.Left)
		newRight := term.NewBinary(mulTok, n.Left.Clone(), rightBin.Right)
		return term.NewBinary(rightBin.Tok, newLeft, newRight), true
	}
	if leftBin, ok := n.Left.(*term.Binary); ok && lexer.IsAdditive(leftBin.Tok.Kind) {
		newLeft := term.NewBinary(mulTok, leftBin.Left, n.Right.Clone())
		newRight := term.NewBinary(mulTok, leftBin.Right, n.Right.Clone())
		return term.NewBinary(leftBin.Tok, newLeft, newRight), true
	}
	return nil, false
}

// EvaluateConstantBinary folds a binary node whose two operands are both
// Number atoms directly, and otherwise, for an additive root, flattens the
// chain and sums its numeric leaves into one representative. It never
// folds across an "=" root: each side of an equation is reduced
// independently by the recursive calls into Left and Right, and merging
// numeric leaves from both sides here would silently move a term across
// the equals sign, which is isolate's job, not this pass's.
func EvaluateConstantBinary(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false

	case *term.Unary:
		return EvaluateConstantBinary(&n.Operand)

	case *term.Binary:
		leftChanged := EvaluateConstantBinary(&n.Left)
		rightChanged := EvaluateConstantBinary(&n.Right)

		if leftAtom, ok := n.Left.(*term.Atom); ok && leftAtom.Tok.Kind == lexer.Number {
			if rightAtom, ok2 := n.Right.(*term.Atom); ok2 && rightAtom.Tok.Kind == lexer.Number {
				if result, err := evalconst.Fold(leftAtom.Tok, n.Tok.Kind, rightAtom.Tok); err == nil {
					*slot = term.NewAtom(lexer.NewToken(lexer.Number, lexer.FormatNumber(result)))
					return true
				}
				// Unsupported/erroring folds (div-by-zero, %, sqrt) are left
				// unevaluated; EvaluateSpecialCases surfaces div-by-zero.
			}
		}

		if lexer.IsAdditive(n.Tok.Kind) {
			if foldAdditiveChain(slot) {
				return true
			}
		}
		return leftChanged || rightChanged
	}
	return false
}

// foldAdditiveChain flattens a Plus/Minus-rooted chain into signed leaves
// (flatten itself flips the right side's sign under a Minus) and sums the
// numeric ones into a single representative leaf, zeroing the rest.
func foldAdditiveChain(slot *term.Node) bool {
	leaves := flatten(slot, 1)

	total := 0.0
	var representative Leaf
	repVal := 0.0
	haveRep := false
	mutated := false

	for _, leaf := range leaves {
		val, ok := numericLeafValue(leaf.Node())
		if !ok {
			continue
		}
		total += leaf.Sign * val
		if val == 0 {
			continue
		}
		if !haveRep {
			representative = leaf
			repVal = val
			haveRep = true
		} else {
			leaf.Set(term.NewAtom(lexer.NewToken(lexer.Number, "0")))
			mutated = true
		}
	}

	if haveRep && representative.Sign*repVal != total {
		// The replacement sits in the representative's slot, whose own sign
		// excludes the Unary wrapper (if any) that Set discards.
		slotSign := representative.Sign
		if u, ok := representative.Node().(*term.Unary); ok && u.Tok.Kind == lexer.Minus {
			slotSign = -slotSign
		}
		representative.Set(term.NewAtom(lexer.NewToken(lexer.Number, lexer.FormatNumber(total*slotSign))))
		mutated = true
	}

	return mutated
}

// numericLeafValue extracts a flattened leaf's raw numeric magnitude: the
// leaf's own Sign (set by flatten) already folds in any Unary wrapper's
// sign, so this reads the wrapped Number atom's unsigned contribution
// without re-applying that wrapper's sign a second time.
func numericLeafValue(n term.Node) (value float64, ok bool) {
	switch v := n.(type) {
	case *term.Atom:
		if v.Tok.Kind != lexer.Number {
			return 0, false
		}
		val, err := lexer.NumericValue(v.Tok)
		if err != nil {
			return 0, false
		}
		return val, true
	case *term.Unary:
		atom, isAtom := v.Operand.(*term.Atom)
		if !isAtom || atom.Tok.Kind != lexer.Number {
			return 0, false
		}
		val, err := lexer.NumericValue(atom.Tok)
		if err != nil {
			return 0, false
		}
		return val, true
	default:
		return 0, false
	}
}

// EvaluateSpecialCases applies the identity/absorbing-constant rewrites:
// x+0, 0+x, x-0, 0-x, x*0, 0*x, x*1, 1*x, x/1, 0/x, and x/0 (which fails
// with DivByZero). Assignment roots are exempt, since a literal zero on
// one side of "=" must be preserved.
func EvaluateSpecialCases(slot *term.Node) (bool, error) {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false, nil

	case *term.Unary:
		return EvaluateSpecialCases(&n.Operand)

	case *term.Binary:
		leftChanged, err := EvaluateSpecialCases(&n.Left)
		if err != nil {
			return false, err
		}
		rightChanged, err := EvaluateSpecialCases(&n.Right)
		if err != nil {
			return false, err
		}

		if n.Tok.Kind == lexer.Assign {
			return leftChanged || rightChanged, nil
		}

		switch {
		case isZeroAtom(n.Right) && (n.Tok.Kind == lexer.Plus || n.Tok.Kind == lexer.Minus):
			*slot = n.Left
			return true, nil
		case isZeroAtom(n.Left) && n.Tok.Kind == lexer.Plus:
			*slot = n.Right
			return true, nil
		case isZeroAtom(n.Left) && n.Tok.Kind == lexer.Minus:
			*slot = term.NewUnary(lexer.NewToken(lexer.Minus, "-"), n.Right)
			return true, nil
		case n.Tok.Kind == lexer.Multiply && (isZeroAtom(n.Left) || isZeroAtom(n.Right)):
			*slot = term.NewAtom(lexer.NewToken(lexer.Number, "0"))
			return true, nil
		case n.Tok.Kind == lexer.Multiply && isOneAtom(n.Right):
			*slot = n.Left
			return true, nil
		case n.Tok.Kind == lexer.Multiply && isOneAtom(n.Left):
			*slot = n.Right
			return true, nil
		case n.Tok.Kind == lexer.Divide && isZeroAtom(n.Right):
			return false, casErr.New(casErr.DivByZero, "division by zero")
		case n.Tok.Kind == lexer.Divide && isOneAtom(n.Right):
			*slot = n.Left
			return true, nil
		case n.Tok.Kind == lexer.Divide && isZeroAtom(n.Left):
			*slot = term.NewAtom(lexer.NewToken(lexer.Number, "0"))
			return true, nil
		}

		return leftChanged || rightChanged, nil
	}
	return false, nil
}

func isZeroAtom(n term.Node) bool {
	atom, ok := n.(*term.Atom)
	if !ok || atom.Tok.Kind != lexer.Number {
		return false
	}
	val, err := lexer.NumericValue(atom.Tok)
	return err == nil && val == 0
}

func isOneAtom(n term.Node) bool {
	atom, ok := n.(*term.Atom)
	if !ok || atom.Tok.Kind != lexer.Number {
		return false
	}
	val, err := lexer.NumericValue(atom.Tok)
	return err == nil && val == 1
}

// SeparateIntoUnary rewrites any Number atom with a negative value into a
// Minus unary wrapping its absolute value, so sign always lives in an
// explicit unary node rather than inside a literal's lexeme.
func SeparateIntoUnary(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		if n.Tok.Kind == lexer.Number {
			if val, err := lexer.NumericValue(n.Tok); err == nil && val < 0 {
				*slot = term.NewUnary(
					lexer.NewToken(lexer.Minus, "-"),
					term.NewAtom(lexer.NewToken(lexer.Number, lexer.FormatNumber(-val))),
				)
				return true
			}
		}
		return false

	case *term.Unary:
		return SeparateIntoUnary(&n.Operand)

	case *term.Binary:
		leftChanged := SeparateIntoUnary(&n.Left)
		rightChanged := SeparateIntoUnary(&n.Right)
		return leftChanged || rightChanged
	}
	return false
}

// CombineLikeTerms coalesces multiples of the same variable term within a
// single additive/assignment chain: the signed coefficients of all
// occurrences of a given term (bare v, k*v, or v*k) are summed into c, all
// but one occurrence is zeroed, and the representative is rewritten so that
// its position in the chain contributes c*v: (|c|)*v (bare v when |c| is 1),
// wrapped in Minus when the sign requires it, or 0 if c = 0.
func CombineLikeTerms(slot *term.Node) bool {
	switch n := (*slot).(type) {
	case *term.Atom:
		return false

	case *term.Unary:
		return CombineLikeTerms(&n.Operand)

	case *term.Binary:
		if n.Tok.Kind == lexer.Plus || n.Tok.Kind == lexer.Minus || n.Tok.Kind == lexer.Assign {
			if combineChain(slot) {
				return true
			}
		}
		leftChanged := CombineLikeTerms(&n.Left)
		rightChanged := CombineLikeTerms(&n.Right)
		return leftChanged || rightChanged
	}
	return false
}

type termGroup struct {
	coeff  float64
	leaves []Leaf
}

func combineChain(slot *term.Node) bool {
	leaves := flatten(slot, 1)

	groups := map[string]*termGroup{}
	order := []string{}
	for _, leaf := range leaves {
		key, coeff, ok := matchVariableTerm(leaf)
		if !ok {
			continue
		}
		g, exists := groups[key]
		if !exists {
			g = &termGroup{}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff += coeff
		g.leaves = append(g.leaves, leaf)
	}

	changed := false
	for _, key := range order {
		g := groups[key]
		if len(g.leaves) < 2 {
			continue
		}
		changed = true
		representative := g.leaves[0]
		for _, l := range g.leaves[1:] {
			l.Set(term.NewAtom(lexer.NewToken(lexer.Number, "0")))
		}
		slotSign := representative.Sign
		if u, ok := representative.Node().(*term.Unary); ok && u.Tok.Kind == lexer.Minus {
			slotSign = -slotSign
		}
		representative.Set(buildCoefficientTerm(g.coeff*slotSign, key))
	}
	return changed
}

// matchVariableTerm recognizes a flattened leaf as a variable term — bare
// v, k*v, v*k, or any of those wrapped in a sign-carrying Unary (the sign
// is already folded into leaf.Sign by flatten, so the wrapper is unwrapped
// here without reapplying it).
func matchVariableTerm(leaf Leaf) (key string, coeff float64, ok bool) {
	inner := leaf.Node()
	if u, isUnary := inner.(*term.Unary); isUnary {
		inner = u.Operand
	}
	switch node := inner.(type) {
	case *term.Atom:
		if node.Tok.Kind == lexer.Variable {
			return node.Tok.Lexeme, leaf.Sign, true
		}
	case *term.Binary:
		if node.Tok.Kind != lexer.Multiply {
			return "", 0, false
		}
		if coefAtom, varAtom, match := numberVariablePair(node.Left, node.Right); match {
			val, err := lexer.NumericValue(coefAtom.Tok)
			if err != nil {
				return "", 0, false
			}
			return varAtom.Tok.Lexeme, leaf.Sign * val, true
		}
	}
	return "", 0, false
}

func numberVariablePair(a, b term.Node) (coefAtom, varAtom *term.Atom, ok bool) {
	if la, lok := a.(*term.Atom); lok && la.Tok.Kind == lexer.Number {
		if ra, rok := b.(*term.Atom); rok && ra.Tok.Kind == lexer.Variable {
			return la, ra, true
		}
	}
	if ra, rok := b.(*term.Atom); rok && ra.Tok.Kind == lexer.Number {
		if la, lok := a.(*term.Atom); lok && la.Tok.Kind == lexer.Variable {
			return ra, la, true
		}
	}
	return nil, nil, false
}

func buildCoefficientTerm(coeff float64, variable string) term.Node {
	if coeff == 0 {
		return term.NewAtom(lexer.NewToken(lexer.Number, "0"))
	}
	abs := coeff
	negative := false
	if abs < 0 {
		abs = -abs
		negative = true
	}

	v := term.NewAtom(lexer.NewToken(lexer.Variable, variable))
	var result term.Node = v
	if abs != 1 {
		result = term.NewBinary(
			lexer.NewToken(lexer.Multiply, "*"),
			term.NewAtom(lexer.NewToken(lexer.Number, lexer.FormatNumber(abs))),
			v,
		)
	}
	if negative {
		result = term.NewUnary(lexer.NewToken(lexer.Minus, "-"), result)
	}
	return result
}
