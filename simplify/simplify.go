/*
File    : algebra-cas/simplify/simplify.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package simplify

import (
	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/term"
)

// Simplify runs the ordered rewrite passes to a fixpoint: every pass runs
// once per iteration in a fixed order; the loop repeats while any pass
// reported change, and fails with casErr.NotConverged if
// cfg.MaxIterations iterations are exhausted without reaching one.
func Simplify(cfg config.Config, root term.Node) (term.Node, error) {
	current := root

	for iteration := 0; iteration < cfg.MaxIterations; iteration++ {
		changed := false

		if ReduceUnary(&current) {
			changed = true
		}
		if DistributeMinusOverBinary(&current) {
			changed = true
		}
		if MergeBinaryWithRightUnary(&current) {
			changed = true
		}
		if DistributeMultiplyOverAdditive(&current) {
			changed = true
		}
		if EvaluateConstantBinary(&current) {
			changed = true
		}
		specialChanged, err := EvaluateSpecialCases(&current)
		if err != nil {
			return nil, err
		}
		if specialChanged {
			changed = true
		}
		if SeparateIntoUnary(&current) {
			changed = true
		}
		if CombineLikeTerms(&current) {
			changed = true
		}

		if !changed {
			return current, nil
		}
	}

	return nil, casErr.New(casErr.NotConverged, "simplifier did not converge")
}
