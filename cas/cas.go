/*
File    : algebra-cas/cas/cas.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package cas wires the lexer, parser, simplify, isolate, and solve
// packages together into the engine's three public operations. It is the
// single entry point external callers (and cmd/cas) use; nothing outside
// this package needs to know a term.Node exists.
package cas

import (
	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/evalconst"
	"github.com/akashmaji946/algebra-cas/isolate"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/parser"
	"github.com/akashmaji946/algebra-cas/simplify"
	"github.com/akashmaji946/algebra-cas/solve"
	"github.com/akashmaji946/algebra-cas/term"
)

// renderRoot renders n's canonical string, stripping the single outer
// layer of parentheses a Binary root's String() always adds: term.Node's
// String() parenthesizes every Binary unconditionally (so nested
// structure stays unambiguous), but the engine's external interface
// renders a root-level expression or equation without that redundant
// outermost wrap.
func renderRoot(n term.Node) string {
	s := n.String()
	if _, ok := n.(*term.Binary); ok && len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}

// SolveResult is Solve's return value: the solved equation
// "variable = value", rendered to canonical form, plus the chain of
// intermediate equations the best-first search visited on its way there.
type SolveResult struct {
	Result string
	Steps  []string
}

// Simplify parses expr and runs it to a simplification fixpoint using the
// default Config.
func Simplify(expr string) (string, error) {
	return SimplifyWith(config.Default(), expr)
}

// SimplifyWith is Simplify with an explicit Config, for callers that need
// non-default iteration caps.
func SimplifyWith(cfg config.Config, expr string) (string, error) {
	node, err := parser.Parse(expr)
	if err != nil {
		return "", err
	}
	result, err := simplify.Simplify(cfg, node)
	if err != nil {
		return "", err
	}
	return renderRoot(result), nil
}

// Isolate parses equation, isolates variable on the left side, and
// simplifies the result. equation must parse to an "="-rooted tree;
// anything else fails with casErr.NotAnEquation.
func Isolate(equation, variable string) (string, error) {
	return IsolateWith(config.Default(), equation, variable)
}

// IsolateWith is Isolate with an explicit Config. isolate.Isolate only
// ever re-checks the split between the two sides of "="; when a variable
// occurrence has leaked into the right side (e.g. both sides of the
// source equation mention the target), a single isolate+simplify round
// can leave the left side wrapped in a Unary rather than bare, because the
// simplifier's own CombineLikeTerms pass can re-merge a variable leaf back
// onto the left slot after the isolator already moved on. So IsolateWith
// re-runs isolate+simplify on the result until the left side is the bare
// variable or nothing changes anymore (an uninvertible operator, e.g. ^ or
// sqrt, stalls permanently and is returned as-is).
func IsolateWith(cfg config.Config, equation, variable string) (string, error) {
	node, err := parser.Parse(equation)
	if err != nil {
		return "", err
	}

	current := node
	for iteration := 0; iteration < cfg.MaxIterationsExecuteSteps; iteration++ {
		isolated, err := isolate.Isolate(cfg, current, variable)
		if err != nil {
			return "", err
		}
		result, err := simplify.Simplify(cfg, isolated)
		if err != nil {
			return "", err
		}
		if isolate.IsIsolated(result, variable) || result.Equal(current) {
			return renderRoot(result), nil
		}
		current = result
	}

	return "", casErr.New(casErr.NotConverged, "isolate did not converge")
}

// Solve parses every equation in equations, runs the best-first search for
// variable, and returns the solved value plus the search's step trace.
func Solve(equations []string, variable string) (SolveResult, error) {
	return SolveWith(config.Default(), equations, variable)
}

// SolveWith is Solve with an explicit Config.
func SolveWith(cfg config.Config, equations []string, variable string) (SolveResult, error) {
	nodes := make([]term.Node, len(equations))
	for i, src := range equations {
		node, err := parser.Parse(src)
		if err != nil {
			return SolveResult{}, err
		}
		nodes[i] = node
	}

	result, err := solve.Solve(cfg, nodes, variable)
	if err != nil {
		return SolveResult{}, err
	}
	return SolveResult{Result: result.Value, Steps: result.Steps}, nil
}

// Evaluate parses expr and walks it to a single real value under env, a
// standalone "evaluate under an assignment context" operation alongside
// Simplify/Isolate/Solve.
func Evaluate(expr string, env map[string]float64) (float64, error) {
	node, err := parser.Parse(expr)
	if err != nil {
		return 0, err
	}
	return evalconst.Eval(env, node)
}

// AssignAndEvaluate parses an "x = <expr>" assignment, evaluates the
// right-hand side under env, and returns the bound variable name and
// value.
func AssignAndEvaluate(assignment string, env map[string]float64) (name string, value float64, err error) {
	node, err := parser.Parse(assignment)
	if err != nil {
		return "", 0, err
	}
	return evalconst.Assign(env, node)
}

// IsEquation reports whether expr parses to an "="-rooted tree, letting a
// caller check its input before calling Isolate/Solve, which themselves
// fail with casErr.NotAnEquation on such input.
func IsEquation(expr string) (bool, error) {
	node, err := parser.Parse(expr)
	if err != nil {
		return false, err
	}
	bin, ok := node.(*term.Binary)
	return ok && bin.Tok.Kind == lexer.Assign, nil
}
