/*
File    : algebra-cas/solve/solve.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package solve implements the best-first equation solver: given a system
// of equations and a target variable, it finds the equation (or chain of
// substitutions) that isolates the target with the fewest distinct
// variables remaining, using a dependency index, a per-entry isolated-
// equation substitution cache, and a priority-queue search strategy.
package solve

import (
	"container/heap"

	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/isolate"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/simplify"
	"github.com/akashmaji946/algebra-cas/term"
)

// Result is the solved equation's text ("variable = value"), plus the
// chain of intermediate equations the search produced on its way there,
// most recent last.
type Result struct {
	Value string
	Steps []string
}

// renderEquation renders bin's canonical string with the single outer
// layer of parentheses term.Binary.String() always adds stripped off, so
// "(x = 4)" reads as "x = 4".
func renderEquation(bin *term.Binary) string {
	s := bin.String()
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		return s[1 : len(s)-1]
	}
	return s
}

// extractVariables collects every distinct variable name appearing in n.
func extractVariables(n term.Node) map[string]struct{} {
	vars := make(map[string]struct{})
	var walk func(term.Node)
	walk = func(n term.Node) {
		switch v := n.(type) {
		case *term.Atom:
			if v.Tok.Kind == lexer.Variable {
				vars[v.Tok.Lexeme] = struct{}{}
			}
		case *term.Unary:
			walk(v.Operand)
		case *term.Binary:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(n)
	return vars
}

// countVariableOccurrences counts every variable-atom occurrence in n,
// counting repeats (e.g. "x + 2*x - y + x" counts x three times).
func countVariableOccurrences(n term.Node) int {
	switch v := n.(type) {
	case *term.Atom:
		if v.Tok.Kind == lexer.Variable {
			return 1
		}
		return 0
	case *term.Unary:
		return countVariableOccurrences(v.Operand)
	case *term.Binary:
		return countVariableOccurrences(v.Left) + countVariableOccurrences(v.Right)
	default:
		return 0
	}
}

// countDistinctVariables is len(extractVariables(n)), named separately for
// readability at call sites.
func countDistinctVariables(n term.Node) int {
	return len(extractVariables(n))
}

// containsVariable reports whether n mentions variable anywhere.
func containsVariable(n term.Node, variable string) bool {
	_, ok := extractVariables(n)[variable]
	return ok
}

// substituteVariable replaces every occurrence of variable in n with a
// fresh clone of substitution.
func substituteVariable(n term.Node, variable string, substitution term.Node) term.Node {
	switch v := n.(type) {
	case *term.Atom:
		if v.Tok.Kind == lexer.Variable && v.Tok.Lexeme == variable {
			return substitution.Clone()
		}
		return n
	case *term.Unary:
		return term.NewUnary(v.Tok, substituteVariable(v.Operand, variable, substitution))
	case *term.Binary:
		return term.NewBinary(v.Tok, substituteVariable(v.Left, variable, substitution), substituteVariable(v.Right, variable, substitution))
	default:
		return n
	}
}

// reorderConstants swaps a Multiply node's children so a Number operand
// sits on the left; this keeps CombineLikeTerms' coefficient-extraction
// pattern (numberVariablePair) finding the common "k * v" shape after
// normalization moves terms around freely.
func reorderConstants(n term.Node) term.Node {
	switch v := n.(type) {
	case *term.Binary:
		left := reorderConstants(v.Left)
		right := reorderConstants(v.Right)
		if v.Tok.Kind == lexer.Multiply {
			_, leftIsNum := left.(*term.Atom)
			_, rightIsNum := right.(*term.Atom)
			leftIsNum = leftIsNum && left.(*term.Atom).Tok.Kind == lexer.Number
			rightIsNum = rightIsNum && right.(*term.Atom).Tok.Kind == lexer.Number
			if !leftIsNum && rightIsNum {
				left, right = right, left
			}
		}
		return term.NewBinary(v.Tok, left, right)
	case *term.Unary:
		return term.NewUnary(v.Tok, reorderConstants(v.Operand))
	default:
		return n
	}
}

// normalizeEquation rewrites "LHS = RHS" to "(LHS - RHS) = 0", then
// reorders constants so later passes see a canonical shape regardless of
// which side of the source equation each term started on.
func normalizeEquation(equation term.Node) (term.Node, error) {
	bin, ok := equation.(*term.Binary)
	if !ok || bin.Tok.Kind != lexer.Assign {
		return nil, casErr.New(casErr.NotAnEquation, "solve requires \"=\"-rooted equations")
	}
	minusTok := lexer.NewToken(lexer.Minus, "-")
	assignTok := lexer.NewToken(lexer.Assign, "=")
	zero := term.NewAtom(lexer.NewToken(lexer.Number, "0"))

	newLHS := term.NewBinary(minusTok, bin.Left, bin.Right)
	normalized := term.NewBinary(assignTok, newLHS, zero)
	return reorderConstants(normalized), nil
}

// entry is one equation tracked by the search, equivalent to original_
// source's EquationEntry: the equation itself, its variable set and
// occurrence/distinct counts (kept alongside rather than recomputed on
// every heap comparison), and a memo of variables already substituted in
// via an isolated form, so the search never re-derives the same
// substitution twice for one entry.
type entry struct {
	equation          term.Node
	vars              map[string]struct{}
	numVariables      int
	distinctVariables int
	isolatedEquations map[string]term.Node
}

func newEntry(equation term.Node) entry {
	return entry{
		equation:          equation,
		vars:              extractVariables(equation),
		numVariables:      countVariableOccurrences(equation),
		distinctVariables: countDistinctVariables(equation),
		isolatedEquations: make(map[string]term.Node),
	}
}

func (e entry) clone() entry {
	isolated := make(map[string]term.Node, len(e.isolatedEquations))
	for k, v := range e.isolatedEquations {
		isolated[k] = v.Clone()
	}
	vars := make(map[string]struct{}, len(e.vars))
	for k := range e.vars {
		vars[k] = struct{}{}
	}
	return entry{
		equation:          e.equation.Clone(),
		vars:              vars,
		numVariables:      e.numVariables,
		distinctVariables: e.distinctVariables,
		isolatedEquations: isolated,
	}
}

// entryHeap is a min-heap over entries ordered by distinctVariables first
// (fewer dependencies is more promising), then numVariables.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].distinctVariables != h[j].distinctVariables {
		return h[i].distinctVariables < h[j].distinctVariables
	}
	return h[i].numVariables < h[j].numVariables
}
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)        { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Solve runs the best-first search over equations, isolating variable.
// Every equation is normalized and
// simplified first; the search pops the entry with fewest distinct
// variables, isolates and substitutes one dependency at a time, and caches
// both the per-entry isolated form (isolatedEquations) and cross-equation
// substitutions (varToEquation) so later pops reuse earlier work.
func Solve(cfg config.Config, equations []term.Node, variable string) (Result, error) {
	queue := &entryHeap{}
	heap.Init(queue)
	varToEquation := make(map[string][]entry)

	for _, eq := range equations {
		normalized, err := normalizeEquation(eq)
		if err != nil {
			return Result{}, err
		}
		simplified, err := simplify.Simplify(cfg, normalized)
		if err != nil {
			return Result{}, err
		}

		e := newEntry(simplified)
		for v := range e.vars {
			varToEquation[v] = append(varToEquation[v], e.clone())
		}
		if containsVariable(e.equation, variable) {
			heap.Push(queue, e)
		}
	}

	visited := make(map[string]struct{})
	bestDistinctVars := int(^uint(0) >> 1) // max int
	iterationsSinceImprovement := 0
	steps := []string{}
	pops := 0

	for queue.Len() > 0 {
		if pops >= cfg.MaxIterationsConvergeSolve {
			return Result{}, casErr.New(casErr.NotConverged, "equation solver did not converge")
		}

		current := heap.Pop(queue).(entry)
		pops++
		eqStr := current.equation.String()
		if _, seen := visited[eqStr]; seen {
			continue
		}
		visited[eqStr] = struct{}{}
		steps = append(steps, eqStr)

		if current.distinctVariables < bestDistinctVars {
			bestDistinctVars = current.distinctVariables
			iterationsSinceImprovement = 0
		} else if !(current.distinctVariables == 2 && func() bool { _, ok := current.vars[variable]; return ok }()) {
			iterationsSinceImprovement++
			if iterationsSinceImprovement > cfg.MaxIterationsWithoutImprovement {
				return Result{}, casErr.New(casErr.NotConverged, "equation solver stuck without improvement")
			}
		}

		if _, targetPresent := current.vars[variable]; current.numVariables == 1 && targetPresent {
			isolated, err := isolate.Isolate(cfg, current.equation.Clone(), variable)
			if err != nil {
				return Result{}, err
			}
			simplified, err := simplify.Simplify(cfg, isolated)
			if err != nil {
				return Result{}, err
			}
			bin, ok := simplified.(*term.Binary)
			if !ok {
				return Result{}, casErr.New(casErr.CannotDerive, "isolated equation is not an equation")
			}
			return Result{Value: renderEquation(bin), Steps: steps}, nil
		}

		if current.numVariables == 1 {
			var solvedVar string
			for v := range current.vars {
				solvedVar = v
			}

			isolated, err := isolate.Isolate(cfg, current.equation.Clone(), solvedVar)
			if err != nil {
				return Result{}, err
			}
			simplified, err := simplify.Simplify(cfg, isolated)
			if err != nil {
				return Result{}, err
			}
			bin, ok := simplified.(*term.Binary)
			if !ok {
				continue
			}
			solvedValue := bin.Right

			for _, related := range varToEquation[solvedVar] {
				if related.equation.String() == current.equation.String() {
					continue
				}
				if !containsVariable(related.equation, variable) {
					continue
				}

				newEntry := related.clone()
				newEntry.equation = substituteVariable(newEntry.equation, solvedVar, solvedValue)
				newEntry.equation, err = simplify.Simplify(cfg, newEntry.equation)
				if err != nil {
					return Result{}, err
				}

				newDistinct := countDistinctVariables(newEntry.equation)
				if newDistinct < related.distinctVariables {
					newEntry.numVariables = countVariableOccurrences(newEntry.equation)
					newEntry.distinctVariables = newDistinct
					newEntry.vars = extractVariables(newEntry.equation)

					for v := range newEntry.vars {
						varToEquation[v] = append(varToEquation[v], newEntry.clone())
					}
					heap.Push(queue, newEntry)
				}
			}
			continue
		}

		varsToProcess := current.vars
		for v := range varsToProcess {
			if v == variable {
				continue
			}

			if isolatedEq, ok := current.isolatedEquations[v]; ok {
				current.equation = substituteVariable(current.equation, v, isolatedEq)
				var err error
				current.equation, err = simplify.Simplify(cfg, current.equation)
				if err != nil {
					return Result{}, err
				}
				current.numVariables = countVariableOccurrences(current.equation)
				current.distinctVariables = countDistinctVariables(current.equation)
				current.vars = extractVariables(current.equation)
				heap.Push(queue, current)
				break
			}

			related, ok := varToEquation[v]
			if !ok || len(related) == 0 {
				return Result{}, casErr.CannotDeriveVar(v)
			}

			for _, relatedEq := range related {
				if relatedEq.equation.String() == current.equation.String() {
					continue
				}

				newEntry := current.clone()

				isolated, err := isolate.Isolate(cfg, relatedEq.equation.Clone(), v)
				if err != nil {
					return Result{}, err
				}
				simplified, err := simplify.Simplify(cfg, isolated)
				if err != nil {
					return Result{}, err
				}
				bin, ok := simplified.(*term.Binary)
				if !ok {
					continue
				}

				newEntry.equation = substituteVariable(newEntry.equation, v, bin.Right)
				newEntry.equation, err = simplify.Simplify(cfg, newEntry.equation)
				if err != nil {
					return Result{}, err
				}

				newNumVariables := countVariableOccurrences(newEntry.equation)
				newDistinctVariables := countDistinctVariables(newEntry.equation)

				if float64(newDistinctVariables)/float64(current.distinctVariables) > cfg.LimitRatioNewDistinctVars {
					continue
				}

				newEntry.numVariables = newNumVariables
				newEntry.distinctVariables = newDistinctVariables
				newEntry.vars = extractVariables(newEntry.equation)

				for nv := range newEntry.vars {
					varToEquation[nv] = append(varToEquation[nv], newEntry.clone())
				}
				newEntry.isolatedEquations[v] = simplified.Clone()

				heap.Push(queue, newEntry)
			}
		}
	}

	return Result{}, casErr.CannotDeriveVar(variable)
}
