/*
File    : algebra-cas/solve/solve_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/evalconst"
	"github.com/akashmaji946/algebra-cas/parser"
	"github.com/akashmaji946/algebra-cas/term"
)

func mustParseAll(t *testing.T, sources []string) []term.Node {
	t.Helper()
	nodes := make([]term.Node, len(sources))
	for i, src := range sources {
		n, err := parser.Parse(src)
		require.NoError(t, err, "parsing %q", src)
		nodes[i] = n
	}
	return nodes
}

func solvedValue(t *testing.T, result Result) float64 {
	t.Helper()
	node, err := parser.Parse(result.Value)
	require.NoError(t, err, "re-parsing solved equation %q", result.Value)
	_, value, err := evalconst.Assign(map[string]float64{}, node)
	require.NoError(t, err, "evaluating solved equation %q", result.Value)
	return value
}

func TestSolve_DirectEquation(t *testing.T) {
	equations := mustParseAll(t, []string{"x + 3 = 10"})

	result, err := Solve(config.Default(), equations, "x")
	require.NoError(t, err)
	assert.InDelta(t, 7, solvedValue(t, result), 1e-9)
}

func TestSolve_ChainedSubstitution(t *testing.T) {
	equations := mustParseAll(t, []string{"x = y + 1", "y = 3"})

	result, err := Solve(config.Default(), equations, "x")
	require.NoError(t, err)
	assert.InDelta(t, 4, solvedValue(t, result), 1e-9)
}

func TestSolve_DependencyGraph(t *testing.T) {
	equations := mustParseAll(t, []string{"x = 2 * y", "y = z + 1", "z = 4"})

	result, err := Solve(config.Default(), equations, "x")
	require.NoError(t, err)
	assert.InDelta(t, 10, solvedValue(t, result), 1e-9)
}

func TestSolve_UndefinedVariableFails(t *testing.T) {
	equations := mustParseAll(t, []string{"y = 3"})

	_, err := Solve(config.Default(), equations, "x")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.CannotDerive))
}

func TestSolve_NonEquationFails(t *testing.T) {
	equations := mustParseAll(t, []string{"x + 1"})

	_, err := Solve(config.Default(), equations, "x")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.NotAnEquation))
}
