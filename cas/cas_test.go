/*
File    : algebra-cas/cas/cas_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/algebra-cas/casErr"
)

func TestSimplify(t *testing.T) {
	result, err := Simplify("2 * (x + 1) - x")
	require.NoError(t, err)
	assert.Equal(t, "x + 2", result)
}

func TestSimplify_SyntaxErrorPropagates(t *testing.T) {
	_, err := Simplify("1 + )")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.ParseError))
}

func TestIsolate(t *testing.T) {
	result, err := Isolate("2 * x + 3 = 11", "x")
	require.NoError(t, err)
	assert.Equal(t, "x = 4", result)
}

// TestIsolate_VariableLeaksToBothSides covers a variable that appears on
// both sides of an additive split: the first isolate+simplify round moves x
// to the left but also distributes a second x term out of 2 * (x + 5) onto
// the right, and CombineLikeTerms folds that leaked term back across "=",
// landing a Unary(Minus, x) on the left instead of the bare variable.
// IsolateWith must keep iterating past that round until x sits bare on the
// left.
func TestIsolate_VariableLeaksToBothSides(t *testing.T) {
	result, err := Isolate("(x + 2) - (y - 3) = 2 * (x + 5)", "x")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result, "x = "), "left side must be the bare variable, got %q", result)

	rhsExpr := strings.TrimPrefix(result, "x = ")
	for _, y := range []float64{-4, 0, 3, 10} {
		xVal, err := Evaluate(rhsExpr, map[string]float64{"y": y})
		require.NoError(t, err)

		lhsVal, err := Evaluate("(x + 2) - (y - 3)", map[string]float64{"x": xVal, "y": y})
		require.NoError(t, err)
		rhsVal, err := Evaluate("2 * (x + 5)", map[string]float64{"x": xVal, "y": y})
		require.NoError(t, err)
		assert.InDelta(t, rhsVal, lhsVal, 1e-9, "isolated x=%v does not satisfy the original equation for y=%v", xVal, y)
	}
}

func TestIsolate_NonEquationFails(t *testing.T) {
	_, err := Isolate("x + 1", "x")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.NotAnEquation))
}

func TestSolve(t *testing.T) {
	result, err := Solve([]string{"x = y + 2", "y = 5"}, "x")
	require.NoError(t, err)
	name, value, err := AssignAndEvaluate(result.Result, map[string]float64{})
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.InDelta(t, 7, value, 1e-9)
	assert.NotEmpty(t, result.Steps)
}

func TestEvaluate(t *testing.T) {
	value, err := Evaluate("2 * (x + 1) - 3", map[string]float64{"x": 4})
	require.NoError(t, err)
	assert.Equal(t, float64(7), value)
}

func TestAssignAndEvaluate(t *testing.T) {
	name, value, err := AssignAndEvaluate("x = 3 * 2 + 1", map[string]float64{})
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, float64(7), value)
}

func TestIsEquation(t *testing.T) {
	ok, err := IsEquation("x = 2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsEquation("x + 2")
	require.NoError(t, err)
	assert.False(t, ok)
}
