/*
File    : algebra-cas/isolate/isolate_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package isolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/parser"
	"github.com/akashmaji946/algebra-cas/simplify"
)

type isolateCase struct {
	Equation string
	Variable string
	Expected string
}

func TestIsolate_Variable(t *testing.T) {
	tests := []isolateCase{
		{"x + 3 = 7", "x", "(x = (7 - 3))"},
		{"x - y = 0", "x", "(x = (0 + y))"},
		{"2 * x = 10", "x", "(x = (10 / 2))"},
		{"x / 3 = 2", "x", "(x = (2 * 3))"},
		{"-x = 2", "x", "(x = -2)"},
	}

	cfg := config.Default()
	for _, tc := range tests {
		node, err := parser.Parse(tc.Equation)
		require.NoError(t, err, "parsing %q", tc.Equation)

		result, err := Isolate(cfg, node, tc.Variable)
		require.NoError(t, err, "isolating %q for %q", tc.Equation, tc.Variable)
		assert.True(t, IsIsolated(result, tc.Variable), "result %q is not isolated for %q", result.String(), tc.Variable)
		assert.Equal(t, tc.Expected, result.String(), "isolating %q for %q", tc.Equation, tc.Variable)
	}
}

func TestIsolate_ThenSimplifyMatchesExpected(t *testing.T) {
	cfg := config.Default()
	tests := []isolateCase{
		{"x + 3 = 7", "x", "(x = 4)"},
		{"2 * x = 10", "x", "(x = 5)"},
		{"x - y = 0", "x", "(x = y)"},
	}

	for _, tc := range tests {
		node, err := parser.Parse(tc.Equation)
		require.NoError(t, err)

		isolated, err := Isolate(cfg, node, tc.Variable)
		require.NoError(t, err)

		simplified, err := simplify.Simplify(cfg, isolated)
		require.NoError(t, err)
		assert.Equal(t, tc.Expected, simplified.String())
	}
}

func TestIsolate_NotAnEquationFails(t *testing.T) {
	node, err := parser.Parse("x + 1")
	require.NoError(t, err)

	_, err = Isolate(config.Default(), node, "x")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.NotAnEquation))
}

func TestIsolate_UninvertibleOperatorStalls(t *testing.T) {
	node, err := parser.Parse("x ^ 2 = 4")
	require.NoError(t, err)

	result, err := Isolate(config.Default(), node, "x")
	require.NoError(t, err)
	assert.False(t, IsIsolated(result, "x"))
}
