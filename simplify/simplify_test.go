/*
File    : algebra-cas/simplify/simplify_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/config"
	"github.com/akashmaji946/algebra-cas/parser"
)

type simplifyCase struct {
	Input    string
	Expected string
}

func TestSimplify_Arithmetic(t *testing.T) {
	tests := []simplifyCase{
		{"1 + 2 + 3", "6"},
		{"2 * 3 + 4", "10"},
		{"x + 0", "x"},
		{"0 + x", "x"},
		{"x - 0", "x"},
		{"x * 1", "x"},
		{"1 * x", "x"},
		{"x * 0", "0"},
		{"0 * x", "0"},
		{"x / 1", "x"},
		{"0 / x", "0"},
		{"--x", "x"},
		{"-+-x", "x"},
		{"+x", "x"},
		{"-(x + 1)", "(-x - 1)"},
		{"2 * (x + 1)", "((2 * x) + 2)"},
		{"x + x", "(2 * x)"},
		{"x + 2x", "(3 * x)"},
		{"x + x + x", "(3 * x)"},
		{"2x - x", "x"},
		{"x - x", "0"},
	}

	cfg := config.Default()
	for _, tc := range tests {
		node, err := parser.Parse(tc.Input)
		assert.NoError(t, err, "parsing %q", tc.Input)

		result, err := Simplify(cfg, node)
		assert.NoError(t, err, "simplifying %q", tc.Input)
		if err == nil {
			assert.Equal(t, tc.Expected, result.String(), "input: %q", tc.Input)
		}
	}
}

func TestSimplify_DivisionByZeroFails(t *testing.T) {
	node, err := parser.Parse("x / 0")
	assert.NoError(t, err)

	_, err = Simplify(config.Default(), node)
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.DivByZero))
}

func TestSimplify_IsIdempotent(t *testing.T) {
	node, err := parser.Parse("2x + 3x - x + 5 - 2")
	assert.NoError(t, err)

	once, err := Simplify(config.Default(), node)
	assert.NoError(t, err)

	twice, err := Simplify(config.Default(), once.Clone())
	assert.NoError(t, err)

	assert.Equal(t, once.String(), twice.String())
}
