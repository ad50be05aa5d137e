/*
File    : algebra-cas/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/algebra-cas/casErr"
)

type parseCase struct {
	Input    string
	Expected string
}

func TestParse_CanonicalString(t *testing.T) {
	tests := []parseCase{
		{"1 + 2", "(1 + 2)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"2x", "(2 * x)"},
		{"2(x + 1)", "(2 * (x + 1))"},
		{"2x^2", "(2 * (x ^ 2))"},
		{"2^3^2", "(2 ^ (3 ^ 2))"},
		{"-x + 1", "(-x + 1)"},
		{"x = 2y + 1", "(x = ((2 * y) + 1))"},
		{"x - -1", "(x - -1)"},
	}

	for _, tc := range tests {
		node, err := Parse(tc.Input)
		assert.NoError(t, err, "input: %q", tc.Input)
		if err == nil {
			assert.Equal(t, tc.Expected, node.String(), "input: %q", tc.Input)
		}
	}
}

func TestParse_AssignIsLowestBindingPower(t *testing.T) {
	node, err := Parse("x = y = 1")
	assert.NoError(t, err)
	assert.Equal(t, "(x = (y = 1))", node.String())
}

func TestParse_UnmatchedParenFails(t *testing.T) {
	_, err := Parse("(1 + 2")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.ParseError))
}

func TestParse_TrailingTokenFails(t *testing.T) {
	_, err := Parse("1 + 2)")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.ParseError))
}

func TestParse_UnexpectedTokenFails(t *testing.T) {
	_, err := Parse("* 2")
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.ParseError))
}
