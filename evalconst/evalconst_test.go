/*
File    : algebra-cas/evalconst/evalconst_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evalconst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/algebra-cas/casErr"
	"github.com/akashmaji946/algebra-cas/lexer"
	"github.com/akashmaji946/algebra-cas/parser"
)

func TestFold(t *testing.T) {
	three := lexer.NewToken(lexer.Number, "3")
	two := lexer.NewToken(lexer.Number, "2")

	sum, err := Fold(three, lexer.Plus, two)
	assert.NoError(t, err)
	assert.Equal(t, float64(5), sum)

	pow, err := Fold(two, lexer.Power, three)
	assert.NoError(t, err)
	assert.Equal(t, float64(8), pow)

	_, err = Fold(three, lexer.Divide, lexer.NewToken(lexer.Number, "0"))
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.DivByZero))
}

func TestEval_TreeWalk(t *testing.T) {
	node, err := parser.Parse("2 * (x + 1) - 3")
	assert.NoError(t, err)

	value, err := Eval(map[string]float64{"x": 4}, node)
	assert.NoError(t, err)
	assert.Equal(t, float64(7), value)
}

func TestEval_UndefinedVariableFails(t *testing.T) {
	node, err := parser.Parse("x + 1")
	assert.NoError(t, err)

	_, err = Eval(map[string]float64{}, node)
	assert.Error(t, err)
}

func TestAssign(t *testing.T) {
	node, err := parser.Parse("x = 2 * 3 + 1")
	assert.NoError(t, err)

	name, value, err := Assign(map[string]float64{}, node)
	assert.NoError(t, err)
	assert.Equal(t, "x", name)
	assert.Equal(t, float64(7), value)
}

func TestAssign_NonEquationFails(t *testing.T) {
	node, err := parser.Parse("x + 1")
	assert.NoError(t, err)

	_, _, err = Assign(map[string]float64{}, node)
	assert.Error(t, err)
	assert.True(t, casErr.Is(err, casErr.NotAnEquation))
}
