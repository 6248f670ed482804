package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/all-an/nimlisp/ast"
	"github.com/all-an/nimlisp/parser"
)

func mustParse(t *testing.T, in string) *ast.Node {
	t.Helper()

	node, err := parser.ParseString(in)
	require.NoError(t, err, "input: %q", in)
	return node
}

func TestEvalResults(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		// self-evaluating literals
		{`42`, `42`},
		{`-7`, `-7`},
		{`"hello"`, `"hello"`},
		{`#t`, `#t`},
		{`#f`, `#f`},
		{`()`, `()`},

		// addition
		{`(+)`, `0`},
		{`(+ 5)`, `5`},
		{`(+ 1 2)`, `3`},
		{`(+ 1 2 3 4)`, `10`},
		{`(+ -1 1)`, `0`},

		// multiplication
		{`(*)`, `1`},
		{`(* 7)`, `7`},
		{`(* 2 3 4)`, `24`},

		// subtraction
		{`(- 5)`, `-5`},
		{`(- -5)`, `5`},
		{`(- 10 3)`, `7`},
		{`(- 10 3 2)`, `5`},

		// division
		{`(/ 1)`, `1`},
		{`(/ 2)`, `0`},
		{`(/ 10 2)`, `5`},
		{`(/ 7 2)`, `3`},
		{`(/ -7 2)`, `-3`},
		{`(/ 100 5 2)`, `10`},

		// nesting
		{`(+ (* 2 3) (- 10 4))`, `12`},
		{`(* (+ 1 1) (+ 2 2) (- 3))`, `-24`},

		// quoting suppresses evaluation
		{`'foo`, `foo`},
		{`'(+ 1 2)`, `(+ 1 2)`},
		{`'(undefined (nested "stuff") #t)`, `(undefined (nested "stuff") #t)`},
		{`''x`, `'x`},
	}

	for i := range testCases {
		node := mustParse(t, testCases[i].In)

		result, err := Eval(node)
		require.NoError(t, err, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(result)), "input: %q", testCases[i].In)
	}
}

func TestEvalErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err string
	}{
		{`foo`, `Undefined symbol: foo`},
		{`(1 2 3)`, `First element of list must be a function symbol`},
		{`((+ 1 2) 3)`, `First element of list must be a function symbol`},
		{`(bogus 1 2)`, `Unknown function: bogus`},

		{`(+ 1 "two")`, `Addition requires numeric arguments`},
		{`(+ 1 #t)`, `Addition requires numeric arguments`},
		{`(* 2 "x")`, `Multiplication requires numeric arguments`},
		{`(- 1 "x")`, `Subtraction requires numeric arguments`},
		{`(/ 4 "x")`, `Division requires numeric arguments`},

		{`(-)`, `Subtraction requires at least one argument`},
		{`(/)`, `Division requires at least one argument`},

		{`(/ 1 0)`, `Division by zero`},
		{`(/ 0)`, `Division by zero`},
		{`(/ 10 2 0)`, `Division by zero`},

		// failures inside arguments propagate out unchanged
		{`(+ 1 unbound)`, `Undefined symbol: unbound`},
		{`(+ 1 (/ 1 0))`, `Division by zero`},
		{`(+ (nope) 1)`, `Unknown function: nope`},
	}

	for i := range testCases {
		node := mustParse(t, testCases[i].In)

		result, err := Eval(node)
		assert.Nil(t, result, "input: %q", testCases[i].In)
		assert.EqualError(t, err, testCases[i].Err, "input: %q", testCases[i].In)
	}
}

func TestEvalQuoteLaw(t *testing.T) {
	// evaluating a quoted expression yields the expression itself,
	// unevaluated
	testCases := []string{
		`foo`,
		`(+ 1 2)`,
		`(a (b c) "d" 5 #f)`,
		`()`,
	}

	for i := range testCases {
		quoted := mustParse(t, "'"+testCases[i])
		plain := mustParse(t, testCases[i])

		result, err := Eval(quoted)
		require.NoError(t, err)
		assert.Equal(t, string(ast.Encode(plain)), string(ast.Encode(result)))
	}
}

func TestEvalDoesNotMutate(t *testing.T) {
	node := mustParse(t, `(+ 1 (* 2 3))`)
	before := string(ast.Encode(node))

	result, err := Eval(node)
	require.NoError(t, err)

	assert.Equal(t, `7`, string(ast.Encode(result)))
	assert.Equal(t, before, string(ast.Encode(node)))
}
