// Package nimlisp implements the front end of a small S-expression
// language: a lexer that turns source text into positioned tokens, a
// recursive-descent parser that builds a homoiconic syntax tree, and a
// pure tree-walking evaluator with four arithmetic built-ins.
package nimlisp

import (
	"github.com/all-an/nimlisp/ast"
	"github.com/all-an/nimlisp/eval"
	"github.com/all-an/nimlisp/parser"
)

// EvalString runs source through the whole pipeline, parse then eval
// then render, and returns the canonical text of the result. Failures
// at any stage come back as a string prefixed with "Error: ", so the
// function itself never fails and drivers can loop on it freely.
func EvalString(source string) string {
	node, err := parser.ParseString(source)
	if err != nil {
		return "Error: " + err.Error()
	}

	value, err := eval.Eval(node)
	if err != nil {
		return "Error: " + err.Error()
	}

	return string(ast.Encode(value))
}
