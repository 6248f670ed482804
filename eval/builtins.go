package eval

import (
	"errors"

	"github.com/all-an/nimlisp/ast"
)

var (
	errHeadNotSymbol  = errors.New("First element of list must be a function symbol")
	errDivisionByZero = errors.New("Division by zero")

	errAddNonNumeric = errors.New("Addition requires numeric arguments")
	errSubNonNumeric = errors.New("Subtraction requires numeric arguments")
	errMulNonNumeric = errors.New("Multiplication requires numeric arguments")
	errDivNonNumeric = errors.New("Division requires numeric arguments")

	errSubNoArgs = errors.New("Subtraction requires at least one argument")
	errDivNoArgs = errors.New("Division requires at least one argument")
)

// builtinFunc combines already-evaluated arguments into a result node
type builtinFunc func(args []*ast.Node) (*ast.Node, error)

// builtins is the fixed dispatch table of the evaluator. Adding a
// built-in means adding an entry here, the dispatch loop stays
// untouched.
var builtins = map[string]builtinFunc{
	"+": evalAdd,
	"-": evalSub,
	"*": evalMul,
	"/": evalDiv,
}

// numbers unwraps every argument as an integer, failing with onBadType
// on the first argument that is not a number node.
func numbers(args []*ast.Node, onBadType error) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for _, arg := range args {
		if !arg.Is(ast.NodeTypeNumber) {
			return nil, onBadType
		}
		out = append(out, arg.Number())
	}
	return out, nil
}

// evalAdd sums its arguments, zero arguments give the additive identity
func evalAdd(args []*ast.Node) (*ast.Node, error) {
	ns, err := numbers(args, errAddNonNumeric)
	if err != nil {
		return nil, err
	}

	var sum int64
	for _, n := range ns {
		sum += n
	}
	return ast.NewNumber(nil, sum), nil
}

// evalMul multiplies its arguments, zero arguments give the
// multiplicative identity.
func evalMul(args []*ast.Node) (*ast.Node, error) {
	ns, err := numbers(args, errMulNonNumeric)
	if err != nil {
		return nil, err
	}

	prod := int64(1)
	for _, n := range ns {
		prod *= n
	}
	return ast.NewNumber(nil, prod), nil
}

// evalSub negates a single argument, otherwise subtracts the rest from
// the first, left to right.
func evalSub(args []*ast.Node) (*ast.Node, error) {
	ns, err := numbers(args, errSubNonNumeric)
	if err != nil {
		return nil, err
	}

	switch len(ns) {
	case 0:
		return nil, errSubNoArgs
	case 1:
		return ast.NewNumber(nil, -ns[0]), nil
	}

	acc := ns[0]
	for _, n := range ns[1:] {
		acc -= n
	}
	return ast.NewNumber(nil, acc), nil
}

// evalDiv computes the integer reciprocal of a single argument,
// otherwise divides the first argument successively by the rest using
// truncating integer division. Every divisor is checked before
// dividing.
func evalDiv(args []*ast.Node) (*ast.Node, error) {
	ns, err := numbers(args, errDivNonNumeric)
	if err != nil {
		return nil, err
	}

	if len(ns) == 0 {
		return nil, errDivNoArgs
	}

	if len(ns) == 1 {
		if ns[0] == 0 {
			return nil, errDivisionByZero
		}
		return ast.NewNumber(nil, 1/ns[0]), nil
	}

	acc := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return nil, errDivisionByZero
		}
		acc /= n
	}
	return ast.NewNumber(nil, acc), nil
}
