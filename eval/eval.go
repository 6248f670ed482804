// Package eval reduces syntax trees to value nodes. Evaluation is pure:
// there is no environment, no side effects and no mutation, every
// result is a fresh node.
package eval

import (
	"fmt"

	"github.com/all-an/nimlisp/ast"
)

// Eval interprets a single node under self-evaluating-literal semantics
// plus the fixed arithmetic built-ins. The first failure anywhere
// aborts the whole evaluation with that message.
func Eval(node *ast.Node) (*ast.Node, error) {
	switch node.Type() {
	case ast.NodeTypeNumber, ast.NodeTypeString, ast.NodeTypeBool:
		return node, nil

	case ast.NodeTypeQuote:
		// the held child comes back unevaluated, code-shaped data
		// stays data
		return node.Quoted(), nil

	case ast.NodeTypeSymbol:
		return nil, fmt.Errorf("Undefined symbol: %s", node.Text())

	case ast.NodeTypeList:
		return evalList(node)
	}

	panic("unknown node type")
}

func evalList(node *ast.Node) (*ast.Node, error) {
	items := node.List()

	if len(items) == 0 {
		return node, nil
	}

	head := items[0]
	if !head.Is(ast.NodeTypeSymbol) {
		return nil, errHeadNotSymbol
	}

	fn, ok := builtins[head.Text()]
	if !ok {
		return nil, fmt.Errorf("Unknown function: %s", head.Text())
	}

	args := make([]*ast.Node, 0, len(items)-1)
	for _, item := range items[1:] {
		v, err := Eval(item)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	return fn(args)
}
