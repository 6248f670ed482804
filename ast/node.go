package ast

import (
	"fmt"

	"github.com/all-an/nimlisp/lexer"
)

// Node represents a leaf or an interior node of the homoiconic syntax
// tree: evaluated code and quoted data share this one representation.
// A node is immutable once constructed, children of a vector node are
// owned exclusively by their parent, and evaluation produces fresh
// nodes instead of rewriting existing ones.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		tok: tok,
		v:   v,
	}
}

// NewNumber creates a node holding an integer value
func NewNumber(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeNumber, tok, v)
}

// NewString creates a node holding a decoded string value
func NewString(tok *lexer.Token, v string) *Node {
	return newNode(NodeTypeString, tok, v)
}

// NewBool creates a node holding a boolean value
func NewBool(tok *lexer.Token, v bool) *Node {
	return newNode(NodeTypeBool, tok, v)
}

// NewSymbol creates a node naming a symbol
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewList creates a node owning the given children, in order. A list
// with no children is the empty list, a valid value of the language.
func NewList(tok *lexer.Token, children ...*Node) *Node {
	return newNode(NodeTypeList, tok, children)
}

// NewQuote creates a node owning a single unevaluated child
func NewQuote(tok *lexer.Token, child *Node) *Node {
	return newNode(NodeTypeQuote, tok, child)
}

// Token returns the token the node was built from. Nodes computed
// during evaluation have no token and return nil.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the variant of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Number returns the integer payload of a number node
func (n *Node) Number() int64 {
	return n.v.(int64)
}

// Text returns the payload of a string node or the name of a symbol
// node.
func (n *Node) Text() string {
	return n.v.(string)
}

// Bool returns the payload of a bool node
func (n *Node) Bool() bool {
	return n.v.(bool)
}

// List returns the children owned by a list node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Quoted returns the single child held unevaluated by a quote node
func (n *Node) Quoted() *Node {
	return n.v.(*Node)
}

// Is returns true if the node matches the given variant
func (n *Node) Is(nt NodeType) bool {
	return n.nt == nt
}

// IsValue returns true if the node carries a scalar payload
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node owns other nodes
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) String() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	case NodeTypeQuote:
		return fmt.Sprintf("(%v): %v", n.nt, n.Quoted())
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}
