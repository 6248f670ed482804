package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/all-an/nimlisp/lexer"
)

func TestNodeTypeConstants(t *testing.T) {
	// every variant constant carries the NodeType type itself, so it
	// compares equal to Node.Type() even through an interface
	assert.IsType(t, NodeType(0), NodeTypeList)
	assert.IsType(t, NodeType(0), NodeTypeQuote)

	assert.Equal(t, NodeTypeList, NewList(nil).Type())
	assert.Equal(t, NodeTypeQuote, NewQuote(nil, NewNumber(nil, 1)).Type())

	for _, nt := range []NodeType{
		NodeTypeNumber,
		NodeTypeString,
		NodeTypeBool,
		NodeTypeSymbol,
		NodeTypeList,
		NodeTypeQuote,
	} {
		assert.NotEmpty(t, nt.String())
	}
}

func TestNodeConstructors(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenNumber, "42", 1, 1)

	num := NewNumber(tok, 42)
	assert.Equal(t, NodeTypeNumber, num.Type())
	assert.Equal(t, int64(42), num.Number())
	assert.Equal(t, tok, num.Token())
	assert.True(t, num.IsValue())
	assert.False(t, num.IsVector())

	str := NewString(nil, "hello")
	assert.Equal(t, NodeTypeString, str.Type())
	assert.Equal(t, "hello", str.Text())
	assert.Nil(t, str.Token())

	sym := NewSymbol(nil, "+")
	assert.Equal(t, NodeTypeSymbol, sym.Type())
	assert.Equal(t, "+", sym.Text())

	boolean := NewBool(nil, true)
	assert.Equal(t, NodeTypeBool, boolean.Type())
	assert.True(t, boolean.Bool())

	list := NewList(nil, num, str)
	assert.Equal(t, NodeTypeList, list.Type())
	assert.Len(t, list.List(), 2)
	assert.True(t, list.IsVector())
	assert.False(t, list.IsValue())

	empty := NewList(nil)
	assert.Len(t, empty.List(), 0)

	quote := NewQuote(nil, sym)
	assert.Equal(t, NodeTypeQuote, quote.Type())
	assert.Equal(t, sym, quote.Quoted())
	assert.True(t, quote.IsVector())
}
