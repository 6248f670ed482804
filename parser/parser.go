package parser

import (
	"fmt"
	"strconv"

	"github.com/all-an/nimlisp/ast"
	"github.com/all-an/nimlisp/lexer"
)

// Parser consumes a token sequence with one token of lookahead and
// builds exactly one expression out of it.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over an already tokenized sequence. The sequence
// must be terminated by a TokenEOF token, which is what lexer.Tokenize
// guarantees.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes in and parses it as a single expression. Trailing
// tokens after a complete expression are an error, as is empty or
// whitespace-only input.
func Parse(in []byte) (*ast.Node, error) {
	tokens := lexer.Tokenize(in)

	for i := range tokens {
		if tokens[i].Is(lexer.TokenError) {
			return nil, errorAt(&tokens[i], "Syntax error: %s", tokens[i].Text())
		}
	}

	if tokens[0].Is(lexer.TokenEOF) {
		return nil, ErrEmptyInput
	}

	p := New(tokens)

	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); !tok.Is(lexer.TokenEOF) {
		return nil, errorAt(tok, "Unexpected token after expression: %q", tok.Text())
	}

	return node, nil
}

// ParseString is a convenience wrapper around Parse
func ParseString(in string) (*ast.Node, error) {
	return Parse([]byte(in))
}

func (p *Parser) peek() *lexer.Token {
	return &p.tokens[p.pos]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if !tok.Is(lexer.TokenEOF) {
		p.pos++
	}
	return tok
}

// parsePrimary parses one expression. The grammar has a single rule:
// every failure in a recursive call is returned to the caller
// unchanged, so the first failure anywhere aborts the whole parse.
func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenNumber:
		v, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		return ast.NewNumber(tok, v), nil

	case lexer.TokenString:
		return ast.NewString(tok, tok.Text()), nil

	case lexer.TokenBool:
		return ast.NewBool(tok, tok.Text() == "#t"), nil

	case lexer.TokenSymbol:
		return ast.NewSymbol(tok, tok.Text()), nil

	case lexer.TokenOpenParen:
		return p.parseList(tok)

	case lexer.TokenQuote:
		child, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.NewQuote(tok, child), nil

	case lexer.TokenEOF:
		return nil, ErrUnexpectedEOF
	}

	return nil, errorAt(tok, "Unexpected token %q", tok.Text())
}

// parseList consumes sub-expressions until the matching close paren.
// Zero children is the empty list, a valid value.
func (p *Parser) parseList(open *lexer.Token) (*ast.Node, error) {
	children := []*ast.Node{}

	for {
		switch p.peek().Type() {
		case lexer.TokenCloseParen:
			p.next()
			return ast.NewList(open, children...), nil

		case lexer.TokenEOF:
			return nil, ErrMissingCloseParen
		}

		child, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func errorAt(tok *lexer.Token, format string, args ...interface{}) error {
	line, col := tok.Pos()
	return fmt.Errorf(format+" at %d:%d", append(args, line, col)...)
}
