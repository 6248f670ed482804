package lexer

import (
	"bytes"
	"fmt"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer that reads source text from r
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),

		line: 1,
		col:  1,

		startLine: 1,
		startCol:  1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	buf []rune

	line int
	col  int

	startLine int
	startCol  int
}

// Tokens returns a channel that is going to receive tokens as soon as
// they are detected.
func (lx *Lexer) Tokens() <-chan Token {
	return lx.tokens
}

// Scan runs the lexer until the input is exhausted. Scanning never
// fails: malformed input is emitted as a TokenError token at the
// offending position and the scan resumes right after it. The last
// token is always a single TokenEOF.
func (lx *Lexer) Scan() {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	lx.mark()
	lx.emit(TokenEOF)
	close(lx.tokens)
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitLexeme(tt, string(lx.buf))
}

func (lx *Lexer) emitLexeme(tt TokenType, lexeme string) {
	lx.tokens <- Token{
		tt:     tt,
		lexeme: lexeme,

		line: lx.startLine,
		col:  lx.startCol,
	}
	lx.buf = lx.buf[:0]
}

// mark records the position of the next rune as the start of the token
// under construction.
func (lx *Lexer) mark() {
	lx.startLine = lx.line
	lx.startCol = lx.col
}

func (lx *Lexer) ignore() {
	lx.buf = lx.buf[:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, bool) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), false
	}

	lx.buf = append(lx.buf, r)

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, true
}

func lexDefaultState(lx *Lexer) lexState {
	for isSpace(lx.peek()) {
		lx.next()
	}
	lx.ignore()
	lx.mark()

	r, ok := lx.next()
	if !ok {
		return nil
	}

	switch {
	case r == '(':
		return lexEmit(TokenOpenParen)
	case r == ')':
		return lexEmit(TokenCloseParen)

	case r == '\'':
		return lexEmit(TokenQuote)
	case r == '`':
		return lexEmit(TokenBackquote)
	case r == ',':
		return lexUnquote

	case r == '"':
		return lexString
	case r == '#':
		return lexBool

	case r == '-' && isDigit(lx.peek()):
		return lexNumber
	case isDigit(r):
		return lexNumber

	case isSymbolStart(r):
		return lexSymbol
	}

	return lexErrorf("unexpected character %q", r)
}

func lexUnquote(lx *Lexer) lexState {
	if lx.peek() == '@' {
		lx.next()
		return lexEmit(TokenUnquoteSplice)
	}
	return lexEmit(TokenUnquote)
}

// lexString consumes until an unescaped closing quote, decoding the
// escapes \n \t \r in place. Any other escaped character is passed
// through unchanged, which covers \\ and \" too.
func lexString(lx *Lexer) lexState {
	text := []rune{}

	for {
		r, ok := lx.next()
		if !ok {
			return lexError("unterminated string literal")
		}

		switch r {
		case '"':
			lx.emitLexeme(TokenString, string(text))
			return lexDefaultState

		case '\\':
			e, ok := lx.next()
			if !ok {
				return lexError("unterminated string literal")
			}
			switch e {
			case 'n':
				text = append(text, '\n')
			case 't':
				text = append(text, '\t')
			case 'r':
				text = append(text, '\r')
			default:
				text = append(text, e)
			}

		default:
			text = append(text, r)
		}
	}
}

func lexBool(lx *Lexer) lexState {
	switch lx.peek() {
	case 't', 'f':
		lx.next()
		return lexEmit(TokenBool)
	}
	return lexError("expected 't' or 'f' after '#'")
}

// lexNumber consumes digits plus at most one decimal point. The shape is
// not validated further here; converting the text to a value happens at
// parse time.
func lexNumber(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		lx.next()
	}
	if lx.peek() == '.' {
		lx.next()
		for isDigit(lx.peek()) {
			lx.next()
		}
	}
	return lexEmit(TokenNumber)
}

func lexSymbol(lx *Lexer) lexState {
	for isSymbolRune(lx.peek()) {
		lx.next()
	}
	return lexEmit(TokenSymbol)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexError(msg string) lexState {
	return func(lx *Lexer) lexState {
		lx.emitLexeme(TokenError, msg)
		return lexDefaultState
	}
}

func lexErrorf(format string, args ...interface{}) lexState {
	return lexError(fmt.Sprintf(format, args...))
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// terminated by exactly one TokenEOF token.
func Tokenize(in []byte) []Token {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		close(done)
	}()

	lx.Scan()

	<-done
	return tokens
}
