package lexer

// TokenType represents all the possible categories of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenError         TokenType = iota // malformed input, lexeme carries the reason
	TokenOpenParen                      // Open parenthesis: "("
	TokenCloseParen                     // Close parenthesis: ")"
	TokenSymbol                         // Identifiers and operator names
	TokenNumber                         // Numeric literals, including negative ones
	TokenString                         // Double-quoted string, lexeme already decoded
	TokenBool                           // "#t" or "#f"
	TokenQuote                          // Single quote: "'"
	TokenBackquote                      // Backquote: "`"
	TokenUnquote                        // Comma: ","
	TokenUnquoteSplice                  // Comma-at: ",@"
	TokenEOF                            // End of input
)

var tokenNames = map[TokenType]string{
	TokenError:         "error",
	TokenOpenParen:     "open_paren",
	TokenCloseParen:    "close_paren",
	TokenSymbol:        "symbol",
	TokenNumber:        "number",
	TokenString:        "string",
	TokenBool:          "bool",
	TokenQuote:         "quote",
	TokenBackquote:     "backquote",
	TokenUnquote:       "unquote",
	TokenUnquoteSplice: "unquote_splice",
	TokenEOF:           "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenError]
}

var symbolPunct = []rune("+-*/%=<>!?_")

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isSymbolStart(r rune) bool {
	if isLetter(r) {
		return true
	}
	for _, v := range symbolPunct {
		if v == r {
			return true
		}
	}
	return false
}

func isSymbolRune(r rune) bool {
	return isSymbolStart(r) || isDigit(r)
}
