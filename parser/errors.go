package parser

import (
	"errors"
)

// Fixed parse failure messages. Positioned failures (syntax errors and
// unexpected tokens) are built with errorAt instead, so they can name
// the offending token's line and column.
var (
	ErrEmptyInput        = errors.New("Empty input")
	ErrUnexpectedEOF     = errors.New("Unexpected end of input")
	ErrMissingCloseParen = errors.New("Expected ')'")
	ErrInvalidNumber     = errors.New("Invalid number format")
)
