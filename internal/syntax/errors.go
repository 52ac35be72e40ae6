package syntax

import (
	"errors"
	"fmt"
)

// ErrorCode classifies front-end and pipeline errors.
// The same codes are reused by the analyzer and the interpreter.
type ErrorCode int

const (
	UnexpectedToken ErrorCode = iota
	IDNotFound
	DuplicateID
	LexerError
	ParserError
	SemanticError
	InterpreterError
	ArgumentsMismatch
)

var errorCodeNames = [...]string{
	UnexpectedToken:   "Unexpected token",
	IDNotFound:        "Identifier not found",
	DuplicateID:       "Duplicate id found",
	LexerError:        "Lexer error",
	ParserError:       "Parser error",
	SemanticError:     "Semantic error",
	InterpreterError:  "Interpreter error",
	ArgumentsMismatch: "Arguments error",
}

func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// LexicalError reports an unsupported character or a malformed literal.
type LexicalError struct {
	Pos  Pos
	Char rune // offending character, -1 at end of input
	Msg  string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("LexicalError: %s: %s", e.Pos, e.Msg)
}

// ParseError reports a token that does not fit the grammar.
type ParseError struct {
	Code     ErrorCode
	Pos      Pos
	Expected string // expected token kind, empty for free-form errors
	Found    Token  // actual token
	Lit      string // actual token text
	Msg      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: %s: %s", e.Pos, e.Msg)
}

// IsIncomplete reports whether err was caused by the input ending early,
// so that more input could still make it valid.
func IsIncomplete(err error) bool {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr.Char < 0
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Found.IsEOF()
	}
	return false
}
