// Package syntax implements lexical and syntactic analysis for the Dy programming language.
package syntax

import (
	"fmt"
	"strings"
)

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Literals
	_Name    // identifier: foo, number, s1
	_Literal // literal value (used with LitKind)

	// Operators
	_Assign // =

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_IntDiv // DIV

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;
	_Colon  // :

	// Keywords
	_Program
	_Var
	_Integer
	_Real
	_Float
	_String
	_Boolean
	_Object
	_Function
	_Return
	_If
	_Elif
	_Else
	_For
	_Break
	_Or
	_And
	_Not
	_True
	_False

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign: "=",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_IntDiv: "DIV",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",

	_Program:  "PROGRAM",
	_Var:      "VAR",
	_Integer:  "INTEGER",
	_Real:     "REAL",
	_Float:    "FLOAT",
	_String:   "STRING",
	_Boolean:  "BOOLEAN",
	_Object:   "OBJECT",
	_Function: "function",
	_Return:   "return",
	_If:       "if",
	_Elif:     "elif",
	_Else:     "else",
	_For:      "for",
	_Break:    "break",
	_Or:       "or",
	_And:      "and",
	_Not:      "not",
	_True:     "true",
	_False:    "false",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Program && t <= _False
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t == _Literal
}

// IsOperator reports whether t is an operator token (DIV included).
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _IntDiv
}

// IsDelimiter reports whether t is a delimiter token.
func (t Token) IsDelimiter() bool {
	return t >= _Lparen && t <= _Colon
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsRelational reports whether t is one of == != < <= > >=.
func (t Token) IsRelational() bool {
	return t >= _Eql && t <= _Geq
}

// IsArith reports whether t is a binary arithmetic operator.
func (t Token) IsArith() bool {
	return t >= _Add && t <= _IntDiv
}

// IsType reports whether t names a declarable type.
func (t Token) IsType() bool {
	return t >= _Integer && t <= _Boolean
}

// Class returns the token class used in diagnostics:
// identifier, keyword, literal, operator, delimiter or end-of-input.
func (t Token) Class() string {
	switch {
	case t == _EOF:
		return "end-of-input"
	case t == _Name:
		return "identifier"
	case t == _Literal:
		return "literal"
	case t.IsKeyword():
		return "keyword"
	case t.IsOperator():
		return "operator"
	case t.IsDelimiter():
		return "delimiter"
	}
	return "invalid"
}

// Exported operator tokens for the analyzer and interpreter.
const (
	Add    Token = _Add
	Sub    Token = _Sub
	Mul    Token = _Mul
	Div    Token = _Div
	IntDiv Token = _IntDiv

	Or  Token = _Or
	And Token = _And
	Eql Token = _Eql
	Neq Token = _Neq
	Lss Token = _Lss
	Leq Token = _Leq
	Gtr Token = _Gtr
	Geq Token = _Geq
)

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit    LitKind = iota // 123
	FloatLit                 // 3.14
	StringLit                // "hello", 'hello'
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLit:    "int",
	FloatLit:  "float",
	StringLit: "string",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= StringLit {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// keywords maps keyword strings to their token type.
// Boolean literals are matched separately because they are case-insensitive.
var keywords = map[string]Token{
	"PROGRAM":  _Program,
	"VAR":      _Var,
	"INTEGER":  _Integer,
	"REAL":     _Real,
	"FLOAT":    _Float,
	"STRING":   _String,
	"BOOLEAN":  _Boolean,
	"OBJECT":   _Object,
	"DIV":      _IntDiv,
	"function": _Function,
	"return":   _Return,
	"if":       _If,
	"elif":     _Elif,
	"else":     _Else,
	"for":      _For,
	"break":    _Break,
	"or":       _Or,
	"and":      _And,
	"not":      _Not,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	switch {
	case strings.EqualFold(ident, "true"):
		return _True
	case strings.EqualFold(ident, "false"):
		return _False
	}
	return _Name
}
