package syntax

import (
	"fmt"
	"strings"
)

// Scanner performs lexical analysis on Dy source code.
// It is pull-based: each call to Next makes the following token current.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, number text, string content)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	tokPos Pos     // token start position

	err *LexicalError // first lexical error; sticky until restored away

	// Literal accumulation
	litBuf strings.Builder
}

// ScanState is an opaque copy of the scanner cursor, produced by Snapshot.
type ScanState struct {
	cur    cursor
	tok    Token
	lit    string
	kind   LitKind
	tokPos Pos
	err    *LexicalError
}

// NewScanner creates a Scanner over src. No token is current until the
// first call to Next.
func NewScanner(filename, src string) *Scanner {
	return &Scanner{source: newSource(filename, src)}
}

// Next advances to the next token.
// After a lexical error every further call yields _Error again.
func (s *Scanner) Next() {
	if s.err != nil {
		s.tok = _Error
		return
	}

redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tokPos = s.pos()
	s.lit = ""

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"' || s.ch == '\'':
		s.scanString()

	case s.ch == '{' && s.peekch() == '{':
		if !s.skipComment() {
			return
		}
		goto redo

	default:
		s.scanOperator()
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Peek returns the character following the current token without
// consuming it, or -1 at end of input.
func (s *Scanner) Peek() rune {
	return s.ch
}

// Err returns the lexical error that stopped the scanner, if any.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Snapshot captures the complete scanner state.
func (s *Scanner) Snapshot() ScanState {
	return ScanState{
		cur:    s.save(),
		tok:    s.tok,
		lit:    s.lit,
		kind:   s.kind,
		tokPos: s.tokPos,
		err:    s.err,
	}
}

// Restore rewinds the scanner to a state returned by Snapshot.
func (s *Scanner) Restore(st ScanState) {
	s.restore(st.cur)
	s.tok = st.tok
	s.lit = st.lit
	s.kind = st.kind
	s.tokPos = st.tokPos
	s.err = st.err
}

// errorf records a lexical error at pos and turns the current token into _Error.
func (s *Scanner) errorf(pos Pos, ch rune, format string, args ...interface{}) {
	s.err = &LexicalError{Pos: pos, Char: ch, Msg: fmt.Sprintf(format, args...)}
	s.tok = _Error
	s.lit = ""
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans an integer or float literal. Every '.' directly
// attached to the digits belongs to the literal, so "1.2.3" is one
// malformed number rather than two tokens.
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	dots := 0
	for isDigit(s.ch) || s.ch == '.' {
		if s.ch == '.' {
			dots++
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	lit := s.litBuf.String()

	switch dots {
	case 0:
		s.kind = IntLit
	case 1:
		s.kind = FloatLit
	default:
		s.errorf(s.tokPos, '.', "malformed number %s", lit)
		return
	}
	s.lit = lit
	s.tok = _Literal
}

// scanString scans a literal delimited by matching quote characters.
// The content is taken verbatim; there are no escape sequences.
func (s *Scanner) scanString() {
	quote := s.ch
	s.nextch()
	s.litBuf.Reset()
	for s.ch != quote {
		if s.ch < 0 {
			s.errorf(s.tokPos, -1, "string not terminated")
			return
		}
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.nextch() // closing quote
	s.lit = s.litBuf.String()
	s.tok = _Literal
	s.kind = StringLit
}

// skipComment skips a {{ ... }} comment. The first '}' ends the comment
// body and must be followed by the second '}'.
// It reports false if the comment is malformed.
func (s *Scanner) skipComment() bool {
	start := s.pos()
	s.nextch() // {
	s.nextch() // {
	for s.ch != '}' {
		if s.ch < 0 {
			s.errorf(start, -1, "comment not terminated")
			return false
		}
		s.nextch()
	}
	s.nextch()
	if s.ch != '}' {
		s.errorf(s.pos(), s.ch, "comment must be closed with '}}'")
		return false
	}
	s.nextch()
	return true
}

// scanOperator scans an operator or delimiter.
func (s *Scanner) scanOperator() {
	ch := s.ch
	pos := s.pos()
	s.nextch()

	switch ch {
	case '+':
		s.tok = _Add
	case '-':
		s.tok = _Sub
	case '*':
		s.tok = _Mul
	case '/':
		s.tok = _Div
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Eql
		} else {
			s.tok = _Assign
		}
	case '!':
		if s.ch != '=' {
			s.errorf(pos, ch, "unexpected character %q", ch)
			return
		}
		s.nextch()
		s.tok = _Neq
	case '<':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Leq
		} else {
			s.tok = _Lss
		}
	case '>':
		if s.ch == '=' {
			s.nextch()
			s.tok = _Geq
		} else {
			s.tok = _Gtr
		}
	case '(':
		s.tok = _Lparen
	case ')':
		s.tok = _Rparen
	case '{':
		s.tok = _Lbrace
	case '}':
		s.tok = _Rbrace
	case ',':
		s.tok = _Comma
	case ';':
		s.tok = _Semi
	case ':':
		s.tok = _Colon
	default:
		s.errorf(pos, ch, "unexpected character %q", ch)
		return
	}
	s.lit = s.tok.String()
}
