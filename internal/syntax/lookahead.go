package syntax

// Lookahead helpers. Each one snapshots the scanner, reads ahead and
// restores it, so the parser's current token is never disturbed.

// exprClass selects which expression grammar applies to upcoming tokens.
type exprClass int

const (
	arithClass exprClass = iota
	strClass
	boolClass
)

// peek returns the token following the current one.
func (p *Parser) peek() Token {
	st := p.scanner.Snapshot()
	defer p.scanner.Restore(st)

	p.scanner.Next()
	return p.scanner.Token()
}

// continuesDecl reports whether the current identifier starts another
// declaration of the enclosing VAR block.
func (p *Parser) continuesDecl() bool {
	switch p.peek() {
	case _Comma, _Colon:
		return true
	}
	return false
}

// classify scans the expression starting at the current token up to its
// terminator. A boolean keyword or relational operator makes it boolean,
// otherwise a string literal makes it a string expression, otherwise it is
// arithmetic. Argument lists of calls are skipped since a call's value is
// opaque to its caller's expression.
//
// With operandOnly set the scan stops at the first boolean keyword or
// relational operator, classifying one side of a comparison.
func (p *Parser) classify(operandOnly bool) exprClass {
	st := p.scanner.Snapshot()
	defer p.scanner.Restore(st)

	s := p.scanner
	class := arithClass
	depth := 0
	prev := _EOF

	for tok := s.Token(); ; tok = s.Token() {
		switch {
		case tok == _EOF || tok == _Error || tok == _Semi || tok == _Lbrace || tok == _Rbrace:
			return class

		case tok == _Comma:
			if depth == 0 {
				return class
			}

		case tok == _Rparen:
			if depth == 0 {
				return class
			}
			depth--

		case tok == _Lparen:
			if prev != _Name {
				depth++
				break
			}
			if _, ok := skipGroup(s); !ok {
				return class
			}
			tok = _Rparen

		case tok == _Or || tok == _And || tok == _Not || tok == _True || tok == _False || tok.IsRelational():
			if operandOnly {
				return class
			}
			return boolClass

		case tok == _Literal && s.LitKind() == StringLit:
			class = strClass
		}

		prev = tok
		s.Next()
	}
}

// parenIsOperand reports whether the parenthesized group at the current
// token is the start of an arithmetic or string operand rather than a
// grouped boolean expression.
func (p *Parser) parenIsOperand() bool {
	st := p.scanner.Snapshot()
	defer p.scanner.Restore(st)

	s := p.scanner
	sawBool, ok := skipGroup(s)
	if !ok {
		return false
	}
	s.Next()
	switch tok := s.Token(); {
	case tok.IsArith():
		return true
	case tok.IsRelational():
		return !sawBool
	}
	return false
}

// skipGroup advances s from a "(" to its matching ")". It reports whether
// the group contained a boolean keyword or relational operator, and whether
// the closing parenthesis was found.
func skipGroup(s *Scanner) (sawBool, ok bool) {
	depth := 0
	for {
		switch tok := s.Token(); {
		case tok == _Lparen:
			depth++
		case tok == _Rparen:
			depth--
			if depth == 0 {
				return sawBool, true
			}
		case tok == _EOF || tok == _Error:
			return sawBool, false
		case tok == _Or || tok == _And || tok == _Not || tok == _True || tok == _False || tok.IsRelational():
			sawBool = true
		}
		s.Next()
	}
}
