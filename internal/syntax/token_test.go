package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Error, "ERROR"},
		{_Name, "NAME"},
		{_Literal, "LITERAL"},
		{_Assign, "="},
		{_Eql, "=="},
		{_Neq, "!="},
		{_Leq, "<="},
		{_IntDiv, "DIV"},
		{_Lbrace, "{"},
		{_Colon, ":"},
		{_Program, "PROGRAM"},
		{_Function, "function"},
		{_True, "true"},
		{Token(100), "token(100)"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	tests := []struct {
		tok                          Token
		keyword, op, delim, rel, typ bool
	}{
		{_Name, false, false, false, false, false},
		{_Assign, false, true, false, false, false},
		{_Eql, false, true, false, true, false},
		{_Geq, false, true, false, true, false},
		{_IntDiv, false, true, false, false, false},
		{_Semi, false, false, true, false, false},
		{_Integer, true, false, false, false, true},
		{_Boolean, true, false, false, false, true},
		{_Object, true, false, false, false, false},
		{_Not, true, false, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.tok.IsKeyword(); got != tt.keyword {
			t.Errorf("%v.IsKeyword() = %v", tt.tok, got)
		}
		if got := tt.tok.IsOperator(); got != tt.op {
			t.Errorf("%v.IsOperator() = %v", tt.tok, got)
		}
		if got := tt.tok.IsDelimiter(); got != tt.delim {
			t.Errorf("%v.IsDelimiter() = %v", tt.tok, got)
		}
		if got := tt.tok.IsRelational(); got != tt.rel {
			t.Errorf("%v.IsRelational() = %v", tt.tok, got)
		}
		if got := tt.tok.IsType(); got != tt.typ {
			t.Errorf("%v.IsType() = %v", tt.tok, got)
		}
	}
}

func TestTokenClass(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "end-of-input"},
		{_Name, "identifier"},
		{_Literal, "literal"},
		{_Var, "keyword"},
		{_Mul, "operator"},
		{_Rparen, "delimiter"},
		{_Error, "invalid"},
	}

	for _, tt := range tests {
		if got := tt.tok.Class(); got != tt.want {
			t.Errorf("%v.Class() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Token
	}{
		{"PROGRAM", _Program},
		{"program", _Name},
		{"VAR", _Var},
		{"Var", _Name},
		{"DIV", _IntDiv},
		{"div", _Name},
		{"function", _Function},
		{"Function", _Name},
		{"true", _True},
		{"TRUE", _True},
		{"tRuE", _True},
		{"False", _False},
		{"truth", _Name},
		{"x", _Name},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestLitKindString(t *testing.T) {
	tests := []struct {
		kind LitKind
		want string
	}{
		{IntLit, "int"},
		{FloatLit, "float"},
		{StringLit, "string"},
		{LitKind(9), "LitKind(9)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("LitKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
