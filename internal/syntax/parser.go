package syntax

import (
	"fmt"
	"strconv"
)

// Parser performs syntax analysis on Dy source code.
//
// Parsing is fatal on the first error: the error is recorded, the current
// token is forced to EOF so every production unwinds, and Parse returns it.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok  Token
	lit  string
	kind LitKind
	pos  Pos

	first error // first error encountered
	abort bool  // set once an error has been recorded

	fnest int // function nesting depth (0 = program level)
}

// NewParser creates a Parser for the given source text.
func NewParser(filename, src string) *Parser {
	p := &Parser{scanner: NewScanner(filename, src)}
	p.next() // prime the parser with first token
	return p
}

// Parse parses src as a complete program.
func Parse(filename, src string) (*Program, error) {
	return NewParser(filename, src).Parse()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	if p.abort {
		return
	}
	p.scanner.Next()
	p.sync()
	if p.tok == _Error {
		p.fail(p.scanner.Err())
	}
}

// sync copies the scanner's current token into the parser.
func (p *Parser) sync() {
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.kind = p.scanner.LitKind()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(fmt.Sprintf("%q", tok.String()))
	}
}

// ----------------------------------------------------------------------------
// Error handling

// fail records err as the parse result and stops parsing.
func (p *Parser) fail(err error) {
	if p.abort {
		return
	}
	p.first = err
	p.abort = true
	p.tok = _EOF
}

// syntaxError reports that expected was wanted at the current token.
func (p *Parser) syntaxError(expected string) {
	if p.abort {
		return
	}
	p.fail(&ParseError{
		Code:     UnexpectedToken,
		Pos:      p.pos,
		Expected: expected,
		Found:    p.tok,
		Lit:      p.lit,
		Msg:      fmt.Sprintf("expected %s, found %s", expected, p.describe()),
	})
}

// errorf reports a free-form parse error at pos.
func (p *Parser) errorf(pos Pos, format string, args ...interface{}) {
	if p.abort {
		return
	}
	p.fail(&ParseError{
		Code:  ParserError,
		Pos:   pos,
		Found: p.tok,
		Lit:   p.lit,
		Msg:   fmt.Sprintf(format, args...),
	})
}

// describe renders the current token for diagnostics.
func (p *Parser) describe() string {
	switch p.tok {
	case _EOF:
		return "end-of-input"
	case _Name:
		return fmt.Sprintf("identifier %q", p.lit)
	case _Literal:
		return fmt.Sprintf("%s literal %q", p.kind, p.lit)
	}
	return fmt.Sprintf("%s %q", p.tok.Class(), p.tok.String())
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program. The whole input must be consumed.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos

	p.want(_Program)
	prog.Name = p.name()
	prog.Body = p.block()

	if p.tok != _EOF {
		p.errorf(p.pos, "unexpected trailing input: %s", p.describe())
	}
	if p.first != nil {
		return nil, p.first
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: p.lit}
	n.pos = p.pos
	if p.tok != _Name {
		p.syntaxError("identifier")
		n.Value = "_"
		return n
	}
	p.next()
	return n
}

// nameList parses Name { "," Name }.
func (p *Parser) nameList() []*Name {
	names := []*Name{p.name()}
	for p.got(_Comma) {
		names = append(names, p.name())
	}
	return names
}

// typeSpec parses INTEGER | REAL | FLOAT | STRING | BOOLEAN.
func (p *Parser) typeSpec() *TypeSpec {
	t := &TypeSpec{Name: p.tok.String()}
	t.pos = p.pos
	switch {
	case p.tok.IsType():
		p.next()
	case p.tok == _Object:
		p.errorf(p.pos, "OBJECT is reserved and cannot be used as a type")
	default:
		p.syntaxError("type")
	}
	return t
}

// ----------------------------------------------------------------------------
// Blocks and declarations

// block parses { items... }
func (p *Parser) block() *Block {
	b := &Block{}
	b.pos = p.pos

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.item()...)
	}
	b.Rbrace = p.pos
	p.want(_Rbrace)

	return b
}

// item parses a declaration block, a function declaration or a statement.
func (p *Parser) item() []Stmt {
	switch p.tok {
	case _Var:
		return p.varBlock()
	case _Function:
		return []Stmt{p.funcDecl()}
	default:
		return []Stmt{p.stmt()}
	}
}

// varBlock parses: VAR decl { decl }
func (p *Parser) varBlock() []Stmt {
	p.want(_Var)
	decls := []Stmt{p.varDecl()}
	for !p.abort && p.tok == _Name && p.continuesDecl() {
		decls = append(decls, p.varDecl())
	}
	return decls
}

// varDecl parses: a, b : TYPE [= expr] ;
func (p *Parser) varDecl() *VarDecl {
	d := &VarDecl{}
	d.pos = p.pos

	d.Names = p.nameList()
	p.want(_Colon)
	d.Type = p.typeSpec()
	if p.got(_Assign) {
		d.Value = p.expr()
	}
	p.want(_Semi)

	return d
}

// funcDecl parses:
// function Name [ "(" [ group { ";" group } ] ")" ] { items [return expr [;]] }
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos

	p.want(_Function)
	d.Name = p.name()

	if p.got(_Lparen) {
		if p.tok != _Rparen {
			d.Params = p.paramGroups()
		}
		p.want(_Rparen)
	}

	p.fnest++
	d.Body = p.block()
	p.fnest--

	// A trailing "return expr" becomes the declaration's return expression.
	if n := len(d.Body.Stmts); n > 0 {
		if ret, ok := d.Body.Stmts[n-1].(*ReturnStmt); ok && ret.Result != nil {
			d.Result = ret.Result
			d.Body.Stmts = d.Body.Stmts[:n-1]
		}
	}

	return d
}

// paramGroups parses: a, b : INTEGER ; c : REAL
func (p *Parser) paramGroups() []*Param {
	var params []*Param
	for {
		names := p.nameList()
		p.want(_Colon)
		typ := p.typeSpec()
		for _, n := range names {
			prm := &Param{Name: n, Type: typ}
			prm.pos = n.pos
			params = append(params, prm)
		}
		if !p.got(_Semi) {
			return params
		}
	}
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Lbrace:
		return p.block()

	case _If:
		return p.ifStmt()

	case _For:
		return p.forStmt()

	case _Break:
		s := &BreakStmt{}
		s.pos = p.pos
		p.next()
		p.want(_Semi)
		return s

	case _Return:
		return p.returnStmt()

	case _Semi:
		s := &EmptyStmt{}
		s.pos = p.pos
		p.next()
		return s

	case _Name:
		s := p.simpleStmt()
		p.want(_Semi)
		return s

	default:
		p.syntaxError("statement")
		s := &EmptyStmt{}
		s.pos = p.pos
		return s
	}
}

// simpleStmt parses an assignment or a call, without the terminator.
func (p *Parser) simpleStmt() Stmt {
	switch p.peek() {
	case _Lparen:
		s := &CallStmt{}
		s.pos = p.pos
		s.Call = p.call(p.name())
		return s
	case _Assign:
		return p.assignStmt()
	case _Colon, _Comma:
		p.errorf(p.pos, "declaration of %q outside a VAR block", p.lit)
	default:
		p.name()
		p.syntaxError(`"=" or "("`)
	}
	s := &EmptyStmt{}
	s.pos = p.pos
	return s
}

// assignStmt parses: Name = expr
func (p *Parser) assignStmt() *AssignStmt {
	s := &AssignStmt{}
	s.pos = p.pos
	s.Name = p.name()
	p.want(_Assign)
	s.Value = p.expr()
	return s
}

// ifStmt parses: if cond { } { elif cond { } } [ else { } ]
func (p *Parser) ifStmt() *IfStmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	s.Clauses = append(s.Clauses, p.condClause())
	for p.tok == _Elif {
		p.next()
		s.Clauses = append(s.Clauses, p.condClause())
	}
	if p.got(_Else) {
		s.Else = p.block()
	}

	return s
}

func (p *Parser) condClause() *CondClause {
	c := &CondClause{}
	c.pos = p.pos
	c.Cond = p.expr()
	c.Body = p.block()
	return c
}

// forStmt parses: for i = init ; cond ; post { body }
func (p *Parser) forStmt() *ForStmt {
	s := &ForStmt{}
	s.pos = p.pos

	p.want(_For)
	if p.tok != _Name {
		p.syntaxError("loop variable")
		return s
	}
	s.Init = p.assignStmt()
	p.want(_Semi)
	s.Cond = p.expr()
	p.want(_Semi)
	if p.tok != _Name {
		p.syntaxError("loop step")
		return s
	}
	s.Post = p.simpleStmt()
	s.Body = p.block()

	return s
}

// returnStmt parses: return [expr] ;
// The semicolon may be omitted directly before the closing brace.
func (p *Parser) returnStmt() *ReturnStmt {
	s := &ReturnStmt{}
	s.pos = p.pos

	if p.fnest == 0 {
		p.errorf(p.pos, "return outside function")
		return s
	}
	p.want(_Return)
	if p.tok != _Semi && p.tok != _Rbrace {
		s.Result = p.expr()
	}
	if p.tok != _Rbrace {
		p.want(_Semi)
	}
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression of whichever layer the lookahead selects.
func (p *Parser) expr() Expr {
	switch p.classify(false) {
	case boolClass:
		return p.boolExpr()
	case strClass:
		return p.strExpr()
	default:
		return p.arithExpr()
	}
}

// boolExpr parses: term { (or | and) term }
func (p *Parser) boolExpr() Expr {
	x := p.boolTerm()
	for p.tok == _Or || p.tok == _And {
		op := &BoolExpr{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()
		op.Y = p.boolTerm()
		x = op
	}
	return x
}

// boolTerm parses: not term | ( boolExpr ) | literal | comparison
func (p *Parser) boolTerm() Expr {
	switch p.tok {
	case _Not:
		n := &NotExpr{}
		n.pos = p.pos
		p.next()
		n.X = p.boolTerm()
		return n

	case _Lparen:
		if p.parenIsOperand() {
			return p.comparison()
		}
		p.next()
		x := p.boolExpr()
		p.want(_Rparen)
		if p.tok.IsRelational() {
			op := &BoolExpr{Op: p.tok, X: x}
			op.pos = x.Pos()
			p.next()
			op.Y = p.operand()
			return op
		}
		return x

	default:
		return p.comparison()
	}
}

// comparison parses: operand [ relop operand ]
func (p *Parser) comparison() Expr {
	x := p.operand()
	if !p.tok.IsRelational() {
		return x
	}
	op := &BoolExpr{Op: p.tok, X: x}
	op.pos = x.Pos()
	p.next()
	op.Y = p.operand()
	return op
}

// operand parses one side of a comparison.
func (p *Parser) operand() Expr {
	switch p.tok {
	case _True, _False:
		lit := &BoolLit{Value: p.lit}
		lit.pos = p.pos
		p.next()
		return lit
	}
	if p.classify(true) == strClass {
		return p.strExpr()
	}
	return p.arithExpr()
}

// strExpr parses: operand { "+" operand }
func (p *Parser) strExpr() Expr {
	x := p.strOperand()
	for p.tok.IsArith() {
		if p.tok != _Add {
			p.errorf(p.pos, "string concatenation only supports '+', found %q", p.tok.String())
			return x
		}
		op := &ConcatExpr{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()
		op.Y = p.strOperand()
		x = op
	}
	return x
}

// strOperand parses a string literal, a variable or a call.
func (p *Parser) strOperand() Expr {
	switch {
	case p.tok == _Literal && p.kind == StringLit:
		lit := &StrLit{Value: p.lit}
		lit.pos = p.pos
		p.next()
		return lit
	case p.tok == _Name:
		return p.nameOrCall()
	}
	p.syntaxError("string operand")
	return p.badExpr()
}

// arithExpr parses: term { (+ | -) term }
func (p *Parser) arithExpr() Expr {
	x := p.term()
	for p.tok == _Add || p.tok == _Sub {
		op := &BinaryExpr{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()
		op.Y = p.term()
		x = op
	}
	return x
}

// term parses: factor { (* | / | DIV) factor }
func (p *Parser) term() Expr {
	x := p.factor()
	for p.tok == _Mul || p.tok == _Div || p.tok == _IntDiv {
		op := &BinaryExpr{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()
		op.Y = p.factor()
		x = op
	}
	return x
}

// factor parses: (+|-) factor | number | ( arithExpr ) | name | call
func (p *Parser) factor() Expr {
	switch {
	case p.tok == _Add || p.tok == _Sub:
		op := &UnaryExpr{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.factor()
		return op

	case p.tok == _Literal && p.kind != StringLit:
		return p.number()

	case p.tok == _Lparen:
		p.next()
		x := p.arithExpr()
		p.want(_Rparen)
		return x

	case p.tok == _Name:
		return p.nameOrCall()
	}

	p.syntaxError("arithmetic operand")
	return p.badExpr()
}

// number converts the current numeric literal.
func (p *Parser) number() Expr {
	lit := &NumLit{Kind: p.kind, Text: p.lit}
	lit.pos = p.pos
	var err error
	if p.kind == IntLit {
		lit.Int, err = strconv.ParseInt(p.lit, 10, 64)
	} else {
		lit.Float, err = strconv.ParseFloat(p.lit, 64)
	}
	if err != nil {
		p.errorf(p.pos, "numeric literal %s out of range", p.lit)
		return lit
	}
	p.next()
	return lit
}

// nameOrCall parses a variable reference or, when followed by "(", a call.
func (p *Parser) nameOrCall() Expr {
	n := p.name()
	if p.tok == _Lparen {
		return p.call(n)
	}
	return n
}

// call parses the argument list of a call to name.
func (p *Parser) call(name *Name) *CallExpr {
	c := &CallExpr{Name: name}
	c.pos = name.pos

	p.want(_Lparen)
	if p.tok != _Rparen {
		c.Args = append(c.Args, p.expr())
		for p.got(_Comma) {
			c.Args = append(c.Args, p.expr())
		}
	}
	p.want(_Rparen)

	return c
}

// badExpr is a placeholder returned after an error has been recorded.
func (p *Parser) badExpr() Expr {
	n := &Name{Value: "_"}
	n.pos = p.pos
	return n
}
