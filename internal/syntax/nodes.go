package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The node family is closed: every variant embeds one of the unexported base
// structs below, so only this package can add node kinds. Passes switch over
// the concrete types.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
// Declarations are statements because they interleave with executable code.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program

// Program is the root node: PROGRAM Name { ... }
type Program struct {
	node
	Name *Name
	Body *Block
}

// TypeSpec is a declared type annotation (INTEGER, REAL, FLOAT, STRING, BOOLEAN).
type TypeSpec struct {
	node
	Name string
}

// Param is one formal parameter; parameter groups are flattened.
type Param struct {
	node
	Name *Name
	Type *TypeSpec
}

// ----------------------------------------------------------------------------
// Expressions

// Name is a variable reference.
type Name struct {
	expr
	Value string
}

// NumLit is an integer or float literal.
type NumLit struct {
	expr
	Kind  LitKind // IntLit or FloatLit
	Text  string  // source text
	Int   int64   // value when Kind == IntLit
	Float float64 // value when Kind == FloatLit
}

// StrLit is a string literal (content without quotes).
type StrLit struct {
	expr
	Value string
}

// BoolLit is a boolean literal as spelled in the source.
type BoolLit struct {
	expr
	Value string
}

// BinaryExpr is an arithmetic operation: X Op Y with Op in + - * / DIV.
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr is a sign operation: +X or -X.
type UnaryExpr struct {
	expr
	Op Token
	X  Expr
}

// ConcatExpr is a string concatenation: X + Y.
type ConcatExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// NotExpr is a boolean negation: not X.
type NotExpr struct {
	expr
	X Expr
}

// BoolExpr is a boolean binary operation: or, and, or a relational comparison.
type BoolExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// CallExpr is a call of a declared function or a host built-in.
type CallExpr struct {
	expr
	Name *Name
	Args []Expr
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt is a no-op (a lone semicolon).
type EmptyStmt struct {
	stmt
}

// Block is a compound statement: { Stmts... }
type Block struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// AssignStmt assigns to an existing variable: Name = Value
type AssignStmt struct {
	stmt
	Name  *Name
	Value Expr
}

// CallStmt is a call used as a statement.
type CallStmt struct {
	stmt
	Call *CallExpr
}

// VarDecl declares one or more names sharing a type: a, b : INTEGER [= Value]
type VarDecl struct {
	stmt
	Names []*Name
	Type  *TypeSpec
	Value Expr // nil if no initializer
}

// CondClause is one "if"/"elif" arm.
type CondClause struct {
	node
	Cond Expr
	Body *Block
}

// IfStmt is a conditional: if c1 {..} elif c2 {..} else {..}
type IfStmt struct {
	stmt
	Clauses []*CondClause
	Else    *Block // nil if absent
}

// ForStmt is the three-part loop: for Init; Cond; Post { Body }
type ForStmt struct {
	stmt
	Init *AssignStmt
	Cond Expr
	Post Stmt // *AssignStmt or *CallStmt
	Body *Block
}

// BreakStmt terminates the nearest enclosing loop.
type BreakStmt struct {
	stmt
}

// ReturnStmt leaves the enclosing function.
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare return
}

// FuncDecl declares a function:
// function Name(a, b : INTEGER; c : REAL) { Body [return Result] }
type FuncDecl struct {
	stmt
	Name   *Name
	Params []*Param
	Body   *Block
	Result Expr // trailing return expression, nil if none
}
