package sema

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
	"github.com/you-not-fish/dy/internal/value"
)

// stmts checks a list of statements, stopping at the first error.
func (c *Checker) stmts(list []syntax.Stmt) {
	for _, s := range list {
		if c.failed() {
			return
		}
		c.stmt(s)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt, *syntax.BreakStmt:
		// Nothing to check; a misplaced break is reported at run time.

	case *syntax.VarDecl:
		c.varDecl(s)

	case *syntax.FuncDecl:
		c.funcDecl(s)

	case *syntax.AssignStmt:
		c.assignStmt(s)

	case *syntax.CallStmt:
		c.call(s.Call)

	case *syntax.Block:
		// Plain blocks share the enclosing scope.
		c.stmts(s.Stmts)

	case *syntax.IfStmt:
		c.ifStmt(s)

	case *syntax.ForStmt:
		c.forStmt(s)

	case *syntax.ReturnStmt:
		if s.Result != nil {
			c.expr(s.Result)
		}

	default:
		c.errorf(syntax.SemanticError, s.Pos(), "unexpected statement %T", s)
	}
}

// assignStmt checks an assignment to an existing variable.
func (c *Checker) assignStmt(s *syntax.AssignStmt) {
	c.expr(s.Value)

	obj := c.lookup(s.Name.Value)
	switch obj.(type) {
	case nil:
		c.errorf(syntax.IDNotFound, s.Name.Pos(), "undefined identifier %q", s.Name.Value)
		return
	case *types.Func:
		c.errorf(syntax.SemanticError, s.Name.Pos(), "cannot assign to function %q", s.Name.Value)
		return
	}
	c.recordUse(s.Name, obj)
}

// ifStmt checks each clause; every branch body gets its own scope.
func (c *Checker) ifStmt(s *syntax.IfStmt) {
	for _, clause := range s.Clauses {
		c.expr(clause.Cond)
		c.openScope("if")
		c.stmts(clause.Body.Stmts)
		c.closeScope()
	}
	if s.Else != nil {
		c.openScope("else")
		c.stmts(s.Else.Stmts)
		c.closeScope()
	}
}

// forStmt checks a loop. The induction variable lives in a loop scope
// that encloses both the header and the body scope.
func (c *Checker) forStmt(s *syntax.ForStmt) {
	c.openScope("loop")
	defer c.closeScope()

	induction := s.Init.Name
	c.declare(induction, types.NewVar(induction.Pos(), induction.Value, types.Typ[types.Untyped], value.Value{}))

	c.assignStmt(s.Init)
	c.expr(s.Cond)
	c.stmt(s.Post)

	c.openScope("loop body")
	c.stmts(s.Body.Stmts)
	c.closeScope()
}
