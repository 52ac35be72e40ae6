package sema

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
	"github.com/you-not-fish/dy/internal/value"
)

// expr checks an expression.
func (c *Checker) expr(e syntax.Expr) {
	if c.failed() {
		return
	}

	switch e := e.(type) {
	case *syntax.Name:
		c.name(e)

	case *syntax.NumLit, *syntax.StrLit:
		// Always valid

	case *syntax.BoolLit:
		if _, ok := value.ParseBool(e.Value); !ok {
			c.errorf(syntax.SemanticError, e.Pos(), "invalid boolean literal %q", e.Value)
		}

	case *syntax.UnaryExpr:
		c.expr(e.X)

	case *syntax.NotExpr:
		c.expr(e.X)

	case *syntax.BinaryExpr:
		c.expr(e.X)
		c.expr(e.Y)

	case *syntax.ConcatExpr:
		if e.Op != syntax.Add {
			c.errorf(syntax.SemanticError, e.Pos(), "invalid operator %s in string concatenation", e.Op)
			return
		}
		c.expr(e.X)
		c.expr(e.Y)

	case *syntax.BoolExpr:
		c.expr(e.X)
		c.expr(e.Y)

	case *syntax.CallExpr:
		c.call(e)

	default:
		c.errorf(syntax.SemanticError, e.Pos(), "unexpected expression %T", e)
	}
}

// name checks a variable reference.
func (c *Checker) name(n *syntax.Name) {
	obj := c.lookup(n.Value)
	switch obj.(type) {
	case nil:
		c.errorf(syntax.IDNotFound, n.Pos(), "undefined identifier %q", n.Value)
		return
	case *types.Func:
		c.errorf(syntax.SemanticError, n.Pos(), "function %q used as a value", n.Value)
		return
	}
	c.recordUse(n, obj)
}
