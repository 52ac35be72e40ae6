package sema

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
	"github.com/you-not-fish/dy/internal/value"
)

// varDecl checks a variable declaration. The initializer is checked before
// the names are declared, so it cannot refer to them.
func (c *Checker) varDecl(d *syntax.VarDecl) {
	typ := types.LookupBasic(d.Type.Name)
	if typ == nil {
		c.errorf(syntax.SemanticError, d.Type.Pos(), "unknown type %s", d.Type.Name)
		return
	}
	if d.Value != nil {
		c.expr(d.Value)
	}
	for _, name := range d.Names {
		c.declare(name, types.NewVar(name.Pos(), name.Value, typ, value.Value{}))
	}
}

// funcDecl checks a function declaration.
//
// The function is declared in the enclosing scope before its body is
// checked, so it may call itself. Functions declared later in the same
// block are not yet visible.
func (c *Checker) funcDecl(d *syntax.FuncDecl) {
	c.declare(d.Name, types.NewFunc(d, c.scope))

	c.openScope("function " + d.Name.Value)
	defer c.closeScope()

	for _, prm := range d.Params {
		typ := types.LookupBasic(prm.Type.Name)
		if typ == nil {
			c.errorf(syntax.SemanticError, prm.Type.Pos(), "unknown type %s", prm.Type.Name)
			return
		}
		c.declare(prm.Name, types.NewVar(prm.Pos(), prm.Name.Value, typ, value.Value{}))
	}

	c.stmts(d.Body.Stmts)
	if d.Result != nil && !c.failed() {
		c.expr(d.Result)
	}
}
