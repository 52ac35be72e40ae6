package sema

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
)

// call checks a function call. Names are resolved in the scope chain
// first and fall back to the host built-ins.
func (c *Checker) call(e *syntax.CallExpr) {
	for _, arg := range e.Args {
		c.expr(arg)
	}
	if c.failed() {
		return
	}

	name := e.Name
	var obj types.Object = c.lookup(name.Value)
	if obj == nil {
		if b := types.LookupBuiltin(name.Value); b != nil {
			obj = b
		}
	}

	switch obj := obj.(type) {
	case nil:
		c.errorf(syntax.IDNotFound, name.Pos(), "unresolved call to %q", name.Value)
		return

	case *types.Var:
		c.errorf(syntax.SemanticError, name.Pos(), "%q is not a function", name.Value)
		return

	case *types.Func:
		if len(e.Args) != obj.Arity() {
			c.errorf(syntax.ArgumentsMismatch, name.Pos(),
				"arguments mismatch: %s expects %d %s, got %d",
				name.Value, obj.Arity(), plural(obj.Arity(), "argument"), len(e.Args))
			return
		}

	case *types.Builtin:
		if obj.Arity() >= 0 && len(e.Args) != obj.Arity() {
			c.errorf(syntax.ArgumentsMismatch, name.Pos(),
				"arguments mismatch: %s expects %d %s, got %d",
				name.Value, obj.Arity(), plural(obj.Arity(), "argument"), len(e.Args))
			return
		}
	}
	c.recordUse(name, obj)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
