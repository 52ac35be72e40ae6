package sema

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
)

// Checker walks a program once, resolving every name against a fresh
// scope arena. It never evaluates anything.
type Checker struct {
	info *Info

	// Current checking context
	arena *types.Arena
	scope types.Handle // current scope

	first *Error // first error
}

// checkProgram checks the program body in the global scope.
func (c *Checker) checkProgram(prog *syntax.Program) {
	c.openScope("program " + prog.Name.Value)
	c.stmts(prog.Body.Stmts)
	c.closeScope()
}

// openScope creates a new scope as a child of the current scope.
func (c *Checker) openScope(comment string) types.Handle {
	c.scope = c.arena.Open(c.scope, comment)
	return c.scope
}

// closeScope returns to the parent scope.
func (c *Checker) closeScope() {
	parent := c.arena.Parent(c.scope)
	c.arena.Close(c.scope)
	c.scope = parent
}

// lookup looks up a name in the current scope chain.
func (c *Checker) lookup(name string) types.Object {
	obj, _ := c.arena.Lookup(c.scope, name)
	return obj
}

// declare declares an object in the current scope.
// A later declaration of the same name in the same scope replaces it.
func (c *Checker) declare(name *syntax.Name, obj types.Object) {
	c.arena.Define(c.scope, obj)
	if c.info != nil {
		c.info.Defs[name] = obj
	}
}

// recordUse records a use of an object.
func (c *Checker) recordUse(name *syntax.Name, obj types.Object) {
	if c.info != nil {
		c.info.Uses[name] = obj
	}
}
