package sema

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
)

// Info holds the results of checking.
type Info struct {
	// Defs maps defining identifiers to their declared objects:
	// variables, parameters, loop variables and functions.
	Defs map[*syntax.Name]types.Object

	// Uses maps referencing identifiers to the objects they resolve to,
	// including assignment targets and call names. Calls that fall back to
	// the host table map to a *types.Builtin.
	Uses map[*syntax.Name]types.Object
}

// Check validates a parsed program.
// It returns the first error encountered, if any.
func Check(prog *syntax.Program, info *Info) error {
	// Initialize info maps if not provided
	if info != nil {
		if info.Defs == nil {
			info.Defs = make(map[*syntax.Name]types.Object)
		}
		if info.Uses == nil {
			info.Uses = make(map[*syntax.Name]types.Object)
		}
	}

	c := &Checker{
		info:  info,
		arena: types.NewArena(),
		scope: types.NoScope,
	}

	c.checkProgram(prog)

	if c.first != nil {
		return c.first
	}
	return nil
}
