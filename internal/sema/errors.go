// Package sema implements the static semantic checks for Dy programs.
package sema

import (
	"fmt"

	"github.com/you-not-fish/dy/internal/syntax"
)

// Error represents a semantic error.
type Error struct {
	Code syntax.ErrorCode
	Pos  syntax.Pos
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("SemanticError: %s: %s", e.Pos, e.Msg)
}

// errorf records the first semantic error. Later errors are dropped since
// the first failure aborts the pass.
func (c *Checker) errorf(code syntax.ErrorCode, pos syntax.Pos, format string, args ...interface{}) {
	if c.first != nil {
		return
	}
	c.first = &Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// failed reports whether an error has been recorded.
func (c *Checker) failed() bool {
	return c.first != nil
}
