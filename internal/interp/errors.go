package interp

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/value"
)

// Error represents a runtime failure.
type Error struct {
	Code syntax.ErrorCode
	Pos  syntax.Pos
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("InterpreterError: %s: %s", e.Pos, e.Msg)
}

// errorf creates a runtime error at pos.
func errorf(code syntax.ErrorCode, pos syntax.Pos, format string, args ...interface{}) *Error {
	return &Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// opError converts a failure from the value package into a runtime error.
func opError(pos syntax.Pos, err error) *Error {
	var opErr *value.OpError
	switch {
	case errors.Is(err, value.ErrDivisionByZero):
		return errorf(syntax.InterpreterError, pos, "division by zero")
	case errors.As(err, &opErr):
		return errorf(syntax.InterpreterError, pos, "type error: %s", opErr)
	}
	return errorf(syntax.InterpreterError, pos, "%v", err)
}
