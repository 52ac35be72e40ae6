package value

import (
	"errors"
	"fmt"
	"math"

	"github.com/you-not-fish/dy/internal/syntax"
)

// Epsilon is the tolerance used when comparing numeric values.
const Epsilon = 1e-9

// ErrDivisionByZero is returned by Binary for "/" and DIV with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// OpError reports operands an operator cannot be applied to.
type OpError struct {
	Op   string
	X, Y Value // Y is absent for unary operators
}

func (e *OpError) Error() string {
	if !e.Y.IsValid() {
		return fmt.Sprintf("unsupported operand type for %s: %s", e.Op, e.X.Kind())
	}
	return fmt.Sprintf("unsupported operand types for %s: %s and %s", e.Op, e.X.Kind(), e.Y.Kind())
}

// Binary applies an arithmetic operator (+ - * / DIV).
//
// Integer operands stay integers under + - * and DIV; any float operand
// makes the result a float, and "/" always yields a float. "+" on two
// strings concatenates.
func Binary(op syntax.Token, x, y Value) (Value, error) {
	if op == syntax.Add && x.kind == String && y.kind == String {
		return MakeString(x.s + y.s), nil
	}
	if !x.IsNumeric() || !y.IsNumeric() {
		return Value{}, &OpError{Op: op.String(), X: x, Y: y}
	}

	if x.kind == Int && y.kind == Int {
		a, b := x.i, y.i
		switch op {
		case syntax.Add:
			return MakeInt(a + b), nil
		case syntax.Sub:
			return MakeInt(a - b), nil
		case syntax.Mul:
			return MakeInt(a * b), nil
		case syntax.IntDiv:
			if b == 0 {
				return Value{}, ErrDivisionByZero
			}
			return MakeInt(a / b), nil
		}
	}

	a, _ := x.AsFloat()
	b, _ := y.AsFloat()
	switch op {
	case syntax.Add:
		return MakeFloat(a + b), nil
	case syntax.Sub:
		return MakeFloat(a - b), nil
	case syntax.Mul:
		return MakeFloat(a * b), nil
	case syntax.Div:
		if b == 0 {
			return Value{}, ErrDivisionByZero
		}
		return MakeFloat(a / b), nil
	case syntax.IntDiv:
		if b == 0 {
			return Value{}, ErrDivisionByZero
		}
		return MakeFloat(math.Trunc(a / b)), nil
	}
	return Value{}, fmt.Errorf("unknown arithmetic operator %s", op)
}

// Unary applies a sign operator (+ or -) to a numeric value.
func Unary(op syntax.Token, x Value) (Value, error) {
	if !x.IsNumeric() {
		return Value{}, &OpError{Op: op.String(), X: x}
	}
	switch op {
	case syntax.Add:
		return x, nil
	case syntax.Sub:
		if x.kind == Int {
			return MakeInt(-x.i), nil
		}
		return MakeFloat(-x.f), nil
	}
	return Value{}, fmt.Errorf("unknown unary operator %s", op)
}

// Concat joins two strings.
func Concat(x, y Value) (Value, error) {
	if x.kind != String || y.kind != String {
		return Value{}, &OpError{Op: "string concatenation", X: x, Y: y}
	}
	return MakeString(x.s + y.s), nil
}

// Logic applies "or" or "and" in the boolean domain.
func Logic(op syntax.Token, x, y Value) (Value, error) {
	a, ok1 := x.AsBool()
	b, ok2 := y.AsBool()
	if !ok1 || !ok2 {
		return Value{}, &OpError{Op: op.String(), X: x, Y: y}
	}
	switch op {
	case syntax.Or:
		return MakeBool(a || b), nil
	case syntax.And:
		return MakeBool(a && b), nil
	}
	return Value{}, fmt.Errorf("unknown boolean operator %s", op)
}

// Not negates a value in the boolean domain.
func Not(x Value) (Value, error) {
	b, ok := x.AsBool()
	if !ok {
		return Value{}, &OpError{Op: "not", X: x}
	}
	return MakeBool(!b), nil
}

// Compare evaluates x op y for a relational operator.
//
// Numbers compare by value within Epsilon, strings lexicographically and
// booleans only for equality. Any other combination compares false.
func Compare(x, y Value, op syntax.Token) bool {
	switch {
	case x.kind == Int && y.kind == Int:
		return order(op, x.i == y.i, x.i < y.i)

	case x.IsNumeric() && y.IsNumeric():
		a, _ := x.AsFloat()
		b, _ := y.AsFloat()
		return order(op, math.Abs(a-b) < Epsilon, a < b)

	case x.kind == String && y.kind == String:
		return order(op, x.s == y.s, x.s < y.s)

	case x.kind == Bool && y.kind == Bool:
		switch op {
		case syntax.Eql:
			return x.b == y.b
		case syntax.Neq:
			return x.b != y.b
		}
	}
	return false
}

// order resolves a relational operator from equality and strict ordering.
func order(op syntax.Token, eq, less bool) bool {
	switch op {
	case syntax.Eql:
		return eq
	case syntax.Neq:
		return !eq
	case syntax.Lss:
		return !eq && less
	case syntax.Leq:
		return eq || less
	case syntax.Gtr:
		return !eq && !less
	case syntax.Geq:
		return eq || !less
	}
	return false
}
