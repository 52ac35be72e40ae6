package interp

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
	"github.com/you-not-fish/dy/internal/value"
)

// expr evaluates an expression in the current scope.
func (in *Interpreter) expr(e syntax.Expr) (value.Value, error) {
	switch e := e.(type) {
	case *syntax.Name:
		return in.name(e)

	case *syntax.NumLit:
		if e.Kind == syntax.IntLit {
			return value.MakeInt(e.Int), nil
		}
		return value.MakeFloat(e.Float), nil

	case *syntax.StrLit:
		return value.MakeString(e.Value), nil

	case *syntax.BoolLit:
		b, ok := value.ParseBool(e.Value)
		if !ok {
			return value.Value{}, errorf(syntax.InterpreterError, e.Pos(), "invalid boolean literal %q", e.Value)
		}
		return value.MakeBool(b), nil

	case *syntax.UnaryExpr:
		x, err := in.expr(e.X)
		if err != nil {
			return value.Value{}, err
		}
		v, err := value.Unary(e.Op, x)
		if err != nil {
			return value.Value{}, opError(e.Pos(), err)
		}
		return v, nil

	case *syntax.NotExpr:
		x, err := in.expr(e.X)
		if err != nil {
			return value.Value{}, err
		}
		v, err := value.Not(x)
		if err != nil {
			return value.Value{}, opError(e.Pos(), err)
		}
		return v, nil

	case *syntax.BinaryExpr:
		x, y, err := in.operands(e.X, e.Y)
		if err != nil {
			return value.Value{}, err
		}
		v, err := value.Binary(e.Op, x, y)
		if err != nil {
			return value.Value{}, opError(e.Pos(), err)
		}
		return v, nil

	case *syntax.ConcatExpr:
		x, y, err := in.operands(e.X, e.Y)
		if err != nil {
			return value.Value{}, err
		}
		v, err := value.Concat(x, y)
		if err != nil {
			return value.Value{}, opError(e.Pos(), err)
		}
		return v, nil

	case *syntax.BoolExpr:
		x, y, err := in.operands(e.X, e.Y)
		if err != nil {
			return value.Value{}, err
		}
		if e.Op == syntax.Or || e.Op == syntax.And {
			v, err := value.Logic(e.Op, x, y)
			if err != nil {
				return value.Value{}, opError(e.Pos(), err)
			}
			return v, nil
		}
		return value.MakeBool(value.Compare(x, y, e.Op)), nil

	case *syntax.CallExpr:
		return in.call(e)
	}
	return value.Value{}, errorf(syntax.InterpreterError, e.Pos(), "unexpected expression %T", e)
}

// operands evaluates both sides of a binary node, left to right.
func (in *Interpreter) operands(x, y syntax.Expr) (value.Value, value.Value, error) {
	xv, err := in.expr(x)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	yv, err := in.expr(y)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}
	return xv, yv, nil
}

// name reads a variable.
func (in *Interpreter) name(n *syntax.Name) (value.Value, error) {
	obj, _ := in.arena.Lookup(in.scope, n.Value)
	switch obj := obj.(type) {
	case nil:
		return value.Value{}, errorf(syntax.IDNotFound, n.Pos(), "undefined identifier %q", n.Value)

	case *types.Var:
		if !obj.Value().IsValid() {
			return value.Value{}, errorf(syntax.InterpreterError, n.Pos(), "variable %q has no value", n.Value)
		}
		return obj.Value(), nil
	}
	return value.Value{}, errorf(syntax.InterpreterError, n.Pos(), "function %q used as a value", n.Value)
}
