package interp

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
	"github.com/you-not-fish/dy/internal/value"
)

// call evaluates a call. Arguments are evaluated in the caller's scope.
// Names that do not resolve in the scope chain fall back to the host
// built-ins. A call that returns nothing yields an absent value.
func (in *Interpreter) call(e *syntax.CallExpr) (value.Value, error) {
	args := make([]value.Value, len(e.Args))
	for i, arg := range e.Args {
		v, err := in.expr(arg)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	name := e.Name
	obj, _ := in.arena.Lookup(in.scope, name.Value)
	switch obj := obj.(type) {
	case nil:
		fn, ok := in.builtins[name.Value]
		if !ok {
			return value.Value{}, errorf(syntax.IDNotFound, name.Pos(), "unresolved call to %q", name.Value)
		}
		v, err := fn(in, args)
		if err != nil {
			return value.Value{}, errorf(syntax.InterpreterError, name.Pos(), "%s: %v", name.Value, err)
		}
		return v, nil

	case *types.Func:
		return in.callFunc(e, obj, args)
	}
	return value.Value{}, errorf(syntax.InterpreterError, name.Pos(), "%q is not a function", name.Value)
}

// callFunc runs a declared function in a new scope whose parent is the
// function's declaring scope.
func (in *Interpreter) callFunc(e *syntax.CallExpr, fn *types.Func, args []value.Value) (value.Value, error) {
	decl := fn.Decl()
	if len(args) != len(decl.Params) {
		return value.Value{}, errorf(syntax.ArgumentsMismatch, e.Pos(),
			"arguments mismatch: %s expects %d, got %d", fn.Name(), len(decl.Params), len(args))
	}
	if in.callDepth >= in.conf.MaxCallDepth {
		return value.Value{}, errorf(syntax.InterpreterError, e.Pos(),
			"maximum call depth %d exceeded", in.conf.MaxCallDepth)
	}

	in.callDepth++
	savedLoops := in.loopDepth
	in.loopDepth = 0
	defer func() {
		in.callDepth--
		in.loopDepth = savedLoops
	}()

	var result value.Value
	_, err := in.withScope(fn.Scope(), "function "+fn.Name(), func() (outcome, error) {
		for i, prm := range decl.Params {
			typ := types.LookupBasic(prm.Type.Name)
			if typ == nil {
				return outcome{}, errorf(syntax.InterpreterError, prm.Type.Pos(), "unknown type %s", prm.Type.Name)
			}
			conv, ok := typ.Convert(args[i])
			if !ok {
				return outcome{}, typeMismatch(e.Args[i].Pos(), prm.Name.Value, args[i], typ)
			}
			in.arena.Define(in.scope, types.NewVar(prm.Pos(), prm.Name.Value, typ, conv))
		}

		out, err := in.stmts(decl.Body.Stmts)
		switch {
		case err != nil:
			return outcome{}, err
		case out.kind == returnFunc:
			result = out.val
		case decl.Result != nil:
			v, err := in.expr(decl.Result)
			if err != nil {
				return outcome{}, err
			}
			result = v
		}
		return outcome{}, nil
	})
	return result, err
}
