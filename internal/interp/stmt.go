package interp

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
	"github.com/you-not-fish/dy/internal/value"
)

// outcomeKind tells how a statement finished.
type outcomeKind int

const (
	normal outcomeKind = iota
	breakLoop
	returnFunc
)

// outcome is the result of executing a statement. A return carries the
// value evaluated at the return site.
type outcome struct {
	kind outcomeKind
	val  value.Value
}

// stmts executes a statement list, stopping at the first outcome that is
// not normal and propagating it.
func (in *Interpreter) stmts(list []syntax.Stmt) (outcome, error) {
	for _, s := range list {
		out, err := in.stmt(s)
		if err != nil || out.kind != normal {
			return out, err
		}
	}
	return outcome{}, nil
}

// stmt executes a single statement.
func (in *Interpreter) stmt(s syntax.Stmt) (outcome, error) {
	switch s := s.(type) {
	case *syntax.EmptyStmt:
		return outcome{}, nil

	case *syntax.VarDecl:
		return outcome{}, in.varDecl(s)

	case *syntax.FuncDecl:
		in.arena.Define(in.scope, types.NewFunc(s, in.scope))
		return outcome{}, nil

	case *syntax.AssignStmt:
		return outcome{}, in.assignStmt(s)

	case *syntax.CallStmt:
		_, err := in.call(s.Call)
		return outcome{}, err

	case *syntax.Block:
		// Plain blocks share the enclosing scope.
		return in.stmts(s.Stmts)

	case *syntax.IfStmt:
		return in.ifStmt(s)

	case *syntax.ForStmt:
		return in.forStmt(s)

	case *syntax.BreakStmt:
		if in.loopDepth == 0 {
			return outcome{}, errorf(syntax.InterpreterError, s.Pos(), "break outside loop")
		}
		return outcome{kind: breakLoop}, nil

	case *syntax.ReturnStmt:
		var val value.Value
		if s.Result != nil {
			v, err := in.expr(s.Result)
			if err != nil {
				return outcome{}, err
			}
			val = v
		}
		return outcome{kind: returnFunc, val: val}, nil
	}
	return outcome{}, errorf(syntax.InterpreterError, s.Pos(), "unexpected statement %T", s)
}

// varDecl evaluates the initializer once and binds every name to it.
func (in *Interpreter) varDecl(d *syntax.VarDecl) error {
	typ := types.LookupBasic(d.Type.Name)
	if typ == nil {
		return errorf(syntax.InterpreterError, d.Type.Pos(), "unknown type %s", d.Type.Name)
	}

	var val value.Value
	if d.Value != nil {
		v, err := in.expr(d.Value)
		if err != nil {
			return err
		}
		conv, ok := typ.Convert(v)
		if !ok {
			return typeMismatch(d.Value.Pos(), d.Names[0].Value, v, typ)
		}
		val = conv
	}

	for _, name := range d.Names {
		in.arena.Define(in.scope, types.NewVar(name.Pos(), name.Value, typ, val))
	}
	return nil
}

// assignStmt stores a value into an existing variable.
func (in *Interpreter) assignStmt(s *syntax.AssignStmt) error {
	v, err := in.expr(s.Value)
	if err != nil {
		return err
	}
	return in.assign(s.Name, v)
}

func (in *Interpreter) assign(name *syntax.Name, v value.Value) error {
	obj, _ := in.arena.Lookup(in.scope, name.Value)
	switch obj := obj.(type) {
	case nil:
		return errorf(syntax.IDNotFound, name.Pos(), "undefined identifier %q", name.Value)

	case *types.Var:
		conv, ok := obj.Type().Convert(v)
		if !ok {
			return typeMismatch(name.Pos(), name.Value, v, obj.Type())
		}
		return in.arena.Assign(in.scope, name.Value, obj.WithValue(conv))
	}
	return errorf(syntax.InterpreterError, name.Pos(), "cannot assign to function %q", name.Value)
}

func typeMismatch(pos syntax.Pos, name string, v value.Value, typ *types.Basic) *Error {
	if !v.IsValid() {
		return errorf(syntax.InterpreterError, pos, "type mismatch: cannot assign a void result to %s variable %q", typ, name)
	}
	return errorf(syntax.InterpreterError, pos, "type mismatch: cannot assign %s value %s to %s variable %q",
		v.Kind(), v.Quote(), typ, name)
}

// ifStmt runs the first clause whose condition holds, in its own scope.
func (in *Interpreter) ifStmt(s *syntax.IfStmt) (outcome, error) {
	for _, clause := range s.Clauses {
		ok, err := in.cond(clause.Cond)
		if err != nil {
			return outcome{}, err
		}
		if ok {
			return in.withScope(in.scope, "if", func() (outcome, error) {
				return in.stmts(clause.Body.Stmts)
			})
		}
	}
	if s.Else != nil {
		return in.withScope(in.scope, "else", func() (outcome, error) {
			return in.stmts(s.Else.Stmts)
		})
	}
	return outcome{}, nil
}

// forStmt runs a loop. The induction variable is untyped and lives in a
// loop scope; each iteration's body gets a fresh scope below it, and the
// step runs in the loop scope.
func (in *Interpreter) forStmt(s *syntax.ForStmt) (outcome, error) {
	return in.withScope(in.scope, "loop", func() (outcome, error) {
		induction := s.Init.Name
		in.arena.Define(in.scope, types.NewVar(induction.Pos(), induction.Value, types.Typ[types.Untyped], value.Value{}))
		if err := in.assignStmt(s.Init); err != nil {
			return outcome{}, err
		}

		in.loopDepth++
		defer func() { in.loopDepth-- }()

		for iterations := 0; ; iterations++ {
			ok, err := in.cond(s.Cond)
			if err != nil || !ok {
				return outcome{}, err
			}
			if iterations >= in.conf.MaxLoopIterations {
				return outcome{}, errorf(syntax.InterpreterError, s.Pos(),
					"loop exceeded %d iterations", in.conf.MaxLoopIterations)
			}

			out, err := in.withScope(in.scope, "loop body", func() (outcome, error) {
				return in.stmts(s.Body.Stmts)
			})
			switch {
			case err != nil:
				return outcome{}, err
			case out.kind == breakLoop:
				return outcome{}, nil
			case out.kind == returnFunc:
				return out, nil
			}

			if _, err := in.stmt(s.Post); err != nil {
				return outcome{}, err
			}
		}
	})
}

// cond evaluates a condition in the boolean domain.
func (in *Interpreter) cond(e syntax.Expr) (bool, error) {
	v, err := in.expr(e)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, errorf(syntax.InterpreterError, e.Pos(), "condition is not boolean: %s value %s", v.Kind(), v.Quote())
	}
	return b, nil
}
