package types

import (
	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/value"
)

// Object represents a declared entity: variable, function or builtin.
type Object interface {
	Name() string    // object name
	Pos() syntax.Pos // declaration position
	aObject()        // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name string
	pos  syntax.Pos
}

func (o *object) Name() string    { return o.name }
func (o *object) Pos() syntax.Pos { return o.pos }
func (*object) aObject()          {}

// Var represents a variable or a parameter with its current value.
// A Var is immutable; assignment replaces it in its owning scope.
type Var struct {
	object
	typ *Basic
	val value.Value
}

// NewVar creates a new variable object. An invalid val means the
// variable has been declared but not yet assigned.
func NewVar(pos syntax.Pos, name string, typ *Basic, val value.Value) *Var {
	return &Var{object: object{name: name, pos: pos}, typ: typ, val: val}
}

// Type returns the variable's declared type tag.
func (v *Var) Type() *Basic {
	return v.typ
}

// Value returns the variable's value (absent if never assigned).
func (v *Var) Value() value.Value {
	return v.val
}

// WithValue returns a copy of v holding val.
func (v *Var) WithValue(val value.Value) *Var {
	return NewVar(v.pos, v.name, v.typ, val)
}

// Func represents a declared function together with the scope it was
// declared in. Calls open their scope as a child of that scope.
type Func struct {
	object
	decl  *syntax.FuncDecl
	scope Handle
}

// NewFunc creates a new function object declared in scope.
func NewFunc(decl *syntax.FuncDecl, scope Handle) *Func {
	return &Func{object: object{name: decl.Name.Value, pos: decl.Pos()}, decl: decl, scope: scope}
}

// Decl returns the function's declaration.
func (f *Func) Decl() *syntax.FuncDecl {
	return f.decl
}

// Scope returns the handle of the declaring scope.
func (f *Func) Scope() Handle {
	return f.scope
}

// Arity returns the number of parameters.
func (f *Func) Arity() int {
	return len(f.decl.Params)
}

// BuiltinKind identifies a builtin function.
type BuiltinKind int

const (
	BuiltinPrint BuiltinKind = iota
)

// Builtin represents a host function callable by name.
type Builtin struct {
	object
	kind  BuiltinKind
	arity int // -1 for variadic
}

// NewBuiltin creates a new builtin function object.
func NewBuiltin(name string, kind BuiltinKind, arity int) *Builtin {
	return &Builtin{object: object{name: name}, kind: kind, arity: arity}
}

// Kind returns the builtin function kind.
func (b *Builtin) Kind() BuiltinKind {
	return b.kind
}

// Arity returns the number of arguments, or -1 if any number is accepted.
func (b *Builtin) Arity() int {
	return b.arity
}
