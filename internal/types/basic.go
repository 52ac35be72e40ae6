// Package types implements the Dy type tags, the declared objects
// (variables, functions, built-ins) and the scope arena both the
// analyzer and the interpreter resolve names in.
package types

import "github.com/you-not-fish/dy/internal/value"

// BasicKind describes the kind of a declared type tag.
type BasicKind int

const (
	Untyped BasicKind = iota // accepts any value (loop induction variables)

	Integer
	Real
	String
	Boolean
)

// Basic is a declared type tag: INTEGER, REAL/FLOAT, STRING or BOOLEAN.
type Basic struct {
	kind BasicKind
	name string
}

// Kind returns the kind of the type tag.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Name returns the type tag as spelled in declarations.
func (b *Basic) Name() string {
	return b.name
}

// String implements fmt.Stringer.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared type tags, indexed by BasicKind.
var Typ = []*Basic{
	Untyped: {kind: Untyped, name: "untyped"},
	Integer: {kind: Integer, name: "INTEGER"},
	Real:    {kind: Real, name: "REAL"},
	String:  {kind: String, name: "STRING"},
	Boolean: {kind: Boolean, name: "BOOLEAN"},
}

// Float is the FLOAT spelling of the Real type tag.
var Float = &Basic{kind: Real, name: "FLOAT"}

// LookupBasic returns the type tag for a type keyword, or nil.
func LookupBasic(name string) *Basic {
	switch name {
	case "INTEGER":
		return Typ[Integer]
	case "REAL":
		return Typ[Real]
	case "FLOAT":
		return Float
	case "STRING":
		return Typ[String]
	case "BOOLEAN":
		return Typ[Boolean]
	}
	return nil
}

// Convert checks v against the type tag and returns the value to store.
//
//	INTEGER <- integer
//	REAL    <- integer or float, stored as float
//	STRING  <- string
//	BOOLEAN <- boolean, or a string spelling true/false in any case
//	untyped <- anything
func (b *Basic) Convert(v value.Value) (value.Value, bool) {
	switch b.kind {
	case Untyped:
		return v, true

	case Integer:
		if v.Kind() == value.Int {
			return v, true
		}

	case Real:
		if f, ok := v.AsFloat(); ok {
			return value.MakeFloat(f), true
		}

	case String:
		if v.Kind() == value.String {
			return v, true
		}

	case Boolean:
		if v.Kind() == value.Bool {
			return v, true
		}
		if v.Kind() == value.String {
			if bv, ok := value.ParseBool(v.Str()); ok {
				return value.MakeBool(bv), true
			}
		}
	}
	return value.Value{}, false
}
