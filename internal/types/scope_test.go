package types

import (
	"strings"
	"testing"

	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/value"
)

// Helper function to create a variable for testing
func testVar(name string, typ *Basic, v value.Value) *Var {
	return NewVar(syntax.NoPos, name, typ, v)
}

func TestArenaDefineAndLookup(t *testing.T) {
	a := NewArena()
	h := a.Open(NoScope, "test")

	obj := testVar("x", Typ[Integer], value.MakeInt(1))
	a.Define(h, obj)

	if found := a.LookupLocal(h, "x"); found != obj {
		t.Errorf("LookupLocal() did not return defined object")
	}

	// Redefinition replaces in the same scope
	obj2 := testVar("x", Typ[Real], value.Value{})
	a.Define(h, obj2)
	if found := a.LookupLocal(h, "x"); found != obj2 {
		t.Errorf("Define() did not replace existing object")
	}
}

func TestArenaLookupParent(t *testing.T) {
	a := NewArena()
	parent := a.Open(NoScope, "parent")
	child := a.Open(parent, "child")

	obj := testVar("x", Typ[Integer], value.MakeInt(1))
	a.Define(parent, obj)

	found, owner := a.Lookup(child, "x")
	if found != obj {
		t.Errorf("Lookup() did not find parent's object")
	}
	if owner != parent {
		t.Errorf("Lookup() owner = %d, want %d", owner, parent)
	}
	if a.LookupLocal(child, "x") != nil {
		t.Errorf("LookupLocal() should not find parent's object")
	}
	if found, owner := a.Lookup(child, "y"); found != nil || owner != NoScope {
		t.Errorf("Lookup(y) = %v, %d; want nil, NoScope", found, owner)
	}
}

func TestArenaShadowing(t *testing.T) {
	a := NewArena()
	parent := a.Open(NoScope, "parent")
	child := a.Open(parent, "child")

	outer := testVar("x", Typ[Integer], value.MakeInt(1))
	inner := testVar("x", Typ[String], value.MakeString("s"))
	a.Define(parent, outer)
	a.Define(child, inner)

	if found, _ := a.Lookup(child, "x"); found != inner {
		t.Errorf("child lookup should find shadowing object")
	}
	if found, _ := a.Lookup(parent, "x"); found != outer {
		t.Errorf("parent lookup should find its own object")
	}
}

func TestArenaLexicalParent(t *testing.T) {
	a := NewArena()
	global := a.Open(NoScope, "program")
	caller := a.Open(global, "caller")
	a.Define(caller, testVar("local", Typ[Integer], value.MakeInt(1)))

	// A call scope hangs off the declaring scope, not the caller.
	call := a.Open(global, "function f")
	if a.IsDefined(call, "local") {
		t.Errorf("call scope must not see the caller's locals")
	}
	if a.Parent(call) != global {
		t.Errorf("Parent() = %d, want %d", a.Parent(call), global)
	}
	a.Close(call)
	a.Close(caller)
}

func TestArenaAssign(t *testing.T) {
	a := NewArena()
	parent := a.Open(NoScope, "parent")
	child := a.Open(parent, "child")

	v := testVar("x", Typ[Integer], value.Value{})
	a.Define(parent, v)

	if err := a.Assign(child, "x", v.WithValue(value.MakeInt(5))); err != nil {
		t.Fatalf("Assign() error: %v", err)
	}
	if a.LookupLocal(child, "x") != nil {
		t.Errorf("Assign() must update the owning scope, not the current one")
	}
	got := a.LookupLocal(parent, "x").(*Var)
	if got.Value() != value.MakeInt(5) {
		t.Errorf("value after Assign() = %v, want 5", got.Value())
	}

	err := a.Assign(child, "missing", v)
	if err == nil || !strings.Contains(err.Error(), `undefined variable "missing"`) {
		t.Errorf("Assign(missing) error = %v", err)
	}
}

func TestArenaCloseReusesHandles(t *testing.T) {
	a := NewArena()
	root := a.Open(NoScope, "root")
	h := a.Open(root, "block")
	a.Define(h, testVar("tmp", Typ[Integer], value.MakeInt(1)))
	a.Close(h)

	if a.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", a.Depth())
	}
	h2 := a.Open(root, "block")
	if h2 != h {
		t.Errorf("reopened handle = %d, want %d", h2, h)
	}
	if a.IsDefined(h2, "tmp") {
		t.Errorf("closed scope contents leaked into a new scope")
	}
}

func TestArenaCloseOutOfOrderPanics(t *testing.T) {
	a := NewArena()
	root := a.Open(NoScope, "root")
	a.Open(root, "inner")

	defer func() {
		if recover() == nil {
			t.Error("closing a non-innermost scope should panic")
		}
	}()
	a.Close(root)
}

func TestArenaNames(t *testing.T) {
	a := NewArena()
	h := a.Open(NoScope, "test")
	for _, name := range []string{"zeta", "alpha", "mid"} {
		a.Define(h, testVar(name, Typ[Untyped], value.Value{}))
	}

	got := strings.Join(a.Names(h), ",")
	if got != "alpha,mid,zeta" {
		t.Errorf("Names() = %s, want alpha,mid,zeta", got)
	}
	if !strings.Contains(a.String(), "scope 0 test") {
		t.Errorf("String() = %q", a.String())
	}
}

func TestLookupBasic(t *testing.T) {
	tests := []struct {
		name string
		kind BasicKind
	}{
		{"INTEGER", Integer},
		{"REAL", Real},
		{"FLOAT", Real},
		{"STRING", String},
		{"BOOLEAN", Boolean},
	}

	for _, tt := range tests {
		b := LookupBasic(tt.name)
		if b == nil {
			t.Fatalf("LookupBasic(%q) = nil", tt.name)
		}
		if b.Kind() != tt.kind || b.Name() != tt.name {
			t.Errorf("LookupBasic(%q) = %s (kind %d)", tt.name, b, b.Kind())
		}
	}
	if LookupBasic("OBJECT") != nil {
		t.Errorf("OBJECT must not be a type")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		typ    *Basic
		in     value.Value
		want   value.Value
		wantOK bool
	}{
		{Typ[Integer], value.MakeInt(3), value.MakeInt(3), true},
		{Typ[Integer], value.MakeFloat(3), value.Value{}, false},
		{Typ[Integer], value.MakeString("3"), value.Value{}, false},
		{Typ[Real], value.MakeInt(222), value.MakeFloat(222), true},
		{Float, value.MakeFloat(1.5), value.MakeFloat(1.5), true},
		{Typ[Real], value.MakeBool(true), value.Value{}, false},
		{Typ[String], value.MakeString("s"), value.MakeString("s"), true},
		{Typ[String], value.MakeFloat(1.5), value.Value{}, false},
		{Typ[Boolean], value.MakeBool(false), value.MakeBool(false), true},
		{Typ[Boolean], value.MakeString("True"), value.MakeBool(true), true},
		{Typ[Boolean], value.MakeString("no"), value.Value{}, false},
		{Typ[Boolean], value.MakeInt(1), value.Value{}, false},
		{Typ[Untyped], value.MakeString("any"), value.MakeString("any"), true},
	}

	for _, tt := range tests {
		got, ok := tt.typ.Convert(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s.Convert(%s) = %s, %v; want %s, %v",
				tt.typ, tt.in.Quote(), got.Quote(), ok, tt.want.Quote(), tt.wantOK)
		}
	}
}

func TestUniverse(t *testing.T) {
	p := LookupBuiltin("print")
	if p == nil || p != UniversePrint() {
		t.Fatal("print builtin not predeclared")
	}
	if p.Kind() != BuiltinPrint || p.Arity() != -1 {
		t.Errorf("print = kind %d arity %d", p.Kind(), p.Arity())
	}
	if LookupBuiltin("println") != nil {
		t.Errorf("unexpected builtin println")
	}
}
