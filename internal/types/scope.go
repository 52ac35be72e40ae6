package types

import (
	"fmt"
	"sort"
	"strings"
)

// Handle identifies a scope within an Arena.
type Handle int

// NoScope is the parent handle of a root scope.
const NoScope Handle = -1

// scope is one lexical scope. Parent links are handles, so a call scope can
// hang off its function's declaring scope instead of the caller's.
type scope struct {
	parent  Handle
	elems   map[string]Object
	comment string // debugging comment (e.g., "function foo", "loop")
}

// Arena owns the scopes of one pass. Scopes are opened and closed in LIFO
// order; a closed scope's handle is reused by the next Open.
type Arena struct {
	scopes []scope
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Open creates a new scope with the given parent and returns its handle.
func (a *Arena) Open(parent Handle, comment string) Handle {
	if parent != NoScope {
		a.check(parent)
	}
	a.scopes = append(a.scopes, scope{
		parent:  parent,
		elems:   make(map[string]Object),
		comment: comment,
	})
	return Handle(len(a.scopes) - 1)
}

// Close discards the innermost open scope. Closing any other scope is a
// programming error and panics.
func (a *Arena) Close(h Handle) {
	if int(h) != len(a.scopes)-1 {
		panic(fmt.Sprintf("types: closing scope %d, innermost open scope is %d", h, len(a.scopes)-1))
	}
	a.scopes[h] = scope{}
	a.scopes = a.scopes[:h]
}

// Depth returns the number of open scopes.
func (a *Arena) Depth() int {
	return len(a.scopes)
}

// Parent returns the parent handle of h.
func (a *Arena) Parent(h Handle) Handle {
	return a.check(h).parent
}

// Comment returns the scope's comment (for debugging).
func (a *Arena) Comment(h Handle) string {
	return a.check(h).comment
}

// Define inserts obj into scope h, replacing any object of the same name
// in that scope only.
func (a *Arena) Define(h Handle, obj Object) {
	a.check(h).elems[obj.Name()] = obj
}

// LookupLocal returns the object with the given name in scope h.
// Returns nil if not found in this scope (does not search parent scopes).
func (a *Arena) LookupLocal(h Handle, name string) Object {
	return a.check(h).elems[name]
}

// Lookup returns the object with the given name by searching from scope h
// outward through its parents, together with the handle of the scope in
// which it was found. Returns (nil, NoScope) if not found.
func (a *Arena) Lookup(h Handle, name string) (Object, Handle) {
	for s := h; s != NoScope; s = a.scopes[s].parent {
		if obj := a.check(s).elems[name]; obj != nil {
			return obj, s
		}
	}
	return nil, NoScope
}

// IsDefined reports whether name resolves from scope h.
func (a *Arena) IsDefined(h Handle, name string) bool {
	obj, _ := a.Lookup(h, name)
	return obj != nil
}

// Assign replaces the object bound to name in the scope that owns it.
func (a *Arena) Assign(h Handle, name string, obj Object) error {
	_, owner := a.Lookup(h, name)
	if owner == NoScope {
		return fmt.Errorf("undefined variable %q", name)
	}
	a.scopes[owner].elems[name] = obj
	return nil
}

// Names returns the names of all objects in scope h, sorted alphabetically.
func (a *Arena) Names(h Handle) []string {
	elems := a.check(h).elems
	names := make([]string, 0, len(elems))
	for name := range elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a string representation of the open scopes for debugging.
func (a *Arena) String() string {
	var buf strings.Builder
	for i, s := range a.scopes {
		fmt.Fprintf(&buf, "scope %d %s (parent %d) {\n", i, s.comment, s.parent)
		for _, name := range a.Names(Handle(i)) {
			fmt.Fprintf(&buf, "  %s: %s\n", name, describe(s.elems[name]))
		}
		buf.WriteString("}\n")
	}
	return buf.String()
}

func describe(obj Object) string {
	switch o := obj.(type) {
	case *Var:
		return fmt.Sprintf("var %s = %s", o.typ, o.val.Quote())
	case *Func:
		return fmt.Sprintf("function/%d", o.Arity())
	case *Builtin:
		return "builtin"
	}
	return fmt.Sprintf("%T", obj)
}

func (a *Arena) check(h Handle) *scope {
	if h < 0 || int(h) >= len(a.scopes) {
		panic(fmt.Sprintf("types: scope handle %d is not open", h))
	}
	return &a.scopes[h]
}
