package types

// universe holds the host built-ins. They are consulted only when a call
// name does not resolve in the scope chain, so programs may shadow them.
var universe = map[string]*Builtin{}

// Predeclared builtins
var universePrint *Builtin

func init() {
	defPredeclaredBuiltins()
}

// defPredeclaredBuiltins defines print.
func defPredeclaredBuiltins() {
	universePrint = NewBuiltin("print", BuiltinPrint, -1)
	universe[universePrint.Name()] = universePrint
}

// LookupBuiltin returns the builtin with the given name, or nil.
func LookupBuiltin(name string) *Builtin {
	return universe[name]
}

// UniversePrint returns the print builtin.
func UniversePrint() *Builtin { return universePrint }
