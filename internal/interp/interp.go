// Package interp executes checked Dy programs by walking their syntax tree.
package interp

import (
	"io"
	"os"

	"github.com/you-not-fish/dy/internal/syntax"
	"github.com/you-not-fish/dy/internal/types"
)

// Default execution ceilings.
const (
	DefaultMaxLoopIterations = 1000000
	DefaultMaxCallDepth      = 2000
)

// Config specifies the configuration for execution.
type Config struct {
	// Stdout receives the output of print. If nil, os.Stdout is used.
	Stdout io.Writer

	// MaxLoopIterations bounds the iterations of a single loop.
	// If <= 0, DefaultMaxLoopIterations is used.
	MaxLoopIterations int

	// MaxCallDepth bounds the nesting of function calls.
	// If <= 0, DefaultMaxCallDepth is used.
	MaxCallDepth int
}

// Interpreter holds the state of one program execution.
type Interpreter struct {
	conf     Config
	builtins map[string]BuiltinFunc

	arena *types.Arena
	scope types.Handle // current scope

	loopDepth int // loops enclosing the current statement in this call frame
	callDepth int
}

// New creates an interpreter with the host built-ins installed.
func New(conf *Config) *Interpreter {
	in := &Interpreter{builtins: make(map[string]BuiltinFunc)}
	if conf != nil {
		in.conf = *conf
	}
	if in.conf.Stdout == nil {
		in.conf.Stdout = os.Stdout
	}
	if in.conf.MaxLoopIterations <= 0 {
		in.conf.MaxLoopIterations = DefaultMaxLoopIterations
	}
	if in.conf.MaxCallDepth <= 0 {
		in.conf.MaxCallDepth = DefaultMaxCallDepth
	}
	in.Register("print", builtinPrint)
	return in
}

// Register installs a host built-in, replacing any built-in of the same name.
func (in *Interpreter) Register(name string, fn BuiltinFunc) {
	in.builtins[name] = fn
}

// Run executes a program. Each call starts from an empty global scope.
func (in *Interpreter) Run(prog *syntax.Program) error {
	in.arena = types.NewArena()
	in.scope = types.NoScope
	in.loopDepth = 0
	in.callDepth = 0

	_, err := in.withScope(types.NoScope, "program "+prog.Name.Value, func() (outcome, error) {
		return in.stmts(prog.Body.Stmts)
	})
	return err
}

// Run executes prog with a fresh interpreter.
func Run(prog *syntax.Program, conf *Config) error {
	return New(conf).Run(prog)
}

// withScope runs fn in a new scope with the given parent and restores the
// current scope afterwards, also when fn fails.
func (in *Interpreter) withScope(parent types.Handle, comment string, fn func() (outcome, error)) (outcome, error) {
	saved := in.scope
	in.scope = in.arena.Open(parent, comment)
	defer func() {
		in.arena.Close(in.scope)
		in.scope = saved
	}()
	return fn()
}
