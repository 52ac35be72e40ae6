package interp

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/dy/internal/value"
)

// BuiltinFunc is a host function callable from Dy code by name.
type BuiltinFunc func(in *Interpreter, args []value.Value) (value.Value, error)

// builtinPrint writes its arguments separated by spaces and followed by a
// newline to the configured output.
func builtinPrint(in *Interpreter, args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		if !arg.IsValid() {
			return value.Value{}, fmt.Errorf("argument %d has no value", i+1)
		}
		parts[i] = arg.String()
	}
	if _, err := fmt.Fprintln(in.conf.Stdout, strings.Join(parts, " ")); err != nil {
		return value.Value{}, err
	}
	return value.Value{}, nil
}
