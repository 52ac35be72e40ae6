package driver

import (
	"io"

	"github.com/you-not-fish/dy/internal/interp"
	"github.com/you-not-fish/dy/internal/sema"
	"github.com/you-not-fish/dy/internal/syntax"
)

// Unit is one program moving through the pipeline.
type Unit struct {
	Filename string
	Src      string

	Prog *syntax.Program // set by the parse stage
	Info *sema.Info      // set by the check stage
}

// Dump prints the unit's tree.
func (u *Unit) Dump(w io.Writer) {
	syntax.Fprint(w, u.Prog)
}

// Stage describes a single pipeline step.
type Stage struct {
	Name string
	Fn   func(d *Driver, u *Unit) error
}

// The pipeline stages, in order.
var (
	ParseStage = Stage{Name: "parse", Fn: parse}
	CheckStage = Stage{Name: "check", Fn: check}
	ExecStage  = Stage{Name: "execute", Fn: execute}
)

func parse(d *Driver, u *Unit) error {
	prog, err := syntax.Parse(u.Filename, u.Src)
	if err != nil {
		return err
	}
	u.Prog = prog
	return nil
}

func check(d *Driver, u *Unit) error {
	info := &sema.Info{}
	if err := sema.Check(u.Prog, info); err != nil {
		return err
	}
	u.Info = info
	return nil
}

func execute(d *Driver, u *Unit) error {
	return interp.Run(u.Prog, d.conf.InterpConfig(d.stdout))
}
