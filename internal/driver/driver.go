// Package driver runs Dy programs through the parse, check and execute
// stages on behalf of the dy command.
package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/you-not-fish/dy/internal/config"
)

// Mode selects how far the pipeline goes.
type Mode int

const (
	ModeRun   Mode = iota // parse, check and execute
	ModeCheck             // parse and check only
)

// Options controls pipeline execution behavior.
type Options struct {
	DumpAfter string    // print the tree after this stage ("*" for all)
	Trace     bool      // print the time spent in each stage
	Diag      io.Writer // destination of dumps and traces; os.Stderr if nil
}

// Driver runs programs with one project configuration.
type Driver struct {
	conf   *config.Config
	stdout io.Writer
	opts   Options
	log    commonlog.Logger
}

// New creates a driver. A nil conf means the defaults rooted at the
// working directory; a nil stdout means os.Stdout.
func New(conf *config.Config, stdout io.Writer) *Driver {
	if conf == nil {
		wd, _ := os.Getwd()
		conf = config.Default(wd)
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Driver{
		conf:   conf,
		stdout: stdout,
		log:    commonlog.GetLogger("dy.driver"),
	}
}

// WithOptions sets the pipeline options and returns d.
func (d *Driver) WithOptions(opts Options) *Driver {
	if opts.Diag == nil {
		opts.Diag = os.Stderr
	}
	d.opts = opts
	return d
}

// Config returns the driver's project configuration.
func (d *Driver) Config() *config.Config {
	return d.conf
}

// Resolve maps a program name to the file it is read from. A bare name
// such as "test" follows the project convention <source.dir>/<name><ext>;
// anything with a directory or an extension is taken as a path.
func (d *Driver) Resolve(name string) string {
	if strings.ContainsAny(name, `/\`) || filepath.Ext(name) != "" {
		return name
	}
	return d.conf.SourcePath(name)
}

// Load reads the source of a named program.
func (d *Driver) Load(name string) (filename, src string, err error) {
	filename = d.Resolve(name)
	data, err := os.ReadFile(filename)
	if err != nil {
		return filename, "", fmt.Errorf("cannot read program %q: %w", name, err)
	}
	return filename, string(data), nil
}

// RunFile loads a named program and runs it in the given mode.
func (d *Driver) RunFile(name string, mode Mode) error {
	filename, src, err := d.Load(name)
	if err != nil {
		d.log.Infof("%s", err)
		return err
	}
	return d.Run(filename, src, mode)
}

// Run takes src through the pipeline. The error returned is the first
// failure of the first failing stage, unwrapped, so its message names the
// stage (LexicalError, ParseError, SemanticError or InterpreterError).
func (d *Driver) Run(filename, src string, mode Mode) error {
	stages := []Stage{ParseStage, CheckStage}
	if mode == ModeRun {
		stages = append(stages, ExecStage)
	}
	_, err := d.run(&Unit{Filename: filename, Src: src}, stages)
	return err
}

// Parse runs only the front end, for tools that print the tree.
func (d *Driver) Parse(filename, src string) (*Unit, error) {
	return d.run(&Unit{Filename: filename, Src: src}, []Stage{ParseStage})
}

// run executes the given stages on u in order, stopping at the first
// failure.
func (d *Driver) run(u *Unit, stages []Stage) (*Unit, error) {
	id := uuid.New().String()
	d.log.Debugf("run %s: %s", id, u.Filename)

	for _, st := range stages {
		start := time.Now()
		err := st.Fn(d, u)
		elapsed := time.Since(start)

		if d.opts.Trace {
			fmt.Fprintf(d.opts.Diag, "trace: %-8s %s\n", st.Name, elapsed)
		}
		if err != nil {
			d.log.Infof("run %s: %s failed after %s: %s", id, st.Name, elapsed, err)
			return u, err
		}
		d.log.Debugf("run %s: %s done in %s", id, st.Name, elapsed)

		if shouldDump(d.opts.DumpAfter, st.Name) && u.Prog != nil {
			fmt.Fprintf(d.opts.Diag, "--- after %s (%s) ---\n", st.Name, u.Filename)
			u.Dump(d.opts.Diag)
			fmt.Fprintln(d.opts.Diag)
		}
	}
	return u, nil
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}
