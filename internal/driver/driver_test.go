package driver

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/dy/internal/config"
	"github.com/you-not-fish/dy/internal/interp"
	"github.com/you-not-fish/dy/internal/sema"
	"github.com/you-not-fish/dy/internal/syntax"
)

// newProject creates a project directory with the given programs under
// src/ and returns a driver writing to out.
func newProject(t *testing.T, programs map[string]string, out *bytes.Buffer) *Driver {
	t.Helper()
	dir := t.TempDir()
	conf := config.Default(dir)
	for name, src := range programs {
		path := conf.SourcePath(name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return New(conf, out)
}

func TestResolve(t *testing.T) {
	d := New(config.Default("/proj"), nil)
	tests := []struct {
		name string
		want string
	}{
		{"test", filepath.Join("/proj", "src", "test.dy")},
		{"prog.dy", "prog.dy"},
		{"dir/prog", "dir/prog"},
		{"/abs/prog.dy", "/abs/prog.dy"},
	}
	for _, tt := range tests {
		if got := d.Resolve(tt.name); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRunFile(t *testing.T) {
	var out bytes.Buffer
	d := newProject(t, map[string]string{
		"test": "PROGRAM test { VAR x : INTEGER = 7; print(x DIV 2, x / 2); }",
	}, &out)

	if err := d.RunFile("test", ModeRun); err != nil {
		t.Fatalf("RunFile() error: %v", err)
	}
	if out.String() != "3 3.5\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunFileCheckOnly(t *testing.T) {
	var out bytes.Buffer
	d := newProject(t, map[string]string{
		"test": "PROGRAM test { print('never'); }",
	}, &out)

	if err := d.RunFile("test", ModeCheck); err != nil {
		t.Fatalf("RunFile() error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("check mode produced output %q", out.String())
	}
}

func TestRunFileMissing(t *testing.T) {
	d := newProject(t, nil, &bytes.Buffer{})
	err := d.RunFile("nothere", ModeRun)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), `cannot read program "nothere"`) {
		t.Errorf("error = %q", err)
	}
}

func TestRunStageErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		prefix string
		check  func(error) bool
	}{
		{"lexical", "PROGRAM p { VAR x : INTEGER = 1.2.3; }", "LexicalError:", func(err error) bool {
			var e *syntax.LexicalError
			return errors.As(err, &e)
		}},
		{"parse", "PROGRAM p { x = ; }", "ParseError:", func(err error) bool {
			var e *syntax.ParseError
			return errors.As(err, &e)
		}},
		{"semantic", "PROGRAM p { y = 1; }", "SemanticError:", func(err error) bool {
			var e *sema.Error
			return errors.As(err, &e)
		}},
		{"runtime", "PROGRAM p { print(1 DIV 0); }", "InterpreterError:", func(err error) bool {
			var e *interp.Error
			return errors.As(err, &e)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := New(config.Default(t.TempDir()), &out).Run("p.dy", tt.src, ModeRun)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("error = %q, want prefix %q", err, tt.prefix)
			}
			if !tt.check(err) {
				t.Errorf("error %T has the wrong kind", err)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestRunUsesConfiguredLimits(t *testing.T) {
	conf := config.Default(t.TempDir())
	conf.Limits.MaxLoopIterations = 10
	d := New(conf, &bytes.Buffer{})

	err := d.Run("p.dy", "PROGRAM p { for i = 0; i < 100; i = i + 1 { } }", ModeRun)
	if err == nil || !strings.Contains(err.Error(), "loop exceeded 10 iterations") {
		t.Errorf("error = %v, want the loop ceiling", err)
	}
}

func TestParse(t *testing.T) {
	d := New(nil, nil)
	u, err := d.Parse("p.dy", "PROGRAM hello { }")
	if err != nil {
		t.Fatal(err)
	}
	if u.Prog.Name.Value != "hello" || u.Info != nil {
		t.Errorf("unit = %+v, want a parsed but unchecked program", u)
	}
	if _, err := d.Parse("p.dy", "PROGRAM { }"); err == nil {
		t.Error("Parse() accepted a program without a name")
	}
}

func TestRunTraceAndDump(t *testing.T) {
	var out, diag bytes.Buffer
	d := New(config.Default(t.TempDir()), &out).WithOptions(Options{
		DumpAfter: "parse",
		Trace:     true,
		Diag:      &diag,
	})

	if err := d.Run("p.dy", "PROGRAM p { print(1); }", ModeRun); err != nil {
		t.Fatal(err)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q", out.String())
	}

	got := diag.String()
	for _, want := range []string{"trace: parse", "trace: check", "trace: execute", "--- after parse (p.dy) ---", `Program p.dy:1:1 "p"`} {
		if !strings.Contains(got, want) {
			t.Errorf("diagnostics missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "--- after check") {
		t.Errorf("dumped after a stage that was not selected:\n%s", got)
	}
}

func TestRunTraceStopsAtFailure(t *testing.T) {
	var diag bytes.Buffer
	d := New(config.Default(t.TempDir()), &bytes.Buffer{}).WithOptions(Options{Trace: true, Diag: &diag})

	if err := d.Run("p.dy", "PROGRAM p { y = 1; }", ModeRun); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(diag.String(), "trace: check") || strings.Contains(diag.String(), "trace: execute") {
		t.Errorf("trace = %q, want it to stop at check", diag.String())
	}
}

func TestCheckStageRecordsInfo(t *testing.T) {
	d := New(config.Default(t.TempDir()), &bytes.Buffer{})
	u, err := d.run(&Unit{Filename: "p.dy", Src: "PROGRAM p { VAR n : INTEGER = 1; print(n); }"},
		[]Stage{ParseStage, CheckStage})
	if err != nil {
		t.Fatal(err)
	}
	if u.Info == nil || len(u.Info.Defs) != 1 || len(u.Info.Uses) != 2 {
		t.Errorf("info = %+v, want one definition and two uses", u.Info)
	}
}
