package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/dy/internal/interp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default("/work")
	if c.Source.Dir != "src" || c.Source.Ext != ".dy" {
		t.Errorf("source = %+v", c.Source)
	}
	if c.Limits.MaxLoopIterations != interp.DefaultMaxLoopIterations ||
		c.Limits.MaxCallDepth != interp.DefaultMaxCallDepth {
		t.Errorf("limits = %+v", c.Limits)
	}
	if got := c.SourcePath("test"); got != filepath.Join("/work", "src", "test.dy") {
		t.Errorf("SourcePath() = %q", got)
	}
	if c.LogFile() != nil {
		t.Errorf("LogFile() = %q, want nil", *c.LogFile())
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dy.toml", `
[project]
name = "demo"

[source]
dir = "programs"

[limits]
max-loop-iterations = 500

[log]
verbosity = 2
file = "dy.log"
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Project.Name != "demo" {
		t.Errorf("Project.Name = %q", c.Project.Name)
	}
	if c.Source.Dir != "programs" || c.Source.Ext != ".dy" {
		t.Errorf("source = %+v, want programs with default ext", c.Source)
	}
	if c.Limits.MaxLoopIterations != 500 || c.Limits.MaxCallDepth != interp.DefaultMaxCallDepth {
		t.Errorf("limits = %+v", c.Limits)
	}
	if c.Log.Verbosity != 2 {
		t.Errorf("Log.Verbosity = %d", c.Log.Verbosity)
	}
	if got := c.LogFile(); got == nil || *got != filepath.Join(c.Dir, "dy.log") {
		t.Errorf("LogFile() = %v", got)
	}
	if c.Path != path {
		t.Errorf("Path = %q, want %q", c.Path, path)
	}

	ic := c.InterpConfig(nil)
	if ic.MaxLoopIterations != 500 || ic.MaxCallDepth != interp.DefaultMaxCallDepth {
		t.Errorf("InterpConfig() = %+v", ic)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "dy.yaml", `
project:
  name: demo
source:
  ext: .dyl
limits:
  max-call-depth: 64
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Project.Name != "demo" || c.Source.Ext != ".dyl" || c.Source.Dir != "src" {
		t.Errorf("config = %+v", c)
	}
	if c.Limits.MaxCallDepth != 64 {
		t.Errorf("MaxCallDepth = %d", c.Limits.MaxCallDepth)
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dy.yml", "")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Source.Dir != "src" || c.Limits.MaxCallDepth != interp.DefaultMaxCallDepth {
		t.Errorf("config = %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"toml_unknown_field", "dy.toml", "[project]\nname = \"x\"\nversion = \"1\"\n", "unknown field(s): project.version"},
		{"yaml_unknown_field", "dy.yaml", "project:\n  title: x\n", "field title not found"},
		{"toml_syntax", "dy.toml", "[project\n", "parse error"},
		{"bad_format", "dy.json", "{}", `unsupported config format ".json"`},
		{"zero_loop_limit", "dy.toml", "[limits]\nmax-loop-iterations = 0\n", "limits.max-loop-iterations must be positive"},
		{"negative_depth", "dy.yaml", "limits:\n  max-call-depth: -1\n", "limits.max-call-depth must be positive"},
		{"empty_source_dir", "dy.toml", "[source]\ndir = \"\"\n", "source.dir must not be empty"},
		{"bad_ext", "dy.toml", "[source]\next = \"dy\"\n", `source.ext "dy" must start with a dot`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load() succeeded, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadValidationErrorListsAllIssues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dy.toml", "[limits]\nmax-loop-iterations = 0\nmax-call-depth = 0\n")
	_, err := Load(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v is not a *ValidationError", err)
	}
	if len(verr.Issues) != 2 {
		t.Errorf("Issues = %v, want 2 entries", verr.Issues)
	}
	if verr.Path != path {
		t.Errorf("Path = %q, want %q", verr.Path, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "dy.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dy.toml", "[project]\nname = \"outer\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad() error: %v", err)
	}
	if c == nil || c.Project.Name != "outer" {
		t.Fatalf("FindAndLoad() = %+v, want the outer project", c)
	}
	absRoot, _ := filepath.Abs(root)
	if c.Dir != absRoot {
		t.Errorf("Dir = %q, want %q", c.Dir, absRoot)
	}

	// A closer file wins, and dy.toml is preferred over dy.yaml.
	writeFile(t, nested, "dy.yaml", "project:\n  name: yaml\n")
	c, err = FindAndLoad(nested)
	if err != nil || c.Project.Name != "yaml" {
		t.Fatalf("FindAndLoad() = %+v, %v; want the nested yaml project", c, err)
	}
	writeFile(t, nested, "dy.toml", "[project]\nname = \"toml\"\n")
	c, err = FindAndLoad(nested)
	if err != nil || c.Project.Name != "toml" {
		t.Fatalf("FindAndLoad() = %+v, %v; want the nested toml project", c, err)
	}
}

func TestFindAndLoadNone(t *testing.T) {
	// Temp dirs normally have no project file above them.
	dir := t.TempDir()
	for d := dir; ; d = filepath.Dir(d) {
		for _, name := range FileNames {
			if _, err := os.Stat(filepath.Join(d, name)); err == nil {
				t.Skipf("found %s above the temp dir", filepath.Join(d, name))
			}
		}
		if filepath.Dir(d) == d {
			break
		}
	}

	c, err := FindAndLoad(dir)
	if err != nil || c != nil {
		t.Errorf("FindAndLoad() = %v, %v; want nil, nil", c, err)
	}
}
