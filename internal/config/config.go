// Package config handles dy.toml and dy.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/dy/internal/interp"
)

// FileNames lists the project files FindAndLoad looks for, in order.
var FileNames = []string{"dy.toml", "dy.yaml", "dy.yml"}

// Config represents a dy project configuration.
type Config struct {
	Project Project `toml:"project" yaml:"project"`
	Source  Source  `toml:"source" yaml:"source"`
	Limits  Limits  `toml:"limits" yaml:"limits"`
	Log     Log     `toml:"log" yaml:"log"`

	// Dir is the directory containing the project file (set at load time).
	Dir string `toml:"-" yaml:"-"`
	// Path is the project file itself, empty for the defaults.
	Path string `toml:"-" yaml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name string `toml:"name" yaml:"name"`
}

// Source configures where named programs are found.
type Source struct {
	Dir string `toml:"dir" yaml:"dir"`
	Ext string `toml:"ext" yaml:"ext"`
}

// Limits bounds program execution.
type Limits struct {
	MaxLoopIterations int `toml:"max-loop-iterations" yaml:"max-loop-iterations"`
	MaxCallDepth      int `toml:"max-call-depth" yaml:"max-call-depth"`
}

// Log configures diagnostics of the driver.
type Log struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// ValidationError lists the problems found in a project file.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Path, strings.Join(e.Issues, "; "))
}

// Default returns the configuration used when no project file exists,
// rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Source: Source{Dir: "src", Ext: ".dy"},
		Limits: Limits{
			MaxLoopIterations: interp.DefaultMaxLoopIterations,
			MaxCallDepth:      interp.DefaultMaxCallDepth,
		},
		Dir: dir,
	}
}

// Load parses a project file. The format is chosen by extension; fields
// missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", absPath, err)
	}

	c := Default(filepath.Dir(absPath))
	c.Path = absPath

	switch ext := filepath.Ext(absPath); ext {
	case ".toml":
		err = decodeTOML(data, c)
	case ".yaml", ".yml":
		err = decodeYAML(data, c)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse error in %s: %w", absPath, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeTOML(data []byte, c *Config) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown field(s): %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, c *Config) error {
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// FindAndLoad walks up from startDir to find a project file, then loads
// and returns it. Returns nil if no project file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	var errs ValidationError
	if c.Source.Dir == "" {
		errs.Issues = append(errs.Issues, "source.dir must not be empty")
	}
	if c.Source.Ext != "" && !strings.HasPrefix(c.Source.Ext, ".") {
		errs.Issues = append(errs.Issues, fmt.Sprintf("source.ext %q must start with a dot", c.Source.Ext))
	}
	if c.Limits.MaxLoopIterations <= 0 {
		errs.Issues = append(errs.Issues, "limits.max-loop-iterations must be positive")
	}
	if c.Limits.MaxCallDepth <= 0 {
		errs.Issues = append(errs.Issues, "limits.max-call-depth must be positive")
	}
	if len(errs.Issues) > 0 {
		errs.Path = c.Path
		return &errs
	}
	return nil
}

// SourcePath returns the file a named program is read from:
// <dir>/<source.dir>/<name><source.ext>.
func (c *Config) SourcePath(name string) string {
	return filepath.Join(c.Dir, c.Source.Dir, name+c.Source.Ext)
}

// LogFile returns the log file path resolved against the project
// directory, or nil to log to stderr.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	path := c.Log.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Dir, path)
	}
	return &path
}

// InterpConfig returns the execution limits as interpreter settings.
func (c *Config) InterpConfig(stdout io.Writer) *interp.Config {
	return &interp.Config{
		Stdout:            stdout,
		MaxLoopIterations: c.Limits.MaxLoopIterations,
		MaxCallDepth:      c.Limits.MaxCallDepth,
	}
}
