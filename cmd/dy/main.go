// Package main implements the dy interpreter entry point.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/you-not-fish/dy/internal/config"
	"github.com/you-not-fish/dy/internal/driver"
	"github.com/you-not-fish/dy/internal/syntax"
)

// Interpreter flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	checkOnly  = flag.Bool("check", false, "Parse and check the program without running it")
	configPath = flag.String("config", "", "Project file (default: nearest dy.toml, dy.yaml or dy.yml)")
	verbosity  = flag.Int("v", 0, "Log verbosity (overrides [log] verbosity)")
	logFile    = flag.String("log", "", "Log file (overrides [log] file)")
	maxLoop    = flag.Int("max-loop-iterations", 0, "Iteration ceiling per loop (overrides [limits])")
	maxDepth   = flag.Int("max-call-depth", 0, "Call depth ceiling (overrides [limits])")
	trace      = flag.Bool("trace", false, "Output timing trace")
	dumpAfter  = flag.String("dump-after", "", "Dump AST after stage (name or \"*\")")
	version    = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Dy Interpreter %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: dy [options] [program]\n\n")
		fmt.Fprintf(os.Stderr, "A program is a file path or a name looked up as src/<name>.dy.\n")
		fmt.Fprintf(os.Stderr, "Without a program, dy starts a shell on a terminal and\n")
		fmt.Fprintf(os.Stderr, "otherwise reads a program from standard input.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("dy version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	commonlog.Configure(conf.Log.Verbosity, conf.LogFile())

	d := driver.New(conf, os.Stdout).WithOptions(driver.Options{
		DumpAfter: *dumpAfter,
		Trace:     *trace,
	})

	args := flag.Args()
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			os.Exit(runREPL(d))
		}
		os.Exit(runStdin(d, os.Stdin))
	}
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "error: too many arguments")
		fmt.Fprintln(os.Stderr, "usage: dy [options] [program]")
		os.Exit(1)
	}

	name := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(d, name))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(d, name))
	}

	os.Exit(runProgram(d, name))
}

// loadConfig finds the project file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	var conf *config.Config
	if *configPath != "" {
		conf, err = config.Load(*configPath)
	} else {
		conf, err = config.FindAndLoad(wd)
	}
	if err != nil {
		return nil, err
	}
	if conf == nil {
		conf = config.Default(wd)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			conf.Log.Verbosity = *verbosity
		case "log":
			conf.Log.File = *logFile
		case "max-loop-iterations":
			conf.Limits.MaxLoopIterations = *maxLoop
		case "max-call-depth":
			conf.Limits.MaxCallDepth = *maxDepth
		}
	})
	return conf, nil
}

// runProgram runs (or with -check, only checks) a named program.
func runProgram(d *driver.Driver, name string) int {
	mode := driver.ModeRun
	if *checkOnly {
		mode = driver.ModeCheck
	}
	if err := d.RunFile(name, mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runStdin runs a program read from r.
func runStdin(d *driver.Driver, r io.Reader) int {
	src, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	mode := driver.ModeRun
	if *checkOnly {
		mode = driver.ModeCheck
	}
	if err := d.Run("<stdin>", string(src), mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runEmitAST parses the program and outputs the AST.
func runEmitAST(d *driver.Driver, name string) int {
	filename, src, err := d.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	unit, err := d.Parse(filename, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	prog := unit.Prog

	// Output AST
	switch *astFormat {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, prog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	case "text":
		syntax.Fprint(os.Stdout, prog)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", *astFormat)
		return 1
	}
	return 0
}

// runEmitTokens scans the program and prints all tokens with positions.
func runEmitTokens(d *driver.Driver, name string) int {
	filename, src, err := d.Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	s := syntax.NewScanner(filename, src)

	// Print header
	fmt.Printf("%-20s %-12s %-10s %s\n", "POSITION", "TOKEN", "CLASS", "LITERAL")
	fmt.Printf("%-20s %-12s %-10s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12),
		strings.Repeat("-", 10), strings.Repeat("-", 20))

	for {
		s.Next()
		if s.Err() != nil {
			break
		}
		tok := s.Token()
		fmt.Printf("%-20s %-12s %-10s %s\n", s.Pos(), tok, tok.Class(), formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	// Print the error, if any
	if err := s.Err(); err != nil {
		fmt.Println()
		fmt.Println("Errors:")
		fmt.Printf("  %s\n", err)
		return 1
	}

	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
