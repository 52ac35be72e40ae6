package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/you-not-fish/dy/internal/driver"
	"github.com/you-not-fish/dy/internal/syntax"
)

const (
	historyFile = ".dy_history"
	promptMain  = "dy> "
	promptCont  = "... "
	replName    = "<repl>"
)

const banner = `Dy ` + Version + `. Enter statements or a whole PROGRAM; :quit to exit.`

// runREPL reads entries from the terminal and runs each one as a program
// of its own.
func runREPL(d *driver.Driver) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		code, ok := readEntry(ln.Prompt)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := d.Run(replName, wrapEntry(code), driver.ModeRun); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// readEntry prompts until the accumulated lines form a complete entry.
// It reports false at end of input.
func readEntry(prompt func(string) (string, error)) (string, bool) {
	var b strings.Builder

	for {
		p := promptMain
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := prompt(p)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			// Ctrl-C discards the entry.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := syntax.Parse(replName, wrapEntry(src)); err != nil && syntax.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// wrapEntry turns an entry into a program. Entries that already start with
// PROGRAM are taken as they are; anything else becomes the body of a
// program named repl.
func wrapEntry(code string) string {
	if strings.HasPrefix(strings.TrimSpace(code), "PROGRAM") {
		return code
	}
	return "PROGRAM repl {\n" + code + "\n}"
}
