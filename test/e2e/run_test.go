package e2e

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/dy/internal/config"
	"github.com/you-not-fish/dy/internal/driver"
)

// TestE2E runs end-to-end tests for all .dy files in testdata/.
// Each test:
//  1. Runs the full pipeline: parse → check → execute
//  2. Compares stdout against the .golden file
//  3. If a .err file exists, expects the run to fail with that error;
//     otherwise expects it to succeed
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.dy")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .dy test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".dy")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, dyFile string) {
	t.Helper()

	base := strings.TrimSuffix(dyFile, ".dy")
	expected, err := os.ReadFile(base + ".golden")
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	wantErr, err := os.ReadFile(base + ".err")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("reading error file: %v", err)
	}

	var out bytes.Buffer
	d := driver.New(config.Default("testdata"), &out)
	runErr := d.RunFile(dyFile, driver.ModeRun)

	switch want := strings.TrimSpace(string(wantErr)); {
	case want == "" && runErr != nil:
		t.Fatalf("run failed: %v\noutput so far:\n%s", runErr, out.String())
	case want != "" && runErr == nil:
		t.Fatalf("run succeeded, want error %q", want)
	case want != "" && runErr.Error() != want:
		t.Errorf("error mismatch:\ngot:  %q\nwant: %q", runErr.Error(), want)
	}

	if got := out.String(); got != string(expected) {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, string(expected))
	}
}
