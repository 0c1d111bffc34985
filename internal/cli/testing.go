package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI runs wedlinker against its own temp working directory. The data file
// lives at data/wedlinker.json under Dir unless a test configures otherwise.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI returns a CLI that starts from the sample book, because no data
// file exists yet.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{},
	}
}

// NewEmptyCLI returns a CLI whose project config turns sample data off, so
// the first command sees an empty book.
func NewEmptyCLI(t *testing.T) *CLI {
	t.Helper()

	c := NewCLI(t)
	c.WriteFile(".wedlinker.json", `{"sample_data": false}`)

	return c
}

// Run executes one wedlinker command line with empty stdin and returns
// stdout, stderr and the exit code. "wedlinker --cwd Dir" is prepended.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.run(nil, args)
}

// RunWithInput is Run with input on stdin. Without a command it feeds the
// shell line by line.
func (r *CLI) RunWithInput(input string, args ...string) (string, string, int) {
	return r.run(strings.NewReader(input), args)
}

func (r *CLI) run(in io.Reader, args []string) (string, string, int) {
	var stdout, stderr bytes.Buffer

	argv := append([]string{"wedlinker", "--cwd", r.Dir}, args...)
	code := Run(in, &stdout, &stderr, argv, r.Env, nil)

	return stdout.String(), stderr.String(), code
}

// MustRun fails the test unless the command exits 0. Returns trimmed stdout.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("wedlinker %s: exit %d\nstderr: %s", strings.Join(args, " "), code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail fails the test unless the command exits non-zero with nothing on
// stdout. Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("wedlinker %s: expected failure, got exit 0\nstdout: %s", strings.Join(args, " "), stdout)
	}

	if stdout != "" {
		r.t.Fatalf("wedlinker %s: failed but wrote to stdout\nstdout: %s", strings.Join(args, " "), stdout)
	}

	return strings.TrimSpace(stderr)
}

// DataFile returns the path of the default data file.
func (r *CLI) DataFile() string {
	return filepath.Join(r.Dir, "data", "wedlinker.json")
}

// ReadData returns the content of the data file.
func (r *CLI) ReadData() string {
	r.t.Helper()

	content, err := os.ReadFile(r.DataFile())
	if err != nil {
		r.t.Fatalf("reading data file: %v", err)
	}

	return string(content)
}

// WriteFile writes content to rel under Dir, creating directories.
func (r *CLI) WriteFile(rel, content string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, rel)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		r.t.Fatalf("creating dir for %s: %v", rel, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		r.t.Fatalf("writing %s: %v", rel, err)
	}
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("output should contain %q\noutput:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("output should not contain %q\noutput:\n%s", substr, content)
	}
}
