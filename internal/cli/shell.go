package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
)

var errNestedShell = errors.New("already in the shell")

const prompt = "wedlinker> "

// ShellCmd returns the shell command.
func ShellCmd(a *app) *Command {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "shell",
		Short: "Start the interactive shell (default)",
		Long: `Read commands line by line until exit, quit or end of input.

Lines are split like a POSIX shell, so quote names with spaces:
  tag 1 --tag "hotel manager"

The data file is loaded once and saved after every command that changes it.
Indexes refer to the list shown by the last list, find or list-vendors.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return runShell(ctx, o, a, args)
		},
	}
}

// lineReader yields input lines; io.EOF ends the session.
type lineReader interface {
	ReadLine() (string, error)
	AddHistory(line string)
	Close()
}

func runShell(ctx context.Context, o *IO, a *app, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
	}

	// Load before the first prompt so a locked or corrupt data file ends
	// the session right away.
	if _, err := a.s.manager(o); err != nil {
		return err
	}

	r, interactive := newLineReader(a)
	defer r.Close()

	if interactive {
		o.Println("Wedlinker shell. Type 'help' for commands, 'exit' to quit.")
	}

	for ctx.Err() == nil {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		r.AddHistory(line)

		words, err := shellquote.Split(line)
		if err != nil {
			o.ErrPrintln("error:", err)

			continue
		}

		switch words[0] {
		case "exit", "quit":
			return nil
		case "help":
			printUsage(o.out, a.commands())

			continue
		case "shell":
			o.ErrPrintln("error:", errNestedShell)

			continue
		}

		lineIO := NewIO(o.out, o.errOut)
		a.dispatch(ctx, lineIO, words[0], words[1:])
		lineIO.Finish()
	}

	return nil
}

func newLineReader(a *app) (lineReader, bool) {
	in := a.in
	if in == nil {
		in = strings.NewReader("")
	}

	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return newLinerReader(a), true
	}

	return &scanReader{sc: bufio.NewScanner(in)}, false
}

// scanReader reads piped input without echo or history.
type scanReader struct {
	sc *bufio.Scanner
}

func (r *scanReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}

	if err := r.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (r *scanReader) AddHistory(string) {}

func (r *scanReader) Close() {}

// linerReader is the line editor used on a terminal.
type linerReader struct {
	state   *liner.State
	history string
}

func newLinerReader(a *app) *linerReader {
	r := &linerReader{state: liner.NewLiner(), history: a.cfg.HistoryFileAbs}

	r.state.SetCtrlCAborts(true)
	r.state.SetCompleter(func(line string) []string {
		var out []string

		for _, c := range a.commands() {
			if strings.HasPrefix(c.Name(), line) {
				out = append(out, c.Name())
			}
		}

		for _, word := range []string{"help", "exit", "quit"} {
			if strings.HasPrefix(word, line) {
				out = append(out, word)
			}
		}

		return out
	})

	if r.history != "" {
		if f, err := os.Open(r.history); err == nil {
			_, _ = r.state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return r
}

func (r *linerReader) ReadLine() (string, error) {
	return r.state.Prompt(prompt)
}

func (r *linerReader) AddHistory(line string) {
	r.state.AppendHistory(line)
}

func (r *linerReader) Close() {
	if r.history != "" {
		if err := os.MkdirAll(filepath.Dir(r.history), 0o750); err == nil {
			if f, err := os.Create(r.history); err == nil {
				_, _ = r.state.WriteHistory(f)
				_ = f.Close()
			}
		}
	}

	_ = r.state.Close()
}
