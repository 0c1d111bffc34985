package cli

import (
	"fmt"
	"io"

	"github.com/calvinalkan/wedlinker/internal/ui"
)

// IO handles command output with warnings that stay visible.
type IO struct {
	out      io.Writer
	errOut   io.Writer
	theme    ui.Theme
	warnings []string
	started  bool
}

// NewIO creates a new IO instance. Output is styled only when out is a
// terminal.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut, theme: ui.NewTheme(out)}
}

// Theme returns the styling for stdout.
func (o *IO) Theme() ui.Theme { return o.theme }

// Stderr returns an IO whose regular output goes to stderr.
func (o *IO) Stderr() *IO {
	return &IO{out: o.errOut, errOut: o.errOut, theme: ui.Plain()}
}

// Warn adds a warning about something the user should know but that did
// not stop the command.
//
// Warnings are printed to stderr at both the START and END of output,
// ensuring visibility regardless of truncation or piping (head/tail).
func (o *IO) Warn(issue string, detail string) {
	o.warnings = append(o.warnings, fmt.Sprintf("%s: %s", issue, detail))
}

// Println writes to stdout. On first call, any collected warnings
// are printed to stderr first.
func (o *IO) Println(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout. On first call, any collected
// warnings are printed to stderr first.
func (o *IO) Printf(format string, a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	o.flushWarningsStart()
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Finish prints warnings to stderr a final time.
func (o *IO) Finish() {
	// If no output happened but we have warnings, print them at "start" position
	if !o.started {
		o.flushWarningsStart()

		return
	}

	for _, w := range o.warnings {
		_, _ = fmt.Fprintln(o.errOut, "warning:", w)
	}
}

func (o *IO) flushWarningsStart() {
	if !o.started && len(o.warnings) > 0 {
		for _, w := range o.warnings {
			_, _ = fmt.Fprintln(o.errOut, "warning:", w)
		}

		o.started = true
	}
}
