package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one wedlinker command. The same table serves one-shot runs and
// every line of the shell.
type Command struct {
	// Flags holds the command's own flags. Global flags such as --cwd are
	// parsed before the command is looked up and never reach it.
	Flags *flag.FlagSet

	// Usage starts with the command name, followed by its arguments, e.g.
	// "assign-wedding <index> --wedding <name>...".
	Usage string

	// Short is the line shown in the command list.
	Short string

	// Long replaces Short in "wedlinker <command> --help" when set.
	Long string

	// Examples are full command lines shown under the help text.
	Examples []string

	// Exec receives the positional arguments left after flag parsing.
	// Index arguments refer to the displayed person list.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine formats the command for the command list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-44s %s", c.Usage, c.Short)
}

// PrintHelp writes the usage, description, flags and examples to o.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: wedlinker", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Flags != nil && c.Flags.HasFlags() {
		var buf strings.Builder

		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()

		o.Println()
		o.Println("Flags:")
		o.Printf("%s", buf.String())
	}

	if len(c.Examples) > 0 {
		o.Println()
		o.Println("Examples:")

		for _, ex := range c.Examples {
			o.Println("  wedlinker", ex)
		}
	}
}

// Run parses args and executes the command, returning the exit code.
// A flag error prints the help to stderr so stdout stays empty on failure.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o.Stderr())

		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
