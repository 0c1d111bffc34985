package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/calvinalkan/wedlinker/internal/config"
	"github.com/calvinalkan/wedlinker/internal/logging"
)

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
	errUnknownCommand  = errors.New("unknown command")
)

const (
	consumedNone = 0
	consumedOne  = 1
	consumedTwo  = 2
	helpFlag     = "--help"
)

// app ties the resolved configuration to the loaded data for one run.
type app struct {
	cfg *config.Config
	log *slog.Logger
	s   *session
	in  io.Reader
}

// commands returns a fresh command table. Flag sets keep their values
// after parsing, so every dispatch needs new ones.
func (a *app) commands() []*Command {
	return []*Command{
		AddCmd(a.s),
		EditCmd(a.s),
		DeleteCmd(a.s),
		ListCmd(a.s),
		FindCmd(a.s),
		ClearCmd(a.s),
		CreateTagCmd(a.s),
		DeleteTagCmd(a.s),
		TagCmd(a.s),
		UntagCmd(a.s),
		ListTagsCmd(a.s),
		CreateWeddingCmd(a.s),
		DeleteWeddingCmd(a.s),
		EditWeddingCmd(a.s),
		AssignWeddingCmd(a.s),
		UnassignWeddingCmd(a.s),
		ListWeddingsCmd(a.s),
		ViewWeddingCmd(a.s),
		CreateTaskCmd(a.s),
		DeleteTaskCmd(a.s),
		AssignTaskCmd(a.s),
		UnassignTaskCmd(a.s),
		MarkTaskCmd(a.s),
		UnmarkTaskCmd(a.s),
		ListTasksCmd(a.s),
		AssignVendorCmd(a.s),
		UnassignVendorCmd(a.s),
		ListVendorsCmd(a.s),
		ShellCmd(a),
		PrintConfigCmd(a.cfg),
	}
}

func (a *app) lookup(name string) *Command {
	for _, c := range a.commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// dispatch runs one command and saves the book if the command changed it.
func (a *app) dispatch(ctx context.Context, o *IO, name string, args []string) int {
	cmd := a.lookup(name)
	if cmd == nil {
		o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))

		return 1
	}

	a.log.Debug("dispatching command", "command", name, "args", len(args))

	if code := cmd.Run(ctx, o, args); code != 0 {
		return code
	}

	if err := a.s.commit(); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}

// Run is the main entry point. Returns exit code.
// With no command it starts the interactive shell.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flags.help {
		a := &app{}
		printUsage(out, a.commands())

		return 0
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride:  flags.workDir,
		ConfigPath:       flags.configPath,
		DataFileOverride: flags.dataFile,
		LogLevelOverride: flags.logLevel,
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	log := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	a := &app{cfg: &cfg, log: log, s: newSession(&cfg, log), in: in}
	defer a.s.close()

	name, rest := "shell", []string(nil)
	if len(flags.remaining) > 0 {
		name, rest = flags.remaining[0], flags.remaining[1:]
	}

	o := NewIO(out, errOut)

	if a.lookup(name) == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
		printUsage(errOut, a.commands())

		return 1
	}

	code := a.dispatch(ctx, o, name, rest)
	o.Finish()

	return code
}

type globalFlags struct {
	workDir    string
	configPath string
	dataFile   string
	logLevel   string
	help       bool
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// valueFlag matches "--name value", "--name=value" and, for a short alias,
// "-x value" and "-xvalue".
func valueFlag(args []string, idx int, long, short string, dst *string) (int, error) {
	arg := args[idx]

	if arg == long || (short != "" && arg == short) {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		*dst = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, long+"="); ok {
		*dst = after

		return consumedOne, nil
	}

	if short != "" && len(arg) > len(short) {
		if after, ok := strings.CutPrefix(arg, short); ok {
			*dst = after

			return consumedOne, nil
		}
	}

	return consumedNone, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	for _, f := range []struct {
		long, short string
		dst         *string
	}{
		{"--cwd", "-C", &flags.workDir},
		{"--config", "-c", &flags.configPath},
		{"--data-file", "", &flags.dataFile},
		{"--log-level", "", &flags.logLevel},
	} {
		consumed, err := valueFlag(args, idx, f.long, f.short, f.dst)
		if err != nil || consumed > 0 {
			return consumed, err
		}
	}

	if arg == "-h" || arg == helpFlag {
		flags.help = true

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", errUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, cmds []*Command) {
	fprintln(w, `wedlinker - contacts, weddings and vendor tasks for wedding planners

Usage: wedlinker [options] [command] [args]

Without a command, wedlinker starts an interactive shell.

Options:
  -C, --cwd <dir>          Run as if started in <dir>
  -c, --config <file>      Use specified config file
      --data-file <file>   Override the data file location
      --log-level <level>  debug, info, warn or error
  -h, --help               Show this help

Commands:`)

	for _, c := range cmds {
		fprintln(w, c.HelpLine())
	}

	fprintln(w)
	fprintln(w, "Run 'wedlinker <command> --help' for command details.")
}
