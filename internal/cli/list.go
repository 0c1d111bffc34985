package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
)

var errNoKeywords = errors.New("at least one keyword is required")

// ListCmd returns the list command.
func ListCmd(s *session) *Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list",
		Short: "List all persons",
		Long:  "Show every person and reset any filter from find or list-vendors.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execList(io, s, args)
		},
	}
}

func execList(io *IO, s *session, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
	}

	m, err := s.manager(io)
	if err != nil {
		return err
	}

	m.SetFilter(model.ShowAll)
	shown := m.Displayed()

	if len(shown) == 0 {
		io.Println("No persons in the Wedlinker.")

		return nil
	}

	io.Println("Listed all persons:")
	printPersons(io, shown)

	return nil
}

// FindCmd returns the find command.
func FindCmd(s *session) *Command {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.StringArrayP("name", "n", nil, "Name keywords")
	fs.StringArrayP("phone", "p", nil, "Phone keywords")
	fs.StringArrayP("email", "e", nil, "Email keywords")
	fs.StringArrayP("address", "a", nil, "Address keywords")
	fs.StringArrayP("tag", "t", nil, "Tag keywords")
	fs.StringArrayP("wedding", "w", nil, "Wedding keywords")
	fs.StringArray("task", nil, "Task description keywords")

	return &Command{
		Flags: fs,
		Usage: "find [flags]",
		Short: "Find persons by keyword",
		Long: `Filter the displayed list.

Each flag value is split into keywords. A field matches when any of its
keywords is a case-insensitive substring; every given field must match.
Indexes of later commands refer to the filtered list.`,
		Examples: []string{
			`find --name "alex bernice"`,
			`find --tag florist --wedding casey`,
		},
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execFind(io, s, fs, args)
		},
	}
}

func execFind(io *IO, s *session, fs *flag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
	}

	keywords := func(name string) []string {
		values, _ := fs.GetStringArray(name)

		var out []string
		for _, v := range values {
			out = append(out, strings.Fields(v)...)
		}

		return out
	}

	q := model.PersonQuery{
		Names:     keywords("name"),
		Phones:    keywords("phone"),
		Emails:    keywords("email"),
		Addresses: keywords("address"),
		Tags:      keywords("tag"),
		Weddings:  keywords("wedding"),
		Tasks:     keywords("task"),
	}

	if q.IsEmpty() {
		return errNoKeywords
	}

	m, err := s.manager(io)
	if err != nil {
		return err
	}

	m.SetFilter(q.Match)
	shown := m.Displayed()

	io.Printf("%s listed!\n", plural(len(shown), "person"))
	printPersons(io, shown)

	return nil
}

// ClearCmd returns the clear command.
func ClearCmd(s *session) *Command {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "clear",
		Short: "Remove all data",
		Long:  "Remove every person, tag, wedding and task.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			m.Book().Clear()
			m.SetFilter(model.ShowAll)
			io.Println("Wedlinker has been cleared!")

			return nil
		},
	}
}
