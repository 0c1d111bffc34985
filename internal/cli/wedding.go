package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
	"github.com/calvinalkan/wedlinker/internal/ui"
)

var (
	errOneWedding     = errors.New("exactly one --wedding is required")
	errNewNameMissing = errors.New("--name is required")
	errBothPartners   = errors.New("--partner1 and --partner2 cannot be combined")
)

// singleWedding reads a --wedding flag that must be given exactly once.
func singleWedding(fs *flag.FlagSet) (string, error) {
	names, err := namesFlag(fs, "wedding", errOneWedding)
	if err != nil {
		return "", err
	}

	if len(names) != 1 {
		return "", errOneWedding
	}

	return names[0], nil
}

// CreateWeddingCmd returns the create-wedding command.
func CreateWeddingCmd(s *session) *Command {
	fs := flag.NewFlagSet("create-wedding", flag.ContinueOnError)
	fs.StringArrayP("wedding", "w", nil, "Wedding name (repeatable)")

	return &Command{
		Flags: fs,
		Usage: "create-wedding --wedding <name>...",
		Short: "Create weddings",
		Long:  "Create one or more weddings. Fails without changes if any wedding already exists.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			names, err := namesFlag(fs, "wedding", errWeddingRequired)
			if err != nil {
				return err
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			weddings, err := b.CreateWeddings(names)
			if err != nil {
				return err
			}

			io.Println("New wedding(s) created:", joinNames(weddings))

			return nil
		},
	}
}

// DeleteWeddingCmd returns the delete-wedding command.
func DeleteWeddingCmd(s *session) *Command {
	fs := flag.NewFlagSet("delete-wedding", flag.ContinueOnError)
	fs.StringArrayP("wedding", "w", nil, "Wedding name")
	fs.BoolP("force", "f", false, "Delete even if people are assigned, unassigning them")

	return &Command{
		Flags: fs,
		Usage: "delete-wedding --wedding <name> [--force]",
		Short: "Delete a wedding",
		Long: `Delete a wedding.

A wedding with partners or guests is only deleted with --force, which
unassigns every person first.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			name, err := singleWedding(fs)
			if err != nil {
				return err
			}

			force, _ := fs.GetBool("force")

			b, err := s.book(io)
			if err != nil {
				return err
			}

			w := b.FindWedding(name)
			if w == nil {
				return fmt.Errorf("%w: %s", model.ErrWeddingNotFound, model.NormalizeSpace(name))
			}

			if err := b.DeleteWedding(w, force); err != nil {
				return err
			}

			io.Println("Deleted wedding:", w.Name)

			return nil
		},
	}
}

// EditWeddingCmd returns the edit-wedding command.
func EditWeddingCmd(s *session) *Command {
	fs := flag.NewFlagSet("edit-wedding", flag.ContinueOnError)
	fs.StringArrayP("wedding", "w", nil, "Current wedding name")
	fs.StringP("name", "n", "", "New wedding name")

	return &Command{
		Flags: fs,
		Usage: "edit-wedding --wedding <name> --name <new>",
		Short: "Rename a wedding",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			name, err := singleWedding(fs)
			if err != nil {
				return err
			}

			newName, _ := fs.GetString("name")
			if newName == "" {
				return errNewNameMissing
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			w := b.FindWedding(name)
			if w == nil {
				return fmt.Errorf("%w: %s", model.ErrWeddingNotFound, model.NormalizeSpace(name))
			}

			old := w.Name

			if err := b.RenameWedding(w, newName); err != nil {
				return err
			}

			io.Printf("Renamed wedding %s to %s.\n", old, w.Name)

			return nil
		},
	}
}

// AssignWeddingCmd returns the assign-wedding command.
func AssignWeddingCmd(s *session) *Command {
	fs := flag.NewFlagSet("assign-wedding", flag.ContinueOnError)
	fs.StringArrayP("wedding", "w", nil, "Wedding name (repeatable)")
	fs.Bool("partner1", false, "Assign as partner 1 (one wedding only)")
	fs.Bool("partner2", false, "Assign as partner 2 (one wedding only)")
	fs.BoolP("force", "f", false, "Create weddings that do not exist yet")

	return &Command{
		Flags: fs,
		Usage: "assign-wedding <index> --wedding <name>... [flags]",
		Short: "Assign a person to weddings",
		Long: `Assign the person at <index> to weddings as a guest, or to one wedding as
a partner with --partner1 or --partner2.

Every wedding must exist unless --force is given, which creates the missing
ones.`,
		Examples: []string{
			`assign-wedding 2 -w "Casey's Wedding" --partner1`,
			`assign-wedding 3 -w "Tom's Wedding" -w "Wedding 2"`,
		},
		Exec: func(_ context.Context, io *IO, args []string) error {
			names, err := namesFlag(fs, "wedding", errWeddingRequired)
			if err != nil {
				return err
			}

			p1, _ := fs.GetBool("partner1")
			p2, _ := fs.GetBool("partner2")
			force, _ := fs.GetBool("force")

			role := model.RoleGuest

			switch {
			case p1 && p2:
				return errBothPartners
			case p1:
				role = model.RolePartner1
			case p2:
				role = model.RolePartner2
			}

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			p, err := personFromArgs(m, args)
			if err != nil {
				return err
			}

			weddings, err := m.Book().AssignWeddingNamed(p, names, role, force)
			if errors.Is(err, model.ErrWeddingNotFound) {
				return fmt.Errorf("%w (use --force to create it)", err)
			}

			if err != nil {
				return err
			}

			if role == model.RoleGuest {
				io.Printf("Added wedding(s) %s to %s.\n", joinNames(weddings), p.Name)
			} else {
				io.Printf("Assigned %s as %s of %s.\n", p.Name, role, weddings[0].Name)
			}

			return nil
		},
	}
}

// UnassignWeddingCmd returns the unassign-wedding command.
func UnassignWeddingCmd(s *session) *Command {
	fs := flag.NewFlagSet("unassign-wedding", flag.ContinueOnError)
	fs.StringArrayP("wedding", "w", nil, "Wedding name (repeatable)")

	return &Command{
		Flags: fs,
		Usage: "unassign-wedding <index> --wedding <name>...",
		Short: "Remove a person from weddings",
		Long:  "Remove the person at <index> from weddings, whatever their role. Every wedding must be on the person.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			names, err := namesFlag(fs, "wedding", errWeddingRequired)
			if err != nil {
				return err
			}

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			p, err := personFromArgs(m, args)
			if err != nil {
				return err
			}

			weddings, err := m.Book().LookupWeddings(names)
			if err != nil {
				return err
			}

			if err := m.Book().UnassignWedding(p, weddings); err != nil {
				return err
			}

			io.Printf("Removed wedding(s) %s from %s.\n", joinNames(weddings), p.Name)

			return nil
		},
	}
}

// ListWeddingsCmd returns the list-weddings command.
func ListWeddingsCmd(s *session) *Command {
	fs := flag.NewFlagSet("list-weddings", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list-weddings",
		Short: "List weddings with partners and guest counts",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			weddings := b.Weddings()
			if len(weddings) == 0 {
				io.Println("No weddings in the Wedlinker.")

				return nil
			}

			th := io.Theme()
			tbl := ui.NewTable(5)

			for i, w := range weddings {
				tbl.AddRow(
					th.Muted(fmt.Sprintf("%d.", i+1)),
					th.Accent(w.Name),
					partnerName(w.Partner1()),
					partnerName(w.Partner2()),
					plural(len(w.Guests()), "guest"),
				)
			}

			io.Printf("%s", tbl.String())

			return nil
		},
	}
}

func partnerName(p *model.Person) string {
	if p == nil {
		return "-"
	}

	return p.Name
}

// ViewWeddingCmd returns the view-wedding command.
func ViewWeddingCmd(s *session) *Command {
	fs := flag.NewFlagSet("view-wedding", flag.ContinueOnError)
	fs.StringArrayP("wedding", "w", nil, "Wedding name")

	return &Command{
		Flags: fs,
		Usage: "view-wedding --wedding <name>",
		Short: "Show partners and guests of a wedding",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			name, err := singleWedding(fs)
			if err != nil {
				return err
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			w := b.FindWedding(name)
			if w == nil {
				return fmt.Errorf("%w: %s", model.ErrWeddingNotFound, model.NormalizeSpace(name))
			}

			th := io.Theme()

			io.Println(th.Heading(w.Name))
			io.Println("Partner 1:", partnerName(w.Partner1()))
			io.Println("Partner 2:", partnerName(w.Partner2()))

			guests := w.Guests()
			if len(guests) == 0 {
				io.Println("Guests: none")

				return nil
			}

			io.Printf("Guests (%d):\n", len(guests))

			for i, g := range guests {
				io.Printf("  %s %s\n", th.Muted(fmt.Sprintf("%d.", i+1)), g.Name)
			}

			return nil
		},
	}
}
