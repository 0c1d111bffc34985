package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
)

// AssignVendorCmd returns the assign-vendor command.
func AssignVendorCmd(s *session) *Command {
	fs := flag.NewFlagSet("assign-vendor", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "assign-vendor <index>",
		Short: "Make a person a vendor",
		Exec: func(_ context.Context, io *IO, args []string) error {
			m, err := s.manager(io)
			if err != nil {
				return err
			}

			p, err := personFromArgs(m, args)
			if err != nil {
				return err
			}

			if err := m.Book().SetVendor(p); err != nil {
				return err
			}

			io.Printf("%s is now a vendor.\n", p.Name)

			return nil
		},
	}
}

// UnassignVendorCmd returns the unassign-vendor command.
func UnassignVendorCmd(s *session) *Command {
	fs := flag.NewFlagSet("unassign-vendor", flag.ContinueOnError)
	fs.BoolP("force", "f", false, "Unassign the vendor's tasks first")

	return &Command{
		Flags: fs,
		Usage: "unassign-vendor <index> [--force]",
		Short: "Turn a vendor back into a plain contact",
		Long: `Turn the vendor at <index> back into a plain contact.

A vendor that still holds tasks is only converted with --force, which takes
the tasks away first. The tasks stay in the task list.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			force, _ := fs.GetBool("force")

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			p, err := personFromArgs(m, args)
			if err != nil {
				return err
			}

			if err := m.Book().UnsetVendor(p, force); err != nil {
				return err
			}

			io.Printf("%s has been unassigned and is no longer a vendor.\n", p.Name)

			return nil
		},
	}
}

// ListVendorsCmd returns the list-vendors command.
func ListVendorsCmd(s *session) *Command {
	fs := flag.NewFlagSet("list-vendors", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list-vendors",
		Short: "List vendors",
		Long:  "Filter the displayed list to vendors. Indexes of later commands refer to this list.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			m.SetFilter(model.IsVendor)
			shown := m.Displayed()

			if len(shown) == 0 {
				io.Println("No vendors in the Wedlinker.")

				return nil
			}

			io.Println("Listed all vendors:")
			printPersons(io, shown)

			return nil
		},
	}
}
