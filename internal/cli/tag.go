package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
	"github.com/calvinalkan/wedlinker/internal/ui"
)

// CreateTagCmd returns the create-tag command.
func CreateTagCmd(s *session) *Command {
	fs := flag.NewFlagSet("create-tag", flag.ContinueOnError)
	fs.StringArrayP("tag", "t", nil, "Tag name (repeatable)")

	return &Command{
		Flags: fs,
		Usage: "create-tag --tag <name>...",
		Short: "Create tags",
		Long:  "Create one or more tags. Fails without changes if any tag already exists.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			names, err := namesFlag(fs, "tag", errTagRequired)
			if err != nil {
				return err
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			tags, err := b.CreateTags(names)
			if err != nil {
				return err
			}

			io.Println("New tag(s) created:", joinNames(tags))

			return nil
		},
	}
}

// DeleteTagCmd returns the delete-tag command.
func DeleteTagCmd(s *session) *Command {
	fs := flag.NewFlagSet("delete-tag", flag.ContinueOnError)
	fs.StringArrayP("tag", "t", nil, "Tag name (repeatable)")
	fs.BoolP("force", "f", false, "Delete tags still in use, untagging every person")

	return &Command{
		Flags: fs,
		Usage: "delete-tag --tag <name>... [--force]",
		Short: "Delete tags",
		Long: `Delete one or more tags.

A tag that is still on a person is only deleted with --force, which removes
it from every person first.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			names, err := namesFlag(fs, "tag", errTagRequired)
			if err != nil {
				return err
			}

			force, _ := fs.GetBool("force")

			b, err := s.book(io)
			if err != nil {
				return err
			}

			tags, err := b.LookupTags(names)
			if err != nil {
				return err
			}

			if err := b.DeleteTags(tags, force); err != nil {
				return err
			}

			io.Println("Deleted tag(s):", joinNames(tags))

			return nil
		},
	}
}

// TagCmd returns the tag command.
func TagCmd(s *session) *Command {
	fs := flag.NewFlagSet("tag", flag.ContinueOnError)
	fs.StringArrayP("tag", "t", nil, "Tag name (repeatable)")
	fs.BoolP("force", "f", false, "Create tags that do not exist yet")

	return &Command{
		Flags: fs,
		Usage: "tag <index> --tag <name>... [--force]",
		Short: "Tag a person",
		Long: `Add tags to the person at <index> of the displayed list.

Every tag must exist unless --force is given, which creates the missing ones.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			names, err := namesFlag(fs, "tag", errTagRequired)
			if err != nil {
				return err
			}

			force, _ := fs.GetBool("force")

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			p, err := personFromArgs(m, args)
			if err != nil {
				return err
			}

			tags, err := m.Book().TagPersonNamed(p, names, force)
			if errors.Is(err, model.ErrTagNotFound) {
				return fmt.Errorf("%w (use --force to create it)", err)
			}

			if err != nil {
				return err
			}

			io.Printf("Added tag(s) %s to %s.\n", joinNames(tags), p.Name)

			return nil
		},
	}
}

// UntagCmd returns the untag command.
func UntagCmd(s *session) *Command {
	fs := flag.NewFlagSet("untag", flag.ContinueOnError)
	fs.StringArrayP("tag", "t", nil, "Tag name (repeatable)")

	return &Command{
		Flags: fs,
		Usage: "untag <index> --tag <name>...",
		Short: "Remove tags from a person",
		Long:  "Remove tags from the person at <index>. Every tag must be on the person.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			names, err := namesFlag(fs, "tag", errTagRequired)
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

			tags, err := m.Book().LookupTags(names)
			if err != nil {
				return err
			}

			if err := m.Book().UntagPerson(p, tags); err != nil {
				return err
			}

			io.Printf("Removed tag(s) %s from %s.\n", joinNames(tags), p.Name)

			return nil
		},
	}
}

// ListTagsCmd returns the list-tags command.
func ListTagsCmd(s *session) *Command {
	fs := flag.NewFlagSet("list-tags", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list-tags",
		Short: "List tags with usage counts",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			tags := b.Tags()
			if len(tags) == 0 {
				io.Println("No tags in the Wedlinker.")

				return nil
			}

			th := io.Theme()
			tbl := ui.NewTable(3)

			for i, t := range tags {
				tbl.AddRow(th.Muted(fmt.Sprintf("%d.", i+1)), th.Accent(t.Name), plural(t.Count(), "person"))
			}

			io.Printf("%s", tbl.String())

			return nil
		},
	}
}
