package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
)

var (
	errNameRequired  = errors.New("--name is required")
	errNothingToEdit = errors.New("at least one field to edit must be provided")
)

// AddCmd returns the add command.
func AddCmd(s *session) *Command {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.StringP("name", "n", "", "Name (required)")
	fs.StringP("phone", "p", "", "Phone number")
	fs.StringP("email", "e", "", "Email address")
	fs.StringP("address", "a", "", "Address")
	fs.StringArrayP("tag", "t", nil, "Tag (repeatable, created if missing)")
	fs.StringArrayP("wedding", "w", nil, "Wedding to join as guest (repeatable, created if missing)")
	fs.BoolP("vendor", "v", false, "Add the person as a vendor")

	return &Command{
		Flags: fs,
		Usage: "add --name <name> [flags]",
		Short: "Add a person",
		Long: `Add a person to the contact list.

Tags and weddings that do not exist yet are created. The person joins every
given wedding as a guest.`,
		Examples: []string{
			`add -n "Alex Yeoh" -p 87438807 -t "hotel manager" --vendor`,
			`add -n "Bernice Yu" -e berniceyu@example.com -w "Casey's Wedding"`,
		},
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execAdd(io, s, fs, args)
		},
	}
}

func execAdd(io *IO, s *session, fs *flag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
	}

	name, _ := fs.GetString("name")
	if name == "" {
		return errNameRequired
	}

	phone, _ := fs.GetString("phone")
	email, _ := fs.GetString("email")
	address, _ := fs.GetString("address")
	tags, _ := fs.GetStringArray("tag")
	weddings, _ := fs.GetStringArray("wedding")
	vendor, _ := fs.GetBool("vendor")

	p, err := model.NewPerson(name, phone, email, address)
	if err != nil {
		return err
	}

	p.Vendor = vendor

	// Validate names up front so a bad tag never leaves a half added person.
	for _, t := range tags {
		if err := model.ValidateTagName(model.NormalizeSpace(t)); err != nil {
			return err
		}
	}

	for _, w := range weddings {
		if err := model.ValidateWeddingName(model.NormalizeSpace(w)); err != nil {
			return err
		}
	}

	b, err := s.book(io)
	if err != nil {
		return err
	}

	if err := b.AddPerson(p); err != nil {
		return err
	}

	if _, err := b.TagPersonNamed(p, tags, true); err != nil {
		return err
	}

	if _, err := b.AssignWeddingNamed(p, weddings, model.RoleGuest, true); err != nil {
		return err
	}

	io.Println("New person added:", p)

	return nil
}

// EditCmd returns the edit command.
func EditCmd(s *session) *Command {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.StringP("name", "n", "", "New name")
	fs.StringP("phone", "p", "", "New phone number (empty clears it)")
	fs.StringP("email", "e", "", "New email address (empty clears it)")
	fs.StringP("address", "a", "", "New address (empty clears it)")

	return &Command{
		Flags: fs,
		Usage: "edit <index> [flags]",
		Short: "Edit a person's details",
		Long: `Edit the details of the person at <index> of the displayed list.

Tags, weddings and tasks of the person are kept.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execEdit(io, s, fs, args)
		},
	}
}

func execEdit(io *IO, s *session, fs *flag.FlagSet, args []string) error {
	m, err := s.manager(io)
	if err != nil {
		return err
	}

	p, err := personFromArgs(m, args)
	if err != nil {
		return err
	}

	var fields model.PersonFields

	for name, dst := range map[string]**string{
		"name":    &fields.Name,
		"phone":   &fields.Phone,
		"email":   &fields.Email,
		"address": &fields.Address,
	} {
		if fs.Changed(name) {
			v, _ := fs.GetString(name)
			*dst = &v
		}
	}

	if fields.IsEmpty() {
		return errNothingToEdit
	}

	if err := m.Book().EditPerson(p, fields); err != nil {
		return err
	}

	io.Println("Edited person:", p)

	return nil
}

// DeleteCmd returns the delete command.
func DeleteCmd(s *session) *Command {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "delete <index>",
		Short: "Delete a person",
		Long: `Delete the person at <index> of the displayed list.

The person is removed from every wedding and tag counts are updated.
Tasks the person held stay in the task list.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execDelete(io, s, args)
		},
	}
}

func execDelete(io *IO, s *session, args []string) error {
	m, err := s.manager(io)
	if err != nil {
		return err
	}

	p, err := personFromArgs(m, args)
	if err != nil {
		return err
	}

	if err := m.Book().DeletePerson(p); err != nil {
		return err
	}

	io.Println("Deleted person:", p)

	return nil
}
