package cli_test

import (
	"testing"

	"github.com/calvinalkan/wedlinker/internal/cli"
)

func Test_Create_Wedding_When_New(t *testing.T) {
	t.Parallel()

	c := cli.NewEmptyCLI(t)

	stdout := c.MustRun("create-wedding", "--wedding", "Jo & Sam's", "--wedding", "Lee-Tan")
	cli.AssertContains(t, stdout, "New wedding(s) created: Jo & Sam's, Lee-Tan")

	stdout = c.MustRun("list-weddings")
	cli.AssertContains(t, stdout, "Jo & Sam's")
	cli.AssertContains(t, stdout, "0 guests")

	cli.AssertContains(t, c.MustFail("create-wedding", "--wedding", "lee-tan"), "wedding already exists")
}

func Test_Assign_Wedding_As_Partner(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("assign-wedding", "2", "--wedding", "Casey's Wedding", "--partner1")
	cli.AssertContains(t, stdout, "Assigned Bernice Yu as partner 1 of Casey's Wedding.")

	stdout = c.MustRun("view-wedding", "--wedding", "casey's wedding")
	cli.AssertContains(t, stdout, "Partner 1: Bernice Yu")
	cli.AssertContains(t, stdout, "Partner 2: -")
	cli.AssertContains(t, stdout, "Guests (2):")

	stderr := c.MustFail("assign-wedding", "3", "--wedding", "Casey's Wedding", "--partner1")
	cli.AssertContains(t, stderr, "partner slot is already taken")

	stderr = c.MustFail("assign-wedding", "1", "--wedding", "Casey's Wedding", "--partner2")
	cli.AssertContains(t, stderr, "person is already assigned to wedding")

	stderr = c.MustFail("assign-wedding", "3", "-w", "Wedding 2", "-w", "Tom's Wedding", "--partner2")
	cli.AssertContains(t, stderr, "only be assigned to one wedding")

	stderr = c.MustFail("assign-wedding", "3", "-w", "Tom's Wedding", "--partner1", "--partner2")
	cli.AssertContains(t, stderr, "cannot be combined")
}

func Test_Assign_Wedding_Creates_Wedding_Only_With_Force(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("assign-wedding", "1", "--wedding", "Garden Party")
	cli.AssertContains(t, stderr, "use --force to create it")

	stdout := c.MustRun("assign-wedding", "1", "--wedding", "Garden Party", "--force")
	cli.AssertContains(t, stdout, "Added wedding(s) Garden Party to Alex Yeoh.")

	stdout = c.MustRun("list")
	cli.AssertContains(t, stdout, "weddings: Casey's Wedding, Garden Party")
}

func Test_Unassign_Wedding_When_On_Person(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("unassign-wedding", "3", "--wedding", "Wedding 2")
	cli.AssertContains(t, stdout, "Removed wedding(s) Wedding 2 from Charlotte Oliveiro.")

	stderr := c.MustFail("unassign-wedding", "3", "--wedding", "Wedding 2")
	cli.AssertContains(t, stderr, "wedding not found in the person's wedding list")

	stdout = c.MustRun("view-wedding", "--wedding", "Wedding 2")
	cli.AssertContains(t, stdout, "Guests: none")
}

func Test_Delete_Wedding_Needs_Force_When_In_Use(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("delete-wedding", "--wedding", "Tom's Wedding")
	cli.AssertContains(t, stderr, "use --force")

	stdout := c.MustRun("delete-wedding", "--wedding", "Tom's Wedding", "--force")
	cli.AssertContains(t, stdout, "Deleted wedding: Tom's Wedding")

	stdout = c.MustRun("find", "--name", "David")
	cli.AssertContains(t, stdout, "weddings: Wedding August 2025")
	cli.AssertNotContains(t, stdout, "Tom's Wedding")

	stderr = c.MustFail("delete-wedding", "--wedding", "Tom's Wedding")
	cli.AssertContains(t, stderr, "wedding does not exist")

	stderr = c.MustFail("delete-wedding", "-w", "Wedding 2", "-w", "Wedding August 2029")
	cli.AssertContains(t, stderr, "exactly one --wedding")
}

func Test_Edit_Wedding_Renames(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("edit-wedding", "--wedding", "wedding 2", "--name", "Second Wedding")
	cli.AssertContains(t, stdout, "Renamed wedding Wedding 2 to Second Wedding.")

	stdout = c.MustRun("list")
	cli.AssertContains(t, stdout, "weddings: Wedding August 2029, Second Wedding")

	stderr := c.MustFail("edit-wedding", "--wedding", "Second Wedding", "--name", "Tom's wedding")
	cli.AssertContains(t, stderr, "wedding already exists")

	stderr = c.MustFail("edit-wedding", "--wedding", "Second Wedding", "--name", "Bad/Name")
	cli.AssertContains(t, stderr, "invalid wedding")

	cli.AssertContains(t, c.MustFail("edit-wedding", "--wedding", "Second Wedding"), "--name is required")
}
