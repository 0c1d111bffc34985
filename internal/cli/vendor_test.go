package cli_test

import (
	"testing"

	"github.com/calvinalkan/wedlinker/internal/cli"
)

func Test_Assign_Vendor_When_Not_Vendor(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	cli.AssertContains(t, c.MustRun("assign-vendor", "2"), "Bernice Yu is now a vendor.")
	cli.AssertContains(t, c.MustFail("assign-vendor", "2"), "person is already a vendor")

	stdout := c.MustRun("list-vendors")
	cli.AssertContains(t, stdout, "Listed all vendors:")
	cli.AssertContains(t, stdout, "2. Bernice Yu (vendor)")
	cli.AssertNotContains(t, stdout, "Charlotte")
}

func Test_Unassign_Vendor_Needs_Force_When_Holding_Tasks(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	cli.AssertContains(t, c.MustFail("unassign-vendor", "3"), "person is not a vendor")
	cli.AssertContains(t, c.MustFail("unassign-vendor", "1"), "vendor still has tasks")

	stdout := c.MustRun("unassign-vendor", "1", "--force")
	cli.AssertContains(t, stdout, "Alex Yeoh has been unassigned and is no longer a vendor.")

	stdout = c.MustRun("list-tasks")
	cli.AssertContains(t, stdout, "Finalize catering menu")
	cli.AssertNotContains(t, stdout, "Alex Yeoh")

	// Roy holds no tasks, so no force is needed.
	c.MustRun("unassign-vendor", "6")
	cli.AssertNotContains(t, c.MustRun("list-vendors"), "Roy")
}
