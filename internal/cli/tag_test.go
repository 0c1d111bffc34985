package cli_test

import (
	"testing"

	"github.com/calvinalkan/wedlinker/internal/cli"
)

func Test_Create_Tag_When_New(t *testing.T) {
	t.Parallel()

	c := cli.NewEmptyCLI(t)

	stdout := c.MustRun("create-tag", "--tag", "vip", "-t", "best  man")
	cli.AssertContains(t, stdout, "New tag(s) created: vip, best man")

	stdout = c.MustRun("list-tags")
	cli.AssertContains(t, stdout, "best man")
	cli.AssertContains(t, stdout, "0 persons")
}

func Test_Create_Tag_Fails_Without_Changes_When_Duplicate(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("create-tag", "--tag", "vip", "--tag", "Florist")
	cli.AssertContains(t, stderr, "tag already exists: Florist")

	stderr = c.MustFail("create-tag", "--tag", "vip", "--tag", "VIP")
	cli.AssertContains(t, stderr, "tag already exists")

	cli.AssertNotContains(t, c.MustRun("list-tags"), "vip")
	cli.AssertContains(t, c.MustFail("create-tag"), "at least one --tag is required")
}

func Test_Delete_Tag_Needs_Force_When_In_Use(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("delete-tag", "--tag", "guest")
	cli.AssertContains(t, stderr, "use --force")

	stdout := c.MustRun("delete-tag", "--tag", "guest", "--force")
	cli.AssertContains(t, stdout, "Deleted tag(s): guest")

	stdout = c.MustRun("list")
	cli.AssertNotContains(t, stdout, "guest")
	cli.AssertContains(t, stdout, "tags: florist")

	stderr = c.MustFail("delete-tag", "--tag", "guest")
	cli.AssertContains(t, stderr, "tag does not exist")
}

func Test_Tag_Person_Creates_Tag_Only_With_Force(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("tag", "1", "--tag", "vip")
	cli.AssertContains(t, stderr, "tag does not exist in the Wedlinker: vip (use --force to create it)")

	stdout := c.MustRun("tag", "1", "--tag", "vip", "--force")
	cli.AssertContains(t, stdout, "Added tag(s) vip to Alex Yeoh.")

	stdout = c.MustRun("tag", "1", "--tag", "Florist")
	cli.AssertContains(t, stdout, "Added tag(s) florist to Alex Yeoh.")

	stderr = c.MustFail("tag", "2", "--tag", "florist")
	cli.AssertContains(t, stderr, "person already has tag: florist")
}

func Test_Untag_Person_When_Tag_On_Person(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("untag", "2", "--tag", "florist")
	cli.AssertContains(t, stdout, "Removed tag(s) florist from Bernice Yu.")

	stderr := c.MustFail("untag", "1", "--tag", "guest")
	cli.AssertContains(t, stderr, "tag not found in the person's tag list: guest")

	stderr = c.MustFail("untag", "1", "--tag", "nope")
	cli.AssertContains(t, stderr, "tag does not exist")
}
