package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/wedlinker/internal/model"
)

func newPerson(t *testing.T, b *model.Book, name, phone string) *model.Person {
	t.Helper()

	p, err := model.NewPerson(name, phone, "", "")
	require.NoError(t, err)
	require.NoError(t, b.AddPerson(p))

	return p
}

func tagNames(tags []*model.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}

	return out
}

func weddingNames(weddings []*model.Wedding) []string {
	out := make([]string, 0, len(weddings))
	for _, w := range weddings {
		out = append(out, w.Name)
	}

	return out
}

func Test_Book_AddPerson_Rejects_Duplicate_Identity(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	newPerson(t, b, "Alex Yeoh", "87438807")

	dup, err := model.NewPerson("alex yeoh", "87438807", "", "")
	require.NoError(t, err)

	err = b.AddPerson(dup)
	require.ErrorIs(t, err, model.ErrDuplicatePerson)
	assert.Len(t, b.Persons(), 1)

	other, err := model.NewPerson("Alex Yeoh", "99999999", "", "")
	require.NoError(t, err)
	require.NoError(t, b.AddPerson(other), "different phone is a different person")
}

func Test_Book_TagPersonNamed_Counts_Usage(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	bea := newPerson(t, b, "Bea", "222")

	_, err := b.TagPersonNamed(alex, []string{"florist"}, false)
	require.ErrorIs(t, err, model.ErrTagNotFound, "missing tag without create")
	assert.Empty(t, b.Tags())

	_, err = b.TagPersonNamed(alex, []string{"florist", "Florist", "guest"}, true)
	require.NoError(t, err)

	_, err = b.TagPersonNamed(bea, []string{"FLORIST"}, false)
	require.NoError(t, err)

	florist := b.FindTag("florist")
	require.NotNil(t, florist)
	assert.Equal(t, 2, florist.Count())
	assert.Equal(t, 1, b.FindTag("guest").Count())
	assert.Equal(t, []string{"florist", "guest"}, tagNames(alex.Tags()))
	require.NoError(t, b.Check())
}

func Test_Book_TagPersonNamed_Leaves_Book_Unchanged_On_Error(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")

	_, err := b.TagPersonNamed(alex, []string{"florist"}, true)
	require.NoError(t, err)

	rev := b.Revision()

	_, err = b.TagPersonNamed(alex, []string{"new tag", "florist"}, true)
	require.ErrorIs(t, err, model.ErrPersonHasTag)

	assert.Nil(t, b.FindTag("new tag"), "tag must not be created when the command fails")
	assert.Equal(t, rev, b.Revision())
	require.NoError(t, b.Check())
}

func Test_Book_UntagPerson_Requires_Every_Tag(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")

	tags, err := b.TagPersonNamed(alex, []string{"florist"}, true)
	require.NoError(t, err)

	guest, err := model.NewTag("guest")
	require.NoError(t, err)
	require.NoError(t, b.AddTag(guest))

	err = b.UntagPerson(alex, []*model.Tag{tags[0], guest})
	require.ErrorIs(t, err, model.ErrTagNotOnPerson)
	assert.True(t, alex.HasTag(tags[0]))

	require.NoError(t, b.UntagPerson(alex, tags))
	assert.Equal(t, 0, tags[0].Count())
	require.NoError(t, b.Check())
}

func Test_Book_DeleteTags_Cascades_Only_When_Forced(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	bea := newPerson(t, b, "Bea", "222")

	tags, err := b.TagPersonNamed(alex, []string{"florist", "guest"}, true)
	require.NoError(t, err)

	_, err = b.TagPersonNamed(bea, []string{"florist"}, false)
	require.NoError(t, err)

	florist := tags[0]

	err = b.DeleteTags([]*model.Tag{florist}, false)
	require.ErrorIs(t, err, model.ErrTagInUse)
	assert.NotNil(t, b.FindTag("florist"))

	require.NoError(t, b.DeleteTags([]*model.Tag{florist}, true))
	assert.Nil(t, b.FindTag("florist"))
	assert.Equal(t, []string{"guest"}, tagNames(alex.Tags()))
	assert.Empty(t, bea.Tags())
	require.NoError(t, b.Check())
}

func Test_Book_AssignWedding_Keeps_Membership_Symmetric(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	bea := newPerson(t, b, "Bea", "222")
	cat := newPerson(t, b, "Cat", "333")

	_, err := b.AssignWeddingNamed(alex, []string{"Casey's Wedding"}, model.RolePartner1, true)
	require.NoError(t, err)

	w := b.FindWedding("casey's wedding")
	require.NotNil(t, w)

	_, err = b.AssignWeddingNamed(bea, []string{"Casey's Wedding"}, model.RolePartner1, false)
	require.ErrorIs(t, err, model.ErrPartnerSlotTaken)

	_, err = b.AssignWeddingNamed(bea, []string{"Casey's Wedding"}, model.RolePartner2, false)
	require.NoError(t, err)

	_, err = b.AssignWeddingNamed(cat, []string{"Casey's Wedding"}, model.RoleGuest, false)
	require.NoError(t, err)

	_, err = b.AssignWeddingNamed(cat, []string{"Casey's Wedding"}, model.RoleGuest, false)
	require.ErrorIs(t, err, model.ErrAlreadyInWedding)

	assert.Same(t, alex, w.Partner1())
	assert.Same(t, bea, w.Partner2())
	assert.Equal(t, []*model.Person{cat}, w.Guests())
	assert.Equal(t, model.RolePartner2, w.Role(bea))
	require.NoError(t, b.Check())

	require.NoError(t, b.UnassignWedding(alex, []*model.Wedding{w}))
	assert.Nil(t, w.Partner1())
	assert.Empty(t, alex.Weddings())
	require.NoError(t, b.Check())
}

func Test_Book_AssignWedding_Partner_Takes_One_Wedding(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")

	_, err := b.AssignWeddingNamed(alex, []string{"A", "B"}, model.RolePartner1, true)
	require.ErrorIs(t, err, model.ErrPartnerNeedsOne)
	assert.Empty(t, b.Weddings())
}

func Test_Book_DeleteWedding_Cascades_Only_When_Forced(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	bea := newPerson(t, b, "Bea", "222")

	weddings, err := b.AssignWeddingNamed(alex, []string{"W1", "W2"}, model.RoleGuest, true)
	require.NoError(t, err)

	_, err = b.AssignWeddingNamed(bea, []string{"W1"}, model.RolePartner1, false)
	require.NoError(t, err)

	w1 := weddings[0]

	require.ErrorIs(t, b.DeleteWedding(w1, false), model.ErrWeddingInUse)
	require.NoError(t, b.DeleteWedding(w1, true))

	assert.Equal(t, []string{"W2"}, weddingNames(alex.Weddings()))
	assert.Empty(t, bea.Weddings())
	assert.Nil(t, b.FindWedding("W1"))
	require.NoError(t, b.Check())
}

func Test_Book_RenameWedding_Rejects_Duplicates(t *testing.T) {
	t.Parallel()

	b := model.NewBook()

	for _, name := range []string{"W1", "W2"} {
		w, err := model.NewWedding(name)
		require.NoError(t, err)
		require.NoError(t, b.AddWedding(w))
	}

	w1 := b.FindWedding("W1")

	require.ErrorIs(t, b.RenameWedding(w1, "w2"), model.ErrDuplicateWedding)
	require.ErrorIs(t, b.RenameWedding(w1, "  "), model.ErrInvalidField)
	require.NoError(t, b.RenameWedding(w1, "w1"), "renaming to a different case of itself is allowed")
	require.NoError(t, b.RenameWedding(w1, "Summer Wedding"))
	assert.Equal(t, "Summer Wedding", w1.Name)
}

func Test_Book_DeletePerson_Cascades(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")

	_, err := b.TagPersonNamed(alex, []string{"florist"}, true)
	require.NoError(t, err)

	_, err = b.AssignWeddingNamed(alex, []string{"W1"}, model.RolePartner2, true)
	require.NoError(t, err)

	require.NoError(t, b.SetVendor(alex))

	task, err := model.NewTodo("Buy flowers")
	require.NoError(t, err)
	require.NoError(t, b.AddTask(task))
	require.NoError(t, b.AssignTasks(alex, []*model.Task{task}))

	require.NoError(t, b.DeletePerson(alex))

	assert.Empty(t, b.Persons())
	assert.Equal(t, 0, b.FindTag("florist").Count())
	assert.Nil(t, b.FindWedding("W1").Partner2())
	assert.Len(t, b.Tasks(), 1, "tasks outlive their holders")
	require.NoError(t, b.Check())

	require.ErrorIs(t, b.DeletePerson(alex), model.ErrPersonNotFound)
}

func Test_Book_EditPerson_Keeps_Links_And_Rejects_Duplicates(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	newPerson(t, b, "Bea", "222")

	_, err := b.AssignWeddingNamed(alex, []string{"W1"}, model.RoleGuest, true)
	require.NoError(t, err)

	name, phone := "Bea", "222"
	err = b.EditPerson(alex, model.PersonFields{Name: &name, Phone: &phone})
	require.ErrorIs(t, err, model.ErrDuplicatePerson)
	assert.Equal(t, "Alex", alex.Name)

	bad := "12"
	err = b.EditPerson(alex, model.PersonFields{Phone: &bad})
	require.ErrorIs(t, err, model.ErrInvalidField)

	newName := "Alexander  Yeoh"
	require.NoError(t, b.EditPerson(alex, model.PersonFields{Name: &newName}))
	assert.Equal(t, "Alexander Yeoh", alex.Name)
	assert.Equal(t, []*model.Person{alex}, b.FindWedding("W1").Guests())
}

func Test_Book_Tasks_Are_Shared_Between_Holders(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	bea := newPerson(t, b, "Bea", "222")

	task, err := model.NewDeadline("Book venue", "2025-06-01")
	require.NoError(t, err)
	require.NoError(t, b.AddTask(task))

	err = b.AssignTasks(alex, []*model.Task{task})
	require.ErrorIs(t, err, model.ErrOnlyVendorGetsTasks)

	require.NoError(t, b.SetVendor(alex))
	require.NoError(t, b.SetVendor(bea))
	require.ErrorIs(t, b.SetVendor(bea), model.ErrAlreadyVendor)

	require.NoError(t, b.AssignTasks(alex, []*model.Task{task}))
	require.NoError(t, b.AssignTasks(bea, []*model.Task{task}))
	require.ErrorIs(t, b.AssignTasks(bea, []*model.Task{task}), model.ErrPersonHasTask)

	require.NoError(t, b.SetTasksDone([]*model.Task{task}, true))
	assert.True(t, alex.Tasks()[0].Done)
	assert.True(t, bea.Tasks()[0].Done)
	assert.Equal(t, []*model.Person{alex, bea}, b.HoldersOf(task))

	require.NoError(t, b.DeleteTasks([]*model.Task{task}, true))
	assert.Empty(t, alex.Tasks())
	assert.Empty(t, bea.Tasks())
	require.NoError(t, b.Check())
}

func Test_Book_DeleteTasks_Cascades_Only_When_Forced(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")
	require.NoError(t, b.SetVendor(alex))

	held, err := model.NewTodo("Order flowers")
	require.NoError(t, err)

	free, err := model.NewTodo("Print menus")
	require.NoError(t, err)

	require.NoError(t, b.AddTask(held))
	require.NoError(t, b.AddTask(free))
	require.NoError(t, b.AssignTasks(alex, []*model.Task{held}))

	rev := b.Revision()

	err = b.DeleteTasks([]*model.Task{free, held}, false)
	require.ErrorIs(t, err, model.ErrTaskInUse)
	assert.Len(t, b.Tasks(), 2)
	assert.Equal(t, []*model.Task{held}, alex.Tasks())
	assert.Equal(t, rev, b.Revision())

	require.NoError(t, b.DeleteTasks([]*model.Task{free}, false))
	require.NoError(t, b.DeleteTasks([]*model.Task{held}, true))
	assert.Empty(t, b.Tasks())
	assert.Empty(t, alex.Tasks())
	assert.True(t, alex.Vendor)
	require.NoError(t, b.Check())
}

func Test_Book_UnsetVendor_Needs_Force_With_Tasks(t *testing.T) {
	t.Parallel()

	b := model.NewBook()
	alex := newPerson(t, b, "Alex", "111")

	require.ErrorIs(t, b.UnsetVendor(alex, false), model.ErrNotVendor)
	require.NoError(t, b.SetVendor(alex))

	task, err := model.NewTodo("Call florist")
	require.NoError(t, err)
	require.NoError(t, b.AddTask(task))
	require.NoError(t, b.AssignTasks(alex, []*model.Task{task}))

	require.ErrorIs(t, b.UnsetVendor(alex, false), model.ErrVendorHasTasks)
	assert.True(t, alex.Vendor)

	require.NoError(t, b.UnsetVendor(alex, true))
	assert.False(t, alex.Vendor)
	assert.Empty(t, alex.Tasks())
	assert.Len(t, b.Tasks(), 1)
	require.NoError(t, b.Check())
}

func Test_Book_AddTask_Rejects_Same_Kind_And_Description(t *testing.T) {
	t.Parallel()

	b := model.NewBook()

	todo, err := model.NewTodo("Buy cake")
	require.NoError(t, err)
	require.NoError(t, b.AddTask(todo))

	again, err := model.NewTodo("buy CAKE")
	require.NoError(t, err)
	require.ErrorIs(t, b.AddTask(again), model.ErrDuplicateTask)

	deadline, err := model.NewDeadline("Buy cake", "2025-01-01")
	require.NoError(t, err)
	require.NoError(t, b.AddTask(deadline), "a deadline is a different task than a todo")
}

func Test_Book_Clear_Empties_Everything(t *testing.T) {
	t.Parallel()

	b := model.SampleBook()
	require.NotEmpty(t, b.Persons())

	b.Clear()

	assert.Empty(t, b.Persons())
	assert.Empty(t, b.Tags())
	assert.Empty(t, b.Weddings())
	assert.Empty(t, b.Tasks())
	assert.Equal(t, 1, b.Revision())
}

func Test_SampleBook_Is_Consistent(t *testing.T) {
	t.Parallel()

	b := model.SampleBook()

	require.NoError(t, b.Check())
	assert.Equal(t, 0, b.Revision())
	assert.Len(t, b.Persons(), 6)
	assert.Equal(t, 2, b.FindTag("guest").Count())
	assert.Len(t, b.FindWedding("Casey's Wedding").Guests(), 2)

	m := model.NewManager(b)
	m.SetFilter(model.IsVendor)
	assert.Len(t, m.Displayed(), 4)
}
