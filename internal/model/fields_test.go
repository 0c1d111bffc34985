package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/wedlinker/internal/model"
)

func TestValidators(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		validate func(string) error
		value    string
		wantErr  bool
	}{
		{"name plain", model.ValidateName, "Alex Yeoh", false},
		{"name with apostrophe", model.ValidateName, "D'Souza", false},
		{"name blank", model.ValidateName, "", true},
		{"name leading symbol", model.ValidateName, "*Alex", true},
		{"phone digits", model.ValidatePhone, "87438807", false},
		{"phone plus", model.ValidatePhone, "+6587438807", false},
		{"phone empty allowed", model.ValidatePhone, "", false},
		{"phone too short", model.ValidatePhone, "12", true},
		{"phone letters", model.ValidatePhone, "9a12", true},
		{"email ok", model.ValidateEmail, "alex.yeoh+w@example.com", false},
		{"email dashed domain", model.ValidateEmail, "a@my-mail.co", false},
		{"email empty allowed", model.ValidateEmail, "", false},
		{"email no at", model.ValidateEmail, "alexexample.com", true},
		{"email short tld", model.ValidateEmail, "a@example.c", true},
		{"email trailing dot local", model.ValidateEmail, "alex.@example.com", true},
		{"address ok", model.ValidateAddress, "Blk 30 Geylang Street 29, #06-40", false},
		{"address blank", model.ValidateAddress, "   ", true},
		{"tag ok", model.ValidateTagName, "hotel manager", false},
		{"tag symbol", model.ValidateTagName, "vip!", true},
		{"tag too long", model.ValidateTagName, "a123456789a123456789a123456789a123456789a123456789x", true},
		{"wedding ok", model.ValidateWeddingName, "Casey & Tom's Wedding", false},
		{"wedding slash", model.ValidateWeddingName, "W/1", true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.validate(tt.value)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, model.ErrInvalidField)

			var fe *model.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.value, fe.Value)
		})
	}
}

func TestNewPerson_Normalizes_Fields(t *testing.T) {
	t.Parallel()

	p, err := model.NewPerson("  Alex   Yeoh ", " 87438807 ", "alex@example.com", " Blk 30 ")
	require.NoError(t, err)

	assert.Equal(t, "Alex Yeoh", p.Name)
	assert.Equal(t, "87438807", p.Phone)
	assert.Equal(t, "Blk 30", p.Address)
	assert.Equal(t, "Alex Yeoh; Phone: 87438807; Email: alex@example.com; Address: Blk 30", p.String())
}

func TestTasks(t *testing.T) {
	t.Parallel()

	todo, err := model.NewTodo("Buy cake")
	require.NoError(t, err)
	assert.Equal(t, "[T][ ] Buy cake", todo.String())

	deadline, err := model.NewDeadline("Send invites", "2025-01-31")
	require.NoError(t, err)

	deadline.Done = true
	assert.Equal(t, "[D][X] Send invites (by: 2025-01-31)", deadline.String())

	event, err := model.NewEvent("Rehearsal", "2025-02-01", "2025-02-01")
	require.NoError(t, err, "single day event")
	assert.Equal(t, "[E][ ] Rehearsal (from: 2025-02-01 to: 2025-02-01)", event.String())

	_, err = model.NewEvent("Rehearsal", "2025-02-02", "2025-02-01")
	require.ErrorIs(t, err, model.ErrEventDatesOutOfOrder)

	_, err = model.NewDeadline("Send invites", "31/01/2025")
	require.ErrorIs(t, err, model.ErrInvalidDate)

	_, err = model.NewTodo("   ")
	require.ErrorIs(t, err, model.ErrInvalidField)

	kind, err := model.ParseTaskKind("Deadline")
	require.NoError(t, err)
	assert.Equal(t, model.KindDeadline, kind)

	_, err = model.ParseTaskKind("chore")
	require.ErrorIs(t, err, model.ErrUnknownTaskKind)
}
