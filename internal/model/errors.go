package model

import (
	"errors"
	"fmt"
)

// Error variables for model operations.
var (
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidPersonIndex   = errors.New("the person index provided is invalid")
	ErrInvalidTaskIndex     = errors.New("the task index provided is invalid")
	ErrDuplicatePerson      = errors.New("this person already exists in the Wedlinker")
	ErrPersonNotFound       = errors.New("person not found")
	ErrDuplicateTag         = errors.New("tag already exists")
	ErrTagNotFound          = errors.New("tag does not exist in the Wedlinker")
	ErrTagInUse             = errors.New("tag is still in use (use --force to untag every person)")
	ErrTagNotOnPerson       = errors.New("tag not found in the person's tag list")
	ErrPersonHasTag         = errors.New("person already has tag")
	ErrDuplicateWedding     = errors.New("wedding already exists")
	ErrWeddingNotFound      = errors.New("wedding does not exist in the Wedlinker")
	ErrWeddingInUse         = errors.New("wedding still has people assigned (use --force to unassign them)")
	ErrWeddingNotOnPerson   = errors.New("wedding not found in the person's wedding list")
	ErrAlreadyInWedding     = errors.New("person is already assigned to wedding")
	ErrPartnerSlotTaken     = errors.New("partner slot is already taken")
	ErrPartnerNeedsOne      = errors.New("a partner can only be assigned to one wedding at a time")
	ErrDuplicateTask        = errors.New("this task already exists in the Wedlinker")
	ErrTaskNotFound         = errors.New("task does not exist in the Wedlinker")
	ErrTaskInUse            = errors.New("task is still assigned to a vendor (use --force to unassign it)")
	ErrTaskNotOnPerson      = errors.New("task not found in the person's task list")
	ErrPersonHasTask        = errors.New("vendor already has task")
	ErrNotVendor            = errors.New("person is not a vendor")
	ErrAlreadyVendor        = errors.New("person is already a vendor")
	ErrOnlyVendorGetsTasks  = errors.New("tasks can only be assigned to vendors")
	ErrVendorHasTasks       = errors.New("vendor still has tasks (use --force to unassign them)")
	ErrInvalidDate          = errors.New("invalid date format, expected yyyy-MM-dd")
	ErrEventDatesOutOfOrder = errors.New("\"from\" date must not be after \"to\" date")
	ErrUnknownTaskKind      = errors.New("unknown task type")
)

// FieldError reports a value that violates the constraints of a field.
type FieldError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Constraint)
}

// Unwrap lets callers match any field error with errors.Is(err, ErrInvalidField).
func (e *FieldError) Unwrap() error { return ErrInvalidField }

func fieldError(field, value, constraint string) error {
	return &FieldError{Field: field, Value: value, Constraint: constraint}
}
