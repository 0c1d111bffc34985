package model

import (
	"fmt"
	"strings"
	"time"
)

// TaskKind distinguishes the task variants.
type TaskKind string

// Task kinds.
const (
	KindTodo     TaskKind = "todo"
	KindDeadline TaskKind = "deadline"
	KindEvent    TaskKind = "event"
)

// ParseTaskKind maps a user or file string to a kind.
func ParseTaskKind(s string) (TaskKind, error) {
	switch TaskKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindTodo:
		return KindTodo, nil
	case KindDeadline:
		return KindDeadline, nil
	case KindEvent:
		return KindEvent, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTaskKind, s)
	}
}

// Task is a to-do item that vendors can hold. Deadline tasks use By,
// event tasks use From and To.
type Task struct {
	Kind        TaskKind
	Description string
	By          time.Time
	From        time.Time
	To          time.Time
	Done        bool
}

// NewTodo returns a todo task.
func NewTodo(description string) (*Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return nil, err
	}

	return &Task{Kind: KindTodo, Description: description}, nil
}

// NewDeadline returns a deadline task due on by.
func NewDeadline(description, by string) (*Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return nil, err
	}

	due, err := ParseDate(by)
	if err != nil {
		return nil, err
	}

	return &Task{Kind: KindDeadline, Description: description, By: due}, nil
}

// NewEvent returns an event task spanning from..to inclusive.
func NewEvent(description, from, to string) (*Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return nil, err
	}

	start, err := ParseDate(from)
	if err != nil {
		return nil, err
	}

	end, err := ParseDate(to)
	if err != nil {
		return nil, err
	}

	if start.After(end) {
		return nil, fmt.Errorf("%w: %s > %s", ErrEventDatesOutOfOrder, from, to)
	}

	return &Task{Kind: KindEvent, Description: description, From: start, To: end}, nil
}

func checkDescription(description string) (string, error) {
	description = NormalizeSpace(description)
	if description == "" {
		return "", fieldError("description", description, descriptionConstraint)
	}

	return description, nil
}

// SameTask reports whether both tasks have the same kind and description.
func (t *Task) SameTask(other *Task) bool {
	return t.Kind == other.Kind && strings.EqualFold(t.Description, other.Description)
}

// Symbol returns the one-letter kind marker.
func (t *Task) Symbol() string {
	switch t.Kind {
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "T"
	}
}

func (t *Task) String() string {
	done := " "
	if t.Done {
		done = "X"
	}

	s := fmt.Sprintf("[%s][%s] %s", t.Symbol(), done, t.Description)

	switch t.Kind {
	case KindDeadline:
		s += fmt.Sprintf(" (by: %s)", t.By.Format(DateLayout))
	case KindEvent:
		s += fmt.Sprintf(" (from: %s to: %s)", t.From.Format(DateLayout), t.To.Format(DateLayout))
	case KindTodo:
	}

	return s
}
