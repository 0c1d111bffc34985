package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
	"github.com/calvinalkan/wedlinker/internal/ui"
)

var (
	errTaskKindRequired    = errors.New("task type is required (todo, deadline or event)")
	errDescriptionRequired = errors.New("task description is required")
	errByRequired          = errors.New("--by is required for a deadline")
	errFromToRequired      = errors.New("--from and --to are required for an event")
	errDatesNotAllowed     = errors.New("date flags do not apply to this task type")
)

// CreateTaskCmd returns the create-task command.
func CreateTaskCmd(s *session) *Command {
	fs := flag.NewFlagSet("create-task", flag.ContinueOnError)
	fs.String("by", "", "Deadline date (yyyy-MM-dd)")
	fs.String("from", "", "Event start date (yyyy-MM-dd)")
	fs.String("to", "", "Event end date (yyyy-MM-dd)")

	return &Command{
		Flags: fs,
		Usage: "create-task todo|deadline|event <description> [flags]",
		Short: "Create a task",
		Long: `Create a task in the task list. Deadlines need --by, events need --from
and --to. Dates use the yyyy-MM-dd format.`,
		Examples: []string{
			"create-task todo Finalize catering menu",
			"create-task deadline Schedule hair and makeup trials --by 2025-12-22",
			"create-task event Venue walkthrough --from 2025-11-01 --to 2025-11-02",
		},
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execCreateTask(io, s, fs, args)
		},
	}
}

func execCreateTask(io *IO, s *session, fs *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return errTaskKindRequired
	}

	kind, err := model.ParseTaskKind(args[0])
	if err != nil {
		return err
	}

	description := strings.Join(args[1:], " ")
	if strings.TrimSpace(description) == "" {
		return errDescriptionRequired
	}

	by, _ := fs.GetString("by")
	from, _ := fs.GetString("from")
	to, _ := fs.GetString("to")

	var task *model.Task

	switch kind {
	case model.KindTodo:
		if fs.Changed("by") || fs.Changed("from") || fs.Changed("to") {
			return errDatesNotAllowed
		}

		task, err = model.NewTodo(description)
	case model.KindDeadline:
		if fs.Changed("from") || fs.Changed("to") {
			return errDatesNotAllowed
		}

		if by == "" {
			return errByRequired
		}

		task, err = model.NewDeadline(description, by)
	case model.KindEvent:
		if fs.Changed("by") {
			return errDatesNotAllowed
		}

		if from == "" || to == "" {
			return errFromToRequired
		}

		task, err = model.NewEvent(description, from, to)
	}

	if err != nil {
		return err
	}

	b, err := s.book(io)
	if err != nil {
		return err
	}

	if err := b.AddTask(task); err != nil {
		return err
	}

	io.Println("New task added:", task)

	return nil
}

// DeleteTaskCmd returns the delete-task command.
func DeleteTaskCmd(s *session) *Command {
	fs := flag.NewFlagSet("delete-task", flag.ContinueOnError)
	fs.BoolP("force", "f", false, "Delete tasks still held by vendors, unassigning them")

	return &Command{
		Flags: fs,
		Usage: "delete-task <task-index>... [--force]",
		Short: "Delete tasks",
		Long: `Delete tasks from the task list.

A task that a vendor still holds is only deleted with --force, which takes
it away from every holder first.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			force, _ := fs.GetBool("force")

			m, err := s.manager(io)
			if err != nil {
				return err
			}

			tasks, err := tasksFromArgs(m, args)
			if err != nil {
				return err
			}

			if err := m.Book().DeleteTasks(tasks, force); err != nil {
				return err
			}

			io.Println("Deleted task(s):", joinNames(tasks))

			return nil
		},
	}
}

// AssignTaskCmd returns the assign-task command.
func AssignTaskCmd(s *session) *Command {
	fs := flag.NewFlagSet("assign-task", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "assign-task <person-index> <task-index>...",
		Short: "Assign tasks to a vendor",
		Long: `Assign tasks from the task list to the vendor at <person-index> of the
displayed list. The vendor shares the task, so marking it done is visible
from every holder.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			m, p, tasks, err := personAndTasks(io, s, args)
			if err != nil {
				return err
			}

			if err := m.Book().AssignTasks(p, tasks); err != nil {
				return err
			}

			io.Printf("Added task(s) %s to %s.\n", joinNames(tasks), p.Name)

			return nil
		},
	}
}

// UnassignTaskCmd returns the unassign-task command.
func UnassignTaskCmd(s *session) *Command {
	fs := flag.NewFlagSet("unassign-task", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "unassign-task <person-index> <task-index>...",
		Short: "Take tasks away from a vendor",
		Long: `Take tasks away from the vendor at <person-index>. Task indexes refer to
the task list and every task must be held by the vendor. The tasks stay
in the task list.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			m, p, tasks, err := personAndTasks(io, s, args)
			if err != nil {
				return err
			}

			if err := m.Book().UnassignTasks(p, tasks); err != nil {
				return err
			}

			io.Printf("Removed task(s) %s from %s.\n", joinNames(tasks), p.Name)

			return nil
		},
	}
}

func personAndTasks(io *IO, s *session, args []string) (*model.Manager, *model.Person, []*model.Task, error) {
	if len(args) == 0 {
		return nil, nil, nil, errIndexRequired
	}

	m, err := s.manager(io)
	if err != nil {
		return nil, nil, nil, err
	}

	p, err := personFromArgs(m, args[:1])
	if err != nil {
		return nil, nil, nil, err
	}

	tasks, err := tasksFromArgs(m, args[1:])
	if err != nil {
		return nil, nil, nil, err
	}

	return m, p, tasks, nil
}

// MarkTaskCmd returns the mark-task command.
func MarkTaskCmd(s *session) *Command {
	return markCmd(s, "mark-task", true)
}

// UnmarkTaskCmd returns the unmark-task command.
func UnmarkTaskCmd(s *session) *Command {
	return markCmd(s, "unmark-task", false)
}

func markCmd(s *session, name string, done bool) *Command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	short, msg := "Mark tasks as done", "Marked task(s) as done:"
	if !done {
		short, msg = "Mark tasks as not done", "Marked task(s) as not done:"
	}

	return &Command{
		Flags: fs,
		Usage: name + " <task-index>...",
		Short: short,
		Exec: func(_ context.Context, io *IO, args []string) error {
			m, err := s.manager(io)
			if err != nil {
				return err
			}

			tasks, err := tasksFromArgs(m, args)
			if err != nil {
				return err
			}

			if err := m.Book().SetTasksDone(tasks, done); err != nil {
				return err
			}

			io.Println(msg, joinNames(tasks))

			return nil
		},
	}
}

// ListTasksCmd returns the list-tasks command.
func ListTasksCmd(s *session) *Command {
	fs := flag.NewFlagSet("list-tasks", flag.ContinueOnError)

	return &Command{
		Flags: fs,
		Usage: "list-tasks",
		Short: "List tasks with status and holders",
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: %s", errTooManyArgs, args[0])
			}

			b, err := s.book(io)
			if err != nil {
				return err
			}

			tasks := b.Tasks()
			if len(tasks) == 0 {
				io.Println("No tasks in the Wedlinker.")

				return nil
			}

			th := io.Theme()
			tbl := ui.NewTable(3)

			for i, t := range tasks {
				holders := "-"
				if hs := b.HoldersOf(t); len(hs) > 0 {
					holders = th.Accent(holderNames(hs))
				}

				tbl.AddRow(th.Muted(fmt.Sprintf("%d.", i+1)), t.String(), holders)
			}

			io.Printf("%s", tbl.String())

			return nil
		},
	}
}

func holderNames(ps []*model.Person) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}

	return strings.Join(names, ", ")
}
