package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/wedlinker/internal/model"
)

var (
	errIndexRequired     = errors.New("person index is required")
	errTaskIndexRequired = errors.New("at least one task index is required")
	errNotAnIndex        = errors.New("index must be a positive integer")
	errTooManyArgs       = errors.New("unexpected argument")
	errEmptyValue        = errors.New("empty value not allowed")
	errTagRequired       = errors.New("at least one --tag is required")
	errWeddingRequired   = errors.New("at least one --wedding is required")
)

func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s", errNotAnIndex, arg)
	}

	return n, nil
}

// personFromArgs resolves a command whose only argument is a person index.
func personFromArgs(m *model.Manager, args []string) (*model.Person, error) {
	if len(args) == 0 {
		return nil, errIndexRequired
	}

	if len(args) > 1 {
		return nil, fmt.Errorf("%w: %s", errTooManyArgs, args[1])
	}

	idx, err := parseIndex(args[0])
	if err != nil {
		return nil, err
	}

	return m.PersonAt(idx)
}

func tasksFromArgs(m *model.Manager, args []string) ([]*model.Task, error) {
	if len(args) == 0 {
		return nil, errTaskIndexRequired
	}

	tasks := make([]*model.Task, 0, len(args))

	for _, arg := range args {
		idx, err := parseIndex(arg)
		if err != nil {
			return nil, err
		}

		t, err := m.TaskAt(idx)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, nil
}

// namesFlag returns the values of a repeatable name flag; at least one is
// required and none may be blank.
func namesFlag(fs *flag.FlagSet, name string, missing error) ([]string, error) {
	values, _ := fs.GetStringArray(name)
	if len(values) == 0 {
		return nil, missing
	}

	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: --%s", errEmptyValue, name)
		}
	}

	return values, nil
}

func joinNames[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}

	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// printPersons writes the displayed list, one block per person.
func printPersons(o *IO, persons []*model.Person) {
	th := o.Theme()

	for i, p := range persons {
		name := th.Heading(p.Name)
		if p.Vendor {
			name += " " + th.Muted("(vendor)")
		}

		o.Printf("%s %s\n", th.Muted(fmt.Sprintf("%d.", i+1)), name)
		printField(o, "phone", p.Phone)
		printField(o, "email", p.Email)
		printField(o, "address", p.Address)

		if tags := p.Tags(); len(tags) > 0 {
			printField(o, "tags", th.Accent(joinNames(tags)))
		}

		if weddings := p.Weddings(); len(weddings) > 0 {
			printField(o, "weddings", th.Accent(joinNames(weddings)))
		}

		for _, t := range p.Tasks() {
			printField(o, "task", t.String())
		}
	}
}

func printField(o *IO, label, value string) {
	if value == "" {
		return
	}

	o.Printf("   %s: %s\n", label, value)
}
