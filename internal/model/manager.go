package model

import (
	"fmt"
	"strings"
)

// Predicate selects persons for the displayed list.
type Predicate func(*Person) bool

// ShowAll is the predicate of an unfiltered list.
func ShowAll(*Person) bool { return true }

// IsVendor selects vendors.
func IsVendor(p *Person) bool { return p.Vendor }

// Manager wraps a [Book] with the displayed person list that index
// arguments refer to.
type Manager struct {
	book   *Book
	filter Predicate
}

// NewManager returns a manager showing every person of book.
func NewManager(book *Book) *Manager {
	if book == nil {
		panic("book is nil")
	}

	return &Manager{book: book, filter: ShowAll}
}

// Book returns the underlying book.
func (m *Manager) Book() *Book { return m.book }

// SetFilter replaces the predicate of the displayed list. Nil shows everyone.
func (m *Manager) SetFilter(p Predicate) {
	if p == nil {
		p = ShowAll
	}

	m.filter = p
}

// Displayed returns the persons matching the current filter.
func (m *Manager) Displayed() []*Person {
	var shown []*Person

	for _, p := range m.book.persons {
		if m.filter(p) {
			shown = append(shown, p)
		}
	}

	return shown
}

// PersonAt returns the person at 1-based index of the displayed list.
func (m *Manager) PersonAt(index int) (*Person, error) {
	shown := m.Displayed()
	if index < 1 || index > len(shown) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPersonIndex, index)
	}

	return shown[index-1], nil
}

// TaskAt returns the task at 1-based index of the task list.
func (m *Manager) TaskAt(index int) (*Task, error) {
	if index < 1 || index > len(m.book.tasks) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaskIndex, index)
	}

	return m.book.tasks[index-1], nil
}

// PersonQuery holds find keywords per field. Keywords of one field match
// when any of them is a case-insensitive substring; all non-empty fields
// must match.
type PersonQuery struct {
	Names     []string
	Phones    []string
	Emails    []string
	Addresses []string
	Tags      []string
	Weddings  []string
	Tasks     []string
}

// IsEmpty reports whether the query has no keywords.
func (q PersonQuery) IsEmpty() bool {
	return len(q.Names)+len(q.Phones)+len(q.Emails)+len(q.Addresses)+
		len(q.Tags)+len(q.Weddings)+len(q.Tasks) == 0
}

// Match reports whether p satisfies the query.
func (q PersonQuery) Match(p *Person) bool {
	return matchAny(q.Names, p.Name) &&
		matchAny(q.Phones, p.Phone) &&
		matchAny(q.Emails, p.Email) &&
		matchAny(q.Addresses, p.Address) &&
		matchAny(q.Tags, names(p.tags, func(t *Tag) string { return t.Name })...) &&
		matchAny(q.Weddings, names(p.weddings, func(w *Wedding) string { return w.Name })...) &&
		matchAny(q.Tasks, names(p.tasks, func(t *Task) string { return t.Description })...)
}

func matchAny(keywords []string, values ...string) bool {
	if len(keywords) == 0 {
		return true
	}

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}

		for _, v := range values {
			if strings.Contains(strings.ToLower(v), kw) {
				return true
			}
		}
	}

	return false
}

func names[T any](items []*T, name func(*T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}

	return out
}
