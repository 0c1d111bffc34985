package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Book holds the four collections and keeps their cross references
// consistent. Every mutating method validates all of its input before it
// changes anything, so a returned error means the book is unchanged.
//
// Persons, tags, weddings and tasks are compared by pointer once they are
// in the book. Name based lookups go through the Find* methods.
type Book struct {
	persons  []*Person
	tags     []*Tag
	weddings []*Wedding
	tasks    []*Task

	revision int
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{}
}

// Revision increases by one on every successful mutation.
func (b *Book) Revision() int { return b.revision }

func (b *Book) touch() { b.revision++ }

// Persons returns all persons in insertion order.
func (b *Book) Persons() []*Person { return slices.Clone(b.persons) }

// Tags returns all tags in insertion order.
func (b *Book) Tags() []*Tag { return slices.Clone(b.tags) }

// Weddings returns all weddings in insertion order.
func (b *Book) Weddings() []*Wedding { return slices.Clone(b.weddings) }

// Tasks returns all tasks in insertion order.
func (b *Book) Tasks() []*Task { return slices.Clone(b.tasks) }

// FindPerson returns the person with the given identity, or nil.
func (b *Book) FindPerson(id Identity) *Person {
	for _, p := range b.persons {
		if p.Identity().Same(id) {
			return p
		}
	}

	return nil
}

// FindTag returns the tag named name, or nil.
func (b *Book) FindTag(name string) *Tag {
	for _, t := range b.tags {
		if t.SameName(name) {
			return t
		}
	}

	return nil
}

// FindWedding returns the wedding named name, or nil.
func (b *Book) FindWedding(name string) *Wedding {
	for _, w := range b.weddings {
		if w.SameName(name) {
			return w
		}
	}

	return nil
}

// FindTask returns the task in the book that is the same task as t, or nil.
func (b *Book) FindTask(t *Task) *Task {
	for _, existing := range b.tasks {
		if existing.SameTask(t) {
			return existing
		}
	}

	return nil
}

// HoldersOf returns the vendors holding t.
func (b *Book) HoldersOf(t *Task) []*Person {
	var holders []*Person

	for _, p := range b.persons {
		if p.HasTask(t) {
			holders = append(holders, p)
		}
	}

	return holders
}

// Clear removes everything from the book.
func (b *Book) Clear() {
	b.persons = nil
	b.tags = nil
	b.weddings = nil
	b.tasks = nil
	b.touch()
}

// AddPerson adds an unlinked person. Use TagPerson, AssignWedding and
// AssignTasks to link it afterwards.
func (b *Book) AddPerson(p *Person) error {
	if p == nil {
		panic("person is nil")
	}

	if len(p.tags) > 0 || len(p.weddings) > 0 || len(p.tasks) > 0 {
		panic("person is already linked")
	}

	if slices.Contains(b.persons, p) || b.FindPerson(p.Identity()) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name)
	}

	b.persons = append(b.persons, p)
	b.touch()

	return nil
}

// EditPerson changes the scalar fields of p in place. Links are kept.
func (b *Book) EditPerson(p *Person, fields PersonFields) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	edited := Person{Name: p.Name, Phone: p.Phone, Email: p.Email, Address: p.Address}

	if fields.Name != nil {
		edited.Name = NormalizeSpace(*fields.Name)
	}

	if fields.Phone != nil {
		edited.Phone = strings.TrimSpace(*fields.Phone)
	}

	if fields.Email != nil {
		edited.Email = strings.TrimSpace(*fields.Email)
	}

	if fields.Address != nil {
		edited.Address = strings.TrimSpace(*fields.Address)
	}

	if err := edited.validate(); err != nil {
		return err
	}

	for _, other := range b.persons {
		if other != p && other.Identity().Same(edited.Identity()) {
			return fmt.Errorf("%w: %s", ErrDuplicatePerson, edited.Name)
		}
	}

	p.Name, p.Phone, p.Email, p.Address = edited.Name, edited.Phone, edited.Email, edited.Address
	b.touch()

	return nil
}

// DeletePerson removes p, untags it and removes it from all weddings.
// Tasks it held stay in the task list.
func (b *Book) DeletePerson(p *Person) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	for _, t := range p.tags {
		t.count--
	}

	for _, w := range p.weddings {
		w.remove(p)
	}

	p.tags, p.weddings, p.tasks = nil, nil, nil
	b.persons = removePtr(b.persons, p)
	b.touch()

	return nil
}

// AddTag adds a new tag.
func (b *Book) AddTag(t *Tag) error {
	if b.FindTag(t.Name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, t.Name)
	}

	t.count = 0
	b.tags = append(b.tags, t)
	b.touch()

	return nil
}

// DeleteTags removes tags from the book. A tag still carried by a person is
// only removed when force is set, in which case every person is untagged.
func (b *Book) DeleteTags(tags []*Tag, force bool) error {
	tags = uniq(tags)

	for _, t := range tags {
		if err := b.checkTag(t); err != nil {
			return err
		}

		if t.count > 0 && !force {
			return fmt.Errorf("%w: %s", ErrTagInUse, t.Name)
		}
	}

	for _, t := range tags {
		for _, p := range b.persons {
			p.tags = removePtr(p.tags, t)
		}

		t.count = 0
		b.tags = removePtr(b.tags, t)
	}

	b.touch()

	return nil
}

// TagPerson attaches tags to p.
func (b *Book) TagPerson(p *Person, tags []*Tag) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	tags = uniq(tags)

	for _, t := range tags {
		if err := b.checkTag(t); err != nil {
			return err
		}

		if p.HasTag(t) {
			return fmt.Errorf("%w: %s", ErrPersonHasTag, t.Name)
		}
	}

	for _, t := range tags {
		p.tags = append(p.tags, t)
		t.count++
	}

	b.touch()

	return nil
}

// UntagPerson detaches tags from p. Every tag must be on p.
func (b *Book) UntagPerson(p *Person, tags []*Tag) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	tags = uniq(tags)

	for _, t := range tags {
		if !p.HasTag(t) {
			return fmt.Errorf("%w: %s", ErrTagNotOnPerson, t.Name)
		}
	}

	for _, t := range tags {
		p.tags = removePtr(p.tags, t)
		t.count--
	}

	b.touch()

	return nil
}

// AddWedding adds a new wedding with no members.
func (b *Book) AddWedding(w *Wedding) error {
	if b.FindWedding(w.Name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateWedding, w.Name)
	}

	if len(w.Members()) > 0 {
		panic("wedding already has members")
	}

	b.weddings = append(b.weddings, w)
	b.touch()

	return nil
}

// RenameWedding renames w.
func (b *Book) RenameWedding(w *Wedding, name string) error {
	if err := b.checkWedding(w); err != nil {
		return err
	}

	name = NormalizeSpace(name)
	if err := ValidateWeddingName(name); err != nil {
		return err
	}

	if other := b.FindWedding(name); other != nil && other != w {
		return fmt.Errorf("%w: %s", ErrDuplicateWedding, name)
	}

	w.Name = name
	b.touch()

	return nil
}

// DeleteWedding removes w. A wedding with members is only removed when force
// is set, in which case every member is unassigned.
func (b *Book) DeleteWedding(w *Wedding, force bool) error {
	if err := b.checkWedding(w); err != nil {
		return err
	}

	members := w.Members()
	if len(members) > 0 && !force {
		return fmt.Errorf("%w: %s", ErrWeddingInUse, w.Name)
	}

	for _, p := range members {
		p.weddings = removePtr(p.weddings, w)
		w.remove(p)
	}

	b.weddings = removePtr(b.weddings, w)
	b.touch()

	return nil
}

// AssignWedding puts p into each wedding with the given role. Partner roles
// take exactly one wedding whose slot must be free. RoleNone means guest.
func (b *Book) AssignWedding(p *Person, weddings []*Wedding, role Role) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	if role == RoleNone {
		role = RoleGuest
	}

	weddings = uniq(weddings)

	if role != RoleGuest && len(weddings) != 1 {
		return ErrPartnerNeedsOne
	}

	for _, w := range weddings {
		if err := b.checkWedding(w); err != nil {
			return err
		}

		if w.Has(p) {
			return fmt.Errorf("%w: %s", ErrAlreadyInWedding, w.Name)
		}

		if (role == RolePartner1 && w.partner1 != nil) || (role == RolePartner2 && w.partner2 != nil) {
			return fmt.Errorf("%w: %s of %s", ErrPartnerSlotTaken, role, w.Name)
		}
	}

	for _, w := range weddings {
		w.add(p, role)
		p.weddings = append(p.weddings, w)
	}

	b.touch()

	return nil
}

// UnassignWedding removes p from each wedding, whatever its role.
func (b *Book) UnassignWedding(p *Person, weddings []*Wedding) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	weddings = uniq(weddings)

	for _, w := range weddings {
		if !p.HasWedding(w) {
			return fmt.Errorf("%w: %s", ErrWeddingNotOnPerson, w.Name)
		}
	}

	for _, w := range weddings {
		w.remove(p)
		p.weddings = removePtr(p.weddings, w)
	}

	b.touch()

	return nil
}

// AddTask adds a new task.
func (b *Book) AddTask(t *Task) error {
	if slices.Contains(b.tasks, t) || b.FindTask(t) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, t.Description)
	}

	b.tasks = append(b.tasks, t)
	b.touch()

	return nil
}

// DeleteTasks removes tasks from the book. A task still held by a vendor is
// only removed when force is set, in which case every holder loses it.
func (b *Book) DeleteTasks(tasks []*Task, force bool) error {
	tasks = uniq(tasks)

	for _, t := range tasks {
		if err := b.checkTask(t); err != nil {
			return err
		}

		if !force && len(b.HoldersOf(t)) > 0 {
			return fmt.Errorf("%w: %s", ErrTaskInUse, t.Description)
		}
	}

	for _, t := range tasks {
		for _, p := range b.persons {
			p.tasks = removePtr(p.tasks, t)
		}

		b.tasks = removePtr(b.tasks, t)
	}

	b.touch()

	return nil
}

// AssignTasks gives tasks to vendor p.
func (b *Book) AssignTasks(p *Person, tasks []*Task) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	if !p.Vendor {
		return fmt.Errorf("%w: %s", ErrOnlyVendorGetsTasks, p.Name)
	}

	tasks = uniq(tasks)

	for _, t := range tasks {
		if err := b.checkTask(t); err != nil {
			return err
		}

		if p.HasTask(t) {
			return fmt.Errorf("%w: %s", ErrPersonHasTask, t.Description)
		}
	}

	p.tasks = append(p.tasks, tasks...)
	b.touch()

	return nil
}

// UnassignTasks takes tasks away from p. Every task must be held by p.
func (b *Book) UnassignTasks(p *Person, tasks []*Task) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	tasks = uniq(tasks)

	for _, t := range tasks {
		if !p.HasTask(t) {
			return fmt.Errorf("%w: %s", ErrTaskNotOnPerson, t.Description)
		}
	}

	for _, t := range tasks {
		p.tasks = removePtr(p.tasks, t)
	}

	b.touch()

	return nil
}

// SetTasksDone marks or unmarks tasks. Holders share the task, so they
// observe the change.
func (b *Book) SetTasksDone(tasks []*Task, done bool) error {
	for _, t := range tasks {
		if err := b.checkTask(t); err != nil {
			return err
		}
	}

	for _, t := range tasks {
		t.Done = done
	}

	b.touch()

	return nil
}

// SetVendor turns p into a vendor.
func (b *Book) SetVendor(p *Person) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	if p.Vendor {
		return fmt.Errorf("%w: %s", ErrAlreadyVendor, p.Name)
	}

	p.Vendor = true
	b.touch()

	return nil
}

// UnsetVendor turns vendor p back into a plain contact. A vendor that still
// holds tasks is only converted when force is set, dropping its tasks.
func (b *Book) UnsetVendor(p *Person, force bool) error {
	if err := b.checkPerson(p); err != nil {
		return err
	}

	if !p.Vendor {
		return fmt.Errorf("%w: %s", ErrNotVendor, p.Name)
	}

	if len(p.tasks) > 0 && !force {
		return fmt.Errorf("%w: %s", ErrVendorHasTasks, p.Name)
	}

	p.tasks = nil
	p.Vendor = false
	b.touch()

	return nil
}

// Check verifies every cross-reference invariant and returns all violations.
func (b *Book) Check() error {
	var errs []error

	counts := make(map[*Tag]int, len(b.tags))

	for _, p := range b.persons {
		for _, t := range p.tags {
			counts[t]++

			if !slices.Contains(b.tags, t) {
				errs = append(errs, fmt.Errorf("%s: %w: %s", p.Name, ErrTagNotFound, t.Name))
			}
		}

		for _, w := range p.weddings {
			if !slices.Contains(b.weddings, w) {
				errs = append(errs, fmt.Errorf("%s: %w: %s", p.Name, ErrWeddingNotFound, w.Name))
			} else if !w.Has(p) {
				errs = append(errs, fmt.Errorf("%s: wedding %s does not list the person", p.Name, w.Name))
			}
		}

		for _, t := range p.tasks {
			if !slices.Contains(b.tasks, t) {
				errs = append(errs, fmt.Errorf("%s: %w: %s", p.Name, ErrTaskNotFound, t.Description))
			}
		}

		if len(p.tasks) > 0 && !p.Vendor {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name, ErrOnlyVendorGetsTasks))
		}
	}

	for _, t := range b.tags {
		if t.count != counts[t] {
			errs = append(errs, fmt.Errorf("tag %s: count %d, carried by %d", t.Name, t.count, counts[t]))
		}
	}

	for _, w := range b.weddings {
		for _, p := range w.Members() {
			if !slices.Contains(b.persons, p) {
				errs = append(errs, fmt.Errorf("wedding %s: %w: %s", w.Name, ErrPersonNotFound, p.Name))
			} else if !p.HasWedding(w) {
				errs = append(errs, fmt.Errorf("wedding %s: %s does not list the wedding", w.Name, p.Name))
			}
		}
	}

	return errors.Join(errs...)
}

func (b *Book) checkPerson(p *Person) error {
	if p == nil || !slices.Contains(b.persons, p) {
		return ErrPersonNotFound
	}

	return nil
}

func (b *Book) checkTag(t *Tag) error {
	if t == nil || !slices.Contains(b.tags, t) {
		name := ""
		if t != nil {
			name = t.Name
		}

		return fmt.Errorf("%w: %s", ErrTagNotFound, name)
	}

	return nil
}

func (b *Book) checkWedding(w *Wedding) error {
	if w == nil || !slices.Contains(b.weddings, w) {
		name := ""
		if w != nil {
			name = w.Name
		}

		return fmt.Errorf("%w: %s", ErrWeddingNotFound, name)
	}

	return nil
}

func (b *Book) checkTask(t *Task) error {
	if t == nil || !slices.Contains(b.tasks, t) {
		return ErrTaskNotFound
	}

	return nil
}

func uniq[T any](s []*T) []*T {
	out := make([]*T, 0, len(s))

	for _, v := range s {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}
