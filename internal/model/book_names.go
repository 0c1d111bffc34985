package model

import "fmt"

// TagPersonNamed tags p with the named tags. Unknown names are an error
// unless create is set, in which case the tags are created. Nothing changes
// when an error is returned.
func (b *Book) TagPersonNamed(p *Person, names []string, create bool) ([]*Tag, error) {
	tags, fresh, err := b.resolveTags(names, create)
	if err != nil {
		return nil, err
	}

	if err := b.checkPerson(p); err != nil {
		return nil, err
	}

	for _, t := range tags {
		if p.HasTag(t) {
			return nil, fmt.Errorf("%w: %s", ErrPersonHasTag, t.Name)
		}
	}

	b.tags = append(b.tags, fresh...)

	return tags, b.TagPerson(p, tags)
}

// AssignWeddingNamed assigns p to the named weddings with role. Unknown
// names are an error unless create is set. Nothing changes on error.
func (b *Book) AssignWeddingNamed(p *Person, names []string, role Role, create bool) ([]*Wedding, error) {
	weddings, fresh, err := b.resolveWeddings(names, create)
	if err != nil {
		return nil, err
	}

	if err := b.checkPerson(p); err != nil {
		return nil, err
	}

	if role != RoleNone && role != RoleGuest && len(weddings) != 1 {
		return nil, ErrPartnerNeedsOne
	}

	for _, w := range weddings {
		if w.Has(p) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyInWedding, w.Name)
		}

		if (role == RolePartner1 && w.partner1 != nil) || (role == RolePartner2 && w.partner2 != nil) {
			return nil, fmt.Errorf("%w: %s of %s", ErrPartnerSlotTaken, role, w.Name)
		}
	}

	b.weddings = append(b.weddings, fresh...)

	return weddings, b.AssignWedding(p, weddings, role)
}

// CreateTags adds a new tag for every name. A name that already exists, in
// the book or earlier in names, is an error and nothing is added.
func (b *Book) CreateTags(names []string) ([]*Tag, error) {
	tags := make([]*Tag, 0, len(names))

	for _, name := range names {
		t, err := NewTag(name)
		if err != nil {
			return nil, err
		}

		if b.FindTag(t.Name) != nil || findByName(tags, t.Name, (*Tag).SameName) != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTag, t.Name)
		}

		tags = append(tags, t)
	}

	b.tags = append(b.tags, tags...)
	b.touch()

	return tags, nil
}

// CreateWeddings adds a new wedding for every name, all or nothing.
func (b *Book) CreateWeddings(names []string) ([]*Wedding, error) {
	weddings := make([]*Wedding, 0, len(names))

	for _, name := range names {
		w, err := NewWedding(name)
		if err != nil {
			return nil, err
		}

		if b.FindWedding(w.Name) != nil || findByName(weddings, w.Name, (*Wedding).SameName) != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWedding, w.Name)
		}

		weddings = append(weddings, w)
	}

	b.weddings = append(b.weddings, weddings...)
	b.touch()

	return weddings, nil
}

// LookupTags returns the named tags; every name must exist.
func (b *Book) LookupTags(names []string) ([]*Tag, error) {
	tags, _, err := b.resolveTags(names, false)
	return tags, err
}

// LookupWeddings returns the named weddings; every name must exist.
func (b *Book) LookupWeddings(names []string) ([]*Wedding, error) {
	weddings, _, err := b.resolveWeddings(names, false)
	return weddings, err
}

// resolveTags maps names to tags, deduplicating case-insensitively. Tags
// that do not exist are returned in fresh (not yet in the book) when create
// is set.
func (b *Book) resolveTags(names []string, create bool) (tags, fresh []*Tag, err error) {
	for _, name := range names {
		if t := b.FindTag(name); t != nil {
			tags = appendUnique(tags, t)
			continue
		}

		if pending := findByName(fresh, name, (*Tag).SameName); pending != nil {
			continue
		}

		if !create {
			return nil, nil, fmt.Errorf("%w: %s", ErrTagNotFound, NormalizeSpace(name))
		}

		t, err := NewTag(name)
		if err != nil {
			return nil, nil, err
		}

		fresh = append(fresh, t)
		tags = append(tags, t)
	}

	return tags, fresh, nil
}

func (b *Book) resolveWeddings(names []string, create bool) (weddings, fresh []*Wedding, err error) {
	for _, name := range names {
		if w := b.FindWedding(name); w != nil {
			weddings = appendUnique(weddings, w)
			continue
		}

		if pending := findByName(fresh, name, (*Wedding).SameName); pending != nil {
			continue
		}

		if !create {
			return nil, nil, fmt.Errorf("%w: %s", ErrWeddingNotFound, NormalizeSpace(name))
		}

		w, err := NewWedding(name)
		if err != nil {
			return nil, nil, err
		}

		fresh = append(fresh, w)
		weddings = append(weddings, w)
	}

	return weddings, fresh, nil
}

func appendUnique[T any](s []*T, v *T) []*T {
	for _, e := range s {
		if e == v {
			return s
		}
	}

	return append(s, v)
}

func findByName[T any](s []*T, name string, same func(*T, string) bool) *T {
	for _, e := range s {
		if same(e, name) {
			return e
		}
	}

	return nil
}
