package model

import (
	"slices"
	"strings"
)

// Role is the part a person plays in a wedding.
type Role int

// Wedding roles.
const (
	RoleNone Role = iota
	RoleGuest
	RolePartner1
	RolePartner2
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "guest"
	case RolePartner1:
		return "partner 1"
	case RolePartner2:
		return "partner 2"
	default:
		return "none"
	}
}

// Wedding groups two optional partners and a guest list.
// A person holds at most one role per wedding.
type Wedding struct {
	Name string

	partner1 *Person
	partner2 *Person
	guests   []*Person
}

// NewWedding validates name and returns an empty wedding.
func NewWedding(name string) (*Wedding, error) {
	name = NormalizeSpace(name)
	if err := ValidateWeddingName(name); err != nil {
		return nil, err
	}

	return &Wedding{Name: name}, nil
}

// Partner1 returns the first partner or nil.
func (w *Wedding) Partner1() *Person { return w.partner1 }

// Partner2 returns the second partner or nil.
func (w *Wedding) Partner2() *Person { return w.partner2 }

// Guests returns the guest list.
func (w *Wedding) Guests() []*Person { return slices.Clone(w.guests) }

// Members returns partners followed by guests.
func (w *Wedding) Members() []*Person {
	members := make([]*Person, 0, len(w.guests)+2)

	if w.partner1 != nil {
		members = append(members, w.partner1)
	}

	if w.partner2 != nil {
		members = append(members, w.partner2)
	}

	return append(members, w.guests...)
}

// Role returns the role p holds in the wedding.
func (w *Wedding) Role(p *Person) Role {
	switch {
	case w.partner1 == p && p != nil:
		return RolePartner1
	case w.partner2 == p && p != nil:
		return RolePartner2
	case slices.Contains(w.guests, p):
		return RoleGuest
	default:
		return RoleNone
	}
}

// Has reports whether p holds any role in the wedding.
func (w *Wedding) Has(p *Person) bool { return w.Role(p) != RoleNone }

// SameName reports whether the wedding is named name, ignoring case.
func (w *Wedding) SameName(name string) bool {
	return strings.EqualFold(w.Name, NormalizeSpace(name))
}

func (w *Wedding) String() string { return w.Name }

func (w *Wedding) add(p *Person, role Role) {
	switch role {
	case RolePartner1:
		w.partner1 = p
	case RolePartner2:
		w.partner2 = p
	default:
		w.guests = append(w.guests, p)
	}
}

func (w *Wedding) remove(p *Person) {
	if w.partner1 == p {
		w.partner1 = nil
	}

	if w.partner2 == p {
		w.partner2 = nil
	}

	w.guests = removePtr(w.guests, p)
}
