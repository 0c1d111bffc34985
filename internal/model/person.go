package model

import (
	"slices"
	"strings"
)

// Identity is the part of a person used for duplicate detection and for
// referencing a person from serialized weddings.
type Identity struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Same reports whether both identities refer to the same person.
// Names compare case-insensitively, phone and email exactly.
func (id Identity) Same(other Identity) bool {
	return strings.EqualFold(id.Name, other.Name) && id.Phone == other.Phone && id.Email == other.Email
}

// Person is a contact. Links to tags, weddings and tasks are owned by the
// [Book] and only change through its methods.
type Person struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Vendor  bool

	tags     []*Tag
	weddings []*Wedding
	tasks    []*Task
}

// PersonFields holds the editable scalar fields of a person. Nil means unchanged.
type PersonFields struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

// IsEmpty reports whether no field is set.
func (f PersonFields) IsEmpty() bool {
	return f.Name == nil && f.Phone == nil && f.Email == nil && f.Address == nil
}

// NewPerson validates the fields and returns an unlinked person.
func NewPerson(name, phone, email, address string) (*Person, error) {
	p := &Person{
		Name:    NormalizeSpace(name),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Person) validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	if err := ValidatePhone(p.Phone); err != nil {
		return err
	}

	if err := ValidateEmail(p.Email); err != nil {
		return err
	}

	return ValidateAddress(p.Address)
}

// Identity returns the identity triple of the person.
func (p *Person) Identity() Identity {
	return Identity{Name: p.Name, Phone: p.Phone, Email: p.Email}
}

// Tags returns the person's tags in assignment order.
func (p *Person) Tags() []*Tag { return slices.Clone(p.tags) }

// Weddings returns the weddings the person is part of.
func (p *Person) Weddings() []*Wedding { return slices.Clone(p.weddings) }

// Tasks returns the tasks held by the person.
func (p *Person) Tasks() []*Task { return slices.Clone(p.tasks) }

// HasTag reports whether the person carries t.
func (p *Person) HasTag(t *Tag) bool { return slices.Contains(p.tags, t) }

// HasWedding reports whether the person is part of w.
func (p *Person) HasWedding(w *Wedding) bool { return slices.Contains(p.weddings, w) }

// HasTask reports whether the person holds t.
func (p *Person) HasTask(t *Task) bool { return slices.Contains(p.tasks, t) }

// String formats the person for user-facing messages.
func (p *Person) String() string {
	var b strings.Builder

	b.WriteString(p.Name)

	if p.Phone != "" {
		b.WriteString("; Phone: " + p.Phone)
	}

	if p.Email != "" {
		b.WriteString("; Email: " + p.Email)
	}

	if p.Address != "" {
		b.WriteString("; Address: " + p.Address)
	}

	if len(p.tags) > 0 {
		names := make([]string, len(p.tags))
		for i, t := range p.tags {
			names[i] = t.Name
		}

		b.WriteString("; Tags: " + strings.Join(names, ", "))
	}

	if len(p.weddings) > 0 {
		names := make([]string, len(p.weddings))
		for i, w := range p.weddings {
			names[i] = w.Name
		}

		b.WriteString("; Weddings: " + strings.Join(names, ", "))
	}

	return b.String()
}

func removePtr[T any](s []*T, v *T) []*T {
	return slices.DeleteFunc(s, func(e *T) bool { return e == v })
}
