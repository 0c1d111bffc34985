package model

import "strings"

// Tag is a label that can be attached to persons. The count tracks how many
// persons carry the tag.
type Tag struct {
	Name  string
	count int
}

// NewTag validates name and returns an unused tag.
func NewTag(name string) (*Tag, error) {
	name = NormalizeSpace(name)
	if err := ValidateTagName(name); err != nil {
		return nil, err
	}

	return &Tag{Name: name}, nil
}

// Count returns the number of persons carrying the tag.
func (t *Tag) Count() int { return t.count }

// SameName reports whether the tag is named name, ignoring case.
func (t *Tag) SameName(name string) bool {
	return strings.EqualFold(t.Name, NormalizeSpace(name))
}

func (t *Tag) String() string { return t.Name }
