package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the only accepted date format for tasks.
const DateLayout = "2006-01-02"

// MaxTagNameLength bounds tag names.
const MaxTagNameLength = 50

const (
	nameConstraint = "names should start with a letter or digit and only contain letters, digits, " +
		"spaces and ' - . , / @ ( )"
	phoneConstraint   = "phone numbers should only contain digits (optionally a leading +) and be at least 3 digits long"
	emailConstraint   = "emails should be of the format local-part@domain"
	addressConstraint = "addresses can take any value but should not be blank"
	tagConstraint     = "tag names should start with a letter or digit, only contain letters, digits and spaces " +
		"and be at most 50 characters long"
	weddingConstraint = "wedding names should start with a letter or digit and only contain letters, digits, " +
		"spaces and ' - &"
	descriptionConstraint = "task descriptions should not be blank"
)

var (
	nameRe    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '\-.,/@()]*$`)
	phoneRe   = regexp.MustCompile(`^\+?[0-9]{3,}$`)
	emailRe   = regexp.MustCompile(`^[\p{L}\p{N}]+([+_.\-][\p{L}\p{N}]+)*@[\p{L}\p{N}]+([.\-][\p{L}\p{N}]+)*$`)
	tagRe     = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	weddingRe = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '\-&]*$`)
)

// NormalizeSpace trims the value and collapses inner whitespace runs.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValidateName checks a person name.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return fieldError("name", name, nameConstraint)
	}

	return nil
}

// ValidatePhone checks a phone number. Empty means "not given" and is allowed.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	if !phoneRe.MatchString(phone) {
		return fieldError("phone", phone, phoneConstraint)
	}

	return nil
}

// ValidateEmail checks an email address. Empty is allowed.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	if !emailRe.MatchString(email) {
		return fieldError("email", email, emailConstraint)
	}

	// The last domain label must be at least 2 characters long.
	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	labels := strings.FieldsFunc(domain, func(r rune) bool { return r == '.' })

	if len([]rune(labels[len(labels)-1])) < 2 {
		return fieldError("email", email, emailConstraint)
	}

	return nil
}

// ValidateAddress checks an address. Empty is allowed, whitespace-only is not.
func ValidateAddress(address string) error {
	if address != "" && strings.TrimSpace(address) == "" {
		return fieldError("address", address, addressConstraint)
	}

	return nil
}

// ValidateTagName checks a tag name.
func ValidateTagName(name string) error {
	if len([]rune(name)) > MaxTagNameLength || !tagRe.MatchString(name) {
		return fieldError("tag", name, tagConstraint)
	}

	return nil
}

// ValidateWeddingName checks a wedding name.
func ValidateWeddingName(name string) error {
	if !weddingRe.MatchString(name) {
		return fieldError("wedding", name, weddingConstraint)
	}

	return nil
}

// ParseDate parses a yyyy-MM-dd date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}

	return t, nil
}
