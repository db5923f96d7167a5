// Package form validates user-entered field values before they reach a
// usecase. Schemas are declared by the screen or command that owns the form.
package form

import (
	"fmt"
	"net/mail"
	"sort"
	"strconv"
	"strings"

	apperrors "sabalabor/internal/platform/errors"
)

type Values map[string]string

// Rule returns a message when value is rejected. values gives access to
// sibling fields.
type Rule func(value string, values Values) string

type Field struct {
	Name  string
	Rules []Rule
}

type Schema []Field

// Errors maps a field name to its first failing message.
type Errors map[string]string

func (e Errors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e[name])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e Errors) Unwrap() error { return apperrors.ErrInvalidInput }

// Validate returns nil or an Errors value.
func (s Schema) Validate(values Values) error {
	errs := Errors{}
	for _, field := range s {
		value := values[field.Name]
		for _, rule := range field.Rules {
			if msg := rule(value, values); msg != "" {
				errs[field.Name] = msg
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Required() Rule {
	return func(value string, _ Values) string {
		if strings.TrimSpace(value) == "" {
			return "Required"
		}
		return ""
	}
}

func Email() Rule {
	return func(value string, _ Values) string {
		addr, err := mail.ParseAddress(strings.TrimSpace(value))
		if err != nil || addr.Address != strings.TrimSpace(value) {
			return "Invalid email"
		}
		return ""
	}
}

func MinLen(n int) Rule {
	return func(value string, _ Values) string {
		if len(value) < n {
			return "Too Short!"
		}
		return ""
	}
}

func Matches(other, msg string) Rule {
	return func(value string, values Values) string {
		if value != values[other] {
			return msg
		}
		return ""
	}
}

func OneOf(options ...string) Rule {
	return func(value string, _ Values) string {
		for _, o := range options {
			if value == o {
				return ""
			}
		}
		return fmt.Sprintf("Must be one of %s", strings.Join(options, ", "))
	}
}

func Positive() Rule {
	return func(value string, _ Values) string {
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return "Must be a number"
		}
		if f <= 0 {
			return "Must be positive"
		}
		return ""
	}
}
