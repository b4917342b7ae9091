package auth

import (
	"sort"
	"strings"
)

// Form field identifiers used as FieldErrors keys. The UI renders each
// message inline next to its field.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldConfirm  = "confirm"
)

// FieldErrors maps a form field to its validation message. It is the
// only error the auth flow produces.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "invalid form"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for a field, or "" when the field is fine.
func (e FieldErrors) Field(name string) string {
	return e[name]
}
