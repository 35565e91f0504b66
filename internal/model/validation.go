package model

import (
	"sort"
	"strings"
)

// ValidationErrors maps a form field to the message shown under it
type ValidationErrors map[string]string

// Error joins all messages in field order so the output is deterministic
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message for field, or "" when the field is valid
func (v ValidationErrors) Field(field string) string {
	return v[field]
}

// OrNil returns nil for an empty set so callers can `return errs.OrNil()`
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
