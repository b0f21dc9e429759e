// Package form defines one statically typed input struct per mutation,
// bound from submitted form fields and validated before anything touches
// the repository layer. Validation returns a list of field errors rather
// than mutating shared state, so handlers can flash them back to the
// form.
package form

import "strings"

// TimeLayout is the wire format for show start times submitted by the
// booking form.
const TimeLayout = "2006-01-02 15:04:05"

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// JoinErrors renders field errors as one flash-friendly line.
func JoinErrors(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// NormalizePhone strips every non-digit character so phone numbers are
// stored digits-only.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// required appends a FieldError when the trimmed value is empty.
func required(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: "is required"})
	}
	return errs
}
