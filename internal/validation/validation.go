package validation

import (
	"strings"
)

// FieldError is one (field, violation) pair.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every failing field so callers can report them all at
// once instead of stopping at the first.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + " " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// OrNil returns the collected errors as an error value, or nil when every
// check passed. A typed nil slice must not escape as a non-nil error.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e *Errors) require(field string, ok bool, message string) {
	if !ok {
		*e = append(*e, FieldError{Field: field, Message: message})
	}
}
