package validators

import (
	"errors"
	"sort"
	"strings"

	"github.com/MKhiriev/go-rest-kit/models"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnsupportedType  = errors.New("unsupported type for validation")
)

// FieldErrors maps JSON field names to their validation messages.
type FieldErrors map[string][]string

// Error lists the first message of every field.
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e.First() {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap makes FieldErrors match ErrValidationFailed.
func (e FieldErrors) Unwrap() error {
	return ErrValidationFailed
}

// First returns the first message of every field sorted by field name.
func (e FieldErrors) First() []models.FieldError {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]models.FieldError, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			out = append(out, models.FieldError{Field: field, Message: msgs[0]})
		}
	}
	return out
}
