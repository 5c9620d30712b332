package models

import "sort"

// ValidationErrors collects per-field validation messages in insertion order.
//
// It is meant to be embedded into resources so that they satisfy the
// serializer's Validatable capability:
//
//	type Article struct {
//		models.ValidationErrors `json:"-"`
//		...
//	}
type ValidationErrors struct {
	errs   map[string][]string
	fields []string
}

// AddError appends message to the list of errors of field.
func (v *ValidationErrors) AddError(field, message string) {
	if v.errs == nil {
		v.errs = make(map[string][]string)
	}
	if _, ok := v.errs[field]; !ok {
		v.fields = append(v.fields, field)
	}
	v.errs[field] = append(v.errs[field], message)
}

// AddErrors merges a field → messages mapping. Fields are added in sorted
// order so that the result does not depend on map iteration.
func (v *ValidationErrors) AddErrors(errs map[string][]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		for _, msg := range errs[field] {
			v.AddError(field, msg)
		}
	}
}

// HasErrors reports whether at least one error was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.fields) > 0
}

// Errors returns all recorded messages of field.
func (v *ValidationErrors) Errors(field string) []string {
	return v.errs[field]
}

// FirstErrors returns the first message of every field that has errors.
func (v *ValidationErrors) FirstErrors() map[string]string {
	out := make(map[string]string, len(v.fields))
	for _, field := range v.fields {
		out[field] = v.errs[field][0]
	}
	return out
}

// ErrorFields returns the names of fields with errors in insertion order.
func (v *ValidationErrors) ErrorFields() []string {
	return append([]string(nil), v.fields...)
}

// ClearErrors drops every recorded error.
func (v *ValidationErrors) ClearErrors() {
	v.errs = nil
	v.fields = nil
}
