// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fault defines the typed failures that travel from actions and
// middleware to the error renderer. Every fault knows its HTTP status and
// whether its message is safe to show to API clients.
package fault

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-kit/models"
)

// Kind is the semantic class of a fault.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindNotAcceptable
	KindConflict
	KindTooManyRequests
	KindUnsupportedMediaType
)

var kindStatus = map[Kind]int{
	KindInternal:         http.StatusInternalServerError,
	KindBadRequest:       http.StatusBadRequest,
	KindValidation:       http.StatusUnprocessableEntity,
	KindUnauthorized:     http.StatusUnauthorized,
	KindForbidden:        http.StatusForbidden,
	KindNotFound:         http.StatusNotFound,
	KindMethodNotAllowed: http.StatusMethodNotAllowed,
	KindNotAcceptable:    http.StatusNotAcceptable,
	KindConflict:         http.StatusConflict,
	KindTooManyRequests:  http.StatusTooManyRequests,

	KindUnsupportedMediaType: http.StatusUnsupportedMediaType,
}

// Status returns the HTTP status code of the kind.
func (k Kind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind matching an HTTP status code. Unknown 4xx codes
// map to KindBadRequest, everything else to KindInternal.
func KindOf(status int) Kind {
	for kind, s := range kindStatus {
		if s == status {
			return kind
		}
	}
	if status >= 400 && status < 500 {
		return KindBadRequest
	}
	return KindInternal
}

// ValidationMessage is the message of every validation fault.
const ValidationMessage = "Data Validation Failed."

// Fault is a classified failure.
type Fault struct {
	Kind    Kind
	Status  int
	Message string

	// Fields carries per-field errors of validation faults.
	Fields []models.FieldError

	// Err is the underlying cause, if any.
	Err error

	// Stack is the goroutine stack captured when the fault was raised
	// from a panic.
	Stack []byte
}

// New builds a fault of the given kind. An empty message is replaced by
// the standard status text.
func New(kind Kind, message string) *Fault {
	status := kind.Status()
	if message == "" {
		message = http.StatusText(status)
	}
	return &Fault{Kind: kind, Status: status, Message: message}
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

// Unwrap returns the underlying cause.
func (f *Fault) Unwrap() error {
	return f.Err
}

// Name returns the short human-readable name of the fault's status,
// e.g. "Not Found".
func (f *Fault) Name() string {
	if text := http.StatusText(f.Status); text != "" {
		return text
	}
	return "Error"
}

// IsUser reports whether the message may be shown to API clients
// regardless of debug mode.
func (f *Fault) IsUser() bool {
	return f.Kind != KindInternal
}

// WithErr attaches the underlying cause and returns f.
func (f *Fault) WithErr(err error) *Fault {
	f.Err = err
	return f
}

// WithStack attaches a captured stack trace and returns f.
func (f *Fault) WithStack(stack []byte) *Fault {
	f.Stack = stack
	return f
}

// Chain returns the messages of every error wrapped by f, outermost first.
func (f *Fault) Chain() []string {
	var chain []string
	for err := f.Err; err != nil; err = errors.Unwrap(err) {
		chain = append(chain, err.Error())
	}
	return chain
}

// StackLines returns the captured stack trace split into lines.
func (f *Fault) StackLines() []string {
	if len(f.Stack) == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(string(f.Stack), "\n"), "\n")
}

// From converts any error into a fault. Faults anywhere in the chain are
// returned as is; everything else becomes an internal fault.
func From(err error) *Fault {
	if err == nil {
		return nil
	}

	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return Internal(err)
}
