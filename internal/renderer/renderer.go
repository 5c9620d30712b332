// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package renderer converts failures into responses in the negotiated
// format. It is the single place where errors leave the application.
package renderer

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/format"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/response"
)

// Messages shown in place of internal error details outside debug mode.
const (
	InternalMessage     = "There was an error at the server."
	InternalTextMessage = "An internal server error occurred."
)

// Response is a fully prepared error response returned by an ErrorAction.
type Response struct {
	Status int
	Header http.Header
	Data   any
}

// ErrorAction overrides the default rendering. Returning a *Response
// writes it verbatim; any other value becomes the response body.
type ErrorAction func(r *http.Request, f *fault.Fault) any

// ErrorHandler renders failures.
type ErrorHandler struct {
	// Debug exposes error chains and stack traces.
	Debug bool

	// ErrorAction, when set, replaces the format-specific rendering.
	ErrorAction ErrorAction
}

// NewErrorHandler returns an ErrorHandler.
func NewErrorHandler(debug bool, action ErrorAction) *ErrorHandler {
	return &ErrorHandler{Debug: debug, ErrorAction: action}
}

// Render writes err to w. Output already buffered in w is discarded first.
// If w has already been sent nothing is written.
func (h *ErrorHandler) Render(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	f := fault.From(err)
	log := logger.FromRequest(r)

	if f.Status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", f.Status).Bytes("stack", f.Stack).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", f.Status).Msg("request rejected")
	}

	sender, buffered := w.(response.Sender)
	if buffered {
		if sender.Sent() {
			log.Error().Err(err).Msg("error raised after the response was sent")
			return
		}
		sender.Reset()
	}

	negotiated := format.FromContext(r.Context())
	status, body := h.build(w, r, f, negotiated)

	enc := format.MustEncoder(negotiated)
	w.Header().Set("Content-Type", enc.ContentType())
	w.Header().Del("Content-Length")
	w.WriteHeader(status)

	if encErr := enc.Encode(w, body); encErr != nil {
		log.Err(encErr).Msg("failed to encode error response")
	}
	if buffered {
		if sendErr := sender.Send(); sendErr != nil {
			log.Err(sendErr).Msg("failed to send error response")
		}
	}
}

func (h *ErrorHandler) build(w http.ResponseWriter, r *http.Request, f *fault.Fault, negotiated format.Format) (int, any) {
	if h.ErrorAction != nil {
		result := h.ErrorAction(r, f)
		if res, ok := result.(*Response); ok {
			for name, values := range res.Header {
				for _, v := range values {
					w.Header().Add(name, v)
				}
			}
			status := res.Status
			if status == 0 {
				status = f.Status
			}
			return status, res.Data
		}
		return f.Status, result
	}

	switch negotiated {
	case format.HTML:
		if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
			return f.Status, "<pre>" + html.EscapeString(h.String(f)) + "</pre>"
		}
		return f.Status, h.page(f)
	case format.Raw:
		return f.Status, h.String(f)
	default:
		return f.Status, h.Envelope(f)
	}
}

// Envelope converts f into the failure envelope.
func (h *ErrorHandler) Envelope(f *fault.Fault) any {
	message := f.Message
	if !f.IsUser() {
		if h.Debug {
			message = f.Error()
		} else {
			message = InternalMessage
		}
	}

	switch {
	case f.Kind == fault.KindValidation:
		return response.Fail(f.Status, message, f.Fields)
	case h.Debug:
		return response.Fail(f.Status, message, h.details(f))
	default:
		return response.Fail(f.Status, message)
	}
}

func (h *ErrorHandler) details(f *fault.Fault) map[string]any {
	typ := fmt.Sprintf("%T", f)
	if f.Err != nil {
		typ = fmt.Sprintf("%T", f.Err)
	}

	return map[string]any{
		"name":       f.Name(),
		"type":       typ,
		"stackTrace": f.StackLines(),
		"previous":   f.Chain(),
	}
}

// String returns the plain text form of f.
func (h *ErrorHandler) String(f *fault.Fault) string {
	if f.IsUser() {
		return f.Name() + ": " + f.Message
	}
	if !h.Debug {
		return InternalTextMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d) with message '%s'", f.Name(), f.Status, f.Error())
	for _, cause := range f.Chain() {
		fmt.Fprintf(&b, "\n\nCaused by: %s", cause)
	}
	if len(f.Stack) > 0 {
		b.WriteString("\n\nStack trace:\n")
		b.Write(bytes.TrimRight(f.Stack, "\n"))
	}
	return b.String()
}
