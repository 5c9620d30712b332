// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package response

import (
	"bytes"
	"errors"
	"net/http"
)

// ErrAlreadySent is returned by [Writer.Send] when the response has already
// been transmitted.
var ErrAlreadySent = errors.New("response already sent")

// Sender is implemented by response writers that hold the response back
// until it is explicitly sent. The error renderer uses it to drop partially
// written output and to guarantee a single transmission.
type Sender interface {
	Reset()
	Send() error
	Sent() bool
}

// Writer is a buffering decorator around [http.ResponseWriter].
//
// Status and body are kept in memory until [Writer.Send] is called. Until
// then the status may be changed freely and the body discarded with
// [Writer.Reset]. Headers go straight to the underlying writer's header map.
type Writer struct {
	http.ResponseWriter

	status int
	body   bytes.Buffer
	sent   bool
}

// NewWriter wraps w. If w already is a *Writer it is returned unchanged.
func NewWriter(w http.ResponseWriter) *Writer {
	if rw, ok := w.(*Writer); ok {
		return rw
	}
	return &Writer{ResponseWriter: w}
}

// WriteHeader records the status code. Unlike a plain ResponseWriter the
// last call wins, since nothing has been sent yet.
func (w *Writer) WriteHeader(statusCode int) {
	if w.sent {
		return
	}
	w.status = statusCode
}

// SetStatus is an alias of WriteHeader used by the serializer.
func (w *Writer) SetStatus(statusCode int) {
	w.WriteHeader(statusCode)
}

// Write appends b to the buffered body.
func (w *Writer) Write(b []byte) (int, error) {
	if w.sent {
		return 0, ErrAlreadySent
	}
	return w.body.Write(b)
}

// Status returns the pending (or sent) status code; 200 if none was set.
func (w *Writer) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Body returns the buffered body.
func (w *Writer) Body() []byte {
	return w.body.Bytes()
}

// Reset discards the buffered body and the pending status.
func (w *Writer) Reset() {
	if w.sent {
		return
	}
	w.status = 0
	w.body.Reset()
}

// Sent reports whether Send has already transmitted the response.
func (w *Writer) Sent() bool {
	return w.sent
}

// Send writes the pending status and the buffered body to the underlying
// writer. It may be called only once.
func (w *Writer) Send() error {
	if w.sent {
		return ErrAlreadySent
	}
	w.sent = true

	w.ResponseWriter.WriteHeader(w.Status())
	if w.body.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.body.Bytes())
	return err
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (w *Writer) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
