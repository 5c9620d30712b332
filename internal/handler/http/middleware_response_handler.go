// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// statusRecorder remembers the status code and body size written through
// it so that access logging can report them after the handler returns.
type statusRecorder struct {
	http.ResponseWriter

	status      int
	size        int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the wrapped writer to [http.ResponseController].
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Status returns the written status code; a handler that wrote nothing
// implicitly answered 200.
func (w *statusRecorder) Status() int {
	if !w.wroteHeader {
		return http.StatusOK
	}
	return w.status
}
