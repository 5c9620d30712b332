// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/format"
	"github.com/go-chi/chi/v5"
)

// standardMethods are probed when building the Allow header.
var standardMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with a 405 fault rendered in the negotiated format and an
// Allow header listing every method the matched path is registered for.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(h.CheckHTTPMethod(router))
func (h *Handler) CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	negotiator := h.negotiator()

	return func(w http.ResponseWriter, r *http.Request) {
		if f, err := negotiator.Negotiate(r); err == nil {
			r = r.WithContext(format.WithFormat(r.Context(), f))
		}

		var allowed []string
		for _, method := range standardMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		h.errors.Render(w, r, fault.MethodNotAllowed(r.Method, allowed))
	}
}

// notFound renders a 404 fault for unmatched paths.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if f, err := h.negotiator().Negotiate(r); err == nil {
		r = r.WithContext(format.WithFormat(r.Context(), f))
	}
	h.errors.Render(w, r, fault.NotFound("Page not found."))
}
