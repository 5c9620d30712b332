// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the wire-level wrapper of every API response.
//
// A successful response always carries Status == 0 and an empty Error.
// Any non-zero Status is accompanied by a human-readable Error. On
// validation failure Data holds the []FieldError list instead of the
// resource itself.
type Envelope struct {
	// Status is 0 on success; otherwise it holds the failure code
	// (by convention the HTTP status code of the fault).
	Status int `json:"status" yaml:"status" cbor:"status"`

	// Error is the human-readable failure description. Empty on success.
	Error string `json:"error" yaml:"error" cbor:"error"`

	// Data is the payload. It is nil when nothing is returned.
	Data any `json:"data" yaml:"data" cbor:"data"`
}

// FieldError describes the first validation error of a single field.
type FieldError struct {
	Field   string `json:"field" yaml:"field" cbor:"field"`
	Message string `json:"message" yaml:"message" cbor:"message"`
}

// PageInfo is the pagination metadata attached to collection responses.
//
// CurrentPage is 1-based. Data sources count pages from zero; the
// conversion happens when PageInfo is built.
type PageInfo struct {
	TotalCount  int `json:"totalCount" yaml:"totalCount" cbor:"totalCount"`
	PageCount   int `json:"pageCount" yaml:"pageCount" cbor:"pageCount"`
	CurrentPage int `json:"currentPage" yaml:"currentPage" cbor:"currentPage"`
	PerPage     int `json:"perPage" yaml:"perPage" cbor:"perPage"`
}
