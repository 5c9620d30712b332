// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while decoding request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyRequestBody is returned when an action expects a payload but
	// the request carries none.
	ErrEmptyRequestBody = errors.New("request body is empty")

	// ErrInvalidRequestBody is returned when the payload cannot be decoded
	// in the declared content type.
	ErrInvalidRequestBody = errors.New("request body is invalid")

	// ErrInvalidQueryParameter is returned when a filter parameter cannot
	// be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrInvalidArticleID is returned when the id path parameter is not a
	// positive integer.
	ErrInvalidArticleID = errors.New("invalid article id")
)
