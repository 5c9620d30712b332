// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads and
// resources.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ErrorCollector: resources that keep their own validation errors
//     (models.ValidationErrors) receive the field errors directly, so the
//     serializer can render them.
//
// This package decouples validation logic from transport layers and storage.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// ErrorCollector is implemented by resources that record their own field
// errors.
type ErrorCollector interface {
	AddErrors(map[string][]string)
	ClearErrors()
}
