package adapter

import "errors"

var (
	// ErrUnexpectedResponse is returned when a response body is not a
	// decodable envelope.
	ErrUnexpectedResponse = errors.New("unexpected response")

	ErrInvalidBaseURL = errors.New("invalid base url")
)
