package fault

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-kit/models"
)

// Validation reports invalid input. fields lists the first error per field.
func Validation(fields []models.FieldError) *Fault {
	f := New(KindValidation, ValidationMessage)
	f.Fields = fields
	return f
}

// BadRequest reports a malformed request.
func BadRequest(message string) *Fault {
	return New(KindBadRequest, message)
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(message string) *Fault {
	if message == "" {
		message = "Your request was made with invalid credentials."
	}
	return New(KindUnauthorized, message)
}

// Forbidden reports a denied authorization check.
func Forbidden(message string) *Fault {
	if message == "" {
		message = "You are not allowed to perform this action."
	}
	return New(KindForbidden, message)
}

// NotFound reports a missing resource.
func NotFound(message string) *Fault {
	return New(KindNotFound, message)
}

// MethodNotAllowed reports a verb the action does not accept.
func MethodNotAllowed(method string, allowed []string) *Fault {
	return New(KindMethodNotAllowed,
		"Method Not Allowed. This URL can only handle the following request methods: "+strings.Join(allowed, ", ")+".")
}

// NotAcceptable reports that no supported response format matches Accept.
func NotAcceptable(message string) *Fault {
	if message == "" {
		message = "None of your requested content types is supported."
	}
	return New(KindNotAcceptable, message)
}

// Conflict reports a state conflict such as a duplicate key.
func Conflict(message string) *Fault {
	return New(KindConflict, message)
}

// TooManyRequests reports an exceeded rate limit.
func TooManyRequests() *Fault {
	return New(KindTooManyRequests, "Rate limit exceeded.")
}

// Internal wraps an unexpected error.
func Internal(err error) *Fault {
	return New(KindInternal, http.StatusText(http.StatusInternalServerError)).WithErr(err)
}

// UnsupportedMediaType reports a request body the server cannot decode.
func UnsupportedMediaType(contentType string) *Fault {
	return New(KindUnsupportedMediaType, "Unsupported content type \""+contentType+"\".")
}
