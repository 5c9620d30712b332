package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrEmptyRequestBody:      http.StatusBadRequest,
	ErrInvalidRequestBody:    http.StatusBadRequest,
	ErrInvalidQueryParameter: http.StatusBadRequest,
	ErrInvalidArticleID:      http.StatusNotFound,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrNoSession:               http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotArticleOwner:         http.StatusForbidden,
	service.ErrInvalidID:               http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// toFault classifies err for the error renderer. Faults pass through,
// field errors become validation faults and known sentinels get their
// status with the sentinel text as the client message.
func toFault(err error) error {
	if err == nil {
		return nil
	}

	var f *fault.Fault
	if errors.As(err, &f) {
		return f
	}

	var fieldErrors validators.FieldErrors
	if errors.As(err, &fieldErrors) {
		return fault.Validation(fieldErrors.First()).WithErr(err)
	}

	status, target := statusFromError(err)
	if status >= http.StatusInternalServerError || target == nil {
		return fault.Internal(err)
	}
	return fault.New(fault.KindOf(status), target.Error()).WithErr(err)
}
