package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFault(t *testing.T) {
	forbidden := fault.Forbidden("nope")

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wrapsCause  bool
	}{
		{name: "fault passes through", err: fmt.Errorf("wrapped: %w", forbidden), wantStatus: http.StatusForbidden, wantMessage: "nope"},
		{name: "field errors", err: validators.FieldErrors{"title": {"title is required"}}, wantStatus: http.StatusUnprocessableEntity, wantMessage: fault.ValidationMessage},
		{name: "bad body", err: fmt.Errorf("%w: eof", ErrInvalidRequestBody), wantStatus: http.StatusBadRequest, wantMessage: ErrInvalidRequestBody.Error(), wrapsCause: true},
		{name: "wrong credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMessage: service.ErrInvalidCredentials.Error(), wrapsCause: true},
		{name: "not the owner", err: service.ErrNotArticleOwner, wantStatus: http.StatusForbidden, wantMessage: service.ErrNotArticleOwner.Error(), wrapsCause: true},
		{name: "missing row", err: fmt.Errorf("article search failed: %w", store.ErrNotFound), wantStatus: http.StatusNotFound, wantMessage: store.ErrNotFound.Error(), wrapsCause: true},
		{name: "duplicate", err: store.ErrAlreadyExists, wantStatus: http.StatusConflict, wantMessage: store.ErrAlreadyExists.Error(), wrapsCause: true},
		{name: "query failure is hidden", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wrapsCause: true},
		{name: "unknown error is hidden", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wrapsCause: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fault.From(toFault(tt.err))
			require.NotNil(t, f)

			assert.Equal(t, tt.wantStatus, f.Status)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, f.Message)
			}
			if tt.wrapsCause {
				assert.ErrorIs(t, f, tt.err)
			}
		})
	}
}

func TestToFault_FieldErrorsAreListed(t *testing.T) {
	f := fault.From(toFault(validators.FieldErrors{"title": {"title is required"}}))

	require.Len(t, f.Fields, 1)
	assert.Equal(t, "title", f.Fields[0].Field)
}

func TestToFault_Nil(t *testing.T) {
	assert.NoError(t, toFault(nil))
}
