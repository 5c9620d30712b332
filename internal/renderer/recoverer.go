package renderer

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
)

// Recoverer turns panics raised by next into internal faults rendered by h.
// Controllers recover their own actions in the negotiated format, so this
// only catches panics raised outside of them.
func (h *ErrorHandler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.Render(w, r, PanicFault(rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// PanicFault converts a recovered value into an internal fault carrying
// the current stack. http.ErrAbortHandler is re-raised so the server
// aborts the connection.
func PanicFault(rec any) *fault.Fault {
	if rec == http.ErrAbortHandler {
		panic(rec)
	}

	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	return fault.Internal(fmt.Errorf("panic: %w", err)).WithStack(debug.Stack())
}
