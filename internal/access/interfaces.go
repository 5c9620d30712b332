package access

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-rest-kit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/access_mock.go -package=mock

// BearerAuthenticator validates bearer credentials.
type BearerAuthenticator interface {
	AuthenticateBearer(ctx context.Context, token string) (models.Identity, error)
}

// SessionAuthenticator resolves the principal of a cookie session. A
// request without a valid session yields an error.
type SessionAuthenticator interface {
	AuthenticateSession(r *http.Request) (models.Identity, error)
}

// AccessChecker decides whether the principal in ctx may run action on a
// resource. resource is nil when the action has not loaded it; id is then
// the lookup key. A non-nil error denies access.
type AccessChecker interface {
	CheckAccess(ctx context.Context, action, id string, resource any, params map[string]string) error
}

// AccessCheckerFunc adapts a function to AccessChecker.
type AccessCheckerFunc func(ctx context.Context, action, id string, resource any, params map[string]string) error

// CheckAccess calls f.
func (f AccessCheckerFunc) CheckAccess(ctx context.Context, action, id string, resource any, params map[string]string) error {
	return f(ctx, action, id, resource, params)
}

// AllowAll grants every action.
var AllowAll AccessChecker = AccessCheckerFunc(func(context.Context, string, string, any, map[string]string) error {
	return nil
})
