package access

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ann = models.Identity{UserID: 7, Login: "ann"}

type bearerStub struct {
	calls int
	err   error
}

func (b *bearerStub) AuthenticateBearer(_ context.Context, token string) (models.Identity, error) {
	b.calls++
	if b.err != nil {
		return models.Identity{}, b.err
	}
	if token != "good" {
		return models.Identity{}, errors.New("invalid token")
	}
	return ann, nil
}

type sessionStub struct {
	id  models.Identity
	err error
}

func (s sessionStub) AuthenticateSession(*http.Request) (models.Identity, error) {
	return s.id, s.err
}

func assertFault(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var f *fault.Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, status, f.Status)
}

func TestGate_SessionMode(t *testing.T) {
	tests := []struct {
		name       string
		session    sessionStub
		action     string
		wantStatus int
		wantID     models.Identity
	}{
		{name: "guest may view", session: sessionStub{err: errors.New("no cookie")}, action: "view"},
		{name: "guest may not update", session: sessionStub{err: errors.New("no cookie")}, action: "update", wantStatus: http.StatusUnauthorized},
		{name: "authenticated may view", session: sessionStub{id: ann}, action: "view", wantID: ann},
		{name: "authenticated may update", session: sessionStub{id: ann}, action: "update", wantID: ann},
		{name: "broken session is a guest", session: sessionStub{id: ann, err: errors.New("bad signature")}, action: "update", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(Options{Optional: []string{"view"}}, nil, tt.session)
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			got, err := g.Authorize(r, tt.action)

			if tt.wantStatus != 0 {
				assertFault(t, err, tt.wantStatus)
				return
			}
			require.NoError(t, err)
			id, ok := utils.IdentityFromContext(got.Context())
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestGate_SessionRules(t *testing.T) {
	g := NewGate(Options{Optional: []string{"view", "index"}}, nil, nil)

	assert.Equal(t, []Rule{
		{Allow: true, Roles: []Role{RoleAuthenticated}},
		{Actions: []string{"view", "index"}, Allow: true, Roles: []Role{RoleGuest}},
	}, g.rules)

	assert.Len(t, NewGate(Options{}, nil, nil).rules, 1)
	assert.Empty(t, NewGate(Options{EnableBearerAuth: true}, nil, nil).rules)
}

func TestGate_SessionDenyRule(t *testing.T) {
	g := NewGate(Options{}, nil, sessionStub{id: ann})
	g.rules = append([]Rule{{Actions: []string{"delete"}, Allow: false, Roles: []Role{RoleAuthenticated}}}, g.rules...)

	_, err := g.Authorize(httptest.NewRequest(http.MethodGet, "/", nil), "delete")
	assertFault(t, err, http.StatusForbidden)

	_, err = g.Authorize(httptest.NewRequest(http.MethodGet, "/", nil), "view")
	assert.NoError(t, err)
}

func TestGate_BearerMode(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		action     string
		wantStatus int
		wantID     models.Identity
		wantCalls  int
	}{
		{name: "optional action without credential", action: "login"},
		{name: "optional action ignores credential", header: "Bearer good", action: "login"},
		{name: "missing credential", action: "view", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Basic abc", action: "view", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", action: "view", wantStatus: http.StatusUnauthorized, wantCalls: 1},
		{name: "valid token", header: "Bearer good", action: "view", wantID: ann, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearer := &bearerStub{}
			g := NewGate(Options{EnableBearerAuth: true, Optional: []string{"login"}}, bearer, nil)
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			got, err := g.Authorize(r, tt.action)

			assert.Equal(t, tt.wantCalls, bearer.calls)
			if tt.wantStatus != 0 {
				assertFault(t, err, tt.wantStatus)
				return
			}
			require.NoError(t, err)
			id, _ := utils.IdentityFromContext(got.Context())
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, Check(ctx, nil, "view", "1", nil, nil))
	assert.NoError(t, Check(ctx, AllowAll, "view", "1", nil, nil))

	denied := AccessCheckerFunc(func(_ context.Context, action, id string, _ any, _ map[string]string) error {
		return errors.New("not the owner")
	})
	assertFault(t, Check(ctx, denied, "update", "1", nil, nil), http.StatusForbidden)

	notFound := AccessCheckerFunc(func(context.Context, string, string, any, map[string]string) error {
		return fault.NotFound("")
	})
	assertFault(t, Check(ctx, notFound, "update", "1", nil, nil), http.StatusNotFound)
}

func TestCheck_ResourceIsPassedThrough(t *testing.T) {
	resource := &models.Article{ID: 3}

	var gotResource any
	var gotID string
	checker := AccessCheckerFunc(func(_ context.Context, _ string, id string, r any, _ map[string]string) error {
		gotID, gotResource = id, r
		return nil
	})

	require.NoError(t, Check(context.Background(), checker, "update", "3", resource, map[string]string{"k": "v"}))
	assert.Same(t, resource, gotResource)
	assert.Equal(t, "3", gotID)
}
