// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/service"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	aliceUser = models.User{UserID: 1, Login: "alice", Name: "Alice"}

	aliceToken = models.Token{
		SignedString: "signed.jwt.token",
		ExpiresAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UserID:       1,
		Login:        "alice",
	}

	aliceCredentials = models.Credentials{Login: "alice", Password: "correct-horse"}
)

const credentialsBody = `{"login":"alice","password":"correct-horse"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *testServices)
		wantStatus int
		wantError  string
	}{
		{
			name: "success",
			body: credentialsBody,
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(anyCtx, aliceCredentials).Return(aliceUser, nil)
				m.auth.EXPECT().CreateToken(anyCtx, aliceUser).Return(aliceToken, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid JSON",
			body:       `{"login":`,
			setup:      func(*testServices) {},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrInvalidRequestBody.Error(),
		},
		{
			name: "validation failure",
			body: `{"login":"al","password":"x"}`,
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(anyCtx, anyArg).
					Return(models.User{}, validators.FieldErrors{"password": {"password is too short"}})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Data Validation Failed.",
		},
		{
			name: "login taken",
			body: credentialsBody,
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(anyCtx, aliceCredentials).
					Return(models.User{}, fmt.Errorf("user creation failed: %w", store.ErrAlreadyExists))
			},
			wantStatus: http.StatusConflict,
			wantError:  store.ErrAlreadyExists.Error(),
		},
		{
			name: "token creation failure",
			body: credentialsBody,
			setup: func(m *testServices) {
				m.auth.EXPECT().RegisterUser(anyCtx, aliceCredentials).Return(aliceUser, nil)
				m.auth.EXPECT().CreateToken(anyCtx, aliceUser).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			tt.setup(mocks)

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/auth/register", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decodeEnvelope(t, rec)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, env.Error)
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Bearer "+aliceToken.SignedString, rec.Header().Get("Authorization"))

				data := decodeData[map[string]any](t, env)
				assert.Equal(t, aliceToken.SignedString, data["token"])
				user, ok := data["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "alice", user["login"])
				assert.NotContains(t, user, "passwordHash")
			}
		})
	}
}

func TestRegister_ValidationFieldsAreListed(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().RegisterUser(anyCtx, anyArg).Return(models.User{}, validators.FieldErrors{
		"password": {"password is too short", "second"},
		"login":    {"login is too short"},
	})

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/auth/register", `{}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []models.FieldError{
		{Field: "login", Message: "login is too short"},
		{Field: "password", Message: "password is too short"},
	}, decodeData[[]models.FieldError](t, decodeEnvelope(t, rec)))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *testServices)
		wantStatus int
	}{
		{
			name: "success",
			body: credentialsBody,
			setup: func(m *testServices) {
				m.auth.EXPECT().Login(anyCtx, aliceCredentials).Return(aliceUser, nil)
				m.auth.EXPECT().CreateToken(anyCtx, aliceUser).Return(aliceToken, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: credentialsBody,
			setup: func(m *testServices) {
				m.auth.EXPECT().Login(anyCtx, aliceCredentials).Return(models.User{}, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty body",
			setup:      func(*testServices) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t)
			tt.setup(mocks)

			rec := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "Bearer "+aliceToken.SignedString, rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin_YAMLBody(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().Login(anyCtx, aliceCredentials).Return(aliceUser, nil)
	mocks.auth.EXPECT().CreateToken(anyCtx, aliceUser).Return(aliceToken, nil)

	rec := doRequest(t, h.Init(), http.MethodPost, "/api/auth/login", "login: alice\npassword: correct-horse\n",
		map[string]string{"Content-Type": "application/yaml"})

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.auth.EXPECT().AuthenticateBearer(anyCtx, "tok").Return(alice, nil)
		mocks.auth.EXPECT().GetUser(anyCtx, alice.UserID).Return(aliceUser, nil)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/auth/me", "", map[string]string{"Authorization": "Bearer tok"})

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData[map[string]any](t, decodeEnvelope(t, rec))
		assert.Equal(t, "Alice", data["name"])
	})

	t.Run("expired token", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.auth.EXPECT().AuthenticateBearer(anyCtx, "old").Return(models.Identity{}, service.ErrTokenIsExpiredOrInvalid)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/auth/me", "", map[string]string{"Authorization": "Bearer old"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, `Bearer realm="api"`, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("malformed header", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(t, h.Init(), http.MethodGet, "/api/auth/me", "", map[string]string{"Authorization": "Basic abc"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// ─────────────────────────────────────────────
// web session
// ─────────────────────────────────────────────

func TestSessionLogin_SetsCookie(t *testing.T) {
	h, mocks := newTestHandler(t)
	cookie := &http.Cookie{Name: "rest_kit_session", Value: aliceToken.SignedString, Path: "/", HttpOnly: true}

	mocks.auth.EXPECT().AuthenticateSession(anyArg).Return(models.Identity{}, service.ErrNoSession)
	mocks.auth.EXPECT().Login(anyCtx, aliceCredentials).Return(aliceUser, nil)
	mocks.auth.EXPECT().CreateToken(anyCtx, aliceUser).Return(aliceToken, nil)
	mocks.auth.EXPECT().SessionCookie(aliceToken).Return(cookie)

	rec := doRequest(t, h.Init(), http.MethodPost, "/web/auth/login", "login=alice&password=correct-horse", map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Accept":       "application/json",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	setCookie := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, "rest_kit_session="+aliceToken.SignedString))
	assert.Contains(t, setCookie, "HttpOnly")
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestSessionLogout(t *testing.T) {
	t.Run("guest is rejected", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.auth.EXPECT().AuthenticateSession(anyArg).Return(models.Identity{}, service.ErrNoSession)

		rec := doRequest(t, h.Init(), http.MethodPost, "/web/auth/logout", "", map[string]string{"Accept": "application/json"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Login Required", decodeEnvelope(t, rec).Error)
	})

	t.Run("session is cleared", func(t *testing.T) {
		h, mocks := newTestHandler(t)
		mocks.auth.EXPECT().AuthenticateSession(anyArg).Return(alice, nil)
		mocks.auth.EXPECT().ExpiredSessionCookie().Return(&http.Cookie{Name: "rest_kit_session", Path: "/", MaxAge: -1})

		rec := doRequest(t, h.Init(), http.MethodPost, "/web/auth/logout", "", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
		assert.Empty(t, rec.Body.String())
	})
}

func TestWebPagesDefaultToHTML(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().AuthenticateSession(anyArg).Return(models.Identity{}, service.ErrNoSession)
	mocks.articles.EXPECT().GetArticle(anyCtx, int64(3)).Return(nil, fmt.Errorf("article search failed: %w", store.ErrNotFound))

	rec := doRequest(t, h.Init(), http.MethodGet, "/web/articles/3", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<html")
}
