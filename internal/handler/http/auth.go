package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/models"
)

// authResult is returned by the login and registration actions.
type authResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

func (h *Handler) register(ac *ActionContext) (any, error) {
	ctx := ac.Context()
	log := logger.FromContext(ctx)

	var credentials models.Credentials
	if err := ac.Bind(&credentials); err != nil {
		log.Err(err).Msg("invalid registration payload")
		return nil, err
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return nil, err
	}

	ac.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	ac.SetStatus(http.StatusCreated)
	return &authResult{Token: token.SignedString, ExpiresAt: token.ExpiresAt, User: &registeredUser}, nil
}

func (h *Handler) login(ac *ActionContext) (any, error) {
	ctx := ac.Context()
	log := logger.FromContext(ctx)

	var credentials models.Credentials
	if err := ac.Bind(&credentials); err != nil {
		log.Err(err).Msg("invalid login payload")
		return nil, err
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return nil, err
	}

	ac.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return &authResult{Token: token.SignedString, ExpiresAt: token.ExpiresAt, User: &foundUser}, nil
}

func (h *Handler) me(ac *ActionContext) (any, error) {
	user, err := h.services.AuthService.GetUser(ac.Context(), ac.Identity().UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// sessionLogin is login for the web controller: the token travels in the
// session cookie instead of the response body.
func (h *Handler) sessionLogin(ac *ActionContext) (any, error) {
	ctx := ac.Context()

	var credentials models.Credentials
	if err := ac.Bind(&credentials); err != nil {
		return nil, err
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		return nil, err
	}

	ac.SetCookie(h.services.AuthService.SessionCookie(token))
	return &foundUser, nil
}

func (h *Handler) sessionLogout(ac *ActionContext) (any, error) {
	ac.SetCookie(h.services.AuthService.ExpiredSessionCookie())
	ac.SetStatus(http.StatusNoContent)
	return nil, nil
}
