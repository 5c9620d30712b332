package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-rest-kit/internal/config"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/store"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/internal/validators"
	"github.com/MKhiriev/go-rest-kit/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT
// lifecycle of both bearer tokens and session cookies.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// sessionCookie is the name of the cookie carrying the session token.
	sessionCookie string

	// bcryptCost is the work factor of password hashes.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		sessionCookie:  cfg.SessionCookie,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Credentials are validated, the password is hashed with bcrypt and the
// account is persisted.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - validators.FieldErrors if the credentials are malformed.
//   - a wrapped store.ErrAlreadyExists if the login is taken.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, &credentials); err != nil {
		log.Debug().Err(err).Str("login", credentials.Login).Msg("invalid registration data")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        credentials.Login,
		Name:         credentials.Name,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown login and a wrong password are both reported as
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Login == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug().Str("login", credentials.Login).Msg("unknown login")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GetUser returns the account with userID.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Identity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// AuthenticateBearer resolves the principal of a bearer token. The account
// must still exist.
func (a *authService) AuthenticateBearer(ctx context.Context, tokenString string) (models.Identity, error) {
	return a.identityFromToken(ctx, tokenString)
}

// AuthenticateSession resolves the principal of the session cookie of r.
func (a *authService) AuthenticateSession(r *http.Request) (models.Identity, error) {
	cookie, err := r.Cookie(a.sessionCookie)
	if err != nil || cookie.Value == "" {
		return models.Identity{}, ErrNoSession
	}

	return a.identityFromToken(r.Context(), cookie.Value)
}

func (a *authService) identityFromToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Identity(), nil
}

// SessionCookie wraps token into the session cookie.
func (a *authService) SessionCookie(token models.Token) *http.Cookie {
	return &http.Cookie{
		Name:     a.sessionCookie,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie returns a cookie that removes the session.
func (a *authService) ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     a.sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
