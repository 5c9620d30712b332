package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthHeader is returned by ParseBearerToken for malformed
// Authorization headers.
var ErrInvalidAuthHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for id.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - login: the user's login
//
// issuer, tokenDuration and signKey are required.
func GenerateJWTToken(issuer string, id models.Identity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(id.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Login: id.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
		UserID:       id.UserID,
		Login:        id.Login,
	}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes the HS256 signature, the issuer and the expiration
// claims, and a numeric subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, err
	}
	if userID <= 0 {
		return models.Token{}, errors.New("empty subject error")
	}

	token := models.Token{SignedString: tokenString, UserID: userID, Login: claims.Login}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}

// ParseBearerToken extracts the credential of an "Authorization: Bearer
// <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
