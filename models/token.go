package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set issued by the API. Subject carries the
// user ID; Login is duplicated so the principal can be rebuilt without a
// storage round-trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	Login string `json:"login,omitempty"`
}

// UserID parses the "sub" claim as a base-10 int64.
func (c *TokenClaims) UserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token is an issued or parsed JWT.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"expiresAt"`

	// UserID and Login identify the owner of the token.
	UserID int64  `json:"-"`
	Login  string `json:"-"`
}

// Identity returns the request principal the token was issued for.
func (t Token) Identity() Identity {
	return Identity{UserID: t.UserID, Login: t.Login}
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
