package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrNoSession          = errors.New("no session")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotArticleOwner = errors.New("article belongs to another user")
	ErrInvalidID       = errors.New("invalid id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
