package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("invalid username or password")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
)
