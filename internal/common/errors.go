// Package common defines shared constants and sentinel errors used across
// client and server layers of FileVault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorValidation      = errors.New("validation error")

	// ErrorInvalidCredentials is returned by login for an unknown user or a
	// wrong password alike.
	ErrorInvalidCredentials = errors.New("invalid login/password")

	// ErrTransformFailed covers every failure of an encrypt/decrypt transform
	// after the source file was found: wrong password, corrupted ciphertext,
	// or an I/O failure while moving bytes.
	ErrTransformFailed = errors.New("wrong password or corrupted file")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
