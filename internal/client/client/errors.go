package client

import "errors"

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("file not found")
	ErrWrongPassword  = errors.New("wrong password or corrupted file")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotLoggedIn    = errors.New("not logged in")
)
