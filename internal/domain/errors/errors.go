// Package errors defines sentinel errors shared across layers. Their text is
// also the user-visible error body, so handlers can render them verbatim.
package errors

import "errors"

var (
	ErrInvalidName      = errors.New("name is not valid")
	ErrInvalidEmail     = errors.New("email is not valid")
	ErrPasswordMismatch = errors.New("passwords don't match or don't exist")
	ErrMissingPassword  = errors.New("missing password")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrAlreadyExists    = errors.New("email already registered")
	ErrNotFound         = errors.New("user not found")
)
