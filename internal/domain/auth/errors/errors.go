package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInternal            = errors.New("internal error")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrTokenNotFound       = errors.New("token not found")
	ErrTokenExpired        = errors.New("token expired")
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
	ErrHashFormat          = errors.New("malformed password hash")
)

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func WrapStoreUnavailable(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, context, err)
}

func WrapHashFormat(err error) error {
	return fmt.Errorf("%w: %v", ErrHashFormat, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsDuplicateEmail(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}

func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

func IsTokenNotFound(err error) bool {
	return errors.Is(err, ErrTokenNotFound)
}

func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

func IsMalformedAuthHeader(err error) bool {
	return errors.Is(err, ErrMalformedAuthHeader)
}

func IsHashFormat(err error) bool {
	return errors.Is(err, ErrHashFormat)
}

// IsAuthFailure reports whether err should surface to a client as a 401
// without further detail.
func IsAuthFailure(err error) bool {
	return IsInvalidCredentials(err) ||
		IsTokenNotFound(err) ||
		IsTokenExpired(err) ||
		IsMalformedAuthHeader(err)
}
