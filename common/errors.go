package common

import (
	"errors"
)

// error categories surfaced by the settlement engine; call sites wrap these
// with github.com/pkg/errors so errors.Is resolves the category
var (
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("already processed")
	ErrNotFound       = errors.New("not found")
	ErrTransientIO    = errors.New("transient io error")
	ErrExternalSource = errors.New("external source error")
)

// IsAuthorization reports whether err is a bad password, or a missing,
// mismatched or expired approval token.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
