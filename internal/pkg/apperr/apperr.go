// Package apperr holds the failure kinds shared by every module.
// Module errors wrap one of the kinds so the transport layer can map them
// with errors.Is while keeping the module's own message.
package apperr

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrAlreadyExists   = errors.New("already exists")
)

// Error is a module error tagged with a failure kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Validation builds an ad-hoc validation error with the given message.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}
