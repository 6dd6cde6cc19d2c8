package auth

import "hireme/internal/pkg/apperr"

var (
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthenticated, "Invalid email or password")
	ErrEmailAlreadyExists = apperr.New(apperr.ErrAlreadyExists, "This email is already registered")
	ErrUnauthorized       = apperr.New(apperr.ErrUnauthenticated, "Not authenticated")
	ErrUserNotFound       = apperr.New(apperr.ErrNotFound, "User not found")
)
