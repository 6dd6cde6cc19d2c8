package profile

import "hireme/internal/pkg/apperr"

var (
	ErrNotAuthenticated = apperr.New(apperr.ErrUnauthenticated, "Not authenticated")
	ErrProfileExists    = apperr.New(apperr.ErrAlreadyExists, "Profile already exists")
	ErrProfileNotFound  = apperr.New(apperr.ErrNotFound, "Profile not found")
	ErrNameRequired     = apperr.Validation("Name is required")
)
