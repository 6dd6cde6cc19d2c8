package catalog

import "hireme/internal/pkg/apperr"

var (
	ErrNotAuthenticated = apperr.New(apperr.ErrUnauthenticated, "Not authenticated")
	ErrNotProvider      = apperr.New(apperr.ErrForbidden, "Only providers can create services")
	ErrServiceNotFound  = apperr.New(apperr.ErrNotFound, "Service not found")
	ErrNotOwner         = apperr.New(apperr.ErrForbidden, "Not authorized")

	ErrTitleRequired       = apperr.Validation("Title is required")
	ErrDescriptionRequired = apperr.Validation("Description is required")
	ErrCategoryRequired    = apperr.Validation("Category is required")
	ErrLocationRequired    = apperr.Validation("Location is required")
	ErrInvalidPrice        = apperr.Validation("Price must be greater than 0")
	ErrTooManyPhotos       = apperr.Validation("At most 3 photos are allowed")
)
