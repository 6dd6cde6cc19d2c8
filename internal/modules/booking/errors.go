package booking

import "hireme/internal/pkg/apperr"

var (
	ErrNotAuthenticated = apperr.New(apperr.ErrUnauthenticated, "Not authenticated")
	ErrServiceNotFound  = apperr.New(apperr.ErrNotFound, "Service not found")
	ErrBookingNotFound  = apperr.New(apperr.ErrNotFound, "Booking not found")
	ErrOwnService       = apperr.New(apperr.ErrForbidden, "Cannot book your own service")
	ErrNotProvider      = apperr.New(apperr.ErrForbidden, "Not authorized")
	ErrDateRequired     = apperr.Validation("Requested date is required")
	ErrTimeRequired     = apperr.Validation("Requested time is required")
	ErrInvalidStatus    = apperr.Validation("Status must be accepted or declined")
)
