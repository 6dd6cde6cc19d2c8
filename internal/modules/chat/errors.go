package chat

import "hireme/internal/pkg/apperr"

var (
	ErrNotAuthenticated = apperr.New(apperr.ErrUnauthenticated, "Not authenticated")
	ErrBookingNotFound  = apperr.New(apperr.ErrNotFound, "Booking not found")
	ErrNotParticipant   = apperr.New(apperr.ErrForbidden, "Not authorized")
	ErrEmptyContent     = apperr.Validation("Message content is required")
)
