package booking

import "hireme/internal/domain"

type CreateBookingRequest struct {
	ServiceID     int64   `json:"service_id" validate:"required,gt=0"`
	RequestedDate string  `json:"requested_date" validate:"required,max=64"`
	RequestedTime string  `json:"requested_time" validate:"required,max=64"`
	Message       *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status" validate:"required"`
}

// StatusChangedPayload is pushed to the customer when the provider decides.
type StatusChangedPayload struct {
	BookingID int64                `json:"booking_id"`
	ServiceID int64                `json:"service_id"`
	Status    domain.BookingStatus `json:"status"`
}
