package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingAccepted BookingStatus = "accepted"
	BookingDeclined BookingStatus = "declined"
)

// IsDecision reports whether s is a status a provider may set.
func (s BookingStatus) IsDecision() bool {
	return s == BookingAccepted || s == BookingDeclined
}

type Booking struct {
	ID            int64         `json:"id"`
	ServiceID     int64         `json:"service_id"`
	CustomerID    int64         `json:"customer_id"`
	ProviderID    int64         `json:"provider_id"`
	RequestedDate string        `json:"requested_date"`
	RequestedTime string        `json:"requested_time"`
	Message       *string       `json:"message,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Joined snapshots, filled by the booking service.
	Service    *Service `json:"service"`
	Customer   *Profile `json:"customer"`
	Provider   *Profile `json:"provider"`
	IsCustomer bool     `json:"is_customer"`
	IsProvider bool     `json:"is_provider"`
}
