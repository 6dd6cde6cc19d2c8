package booking

import (
	"context"

	"hireme/internal/domain"
)

// BookingRepository defines the interface for booking storage
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Booking, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
}
