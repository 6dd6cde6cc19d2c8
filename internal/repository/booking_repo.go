package repository

import (
	"context"
	"time"

	"hireme/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ServiceID     int64     `gorm:"column:service_id;index;not null"`
	CustomerID    int64     `gorm:"column:customer_id;index;not null"`
	ProviderID    int64     `gorm:"column:provider_id;index;not null"`
	RequestedDate string    `gorm:"column:requested_date;not null"`
	RequestedTime string    `gorm:"column:requested_time;not null"`
	Message       *string   `gorm:"column:message;type:text"`
	Status        string    `gorm:"column:status;index;not null"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		ServiceID:     m.ServiceID,
		CustomerID:    m.CustomerID,
		ProviderID:    m.ProviderID,
		RequestedDate: m.RequestedDate,
		RequestedTime: m.RequestedTime,
		Message:       m.Message,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		CustomerID:    b.CustomerID,
		ProviderID:    b.ProviderID,
		RequestedDate: b.RequestedDate,
		RequestedTime: b.RequestedTime,
		Message:       b.Message,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

// GetByID returns nil, nil when the booking does not exist.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Booking, error) {
	return r.find(r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]*domain.Booking, error) {
	return r.find(r.db.WithContext(ctx).Where("provider_id = ?", providerID))
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()}).Error
}

func (r *BookingRepository) find(q *gorm.DB) ([]*domain.Booking, error) {
	var models []bookingModel
	if err := q.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}
