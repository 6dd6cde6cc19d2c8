package repository

import (
	"context"
	"time"

	"hireme/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

type messageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;index;not null"`
	SenderID  int64     `gorm:"column:sender_id;index;not null"`
	Content   string    `gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string { return "messages" }

func toDomainMessage(m messageModel) *domain.Message {
	return &domain.Message{
		ID:        m.ID,
		BookingID: m.BookingID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a message. There is no update or delete: messages are immutable.
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	m := messageModel{
		BookingID: msg.BookingID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*msg = *toDomainMessage(m)
	return nil
}

// ListByBooking returns messages in insertion order.
func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Message, error) {
	var models []messageModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Message, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainMessage(m))
	}
	return out, nil
}
