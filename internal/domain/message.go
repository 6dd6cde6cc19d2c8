package domain

import "time"

const UnknownSenderName = "Unknown"

// Message is immutable once stored.
type Message struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	SenderName   string `json:"sender_name"`
	IsOwnMessage bool   `json:"is_own_message"`
}
