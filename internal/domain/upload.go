package domain

import "time"

// Upload is a photo reference. ID is the opaque ref stored on profiles and services.
type Upload struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user_id"`
	StorageKey  string    `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Ready       bool      `json:"ready"`
	CreatedAt   time.Time `json:"created_at"`
}
