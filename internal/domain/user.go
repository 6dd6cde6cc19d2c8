package domain

import "time"

// User is an identity. Display data lives in Profile.
type User struct {
	ID           int64     `json:"id"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	IsAnonymous  bool      `json:"is_anonymous"`
	CreatedAt    time.Time `json:"created_at"`
}
