package domain

import "time"

type Profile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Bio         *string   `json:"bio,omitempty"`
	Location    *string   `json:"location,omitempty"`
	ContactInfo *string   `json:"contact_info,omitempty"`
	PhotoRef    *string   `json:"photo_ref,omitempty"`
	IsProvider  bool      `json:"is_provider"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Resolved from PhotoRef; nil when the reference is missing or unresolvable.
	PhotoURL *string `json:"photo_url,omitempty"`
}
