package domain

import "time"

const (
	MaxServicePhotos    = 3
	UnknownProviderName = "Unknown Provider"
)

// Categories is the suggested set offered to clients. Category itself is free text.
var Categories = []string{
	"Home Services",
	"Personal Care",
	"Tutoring",
	"Pet Services",
	"Event Services",
	"Fitness",
	"Technology",
	"Other",
}

type Service struct {
	ID           int64     `json:"id"`
	ProviderID   int64     `json:"provider_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Location     string    `json:"location"`
	Availability *string   `json:"availability,omitempty"`
	Photos       []string  `json:"photos"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Views
	PhotoURLs    []string `json:"photo_urls"`
	ProviderName string   `json:"provider_name,omitempty"`
	Provider     *Profile `json:"provider,omitempty"`
}
