package profile

type CreateProfileRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactInfo *string `json:"contact_info,omitempty" validate:"omitempty,max=200"`
	IsProvider  bool    `json:"is_provider"`
}

// UpdateProfileRequest replaces every mutable field: an omitted optional clears it.
type UpdateProfileRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	ContactInfo *string `json:"contact_info,omitempty" validate:"omitempty,max=200"`
	PhotoRef    *string `json:"photo_ref,omitempty" validate:"omitempty,max=64"`
}
