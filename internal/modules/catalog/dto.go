package catalog

// ServiceRequest is the body of both create and update. Update is a full
// overwrite, so omitted optional fields are cleared.
type ServiceRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required,max=5000"`
	Category     string   `json:"category" validate:"required,max=100"`
	Price        float64  `json:"price" validate:"gt=0"`
	Location     string   `json:"location" validate:"required,max=200"`
	Availability *string  `json:"availability,omitempty" validate:"omitempty,max=500"`
	Photos       []string `json:"photos,omitempty" validate:"max=3,dive,required"`
}

type ListServicesQuery struct {
	Category string `form:"category"`
	Location string `form:"location"`
}
