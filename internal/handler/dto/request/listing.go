package request

type CreateListingRequest struct {
	Name           string   `json:"name" binding:"required,max=255"`
	Location       string   `json:"location" binding:"required"`
	PricePerPeriod int64    `json:"price_per_period" binding:"required,gt=0"`
	Amenities      []string `json:"amenities,omitempty"`
	Images         []string `json:"images,omitempty"`
	Description    string   `json:"description,omitempty"`
	Distance       *string  `json:"distance,omitempty"`
}
