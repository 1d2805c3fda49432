package model

type Venue struct {
	DTO
	Slug         string  `gorm:"uniqueIndex" json:"slug"`
	Name         string  `gorm:"not null" validate:"required" json:"name"`
	Location     string  `gorm:"not null" validate:"required" json:"location"`
	MaxOccupancy int     `gorm:"not null" validate:"gte=1" json:"maxOccupancy"`
	Email        string  `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Phone        string  `gorm:"not null" validate:"required" json:"phone"`
	ImageUrl     *string `json:"imageUrl"`

	Events []Event `gorm:"foreignKey:VenueId" json:"events,omitempty"`
}

type Venues []Venue

type CreateVenueInput struct {
	Name         string `validate:"required" json:"name" form:"name"`
	Location     string `validate:"required" json:"location" form:"location"`
	MaxOccupancy int    `validate:"required,gte=1" json:"maxOccupancy" form:"maxOccupancy"`
	Email        string `validate:"required,email" json:"email" form:"email"`
	Phone        string `validate:"required" json:"phone" form:"phone"`
}

type EditVenueInput struct {
	Name         *string     `json:"name" form:"name"`
	Location     *string     `json:"location" form:"location"`
	MaxOccupancy *FlexNumber `json:"maxOccupancy" form:"maxOccupancy"`
	Email        *string     `json:"email" form:"email"`
	Phone        *string     `json:"phone" form:"phone"`
}

type FilterVenue struct {
	Pagination
	SortSpec
	VenueId   uint   `query:"venueId" json:"venueId"`
	SearchKey string `query:"searchKey" json:"searchKey"`
}
