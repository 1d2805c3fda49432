package model

type Catering struct {
	DTO
	CateringSet string  `gorm:"not null" validate:"required" json:"cateringSet"`
	Price       float64 `gorm:"not null" validate:"gte=0" json:"price"`
	ImageUrl    *string `json:"imageUrl"`

	Events []Event `gorm:"many2many:event_caterings;joinForeignKey:CateringId;joinReferences:EventId" json:"events,omitempty"`
}

type Caterings []Catering

type CreateCateringInput struct {
	CateringSet string  `validate:"required" json:"cateringSet" form:"cateringSet"`
	Price       float64 `validate:"gte=0" json:"price" form:"price"`
}

type EditCateringInput struct {
	CateringSet *string     `json:"cateringSet" form:"cateringSet"`
	Price       *FlexNumber `json:"price" form:"price"`
}

type FilterCatering struct {
	Pagination
	SortSpec
	SearchKey string `query:"searchKey" json:"searchKey"`
}
