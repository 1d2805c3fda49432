package model

type Customer struct {
	DTO
	FirstName        string  `gorm:"not null" validate:"required" json:"firstName"`
	LastName         string  `gorm:"not null" validate:"required" json:"lastName"`
	OrganizationName *string `json:"organizationName"`
	PhoneNumber      *string `json:"phoneNumber"`
	UserId           uint    `gorm:"not null" json:"userId"`

	User   *User   `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Events []Event `gorm:"foreignKey:CustId" json:"events,omitempty"`
}

type Customers []Customer

type CreateCustomerInput struct {
	FirstName        string  `validate:"required" json:"firstName" form:"firstName"`
	LastName         string  `validate:"required" json:"lastName" form:"lastName"`
	OrganizationName *string `json:"organizationName" form:"organizationName"`
	PhoneNumber      *string `json:"phoneNumber" form:"phoneNumber"`
	UserId           uint    `validate:"required" json:"userId" form:"userId"`
}

type EditCustomerInput struct {
	FirstName        *string `json:"firstName" form:"firstName"`
	LastName         *string `json:"lastName" form:"lastName"`
	OrganizationName *string `json:"organizationName" form:"organizationName"`
	PhoneNumber      *string `json:"phoneNumber" form:"phoneNumber"`
	UserId           *uint   `json:"userId" form:"userId"`
}

type FilterCustomer struct {
	Pagination
	CustId uint `query:"custId" json:"custId"`
	UserId uint `query:"userId" json:"userId"`
}

type Attendee struct {
	DTO
	FirstName   string  `gorm:"not null" validate:"required" json:"firstName"`
	LastName    string  `gorm:"not null" validate:"required" json:"lastName"`
	Gender      *string `json:"gender"`
	PhoneNumber *string `json:"phoneNumber"`
	UserId      uint    `gorm:"not null" json:"userId"`

	User        *User        `gorm:"foreignKey:UserId" json:"user,omitempty"`
	SoldTickets []SoldTicket `gorm:"foreignKey:AttendeeId" json:"soldTickets,omitempty"`
}

type CreateAttendeeInput struct {
	FirstName   string  `validate:"required" json:"firstName" form:"firstName"`
	LastName    string  `validate:"required" json:"lastName" form:"lastName"`
	Gender      *string `json:"gender" form:"gender"`
	PhoneNumber *string `json:"phoneNumber" form:"phoneNumber"`
	UserId      uint    `validate:"required" json:"userId" form:"userId"`
}

type EditAttendeeInput struct {
	FirstName   *string `json:"firstName" form:"firstName"`
	LastName    *string `json:"lastName" form:"lastName"`
	Gender      *string `json:"gender" form:"gender"`
	PhoneNumber *string `json:"phoneNumber" form:"phoneNumber"`
}

type FilterAttendee struct {
	Pagination
	UserId uint `query:"userId" json:"userId"`
}
