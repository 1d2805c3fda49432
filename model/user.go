package model

type User struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=100" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	Customer *Customer `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Attendee *Attendee `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"attendee,omitempty"`
}

type Users []User

type RegisterUserInput struct {
	Username string `validate:"required" json:"username" form:"username"`
	Email    string `validate:"required,email" json:"email" form:"email"`
	Password string `validate:"required,min=6" json:"password" form:"password"`
}

type LoginInput struct {
	Email    string `validate:"required,email" json:"email" form:"email"`
	Password string `validate:"required" json:"password" form:"password"`
}

type FilterUser struct {
	Pagination
	Role  string `query:"role" json:"role"`
	Email string `query:"email" json:"email"`
}
