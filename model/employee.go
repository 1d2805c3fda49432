package model

import "time"

type Role struct {
	DTO
	RoleName  string   `gorm:"not null" validate:"required" json:"roleName"`
	DeptName  string   `gorm:"not null" validate:"required" json:"deptName"`
	MinSalary *float64 `json:"minSalary"`
	MaxSalary *float64 `json:"maxSalary"`

	Employees []Employee `gorm:"foreignKey:RoleId" json:"employees,omitempty"`
}

type Roles []Role

type CreateRoleInput struct {
	RoleName  string   `validate:"required" json:"roleName" form:"roleName"`
	DeptName  string   `validate:"required" json:"deptName" form:"deptName"`
	MinSalary *float64 `json:"minSalary" form:"minSalary"`
	MaxSalary *float64 `json:"maxSalary" form:"maxSalary"`
}

type EditRoleInput struct {
	RoleName  *string  `json:"roleName" form:"roleName"`
	DeptName  *string  `json:"deptName" form:"deptName"`
	MinSalary *float64 `json:"minSalary" form:"minSalary"`
	MaxSalary *float64 `json:"maxSalary" form:"maxSalary"`
}

type Employee struct {
	DTO
	FirstName string     `gorm:"not null" validate:"required" json:"firstName"`
	LastName  string     `gorm:"not null" validate:"required" json:"lastName"`
	DOB       *time.Time `json:"dob"`
	Gender    *string    `json:"gender"`
	Email     string     `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Phone     string     `gorm:"uniqueIndex;not null" validate:"required" json:"phone"`
	RoleId    uint       `gorm:"not null" json:"roleId"`
	Salary    float64    `gorm:"not null" validate:"gte=0" json:"salary"`

	Role   *Role   `gorm:"foreignKey:RoleId" json:"role,omitempty"`
	Events []Event `gorm:"many2many:employee_events;joinForeignKey:EmpId;joinReferences:EventId" json:"events,omitempty"`
}

type Employees []Employee

type CreateEmployeeInput struct {
	FirstName string  `validate:"required" json:"firstName" form:"firstName"`
	LastName  string  `validate:"required" json:"lastName" form:"lastName"`
	DOB       *string `json:"dob" form:"dob"`
	Gender    *string `json:"gender" form:"gender"`
	Email     string  `validate:"required,email" json:"email" form:"email"`
	Phone     string  `validate:"required" json:"phone" form:"phone"`
	RoleId    uint    `validate:"required" json:"roleId" form:"roleId"`
	Salary    float64 `validate:"gte=0" json:"salary" form:"salary"`
}

// Sparse fields keep a string-backed shape so empty values can be dropped and
// numeric input coerced (number or numeric string) before the update runs.
type EditEmployeeInput struct {
	FirstName *string     `json:"firstName" form:"firstName"`
	LastName  *string     `json:"lastName" form:"lastName"`
	DOB       *string     `json:"dob" form:"dob"`
	Gender    *string     `json:"gender" form:"gender"`
	Email     *string     `json:"email" form:"email"`
	Phone     *string     `json:"phone" form:"phone"`
	RoleId    *FlexNumber `json:"roleId" form:"roleId"`
	Salary    *FlexNumber `json:"salary" form:"salary"`
}

type FilterEmployee struct {
	Pagination
	SortSpec
	RoleId   uint   `query:"roleId" json:"roleId"`
	RoleName string `query:"role" json:"role"`
}
