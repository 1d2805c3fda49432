package model

import "time"

type EventType struct {
	DTO
	Name string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`

	Events []Event `gorm:"foreignKey:EventTypeId" json:"events,omitempty"`
}

type Event struct {
	DTO
	Name        string    `gorm:"not null" validate:"required" json:"name"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Desc        *string   `json:"desc"`
	Budget      float64   `gorm:"not null" validate:"gte=0" json:"budget"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	EventTypeId uint      `gorm:"not null" json:"eventTypeId"`
	VenueId     uint      `gorm:"not null" json:"venueId"`
	CustId      uint      `gorm:"not null" json:"custId"`

	EventType *EventType     `gorm:"foreignKey:EventTypeId" json:"eventType,omitempty"`
	Venue     *Venue         `gorm:"foreignKey:VenueId" json:"venue,omitempty"`
	Customer  *Customer      `gorm:"foreignKey:CustId" json:"customer,omitempty"`
	Employees []Employee     `gorm:"many2many:employee_events;joinForeignKey:EventId;joinReferences:EmpId" json:"employees,omitempty"`
	Caterings []Catering     `gorm:"many2many:event_caterings;joinForeignKey:EventId;joinReferences:CateringId" json:"caterings,omitempty"`
	Tickets   []Ticket       `gorm:"foreignKey:EventId" json:"tickets,omitempty"`
	Payments  []EventPayment `gorm:"foreignKey:EventId" json:"payments,omitempty"`
}

type Events []Event

// EmployeeEvent is the employees <-> events join table.
type EmployeeEvent struct {
	EmpId   uint `gorm:"primaryKey" json:"empId"`
	EventId uint `gorm:"primaryKey" json:"eventId"`
}

// EventCatering is the events <-> caterings join table; NumOfSet is how many
// catering sets the event booked.
type EventCatering struct {
	EventId    uint `gorm:"primaryKey" json:"eventId"`
	CateringId uint `gorm:"primaryKey" json:"cateringId"`
	NumOfSet   int  `gorm:"not null;default:1" json:"numOfSet"`
}

type CreateEventInput struct {
	Name        string  `validate:"required" json:"name" form:"name"`
	StartDate   string  `validate:"required" json:"startDate" form:"startDate"`
	EndDate     string  `validate:"required" json:"endDate" form:"endDate"`
	Desc        *string `json:"desc" form:"desc"`
	Budget      float64 `validate:"gte=0" json:"budget" form:"budget"`
	EventTypeId uint    `validate:"required" json:"eventTypeId" form:"eventTypeId"`
	VenueId     uint    `validate:"required" json:"venueId" form:"venueId"`
	CustId      uint    `validate:"required" json:"custId" form:"custId"`
}

type EditEventInput struct {
	Name        *string     `json:"name" form:"name"`
	StartDate   *string     `json:"startDate" form:"startDate"`
	EndDate     *string     `json:"endDate" form:"endDate"`
	Desc        *string     `json:"desc" form:"desc"`
	Budget      *FlexNumber `json:"budget" form:"budget"`
	Status      *string     `json:"status" form:"status"`
	EventTypeId *FlexNumber `json:"eventTypeId" form:"eventTypeId"`
	VenueId     *FlexNumber `json:"venueId" form:"venueId"`
	CustId      *FlexNumber `json:"custId" form:"custId"`
}

type FilterEvent struct {
	Pagination
	SortSpec
	EventId   uint   `query:"eventId" json:"eventId"`
	EventType string `query:"eventType" json:"eventType"`
	CustId    uint   `query:"custId" json:"custId"`
	VenueId   uint   `query:"venueId" json:"venueId"`
	Status    string `query:"status" json:"status"`
	Include   bool   `query:"include" json:"include"`
}
