package model

import "time"

// Ticket holds the sellable inventory of one ticket type for one event.
// (EventId, TicketType) is unique; the surrogate ID stays for the usual
// routing and foreign keys.
type Ticket struct {
	DTO
	EventId    uint    `gorm:"not null;uniqueIndex:idx_event_ticket_type" json:"eventId"`
	TicketType string  `gorm:"not null;uniqueIndex:idx_event_ticket_type" json:"ticketType"`
	Price      float64 `gorm:"not null" validate:"gte=0" json:"price"`
	Quantity   int     `gorm:"not null" validate:"gte=0" json:"quantity"`

	Event *Event `gorm:"foreignKey:EventId" json:"event,omitempty"`
}

type Tickets []Ticket

type CreateTicketInput struct {
	TicketType string  `validate:"required" json:"ticketType" form:"ticketType"`
	Price      float64 `validate:"gte=0" json:"price" form:"price"`
	Quantity   int     `validate:"gte=0" json:"quantity" form:"quantity"`
}

type SoldTicket struct {
	DTO
	EventId       uint      `gorm:"not null" json:"eventId"`
	AttendeeId    uint      `gorm:"not null" json:"attendeeId"`
	TicketType    string    `gorm:"not null" json:"ticketType"`
	PurchaseDate  time.Time `gorm:"not null" json:"purchaseDate"`
	PaymentMethod string    `gorm:"not null" json:"paymentMethod"`

	Event    *Event    `gorm:"foreignKey:EventId" json:"event,omitempty"`
	Attendee *Attendee `gorm:"foreignKey:AttendeeId" json:"attendee,omitempty"`
}

type PurchaseTicketInput struct {
	EventId       uint   `validate:"required" json:"eventId" form:"eventId"`
	AttendeeId    uint   `validate:"required" json:"attendeeId" form:"attendeeId"`
	TicketType    string `validate:"required" json:"ticketType" form:"ticketType"`
	PaymentMethod string `validate:"required" json:"paymentMethod" form:"paymentMethod"`
}

type FilterSoldTicket struct {
	Pagination
	EventId    uint `query:"eventId" json:"eventId"`
	AttendeeId uint `query:"attendeeId" json:"attendeeId"`
}

type EventPayment struct {
	DTO
	PaymentDate   time.Time `gorm:"not null" json:"paymentDate"`
	PaymentMethod string    `gorm:"not null" json:"paymentMethod"`
	EventId       uint      `gorm:"not null" json:"eventId"`

	Event *Event `gorm:"foreignKey:EventId" json:"event,omitempty"`
}

type CreateEventPaymentInput struct {
	PaymentMethod string `validate:"required" json:"paymentMethod" form:"paymentMethod"`
}
