package model

import "github.com/shopspring/decimal"

type Ticket struct {
	DTO
	EventId  uint            `gorm:"not null;index" json:"eventId"`
	Type     string          `gorm:"not null" validate:"required,oneof=VIP Standard Economy" json:"type"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity int             `gorm:"not null" validate:"required,gte=1" json:"quantity"`

	Event    Event     `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"-"`
	Bookings []Booking `gorm:"foreignKey:TicketId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateTicketInput struct {
	Type     string          `json:"type" validate:"required,oneof=VIP Standard Economy"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gte=1"`
}

type UpdateTicketInput struct {
	Type     *string          `json:"type" validate:"omitempty,oneof=VIP Standard Economy"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int             `json:"quantity" validate:"omitempty,gte=1"`
}
