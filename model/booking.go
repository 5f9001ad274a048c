package model

type Booking struct {
	DTO
	Code     string `gorm:"uniqueIndex;size:20" json:"code"`
	UserId   uint   `gorm:"not null;index" json:"userId"`
	TicketId uint   `gorm:"not null;index" json:"ticketId"`
	Quantity int    `gorm:"not null" validate:"required,gte=1" json:"quantity"`
	Status   string `gorm:"not null;default:'pending'" json:"status"`

	User    User     `gorm:"foreignKey:UserId" json:"-"`
	Ticket  Ticket   `gorm:"foreignKey:TicketId;constraint:OnDelete:CASCADE" json:"ticket,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
}

type CreateBookingInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type FilterBookingInput struct {
	Pagination
	Status *string `query:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}
