package model

import "github.com/shopspring/decimal"

type Payment struct {
	DTO
	PaymentCode string          `gorm:"uniqueIndex;size:30" json:"paymentCode"`
	BookingId   uint            `gorm:"uniqueIndex;not null" json:"bookingId"`
	UserId      uint            `gorm:"not null;index" json:"userId"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Status      string          `gorm:"not null" json:"status"`

	Booking Booking `gorm:"foreignKey:BookingId;constraint:OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserId" json:"-"`
}
