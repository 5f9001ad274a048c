package model

import "time"

// Notification is the persisted inbox record of a booking-confirmation
// notice. Email delivery happens out-of-band.
type Notification struct {
	DTO
	UserId    uint       `gorm:"not null;index" json:"userId"`
	BookingId uint       `gorm:"not null" json:"bookingId"`
	Title     string     `gorm:"not null" json:"title"`
	Message   string     `gorm:"not null" json:"message"`
	ReadAt    *time.Time `json:"readAt,omitempty"`

	User User `gorm:"foreignKey:UserId" json:"-"`
}
