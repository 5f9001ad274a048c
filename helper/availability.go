package helper

import (
	"ticket_marketplace/constants"
	"ticket_marketplace/model"

	"gorm.io/gorm"
)

// Availability returns the remaining bookable quantity on a ticket:
// capacity minus the summed quantity of active (pending or confirmed)
// bookings. Always a live read, never cached.
func Availability(db *gorm.DB, ticketId uint) (int, error) {
	var ticket model.Ticket
	if err := db.First(&ticket, ticketId).Error; err != nil {
		return 0, err
	}
	booked, err := bookedQuantity(db, ticketId)
	if err != nil {
		return 0, err
	}
	return ticket.Quantity - booked, nil
}

func bookedQuantity(db *gorm.DB, ticketId uint) (int, error) {
	var booked int64
	err := db.Model(&model.Booking{}).
		Where("ticket_id = ? AND status IN ?", ticketId, []string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&booked).Error
	if err != nil {
		return 0, err
	}
	return int(booked), nil
}
