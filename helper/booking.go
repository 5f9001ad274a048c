package helper

import (
	"errors"
	"fmt"
	"strings"

	"ticket_marketplace/constants"
	"ticket_marketplace/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate takes a row-level lock so the check-then-insert sequences in
// booking creation and payment settlement cannot interleave. SQLite (tests)
// rejects FOR UPDATE; its single-writer transactions already serialize.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreateBooking inserts a pending booking for the user on the ticket.
// The duplicate-active check, the availability read and the insert run in a
// single transaction holding the ticket row.
func CreateBooking(db *gorm.DB, userId, ticketId uint, quantity int) (*model.Booking, *ServiceError) {
	var booking model.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		var ticket model.Ticket
		if err := lockForUpdate(tx).First(&ticket, ticketId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewServiceError(fiber.StatusNotFound, constants.TICKET_NOT_FOUND)
			}
			return err
		}

		var existing model.Booking
		err := tx.Where("user_id = ? AND ticket_id = ? AND status IN ?",
			userId, ticketId, []string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
			First(&existing).Error
		if err == nil {
			return &ServiceError{
				Status:  fiber.StatusConflict,
				Message: constants.DUPLICATE_ACTIVE_BOOKING,
				Extra: map[string]any{
					"existing_booking": fiber.Map{
						"id":         existing.ID,
						"quantity":   existing.Quantity,
						"status":     existing.Status,
						"created_at": existing.CreatedAt,
					},
				},
			}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		booked, err := bookedQuantity(tx, ticketId)
		if err != nil {
			return err
		}
		available := ticket.Quantity - booked
		if quantity > available {
			return NewServiceError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("Only %d ticket(s) available.", available))
		}

		booking = model.Booking{
			Code:     "BKG-" + strings.ToUpper(uuid.New().String()[:8]),
			UserId:   userId,
			TicketId: ticketId,
			Quantity: quantity,
			Status:   constants.BOOKING_PENDING,
		}
		return tx.Create(&booking).Error
	})

	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, NewServiceError(fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return &booking, nil
}

// CancelBooking sets the booking to cancelled. Already-cancelled bookings
// are rejected rather than silently no-oped. No refund is triggered here;
// cancellation and refund are independent operations.
func CancelBooking(db *gorm.DB, booking *model.Booking) *ServiceError {
	if booking.Status == constants.BOOKING_CANCELLED {
		return NewServiceError(fiber.StatusUnprocessableEntity, constants.BOOKING_ALREADY_CANCELLED)
	}
	if err := db.Model(booking).Update("status", constants.BOOKING_CANCELLED).Error; err != nil {
		return NewServiceError(fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	return nil
}
