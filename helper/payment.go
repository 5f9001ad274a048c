package helper

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ticket_marketplace/constants"
	"ticket_marketplace/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentResult struct {
	Success bool
	Message string
	Payment *model.Payment
}

// ProcessPayment settles a booking through the gateway.
//
// amount = ticket price × booking quantity, rounded to 2 decimal places.
// On success the payment is recorded, the booking confirmed and a
// confirmation notice dispatched after commit. On a declined charge the
// failed payment is still recorded and the booking stays pending; one payment
// per booking is the rule, so a failed payment blocks any retry.
func ProcessPayment(db *gorm.DB, gateway Gateway, notifier Notifier, bookingId, payerId uint) (*PaymentResult, *ServiceError) {
	var result PaymentResult
	var confirmed model.Booking

	err := db.Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := lockForUpdate(tx).Preload("Ticket.Event").First(&booking, bookingId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewServiceError(fiber.StatusNotFound, constants.BOOKING_NOT_FOUND)
			}
			return err
		}

		if booking.Status == constants.BOOKING_CANCELLED {
			return NewServiceError(fiber.StatusUnprocessableEntity, constants.PAYMENT_FOR_CANCELLED)
		}

		var count int64
		if err := tx.Model(&model.Payment{}).Where("booking_id = ?", booking.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewServiceError(fiber.StatusUnprocessableEntity, constants.PAYMENT_ALREADY_EXISTS)
		}

		amount := booking.Ticket.Price.Mul(decimal.NewFromInt(int64(booking.Quantity))).Round(2)
		isSuccess := gateway.Charge(amount)

		status := constants.PAYMENT_FAILED
		if isSuccess {
			status = constants.PAYMENT_SUCCESS
		}
		log.Printf("payment: settling booking #%d user=%d amount=%s status=%s",
			booking.ID, payerId, amount.StringFixed(2), status)

		payment := model.Payment{
			PaymentCode: fmt.Sprintf("PAY_%s_%s", time.Now().Format("20060102"), uuid.New().String()[:8]),
			BookingId:   booking.ID,
			UserId:      payerId,
			Amount:      amount,
			Status:      status,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if isSuccess {
			if err := tx.Model(&booking).Update("status", constants.BOOKING_CONFIRMED).Error; err != nil {
				return err
			}
			booking.Status = constants.BOOKING_CONFIRMED
			confirmed = booking
			result = PaymentResult{Success: true, Message: constants.PAYMENT_SUCCESS_MSG, Payment: &payment}
		} else {
			result = PaymentResult{Success: false, Message: constants.PAYMENT_FAILED_MSG, Payment: &payment}
		}
		return nil
	})

	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		return nil, NewServiceError(fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}

	// Notice delivery is out-of-band: its failure or delay never affects
	// the committed payment and booking state.
	if result.Success && notifier != nil {
		notifier.BookingConfirmed(BookingConfirmedData{
			Booking: confirmed,
			Event:   confirmed.Ticket.Event,
			Ticket:  confirmed.Ticket,
			Amount:  result.Payment.Amount,
		})
	}
	return &result, nil
}

// ProcessRefund marks the payment refunded and cancels its booking,
// unconditionally. A booking that is already cancelled stays cancelled.
func ProcessRefund(db *gorm.DB, payment *model.Payment) *ServiceError {
	log.Printf("payment: refunding payment #%d", payment.ID)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(payment).Update("status", constants.PAYMENT_REFUNDED).Error; err != nil {
			return err
		}
		return tx.Model(&model.Booking{}).Where("id = ?", payment.BookingId).
			Update("status", constants.BOOKING_CANCELLED).Error
	})
	if err != nil {
		return NewServiceError(fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR)
	}
	payment.Status = constants.PAYMENT_REFUNDED
	return nil
}
