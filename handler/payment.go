package handler

import (
	"errors"

	"ticket_marketplace/constants"
	"ticket_marketplace/database"
	"ticket_marketplace/helper"
	"ticket_marketplace/middleware"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Gateway and Notifier used by payment settlement. Swappable: main wires
// the mock gateway, tests install stubs.
var (
	PaymentGateway  helper.Gateway
	PaymentNotifier helper.Notifier
)

// CreatePayment settles a booking through the configured gateway.
func CreatePayment(c *fiber.Ctx) error {
	bookingId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Only the booking owner can pay.
	if !middleware.OwnsBooking(user, &booking) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	result, svcErr := helper.ProcessPayment(db, PaymentGateway, PaymentNotifier, booking.ID, user.ID)
	if svcErr != nil {
		return utils.ErrorResponse(c, svcErr.Status, svcErr.Message, nil)
	}

	if err := db.First(&booking, booking.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	status := fiber.StatusCreated
	if !result.Success {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{
		"success": result.Success,
		"message": result.Message,
		"payment": result.Payment,
		"booking": booking,
	})
}

// GetPayments lists payments scoped by role: customers see their own,
// organizers see payments on their events (read-only), admins see all.
func GetPayments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	db := database.DB

	query := db.Model(&model.Payment{}).Preload("Booking.Ticket.Event")
	switch user.Role {
	case constants.ROLE_ADMIN:
		// no scoping
	case constants.ROLE_ORGANIZER:
		query = query.
			Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Joins("JOIN tickets ON tickets.id = bookings.ticket_id").
			Joins("JOIN events ON events.id = tickets.event_id").
			Where("events.created_by = ?", user.ID)
	default:
		query = query.Where("payments.user_id = ?", user.ID)
	}

	var payments []model.Payment
	if err := query.Order("payments.created_at desc").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

func GetPaymentById(c *fiber.Ctx) error {
	paymentId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var payment model.Payment
	if err := db.Preload("Booking.Ticket.Event").First(&payment, paymentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	allowed := payment.UserId == user.ID ||
		user.Role == constants.ROLE_ADMIN ||
		(user.Role == constants.ROLE_ORGANIZER && payment.Booking.Ticket.Event.CreatedBy == user.ID)
	if !allowed {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

// RefundPayment marks the payment refunded and cancels its booking.
// Admin only; routed behind the payments.refund capability.
func RefundPayment(c *fiber.Ctx) error {
	paymentId := uint(c.Locals("inputId").(int))
	db := database.DB

	var payment model.Payment
	if err := db.First(&payment, paymentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if svcErr := helper.ProcessRefund(db, &payment); svcErr != nil {
		return utils.ErrorResponse(c, svcErr.Status, svcErr.Message, nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.REFUND_SUCCESS_MSG,
		"payment": payment,
	})
}
