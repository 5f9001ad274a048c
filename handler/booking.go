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

// GetBookings lists bookings scoped by role: customers see their own,
// organizers see bookings on their events (read-only), admins see all.
func GetBookings(c *fiber.Ctx) error {
	input := c.Locals("input").(model.FilterBookingInput)
	user := middleware.CurrentUser(c)
	db := database.DB

	perPage, page := input.Normalize()

	query := db.Model(&model.Booking{}).
		Preload("Ticket.Event").
		Preload("Payment")

	switch user.Role {
	case constants.ROLE_ADMIN:
		// no scoping
	case constants.ROLE_ORGANIZER:
		query = query.
			Joins("JOIN tickets ON tickets.id = bookings.ticket_id").
			Joins("JOIN events ON events.id = tickets.event_id").
			Where("events.created_by = ?", user.ID)
	default:
		query = query.Where("bookings.user_id = ?", user.ID)
	}

	if input.Status != nil {
		query = query.Where("bookings.status = ?", *input.Status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var bookings []model.Booking
	if err := utils.ApplyPagination(query.Order("bookings.created_at desc"), perPage, page).Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		PerPage:    perPage,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var booking model.Booking
	if err := db.Preload("Ticket.Event").Preload("Payment").First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	allowed := middleware.OwnsBooking(user, &booking) ||
		user.Role == constants.ROLE_ADMIN ||
		(user.Role == constants.ROLE_ORGANIZER && booking.Ticket.Event.CreatedBy == user.ID)
	if !allowed {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	ticketId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)

	booking, svcErr := helper.CreateBooking(database.DB, user.ID, ticketId, input.Quantity)
	if svcErr != nil {
		if svcErr.Extra != nil {
			return utils.ErrorResponseWithData(c, svcErr.Status, svcErr.Message, svcErr.Extra)
		}
		return utils.ErrorResponse(c, svcErr.Status, svcErr.Message, nil)
	}

	if err := database.DB.Preload("Ticket.Event").First(booking, booking.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constants.BOOKING_CREATED,
		"booking": booking,
	})
}

func CancelBooking(c *fiber.Ctx) error {
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

	if !middleware.OwnsBooking(user, &booking) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	if svcErr := helper.CancelBooking(db, &booking); svcErr != nil {
		return utils.ErrorResponse(c, svcErr.Status, svcErr.Message, nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.BOOKING_CANCELLED_OK})
}
