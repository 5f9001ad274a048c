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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func CreateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTicketInput)
	eventId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !middleware.OwnsEvent(user, &event) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	ticket := model.Ticket{
		EventId:  event.ID,
		Type:     input.Type,
		Price:    input.Price,
		Quantity: input.Quantity,
	}
	if err := db.Create(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.InvalidateEventCache(event.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constants.TICKET_CREATED,
		"ticket":  ticket,
	})
}

func UpdateTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateTicketInput)
	ticketId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var ticket model.Ticket
	if err := db.Preload("Event").First(&ticket, ticketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !middleware.OwnsEvent(user, &ticket.Event) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	if err := copier.CopyWithOption(&ticket, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.InvalidateEventCache(ticket.EventId)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.TICKET_UPDATED,
		"ticket":  ticket,
	})
}

func DeleteTicket(c *fiber.Ctx) error {
	ticketId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var ticket model.Ticket
	if err := db.Preload("Event").First(&ticket, ticketId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !middleware.OwnsEvent(user, &ticket.Event) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
	}

	if err := db.Delete(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.InvalidateEventCache(ticket.EventId)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.TICKET_DELETED})
}

// GetEventTickets lists the ticket tiers of one event.
func GetEventTickets(c *fiber.Ctx) error {
	eventId := uint(c.Locals("inputId").(int))
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var tickets []model.Ticket
	if err := db.Where("event_id = ?", event.ID).Order("price asc").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tickets)
}

// GetTicketAvailability exposes the live remaining quantity on a ticket.
func GetTicketAvailability(c *fiber.Ctx) error {
	ticketId := uint(c.Locals("inputId").(int))

	available, err := helper.Availability(database.DB, ticketId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticketId":  ticketId,
		"available": available,
	})
}
