package handler

import (
	"encoding/json"
	"errors"
	"time"

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

// GetEvents is the public listing: search, location and date-range filters,
// paginated, ordered by date ascending. Pages are cached per filter set.
func GetEvents(c *fiber.Ctx) error {
	input := c.Locals("input").(model.FilterEventInput)
	perPage, page := input.Normalize()

	cacheKey := utils.EventListCacheKey(input.Search, input.Location, input.DateFrom, input.DateTo, perPage, page)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		return c.Status(fiber.StatusOK).Type("json").Send(cached)
	}

	db := database.DB
	query := db.Model(&model.Event{}).
		Preload("Organizer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Tickets")

	if input.Search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+input.Search+"%", "%"+input.Search+"%")
	}
	if input.Location != "" {
		query = query.Where("location LIKE ?", "%"+input.Location+"%")
	}
	if input.DateFrom != "" {
		if from, err := time.Parse("2006-01-02", input.DateFrom); err == nil {
			query = query.Where("date >= ?", from)
		}
	}
	if input.DateTo != "" {
		if to, err := time.Parse("2006-01-02", input.DateTo); err == nil {
			query = query.Where("date <= ?", to)
		}
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var events []model.Event
	if err := utils.ApplyPagination(query.Order("date asc"), perPage, page).Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := fiber.Map{
		"status": "success",
		"data": model.ResponseCustom{
			Rows:       events,
			PerPage:    perPage,
			Page:       page,
			TotalCount: totalCount,
		},
	}

	if payload, err := json.Marshal(response); err == nil {
		utils.CacheSetList(cacheKey, payload)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func GetEventById(c *fiber.Ctx) error {
	eventId := uint(c.Locals("inputId").(int))

	cacheKey := utils.EventDetailCacheKey(eventId)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		return c.Status(fiber.StatusOK).Type("json").Send(cached)
	}

	var event model.Event
	err := database.DB.
		Preload("Organizer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("Tickets").
		First(&event, eventId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := fiber.Map{"status": "success", "data": event}
	if payload, err := json.Marshal(response); err == nil {
		utils.CacheSetDetail(cacheKey, payload)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)
	user := middleware.CurrentUser(c)
	db := database.DB

	event := model.Event{
		Title:       input.Title,
		Slug:        helper.GenerateUniqueEventSlug(db, input.Title),
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		CreatedBy:   user.ID,
	}
	if err := db.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.InvalidateEventCache(event.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constants.EVENT_CREATED,
		"event":   event,
	})
}

func UpdateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateEventInput)
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

	if err := copier.CopyWithOption(&event, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Title != nil && *input.Title != "" {
		event.Slug = helper.GenerateUniqueEventSlug(db, *input.Title)
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.InvalidateEventCache(event.ID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.EVENT_UPDATED,
		"event":   event,
	})
}

// DeleteEvent removes the event; tickets, their bookings and payments go
// with it down the cascade chain.
func DeleteEvent(c *fiber.Ctx) error {
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

	if err := db.Delete(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.InvalidateEventCache(eventId)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.EVENT_DELETED})
}

// GetMyEvents lists the authenticated organizer's own events.
func GetMyEvents(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var events []model.Event
	if err := database.DB.
		Preload("Tickets").
		Where("created_by = ?", user.ID).
		Order("date asc").
		Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, events)
}
