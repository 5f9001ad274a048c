package handler

import (
	"errors"
	"time"

	"ticket_marketplace/constants"
	"ticket_marketplace/database"
	"ticket_marketplace/middleware"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetNotifications lists the caller's inbox, unread first.
func GetNotifications(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var notifications []model.Notification
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("read_at IS NULL desc, created_at desc").
		Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	notificationId := uint(c.Locals("inputId").(int))
	user := middleware.CurrentUser(c)
	db := database.DB

	var notification model.Notification
	if err := db.Where("user_id = ?", user.ID).First(&notification, notificationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if notification.ReadAt == nil {
		now := time.Now()
		if err := db.Model(&notification).Update("read_at", &now).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notification)
}
