package handler

import (
	"errors"

	"ticket_marketplace/constants"
	"ticket_marketplace/database"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// Admin user management.

func GetUsers(c *fiber.Ctx) error {
	input := c.Locals("input").(model.FilterUserInput)
	db := database.DB

	perPage, page := input.Normalize()

	query := db.Model(&model.User{})
	if input.Role != nil {
		query = query.Where("role = ?", *input.Role)
	}
	if input.SearchKey != "" {
		query = query.Where("name LIKE ? OR email LIKE ?", "%"+input.SearchKey+"%", "%"+input.SearchKey+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var users []model.User
	if err := utils.ApplyPagination(query.Order("created_at desc"), perPage, page).Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       users,
		PerPage:    perPage,
		Page:       page,
		TotalCount: totalCount,
	})
}

func GetUserById(c *fiber.Ctx) error {
	userId := uint(c.Locals("inputId").(int))

	var user model.User
	if err := database.DB.Preload("Bookings").Preload("Payments").First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// UpdateUser edits name/phone/role. A role change writes the single role
// column; every authorization path reads it from there.
func UpdateUser(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateUserInput)
	userId := uint(c.Locals("inputId").(int))
	db := database.DB

	var user model.User
	if err := db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&user, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": constants.USER_UPDATED,
		"user":    user,
	})
}

func DeleteUser(c *fiber.Ctx) error {
	userId := uint(c.Locals("inputId").(int))

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": constants.USER_DELETED})
}
