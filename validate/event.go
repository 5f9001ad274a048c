package validate

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"ticket_marketplace/constants"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
)

func FilterEvents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterEventInput

		if err := c.QueryParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if !input.Date.After(time.Now()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_DATE_PAST, errors.New("date must be after now"))
		}

		c.Locals("input", input)

		return c.Next()
	}
}

func UpdateEvent(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateEventInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if input.Date != nil && !input.Date.After(time.Now()) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EVENT_DATE_PAST, errors.New("date must be after now"))
		}

		c.Locals("input", input)
		c.Locals("inputId", valueKey)
		return c.Next()
	}
}
