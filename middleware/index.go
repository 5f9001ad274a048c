package middleware

import (
	"errors"
	"os"
	"strings"

	"ticket_marketplace/constants"
	"ticket_marketplace/helper"
	"ticket_marketplace/model"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// LoadUser resolves the token into the persisted user record and stashes it
// in Locals for the handlers. Runs after Protected().
func LoadUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helper.GetUserFromToken(c)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, err)
		}
		c.Locals("authUser", user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by LoadUser, or nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, ok := c.Locals("authUser").(*model.User)
	if !ok {
		return nil
	}
	return user
}
