package middleware

import (
	"errors"
	"strings"

	"event_manager/constants"
	"event_manager/helper"
	"event_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected gates a route behind a bearer token. Missing header/token is 401,
// a token that fails verification is 403.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no authorization header"))
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		token = strings.TrimSpace(token)
		if token == "" || token == auth {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no bearer token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.INVALID_TOKEN, err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
