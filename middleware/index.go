package middleware

import (
	"errors"
	"strings"

	"pos_cafe/constants"
	"pos_cafe/helper"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected verifies the session cookie (or a bearer header for API
// clients) and stores the authenticated user id in Locals. Every failure
// reads the same to the caller.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(helper.SessionCookieName)

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_SESSION, errors.New("no token"))
		}

		payload, ok := helper.VerifySessionToken(token)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_SESSION, errors.New("token rejected"))
		}

		c.Locals("userId", payload.Uid)
		return c.Next()
	}
}
