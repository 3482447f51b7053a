package handler

import (
	"errors"
	"log"
	"time"

	"pos_cafe/config"
	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/helper"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
)

func setSessionCookie(c *fiber.Ctx, token string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.IsProduction(),
		Path:     "/",
		MaxAge:   maxAge,
	})
}

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	user, err := helper.GetUserByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Unknown email and wrong password answer identically.
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}
	if !helper.VerifyPassword(loginInput.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, nil)
	}

	// Lazy migration off plaintext storage: rows created before hashing get
	// rehashed the first time their owner logs in.
	if helper.IsLegacyPlaintext(user.Password) {
		if hashed, err := helper.HashPassword(loginInput.Password); err == nil {
			if err := database.DB.Model(&model.User{}).Where("id = ?", user.ID).Update("password", hashed).Error; err != nil {
				log.Printf("password migration for user %d failed: %v", user.ID, err)
			}
		}
	}

	token, err := helper.CreateSessionToken(user.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	setSessionCookie(c, token, helper.SessionMaxAgeSeconds)

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"outletId": user.OutletID,
		},
	})
}

// Logout only deletes the cookie. There is no server-side revocation; a
// copied token stays valid until its expiry.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.IsProduction(),
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}

func Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok || userID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_SESSION, nil)
	}

	var user model.User
	if err := database.DB.Preload("Outlet").First(&user, userID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_SESSION, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"outletId":   user.OutletID,
		"outletName": user.Outlet.Name,
		"avatarUrl":  user.AvatarUrl,
	})
}
