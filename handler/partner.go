package handler

import (
	"strings"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPartners(c *fiber.Ctx) error {
	var partners []model.Partner
	if err := database.DB.Order("name ASC").Find(&partners).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, []model.Partner{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, partners)
}

func CreatePartner(c *fiber.Ctx) error {
	input := c.Locals("input").(model.PartnerInput)

	var partner model.Partner
	copier.Copy(&partner, &input)
	partner.Name = strings.TrimSpace(input.Name)

	if err := database.DB.Create(&partner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create partner", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, partner)
}

func UpdatePartner(c *fiber.Ctx) error {
	partnerID := c.Locals("inputId").(int)
	input := c.Locals("input").(model.PartnerInput)

	var partner model.Partner
	if err := database.DB.First(&partner, partnerID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PARTNER_NOT_FOUND, err)
	}

	copier.Copy(&partner, &input)
	partner.Name = strings.TrimSpace(input.Name)

	if err := database.DB.Save(&partner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update partner", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, partner)
}

func DeletePartners(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Partner{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete partners", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
