package handler

import (
	"strings"

	"pos_cafe/database"
	"pos_cafe/helper"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

func GetSettings(c *fiber.Ctx) error {
	outletID := reportOutletID(c)
	return utils.SuccessResponse(c, fiber.StatusOK, helper.GetSettings(outletID))
}

// UpdateSetting upserts one key for the outlet.
func UpdateSetting(c *fiber.Ctx) error {
	var input model.SettingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid setting payload", err)
	}
	input.Key = strings.TrimSpace(input.Key)
	if input.Key == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Setting key is required", nil)
	}
	outletID := outletOrDefault(input.OutletID)

	setting := model.Setting{
		OutletID:     outletID,
		SettingKey:   input.Key,
		SettingValue: input.Value,
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outlet_id"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save setting", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.GetSettings(outletID))
}

func GetOutlets(c *fiber.Ctx) error {
	var outlets []model.Outlet
	if err := database.DB.Order("id ASC").Find(&outlets).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, []model.Outlet{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, outlets)
}

func CreateOutlet(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOutletInput)

	outlet := model.Outlet{
		Name:    strings.TrimSpace(input.Name),
		Address: utils.StringPtr(strings.TrimSpace(input.Address)),
		Phone:   utils.StringPtr(strings.TrimSpace(input.Phone)),
	}

	if err := database.DB.Create(&outlet).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create outlet", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, outlet)
}
