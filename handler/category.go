package handler

import (
	"strings"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, []model.Category{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CategoryInput)

	var category model.Category
	copier.Copy(&category, &input)
	category.Name = strings.TrimSpace(input.Name)

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create category", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CategoryInput)

	var category model.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CATEGORY_NOT_FOUND, err)
	}

	copier.Copy(&category, &input)
	category.Name = strings.TrimSpace(input.Name)

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update category", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// DeleteCategories refuses to remove a category that still has products,
// instead of silently orphaning them.
func DeleteCategories(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	var inUse int64
	if err := database.DB.Model(&model.Product{}).Where("category_id IN ?", input.IDs).Count(&inUse).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if inUse > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Category still has products", nil)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&model.Category{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete categories", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
