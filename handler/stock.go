package handler

import (
	"log"
	"strings"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/helper"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetStock(c *fiber.Ctx) error {
	outletID := constants.DefaultOutletID
	if id := c.QueryInt("outletId"); id > 0 {
		outletID = uint(id)
	}

	var stocks []model.ProductStock
	if err := database.DB.Where("outlet_id = ?", outletID).Find(&stocks).Error; err != nil {
		log.Printf("stock list failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, []model.ProductStock{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stocks)
}

func GetLowStock(c *fiber.Ctx) error {
	outletID := constants.DefaultOutletID
	if id := c.QueryInt("outletId"); id > 0 {
		outletID = uint(id)
	}

	rows, err := helper.QueryLowStock(outletID)
	if err != nil {
		log.Printf("low stock query failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, []model.LowStockRow{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// UpdateStock sets the counter to an absolute value and records that value
// as one ADJUSTMENT ledger row, the audit trail of a manual recount.
func UpdateStock(c *fiber.Ctx) error {
	input := c.Locals("input").(model.StockUpdateInput)
	outletID := outletOrDefault(input.OutletID)

	if input.StockQty < 0 {
		input.StockQty = 0
	}

	var product model.Product
	if err := database.DB.First(&product, input.ProductID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	note := strings.TrimSpace(input.Note)
	if note == "" {
		note = "Manual stock adjustment"
	}

	var stock model.ProductStock
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "outlet_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"stock_qty", "min_stock"}),
		}).Create(&model.ProductStock{
			ProductID: input.ProductID,
			OutletID:  outletID,
			StockQty:  input.StockQty,
			MinStock:  input.MinStock,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ? AND outlet_id = ?", input.ProductID, outletID).First(&stock).Error; err != nil {
			return err
		}
		return tx.Create(&model.StockMovement{
			ProductID: input.ProductID,
			OutletID:  outletID,
			Type:      model.MovementAdjustment,
			Qty:       input.StockQty,
			Note:      &note,
		}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update stock", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stock)
}

// AddStockMovement applies a manual IN or OUT to the counter and appends
// the matching ledger row. Quantities below one are floored to one.
func AddStockMovement(c *fiber.Ctx) error {
	input := c.Locals("input").(model.StockMovementInput)
	outletID := outletOrDefault(input.OutletID)

	qty := input.Qty
	if qty < 1 {
		qty = 1
	}

	var product model.Product
	if err := database.DB.First(&product, input.ProductID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	note := utils.StringPtr(strings.TrimSpace(input.Note))

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "outlet_id"}},
			DoNothing: true,
		}).Create(&model.ProductStock{
			ProductID: input.ProductID,
			OutletID:  outletID,
			StockQty:  0,
		}).Error; err != nil {
			return err
		}

		switch input.Type {
		case model.MovementIn:
			if err := tx.Model(&model.ProductStock{}).
				Where("product_id = ? AND outlet_id = ?", input.ProductID, outletID).
				Update("stock_qty", gorm.Expr("stock_qty + ?", qty)).Error; err != nil {
				return err
			}
		case model.MovementOut:
			if err := helper.DeductStock(tx, helper.CurrentStockPolicy(), input.ProductID, outletID, qty); err != nil {
				return err
			}
		default:
			if err := tx.Model(&model.ProductStock{}).
				Where("product_id = ? AND outlet_id = ?", input.ProductID, outletID).
				Update("stock_qty", qty).Error; err != nil {
				return err
			}
		}

		return tx.Create(&model.StockMovement{
			ProductID: input.ProductID,
			OutletID:  outletID,
			Type:      input.Type,
			Qty:       qty,
			Note:      note,
		}).Error
	})
	if err != nil {
		if err == helper.ErrInsufficientStock {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Insufficient stock", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record movement", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"recorded": true})
}

func GetStockMovements(c *fiber.Ctx) error {
	outletID := constants.DefaultOutletID
	if id := c.QueryInt("outletId"); id > 0 {
		outletID = uint(id)
	}
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var movements []model.StockMovement
	if err := database.DB.Preload("Product").
		Where("outlet_id = ?", outletID).
		Order("created_at DESC").
		Limit(limit).
		Find(&movements).Error; err != nil {
		log.Printf("movement list failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, []model.StockMovement{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movements)
}
