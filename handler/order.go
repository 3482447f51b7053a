package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/helper"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrder is the checkout commit: one transaction writes the order
// header, every line item snapshot, the stock deductions and their ledger
// rows. Anything failing rolls the whole order back; there is no retry here,
// retrying is the caller's call so a flaky network can never double-charge.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOrderInput)

	userID, ok := c.Locals("userId").(uint)
	if !ok || userID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_SESSION, errors.New("no authenticated user"))
	}

	if len(input.Items) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_CART, nil)
	}

	outletID := constants.DefaultOutletID
	if input.OutletID != nil && *input.OutletID > 0 {
		outletID = *input.OutletID
	}

	var taxRate decimal.Decimal
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	} else {
		taxRate = helper.GetTaxRate(outletID)
	}

	totals := helper.ComputeTotals(input.Items, taxRate)
	policy := helper.CurrentStockPolicy()

	var order model.Order
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		order = model.Order{
			OutletID:      outletID,
			UserID:        userID,
			OrderNumber:   helper.MakeOrderNumber(time.Now()),
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			Total:         totals.Total,
			PaymentMethod: input.PaymentMethod,
			Status:        model.OrderProcessing,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range input.Items {
			productID := item.ProductID
			notes := utils.StringPtr(strings.TrimSpace(item.Options.Notes))

			orderItem := model.OrderItem{
				OrderID:             order.ID,
				ProductID:           &productID,
				ProductNameSnapshot: item.Name,
				Qty:                 item.Qty,
				Size:                item.Options.Size,
				Mood:                item.Options.Mood,
				SugarLevel:          item.Options.SugarLevel,
				IceLevel:            item.Options.IceLevel,
				Price:               item.Price,
				Notes:               notes,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			// A stock row may not exist yet for this outlet; create it at
			// zero so the decrement below always has a target.
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}, {Name: "outlet_id"}},
				DoNothing: true,
			}).Create(&model.ProductStock{
				ProductID: item.ProductID,
				OutletID:  outletID,
			}).Error; err != nil {
				return err
			}

			if err := helper.DeductStock(tx, policy, item.ProductID, outletID, item.Qty); err != nil {
				return err
			}

			note := "Order " + order.OrderNumber
			if err := tx.Create(&model.StockMovement{
				ProductID: item.ProductID,
				OutletID:  outletID,
				Type:      model.MovementOut,
				Qty:       item.Qty,
				Note:      &note,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, helper.ErrInsufficientStock) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Insufficient stock for one or more items", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ORDER_CREATE_FAILED, err)
	}

	// Store info on the receipt is presentation data; reading it outside the
	// transaction is fine.
	settings := helper.GetSettings(outletID)
	receipt := helper.BuildReceipt(settings, order.OrderNumber, order.CreatedAt, input.PaymentMethod, totals, input.Items)

	go publishOrderCreated(order, receipt)

	return utils.SuccessResponse(c, fiber.StatusCreated, receipt)
}

func publishOrderCreated(order model.Order, receipt model.Receipt) {
	if database.Redis == nil {
		return
	}

	payload, err := json.Marshal(fiber.Map{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"total":       receipt.Total,
		"status":      order.Status,
		"createdAt":   order.CreatedAt,
	})
	if err != nil {
		return
	}

	if err := database.Redis.Publish(context.Background(), database.OrdersChannel, payload).Err(); err != nil {
		log.Printf("order broadcast failed: %v", err)
	}
}

func GetOrders(c *fiber.Ctx) error {
	var filter model.FilterOrder
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	condition := database.DB.Model(&model.Order{})
	if filter.Status != nil && filter.Status.Valid() {
		condition = condition.Where("status = ?", *filter.Status)
	}
	if filter.OutletID != nil {
		condition = condition.Where("outlet_id = ?", *filter.OutletID)
	}
	if filter.StartDate != "" {
		condition = condition.Where("DATE(created_at) >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		condition = condition.Where("DATE(created_at) <= ?", filter.EndDate)
	}

	var totalCount int64
	condition.Count(&totalCount)
	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	var orders []model.Order
	if err := condition.
		Preload("Outlet").
		Preload("User").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		// List reads degrade to empty rather than breaking the dashboard.
		log.Printf("order list failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
			Rows:  []fiber.Map{},
			Limit: filter.Limit,
			Page:  filter.Page,
		})
	}

	rows := make([]fiber.Map, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, fiber.Map{
			"id":            order.ID,
			"outletId":      order.OutletID,
			"outletName":    order.Outlet.Name,
			"userId":        order.UserID,
			"cashierName":   order.User.Name,
			"orderNumber":   order.OrderNumber,
			"subtotal":      order.Subtotal,
			"tax":           order.Tax,
			"total":         order.Total,
			"paymentMethod": order.PaymentMethod,
			"status":        order.Status,
			"createdAt":     order.CreatedAt,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetOrderDetail(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(int)

	var order model.Order
	err := database.DB.
		Preload("Outlet").
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetOrderItemsBulk feeds the history page: one call returns the line items
// for a whole page of orders, grouped by order id.
func GetOrderItemsBulk(c *fiber.Ctx) error {
	var input model.ArrayId
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order id list", err)
	}
	if len(input.IDs) == 0 {
		return utils.SuccessResponse(c, fiber.StatusOK, map[uint][]model.OrderItem{})
	}

	var items []model.OrderItem
	if err := database.DB.
		Where("order_id IN ?", input.IDs).
		Order("order_id DESC, id ASC").
		Find(&items).Error; err != nil {
		log.Printf("order items bulk fetch failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, map[uint][]model.OrderItem{})
	}

	grouped := make(map[uint][]model.OrderItem)
	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, grouped)
}

// UpdateOrderStatus is a bare single-row update. Only Processing orders move
// and only forward; cancelling does not reverse the stock deduction.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateOrderStatusInput)

	var order model.Order
	if err := database.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !order.Status.CanTransitionTo(input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_TRANSITION, errors.New(string(order.Status)+" -> "+string(input.Status)))
	}

	if err := database.DB.Model(&order).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     order.ID,
		"status": input.Status,
	})
}

// EmailReceipt re-projects a committed order as a receipt and mails it.
func EmailReceipt(c *fiber.Ctx) error {
	orderID := c.Locals("inputId").(int)

	type EmailInput struct {
		To string `json:"to"`
	}
	var input EmailInput
	if err := c.BodyParser(&input); err != nil || input.To == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Recipient email is required", err)
	}

	var order model.Order
	if err := database.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	settings := helper.GetSettings(order.OutletID)
	receipt := model.Receipt{
		StoreName:     settings["store_name"],
		StoreAddress:  settings["store_address"],
		StorePhone:    settings["store_phone"],
		OrderNumber:   order.OrderNumber,
		CreatedAt:     order.CreatedAt,
		PaymentMethod: order.PaymentMethod,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
	}
	for _, item := range order.Items {
		notes := ""
		if item.Notes != nil {
			notes = *item.Notes
		}
		receipt.Items = append(receipt.Items, model.ReceiptItem{
			Name:       item.ProductNameSnapshot,
			Qty:        item.Qty,
			Price:      item.Price,
			Size:       item.Size,
			Mood:       item.Mood,
			SugarLevel: item.SugarLevel,
			IceLevel:   item.IceLevel,
			Notes:      notes,
		})
	}

	utils.SendReceiptEmail(input.To, receipt)

	return utils.SuccessResponse(c, fiber.StatusAccepted, fiber.Map{"message": "receipt queued"})
}
