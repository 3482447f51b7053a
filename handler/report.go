package handler

import (
	"log"
	"time"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/helper"
	"pos_cafe/model"
	"pos_cafe/utils"

	"github.com/gofiber/fiber/v2"
)

func reportOutletID(c *fiber.Ctx) uint {
	if id := c.QueryInt("outletId"); id > 0 {
		return uint(id)
	}
	return constants.DefaultOutletID
}

// GetDailyReport answers from the warmed redis cache when it can and falls
// back to a direct rollup. A failed rollup degrades to a zero summary.
func GetDailyReport(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
	}
	outletID := reportOutletID(c)

	if cached := helper.CachedDailySummary(date, outletID); cached != nil {
		return utils.SuccessResponse(c, fiber.StatusOK, cached)
	}

	summary, err := helper.QueryDailySummary(date, outletID)
	if err != nil {
		log.Printf("daily report failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, model.SalesSummary{Period: date})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

func GetMonthlyReport(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	if _, err := time.Parse("2006-01", month); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month, expected YYYY-MM", err)
	}
	outletID := reportOutletID(c)

	summary := model.SalesSummary{Period: month}
	err := database.DB.Raw(`
		SELECT COUNT(*) AS total_orders,
		       COALESCE(SUM(subtotal), 0) AS subtotal,
		       COALESCE(SUM(tax), 0) AS tax,
		       COALESCE(SUM(total), 0) AS total
		FROM orders
		WHERE status = ? AND to_char(created_at, 'YYYY-MM') = ? AND outlet_id = ?`,
		model.OrderCompleted, month, outletID).Scan(&summary).Error
	if err != nil {
		log.Printf("monthly report failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, model.SalesSummary{Period: month})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

func GetRevenueByCategory(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	outletID := reportOutletID(c)

	var rows []model.CategoryRevenue
	err := database.DB.Raw(`
		SELECT c.id AS category_id,
		       c.name AS category_name,
		       COALESCE(SUM(oi.price * oi.qty), 0) AS revenue,
		       COALESCE(SUM(oi.qty), 0) AS total_qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		JOIN categories c ON c.id = p.category_id
		WHERE o.status = ? AND DATE(o.created_at) = ? AND o.outlet_id = ?
		GROUP BY c.id, c.name
		ORDER BY revenue DESC`,
		model.OrderCompleted, date, outletID).Scan(&rows).Error
	if err != nil {
		log.Printf("category revenue report failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, []model.CategoryRevenue{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GetTopProducts groups on the item name snapshot so deleted products still
// show up in the ranking.
func GetTopProducts(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format("2006-01-02"))
	outletID := reportOutletID(c)
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	var rows []model.TopProduct
	err := database.DB.Raw(`
		SELECT COALESCE(MIN(oi.product_id), 0) AS product_id,
		       oi.product_name_snapshot AS product_name,
		       COALESCE(SUM(oi.qty), 0) AS total_qty,
		       COALESCE(SUM(oi.price * oi.qty), 0) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = ? AND DATE(o.created_at) = ? AND o.outlet_id = ?
		GROUP BY oi.product_name_snapshot
		ORDER BY total_qty DESC
		LIMIT ?`,
		model.OrderCompleted, date, outletID, limit).Scan(&rows).Error
	if err != nil {
		log.Printf("top products report failed: %v", err)
		return utils.SuccessResponse(c, fiber.StatusOK, []model.TopProduct{})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
