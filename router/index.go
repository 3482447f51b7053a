package router

import (
	"pos_cafe/handler"
	"pos_cafe/middleware"
	"pos_cafe/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	category := v1.Group("/category", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), validate.CreateCategory(), handler.UpdateCategory)
	category.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategories)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.Protected(), handler.GetProducts)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.GetById("productId"), validate.CreateProduct(), handler.UpdateProduct)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	product.Post("/:productId/image", middleware.Protected(), validate.GetById("productId"), handler.UploadProductImage)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	stock := v1.Group("/stock", logger.New())
	stock.Get("/", middleware.Protected(), handler.GetStock)
	stock.Get("/low", middleware.Protected(), handler.GetLowStock)
	stock.Put("/", middleware.Protected(), validate.UpdateStock(), handler.UpdateStock)
	stock.Post("/movement", middleware.Protected(), validate.AddStockMovement(), handler.AddStockMovement)
	stock.Get("/movement", middleware.Protected(), handler.GetStockMovements)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Post("/items-bulk", middleware.Protected(), handler.GetOrderItemsBulk)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderDetail)
	order.Patch("/:orderId/status", middleware.Protected(), validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	order.Post("/:orderId/email-receipt", middleware.Protected(), validate.GetById("orderId"), handler.EmailReceipt)

	report := v1.Group("/report", logger.New())
	report.Get("/daily", middleware.Protected(), handler.GetDailyReport)
	report.Get("/monthly", middleware.Protected(), handler.GetMonthlyReport)
	report.Get("/category-revenue", middleware.Protected(), handler.GetRevenueByCategory)
	report.Get("/top-products", middleware.Protected(), handler.GetTopProducts)

	setting := v1.Group("/setting", logger.New())
	setting.Get("/", middleware.Protected(), handler.GetSettings)
	setting.Put("/", middleware.Protected(), handler.UpdateSetting)

	outlet := v1.Group("/outlet", logger.New())
	outlet.Get("/", middleware.Protected(), handler.GetOutlets)
	outlet.Post("/", middleware.Protected(), validate.CreateOutlet(), handler.CreateOutlet)

	partner := v1.Group("/partner", logger.New())
	partner.Get("/", middleware.Protected(), handler.GetPartners)
	partner.Post("/", middleware.Protected(), validate.CreatePartner(), handler.CreatePartner)
	partner.Put("/:partnerId", middleware.Protected(), validate.GetById("partnerId"), validate.CreatePartner(), handler.UpdatePartner)
	partner.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePartners)

	app.Get("/ws/orders", websocket.New(handler.OrdersFeed))
}
