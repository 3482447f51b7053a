package main

import (
	"log"

	"pos_cafe/config"
	"pos_cafe/database"
	"pos_cafe/handler"
	"pos_cafe/helper"
	"pos_cafe/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	if err := helper.CheckSessionSecret(); err != nil {
		log.Fatalf("session secret: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 5 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	defer database.CloseDB()
	database.ConnectRedis()
	handler.StartOrdersBroadcast()

	if config.Config("CLOUDINARY_CLOUD_NAME") != "" {
		cld := helper.InitCloudinary()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("cld", cld)
			return c.Next()
		})
	}

	helper.StartStockScheduler()
	defer helper.StopStockScheduler()
	helper.StartReportScheduler()
	defer helper.StopReportScheduler()

	app.Static("/images", "./public/images")

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8080")
	log.Fatal(app.Listen(":" + port))
}
