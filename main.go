package main

import (
	"log"

	"ticket_marketplace/config"
	"ticket_marketplace/database"
	"ticket_marketplace/handler"
	"ticket_marketplace/helper"
	"ticket_marketplace/router"
	"ticket_marketplace/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config("CORS_ORIGIN"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	utils.ConnectCache()

	handler.PaymentGateway = helper.NewMockGateway()
	handler.PaymentNotifier = &helper.DBNotifier{DB: database.DB}

	helper.StartNotificationScheduler()
	defer helper.StopNotificationScheduler()

	router.SetupRoutes(app)

	port := config.Config("APP_PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
