package main

import (
	"log"

	"event_manager/config"
	"event_manager/database"
	"event_manager/helper"
	"event_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.ConfigOrDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Authorization, Accept",
		MaxAge:       600,
	}))

	database.ConnectDB()

	app.Static("/uploads", helper.UploadDir())

	router.SetupRoutes(app)

	port := config.ConfigOrDefault("PORT", "3000")
	log.Fatal(app.Listen(":" + port))
}
