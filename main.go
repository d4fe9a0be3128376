package main

import (
	"cinevault/config"
	"cinevault/database"
	adminRoutes "cinevault/routers/adminRoutes"
	authRoutes "cinevault/routers/authRoutes"
	movieRoutes "cinevault/routers/movieRoutes"
	userProfileRoutes "cinevault/routers/userRoutes"
	"cinevault/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve stored posters
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	movieRoutes.SetupMovieRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.StartPosterCleanup()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
