package userProfileRoutes

import (
	userProfileController "cinevault/controllers/userControllers"
	"cinevault/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userProfileController.UpdateProfile)
}
