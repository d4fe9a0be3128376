package adminRoutes

import (
	adminControllers "cinevault/controllers/adminControllers"
	"cinevault/middleware"
	adminValidators "cinevault/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	// Privilege check runs once here, before any admin handler body
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireSuperuser)

	adminGroup.Post("/category", adminValidators.AddName(), adminControllers.AddCategory)
	adminGroup.Post("/genre", adminValidators.AddName(), adminControllers.AddGenre)
	adminGroup.Post("/user", adminValidators.AddUser(), adminControllers.AddUser)
	adminGroup.Delete("/user/:id", adminControllers.DeleteUser)
	adminGroup.Get("/users", adminValidators.UserList(), adminControllers.UserList)
	adminGroup.Get("/dashboard", adminControllers.Dashboard)
}
