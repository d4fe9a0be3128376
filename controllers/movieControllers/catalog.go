package movieController

import (
	"cinevault/database"
	"cinevault/middleware"
	"cinevault/models"

	"github.com/gofiber/fiber/v2"
)

// ListCategories returns all categories, alphabetical
func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("name ASC").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", categories)
}

// ListGenres returns all genres, alphabetical
func ListGenres(c *fiber.Ctx) error {
	var genres []models.Genre
	if err := database.Database.Db.Order("name ASC").Find(&genres).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch genres!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Genres fetched!", genres)
}
