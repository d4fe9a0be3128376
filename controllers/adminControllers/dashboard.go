package adminController

import (
	"cinevault/database"
	"cinevault/middleware"
	"cinevault/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// Dashboard returns catalogue totals plus this-month growth figures
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db
	monthStart := now.BeginningOfMonth()

	var totalUsers, totalMovies, totalReviews int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Movie{}).Count(&totalMovies)
	db.Model(&models.Review{}).Count(&totalReviews)

	var usersThisMonth, moviesThisMonth, reviewsThisMonth int64
	db.Model(&models.User{}).Where("created_at >= ?", monthStart).Count(&usersThisMonth)
	db.Model(&models.Movie{}).Where("created_at >= ?", monthStart).Count(&moviesThisMonth)
	db.Model(&models.Review{}).Where("created_at >= ?", monthStart).Count(&reviewsThisMonth)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats.", fiber.Map{
		"totals": fiber.Map{
			"users":   totalUsers,
			"movies":  totalMovies,
			"reviews": totalReviews,
		},
		"thisMonth": fiber.Map{
			"users":   usersThisMonth,
			"movies":  moviesThisMonth,
			"reviews": reviewsThisMonth,
		},
	})
}
