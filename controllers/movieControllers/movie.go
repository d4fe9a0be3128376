package movieController

import (
	"cinevault/config"
	"cinevault/database"
	"cinevault/middleware"
	"cinevault/models"
	"cinevault/utils"
	movieValidator "cinevault/validators/movie"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// resolvePoster stores the uploaded poster file if one was sent,
// otherwise fetches it from posterUrl. Returns the stored filename or
// "" when the request carries no poster at all.
func resolvePoster(c *fiber.Ctx, posterURL string) (string, error) {
	if file, err := c.FormFile("poster"); err == nil && file != nil {
		return utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	}
	if posterURL != "" {
		return utils.FetchPosterFromURL(posterURL, config.AppConfig.UploadDir)
	}
	return "", nil
}

// genreExists checks the submitted genre label against the genre table
func genreExists(name string) bool {
	err := database.Database.Db.Where("name = ?", name).First(&models.Genre{}).Error
	return err == nil
}

// ListMovies returns all movies, newest release first
func ListMovies(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Movie{}).Count(&total)

	var movies []models.Movie
	if err := db.Preload("Category").
		Order("release_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&movies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch movies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movies fetched!", fiber.Map{
		"movies": movies,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetMovie returns one movie together with its reviews
func GetMovie(c *fiber.Ctx) error {
	movieID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid movie id!", nil)
	}

	db := database.Database.Db

	var movie models.Movie
	if err := db.Preload("Category").First(&movie, movieID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}

	var reviews []models.Review
	db.Where("movie_id = ?", movie.ID).Order("created_at DESC").Find(&reviews)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie fetched!", fiber.Map{
		"movie":   movie,
		"reviews": reviews,
	})
}

// SearchMovies filters movies by a title substring, case-insensitive
func SearchMovies(c *fiber.Ctx) error {
	query := c.Query("q", "")

	db := database.Database.Db

	var movies []models.Movie
	if err := db.Preload("Category").
		Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%").
		Order("release_date DESC").
		Find(&movies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search movies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movies fetched!", fiber.Map{
		"movies": movies,
		"query":  query,
	})
}

// AddMovie creates a movie owned by the authenticated user
func AddMovie(c *fiber.Ctx) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if decision := middleware.Authorize(actor, middleware.OpCreateMovie, 0); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	reqData, ok := c.Locals("validatedMovie").(*movieValidator.MovieRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if !genreExists(reqData.Genre) {
		return middleware.ValidationErrorResponse(c, map[string]string{"genre": "Unknown genre!"})
	}

	var category models.Category
	if err := db.First(&category, reqData.CategoryID).Error; err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"categoryId": "Unknown category!"})
	}

	// Validator already checked the format
	releaseDate, _ := time.Parse("2006-01-02", reqData.ReleaseDate)

	poster, err := resolvePoster(c, reqData.PosterURL)
	if err != nil {
		log.Printf("Error storing poster: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store poster!", nil)
	}

	movie := models.Movie{
		Title:       reqData.Title,
		ReleaseDate: datatypes.Date(releaseDate),
		Genre:       reqData.Genre,
		Rating:      reqData.Rating,
		Overview:    reqData.Overview,
		Poster:      poster,
		UserID:      actor.ID, // Actor becomes the owner
		CategoryID:  category.ID,
	}

	if err := db.Create(&movie).Error; err != nil {
		log.Printf("Error saving movie: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add movie!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Movie added successfully.", movie)
}

// UpdateMovie edits an existing movie. Owner only; the owner field
// itself never changes.
func UpdateMovie(c *fiber.Ctx) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	movieID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid movie id!", nil)
	}

	db := database.Database.Db

	var movie models.Movie
	if err := db.First(&movie, movieID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}

	if decision := middleware.Authorize(actor, middleware.OpUpdateMovie, movie.UserID); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	reqData, ok := c.Locals("validatedMovie").(*movieValidator.MovieRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if !genreExists(reqData.Genre) {
		return middleware.ValidationErrorResponse(c, map[string]string{"genre": "Unknown genre!"})
	}

	var category models.Category
	if err := db.First(&category, reqData.CategoryID).Error; err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"categoryId": "Unknown category!"})
	}

	releaseDate, _ := time.Parse("2006-01-02", reqData.ReleaseDate)

	poster, err := resolvePoster(c, reqData.PosterURL)
	if err != nil {
		log.Printf("Error storing poster: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store poster!", nil)
	}

	movie.Title = reqData.Title
	movie.ReleaseDate = datatypes.Date(releaseDate)
	movie.Genre = reqData.Genre
	movie.Rating = reqData.Rating
	movie.Overview = reqData.Overview
	movie.CategoryID = category.ID
	if poster != "" {
		movie.Poster = poster
	}

	if err := db.Save(&movie).Error; err != nil {
		log.Printf("Error updating movie: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update movie!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie updated successfully.", movie)
}

// DeleteMovie removes a movie and its reviews. Owner only.
func DeleteMovie(c *fiber.Ctx) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	movieID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid movie id!", nil)
	}

	db := database.Database.Db

	var movie models.Movie
	if err := db.First(&movie, movieID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}

	if decision := middleware.Authorize(actor, middleware.OpDeleteMovie, movie.UserID); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	if err := database.DeleteMovieCascade(db, movie.ID); err != nil {
		log.Printf("Error deleting movie: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete movie!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Movie deleted successfully.", nil)
}
