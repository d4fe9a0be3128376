package movieController

import (
	"cinevault/database"
	"cinevault/middleware"
	"cinevault/models"
	reviewValidator "cinevault/validators/review"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmitReview creates or updates the actor's review for a movie.
// The write is an atomic upsert keyed on the (movie_id, user_id)
// unique index: resubmission updates rating/comment on the existing
// row instead of inserting a second one, so concurrent duplicate
// submissions cannot both land as inserts.
func SubmitReview(c *fiber.Ctx) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	movieID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid movie id!", nil)
	}

	if decision := middleware.Authorize(actor, middleware.OpSubmitReview, 0); !decision.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, decision.Reason, nil)
	}

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if movie exists
	var movie models.Movie
	if err := db.First(&movie, movieID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}

	review := models.Review{
		MovieID: movie.ID,
		UserID:  actor.ID,
		Rating:  *reqData.Rating,
		Comment: reqData.Comment,
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(&review).Error; err != nil {
		log.Printf("Error saving review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	// Return the stored row; on the update path it keeps the original
	// identity and creation time.
	var saved models.Review
	if err := db.Where("movie_id = ? AND user_id = ?", movie.ID, actor.ID).First(&saved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review saved successfully.", saved)
}

// ListReviews returns the reviews for a movie with reviewer names
func ListReviews(c *fiber.Ctx) error {
	movieID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid movie id!", nil)
	}

	db := database.Database.Db

	var movie models.Movie
	if err := db.First(&movie, movieID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Movie not found!", nil)
	}

	var reviews []models.Review
	if err := db.Where("movie_id = ?", movie.ID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username")
		}).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewResponse struct {
		models.Review
		Reviewer string `json:"reviewer"`
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, ReviewResponse{
			Review:   r,
			Reviewer: r.User.Username,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", fiber.Map{
		"reviews": response,
	})
}
