package movieRoutes

import (
	movieControllers "cinevault/controllers/movieControllers"
	"cinevault/middleware"
	movieValidators "cinevault/validators/movie"
	reviewValidators "cinevault/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupMovieRoutes(app *fiber.App) {
	movieGroup := app.Group("/movies")

	// Public catalogue
	movieGroup.Get("/", movieControllers.ListMovies)
	movieGroup.Get("/search", movieControllers.SearchMovies)
	movieGroup.Get("/:id", movieControllers.GetMovie)
	movieGroup.Get("/:id/reviews", movieControllers.ListReviews)

	// Authenticated mutation
	movieGroup.Post("/", movieValidators.SaveMovie(), middleware.JWTMiddleware, movieControllers.AddMovie)
	movieGroup.Put("/:id", movieValidators.SaveMovie(), middleware.JWTMiddleware, movieControllers.UpdateMovie)
	movieGroup.Delete("/:id", middleware.JWTMiddleware, movieControllers.DeleteMovie)
	movieGroup.Post("/:id/review", reviewValidators.SubmitReview(), middleware.JWTMiddleware, movieControllers.SubmitReview)

	// Form lookups
	app.Get("/categories", movieControllers.ListCategories)
	app.Get("/genres", movieControllers.ListGenres)
}
