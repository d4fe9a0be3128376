package movieValidator

import (
	"cinevault/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// MovieRequest carries the fields of the add/edit movie form. The
// poster itself arrives as a multipart file or as posterUrl.
type MovieRequest struct {
	Title       string  `json:"title" form:"title" validate:"required,max=200"`
	ReleaseDate string  `json:"releaseDate" form:"releaseDate" validate:"required,datetime=2006-01-02"`
	Genre       string  `json:"genre" form:"genre" validate:"required,max=100"`
	Rating      float64 `json:"rating" form:"rating" validate:"gte=0,lte=10"`
	Overview    string  `json:"overview" form:"overview"`
	CategoryID  uint    `json:"categoryId" form:"categoryId" validate:"required"`
	PosterURL   string  `json:"posterUrl" form:"posterUrl" validate:"omitempty,url"`
}

// movieFieldMessages maps a failed rule to a user-facing message.
func movieFieldMessages(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fe := range validationErrors {
		switch fe.Field() {
		case "Title":
			errors["title"] = "Title is required (max 200 characters)!"
		case "ReleaseDate":
			errors["releaseDate"] = "Release date must be in YYYY-MM-DD format!"
		case "Genre":
			errors["genre"] = "Genre is required!"
		case "Rating":
			errors["rating"] = "Rating must be between 0 and 10!"
		case "CategoryID":
			errors["categoryId"] = "Category is required!"
		case "PosterURL":
			errors["posterUrl"] = "Poster URL must be a valid URL!"
		}
	}
	return errors
}

// SaveMovie validates the add/edit movie form
func SaveMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MovieRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, movieFieldMessages(err))
		}

		c.Locals("validatedMovie", reqData)
		return c.Next()
	}
}
