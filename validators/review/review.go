package reviewValidator

import (
	"cinevault/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ReviewRequest is the review submission body. Rating is an integer,
// 1 through 10.
type ReviewRequest struct {
	Rating  *int   `json:"rating" validate:"required,gte=1,lte=10"`
	Comment string `json:"comment"`
}

// SubmitReview validates a review submission
func SubmitReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"rating": "Rating must be between 1 and 10!",
			})
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
