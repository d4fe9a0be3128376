package middleware

import (
	"cinevault/database"
	"cinevault/models"

	"github.com/gofiber/fiber/v2"
)

// Operation names a mutating action that must pass the guard before it
// touches the store.
type Operation string

const (
	OpCreateMovie   Operation = "movie:create"
	OpUpdateMovie   Operation = "movie:update"
	OpDeleteMovie   Operation = "movie:delete"
	OpSubmitReview  Operation = "review:submit"
	OpManageCatalog Operation = "catalog:manage" // category/genre/user administration
)

// Decision is the guard's verdict for one (actor, operation, target).
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize is the single decision table for every mutating operation.
// ownerID is the owning user of the target record; pass 0 for
// operations with no target. The guard consults nothing beyond the
// actor's identity/role and the target's owner.
func Authorize(actor *models.User, op Operation, ownerID uint) Decision {
	if actor == nil {
		return deny("Authentication required!")
	}

	switch op {
	case OpCreateMovie, OpSubmitReview:
		// Any authenticated user; the actor becomes the owner.
		return allow()

	case OpUpdateMovie, OpDeleteMovie:
		if actor.ID != ownerID {
			return deny("You do not have permission to modify this movie!")
		}
		return allow()

	case OpManageCatalog:
		if !actor.IsSuperuser() {
			return deny("Superuser access required!")
		}
		return allow()
	}

	return deny("Unknown operation!")
}

// CurrentUser loads the actor placed in context by JWTMiddleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RequireSuperuser guards an admin route group. The privilege check
// runs as a precondition here so no admin handler body ever executes
// for a non-superuser actor.
func RequireSuperuser(c *fiber.Ctx) error {
	user, err := CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User not found",
			"data":    nil,
		})
	}

	if decision := Authorize(user, OpManageCatalog, 0); !decision.Allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": decision.Reason,
			"data":    nil,
		})
	}

	c.Locals("currentUser", user)
	return c.Next()
}
