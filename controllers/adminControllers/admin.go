package adminController

import (
	"cinevault/config"
	"cinevault/database"
	"cinevault/middleware"
	"cinevault/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// The whole /admin group sits behind middleware.RequireSuperuser, so
// every handler here runs with a superuser actor already verified.

// AddCategory creates a new movie category
func AddCategory(c *fiber.Ctx) error {
	name, ok := c.Locals("validatedName").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Reject duplicate names, exact match
	if err := db.Where("name = ?", name).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		// Unique index is the last line of defense if the check above raced
		log.Printf("Error saving category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to add category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category added successfully.", category)
}

// AddGenre creates a new genre
func AddGenre(c *fiber.Ctx) error {
	name, ok := c.Locals("validatedName").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ?", name).First(&models.Genre{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Genre already exists!", nil)
	}

	genre := models.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		log.Printf("Error saving genre: %v", err)
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Failed to add genre!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Genre added successfully.", genre)
}

// AddUser creates a user from the admin surface
func AddUser(c *fiber.Ctx) error {
	reqData := new(struct {
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username:  reqData.Username,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User added successfully.", newUser)
}

// DeleteUser removes a user together with their movies and reviews
func DeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.DeleteUserCascade(db, user.ID); err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}

// UserList returns a paginated user list, superusers excluded
func UserList(c *fiber.Ctx) error {
	page, _ := c.Locals("page").(int)
	limit, _ := c.Locals("limit").(int)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var users []models.User
	var total int64

	if err := db.
		Where("role != ?", models.RoleSuperuser).
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	db.Model(&models.User{}).
		Where("role != ?", models.RoleSuperuser).
		Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
