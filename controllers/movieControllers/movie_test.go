package movieController_test

import (
	"bytes"
	"cinevault/config"
	"cinevault/database"
	"cinevault/middleware"
	"cinevault/models"
	movieRoutes "cinevault/routers/movieRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		DBDriver:  "sqlite",
		DBName:    fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
		JWTKey:    "test-secret",
		SaltRound: 4,
		UploadDir: t.TempDir(),
	}
	database.ConnectDb()

	app := fiber.New()
	movieRoutes.SetupMovieRoutes(app)
	return app
}

func createUser(t *testing.T, username, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func seedCatalog(t *testing.T) (models.Category, models.Genre) {
	t.Helper()

	category := models.Category{Name: "Featured"}
	require.NoError(t, database.Database.Db.Create(&category).Error)

	genre := models.Genre{Name: "Action"}
	require.NoError(t, database.Database.Db.Create(&genre).Error)

	return category, genre
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func movieBody(categoryID uint, rating float64) map[string]interface{} {
	return map[string]interface{}{
		"title":       "The Heist",
		"releaseDate": "2024-05-01",
		"genre":       "Action",
		"rating":      rating,
		"overview":    "A crew plans one last job.",
		"categoryId":  categoryID,
	}
}

func TestAddMovieSetsOwner(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	user := createUser(t, "alice", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/movies", movieBody(category.ID, 8.5), tokenFor(t, user))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var movie models.Movie
	require.NoError(t, database.Database.Db.First(&movie).Error)
	assert.Equal(t, user.ID, movie.UserID)
	assert.Equal(t, 8.5, movie.Rating)
}

func TestAddMovieRejectsOutOfRangeRating(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	user := createUser(t, "alice", models.RoleUser)

	for _, rating := range []float64{-0.5, 10.5} {
		resp := doJSON(t, app, http.MethodPost, "/movies", movieBody(category.ID, rating), tokenFor(t, user))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	}

	// Store unchanged
	var count int64
	database.Database.Db.Model(&models.Movie{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAddMovieRejectsUnknownGenre(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	user := createUser(t, "alice", models.RoleUser)

	body := movieBody(category.ID, 7)
	body["genre"] = "Polka"

	resp := doJSON(t, app, http.MethodPost, "/movies", body, tokenFor(t, user))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAddMovieRequiresAuthentication(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)

	resp := doJSON(t, app, http.MethodPost, "/movies", movieBody(category.ID, 7), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateMovieOwnerOnly(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	owner := createUser(t, "alice", models.RoleUser)
	other := createUser(t, "bob", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/movies", movieBody(category.ID, 6), tokenFor(t, owner))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var movie models.Movie
	require.NoError(t, database.Database.Db.First(&movie).Error)

	update := movieBody(category.ID, 9)
	update["title"] = "The Heist: Director's Cut"

	// Authenticated non-owner is denied and nothing mutates
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/movies/%d", movie.ID), update, tokenFor(t, other))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var unchanged models.Movie
	require.NoError(t, database.Database.Db.First(&unchanged, movie.ID).Error)
	assert.Equal(t, "The Heist", unchanged.Title)

	// Owner succeeds
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/movies/%d", movie.ID), update, tokenFor(t, owner))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Movie
	require.NoError(t, database.Database.Db.First(&updated, movie.ID).Error)
	assert.Equal(t, "The Heist: Director's Cut", updated.Title)
	assert.Equal(t, owner.ID, updated.UserID) // owner never reassigned
}

func TestDeleteMovieOwnerOnly(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	owner := createUser(t, "alice", models.RoleUser)
	other := createUser(t, "bob", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/movies", movieBody(category.ID, 6), tokenFor(t, owner))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var movie models.Movie
	require.NoError(t, database.Database.Db.First(&movie).Error)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/movies/%d", movie.ID), nil, tokenFor(t, other))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Movie{}).Count(&count)
	assert.EqualValues(t, 1, count)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/movies/%d", movie.ID), nil, tokenFor(t, owner))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	database.Database.Db.Model(&models.Movie{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMovieRemovesItsReviews(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	owner := createUser(t, "alice", models.RoleUser)
	reviewer := createUser(t, "bob", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/movies", movieBody(category.ID, 6), tokenFor(t, owner))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var movie models.Movie
	require.NoError(t, database.Database.Db.First(&movie).Error)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/movies/%d/review", movie.ID),
		map[string]interface{}{"rating": 7, "comment": "solid"}, tokenFor(t, reviewer))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/movies/%d", movie.ID), nil, tokenFor(t, owner))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews int64
	database.Database.Db.Model(&models.Review{}).Count(&reviews)
	assert.EqualValues(t, 0, reviews)
}

func TestSearchMoviesSubstringCaseInsensitive(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	user := createUser(t, "alice", models.RoleUser)

	for _, title := range []string{"The Heist", "Heist Society", "Quiet Drama"} {
		body := movieBody(category.ID, 7)
		body["title"] = title
		resp := doJSON(t, app, http.MethodPost, "/movies", body, tokenFor(t, user))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/movies/search?q=heist", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			Movies []models.Movie `json:"movies"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Len(t, payload.Data.Movies, 2)
}

func TestGetMovieNotFound(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/movies/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
