package movieController_test

import (
	"cinevault/database"
	"cinevault/models"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovie(t *testing.T, ownerID, categoryID uint) models.Movie {
	t.Helper()

	movie := models.Movie{
		Title:      "The Heist",
		Genre:      "Action",
		Rating:     7,
		UserID:     ownerID,
		CategoryID: categoryID,
	}
	require.NoError(t, database.Database.Db.Create(&movie).Error)
	return movie
}

func TestSubmitReviewUpsertsInPlace(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	owner := createUser(t, "alice", models.RoleUser)
	reviewer := createUser(t, "bob", models.RoleUser)
	movie := seedMovie(t, owner.ID, category.ID)

	path := fmt.Sprintf("/movies/%d/review", movie.ID)

	resp := doJSON(t, app, http.MethodPost, path,
		map[string]interface{}{"rating": 5, "comment": "decent"}, tokenFor(t, reviewer))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first models.Review
	require.NoError(t, database.Database.Db.Where("movie_id = ? AND user_id = ?", movie.ID, reviewer.ID).First(&first).Error)

	// Resubmission updates the same row, it does not insert a second one
	resp = doJSON(t, app, http.MethodPost, path,
		map[string]interface{}{"rating": 8, "comment": "grew on me"}, tokenFor(t, reviewer))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Review{}).
		Where("movie_id = ? AND user_id = ?", movie.ID, reviewer.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)

	var second models.Review
	require.NoError(t, database.Database.Db.Where("movie_id = ? AND user_id = ?", movie.ID, reviewer.ID).First(&second).Error)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 8, second.Rating)
	assert.Equal(t, "grew on me", second.Comment)
	assert.WithinDuration(t, first.CreatedAt, second.CreatedAt, 0)
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	owner := createUser(t, "alice", models.RoleUser)
	reviewer := createUser(t, "bob", models.RoleUser)
	movie := seedMovie(t, owner.ID, category.ID)

	path := fmt.Sprintf("/movies/%d/review", movie.ID)

	for _, rating := range []int{0, 11} {
		resp := doJSON(t, app, http.MethodPost, path,
			map[string]interface{}{"rating": rating}, tokenFor(t, reviewer))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.Review{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSubmitReviewMovieNotFound(t *testing.T) {
	app := setupTestApp(t)
	seedCatalog(t)
	reviewer := createUser(t, "bob", models.RoleUser)

	resp := doJSON(t, app, http.MethodPost, "/movies/9999/review",
		map[string]interface{}{"rating": 5}, tokenFor(t, reviewer))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTwoUsersReviewIndependently(t *testing.T) {
	app := setupTestApp(t)
	category, _ := seedCatalog(t)
	owner := createUser(t, "alice", models.RoleUser)
	bob := createUser(t, "bob", models.RoleUser)
	carol := createUser(t, "carol", models.RoleUser)
	movie := seedMovie(t, owner.ID, category.ID)

	path := fmt.Sprintf("/movies/%d/review", movie.ID)

	resp := doJSON(t, app, http.MethodPost, path, map[string]interface{}{"rating": 4}, tokenFor(t, bob))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, path, map[string]interface{}{"rating": 9}, tokenFor(t, carol))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Review{}).Where("movie_id = ?", movie.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}
