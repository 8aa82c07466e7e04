package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAddBookmark_CreatesOnce(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Lesson{ID: "L1", Title: "Understanding Budgets"})

	c, w := authedJSONContext(t, "u1", "POST", "/api/learn/bookmarks/L1", nil)
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	AddBookmark(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Repeat is reported as already bookmarked, not as an error
	c, w = authedJSONContext(t, "u1", "POST", "/api/learn/bookmarks/L1", nil)
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	AddBookmark(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Already bookmarked")

	var count int64
	database.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND lesson_id = ?", "u1", "L1").
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddBookmark_StorageFailureIsNotMaskedAsDuplicate(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Lesson{ID: "L1", Title: "Understanding Budgets"})

	// Dropping the table makes the insert fail for a non-duplicate reason.
	database.DB.Migrator().DropTable(&models.Bookmark{})

	c, w := authedJSONContext(t, "u1", "POST", "/api/learn/bookmarks/L1", nil)
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	AddBookmark(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "Already bookmarked")
}

func TestRemoveBookmark(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Lesson{ID: "L1", Title: "Understanding Budgets"})
	database.DB.Create(&models.Bookmark{UserID: "u1", LessonID: "L1"})

	c, w := authedJSONContext(t, "u1", "DELETE", "/api/learn/bookmarks/L1", nil)
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	RemoveBookmark(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	database.DB.Model(&models.Bookmark{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(0), count)
}
