package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/pkg/logger"
	"gorm.io/gorm"
)

// ListLessons handles GET /api/learn/lessons. Authenticated callers get
// their progress attached per lesson (batched, no N+1).
func ListLessons(c *gin.Context) {
	var lessons []models.Lesson

	query := database.DB.Model(&models.Lesson{})

	if cat := c.Query("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}
	if diff := c.Query("difficulty"); diff != "" {
		query = query.Where("difficulty = ?", diff)
	}
	if belt := c.Query("belt"); belt != "" {
		query = query.Where("belt_required = ?", belt)
	}

	query = query.Order("order_index ASC")

	if err := query.Find(&lessons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lessons"})
		return
	}

	userID, exists := c.Get("userId")
	if exists && len(lessons) > 0 {
		lessonIDs := make([]string, len(lessons))
		for i, l := range lessons {
			lessonIDs[i] = l.ID
		}

		var rows []models.LessonProgress
		database.DB.
			Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
			Find(&rows)

		progressByLesson := make(map[string]models.LessonProgress, len(rows))
		for _, r := range rows {
			progressByLesson[r.LessonID] = r
		}

		type lessonWithProgress struct {
			models.Lesson
			Completed bool    `json:"completed"`
			Progress  float64 `json:"progress"`
		}

		result := make([]lessonWithProgress, len(lessons))
		for i, l := range lessons {
			entry := lessonWithProgress{Lesson: l}
			if r, ok := progressByLesson[l.ID]; ok {
				entry.Completed = r.Completed
				entry.Progress = r.Progress
			}
			result[i] = entry
		}

		c.JSON(http.StatusOK, gin.H{"lessons": result})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lessons": lessons})
}

// GetLesson handles GET /api/learn/lessons/:id
func GetLesson(c *gin.Context) {
	id := c.Param("id")

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

// ListQuizzes handles GET /api/learn/quizzes
func ListQuizzes(c *gin.Context) {
	var quizzes []models.Quiz

	query := database.DB.Model(&models.Quiz{})
	if cat := c.Query("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}
	if diff := c.Query("difficulty"); diff != "" {
		query = query.Where("difficulty = ?", diff)
	}

	if err := query.Find(&quizzes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quizzes"})
		return
	}

	// The answer key stays server-side; attempts are judged on submission
	for i := range quizzes {
		quizzes[i].CorrectAnswer = -1
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

// ListCategories handles GET /api/learn/categories
func ListCategories(c *gin.Context) {
	const cacheKey = "learn:categories"

	var categories []models.LessonCategory
	if err := database.CacheGet(cacheKey, &categories); err == nil {
		c.JSON(http.StatusOK, gin.H{"categories": categories})
		return
	}

	if err := database.DB.
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	database.CacheSet(cacheKey, categories, time.Hour)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListGlossary handles GET /api/learn/glossary
func ListGlossary(c *gin.Context) {
	const cacheKey = "learn:glossary"

	var terms []models.GlossaryTerm
	if err := database.CacheGet(cacheKey, &terms); err == nil {
		c.JSON(http.StatusOK, gin.H{"terms": terms})
		return
	}

	if err := database.DB.Order("sort_order ASC").Find(&terms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch glossary"})
		return
	}

	database.CacheSet(cacheKey, terms, time.Hour)
	c.JSON(http.StatusOK, gin.H{"terms": terms})
}

// --- Bookmarks ---

// ListBookmarks handles GET /api/learn/bookmarks
func ListBookmarks(c *gin.Context) {
	userID := c.GetString("userId")

	var bookmarks []models.Bookmark
	if err := database.DB.
		Preload("Lesson").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookmarks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

// AddBookmark handles POST /api/learn/bookmarks/:lessonId. Re-bookmarking
// an already saved lesson is a no-op, not an error.
func AddBookmark(c *gin.Context) {
	userID := c.GetString("userId")
	lessonID := c.Param("lessonId")

	var lesson models.Lesson
	if err := database.DB.Select("id").First(&lesson, "id = ?", lessonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	var existing models.Bookmark
	err := database.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Already bookmarked", "bookmark": existing})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bookmark"})
		return
	}

	bookmark := models.Bookmark{UserID: userID, LessonID: lessonID}
	if err := database.DB.Create(&bookmark).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Str("lesson_id", lessonID).Msg("Bookmark insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bookmark"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bookmark": bookmark})
}

// RemoveBookmark handles DELETE /api/learn/bookmarks/:lessonId
func RemoveBookmark(c *gin.Context) {
	userID := c.GetString("userId")
	lessonID := c.Param("lessonId")

	if err := database.DB.
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Delete(&models.Bookmark{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}
