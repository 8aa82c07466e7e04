package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.Lesson{},
		&models.LessonCategory{},
		&models.LessonProgress{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.StudySession{},
		&models.Bookmark{},
		&models.GlossaryTerm{},
	)
}

func authedJSONContext(t *testing.T, userID, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("userId", userID)
	return c, w
}

func TestUpsertLessonProgress_LastWriteWins(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Lesson{ID: "L1", Title: "Understanding Budgets", OrderIndex: 0})

	// First write: completed with 20 minutes
	c, w := authedJSONContext(t, "u1", "PUT", "/api/progress/lessons/L1", map[string]interface{}{
		"progress": 1.0, "timeSpent": 20, "completed": true,
	})
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	UpsertLessonProgress(c)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second write overwrites time_spent, does not add a row
	c, w = authedJSONContext(t, "u1", "PUT", "/api/progress/lessons/L1", map[string]interface{}{
		"progress": 1.0, "timeSpent": 5, "completed": true,
	})
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	UpsertLessonProgress(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []models.LessonProgress
	database.DB.Where("user_id = ? AND lesson_id = ?", "u1", "L1").Find(&rows)
	assert.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].TimeSpent)
	assert.True(t, rows[0].Completed)
	assert.NotNil(t, rows[0].CompletedAt)

	// Counter is derived, not incremented: still one completed lesson
	var user models.User
	database.DB.First(&user, "id = ?", "u1")
	assert.Equal(t, 1, user.TotalLessonsCompleted)
}

func TestUpsertLessonProgress_ValidatesRange(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Lesson{ID: "L1", Title: "Understanding Budgets"})

	c, w := authedJSONContext(t, "u1", "PUT", "/api/progress/lessons/L1", map[string]interface{}{
		"progress": 1.5, "timeSpent": 10, "completed": false,
	})
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	UpsertLessonProgress(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = authedJSONContext(t, "u1", "PUT", "/api/progress/lessons/L1", map[string]interface{}{
		"progress": -0.1, "timeSpent": 10, "completed": false,
	})
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	UpsertLessonProgress(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Invalid writes leave no state behind
	var count int64
	database.DB.Model(&models.LessonProgress{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpsertLessonProgress_RunsRewardPipeline(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Lesson{ID: "L1", Title: "Understanding Budgets"})
	database.DB.Create(&models.Achievement{ID: "a1", Name: "First Lesson", Category: models.AchievementLessons, Threshold: 1, RewardCoins: 25})

	c, w := authedJSONContext(t, "u1", "PUT", "/api/progress/lessons/L1", map[string]interface{}{
		"progress": 1.0, "timeSpent": 15, "completed": true,
	})
	c.Params = gin.Params{{Key: "lessonId", Value: "L1"}}
	UpsertLessonProgress(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		NewAchievements []models.Achievement `json:"newAchievements"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response.NewAchievements, 1)
	assert.Equal(t, "a1", response.NewAchievements[0].ID)

	var user models.User
	database.DB.First(&user, "id = ?", "u1")
	assert.Equal(t, 25, user.DoughCoins)
	assert.Equal(t, 1, user.StreakDays)
	assert.Equal(t, 1, user.LongestStreak)
}

func TestRecordQuizAttempt_AppendOnlyAndCredits(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Quiz{ID: "Q1", Question: "Which of these is income?", Options: `["Rent","Paycheck"]`, CorrectAnswer: 1, Reward: 10})

	// Correct attempt credits the quiz reward
	c, w := authedJSONContext(t, "u1", "POST", "/api/progress/quizzes/Q1/attempts", map[string]interface{}{
		"selectedAnswer": 1, "timeTaken": 12,
	})
	c.Params = gin.Params{{Key: "quizId", Value: "Q1"}}
	RecordQuizAttempt(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	database.DB.First(&user, "id = ?", "u1")
	assert.Equal(t, 10, user.DoughCoins)
	assert.Equal(t, 1, user.TotalQuizzesCompleted)

	// Duplicate attempt is retained, not rejected
	c, w = authedJSONContext(t, "u1", "POST", "/api/progress/quizzes/Q1/attempts", map[string]interface{}{
		"selectedAnswer": 1, "timeTaken": 8,
	})
	c.Params = gin.Params{{Key: "quizId", Value: "Q1"}}
	RecordQuizAttempt(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	var attempts int64
	database.DB.Model(&models.QuizAttempt{}).Where("user_id = ? AND quiz_id = ?", "u1", "Q1").Count(&attempts)
	assert.Equal(t, int64(2), attempts)

	database.DB.First(&user, "id = ?", "u1")
	assert.Equal(t, 20, user.DoughCoins)
	// Attempts count, not distinct quizzes
	assert.Equal(t, 2, user.TotalQuizzesCompleted)
}

func TestRecordQuizAttempt_WrongAnswerNoReward(t *testing.T) {
	SetupTestDB()

	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})
	database.DB.Create(&models.Quiz{ID: "Q1", Question: "Which of these is income?", Options: `["Rent","Paycheck"]`, CorrectAnswer: 1, Reward: 10})

	c, w := authedJSONContext(t, "u1", "POST", "/api/progress/quizzes/Q1/attempts", map[string]interface{}{
		"selectedAnswer": 0, "timeTaken": 4,
	})
	c.Params = gin.Params{{Key: "quizId", Value: "Q1"}}
	RecordQuizAttempt(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		IsCorrect bool `json:"isCorrect"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.IsCorrect)

	var user models.User
	database.DB.First(&user, "id = ?", "u1")
	assert.Equal(t, 0, user.DoughCoins)
	assert.Equal(t, 0, user.TotalQuizzesCompleted)

	var attempts int64
	database.DB.Model(&models.QuizAttempt{}).Count(&attempts)
	assert.Equal(t, int64(1), attempts)
}

func TestRecordQuizAttempt_UnknownQuiz(t *testing.T) {
	SetupTestDB()
	database.DB.Create(&models.User{ID: "u1", Username: "u1", Email: "u1@example.com"})

	c, w := authedJSONContext(t, "u1", "POST", "/api/progress/quizzes/nope/attempts", map[string]interface{}{
		"selectedAnswer": 0,
	})
	c.Params = gin.Params{{Key: "quizId", Value: "nope"}}
	RecordQuizAttempt(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
