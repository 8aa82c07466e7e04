package services

import (
	"testing"
	"time"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSyncProfileCounters_DerivedFromAggregates(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	now := time.Now()
	database.DB.Create(&models.LessonProgress{UserID: "u1", LessonID: "l1", Completed: true, Progress: 1.0, TimeSpent: 20, CompletedAt: &now})
	database.DB.Create(&models.LessonProgress{UserID: "u1", LessonID: "l2", Completed: false, Progress: 0.5, TimeSpent: 10})
	database.DB.Create(&models.QuizAttempt{UserID: "u1", QuizID: "q1", SelectedAnswer: 1, IsCorrect: true})
	database.DB.Create(&models.QuizAttempt{UserID: "u1", QuizID: "q1", SelectedAnswer: 1, IsCorrect: true})
	database.DB.Create(&models.QuizAttempt{UserID: "u1", QuizID: "q2", SelectedAnswer: 0, IsCorrect: false})

	user, err := SyncProfileCounters("u1")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.TotalLessonsCompleted)
	// Correct attempts count, not distinct quizzes
	assert.Equal(t, 2, user.TotalQuizzesCompleted)
	assert.Equal(t, 30, user.TotalStudyTime)
}

func TestSyncProfileCounters_ReplayDoesNotInflate(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	now := time.Now()
	database.DB.Create(&models.LessonProgress{UserID: "u1", LessonID: "l1", Completed: true, Progress: 1.0, TimeSpent: 20, CompletedAt: &now})

	first, err := SyncProfileCounters("u1")
	assert.NoError(t, err)
	second, err := SyncProfileCounters("u1")
	assert.NoError(t, err)

	assert.Equal(t, first.TotalLessonsCompleted, second.TotalLessonsCompleted)
	assert.Equal(t, 1, second.TotalLessonsCompleted)
}

func TestLoadCounters(t *testing.T) {
	user := models.User{
		TotalLessonsCompleted: 7,
		TotalQuizzesCompleted: 12,
		StreakDays:            4,
		DoughCoins:            310,
	}

	c := LoadCounters(&user)
	assert.Equal(t, 7, c.LessonsCompleted)
	assert.Equal(t, 12, c.QuizzesCorrect)
	assert.Equal(t, 4, c.StreakDays)
	assert.Equal(t, 310, c.DoughCoins)
}
