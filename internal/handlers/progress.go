package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/internal/services"
	"github.com/sarthak6789/doughjo/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LessonProgressInput struct {
	Progress  *float64 `json:"progress" binding:"required"`
	TimeSpent int      `json:"timeSpent"`
	Completed bool     `json:"completed"`
}

// UpsertLessonProgress handles PUT /api/progress/lessons/:lessonId.
//
// One row per (user, lesson), last-write-wins. After the write the profile
// counters are recomputed from aggregates, the streak advances, the belt may
// be promoted and the achievement evaluator runs: the full reward pipeline
// for a single learning action.
func UpsertLessonProgress(c *gin.Context) {
	userID := c.GetString("userId")
	lessonID := c.Param("lessonId")

	var input LessonProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Progress < 0 || *input.Progress > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be between 0 and 1"})
		return
	}
	if input.TimeSpent < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeSpent must be non-negative"})
		return
	}

	var lesson models.Lesson
	if err := database.DB.Select("id").First(&lesson, "id = ?", lessonID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	// completed_at is stamped on the false->true transition and kept on
	// repeat completed writes; everything else is last-write-wins.
	var completedAt *time.Time
	var existing models.LessonProgress
	err := database.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&existing).Error
	if input.Completed {
		if err == nil && existing.Completed && existing.CompletedAt != nil {
			completedAt = existing.CompletedAt
		} else {
			now := time.Now()
			completedAt = &now
		}
	}

	row := models.LessonProgress{
		UserID:      userID,
		LessonID:    lessonID,
		Progress:    *input.Progress,
		TimeSpent:   input.TimeSpent,
		Completed:   input.Completed,
		CompletedAt: completedAt,
	}

	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "time_spent", "completed", "completed_at", "updated_at"}),
	}).Create(&row).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Str("lesson_id", lessonID).Msg("Lesson progress upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	services.LogStudySession(userID, "lesson", &lessonID, nil, input.TimeSpent, input.Completed)

	newAchievements, user, err := runRewardPipeline(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Reward pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":        row,
		"profile":         user,
		"newAchievements": newAchievements,
	})
}

type QuizAttemptInput struct {
	SelectedAnswer *int `json:"selectedAnswer" binding:"required"`
	TimeTaken      int  `json:"timeTaken"`
}

// RecordQuizAttempt handles POST /api/progress/quizzes/:quizId/attempts.
//
// Attempts are append-only; duplicates are never rejected. Correctness is
// judged server-side against the quiz's answer key, and a correct answer
// credits the quiz's coin reward before the evaluator runs.
func RecordQuizAttempt(c *gin.Context) {
	userID := c.GetString("userId")
	quizID := c.Param("quizId")

	var input QuizAttemptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.TimeTaken < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "timeTaken must be non-negative"})
		return
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	isCorrect := *input.SelectedAnswer == quiz.CorrectAnswer

	attempt := models.QuizAttempt{
		UserID:         userID,
		QuizID:         quizID,
		SelectedAnswer: *input.SelectedAnswer,
		IsCorrect:      isCorrect,
		TimeTaken:      input.TimeTaken,
		CompletedAt:    time.Now(),
	}
	if err := database.DB.Create(&attempt).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Str("quiz_id", quizID).Msg("Quiz attempt insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attempt"})
		return
	}

	if isCorrect && quiz.Reward > 0 {
		if err := services.CreditCoins(userID, quiz.Reward); err != nil {
			logger.Error().Err(err).Str("user_id", userID).Msg("Quiz reward credit failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit reward"})
			return
		}
	}

	services.LogStudySession(userID, "quiz", nil, &quizID, 0, true)

	newAchievements, user, err := runRewardPipeline(userID)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Reward pipeline failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attempt":         attempt,
		"isCorrect":       isCorrect,
		"profile":         user,
		"newAchievements": newAchievements,
	})
}

// runRewardPipeline is the shared tail of every learning action: counters
// recomputed from aggregates, streak advanced, belt possibly promoted, then
// the achievement evaluator against the fresh counters. Returns the newly
// awarded achievements and the final profile.
func runRewardPipeline(userID string) ([]models.Achievement, *models.User, error) {
	user, err := services.SyncProfileCounters(userID)
	if err != nil {
		return nil, nil, err
	}

	user, err = services.RecordActivity(userID, time.Now())
	if err != nil {
		return nil, nil, err
	}

	if _, err := services.MaybePromoteBelt(user); err != nil {
		return nil, nil, err
	}

	newAchievements, err := services.CheckAndAwardAchievements(userID, services.LoadCounters(user))
	if err != nil {
		return nil, nil, err
	}

	// Awards may have credited coins, which can itself satisfy a coins
	// achievement; one more pass picks those up.
	if len(newAchievements) > 0 {
		if err := database.DB.First(user, "id = ?", userID).Error; err != nil {
			return newAchievements, nil, err
		}
		more, err := services.CheckAndAwardAchievements(userID, services.LoadCounters(user))
		if err != nil {
			return newAchievements, user, err
		}
		newAchievements = append(newAchievements, more...)
	}

	if err := database.DB.First(user, "id = ?", userID).Error; err != nil {
		return newAchievements, nil, err
	}
	return newAchievements, user, nil
}

// GetMyLessonProgress handles GET /api/progress/lessons
func GetMyLessonProgress(c *gin.Context) {
	userID := c.GetString("userId")

	var rows []models.LessonProgress
	if err := database.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": rows})
}

// GetLessonProgress handles GET /api/progress/lessons/:lessonId
func GetLessonProgress(c *gin.Context) {
	userID := c.GetString("userId")
	lessonID := c.Param("lessonId")

	var row models.LessonProgress
	err := database.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "No progress for this lesson"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": row})
}

// GetQuizAttempts handles GET /api/progress/quizzes/:quizId/attempts
func GetQuizAttempts(c *gin.Context) {
	userID := c.GetString("userId")
	quizID := c.Param("quizId")

	var attempts []models.QuizAttempt
	if err := database.DB.
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("completed_at DESC").
		Find(&attempts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attempts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// GetStudySessions handles GET /api/progress/sessions
func GetStudySessions(c *gin.Context) {
	userID := c.GetString("userId")

	var sessions []models.StudySession
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(100).
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
