package services

import (
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
)

// Counters is the aggregate snapshot the achievement evaluator runs against.
type Counters struct {
	LessonsCompleted int `json:"lessonsCompleted"`
	QuizzesCorrect   int `json:"quizzesCorrect"`
	StreakDays       int `json:"streakDays"`
	DoughCoins       int `json:"doughCoins"`
}

// GetCompletedLessonsCount counts distinct lessons the user has completed.
func GetCompletedLessonsCount(userID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

// GetCorrectQuizzesCount counts correct attempts. Attempts, not distinct
// quizzes: re-answering the same quiz correctly counts again, matching how
// the profile aggregate has always been computed.
func GetCorrectQuizzesCount(userID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Count(&count).Error
	return count, err
}

// GetTotalStudyTime sums lesson time in minutes.
func GetTotalStudyTime(userID string) (int64, error) {
	var total int64
	err := database.DB.Model(&models.LessonProgress{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(time_spent), 0)").
		Scan(&total).Error
	return total, err
}

// SyncProfileCounters recomputes the lifetime counters from the progress
// and attempt tables and writes them onto the profile row. Counters are
// derived, never incremented in place, so replayed writes can't inflate
// them.
func SyncProfileCounters(userID string) (*models.User, error) {
	lessons, err := GetCompletedLessonsCount(userID)
	if err != nil {
		return nil, err
	}
	quizzes, err := GetCorrectQuizzesCount(userID)
	if err != nil {
		return nil, err
	}
	studyTime, err := GetTotalStudyTime(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"total_lessons_completed": lessons,
		"total_quizzes_completed": quizzes,
		"total_study_time":        studyTime,
	}
	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// LoadCounters builds the evaluator input from a profile row.
func LoadCounters(user *models.User) Counters {
	return Counters{
		LessonsCompleted: user.TotalLessonsCompleted,
		QuizzesCorrect:   user.TotalQuizzesCompleted,
		StreakDays:       user.StreakDays,
		DoughCoins:       user.DoughCoins,
	}
}
