package services

import (
	"time"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/pkg/logger"
)

// counterFor picks the counter an achievement category is judged by.
// Unknown categories report false: a bad catalog row can never unlock.
func counterFor(c Counters, category models.AchievementCategory) (int, bool) {
	switch category {
	case models.AchievementLessons:
		return c.LessonsCompleted, true
	case models.AchievementQuizzes:
		return c.QuizzesCorrect, true
	case models.AchievementStreak:
		return c.StreakDays, true
	case models.AchievementCoins:
		return c.DoughCoins, true
	default:
		return 0, false
	}
}

// CheckAndAwardAchievements evaluates every catalog achievement the user has
// not yet earned against the given counters and awards all that qualify
// (counter >= threshold; ties satisfy). Each award inserts the
// (user, achievement) row and then credits the reward coins.
//
// Awarding is exactly-once: the composite primary key on user_achievements
// is the source of truth. If the insert hits the uniqueness constraint
// (another evaluation pass or another device got there first), the coin
// credit is skipped and the entry is not reported as new.
func CheckAndAwardAchievements(userID string, counters Counters) ([]models.Achievement, error) {
	var earnedIDs []string
	if err := database.DB.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &earnedIDs).Error; err != nil {
		return nil, err
	}

	earnedSet := make(map[string]bool, len(earnedIDs))
	for _, id := range earnedIDs {
		earnedSet[id] = true
	}

	var catalog []models.Achievement
	if err := database.DB.Find(&catalog).Error; err != nil {
		return nil, err
	}

	var newlyAwarded []models.Achievement
	for _, achievement := range catalog {
		if earnedSet[achievement.ID] {
			continue
		}

		value, ok := counterFor(counters, achievement.Category)
		if !ok {
			continue
		}
		if value < achievement.Threshold {
			continue
		}

		award := models.UserAchievement{
			UserID:        userID,
			AchievementID: achievement.ID,
			EarnedAt:      time.Now(),
		}
		if err := database.DB.Create(&award).Error; err != nil {
			// Duplicate key: already awarded by a concurrent pass. Benign.
			logger.Debug().
				Str("user_id", userID).
				Str("achievement_id", achievement.ID).
				Err(err).
				Msg("Achievement insert conflict, skipping credit")
			continue
		}

		if err := CreditCoins(userID, achievement.RewardCoins); err != nil {
			logger.Error().
				Str("user_id", userID).
				Str("achievement_id", achievement.ID).
				Err(err).
				Msg("Failed to credit achievement reward")
			return newlyAwarded, err
		}

		newlyAwarded = append(newlyAwarded, achievement)
	}

	return newlyAwarded, nil
}

// AchievementProgress reports how far a user's counters are toward an
// achievement, clamped to [0,1]. A zero threshold is already satisfied.
func AchievementProgress(counters Counters, achievement models.Achievement) float64 {
	value, ok := counterFor(counters, achievement.Category)
	if !ok {
		return 0
	}
	if achievement.Threshold <= 0 {
		return 1.0
	}

	progress := float64(value) / float64(achievement.Threshold)
	if progress > 1 {
		return 1.0
	}
	if progress < 0 {
		return 0
	}
	return progress
}
