package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/internal/services"
)

const achievementCatalogCacheKey = "achievements:catalog"

// ListAchievements handles GET /api/achievements. The catalog is immutable
// at runtime, so it caches well. When the caller is authenticated each entry
// carries their earned flag and clamped progress fraction.
func ListAchievements(c *gin.Context) {
	var catalog []models.Achievement
	if err := database.CacheGet(achievementCatalogCacheKey, &catalog); err != nil {
		if err := database.DB.Order("category ASC, threshold ASC").Find(&catalog).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
			return
		}
		database.CacheSet(achievementCatalogCacheKey, catalog, time.Hour)
	}

	userID, authed := c.Get("userId")
	if !authed {
		c.JSON(http.StatusOK, gin.H{"achievements": catalog})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"achievements": catalog})
		return
	}
	counters := services.LoadCounters(&user)

	var earned []models.UserAchievement
	database.DB.Where("user_id = ?", userID).Find(&earned)
	earnedAt := make(map[string]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	type achievementWithStatus struct {
		models.Achievement
		Earned   bool       `json:"earned"`
		EarnedAt *time.Time `json:"earnedAt,omitempty"`
		Progress float64    `json:"progress"`
	}

	result := make([]achievementWithStatus, len(catalog))
	for i, a := range catalog {
		entry := achievementWithStatus{
			Achievement: a,
			Progress:    services.AchievementProgress(counters, a),
		}
		if at, ok := earnedAt[a.ID]; ok {
			entry.Earned = true
			at := at
			entry.EarnedAt = &at
			entry.Progress = 1.0
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"achievements": result})
}

// GetMyAchievements handles GET /api/achievements/earned
func GetMyAchievements(c *gin.Context) {
	userID := c.GetString("userId")

	var earned []models.UserAchievement
	if err := database.DB.
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&earned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": earned})
}

type CheckAchievementsInput struct {
	LessonsCompleted *int `json:"lessonsCompleted"`
	QuizzesCompleted *int `json:"quizzesCompleted"`
	StreakDays       *int `json:"streakDays"`
	DoughCoins       *int `json:"doughCoins"`
}

// CheckAchievements handles POST /api/achievements/check, the explicit
// evaluation trigger. Counters default to the profile aggregate; the body
// may override individual values (the client passes what it just rendered).
// The storage-level uniqueness constraint makes over-calling this harmless.
func CheckAchievements(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	counters := services.LoadCounters(&user)

	var input CheckAchievementsInput
	if err := c.ShouldBindJSON(&input); err == nil {
		if input.LessonsCompleted != nil {
			counters.LessonsCompleted = *input.LessonsCompleted
		}
		if input.QuizzesCompleted != nil {
			counters.QuizzesCorrect = *input.QuizzesCompleted
		}
		if input.StreakDays != nil {
			counters.StreakDays = *input.StreakDays
		}
		if input.DoughCoins != nil {
			counters.DoughCoins = *input.DoughCoins
		}
	}

	newlyAwarded, err := services.CheckAndAwardAchievements(userID, counters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate achievements"})
		return
	}

	// Reload so the response reflects any credited rewards
	database.DB.First(&user, "id = ?", userID)

	c.JSON(http.StatusOK, gin.H{
		"newAchievements": newlyAwarded,
		"doughCoins":      user.DoughCoins,
	})
}
