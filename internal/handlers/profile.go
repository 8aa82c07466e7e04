package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/internal/services"
	"github.com/sarthak6789/doughjo/pkg/logger"
	"github.com/sarthak6789/doughjo/pkg/utils"
	"gorm.io/gorm"
)

// GetProfile handles GET /api/users/profile
func GetProfile(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      user,
		"beltProgress": services.BeltProgress(&user),
	})
}

type UpdateProfileInput struct {
	FullName            *string `json:"fullName"`
	Username            *string `json:"username"`
	AvatarURL           *string `json:"avatarUrl"`
	Preferences         *string `json:"preferences"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"`
}

// UpdateProfile handles PUT /api/users/profile. Stats fields (coins, streak,
// counters, belt) are never writable here; they move only through the
// progress and ledger paths.
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("userId")

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}

	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*input.Username))
		if !utils.ValidateUsername(username) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be 3-30 characters and contain only letters, numbers, underscores, or hyphens"})
			return
		}

		var count int64
		database.DB.Model(&models.User{}).Where("username = ? AND id != ?", username, userID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "This username is already taken"})
			return
		}
		updates["username"] = username
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}
	if input.Preferences != nil {
		updates["preferences"] = *input.Preferences
	}
	if input.OnboardingCompleted != nil {
		updates["onboarding_completed"] = *input.OnboardingCompleted
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Profile update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user})
}

// GetStats handles GET /api/users/profile/stats, the aggregate counters the
// home and profile screens render.
func GetStats(c *gin.Context) {
	userID := c.GetString("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	lessons, err := services.GetCompletedLessonsCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	quizzes, err := services.GetCorrectQuizzesCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	studyTime, err := services.GetTotalStudyTime(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lessonsCompleted": lessons,
		"correctQuizzes":   quizzes,
		"totalStudyTime":   studyTime,
		"streakDays":       user.StreakDays,
		"longestStreak":    user.LongestStreak,
		"doughCoins":       user.DoughCoins,
		"beltLevel":        user.BeltLevel,
		"beltProgress":     services.BeltProgress(&user),
	})
}

// GetPublicProfile handles GET /api/public/users/:username
func GetPublicProfile(c *gin.Context) {
	username := strings.ToLower(c.Param("username"))

	var user models.User
	if err := database.DB.First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	// Public view: identity and gamification stats only
	c.JSON(http.StatusOK, gin.H{
		"username":      user.Username,
		"fullName":      user.FullName,
		"avatarUrl":     user.AvatarURL,
		"beltLevel":     user.BeltLevel,
		"streakDays":    user.StreakDays,
		"longestStreak": user.LongestStreak,
	})
}
