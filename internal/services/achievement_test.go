package services

import (
	"testing"
	"time"

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
		&models.LessonProgress{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.StudySession{},
	)
}

func seedUser(id string, coins int) models.User {
	user := models.User{
		ID:        id,
		Email:     id + "@example.com",
		Username:  id,
		BeltLevel: models.BeltWhite,
	}
	database.DB.Create(&user)
	if coins != 0 {
		database.DB.Model(&models.User{}).Where("id = ?", id).Update("dough_coins", coins)
	}
	return user
}

func coinBalance(t *testing.T, userID string) int {
	t.Helper()
	var user models.User
	assert.NoError(t, database.DB.First(&user, "id = ?", userID).Error)
	return user.DoughCoins
}

func TestCheckAndAward_BelowEveryThreshold(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "First Steps", Category: models.AchievementLessons, Threshold: 5, RewardCoins: 50})
	database.DB.Create(&models.Achievement{ID: "a2", Name: "Quiz Whiz", Category: models.AchievementQuizzes, Threshold: 10, RewardCoins: 100})

	awarded, err := CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 4, QuizzesCorrect: 9})
	assert.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Equal(t, 0, coinBalance(t, "u1"))
}

func TestCheckAndAward_AwardsExactlyOnce(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "First Steps", Category: models.AchievementLessons, Threshold: 5, RewardCoins: 50})

	// Below threshold: nothing
	awarded, err := CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 4})
	assert.NoError(t, err)
	assert.Empty(t, awarded)

	// At threshold (tie satisfies): awarded and credited
	awarded, err = CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 5})
	assert.NoError(t, err)
	assert.Len(t, awarded, 1)
	assert.Equal(t, "a1", awarded[0].ID)
	assert.Equal(t, 50, coinBalance(t, "u1"))

	// Past threshold on a later pass: no double award, no double credit
	awarded, err = CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 7})
	assert.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Equal(t, 50, coinBalance(t, "u1"))

	var rows int64
	database.DB.Model(&models.UserAchievement{}).Where("user_id = ?", "u1").Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestCheckAndAward_RepeatedCallSameCounters(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "Streak Starter", Category: models.AchievementStreak, Threshold: 3, RewardCoins: 30})

	first, err := CheckAndAwardAchievements("u1", Counters{StreakDays: 3})
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := CheckAndAwardAchievements("u1", Counters{StreakDays: 3})
	assert.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, 30, coinBalance(t, "u1"))
}

func TestCheckAndAward_MultipleSimultaneousUnlocks(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "First Lesson", Category: models.AchievementLessons, Threshold: 1, RewardCoins: 10})
	database.DB.Create(&models.Achievement{ID: "a2", Name: "Five Lessons", Category: models.AchievementLessons, Threshold: 5, RewardCoins: 50})
	database.DB.Create(&models.Achievement{ID: "a3", Name: "Rich", Category: models.AchievementCoins, Threshold: 1000, RewardCoins: 0})

	awarded, err := CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 6})
	assert.NoError(t, err)
	assert.Len(t, awarded, 2)
	// Balance is the sum of every newly awarded reward
	assert.Equal(t, 60, coinBalance(t, "u1"))
}

func TestCheckAndAward_UnknownCategoryFailsClosed(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "Mystery", Category: "referrals", Threshold: 0, RewardCoins: 500})

	awarded, err := CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 100, QuizzesCorrect: 100, StreakDays: 100, DoughCoins: 100000})
	assert.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Equal(t, 0, coinBalance(t, "u1"))
}

func TestCheckAndAward_ZeroThresholdSatisfiedImmediately(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "Welcome", Category: models.AchievementLessons, Threshold: 0, RewardCoins: 5})

	awarded, err := CheckAndAwardAchievements("u1", Counters{})
	assert.NoError(t, err)
	assert.Len(t, awarded, 1)
	assert.Equal(t, 5, coinBalance(t, "u1"))
}

func TestUserAchievementUniquenessEnforcedByStorage(t *testing.T) {
	SetupTestDB()
	seedUser("u1", 0)

	database.DB.Create(&models.Achievement{ID: "a1", Name: "First Steps", Category: models.AchievementLessons, Threshold: 5, RewardCoins: 50})

	// The composite primary key, not any in-memory set, is what makes the
	// award exactly-once under a cross-device race.
	first := database.DB.Create(&models.UserAchievement{UserID: "u1", AchievementID: "a1", EarnedAt: time.Now()})
	assert.NoError(t, first.Error)

	second := database.DB.Create(&models.UserAchievement{UserID: "u1", AchievementID: "a1", EarnedAt: time.Now()})
	assert.Error(t, second.Error)

	// An evaluation pass after the row landed awards nothing and credits nothing
	awarded, err := CheckAndAwardAchievements("u1", Counters{LessonsCompleted: 12})
	assert.NoError(t, err)
	assert.Empty(t, awarded)
	assert.Equal(t, 0, coinBalance(t, "u1"))
}

func TestAchievementProgress_ClampedAndMonotone(t *testing.T) {
	a := models.Achievement{Category: models.AchievementQuizzes, Threshold: 10}

	assert.InDelta(t, 0.0, AchievementProgress(Counters{QuizzesCorrect: 0}, a), 1e-9)
	assert.InDelta(t, 0.5, AchievementProgress(Counters{QuizzesCorrect: 5}, a), 1e-9)
	assert.InDelta(t, 1.0, AchievementProgress(Counters{QuizzesCorrect: 10}, a), 1e-9)
	// Clamped at 1 even past the threshold
	assert.InDelta(t, 1.0, AchievementProgress(Counters{QuizzesCorrect: 25}, a), 1e-9)

	// Monotone in the counter
	prev := 0.0
	for n := 0; n <= 20; n++ {
		p := AchievementProgress(Counters{QuizzesCorrect: n}, a)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}

	// Unknown category reports no progress
	unknown := models.Achievement{Category: "referrals", Threshold: 10}
	assert.InDelta(t, 0.0, AchievementProgress(Counters{QuizzesCorrect: 100}, unknown), 1e-9)

	// Zero threshold is already complete
	zero := models.Achievement{Category: models.AchievementCoins, Threshold: 0}
	assert.InDelta(t, 1.0, AchievementProgress(Counters{}, zero), 1e-9)
}
