package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AchievementCategory decides which counter an achievement's threshold is
// compared against.
type AchievementCategory string

const (
	AchievementLessons AchievementCategory = "lessons"
	AchievementQuizzes AchievementCategory = "quizzes"
	AchievementStreak  AchievementCategory = "streak"
	AchievementCoins   AchievementCategory = "coins"
)

// Achievement is an immutable catalog entry. Rows are seeded, never edited
// at runtime.
type Achievement struct {
	ID          string              `gorm:"primaryKey;type:text" json:"id"`
	Name        string              `gorm:"uniqueIndex;not null" json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `gorm:"type:text;index" json:"category"`
	Threshold   int                 `json:"threshold"`
	RewardCoins int                 `gorm:"default:0" json:"rewardCoins"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func (a *Achievement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return
}

// UserAchievement joins a user to an earned achievement. The composite
// primary key is the uniqueness constraint that makes awarding exactly-once:
// a second insert for the same pair fails at the storage layer no matter
// which device or evaluation pass races it there.
type UserAchievement struct {
	UserID        string    `gorm:"primaryKey;type:text" json:"userId"`
	AchievementID string    `gorm:"primaryKey;type:text" json:"achievementId"`
	EarnedAt      time.Time `json:"earnedAt"`

	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
}
