package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BeltLevel is the ordered proficiency tier. White is the starting belt.
type BeltLevel string

const (
	BeltWhite  BeltLevel = "white"
	BeltYellow BeltLevel = "yellow"
	BeltOrange BeltLevel = "orange"
	BeltGreen  BeltLevel = "green"
	BeltBlue   BeltLevel = "blue"
	BeltPurple BeltLevel = "purple"
	BeltBrown  BeltLevel = "brown"
	BeltBlack  BeltLevel = "black"
)

// BeltOrder lists belts lowest to highest.
var BeltOrder = []BeltLevel{
	BeltWhite, BeltYellow, BeltOrange, BeltGreen,
	BeltBlue, BeltPurple, BeltBrown, BeltBlack,
}

// Index returns the belt's position in BeltOrder, or -1 for an unknown belt.
func (b BeltLevel) Index() int {
	for i, belt := range BeltOrder {
		if belt == b {
			return i
		}
	}
	return -1
}

// User is the profile aggregate. It is the root entity: coin balance,
// streak state and the derived lifetime counters all live here.
type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email     string `gorm:"uniqueIndex" json:"email"`
	FullName  string `json:"fullName"`
	Username  string `gorm:"uniqueIndex" json:"username"`
	AvatarURL string `json:"avatarUrl"`

	BeltLevel  BeltLevel `gorm:"type:text;default:'white'" json:"beltLevel"`
	DoughCoins int       `gorm:"default:0" json:"doughCoins"`

	// Streak state
	StreakDays         int        `gorm:"default:0" json:"streakDays"`
	LongestStreak      int        `gorm:"default:0" json:"longestStreak"`
	CurrentStreakStart *time.Time `json:"currentStreakStart"`
	LastActivityAt     *time.Time `json:"lastActivityAt"`

	// Lifetime counters, recomputed from aggregates after each write
	TotalLessonsCompleted int `gorm:"default:0" json:"totalLessonsCompleted"`
	TotalQuizzesCompleted int `gorm:"default:0" json:"totalQuizzesCompleted"`
	TotalStudyTime        int `gorm:"default:0" json:"totalStudyTime"` // minutes

	OnboardingCompleted bool    `gorm:"default:false" json:"onboardingCompleted"`
	Preferences         *string `gorm:"type:text" json:"preferences"` // JSON blob

	Password string `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
