package services

import (
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
)

// beltThresholds maps each belt to the lessons-completed count that earns
// it. Promotion only; a belt is never taken back.
var beltThresholds = map[models.BeltLevel]int{
	models.BeltWhite:  0,
	models.BeltYellow: 5,
	models.BeltOrange: 10,
	models.BeltGreen:  20,
	models.BeltBlue:   30,
	models.BeltPurple: 45,
	models.BeltBrown:  60,
	models.BeltBlack:  80,
}

// BeltForLessons returns the highest belt whose threshold is met.
func BeltForLessons(lessonsCompleted int) models.BeltLevel {
	belt := models.BeltWhite
	for _, b := range models.BeltOrder {
		if lessonsCompleted >= beltThresholds[b] {
			belt = b
		}
	}
	return belt
}

// MaybePromoteBelt advances the user's belt if their lesson count has
// crossed a threshold. Returns true when a promotion happened.
func MaybePromoteBelt(user *models.User) (bool, error) {
	earned := BeltForLessons(user.TotalLessonsCompleted)
	if earned.Index() <= user.BeltLevel.Index() {
		return false, nil
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("belt_level", earned).Error; err != nil {
		return false, err
	}
	user.BeltLevel = earned
	return true, nil
}

// BeltProgress returns the fraction of the way from the user's current belt
// to the next one, in [0,1]. A black belt is always 1.
func BeltProgress(user *models.User) float64 {
	idx := user.BeltLevel.Index()
	if idx < 0 || idx >= len(models.BeltOrder)-1 {
		return 1.0
	}

	current := beltThresholds[user.BeltLevel]
	next := beltThresholds[models.BeltOrder[idx+1]]
	if next <= current {
		return 1.0
	}

	progress := float64(user.TotalLessonsCompleted-current) / float64(next-current)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1.0
	}
	return progress
}
