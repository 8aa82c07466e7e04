package seeds

import (
	"log"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
)

func SeedAchievements() {
	log.Println("🏆 Seeding Achievements...")

	achievements := []models.Achievement{
		{
			Name:        "First Steps",
			Description: "Complete your first lesson.",
			Icon:        "footprints",
			Category:    models.AchievementLessons,
			Threshold:   1,
			RewardCoins: 25,
		},
		{
			Name:        "Dedicated Student",
			Description: "Complete 5 lessons.",
			Icon:        "book-open",
			Category:    models.AchievementLessons,
			Threshold:   5,
			RewardCoins: 50,
		},
		{
			Name:        "Knowledge Seeker",
			Description: "Complete 20 lessons. The dojo grows stronger.",
			Icon:        "graduation-cap",
			Category:    models.AchievementLessons,
			Threshold:   20,
			RewardCoins: 150,
		},
		{
			Name:        "Lesson Master",
			Description: "Complete 50 lessons on your path to the black belt.",
			Icon:        "crown",
			Category:    models.AchievementLessons,
			Threshold:   50,
			RewardCoins: 400,
		},
		{
			Name:        "Quiz Rookie",
			Description: "Answer your first quiz correctly.",
			Icon:        "check-circle",
			Category:    models.AchievementQuizzes,
			Threshold:   1,
			RewardCoins: 15,
		},
		{
			Name:        "Quiz Whiz",
			Description: "Answer 10 quizzes correctly.",
			Icon:        "zap",
			Category:    models.AchievementQuizzes,
			Threshold:   10,
			RewardCoins: 75,
		},
		{
			Name:        "Quiz Sensei",
			Description: "Answer 50 quizzes correctly.",
			Icon:        "award",
			Category:    models.AchievementQuizzes,
			Threshold:   50,
			RewardCoins: 300,
		},
		{
			Name:        "Streak Starter",
			Description: "Learn 3 days in a row.",
			Icon:        "flame",
			Category:    models.AchievementStreak,
			Threshold:   3,
			RewardCoins: 30,
		},
		{
			Name:        "Week Warrior",
			Description: "Keep a 7-day learning streak alive.",
			Icon:        "calendar",
			Category:    models.AchievementStreak,
			Threshold:   7,
			RewardCoins: 100,
		},
		{
			Name:        "Unstoppable",
			Description: "A 30-day streak. True discipline.",
			Icon:        "trophy",
			Category:    models.AchievementStreak,
			Threshold:   30,
			RewardCoins: 500,
		},
		{
			Name:        "Penny Saver",
			Description: "Collect 100 Dough Coins.",
			Icon:        "coins",
			Category:    models.AchievementCoins,
			Threshold:   100,
			RewardCoins: 20,
		},
		{
			Name:        "Dough Hoarder",
			Description: "Collect 1000 Dough Coins.",
			Icon:        "piggy-bank",
			Category:    models.AchievementCoins,
			Threshold:   1000,
			RewardCoins: 100,
		},
	}

	for _, a := range achievements {
		var existing models.Achievement
		if err := database.DB.Where("name = ?", a.Name).First(&existing).Error; err == nil {
			continue
		}

		if err := database.DB.Create(&a).Error; err != nil {
			log.Printf("   ❌ Failed to create achievement %s: %v", a.Name, err)
		} else {
			log.Printf("   🏆 Achievement Defined: %s", a.Name)
		}
	}
}
