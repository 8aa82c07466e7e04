package main

import (
	"os"

	"github.com/sarthak6789/doughjo/internal/config"
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/internal/seeds"
	"github.com/sarthak6789/doughjo/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Msg("🌱 Starting DoughJo Seeder...")

	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Lesson{},
		&models.LessonCategory{},
		&models.LessonProgress{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.StudySession{},
		&models.Bookmark{},
		&models.GlossaryTerm{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Migration failed")
	}

	seeds.SeedCategories()
	seeds.SeedLessons()
	seeds.SeedQuizzes()
	seeds.SeedAchievements()
	seeds.SeedGlossary()

	logger.Info().Msg("✅ Seeding complete")
}
