package seeds

import (
	"log"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
)

func SeedQuizzes() {
	log.Println("❓ Seeding Quizzes...")

	quizzes := []models.Quiz{
		{
			Title:         "Income Basics",
			Question:      "Which of these is considered income?",
			Options:       `["Monthly rent payment","Part-time job paycheck","Grocery shopping","Phone bill"]`,
			CorrectAnswer: 1,
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Reward:        10,
		},
		{
			Title:         "Wants vs. Needs",
			Question:      "What type of expense is a Netflix subscription?",
			Options:       `["Essential expense","Want/discretionary expense","Emergency expense","Investment expense"]`,
			CorrectAnswer: 1,
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Reward:        10,
		},
		{
			Title:         "50/30/20 Needs",
			Question:      "In the 50/30/20 rule, what should 50% of your income go towards?",
			Options:       `["Wants and entertainment","Savings and debt payment","Needs and essential expenses","Investments"]`,
			CorrectAnswer: 2,
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Reward:        10,
		},
		{
			Title:         "50/30/20 Savings",
			Question:      "If you make $2000 per month, how much should go to savings according to the 50/30/20 rule?",
			Options:       `["$200","$400","$600","$1000"]`,
			CorrectAnswer: 1,
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Reward:        15,
		},
		{
			Title:         "Tracking Habits",
			Question:      "What's the best way to track daily expenses?",
			Options:       `["Keep receipts and review monthly","Record expenses as they happen","Wait until credit card statement","Ask family to remember"]`,
			CorrectAnswer: 1,
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Reward:        10,
		},
		{
			Title:         "Emergency Fund Size",
			Question:      "How many months of living expenses do experts recommend keeping in an emergency fund?",
			Options:       `["1 month","3-6 months","12 months","No fund needed"]`,
			CorrectAnswer: 1,
			Category:      "Saving Sensei",
			Difficulty:    "Beginner",
			Reward:        15,
		},
	}

	for _, q := range quizzes {
		var existing models.Quiz
		if err := database.DB.Where("title = ?", q.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&q).Error; err != nil {
			log.Printf("   ❌ Failed to create quiz %s: %v", q.Title, err)
		} else {
			log.Printf("   ❓ Quiz Created: %s", q.Title)
		}
	}
}
