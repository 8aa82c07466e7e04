package seeds

import (
	"log"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
)

func SeedCategories() {
	log.Println("📚 Seeding Lesson Categories...")

	categories := []models.LessonCategory{
		{Name: "Budgeting Basics", Description: "Track where your money comes from and where it goes", ColorHex: "#4CAF50", SortOrder: 1},
		{Name: "Saving Sensei", Description: "Build an emergency fund and save with intention", ColorHex: "#2196F3", SortOrder: 2},
		{Name: "Credit Dojo", Description: "Understand credit scores, cards and borrowing", ColorHex: "#FF9800", SortOrder: 3},
		{Name: "Investing Path", Description: "Stocks, diversification and compound growth", ColorHex: "#9C27B0", SortOrder: 4},
		{Name: "Debt Defense", Description: "Manage and eliminate debt strategically", ColorHex: "#F44336", SortOrder: 5},
		{Name: "Tax Temple", Description: "The basics of income tax and deductions", ColorHex: "#607D8B", SortOrder: 6},
	}

	for _, cat := range categories {
		var existing models.LessonCategory
		if err := database.DB.Where("name = ?", cat.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&cat).Error; err != nil {
			log.Printf("   ❌ Failed to create category %s: %v", cat.Name, err)
		}
	}
}

func SeedLessons() {
	log.Println("📖 Seeding Lessons...")

	lessons := []models.Lesson{
		{
			Title:         "Understanding Budgets",
			Description:   "A budget is your financial roadmap.",
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Content:       `{"cards":[{"type":"text","title":"Understanding Budgets","body":"A budget is your financial roadmap - it helps you track where your money comes from and where it goes. Think of it like a GPS for your money!"}]}`,
			BeltRequired:  models.BeltWhite,
			OrderIndex:    1,
			EstimatedTime: 5,
		},
		{
			Title:         "Income vs. Expenses",
			Description:   "Learn to tell money coming in from money going out.",
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Content:       `{"cards":[{"type":"text","title":"Income vs. Expenses","body":"Income is money you receive, like a paycheck. Expenses are what you spend, from rent to phone bills. A healthy budget keeps expenses below income."}]}`,
			BeltRequired:  models.BeltWhite,
			OrderIndex:    2,
			EstimatedTime: 5,
		},
		{
			Title:         "The 50/30/20 Rule",
			Description:   "A simple split for needs, wants and savings.",
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Content:       `{"cards":[{"type":"text","title":"The 50/30/20 Rule","body":"Put 50% of income toward needs, 30% toward wants, and 20% toward savings and debt payments. Simple, flexible, effective."}]}`,
			BeltRequired:  models.BeltWhite,
			OrderIndex:    3,
			EstimatedTime: 7,
		},
		{
			Title:         "Smart Expense Tracking",
			Description:   "Record expenses as they happen.",
			Category:      "Budgeting Basics",
			Difficulty:    "Beginner",
			Content:       `{"cards":[{"type":"text","title":"Smart Expense Tracking","body":"The best way to track daily expenses is to record them as they happen. Entertainment is usually where the surprise expenses hide."}]}`,
			BeltRequired:  models.BeltWhite,
			OrderIndex:    4,
			EstimatedTime: 5,
		},
		{
			Title:         "Building an Emergency Fund",
			Description:   "Your financial safety net.",
			Category:      "Saving Sensei",
			Difficulty:    "Beginner",
			Content:       `{"cards":[{"type":"text","title":"Building an Emergency Fund","body":"Set aside 3-6 months of living expenses for the unexpected: medical bills, car repairs, job loss. Start small and build steadily."}]}`,
			BeltRequired:  models.BeltYellow,
			OrderIndex:    5,
			EstimatedTime: 6,
		},
		{
			Title:         "Compound Interest",
			Description:   "Interest on interest: how money grows.",
			Category:      "Investing Path",
			Difficulty:    "Intermediate",
			Content:       `{"cards":[{"type":"text","title":"Compound Interest","body":"Compound interest is calculated on your initial principal plus accumulated interest. It is the engine behind long-term wealth."}]}`,
			BeltRequired:  models.BeltOrange,
			OrderIndex:    6,
			EstimatedTime: 8,
		},
	}

	for _, l := range lessons {
		var existing models.Lesson
		if err := database.DB.Where("title = ?", l.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&l).Error; err != nil {
			log.Printf("   ❌ Failed to create lesson %s: %v", l.Title, err)
		} else {
			log.Printf("   📖 Lesson Created: %s", l.Title)
		}
	}
}
