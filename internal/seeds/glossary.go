package seeds

import (
	"log"

	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
)

func SeedGlossary() {
	log.Println("📕 Seeding Glossary...")

	terms := []models.GlossaryTerm{
		{
			Term:       "Budget",
			Definition: "A financial plan for a defined period, often a month or a year. It shows your estimated income and expenses and helps you track spending, save money, and reach financial goals.",
			Example:    "Alex created a monthly budget that allocated $800 for rent, $300 for groceries, $150 for transportation, and $200 for entertainment.",
			SortOrder:  1,
		},
		{
			Term:       "Emergency Fund",
			Definition: "Money set aside for unexpected expenses or financial emergencies, such as medical bills, car repairs, or job loss. Experts typically recommend saving 3-6 months of living expenses.",
			Example:    "When Maya lost her job, her emergency fund covered three months of bills while she looked for a new position.",
			SortOrder:  2,
		},
		{
			Term:       "Interest Rate",
			Definition: "The percentage charged by a lender to a borrower for the use of assets, typically noted on an annual basis (APR).",
			Example:    "The credit card charged 18% interest on unpaid balances, while the savings account earned 1.5% on deposits.",
			SortOrder:  3,
		},
		{
			Term:       "Credit Score",
			Definition: "A number representing your creditworthiness based on your credit history. FICO scores range from 300 to 850; higher is better.",
			Example:    "After a year of on-time payments, Jordan's score improved from 650 to 720.",
			SortOrder:  4,
		},
		{
			Term:       "Compound Interest",
			Definition: "Interest calculated on the initial principal and the accumulated interest of previous periods. Interest on interest.",
			Example:    "Invest $1,000 at 5% annual compound interest and you'll have $1,050 after one year; in year two you earn interest on $1,050.",
			SortOrder:  5,
		},
		{
			Term:       "Stock",
			Definition: "An investment representing ownership in a company. As a shareholder you own a small piece of that company.",
			Example:    "Kai bought 10 shares at $50 each; a popular product launch pushed the price to $75.",
			SortOrder:  6,
		},
		{
			Term:       "Inflation",
			Definition: "The rate at which prices rise over time, reducing purchasing power. At 3% inflation, something that costs $100 today costs $103 next year.",
			Example:    "Twenty years ago a movie ticket cost $7; today the same ticket costs $15.",
			SortOrder:  7,
		},
		{
			Term:       "Net Worth",
			Definition: "The total value of your assets minus your liabilities. A snapshot of your financial health.",
			Example:    "Assets of $310,000 minus liabilities of $170,000 give a net worth of $140,000.",
			SortOrder:  8,
		},
		{
			Term:       "Diversification",
			Definition: "Spreading investments across instruments, industries, and categories so a single event doesn't sink everything.",
			Example:    "Sam split $10,000 across tech stocks, healthcare stocks, bonds, and a real estate trust.",
			SortOrder:  9,
		},
		{
			Term:       "Debt-to-Income Ratio",
			Definition: "Monthly debt payments divided by monthly gross income. Lenders use it to judge borrowing risk.",
			Example:    "With $5,000 income and $1,500 in debt payments, Devon's ratio is 30%.",
			SortOrder:  10,
		},
	}

	for _, term := range terms {
		var existing models.GlossaryTerm
		if err := database.DB.Where("term = ?", term.Term).First(&existing).Error; err == nil {
			continue
		}
		if err := database.DB.Create(&term).Error; err != nil {
			log.Printf("   ❌ Failed to create glossary term %s: %v", term.Term, err)
		}
	}
}
