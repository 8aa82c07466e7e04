package services

import (
	"github.com/sarthak6789/doughjo/internal/database"
	"github.com/sarthak6789/doughjo/internal/models"
	"github.com/sarthak6789/doughjo/pkg/errors"
	"gorm.io/gorm"
)

// CreditCoins adds amount to the user's Dough Coin balance. The increment
// happens in a single UPDATE so concurrent credits from two devices both
// land (no client-side read-modify-write). Coins are earn-only: negative
// amounts are rejected, so the balance can never go below zero.
func CreditCoins(userID string, amount int) error {
	if amount < 0 {
		return errors.ErrNegativeCredit
	}
	if amount == 0 {
		return nil
	}

	result := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("dough_coins", gorm.Expr("dough_coins + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
