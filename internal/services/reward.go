package services

import (
	"errors"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/gorm"
)

// Reward accrual amounts. Tokens accrue to the acting user, rupees to
// the creator whose content drew the engagement.
const (
	LikeTokenReward    = 0.1
	CommentTokenReward = 0.1
	CreatorRupeeReward = 0.02
)

// AccrueReward adds tokens and rupees to a user's balance, creating the
// ledger row on first accrual. Safe inside a surrounding transaction.
func AccrueReward(tx *gorm.DB, userID string, tokens, rupees float64) error {
	var reward models.Reward
	err := tx.Where(models.Reward{UserID: userID}).FirstOrCreate(&reward).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Reward{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"tokens": gorm.Expr("tokens + ?", tokens),
			"rupees": gorm.Expr("rupees + ?", rupees),
		}).Error
}

// GetReward returns the user's balance ledger.
func GetReward(db *gorm.DB, userID string) (*models.Reward, error) {
	var reward models.Reward
	err := db.First(&reward, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NotFound("Reward not found")
	}
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// RedeemTokens debits tokens from the user's balance. The debit is
// all-or-nothing: an insufficient balance fails without any change.
func RedeemTokens(db *gorm.DB, userID string, amount float64) (*models.Reward, error) {
	return debit(db, userID, amount, func(r *models.Reward) (*float64, string) {
		return &r.Tokens, "Insufficient tokens"
	})
}

// WithdrawRupees debits rupees from the user's balance with the same
// all-or-nothing guarantee.
func WithdrawRupees(db *gorm.DB, userID string, amount float64) (*models.Reward, error) {
	return debit(db, userID, amount, func(r *models.Reward) (*float64, string) {
		return &r.Rupees, "Insufficient rupees"
	})
}

func debit(db *gorm.DB, userID string, amount float64, field func(*models.Reward) (*float64, string)) (*models.Reward, error) {
	if amount <= 0 {
		return nil, types.BadRequest("Amount must be positive")
	}
	var reward models.Reward
	err := db.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).First(&reward, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reward not found")
		}
		if err != nil {
			return err
		}
		balance, short := field(&reward)
		if *balance < amount {
			return types.BadRequest(short)
		}
		*balance -= amount
		return tx.Save(&reward).Error
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}
