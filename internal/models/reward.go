package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reward is the per-user ledger with two independent non-negative
// balances. Balances move only by bounded increments (engagement
// accrual) and guarded decrements (redeem/withdraw).
type Reward struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);not null;uniqueIndex" json:"userId"`
	Tokens    float64   `gorm:"not null;default:0" json:"tokens"`
	Rupees    float64   `gorm:"not null;default:0" json:"rupees"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key
func (r *Reward) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Reward
func (Reward) TableName() string {
	return "rewards"
}
