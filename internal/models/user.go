package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account created on first successful OAuth verification.
// Follow relationships live in the follows table, not on the user row.
type User struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Username  string    `gorm:"size:30;not null;uniqueIndex" json:"username"`
	Name      string    `gorm:"size:50" json:"name"`
	UserImage string    `gorm:"size:512" json:"userImage"`
	Bio       string    `gorm:"size:512" json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID primary key
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// Follow is a single directed edge of the follow graph: the follower
// follows the followee. Both the followers and following views of a
// profile derive from this one row, so the two sides cannot diverge
// on a crashed toggle.
type Follow struct {
	ID         string `gorm:"type:char(36);primaryKey"`
	FollowerID string `gorm:"type:char(36);not null;index:idx_follow_edge,unique;index:idx_follower"`
	FolloweeID string `gorm:"type:char(36);not null;index:idx_follow_edge,unique;index:idx_followee"`
	CreatedAt  time.Time
}

// BeforeCreate assigns a UUID primary key
func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Follow
func (Follow) TableName() string {
	return "follows"
}
