package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reel is a short video post. Like and comment counts are derived by
// grouped aggregation over the likes/comments tables; they are never
// stored on the reel row.
type Reel struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:char(36);not null;index" json:"userId"`
	VideoURI  string    `gorm:"size:512;not null" json:"videoUri"`
	ThumbURI  string    `gorm:"size:512;not null" json:"thumbUri"`
	Caption   string    `gorm:"size:500" json:"caption"`
	ViewCount int64     `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

// BeforeCreate assigns a UUID primary key
func (r *Reel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Reel
func (Reel) TableName() string {
	return "reels"
}

// WatchedReel records that a user has watched a reel. The composite
// unique index keeps at most one row per (user, reel) pair.
type WatchedReel struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	UserID    string    `gorm:"type:char(36);not null;index:idx_watched,unique"`
	ReelID    string    `gorm:"type:char(36);not null;index:idx_watched,unique"`
	WatchedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns a UUID primary key
func (w *WatchedReel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for WatchedReel
func (WatchedReel) TableName() string {
	return "watched_reels"
}
