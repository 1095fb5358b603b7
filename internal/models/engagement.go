package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Like target kinds. A like points at exactly one of these.
const (
	TargetReel    = "reel"
	TargetComment = "comment"
	TargetReply   = "reply"
)

// Like is one user's like of one target entity, modeled as a tagged
// (type, id) pair. The composite unique index on (user, type, id) is
// the sole deduplication mechanism behind toggle semantics.
type Like struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID     string    `gorm:"type:char(36);not null;index:idx_like_user_target,unique" json:"userId"`
	TargetType string    `gorm:"size:10;not null;index:idx_like_user_target,unique;index:idx_like_target" json:"targetType"`
	TargetID   string    `gorm:"type:char(36);not null;index:idx_like_user_target,unique;index:idx_like_target" json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BeforeCreate assigns a UUID primary key
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Like
func (Like) TableName() string {
	return "likes"
}

// Comment is a text or GIF comment on a reel. IsLikedByAuthor is
// denormalized: true iff the reel's owner currently likes this comment,
// maintained in the same transaction as the like toggle.
type Comment struct {
	ID               string         `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           string         `gorm:"type:char(36);not null;index" json:"userId"`
	ReelID           string         `gorm:"type:char(36);not null;index" json:"reelId"`
	Comment          string         `gorm:"size:500" json:"comment"`
	HasGif           bool           `gorm:"not null;default:false" json:"hasGif"`
	GifURL           string         `gorm:"size:512" json:"gifUrl,omitempty"`
	MentionedUserIDs datatypes.JSON `gorm:"type:json" json:"mentionedUsers,omitempty"`
	IsPinned         bool           `gorm:"not null;default:false" json:"isPinned"`
	IsLikedByAuthor  bool           `gorm:"not null;default:false" json:"isLikedByAuthor"`
	CreatedAt        time.Time      `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

// BeforeCreate assigns a UUID primary key
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// Reply has the same shape as Comment but is parented to a comment.
// ReelID is a denormalized back-reference for scoping queries to a reel
// without a join through comments.
type Reply struct {
	ID               string         `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           string         `gorm:"type:char(36);not null;index" json:"userId"`
	CommentID        string         `gorm:"type:char(36);not null;index" json:"commentId"`
	ReelID           string         `gorm:"type:char(36);not null;index" json:"reelId"`
	Reply            string         `gorm:"size:500" json:"reply"`
	HasGif           bool           `gorm:"not null;default:false" json:"hasGif"`
	GifURL           string         `gorm:"size:512" json:"gifUrl,omitempty"`
	MentionedUserIDs datatypes.JSON `gorm:"type:json" json:"mentionedUsers,omitempty"`
	IsLikedByAuthor  bool           `gorm:"not null;default:false" json:"isLikedByAuthor"`
	CreatedAt        time.Time      `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

// BeforeCreate assigns a UUID primary key
func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Reply
func (Reply) TableName() string {
	return "replies"
}
