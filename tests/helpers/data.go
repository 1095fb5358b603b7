package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens an in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Reel{},
		&models.WatchedReel{},
		&models.Like{},
		&models.Comment{},
		&models.Reply{},
		&models.Reward{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateUser inserts a user with an empty reward ledger.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		Name:     username,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	if err := db.Create(&models.Reward{UserID: user.ID}).Error; err != nil {
		t.Fatalf("Failed to create reward ledger for %s: %v", username, err)
	}
	return &user
}

// CreateReel inserts a reel for the user at the given creation time.
func CreateReel(t *testing.T, db *gorm.DB, userID string, createdAt time.Time) *models.Reel {
	t.Helper()
	reel := models.Reel{
		UserID:   userID,
		VideoURI: "https://cdn.example.com/video.mp4",
		ThumbURI: "https://cdn.example.com/thumb.jpg",
		Caption:  "test reel",
	}
	if err := db.Create(&reel).Error; err != nil {
		t.Fatalf("Failed to create reel: %v", err)
	}
	// Create assigns the current time; pin it explicitly
	if err := db.Model(&reel).UpdateColumn("created_at", createdAt).Error; err != nil {
		t.Fatalf("Failed to set reel created_at: %v", err)
	}
	reel.CreatedAt = createdAt
	return &reel
}

// Follow inserts a follow edge.
func Follow(t *testing.T, db *gorm.DB, followerID, followeeID string) {
	t.Helper()
	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := db.Create(&edge).Error; err != nil {
		t.Fatalf("Failed to create follow edge: %v", err)
	}
}

// Like inserts a like row directly, bypassing reward accrual.
func Like(t *testing.T, db *gorm.DB, userID, targetType, targetID string) {
	t.Helper()
	like := models.Like{UserID: userID, TargetType: targetType, TargetID: targetID}
	if err := db.Create(&like).Error; err != nil {
		t.Fatalf("Failed to create like: %v", err)
	}
}

// Comment inserts a comment row directly.
func Comment(t *testing.T, db *gorm.DB, userID, reelID, text string) *models.Comment {
	t.Helper()
	comment := models.Comment{UserID: userID, ReelID: reelID, Comment: text}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	return &comment
}

// Reply inserts a reply row directly.
func Reply(t *testing.T, db *gorm.DB, userID, commentID, reelID, text string) *models.Reply {
	t.Helper()
	reply := models.Reply{UserID: userID, CommentID: commentID, ReelID: reelID, Reply: text}
	if err := db.Create(&reply).Error; err != nil {
		t.Fatalf("Failed to create reply: %v", err)
	}
	return &reply
}

// Watch inserts a watch-history row directly.
func Watch(t *testing.T, db *gorm.DB, userID, reelID string) {
	t.Helper()
	watch := models.WatchedReel{UserID: userID, ReelID: reelID, WatchedAt: time.Now()}
	if err := db.Create(&watch).Error; err != nil {
		t.Fatalf("Failed to create watch record: %v", err)
	}
}

// SetBalances overwrites a user's reward balances.
func SetBalances(t *testing.T, db *gorm.DB, userID string, tokens, rupees float64) {
	t.Helper()
	err := db.Model(&models.Reward{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{"tokens": tokens, "rupees": rupees}).Error
	if err != nil {
		t.Fatalf("Failed to set balances: %v", err)
	}
}
