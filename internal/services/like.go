package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/gorm"
)

// ToggleReelLike flips the viewer's like on a reel. Creating the like
// accrues tokens to the liker; removing it does not claw them back.
// Returns true when the reel is liked after the call.
func ToggleReelLike(db *gorm.DB, userID, reelID string) (bool, error) {
	liked := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var reel models.Reel
		err := tx.Select("id").First(&reel, "id = ?", reelID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reel not found")
		}
		if err != nil {
			return err
		}
		created, err := toggleLike(tx, userID, models.TargetReel, reelID)
		if err != nil {
			return err
		}
		liked = created
		if created {
			return AccrueReward(tx, userID, LikeTokenReward, 0)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// ToggleCommentLike flips the viewer's like on a comment. When the
// liker owns the comment's reel, the comment's IsLikedByAuthor flag
// follows the toggle in the same transaction.
func ToggleCommentLike(db *gorm.DB, userID, commentID string) (bool, error) {
	liked := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		err := tx.First(&comment, "id = ?", commentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Comment not found")
		}
		if err != nil {
			return err
		}
		created, err := toggleLike(tx, userID, models.TargetComment, commentID)
		if err != nil {
			return err
		}
		liked = created

		var reel models.Reel
		if err := tx.Select("user_id").First(&reel, "id = ?", comment.ReelID).Error; err != nil {
			return err
		}
		if reel.UserID == userID {
			err = tx.Model(&models.Comment{}).
				Where("id = ?", commentID).
				UpdateColumn("is_liked_by_author", created).Error
			if err != nil {
				return err
			}
		}
		if created {
			return AccrueReward(tx, userID, LikeTokenReward, 0)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// ToggleReplyLike flips the viewer's like on a reply, mirroring the
// comment semantics including the author-liked flag.
func ToggleReplyLike(db *gorm.DB, userID, replyID string) (bool, error) {
	liked := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var reply models.Reply
		err := tx.First(&reply, "id = ?", replyID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reply not found")
		}
		if err != nil {
			return err
		}
		created, err := toggleLike(tx, userID, models.TargetReply, replyID)
		if err != nil {
			return err
		}
		liked = created

		var reel models.Reel
		if err := tx.Select("user_id").First(&reel, "id = ?", reply.ReelID).Error; err != nil {
			return err
		}
		if reel.UserID == userID {
			err = tx.Model(&models.Reply{}).
				Where("id = ?", replyID).
				UpdateColumn("is_liked_by_author", created).Error
			if err != nil {
				return err
			}
		}
		if created {
			return AccrueReward(tx, userID, LikeTokenReward, 0)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

// toggleLike inserts or deletes the like row, returning true when the
// like exists after the call.
func toggleLike(tx *gorm.DB, userID, targetType, targetID string) (bool, error) {
	var existing models.Like
	err := tx.First(&existing, "user_id = ? AND target_type = ? AND target_id = ?",
		userID, targetType, targetID).Error
	if err == nil {
		return false, tx.Delete(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	like := models.Like{UserID: userID, TargetType: targetType, TargetID: targetID}
	return true, tx.Create(&like).Error
}

// Liker is one entry on a target's likers list.
type Liker struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	UserImage   string `json:"userImage"`
	IsFollowing bool   `json:"isFollowing"`
}

// ListLikes returns the users who liked a target, users the viewer
// follows first, with optional substring search on username and name.
func ListLikes(db *gorm.DB, viewerID, targetType, targetID, search string, offset, limit int) ([]Liker, error) {
	var userIDs []string
	err := db.Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Order("created_at DESC").
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return []Liker{}, nil
	}

	var users []models.User
	q := db.Where("id IN ?", userIDs)
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		q = q.Where("username LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}

	// Restore like recency order.
	pos := make(map[string]int, len(userIDs))
	for i, id := range userIDs {
		pos[id] = i
	}
	sort.SliceStable(users, func(i, j int) bool {
		return pos[users[i].ID] < pos[users[j].ID]
	})

	following, err := FollowingIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	followed := make(map[string]bool, len(following))
	for _, id := range following {
		followed[id] = true
	}

	// Followed users float to the front, order inside each group kept.
	sort.SliceStable(users, func(i, j int) bool {
		return followed[users[i].ID] && !followed[users[j].ID]
	})

	if offset >= len(users) {
		return []Liker{}, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}

	out := make([]Liker, 0, end-offset)
	for _, u := range users[offset:end] {
		out = append(out, Liker{
			ID:          u.ID,
			Username:    u.Username,
			Name:        u.Name,
			UserImage:   u.UserImage,
			IsFollowing: followed[u.ID],
		})
	}
	return out, nil
}
