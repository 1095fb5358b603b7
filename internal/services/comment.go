package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RankedComment is a comment annotated for the viewer and carrying the
// keys its feed position was ranked by.
type RankedComment struct {
	ID              string         `json:"id"`
	ReelID          string         `json:"reelId"`
	Comment         string         `json:"comment"`
	HasGif          bool           `json:"hasGif"`
	GifURL          string         `json:"gifUrl,omitempty"`
	MentionedUsers  datatypes.JSON `json:"mentionedUsers,omitempty"`
	IsPinned        bool           `json:"isPinned"`
	IsLikedByAuthor bool           `json:"isLikedByAuthor"`
	CreatedAt       time.Time      `json:"createdAt"`
	User            AuthorSummary  `json:"user"`
	LikesCount      int64          `json:"likesCount"`
	RepliesCount    int64          `json:"repliesCount"`
	IsLiked         bool           `json:"isLiked"`

	viewerReplied  bool
	authorFollowed bool
}

// commentLess is the strict-priority ranking order for a reel's comment
// feed: pinned, then author-liked, then comments the viewer replied to,
// then like count, then comments from followed authors, then recency.
// Each key breaks ties left by the keys before it.
func commentLess(a, b *RankedComment) bool {
	if a.IsPinned != b.IsPinned {
		return a.IsPinned
	}
	if a.IsLikedByAuthor != b.IsLikedByAuthor {
		return a.IsLikedByAuthor
	}
	if a.viewerReplied != b.viewerReplied {
		return a.viewerReplied
	}
	if a.LikesCount != b.LikesCount {
		return a.LikesCount > b.LikesCount
	}
	if a.authorFollowed != b.authorFollowed {
		return a.authorFollowed
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// ListComments returns a reel's comments ranked for the viewer. The
// ranking runs in memory over the full comment set; pagination windows
// the ranked sequence.
func ListComments(db *gorm.DB, viewerID, reelID string, offset, limit int) ([]RankedComment, error) {
	var comments []models.Comment
	err := db.Preload("User").
		Where("reel_id = ?", reelID).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []RankedComment{}, nil
	}

	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	engagement, err := AnnotateEngagement(db, models.TargetComment, ids, viewerID)
	if err != nil {
		return nil, err
	}

	// Comments the viewer has replied to, one batched query.
	var repliedIDs []string
	err = db.Model(&models.Reply{}).
		Distinct().
		Where("user_id = ? AND comment_id IN ?", viewerID, ids).
		Pluck("comment_id", &repliedIDs).Error
	if err != nil {
		return nil, err
	}
	replied := make(map[string]bool, len(repliedIDs))
	for _, id := range repliedIDs {
		replied[id] = true
	}

	following, err := FollowingIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	followed := make(map[string]bool, len(following))
	for _, id := range following {
		followed[id] = true
	}

	ranked := make([]RankedComment, 0, len(comments))
	for _, c := range comments {
		e := engagement[c.ID]
		ranked = append(ranked, RankedComment{
			ID:              c.ID,
			ReelID:          c.ReelID,
			Comment:         c.Comment,
			HasGif:          c.HasGif,
			GifURL:          c.GifURL,
			MentionedUsers:  c.MentionedUserIDs,
			IsPinned:        c.IsPinned,
			IsLikedByAuthor: c.IsLikedByAuthor,
			CreatedAt:       c.CreatedAt,
			User: AuthorSummary{
				ID:          c.User.ID,
				Username:    c.User.Username,
				Name:        c.User.Name,
				UserImage:   c.User.UserImage,
				IsFollowing: followed[c.User.ID],
			},
			LikesCount:     e.LikeCount,
			RepliesCount:   e.SecondaryCount,
			IsLiked:        e.LikedByViewer,
			viewerReplied:  replied[c.ID],
			authorFollowed: followed[c.User.ID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return commentLess(&ranked[i], &ranked[j])
	})

	if offset >= len(ranked) {
		return []RankedComment{}, nil
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end], nil
}

// CommentInput carries the creatable comment fields.
type CommentInput struct {
	Comment        string         `json:"comment"`
	HasGif         bool           `json:"hasGif"`
	GifURL         string         `json:"gifUrl"`
	MentionedUsers datatypes.JSON `json:"mentionedUsers"`
}

// CreateComment posts a comment on a reel. The commenter accrues
// tokens and the reel's creator accrues rupees in the same transaction
// as the insert.
func CreateComment(db *gorm.DB, userID, reelID string, in CommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Comment)
	if text == "" && !in.HasGif {
		return nil, types.BadRequest("Comment text or GIF required")
	}
	if len(text) > 500 {
		return nil, types.BadRequest("Comment too long")
	}
	if in.HasGif && in.GifURL == "" {
		return nil, types.BadRequest("GIF URL required")
	}

	comment := models.Comment{
		UserID:           userID,
		ReelID:           reelID,
		Comment:          text,
		HasGif:           in.HasGif,
		GifURL:           in.GifURL,
		MentionedUserIDs: in.MentionedUsers,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var reel models.Reel
		err := tx.Select("id, user_id").First(&reel, "id = ?", reelID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reel not found")
		}
		if err != nil {
			return err
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		if err := AccrueReward(tx, userID, CommentTokenReward, 0); err != nil {
			return err
		}
		return AccrueReward(tx, reel.UserID, 0, CreatorRupeeReward)
	})
	if err != nil {
		return nil, err
	}
	if err := db.Preload("User").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// TogglePin flips a comment's pinned flag. Only the reel's owner may
// pin.
func TogglePin(db *gorm.DB, userID, commentID string) (bool, error) {
	pinned := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		err := tx.First(&comment, "id = ?", commentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Comment not found")
		}
		if err != nil {
			return err
		}
		var reel models.Reel
		if err := tx.Select("user_id").First(&reel, "id = ?", comment.ReelID).Error; err != nil {
			return err
		}
		if reel.UserID != userID {
			return types.Unauthenticated("Only the reel owner can pin comments")
		}
		pinned = !comment.IsPinned
		return tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("is_pinned", pinned).Error
	})
	if err != nil {
		return false, err
	}
	return pinned, nil
}

// DeleteComment removes a comment along with its replies and the likes
// pointing at any of them. Only the comment's author or the reel owner
// may delete.
func DeleteComment(db *gorm.DB, userID, commentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		err := tx.First(&comment, "id = ?", commentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Comment not found")
		}
		if err != nil {
			return err
		}
		var reel models.Reel
		if err := tx.Select("user_id").First(&reel, "id = ?", comment.ReelID).Error; err != nil {
			return err
		}
		if comment.UserID != userID && reel.UserID != userID {
			return types.Unauthenticated("Not allowed to delete this comment")
		}

		var replyIDs []string
		err = tx.Model(&models.Reply{}).
			Where("comment_id = ?", commentID).
			Pluck("id", &replyIDs).Error
		if err != nil {
			return err
		}
		if len(replyIDs) > 0 {
			err = tx.Where("target_type = ? AND target_id IN ?", models.TargetReply, replyIDs).
				Delete(&models.Like{}).Error
			if err != nil {
				return err
			}
			if err := tx.Where("comment_id = ?", commentID).Delete(&models.Reply{}).Error; err != nil {
				return err
			}
		}
		err = tx.Where("target_type = ? AND target_id = ?", models.TargetComment, commentID).
			Delete(&models.Like{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
}
