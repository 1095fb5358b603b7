package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReplyView is a reply annotated for the viewer.
type ReplyView struct {
	ID              string         `json:"id"`
	CommentID       string         `json:"commentId"`
	ReelID          string         `json:"reelId"`
	Reply           string         `json:"reply"`
	HasGif          bool           `json:"hasGif"`
	GifURL          string         `json:"gifUrl,omitempty"`
	MentionedUsers  datatypes.JSON `json:"mentionedUsers,omitempty"`
	IsLikedByAuthor bool           `json:"isLikedByAuthor"`
	CreatedAt       time.Time      `json:"createdAt"`
	User            AuthorSummary  `json:"user"`
	LikesCount      int64          `json:"likesCount"`
	IsLiked         bool           `json:"isLiked"`
}

// ReplyInput carries the creatable reply fields.
type ReplyInput struct {
	Reply          string         `json:"reply"`
	HasGif         bool           `json:"hasGif"`
	GifURL         string         `json:"gifUrl"`
	MentionedUsers datatypes.JSON `json:"mentionedUsers"`
}

// CreateReply posts a reply under a comment. Rewards mirror the
// comment flow: tokens to the replier, rupees to the reel's creator.
func CreateReply(db *gorm.DB, userID, commentID string, in ReplyInput) (*models.Reply, error) {
	text := strings.TrimSpace(in.Reply)
	if text == "" && !in.HasGif {
		return nil, types.BadRequest("Reply text or GIF required")
	}
	if len(text) > 500 {
		return nil, types.BadRequest("Reply too long")
	}
	if in.HasGif && in.GifURL == "" {
		return nil, types.BadRequest("GIF URL required")
	}

	var reply models.Reply
	err := db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		err := tx.Select("id, reel_id").First(&comment, "id = ?", commentID).Error
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

		reply = models.Reply{
			UserID:           userID,
			CommentID:        commentID,
			ReelID:           comment.ReelID,
			Reply:            text,
			HasGif:           in.HasGif,
			GifURL:           in.GifURL,
			MentionedUserIDs: in.MentionedUsers,
		}
		if err := tx.Create(&reply).Error; err != nil {
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
	if err := db.Preload("User").First(&reply, "id = ?", reply.ID).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

// DeleteReply removes a reply and the likes pointing at it. Only the
// reply's author or the reel owner may delete.
func DeleteReply(db *gorm.DB, userID, replyID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var reply models.Reply
		err := tx.First(&reply, "id = ?", replyID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reply not found")
		}
		if err != nil {
			return err
		}
		var reel models.Reel
		if err := tx.Select("user_id").First(&reel, "id = ?", reply.ReelID).Error; err != nil {
			return err
		}
		if reply.UserID != userID && reel.UserID != userID {
			return types.Unauthenticated("Not allowed to delete this reply")
		}
		err = tx.Where("target_type = ? AND target_id = ?", models.TargetReply, replyID).
			Delete(&models.Like{}).Error
		if err != nil {
			return err
		}
		return tx.Delete(&reply).Error
	})
}

// ListReplies returns a comment's replies oldest first, annotated for
// the viewer.
func ListReplies(db *gorm.DB, viewerID, commentID string, offset, limit int) ([]ReplyView, error) {
	var replies []models.Reply
	err := db.Preload("User").
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	if len(replies) == 0 {
		return []ReplyView{}, nil
	}

	ids := make([]string, len(replies))
	for i, r := range replies {
		ids[i] = r.ID
	}
	engagement, err := AnnotateEngagement(db, models.TargetReply, ids, viewerID)
	if err != nil {
		return nil, err
	}
	following, err := FollowingIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	followed := make(map[string]bool, len(following))
	for _, id := range following {
		followed[id] = true
	}

	out := make([]ReplyView, 0, len(replies))
	for _, r := range replies {
		e := engagement[r.ID]
		out = append(out, ReplyView{
			ID:              r.ID,
			CommentID:       r.CommentID,
			ReelID:          r.ReelID,
			Reply:           r.Reply,
			HasGif:          r.HasGif,
			GifURL:          r.GifURL,
			MentionedUsers:  r.MentionedUserIDs,
			IsLikedByAuthor: r.IsLikedByAuthor,
			CreatedAt:       r.CreatedAt,
			User: AuthorSummary{
				ID:          r.User.ID,
				Username:    r.User.Username,
				Name:        r.User.Name,
				UserImage:   r.User.UserImage,
				IsFollowing: followed[r.User.ID],
			},
			LikesCount: e.LikeCount,
			IsLiked:    e.LikedByViewer,
		})
	}
	return out, nil
}
