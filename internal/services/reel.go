package services

import (
	"errors"
	"strings"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/gorm"
)

// ReelInput carries the creatable reel fields.
type ReelInput struct {
	VideoURI string `json:"videoUri"`
	ThumbURI string `json:"thumbUri"`
	Caption  string `json:"caption"`
}

// CreateReel posts a new reel for the user.
func CreateReel(db *gorm.DB, userID string, in ReelInput) (*models.Reel, error) {
	if strings.TrimSpace(in.VideoURI) == "" || strings.TrimSpace(in.ThumbURI) == "" {
		return nil, types.BadRequest("Video and thumbnail required")
	}
	if len(in.Caption) > 500 {
		return nil, types.BadRequest("Caption too long")
	}
	reel := models.Reel{
		UserID:   userID,
		VideoURI: in.VideoURI,
		ThumbURI: in.ThumbURI,
		Caption:  in.Caption,
	}
	if err := db.Create(&reel).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").First(&reel, "id = ?", reel.ID).Error; err != nil {
		return nil, err
	}
	return &reel, nil
}

// GetReel loads a single reel annotated for the viewer.
func GetReel(db *gorm.DB, viewerID, reelID string) (*FeedReel, error) {
	var reel models.Reel
	err := db.Preload("User").First(&reel, "id = ?", reelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NotFound("Reel not found")
	}
	if err != nil {
		return nil, err
	}
	annotated, err := annotateForViewer(db, viewerID, []models.Reel{reel})
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}

// UpdateCaption edits a reel's caption. Owner only.
func UpdateCaption(db *gorm.DB, userID, reelID, caption string) (*models.Reel, error) {
	if len(caption) > 500 {
		return nil, types.BadRequest("Caption too long")
	}
	var reel models.Reel
	err := db.First(&reel, "id = ?", reelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NotFound("Reel not found")
	}
	if err != nil {
		return nil, err
	}
	if reel.UserID != userID {
		return nil, types.Unauthenticated("Not allowed to edit this reel")
	}
	err = db.Model(&reel).UpdateColumn("caption", caption).Error
	if err != nil {
		return nil, err
	}
	return &reel, nil
}

// DeleteReel removes a reel with its comments, replies, likes, and
// watch history. Owner only.
func DeleteReel(db *gorm.DB, userID, reelID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var reel models.Reel
		err := tx.First(&reel, "id = ?", reelID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reel not found")
		}
		if err != nil {
			return err
		}
		if reel.UserID != userID {
			return types.Unauthenticated("Not allowed to delete this reel")
		}

		var commentIDs []string
		err = tx.Model(&models.Comment{}).
			Where("reel_id = ?", reelID).
			Pluck("id", &commentIDs).Error
		if err != nil {
			return err
		}

		var replyIDs []string
		err = tx.Model(&models.Reply{}).
			Where("reel_id = ?", reelID).
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
			if err := tx.Where("reel_id = ?", reelID).Delete(&models.Reply{}).Error; err != nil {
				return err
			}
		}
		if len(commentIDs) > 0 {
			err = tx.Where("target_type = ? AND target_id IN ?", models.TargetComment, commentIDs).
				Delete(&models.Like{}).Error
			if err != nil {
				return err
			}
			if err := tx.Where("reel_id = ?", reelID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		err = tx.Where("target_type = ? AND target_id = ?", models.TargetReel, reelID).
			Delete(&models.Like{}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("reel_id = ?", reelID).Delete(&models.WatchedReel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reel).Error
	})
}
