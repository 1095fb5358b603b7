package services

import (
	"errors"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/gorm"
)

// WatchedReelIDs returns every reel id the user has ever watched.
// A user with no history gets an empty slice, not an error.
func WatchedReelIDs(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.WatchedReel{}).
		Where("user_id = ?", userID).
		Pluck("reel_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkWatchedAll records a batch of watches. Ids that resolve to no
// reel are skipped rather than failing the batch.
func MarkWatchedAll(db *gorm.DB, userID string, reelIDs []string) error {
	for _, id := range reelIDs {
		err := MarkWatched(db, userID, id)
		if err != nil {
			var apiErr *types.Error
			if errors.As(err, &apiErr) && apiErr.Code == 404 {
				continue
			}
			return err
		}
	}
	return nil
}

// MarkWatched records that the user watched the reel. The first watch
// bumps the reel's view count; repeat watches are no-ops.
func MarkWatched(db *gorm.DB, userID, reelID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var reel models.Reel
		err := tx.Select("id").First(&reel, "id = ?", reelID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("Reel not found")
		}
		if err != nil {
			return err
		}

		var existing models.WatchedReel
		err = tx.First(&existing, "user_id = ? AND reel_id = ?", userID, reelID).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		watch := models.WatchedReel{
			UserID:    userID,
			ReelID:    reelID,
			WatchedAt: time.Now(),
		}
		if err := tx.Create(&watch).Error; err != nil {
			return err
		}
		return tx.Model(&models.Reel{}).
			Where("id = ?", reelID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
}
