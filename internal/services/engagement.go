package services

import (
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Engagement is the per-entity aggregation result. SecondaryCount is
// the comment count for reels and the reply count for comments.
type Engagement struct {
	LikeCount      int64
	SecondaryCount int64
	LikedByViewer  bool
}

type countRow struct {
	TargetID string
	N        int64
}

// AnnotateEngagement computes engagement for a batch of entities with
// one grouped-count query per count type plus one membership query for
// the viewer's likes. Entities absent from a grouping report zero; the
// three sub-queries are independent and run concurrently.
func AnnotateEngagement(db *gorm.DB, targetType string, ids []string, viewerID string) (map[string]Engagement, error) {
	out := make(map[string]Engagement, len(ids))
	for _, id := range ids {
		out[id] = Engagement{}
	}
	if len(ids) == 0 {
		return out, nil
	}

	var (
		likeRows  []countRow
		secRows   []countRow
		viewerIDs []string
	)

	g := new(errgroup.Group)

	g.Go(func() error {
		return db.Model(&models.Like{}).
			Select("target_id, COUNT(*) AS n").
			Where("target_type = ? AND target_id IN ?", targetType, ids).
			Group("target_id").
			Scan(&likeRows).Error
	})

	g.Go(func() error {
		switch targetType {
		case models.TargetReel:
			return db.Model(&models.Comment{}).
				Select("reel_id AS target_id, COUNT(*) AS n").
				Where("reel_id IN ?", ids).
				Group("reel_id").
				Scan(&secRows).Error
		case models.TargetComment:
			return db.Model(&models.Reply{}).
				Select("comment_id AS target_id, COUNT(*) AS n").
				Where("comment_id IN ?", ids).
				Group("comment_id").
				Scan(&secRows).Error
		default:
			// Replies have no nested children to count.
			return nil
		}
	})

	if viewerID != "" {
		g.Go(func() error {
			return db.Model(&models.Like{}).
				Distinct().
				Where("user_id = ? AND target_type = ? AND target_id IN ?", viewerID, targetType, ids).
				Pluck("target_id", &viewerIDs).Error
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, row := range likeRows {
		e := out[row.TargetID]
		e.LikeCount = row.N
		out[row.TargetID] = e
	}
	for _, row := range secRows {
		e := out[row.TargetID]
		e.SecondaryCount = row.N
		out[row.TargetID] = e
	}
	for _, id := range viewerIDs {
		e := out[id]
		e.LikedByViewer = true
		out[id] = e
	}

	return out, nil
}

// lockForUpdate adds a row lock on dialects that support SELECT ... FOR
// UPDATE. SQLite serializes writers anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
