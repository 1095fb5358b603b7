package services

import (
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// AuthorSummary is the embedded author block on every feed item.
type AuthorSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	UserImage   string `json:"userImage"`
	IsFollowing bool   `json:"isFollowing"`
}

// FeedReel is a reel annotated for a particular viewer.
type FeedReel struct {
	ID            string        `json:"id"`
	VideoURI      string        `json:"videoUri"`
	ThumbURI      string        `json:"thumbUri"`
	Caption       string        `json:"caption"`
	ViewCount     int64         `json:"viewCount"`
	CreatedAt     time.Time     `json:"createdAt"`
	User          AuthorSummary `json:"user"`
	LikesCount    int64         `json:"likesCount"`
	CommentsCount int64         `json:"commentsCount"`
	IsLiked       bool          `json:"isLiked"`
}

// HomeFeed assembles the three-tier personalized feed: reels from
// followed authors first, then the most engaged reels site-wide, then
// the newest. Reels already watched by the viewer are excluded from
// every tier, duplicates keep their first-seen position, and the
// offset/limit window is cut from the merged sequence.
func HomeFeed(db *gorm.DB, viewerID string, offset, limit int) ([]FeedReel, error) {
	watched, err := WatchedReelIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	following, err := FollowingIDs(db, viewerID)
	if err != nil {
		return nil, err
	}

	// Each tier fills the window up to offset+limit; later tiers only
	// run while a shortfall remains, capped at it.
	fetch := offset + limit

	var merged []models.Reel
	seen := make(map[string]bool)
	appendReels := func(reels []models.Reel) {
		for _, r := range reels {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			merged = append(merged, r)
		}
	}
	// Watched reels plus everything earlier tiers already collected.
	excluded := func() []string {
		out := make([]string, 0, len(watched)+len(merged))
		out = append(out, watched...)
		for _, r := range merged {
			out = append(out, r.ID)
		}
		return out
	}

	// Tier 1: followed authors, newest first.
	if len(following) > 0 {
		var tier []models.Reel
		q := excludeReels(db.Preload("User"), watched).
			Where("user_id IN ?", following).
			Order("created_at DESC").
			Limit(fetch)
		if err := q.Find(&tier).Error; err != nil {
			return nil, err
		}
		appendReels(tier)
	}

	// Tier 2: most engaged site-wide. Correlated counts keep the
	// ordering inside the database across dialects.
	if len(merged) < fetch {
		var tier []models.Reel
		q := excludeReels(db.Preload("User"), excluded()).
			Select("reels.*,"+
				" (SELECT COUNT(*) FROM likes WHERE likes.target_type = ? AND likes.target_id = reels.id) AS like_count,"+
				" (SELECT COUNT(*) FROM comments WHERE comments.reel_id = reels.id) AS comment_count",
				models.TargetReel).
			Order("like_count DESC, comment_count DESC, created_at DESC").
			Limit(fetch - len(merged))
		if db.Dialector.Name() == "mysql" {
			q = q.Clauses(hints.UseIndex("idx_reels_created_at"))
		}
		if err := q.Find(&tier).Error; err != nil {
			return nil, err
		}
		appendReels(tier)
	}

	// Tier 3: newest overall.
	if len(merged) < fetch {
		var tier []models.Reel
		q := excludeReels(db.Preload("User"), excluded()).
			Order("created_at DESC").
			Limit(fetch - len(merged))
		if err := q.Find(&tier).Error; err != nil {
			return nil, err
		}
		appendReels(tier)
	}

	if offset >= len(merged) {
		return []FeedReel{}, nil
	}
	end := offset + limit
	if end > len(merged) {
		end = len(merged)
	}
	window := merged[offset:end]

	return annotateReels(db, viewerID, window, following)
}

func excludeReels(q *gorm.DB, ids []string) *gorm.DB {
	if len(ids) == 0 {
		return q
	}
	return q.Where("reels.id NOT IN ?", ids)
}

// UserReels lists a user's own reels, newest first, annotated for the
// viewer.
func UserReels(db *gorm.DB, viewerID, ownerID string, offset, limit int) ([]FeedReel, error) {
	var reels []models.Reel
	err := db.Preload("User").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reels).Error
	if err != nil {
		return nil, err
	}
	return annotateForViewer(db, viewerID, reels)
}

// LikedReels lists the reels a user has liked, most recent like first.
func LikedReels(db *gorm.DB, viewerID, userID string, offset, limit int) ([]FeedReel, error) {
	var ids []string
	err := db.Model(&models.Like{}).
		Where("user_id = ? AND target_type = ?", userID, models.TargetReel).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	reels, err := reelsByIDOrdered(db, ids)
	if err != nil {
		return nil, err
	}
	return annotateForViewer(db, viewerID, reels)
}

// WatchedReels lists a user's watch history, most recent first.
func WatchedReels(db *gorm.DB, viewerID, userID string, offset, limit int) ([]FeedReel, error) {
	var ids []string
	err := db.Model(&models.WatchedReel{}).
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Offset(offset).Limit(limit).
		Pluck("reel_id", &ids).Error
	if err != nil {
		return nil, err
	}
	reels, err := reelsByIDOrdered(db, ids)
	if err != nil {
		return nil, err
	}
	return annotateForViewer(db, viewerID, reels)
}

// reelsByIDOrdered loads reels and restores the order of ids, which an
// IN query does not preserve.
func reelsByIDOrdered(db *gorm.DB, ids []string) ([]models.Reel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var reels []models.Reel
	if err := db.Preload("User").Where("id IN ?", ids).Find(&reels).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Reel, len(reels))
	for _, r := range reels {
		byID[r.ID] = r
	}
	ordered := make([]models.Reel, 0, len(reels))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

func annotateForViewer(db *gorm.DB, viewerID string, reels []models.Reel) ([]FeedReel, error) {
	following, err := FollowingIDs(db, viewerID)
	if err != nil {
		return nil, err
	}
	return annotateReels(db, viewerID, reels, following)
}

// annotateReels attaches engagement and follow state to a reel batch
// in a single aggregation pass.
func annotateReels(db *gorm.DB, viewerID string, reels []models.Reel, following []string) ([]FeedReel, error) {
	ids := make([]string, len(reels))
	for i, r := range reels {
		ids[i] = r.ID
	}
	engagement, err := AnnotateEngagement(db, models.TargetReel, ids, viewerID)
	if err != nil {
		return nil, err
	}
	followed := make(map[string]bool, len(following))
	for _, id := range following {
		followed[id] = true
	}

	out := make([]FeedReel, 0, len(reels))
	for _, r := range reels {
		e := engagement[r.ID]
		out = append(out, FeedReel{
			ID:        r.ID,
			VideoURI:  r.VideoURI,
			ThumbURI:  r.ThumbURI,
			Caption:   r.Caption,
			ViewCount: r.ViewCount,
			CreatedAt: r.CreatedAt,
			User: AuthorSummary{
				ID:          r.User.ID,
				Username:    r.User.Username,
				Name:        r.User.Name,
				UserImage:   r.User.UserImage,
				IsFollowing: followed[r.User.ID],
			},
			LikesCount:    e.LikeCount,
			CommentsCount: e.SecondaryCount,
			IsLiked:       e.LikedByViewer,
		})
	}
	return out, nil
}
