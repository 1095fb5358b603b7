package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// Profile is a user with derived social counts, shaped for the viewer.
type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	UserImage      string `json:"userImage"`
	Bio            string `json:"bio"`
	FollowersCount int64  `json:"followersCount"`
	FollowingCount int64  `json:"followingCount"`
	ReelsCount     int64  `json:"reelsCount"`
	IsFollowing    bool   `json:"isFollowing"`
}

// FollowingIDs returns the ids of every user the given user follows.
func FollowingIDs(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// FollowerIDs returns the ids of every user following the given user.
func FollowerIDs(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleFollow creates the follow edge from actor to target, or removes
// it if it already exists. Returns true when the actor follows the
// target after the call.
func ToggleFollow(db *gorm.DB, actorID, targetID string) (bool, error) {
	if actorID == targetID {
		return false, types.BadRequest("You cannot follow yourself")
	}
	following := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		err := tx.Select("id").First(&target, "id = ?", targetID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NotFound("User not found")
		}
		if err != nil {
			return err
		}

		var edge models.Follow
		err = tx.First(&edge, "follower_id = ? AND followee_id = ?", actorID, targetID).Error
		if err == nil {
			return tx.Delete(&edge).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		following = true
		return tx.Create(&models.Follow{FollowerID: actorID, FolloweeID: targetID}).Error
	})
	if err != nil {
		return false, err
	}
	return following, nil
}

// GetProfile loads a user with follower/following/reel counts and the
// viewer's follow state.
func GetProfile(db *gorm.DB, viewerID, userID string) (*Profile, error) {
	var user models.User
	err := db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	p := Profile{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		UserImage: user.UserImage,
		Bio:       user.Bio,
	}
	if err := db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&p.FollowersCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&p.FollowingCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Reel{}).Where("user_id = ?", userID).Count(&p.ReelsCount).Error; err != nil {
		return nil, err
	}
	if viewerID != "" && viewerID != userID {
		var n int64
		err := db.Model(&models.Follow{}).
			Where("follower_id = ? AND followee_id = ?", viewerID, userID).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		p.IsFollowing = n > 0
	}
	return &p, nil
}

// ProfileUpdate carries the mutable profile fields. Nil means leave
// unchanged.
type ProfileUpdate struct {
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	UserImage *string `json:"userImage"`
}

// UpdateProfile applies a partial profile update after validating the
// username format and uniqueness.
func UpdateProfile(db *gorm.DB, userID string, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		name := strings.ToLower(strings.TrimSpace(*upd.Username))
		if !usernamePattern.MatchString(name) {
			return nil, types.BadRequest("Invalid username")
		}
		if name != user.Username {
			available, err := CheckUsernameAvailable(db, name)
			if err != nil {
				return nil, err
			}
			if !available {
				return nil, types.BadRequest("Username already taken")
			}
			user.Username = name
		}
	}
	if upd.Name != nil {
		if len(*upd.Name) > 50 {
			return nil, types.BadRequest("Name too long")
		}
		user.Name = *upd.Name
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.UserImage != nil {
		user.UserImage = *upd.UserImage
	}

	if err := db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUsernameAvailable reports whether no user currently holds the
// username.
func CheckUsernameAvailable(db *gorm.DB, username string) (bool, error) {
	var n int64
	err := db.Model(&models.User{}).
		Where("username = ?", strings.ToLower(username)).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// SearchUsers matches the query against username and name, annotating
// each hit with the viewer's follow state.
func SearchUsers(db *gorm.DB, viewerID, query string, limit int) ([]AuthorSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []AuthorSummary{}, nil
	}
	pattern := "%" + query + "%"
	var users []models.User
	err := db.Where("username LIKE ? OR name LIKE ?", pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
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

	out := make([]AuthorSummary, 0, len(users))
	for _, u := range users {
		out = append(out, AuthorSummary{
			ID:          u.ID,
			Username:    u.Username,
			Name:        u.Name,
			UserImage:   u.UserImage,
			IsFollowing: followed[u.ID],
		})
	}
	return out, nil
}
