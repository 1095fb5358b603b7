package unit

import (
	"net/http/httptest"
	"testing"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/handlers"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/middleware"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/tests/helpers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupLikeApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := helpers.SetupTestDB(t)
	cfg := helpers.TestConfig()

	app := fiber.New()
	handler := &handlers.LikeHandler{DB: db}
	auth := middleware.RequireAuth(cfg)
	app.Get("/like", auth, handler.List)
	app.Post("/like/reel/:reelId", auth, handler.ToggleReel)
	app.Post("/like/comment/:commentId", auth, handler.ToggleComment)
	app.Post("/like/reply/:replyId", auth, handler.ToggleReply)
	return app, db, cfg
}

func toggle(t *testing.T, app *fiber.App, cfg *config.Config, userID, path string) (bool, int) {
	t.Helper()
	req := httptest.NewRequest("POST", path, nil)
	helpers.Authorize(t, req, cfg, userID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if resp.StatusCode != 200 {
		return false, resp.StatusCode
	}
	var body struct {
		IsLiked bool `json:"isLiked"`
	}
	helpers.ParseJSON(t, resp, &body)
	return body.IsLiked, resp.StatusCode
}

// TestToggleReelLike: like, unlike, like again; the unique index keeps
// at most one row and only new likes accrue tokens.
func TestToggleReelLike(t *testing.T) {
	app, db, cfg := setupLikeApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	liker := helpers.CreateUser(t, db, "liker")
	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))
	path := "/like/reel/" + reel.ID

	liked, _ := toggle(t, app, cfg, liker.ID, path)
	if !liked {
		t.Error("Expected first toggle to like")
	}
	liked, _ = toggle(t, app, cfg, liker.ID, path)
	if liked {
		t.Error("Expected second toggle to unlike")
	}
	liked, _ = toggle(t, app, cfg, liker.ID, path)
	if !liked {
		t.Error("Expected third toggle to like again")
	}

	var rows int64
	db.Model(&models.Like{}).Where("user_id = ?", liker.ID).Count(&rows)
	if rows != 1 {
		t.Errorf("Expected exactly 1 like row, got %d", rows)
	}

	// Two like events, each worth 0.1 tokens; the unlike refunds nothing
	var reward models.Reward
	db.First(&reward, "user_id = ?", liker.ID)
	if reward.Tokens != 0.2 {
		t.Errorf("Expected 0.2 tokens after two like events, got %v", reward.Tokens)
	}
}

// TestToggleReelLikeMissing is a 404 with the standard body.
func TestToggleReelLikeMissing(t *testing.T) {
	app, db, cfg := setupLikeApp(t)
	liker := helpers.CreateUser(t, db, "liker")

	req := httptest.NewRequest("POST", "/like/reel/no-such-reel", nil)
	helpers.Authorize(t, req, cfg, liker.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertErrorMessage(t, resp, "Reel not found")
}

// TestOwnerLikeFlipsAuthorFlag: the reel owner liking a comment sets
// IsLikedByAuthor, and unliking clears it. Another user's like does
// not touch the flag.
func TestOwnerLikeFlipsAuthorFlag(t *testing.T) {
	app, db, cfg := setupLikeApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	other := helpers.CreateUser(t, db, "other")
	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))
	comment := helpers.Comment(t, db, other.ID, reel.ID, "like me")
	path := "/like/comment/" + comment.ID

	flag := func() bool {
		var got models.Comment
		db.First(&got, "id = ?", comment.ID)
		return got.IsLikedByAuthor
	}

	toggle(t, app, cfg, other.ID, path)
	if flag() {
		t.Error("Expected non-owner like to leave IsLikedByAuthor false")
	}
	toggle(t, app, cfg, owner.ID, path)
	if !flag() {
		t.Error("Expected owner like to set IsLikedByAuthor")
	}
	toggle(t, app, cfg, owner.ID, path)
	if flag() {
		t.Error("Expected owner unlike to clear IsLikedByAuthor")
	}
}

// TestListLikesFollowedFirst: followed likers lead the list and carry
// isFollowing.
func TestListLikesFollowedFirst(t *testing.T) {
	app, db, cfg := setupLikeApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	viewer := helpers.CreateUser(t, db, "viewer")
	stranger := helpers.CreateUser(t, db, "stranger")
	friend := helpers.CreateUser(t, db, "friend")
	helpers.Follow(t, db, viewer.ID, friend.ID)

	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))
	helpers.Like(t, db, stranger.ID, models.TargetReel, reel.ID)
	helpers.Like(t, db, friend.ID, models.TargetReel, reel.ID)

	req := httptest.NewRequest("GET", "/like?type=reel&entityId="+reel.ID, nil)
	helpers.Authorize(t, req, cfg, viewer.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var body struct {
		Users []struct {
			ID          string `json:"id"`
			IsFollowing bool   `json:"isFollowing"`
		} `json:"users"`
	}
	helpers.ParseJSON(t, resp, &body)
	if len(body.Users) != 2 {
		t.Fatalf("Expected 2 likers, got %d", len(body.Users))
	}
	if body.Users[0].ID != friend.ID || !body.Users[0].IsFollowing {
		t.Errorf("Expected followed liker first with isFollowing, got %+v", body.Users[0])
	}
	if body.Users[1].ID != stranger.ID || body.Users[1].IsFollowing {
		t.Errorf("Expected stranger second without isFollowing, got %+v", body.Users[1])
	}
}

// TestListLikesInvalidType rejects unknown target types.
func TestListLikesInvalidType(t *testing.T) {
	app, db, cfg := setupLikeApp(t)
	viewer := helpers.CreateUser(t, db, "viewer")

	req := httptest.NewRequest("GET", "/like?type=post&entityId=x", nil)
	helpers.Authorize(t, req, cfg, viewer.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorMessage(t, resp, "Invalid type")
}
