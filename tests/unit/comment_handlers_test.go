package unit

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/handlers"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/middleware"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/tests/helpers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// timeNowMinus returns the current time shifted back by the given
// number of minutes.
func timeNowMinus(t *testing.T, minutes int) time.Time {
	t.Helper()
	return time.Now().Add(-time.Duration(minutes) * time.Minute)
}

func setupCommentApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := helpers.SetupTestDB(t)
	cfg := helpers.TestConfig()

	app := fiber.New()
	handler := &handlers.CommentHandler{DB: db}
	auth := middleware.RequireAuth(cfg)
	app.Get("/comment", auth, handler.List)
	app.Post("/comment", auth, handler.Create)
	app.Post("/comment/pin", auth, handler.TogglePin)
	app.Delete("/comment/:commentId", auth, handler.Delete)
	return app, db, cfg
}

type commentItem struct {
	ID         string `json:"id"`
	IsPinned   bool   `json:"isPinned"`
	LikesCount int64  `json:"likesCount"`
	IsLiked    bool   `json:"isLiked"`
}

func listComments(t *testing.T, app *fiber.App, cfg *config.Config, viewerID, reelID string) []commentItem {
	t.Helper()
	req := httptest.NewRequest("GET", "/comment?reelId="+reelID, nil)
	helpers.Authorize(t, req, cfg, viewerID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)
	var body struct {
		Comments []commentItem `json:"comments"`
	}
	helpers.ParseJSON(t, resp, &body)
	return body.Comments
}

// TestCommentRankingOrder seeds comments hitting each ranking key and
// verifies the strict priority: pinned, author-liked, viewer-replied,
// like count, followed author, recency.
func TestCommentRankingOrder(t *testing.T) {
	app, db, cfg := setupCommentApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	viewer := helpers.CreateUser(t, db, "viewer")
	friend := helpers.CreateUser(t, db, "friend")
	rando := helpers.CreateUser(t, db, "rando")
	helpers.Follow(t, db, viewer.ID, friend.ID)

	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 60))

	// Oldest first so recency alone would invert this order
	plain := helpers.Comment(t, db, rando.ID, reel.ID, "plain")
	fromFriend := helpers.Comment(t, db, friend.ID, reel.ID, "from a followed author")
	liked := helpers.Comment(t, db, rando.ID, reel.ID, "popular")
	replied := helpers.Comment(t, db, rando.ID, reel.ID, "conversation")
	authorLiked := helpers.Comment(t, db, rando.ID, reel.ID, "creator approved")
	pinned := helpers.Comment(t, db, rando.ID, reel.ID, "pinned")

	db.Model(pinned).UpdateColumn("is_pinned", true)
	db.Model(authorLiked).UpdateColumn("is_liked_by_author", true)
	helpers.Reply(t, db, viewer.ID, replied.ID, reel.ID, "me too")
	helpers.Like(t, db, owner.ID, models.TargetComment, liked.ID)
	helpers.Like(t, db, friend.ID, models.TargetComment, liked.ID)

	comments := listComments(t, app, cfg, viewer.ID, reel.ID)
	if len(comments) != 6 {
		t.Fatalf("Expected 6 comments, got %d", len(comments))
	}
	expected := []string{pinned.ID, authorLiked.ID, replied.ID, liked.ID, fromFriend.ID, plain.ID}
	for i, id := range expected {
		if comments[i].ID != id {
			t.Errorf("Position %d: expected comment %s, got %s", i, id, comments[i].ID)
		}
	}
}

// TestCreateCommentRewards: the commenter earns tokens, the reel's
// creator earns rupees.
func TestCreateCommentRewards(t *testing.T) {
	app, db, cfg := setupCommentApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	commenter := helpers.CreateUser(t, db, "commenter")
	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))

	body, _ := json.Marshal(map[string]interface{}{
		"reelId":  reel.ID,
		"comment": "great reel",
	})
	req := httptest.NewRequest("POST", "/comment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	helpers.Authorize(t, req, cfg, commenter.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 201)

	var commenterReward, ownerReward models.Reward
	db.First(&commenterReward, "user_id = ?", commenter.ID)
	db.First(&ownerReward, "user_id = ?", owner.ID)
	if commenterReward.Tokens != 0.1 {
		t.Errorf("Expected commenter to earn 0.1 tokens, got %v", commenterReward.Tokens)
	}
	if ownerReward.Rupees != 0.02 {
		t.Errorf("Expected creator to earn 0.02 rupees, got %v", ownerReward.Rupees)
	}
}

// TestCreateCommentValidation: empty comment without a GIF is rejected,
// and a missing reel is a 404.
func TestCreateCommentValidation(t *testing.T) {
	app, db, cfg := setupCommentApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))

	cases := []struct {
		name    string
		payload map[string]interface{}
		status  int
		message string
	}{
		{"empty", map[string]interface{}{"reelId": reel.ID, "comment": "  "}, 400, "Comment text or GIF required"},
		{"missing reel", map[string]interface{}{"reelId": "no-such-reel", "comment": "hi"}, 404, "Reel not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.payload)
			req := httptest.NewRequest("POST", "/comment", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			helpers.Authorize(t, req, cfg, owner.ID)
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			helpers.AssertStatus(t, resp, tc.status)
			helpers.AssertErrorMessage(t, resp, tc.message)
		})
	}
}

// TestTogglePinOwnerOnly: only the reel owner can pin, and pinning
// toggles.
func TestTogglePinOwnerOnly(t *testing.T) {
	app, db, cfg := setupCommentApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	other := helpers.CreateUser(t, db, "other")
	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))
	comment := helpers.Comment(t, db, other.ID, reel.ID, "pin me")

	pin := func(userID string) (*models.Comment, int) {
		body, _ := json.Marshal(map[string]string{"commentId": comment.ID})
		req := httptest.NewRequest("POST", "/comment/pin", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		helpers.Authorize(t, req, cfg, userID)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		var got models.Comment
		db.First(&got, "id = ?", comment.ID)
		return &got, resp.StatusCode
	}

	if _, status := pin(other.ID); status != 401 {
		t.Errorf("Expected 401 for non-owner pin, got %d", status)
	}
	if got, status := pin(owner.ID); status != 200 || !got.IsPinned {
		t.Errorf("Expected owner pin to succeed, status %d pinned %v", status, got.IsPinned)
	}
	if got, status := pin(owner.ID); status != 200 || got.IsPinned {
		t.Errorf("Expected second pin to unpin, status %d pinned %v", status, got.IsPinned)
	}
}

// TestDeleteCommentCascades removes replies and their likes with the
// comment.
func TestDeleteCommentCascades(t *testing.T) {
	app, db, cfg := setupCommentApp(t)

	owner := helpers.CreateUser(t, db, "owner")
	commenter := helpers.CreateUser(t, db, "commenter")
	reel := helpers.CreateReel(t, db, owner.ID, timeNowMinus(t, 1))
	comment := helpers.Comment(t, db, commenter.ID, reel.ID, "delete me")
	reply := helpers.Reply(t, db, owner.ID, comment.ID, reel.ID, "reply")
	helpers.Like(t, db, owner.ID, models.TargetComment, comment.ID)
	helpers.Like(t, db, commenter.ID, models.TargetReply, reply.ID)

	req := httptest.NewRequest("DELETE", "/comment/"+comment.ID, nil)
	helpers.Authorize(t, req, cfg, commenter.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var comments, replies, likes int64
	db.Model(&models.Comment{}).Count(&comments)
	db.Model(&models.Reply{}).Count(&replies)
	db.Model(&models.Like{}).Count(&likes)
	if comments != 0 || replies != 0 || likes != 0 {
		t.Errorf("Expected full cascade, got %d comments, %d replies, %d likes", comments, replies, likes)
	}
}
