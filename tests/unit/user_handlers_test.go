package unit

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/handlers"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/middleware"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/tests/helpers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupUserApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := helpers.SetupTestDB(t)
	cfg := helpers.TestConfig()

	app := fiber.New()
	handler := &handlers.UserHandler{DB: db}
	auth := middleware.RequireAuth(cfg)
	optional := middleware.OptionalAuth(cfg)
	app.Get("/user/profile", auth, handler.GetOwnProfile)
	app.Patch("/user/profile", auth, handler.UpdateProfile)
	app.Get("/user/profile/:username", optional, handler.GetProfileByUsername)
	app.Put("/user/follow/:userId", auth, handler.ToggleFollow)
	app.Get("/user/followers/:userId", optional, handler.GetFollowers)
	app.Get("/user/following/:userId", optional, handler.GetFollowing)
	app.Get("/user/search", optional, handler.Search)
	return app, db, cfg
}

// TestToggleFollow: toggling twice creates then removes the edge, and
// both directions of the relationship derive from the single row.
func TestToggleFollow(t *testing.T) {
	app, db, cfg := setupUserApp(t)

	actor := helpers.CreateUser(t, db, "actor")
	target := helpers.CreateUser(t, db, "target")

	follow := func() bool {
		req := httptest.NewRequest("PUT", "/user/follow/"+target.ID, nil)
		helpers.Authorize(t, req, cfg, actor.ID)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		helpers.AssertStatus(t, resp, 200)
		var body struct {
			Following bool `json:"following"`
		}
		helpers.ParseJSON(t, resp, &body)
		return body.Following
	}

	if !follow() {
		t.Error("Expected first toggle to follow")
	}

	following, err := services.FollowingIDs(db, actor.ID)
	if err != nil || len(following) != 1 || following[0] != target.ID {
		t.Errorf("Expected actor to follow target, got %v (%v)", following, err)
	}
	followers, err := services.FollowerIDs(db, target.ID)
	if err != nil || len(followers) != 1 || followers[0] != actor.ID {
		t.Errorf("Expected target to have actor as follower, got %v (%v)", followers, err)
	}

	if follow() {
		t.Error("Expected second toggle to unfollow")
	}
	var edges int64
	db.Model(&models.Follow{}).Count(&edges)
	if edges != 0 {
		t.Errorf("Expected no edges after unfollow, got %d", edges)
	}
}

// TestSelfFollowRejected: following yourself is a 400.
func TestSelfFollowRejected(t *testing.T) {
	app, db, cfg := setupUserApp(t)
	actor := helpers.CreateUser(t, db, "actor")

	req := httptest.NewRequest("PUT", "/user/follow/"+actor.ID, nil)
	helpers.Authorize(t, req, cfg, actor.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorMessage(t, resp, "You cannot follow yourself")
}

// TestProfileCounts reflect follow edges and posted reels.
func TestProfileCounts(t *testing.T) {
	app, db, cfg := setupUserApp(t)

	alice := helpers.CreateUser(t, db, "alice")
	viewer := helpers.CreateUser(t, db, "viewer")
	fan := helpers.CreateUser(t, db, "fan")
	helpers.Follow(t, db, viewer.ID, alice.ID)
	helpers.Follow(t, db, fan.ID, alice.ID)
	helpers.Follow(t, db, alice.ID, fan.ID)
	helpers.CreateReel(t, db, alice.ID, timeNowMinus(t, 1))

	req := httptest.NewRequest("GET", "/user/profile/alice", nil)
	helpers.Authorize(t, req, cfg, viewer.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var profile services.Profile
	helpers.ParseJSON(t, resp, &profile)
	if profile.FollowersCount != 2 || profile.FollowingCount != 1 || profile.ReelsCount != 1 {
		t.Errorf("Unexpected counts: %+v", profile)
	}
	if !profile.IsFollowing {
		t.Error("Expected viewer to be marked following")
	}
}

// TestUpdateProfileUsernameRules: bad format and taken names are
// rejected, a fresh name is applied lowercased.
func TestUpdateProfileUsernameRules(t *testing.T) {
	app, db, cfg := setupUserApp(t)

	user := helpers.CreateUser(t, db, "original")
	helpers.CreateUser(t, db, "taken")

	patch := func(username string) *models.User {
		body, _ := json.Marshal(map[string]string{"username": username})
		req := httptest.NewRequest("PATCH", "/user/profile", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		helpers.Authorize(t, req, cfg, user.ID)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("Failed to execute request: %v", err)
		}
		if resp.StatusCode != 200 {
			helpers.AssertStatus(t, resp, 400)
			return nil
		}
		var got models.User
		helpers.ParseJSON(t, resp, &got)
		return &got
	}

	if got := patch("no spaces!"); got != nil {
		t.Error("Expected invalid username to be rejected")
	}
	if got := patch("taken"); got != nil {
		t.Error("Expected taken username to be rejected")
	}
	if got := patch("Fresh_Name"); got == nil || got.Username != "fresh_name" {
		t.Errorf("Expected lowercased fresh username, got %+v", got)
	}
}

// TestSearchUsers matches substrings of username and name.
func TestSearchUsers(t *testing.T) {
	app, db, cfg := setupUserApp(t)

	viewer := helpers.CreateUser(t, db, "viewer")
	helpers.CreateUser(t, db, "charlie_chaplin")
	helpers.CreateUser(t, db, "charlotte")
	helpers.CreateUser(t, db, "dave")

	req := httptest.NewRequest("GET", "/user/search?q=charl", nil)
	helpers.Authorize(t, req, cfg, viewer.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var body struct {
		Users []services.AuthorSummary `json:"users"`
	}
	helpers.ParseJSON(t, resp, &body)
	if len(body.Users) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(body.Users))
	}
}
