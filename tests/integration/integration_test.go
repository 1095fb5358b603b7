package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/database"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/handlers"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/middleware"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/tests/helpers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// buildTestApp mounts the full authenticated route surface against the
// given database, with a fake identity verifier.
func buildTestApp(db *gorm.DB, cfg *config.Config, verifier *helpers.FakeVerifier) *fiber.App {
	app := fiber.New()

	auth := middleware.RequireAuth(cfg)
	optional := middleware.OptionalAuth(cfg)

	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg, Verifier: verifier}
	userHandler := &handlers.UserHandler{DB: db}
	feedHandler := &handlers.FeedHandler{DB: db}
	reelHandler := &handlers.ReelHandler{DB: db}
	commentHandler := &handlers.CommentHandler{DB: db}
	likeHandler := &handlers.LikeHandler{DB: db}
	rewardHandler := &handlers.RewardHandler{DB: db}

	app.Post("/auth/signup", authHandler.Signup)
	app.Put("/user/follow/:userId", auth, userHandler.ToggleFollow)
	app.Get("/feed/home", auth, feedHandler.HomeFeed)
	app.Post("/feed/markwatched", auth, feedHandler.MarkWatched)
	app.Post("/reel", auth, reelHandler.Create)
	app.Get("/reel/:reelId", optional, reelHandler.Get)
	app.Post("/comment", auth, commentHandler.Create)
	app.Post("/like/reel/:reelId", auth, likeHandler.ToggleReel)
	app.Get("/reward", auth, rewardHandler.Get)
	app.Post("/reward/redeem", auth, rewardHandler.Redeem)

	return app
}

// TestFullEngagementFlow runs the service against a real MySQL
// container: signup, post, follow, feed, like, comment, rewards.
func TestFullEngagementFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	mysql := helpers.StartMySQLContainer(t)
	defer mysql.Terminate(t)

	cfg := mysql.Config()
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to containerized MySQL: %v", err)
	}
	defer database.Close(db)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	verifier := &helpers.FakeVerifier{}
	app := buildTestApp(db, cfg, verifier)

	signup := func(username string) string {
		verifier.Email = fmt.Sprintf("%s@example.com", username)
		payload := map[string]string{
			"provider": "google",
			"id_token": "fake",
			"email":    verifier.Email,
			"username": username,
			"name":     username,
		}
		resp := post(t, app, "/auth/signup", "", payload)
		helpers.AssertStatus(t, resp, 201)
		var result struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		helpers.ParseJSON(t, resp, &result)
		return result.User.ID
	}

	creatorID := signup("creator")
	fanID := signup("fan")

	// Creator posts a reel
	creatorToken := helpers.MintAccessToken(t, cfg, creatorID, "creator")
	resp := post(t, app, "/reel", creatorToken, map[string]string{
		"videoUri": "https://cdn.example.com/v.mp4",
		"thumbUri": "https://cdn.example.com/t.jpg",
		"caption":  "first!",
	})
	helpers.AssertStatus(t, resp, 201)
	var reel models.Reel
	helpers.ParseJSON(t, resp, &reel)

	// Fan follows the creator and sees the reel on the home feed
	fanToken := helpers.MintAccessToken(t, cfg, fanID, "fan")
	req := httptest.NewRequest("PUT", "/user/follow/"+creatorID, nil)
	req.Header.Set("Authorization", "Bearer "+fanToken)
	followResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to follow: %v", err)
	}
	helpers.AssertStatus(t, followResp, 200)

	req = httptest.NewRequest("GET", "/feed/home", nil)
	req.Header.Set("Authorization", "Bearer "+fanToken)
	feedResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to fetch feed: %v", err)
	}
	helpers.AssertStatus(t, feedResp, 200)
	var feed struct {
		Reels []struct {
			ID string `json:"id"`
		} `json:"reels"`
	}
	helpers.ParseJSON(t, feedResp, &feed)
	if len(feed.Reels) != 1 || feed.Reels[0].ID != reel.ID {
		t.Fatalf("Expected the creator's reel on the feed, got %+v", feed.Reels)
	}

	// Fan likes and comments; rewards accrue on both sides
	resp = post(t, app, "/like/reel/"+reel.ID, fanToken, nil)
	helpers.AssertStatus(t, resp, 200)
	resp = post(t, app, "/comment", fanToken, map[string]string{
		"reelId":  reel.ID,
		"comment": "love it",
	})
	helpers.AssertStatus(t, resp, 201)

	var fanReward, creatorReward models.Reward
	db.First(&fanReward, "user_id = ?", fanID)
	db.First(&creatorReward, "user_id = ?", creatorID)
	if fanReward.Tokens != 0.2 {
		t.Errorf("Expected fan to hold 0.2 tokens (like + comment), got %v", fanReward.Tokens)
	}
	if creatorReward.Rupees != 0.02 {
		t.Errorf("Expected creator to hold 0.02 rupees, got %v", creatorReward.Rupees)
	}

	// Redeem under the row lock against the real dialect
	resp = post(t, app, "/reward/redeem", fanToken, map[string]float64{"tokensToRedeem": 0.5})
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorMessage(t, resp, "Insufficient tokens")

	// Watching removes the reel from subsequent feeds
	resp = post(t, app, "/feed/markwatched", fanToken, map[string][]string{"reelIds": {reel.ID}})
	helpers.AssertStatus(t, resp, 200)

	req = httptest.NewRequest("GET", "/feed/home", nil)
	req.Header.Set("Authorization", "Bearer "+fanToken)
	feedResp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to refetch feed: %v", err)
	}
	helpers.ParseJSON(t, feedResp, &feed)
	if len(feed.Reels) != 0 {
		t.Errorf("Expected watched reel excluded from the feed, got %d reels", len(feed.Reels))
	}

	// View count landed from the watch
	var got models.Reel
	db.First(&got, "id = ?", reel.ID)
	if got.ViewCount != 1 {
		t.Errorf("Expected view count 1, got %d", got.ViewCount)
	}
}

func post(t *testing.T, app *fiber.App, path, token string, payload interface{}) *http.Response {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("Failed to encode payload: %v", err)
		}
	}
	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}
