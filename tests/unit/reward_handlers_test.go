package unit

import (
	"bytes"
	"encoding/json"
	"net/http"
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

func setupRewardApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := helpers.SetupTestDB(t)
	cfg := helpers.TestConfig()

	app := fiber.New()
	handler := &handlers.RewardHandler{DB: db}
	auth := middleware.RequireAuth(cfg)
	app.Get("/reward", auth, handler.Get)
	app.Post("/reward/redeem", auth, handler.Redeem)
	app.Post("/reward/withdraw", auth, handler.Withdraw)
	return app, db, cfg
}

func postReward(t *testing.T, app *fiber.App, cfg *config.Config, userID, path string, payload map[string]float64) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	helpers.Authorize(t, req, cfg, userID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// TestRedeemInsufficientTokens: redeeming 0.1 from a 0.05 balance is a
// 400 and leaves the balance untouched.
func TestRedeemInsufficientTokens(t *testing.T) {
	app, db, cfg := setupRewardApp(t)

	user := helpers.CreateUser(t, db, "saver")
	helpers.SetBalances(t, db, user.ID, 0.05, 0)

	resp := postReward(t, app, cfg, user.ID, "/reward/redeem", map[string]float64{"tokensToRedeem": 0.1})
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorMessage(t, resp, "Insufficient tokens")

	var reward models.Reward
	db.First(&reward, "user_id = ?", user.ID)
	if reward.Tokens != 0.05 {
		t.Errorf("Expected balance unchanged at 0.05, got %v", reward.Tokens)
	}
}

// TestRedeemTokens debits exactly the requested amount.
func TestRedeemTokens(t *testing.T) {
	app, db, cfg := setupRewardApp(t)

	user := helpers.CreateUser(t, db, "spender")
	helpers.SetBalances(t, db, user.ID, 1.0, 0)

	resp := postReward(t, app, cfg, user.ID, "/reward/redeem", map[string]float64{"tokensToRedeem": 0.4})
	helpers.AssertStatus(t, resp, 200)

	var reward models.Reward
	db.First(&reward, "user_id = ?", user.ID)
	if reward.Tokens != 0.6 {
		t.Errorf("Expected 0.6 tokens remaining, got %v", reward.Tokens)
	}
}

// TestWithdrawInsufficientRupees mirrors the token guard for rupees.
func TestWithdrawInsufficientRupees(t *testing.T) {
	app, db, cfg := setupRewardApp(t)

	user := helpers.CreateUser(t, db, "creator")
	helpers.SetBalances(t, db, user.ID, 0, 0.01)

	resp := postReward(t, app, cfg, user.ID, "/reward/withdraw", map[string]float64{"rupeesToWithdraw": 0.5})
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorMessage(t, resp, "Insufficient rupees")

	var reward models.Reward
	db.First(&reward, "user_id = ?", user.ID)
	if reward.Rupees != 0.01 {
		t.Errorf("Expected balance unchanged at 0.01, got %v", reward.Rupees)
	}
}

// TestRedeemRejectsNonPositive: zero and negative amounts are invalid.
func TestRedeemRejectsNonPositive(t *testing.T) {
	app, db, cfg := setupRewardApp(t)
	user := helpers.CreateUser(t, db, "user")
	helpers.SetBalances(t, db, user.ID, 1.0, 0)

	for _, amount := range []float64{0, -1} {
		resp := postReward(t, app, cfg, user.ID, "/reward/redeem", map[string]float64{"tokensToRedeem": amount})
		helpers.AssertStatus(t, resp, 400)
	}
}

// TestGetReward returns both balances.
func TestGetReward(t *testing.T) {
	app, db, cfg := setupRewardApp(t)

	user := helpers.CreateUser(t, db, "user")
	helpers.SetBalances(t, db, user.ID, 2.5, 0.3)

	req := httptest.NewRequest("GET", "/reward", nil)
	helpers.Authorize(t, req, cfg, user.ID)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	helpers.AssertStatus(t, resp, 200)

	var reward models.Reward
	helpers.ParseJSON(t, resp, &reward)
	if reward.Tokens != 2.5 || reward.Rupees != 0.3 {
		t.Errorf("Expected 2.5 tokens and 0.3 rupees, got %v and %v", reward.Tokens, reward.Rupees)
	}
}
