package unit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/handlers"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/tests/helpers"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T, verifier services.IdentityVerifier) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	db := helpers.SetupTestDB(t)
	cfg := helpers.TestConfig()

	app := fiber.New()
	handler := &handlers.AuthHandler{DB: db, Cfg: cfg, Verifier: verifier}
	app.Post("/auth/check-username", handler.CheckUsername)
	app.Post("/auth/signup", handler.Signup)
	app.Post("/auth/signin", handler.Signin)
	app.Post("/auth/refresh-token", handler.Refresh)
	return app, db, cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}

// TestSignupCreatesUserAndLedger: a verified signup creates the user,
// a zero reward ledger, and returns working tokens.
func TestSignupCreatesUserAndLedger(t *testing.T) {
	app, db, _ := setupAuthApp(t, &helpers.FakeVerifier{Email: "new@example.com"})

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"provider": "google",
		"id_token": "fake-token",
		"email":    "new@example.com",
		"username": "newuser",
		"name":     "New User",
	})
	helpers.AssertStatus(t, resp, 201)

	var result services.AuthResult
	helpers.ParseJSON(t, resp, &result)
	if result.User == nil || result.User.Username != "newuser" {
		t.Fatalf("Unexpected signup result: %+v", result)
	}
	if result.Tokens == nil || result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatal("Expected a full token pair")
	}

	var reward models.Reward
	if err := db.First(&reward, "user_id = ?", result.User.ID).Error; err != nil {
		t.Fatalf("Expected a reward ledger: %v", err)
	}
	if reward.Tokens != 0 || reward.Rupees != 0 {
		t.Errorf("Expected zero balances, got %v / %v", reward.Tokens, reward.Rupees)
	}
}

// TestSignupEmailMismatch: the claimed email must match the verified
// one.
func TestSignupEmailMismatch(t *testing.T) {
	app, _, _ := setupAuthApp(t, &helpers.FakeVerifier{Email: "verified@example.com"})

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"provider": "google",
		"id_token": "fake-token",
		"email":    "someone-else@example.com",
		"username": "imposter",
		"name":     "Imposter",
	})
	helpers.AssertStatus(t, resp, 401)
	helpers.AssertErrorMessage(t, resp, "Invalid Token or expired")
}

// TestSignupInvalidProvider is a 400.
func TestSignupInvalidProvider(t *testing.T) {
	app, _, _ := setupAuthApp(t, &helpers.FakeVerifier{Email: "x@example.com"})

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"provider": "myspace",
		"id_token": "fake-token",
		"email":    "x@example.com",
		"username": "xuser",
		"name":     "X",
	})
	helpers.AssertStatus(t, resp, 400)
	helpers.AssertErrorMessage(t, resp, "Invalid body request")
}

// TestSigninFlow: signin after signup returns the profile with counts;
// an unknown email is a 404; a failed verification is a 401.
func TestSigninFlow(t *testing.T) {
	verifier := &helpers.FakeVerifier{Email: "member@example.com"}
	app, db, _ := setupAuthApp(t, verifier)
	helpers.CreateUser(t, db, "member")
	db.Model(&models.User{}).Where("username = ?", "member").
		UpdateColumn("email", "member@example.com")

	resp := postJSON(t, app, "/auth/signin", map[string]string{
		"provider": "google",
		"id_token": "fake-token",
	})
	helpers.AssertStatus(t, resp, 200)

	verifier.Email = "ghost@example.com"
	resp = postJSON(t, app, "/auth/signin", map[string]string{
		"provider": "google",
		"id_token": "fake-token",
	})
	helpers.AssertStatus(t, resp, 404)
	helpers.AssertErrorMessage(t, resp, "User not found")

	verifier.Fail = true
	resp = postJSON(t, app, "/auth/signin", map[string]string{
		"provider": "google",
		"id_token": "bad-token",
	})
	helpers.AssertStatus(t, resp, 401)
	helpers.AssertErrorMessage(t, resp, "Invalid Token or expired")
}

// TestRefreshToken rotates a valid refresh token and rejects garbage.
func TestRefreshToken(t *testing.T) {
	app, db, cfg := setupAuthApp(t, &helpers.FakeVerifier{Email: "member@example.com"})
	user := helpers.CreateUser(t, db, "member")

	refresh, err := services.CreateRefreshToken(cfg, user.ID)
	if err != nil {
		t.Fatalf("Failed to create refresh token: %v", err)
	}

	resp := postJSON(t, app, "/auth/refresh-token", map[string]string{"refresh_token": refresh})
	helpers.AssertStatus(t, resp, 200)
	var pair services.TokenPair
	helpers.ParseJSON(t, resp, &pair)
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Expected a fresh token pair")
	}

	resp = postJSON(t, app, "/auth/refresh-token", map[string]string{"refresh_token": "garbage"})
	helpers.AssertStatus(t, resp, 401)
}

// TestCheckUsername reports availability.
func TestCheckUsername(t *testing.T) {
	app, db, _ := setupAuthApp(t, &helpers.FakeVerifier{Email: "x@example.com"})
	helpers.CreateUser(t, db, "claimed")

	check := func(username string) bool {
		resp := postJSON(t, app, "/auth/check-username", map[string]string{"username": username})
		helpers.AssertStatus(t, resp, 200)
		var body struct {
			Available bool `json:"available"`
		}
		helpers.ParseJSON(t, resp, &body)
		return body.Available
	}

	if check("claimed") {
		t.Error("Expected claimed username to be unavailable")
	}
	if !check("wide_open") {
		t.Error("Expected fresh username to be available")
	}
}
