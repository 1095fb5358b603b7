package helpers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/services"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
)

// TestConfig returns a config suitable for in-process test apps.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "3000",
		DBType:             "sqlite",
		DBDatabase:         ":memory:",
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 720 * time.Hour,
		GoogleClientID:     "test-client-id",
		ShareBaseURL:       "http://localhost:3000",
	}
}

// MintAccessToken issues a real access token for the user so requests
// pass the auth middleware.
func MintAccessToken(t *testing.T, cfg *config.Config, userID, name string) string {
	t.Helper()
	token, err := services.CreateAccessToken(cfg, userID, name)
	if err != nil {
		t.Fatalf("Failed to mint access token: %v", err)
	}
	return token
}

// Authorize sets the Bearer header for the user on the request.
func Authorize(t *testing.T, req *http.Request, cfg *config.Config, userID string) {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+MintAccessToken(t, cfg, userID, "test"))
}

// FakeVerifier is an IdentityVerifier returning a fixed email, or an
// authentication failure when Fail is set.
type FakeVerifier struct {
	Email string
	Fail  bool
}

func (v *FakeVerifier) VerifyEmail(ctx context.Context, provider, token string) (string, error) {
	if provider != services.ProviderGoogle && provider != services.ProviderFacebook {
		return "", types.BadRequest("Invalid body request")
	}
	if v.Fail {
		return "", types.Unauthenticated("Invalid Token or expired")
	}
	return v.Email, nil
}
