package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"google.golang.org/api/idtoken"
)

// Supported OAuth providers
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

const facebookGraphURL = "https://graph.facebook.com/v20.0/me"

// IdentityVerifier resolves a provider token to a verified email
// address. It is injected into the auth handlers so tests can
// substitute a fake.
type IdentityVerifier interface {
	VerifyEmail(ctx context.Context, provider, token string) (string, error)
}

// OAuthVerifier verifies Google ID tokens and Facebook access tokens.
type OAuthVerifier struct {
	GoogleClientID string
	HTTPClient     *http.Client
}

// NewOAuthVerifier creates a verifier for the given Google client ID
func NewOAuthVerifier(googleClientID string) *OAuthVerifier {
	return &OAuthVerifier{
		GoogleClientID: googleClientID,
		HTTPClient:     &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyEmail validates the provider token and returns the verified email
func (v *OAuthVerifier) VerifyEmail(ctx context.Context, provider, token string) (string, error) {
	switch provider {
	case ProviderGoogle:
		return v.verifyGoogle(ctx, token)
	case ProviderFacebook:
		return v.verifyFacebook(ctx, token)
	default:
		return "", types.BadRequest("Invalid body request")
	}
}

func (v *OAuthVerifier) verifyGoogle(ctx context.Context, token string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, v.GoogleClientID)
	if err != nil {
		return "", types.Unauthenticated("Invalid Token or expired")
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", types.Unauthenticated("Invalid Token or expired")
	}
	return email, nil
}

func (v *OAuthVerifier) verifyFacebook(ctx context.Context, token string) (string, error) {
	endpoint := fmt.Sprintf("%s?access_token=%s&fields=id,email", facebookGraphURL, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return "", types.Unauthenticated("Invalid Token or expired")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", types.Unauthenticated("Invalid Token or expired")
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", types.Unauthenticated("Invalid Token or expired")
	}
	if body.Email == "" {
		return "", types.Unauthenticated("Invalid Token or expired")
	}

	return body.Email, nil
}
