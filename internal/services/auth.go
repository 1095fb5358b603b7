package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/models"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"gorm.io/gorm"
)

// SignupInput is the registration payload. The id token must verify to
// the same email the client claims.
type SignupInput struct {
	Provider  string `json:"provider"`
	IDToken   string `json:"id_token"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	UserImage string `json:"userImage"`
}

// SigninInput is the login payload.
type SigninInput struct {
	Provider string `json:"provider"`
	IDToken  string `json:"id_token"`
}

// AuthResult bundles the signed-in profile with its token pair.
type AuthResult struct {
	User   *Profile   `json:"user"`
	Tokens *TokenPair `json:"tokens"`
}

// Signup verifies the OAuth id token, creates the user plus an empty
// reward ledger, and issues a token pair.
func Signup(ctx context.Context, db *gorm.DB, cfg *config.Config, verifier IdentityVerifier, in SignupInput) (*AuthResult, error) {
	email, err := verifier.VerifyEmail(ctx, in.Provider, in.IDToken)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(email, in.Email) {
		return nil, types.Unauthenticated("Invalid Token or expired")
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !usernamePattern.MatchString(username) {
		return nil, types.BadRequest("Invalid username")
	}
	if in.Name == "" || len(in.Name) > 50 {
		return nil, types.BadRequest("Invalid name")
	}

	user := models.User{
		Email:     strings.ToLower(email),
		Username:  username,
		Name:      in.Name,
		UserImage: in.UserImage,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		var n int64
		err := tx.Model(&models.User{}).
			Where("email = ? OR username = ?", user.Email, user.Username).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return types.BadRequest("User already exists")
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Reward{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return authResult(db, cfg, user.ID)
}

// Signin verifies the OAuth id token and issues a token pair for the
// matching account.
func Signin(ctx context.Context, db *gorm.DB, cfg *config.Config, verifier IdentityVerifier, in SigninInput) (*AuthResult, error) {
	email, err := verifier.VerifyEmail(ctx, in.Provider, in.IDToken)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = db.First(&user, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}
	return authResult(db, cfg, user.ID)
}

// RefreshTokens rotates a refresh token into a fresh token pair.
func RefreshTokens(db *gorm.DB, cfg *config.Config, refreshToken string) (*TokenPair, error) {
	userID, err := ParseRefreshToken(cfg, refreshToken)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.Unauthenticated("Authentication invalid")
	}
	if err != nil {
		return nil, err
	}
	return CreateTokenPair(cfg, user.ID, user.Name)
}

func authResult(db *gorm.DB, cfg *config.Config, userID string) (*AuthResult, error) {
	profile, err := GetProfile(db, "", userID)
	if err != nil {
		return nil, err
	}
	tokens, err := CreateTokenPair(cfg, profile.ID, profile.Name)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: profile, Tokens: tokens}, nil
}
