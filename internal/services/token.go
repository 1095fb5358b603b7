package services

import (
	"time"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"github.com/golang-jwt/jwt/v5"
)

// TokenPair is the credential pair returned by the auth endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateAccessToken issues a short-lived access credential for a user
func CreateAccessToken(cfg *config.Config, userID, name string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"exp":    time.Now().Add(cfg.AccessTokenExpiry).Unix(),
		"iat":    time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessTokenSecret))
}

// CreateRefreshToken issues a long-lived refresh credential for a user
func CreateRefreshToken(cfg *config.Config, userID string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(cfg.RefreshTokenExpiry).Unix(),
		"iat":    time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.RefreshTokenSecret))
}

// CreateTokenPair issues both credentials for a user
func CreateTokenPair(cfg *config.Config, userID, name string) (*TokenPair, error) {
	access, err := CreateAccessToken(cfg, userID, name)
	if err != nil {
		return nil, err
	}
	refresh, err := CreateRefreshToken(cfg, userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// ParseAccessToken recovers the user identity from an access credential
func ParseAccessToken(cfg *config.Config, tokenString string) (string, error) {
	return parseToken(tokenString, cfg.AccessTokenSecret)
}

// ParseRefreshToken recovers the user identity from a refresh credential
func ParseRefreshToken(cfg *config.Config, tokenString string) (string, error) {
	return parseToken(tokenString, cfg.RefreshTokenSecret)
}

func parseToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", types.Unauthenticated("Authentication invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", types.Unauthenticated("Authentication invalid")
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", types.Unauthenticated("Authentication invalid")
	}

	return userID, nil
}
